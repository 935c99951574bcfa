/*
Copyright © 2026 The PDBdb Authors

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/internal/iofs"
	"github.com/pdbbrowser/pdbdb/internal/iologger"
	app "github.com/pdbbrowser/pdbdb/pkg"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	homeDir string
	opts    []config.Option
	cfg     *config.Config
)

// getRootCmd returns the root command with all subcommands attached.
func getRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version: fmt.Sprintf("version: %s\nbuild:   %s", app.Version, app.Build),
		Use:     "pdbdb",
		Short:   "PDBdb keeps a catalog of PDB entries in PostgreSQL or SQLite",
		Long: `PDBdb manages a relational catalog of Protein Data Bank entries:
entries, authors, source organisms, experiment types and classes,
composition types and per-chain sequences.

Commands:
  - create:  create the catalog schema
  - migrate: bring the schema up to date
  - import:  migrate a legacy (v1 or v2) database into the catalog
  - show:    print an entry with its sequences, authors and sources
  - search:  find rows by a phrase in a text field
  - stats:   print row counts

Configuration precedence (highest to lowest):
  1. CLI flags
  2. Environment variables (PDBDB_*)
  3. Config file (~/.config/pdbdb/config.yaml)
  4. Built-in defaults

Environment Variables:
  Nested fields use underscores (database.host -> PDBDB_DATABASE_HOST).
  Examples:
    PDBDB_DATABASE_DRIVER     postgres or sqlite
    PDBDB_DATABASE_HOST       PostgreSQL host
    PDBDB_DATABASE_PATH       SQLite file
    PDBDB_STORE_CASCADE       default delete policy
    PDBDB_LOG_LEVEL           debug/info/warn/error`,
		PersistentPreRunE: bootstrap,
		RunE:              runRoot,
		SilenceErrors:     true,
		SilenceUsage:      true,
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.Flags().BoolP("version", "V", false, "version for pdbdb")

	rootCmd.AddCommand(
		getCreateCmd(),
		getMigrateCmd(),
		getImportCmd(),
		getShowCmd(),
		getSearchCmd(),
		getStatsCmd(),
	)

	return rootCmd
}

func bootstrap(cmd *cobra.Command, args []string) error {
	var err error
	homeDir, err = os.UserHomeDir()
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iofs.EnsureHome(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	// Logging with defaults until the config file is read.
	defaultLog := config.New().Log
	if err = iologger.Init(config.LogDir(homeDir), defaultLog); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	created, err := iofs.EnsureConfigFile(homeDir)
	if err != nil {
		gn.PrintErrorMessage(err)
		return err
	}
	if created {
		gn.Info("Default configuration written to <em>%s</em>",
			config.ConfigFilePath(homeDir))
	}

	var cfgViper *config.Config
	if cfgViper, err = initConfig(homeDir); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	cfg = config.New()
	opts = cfgViper.ToOptions()
	cfg.Update(opts)
	cfg.Update([]config.Option{config.OptHomeDir(homeDir)})

	if cfg.Database.Driver == "sqlite" {
		cfg.Update([]config.Option{config.OptDatabasePath(cfg.SQLitePath())})
	}
	if err = iofs.EnsureDatabaseDir(cfg); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	if err = iologger.Init(config.LogDir(cfg.HomeDir), cfg.Log); err != nil {
		gn.PrintErrorMessage(err)
		return err
	}

	slog.Info("Configuration loaded",
		"config_file", config.ConfigFilePath(homeDir),
		"driver", cfg.Database.Driver,
	)

	return nil
}

func runRoot(cmd *cobra.Command, _ []string) error {
	return cmd.Help()
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := getRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func initConfig(home string) (*config.Config, error) {
	var err error
	cfgPath := config.ConfigFilePath(home)
	v := viper.New()
	v.SetConfigFile(cfgPath)

	setDefaults(v, config.New())
	initEnvVars(v)

	if err = v.ReadInConfig(); err != nil {
		return nil, iofs.ConfigReadError(cfgPath, err)
	}

	var res config.Config
	if err = v.Unmarshal(&res); err != nil {
		return nil, iofs.ConfigReadError(cfgPath, err)
	}

	return &res, nil
}

// setDefaults keeps keys missing from an older config.yaml at their
// built-in values.
func setDefaults(v *viper.Viper, def *config.Config) {
	v.SetDefault("database.driver", def.Database.Driver)
	v.SetDefault("database.host", def.Database.Host)
	v.SetDefault("database.port", def.Database.Port)
	v.SetDefault("database.user", def.Database.User)
	v.SetDefault("database.password", def.Database.Password)
	v.SetDefault("database.database", def.Database.Database)
	v.SetDefault("database.ssl_mode", def.Database.SSLMode)
	v.SetDefault("database.path", def.Database.Path)
	v.SetDefault("database.max_connections", def.Database.MaxConnections)

	v.SetDefault("store.cascade", def.Store.Cascade)
	v.SetDefault("store.text_search", def.Store.TextSearch)
	v.SetDefault("store.search_limit", def.Store.SearchLimit)

	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.format", def.Log.Format)
	v.SetDefault("log.destination", def.Log.Destination)
}

func initEnvVars(v *viper.Viper) {
	// Only fields returned by config.ToOptions() can come from the
	// environment.
	v.SetEnvPrefix("PDBDB")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Database configuration
	v.BindEnv("database.driver", "PDBDB_DATABASE_DRIVER")
	v.BindEnv("database.host", "PDBDB_DATABASE_HOST")
	v.BindEnv("database.port", "PDBDB_DATABASE_PORT")
	v.BindEnv("database.user", "PDBDB_DATABASE_USER")
	v.BindEnv("database.password", "PDBDB_DATABASE_PASSWORD")
	v.BindEnv("database.database", "PDBDB_DATABASE_DATABASE")
	v.BindEnv("database.ssl_mode", "PDBDB_DATABASE_SSL_MODE")
	v.BindEnv("database.path", "PDBDB_DATABASE_PATH")
	v.BindEnv("database.max_connections", "PDBDB_DATABASE_MAX_CONNECTIONS")

	// Store configuration
	v.BindEnv("store.cascade", "PDBDB_STORE_CASCADE")
	v.BindEnv("store.text_search", "PDBDB_STORE_TEXT_SEARCH")
	v.BindEnv("store.search_limit", "PDBDB_STORE_SEARCH_LIMIT")

	// Log configuration
	v.BindEnv("log.level", "PDBDB_LOG_LEVEL")
	v.BindEnv("log.format", "PDBDB_LOG_FORMAT")
	v.BindEnv("log.destination", "PDBDB_LOG_DESTINATION")

	v.AutomaticEnv()
}
