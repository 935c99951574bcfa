// Package config provides configuration management for PDBdb.
//
// This package has no I/O dependencies (no file operations, no network calls).
// Validation functions may write user-facing warnings via gn.Warn().
//
// # Configuration Sources
//
// Precedence (highest to lowest): CLI flags > env vars > config.yaml > defaults
//
// # Design Principles
//
// - Default config (from New()) is always valid - no validation needed
// - All mutations go through Option functions - the only way to modify Config
// - Invalid options are rejected with gn.Warn() - config remains in valid state
// - ToOptions() converts persistent fields (those in config.yaml)
// - Environment variables match ToOptions() fields exactly
//
// # Persistent vs Runtime Fields
//
// Persistent fields (in ToOptions, config.yaml, and env vars):
//   - Database: driver, host, port, user, password, database, ssl_mode,
//     path, max_connections
//   - Store: cascade, text_search, search_limit
//   - Log: level, format, destination
//
// Runtime-only fields (CLI flags only):
//   - Import.Variant, Import.Driver, Import.DSN (per-command)
//   - HomeDir (set once at startup)
//
// # Environment Variables
//
// Use PDBDB_ prefix with underscores for nesting:
//
//	PDBDB_DATABASE_DRIVER=postgres
//	PDBDB_DATABASE_HOST=localhost
//	PDBDB_STORE_CASCADE=false
//	PDBDB_LOG_LEVEL=info
package config

// Config represents the complete PDBdb configuration.
type Config struct {
	// Database contains connection settings of the catalog database.
	Database DatabaseConfig `mapstructure:"database" yaml:"database"`

	// Store contains behaviour switches of the catalog store.
	Store StoreConfig `mapstructure:"store" yaml:"store"`

	// Import contains settings specific to the import command.
	Import ImportConfig `mapstructure:"import" yaml:"import"`

	Log LogConfig `mapstructure:"log" yaml:"log"`

	// HomeDir determines where config, data and logs directories reside.
	// It must be set by CLI during init, there is no default value for it.
	HomeDir string
}

// DatabaseConfig contains connection parameters of the catalog database.
type DatabaseConfig struct {
	// Driver selects the storage backend.
	// Valid values: "postgres", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// Host is the PostgreSQL server hostname or IP address.
	Host string `mapstructure:"host" yaml:"host"`

	// Port is the PostgreSQL server port number.
	Port int `mapstructure:"port" yaml:"port"`

	// User is the PostgreSQL database username.
	User string `mapstructure:"user" yaml:"user"`

	// Password is the PostgreSQL database password.
	Password string `mapstructure:"password" yaml:"password"`

	// Database is the PostgreSQL database name to connect to.
	Database string `mapstructure:"database" yaml:"database"`

	// SSLMode specifies the SSL connection mode.
	// Valid values: "disable", "require", "verify-ca", "verify-full"
	SSLMode string `mapstructure:"ssl_mode" yaml:"ssl_mode"`

	// Path is the SQLite database file. When empty, the file is kept
	// in the data directory under HomeDir.
	Path string `mapstructure:"path" yaml:"path"`

	// MaxConnections is the upper limit of the PostgreSQL pool size.
	MaxConnections int `mapstructure:"max_connections" yaml:"max_connections"`
}

// StoreConfig contains behaviour switches of the catalog store.
type StoreConfig struct {
	// Cascade is the default delete policy. When true, deleting a row
	// removes (or detaches) its dependents instead of failing.
	Cascade bool `mapstructure:"cascade" yaml:"cascade"`

	// TextSearch enables substring search on author names, entry
	// headers and compounds, source names and sequence headers.
	TextSearch bool `mapstructure:"text_search" yaml:"text_search"`

	// SearchLimit caps the number of search results when the caller
	// does not provide a limit.
	SearchLimit int `mapstructure:"search_limit" yaml:"search_limit"`
}

// ImportConfig contains settings of a legacy database migration.
type ImportConfig struct {
	// Variant is the legacy layout of the source database ("v1" or "v2").
	Variant string `mapstructure:"variant" yaml:"variant"`

	// Driver is the database/sql driver name of the source database.
	// Valid values: "mysql", "pgx", "sqlite".
	Driver string `mapstructure:"driver" yaml:"driver"`

	// DSN is the connection string of the source database.
	DSN string `mapstructure:"dsn" yaml:"dsn"`
}

// LogConfig provides typical settings for application logs.
type LogConfig struct {
	// Format can be 'json', 'text' or 'tint' (user-facing and colored).
	Format string `mapstructure:"format"      yaml:"format"`
	// Level of logging -- 'error', 'warn', 'info', 'debug'
	Level string `mapstructure:"level"       yaml:"level"`
	// Destination can be a log file (to default place), STDERR or STDOUT
	Destination string `mapstructure:"destination" yaml:"destination"`
}

// New creates a Config with sensible default values.
// The returned config is always valid and ready to use.
// Default values can be overridden using Option functions via Update().
func New() *Config {
	res := &Config{
		Database: DatabaseConfig{
			Driver:         "postgres",
			Host:           "localhost",
			Port:           5432,
			User:           "postgres",
			Password:       "postgres",
			Database:       "pdb",
			SSLMode:        "disable",
			MaxConnections: 10,
		},
		Store: StoreConfig{
			Cascade:     false,
			TextSearch:  true,
			SearchLimit: 100,
		},
		Import: ImportConfig{
			Variant: "v2",
			Driver:  "mysql",
		},
		Log: LogConfig{
			Format: "json",
			Level:  "info",
			// for now file is rewritten every time the log starts
			Destination: "file",
		},
	}

	return res
}

// SQLitePath returns the SQLite database file, falling back to the
// data directory when Path is not set.
func (c *Config) SQLitePath() string {
	if c.Database.Path != "" {
		return c.Database.Path
	}
	return SQLiteFilePath(c.HomeDir)
}
