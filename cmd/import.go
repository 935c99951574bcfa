package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/internal/iolegacy"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/legacy"
	"github.com/pdbbrowser/pdbdb/pkg/lifecycle"
	"github.com/spf13/cobra"
)

func getImportCmd() *cobra.Command {
	var variant, driver, dsn string

	importCmd := &cobra.Command{
		Use:   "import",
		Short: "Import a legacy PDB database into the catalog",
		Long: `Import reads a database in one of the legacy layouts and writes its
rows into the catalog, keeping the original ids.

Legacy layouts:
  v1  MyISAM/latin1 tables: author, entry, comptype, expClasse, ...
  v2  InnoDB/utf8mb4 tables: authors, entries, compTypes, expClasses, ...

Rows the catalog rejects (dangling references, repeated author
links) are skipped and reported.

The catalog schema has to exist, run 'pdbdb create' first.

Examples:
  pdbdb import --variant v1 --dsn 'user:pass@tcp(localhost:3306)/pdb'
  pdbdb import -v v2 -d pgx --dsn 'postgres://user@localhost/pdb_old'
  pdbdb import -v v2 -d sqlite --dsn ./old.sqlite`,
		RunE: func(cmd *cobra.Command, args []string) error {
			var importOpts []config.Option
			if cmd.Flags().Changed("variant") {
				importOpts = append(importOpts, config.OptImportVariant(variant))
			}
			if cmd.Flags().Changed("driver") {
				importOpts = append(importOpts, config.OptImportDriver(driver))
			}
			importOpts = append(importOpts, config.OptImportDSN(dsn))
			cfg.Update(importOpts)

			err := runImport(cmd.Context(), cfg, os.Stdout)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	importCmd.Flags().StringVarP(&variant, "variant", "v", "v2",
		fmt.Sprintf("legacy layout of the source database %v", legacy.Names()))
	importCmd.Flags().StringVarP(&driver, "driver", "d", "mysql",
		"driver of the source database (mysql, pgx, sqlite)")
	importCmd.Flags().StringVar(&dsn, "dsn", "",
		"connection string of the source database")
	_ = importCmd.MarkFlagRequired("dsn")

	return importCmd
}

func runImport(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer op.Close()

	report, err := iolegacy.New(cfg, st).Import(ctx)
	if err != nil {
		return err
	}

	printReport(out, report)
	return nil
}

func printReport(out io.Writer, report lifecycle.ImportReport) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintln(w, "table\tread\twritten\tskipped\t")
	for _, tr := range report.Tables {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t\n",
			tr.Table,
			humanize.Comma(int64(tr.Read)),
			humanize.Comma(int64(tr.Written)),
			humanize.Comma(int64(tr.Skipped)),
		)
	}
	_ = w.Flush()
}
