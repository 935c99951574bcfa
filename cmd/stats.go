package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"github.com/spf13/cobra"
)

func getStatsCmd() *cobra.Command {
	statsCmd := &cobra.Command{
		Use:   "stats",
		Short: "Print the number of rows in every catalog table",
		Long: `Stats counts the rows of each catalog table.

Examples:
  pdbdb stats`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runStats(cmd.Context(), cfg, os.Stdout)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}
	return statsCmd
}

func runStats(ctx context.Context, cfg *config.Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	start := time.Now()

	op, st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer op.Close()

	counts, err := st.Counts(ctx)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	for _, table := range schema.Tables() {
		fmt.Fprintf(w, "%s\t%s\n", table, humanize.Comma(counts[table]))
	}
	_ = w.Flush()

	gn.Info("Counted in <em>%s</em>",
		gnfmt.TimeString(time.Since(start).Seconds()))
	return nil
}
