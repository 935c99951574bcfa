package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/spf13/cobra"
)

func getSearchCmd() *cobra.Command {
	var field string
	var limit int

	fields := make([]string, 0, len(catalog.SearchFields()))
	for _, f := range catalog.SearchFields() {
		fields = append(fields, string(f))
	}

	searchCmd := &cobra.Command{
		Use:   "search PHRASE",
		Short: "Find catalog rows containing a phrase",
		Long: fmt.Sprintf(`Search finds rows whose text field contains PHRASE, ignoring case.
Wildcard characters in PHRASE are matched literally.

Fields: %s

Search can be switched off with 'store.text_search: false' in the
config file (PDBDB_STORE_TEXT_SEARCH=false).

Examples:
  pdbdb search lysozyme
  pdbdb search --field author 'Doe, J'
  pdbdb search -f source -l 5 sapiens`, strings.Join(fields, ", ")),
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			phrase := strings.Join(args, " ")
			err := runSearch(cmd.Context(), cfg, field, phrase, limit, os.Stdout)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	searchCmd.Flags().StringVarP(&field, "field", "f",
		string(catalog.SearchEntryHeader), "field to search in")
	searchCmd.Flags().IntVarP(&limit, "limit", "l", 0,
		"maximum number of results (0 uses store.search_limit)")

	return searchCmd
}

func runSearch(
	ctx context.Context,
	cfg *config.Config,
	fieldName, phrase string,
	limit int,
	out io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	field, err := catalog.ParseSearchField(fieldName)
	if err != nil {
		return err
	}

	op, st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer op.Close()

	res, err := st.Search(ctx, field, phrase, limit)
	if err != nil {
		return err
	}

	printSearch(out, res)
	gn.Info("Found <em>%s</em> rows", humanize.Comma(int64(res.Len())))
	return nil
}

func printSearch(out io.Writer, res catalog.SearchResult) {
	for _, a := range res.Authors {
		fmt.Fprintf(out, "%d\t%s\n", a.ID, a.Name)
	}
	for _, e := range res.Entries {
		fmt.Fprintf(out, "%s\t%s\t%s\n", e.Code, e.Header, e.Compound)
	}
	for _, s := range res.Sources {
		fmt.Fprintf(out, "%d\t%s\n", s.ID, s.Name)
	}
	for _, s := range res.Sequences {
		fmt.Fprintf(out, "%s\t%s\t%s\n", s.Code, s.Chain, s.Header)
	}
}
