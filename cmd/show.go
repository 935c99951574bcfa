package cmd

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/schema"
	"github.com/spf13/cobra"
)

// entryView is an entry with the rows that refer to it.
type entryView struct {
	schema.Entry
	ExpType   *schema.ExperimentType  `json:"experimentType,omitempty"`
	ExpClass  *schema.ExperimentClass `json:"experimentClass,omitempty"`
	CompType  *schema.CompositionType `json:"compositionType,omitempty"`
	Sequences []schema.Sequence       `json:"sequences"`
	Authors   []schema.Author         `json:"authors"`
	Sources   []schema.Source         `json:"sources"`
}

func getShowCmd() *cobra.Command {
	var compact bool

	showCmd := &cobra.Command{
		Use:   "show CODE",
		Short: "Print a catalog entry as JSON",
		Long: `Show prints an entry together with its experiment and composition
types, chain sequences, authors and source organisms.

Entry codes are case-sensitive.

Examples:
  pdbdb show 1ABC
  pdbdb show 1ABC --compact`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runShow(cmd.Context(), cfg, args[0], !compact, os.Stdout)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	showCmd.Flags().BoolVarP(&compact, "compact", "c", false,
		"print JSON in one line")

	return showCmd
}

func runShow(
	ctx context.Context,
	cfg *config.Config,
	code string,
	pretty bool,
	out io.Writer,
) error {
	if ctx == nil {
		ctx = context.Background()
	}

	op, st, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer op.Close()

	view, err := loadEntry(ctx, st, code)
	if err != nil {
		return err
	}

	enc := gnfmt.GNjson{Pretty: pretty}
	res, err := enc.Encode(view)
	if err != nil {
		return err
	}
	fmt.Fprintln(out, string(res))
	return nil
}

func loadEntry(
	ctx context.Context,
	st catalog.Store,
	code string,
) (entryView, error) {
	var res entryView
	var err error

	if res.Entry, err = st.GetEntry(ctx, code); err != nil {
		return res, err
	}

	if id := res.Entry.ExpTypeID; id != nil {
		et, err := st.GetExpType(ctx, *id)
		if err != nil {
			return res, err
		}
		res.ExpType = &et
		if cid := et.ClassID; cid != nil {
			ec, err := st.GetExpClass(ctx, *cid)
			if err != nil {
				return res, err
			}
			res.ExpClass = &ec
		}
	}

	if id := res.Entry.CompTypeID; id != nil {
		ct, err := st.GetCompType(ctx, *id)
		if err != nil {
			return res, err
		}
		res.CompType = &ct
	}

	if res.Sequences, err = st.ListSequences(ctx, code); err != nil {
		return res, err
	}
	if res.Authors, err = st.ListAuthorsByEntry(ctx, code); err != nil {
		return res, err
	}
	if res.Sources, err = st.ListSourcesByEntry(ctx, code); err != nil {
		return res, err
	}
	return res, nil
}
