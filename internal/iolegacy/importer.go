// Package iolegacy implements the Importer interface that migrates a
// legacy-layout catalog database (MySQL, PostgreSQL or SQLite) into the
// canonical store. This is an impure I/O package.
package iolegacy

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/google/uuid"
	"github.com/pdbbrowser/pdbdb/pkg/catalog"
	"github.com/pdbbrowser/pdbdb/pkg/config"
	"github.com/pdbbrowser/pdbdb/pkg/legacy"
	"github.com/pdbbrowser/pdbdb/pkg/lifecycle"
)

// batchSize is the number of rows written in one transaction.
const batchSize = 1000

type importer struct {
	cfg   *config.Config
	store catalog.Store
}

// New creates an Importer that writes into st.
func New(cfg *config.Config, st catalog.Store) lifecycle.Importer {
	return &importer{cfg: cfg, store: st}
}

// Import reads every legacy table in load order and writes its rows
// through the catalog store, keeping the original ids.
func (im *importer) Import(ctx context.Context) (lifecycle.ImportReport, error) {
	var report lifecycle.ImportReport
	startTime := time.Now()

	variant, err := legacy.Get(im.cfg.Import.Variant)
	if err != nil {
		return report, err
	}
	report.Variant = variant.Name
	report.RunID = uuid.NewString()

	driver := im.cfg.Import.Driver
	src, err := openSource(ctx, driver, im.cfg.Import.DSN)
	if err != nil {
		return report, err
	}
	defer src.Close()

	log := slog.With("run_id", report.RunID, "variant", variant.Name)
	log.Info("Starting legacy import",
		"driver", driver,
		"charset", variant.Charset,
	)

	for i, tbl := range variant.Tables {
		gn.Info("(%d/%d) Importing <em>%s</em> from <em>%s</em>...",
			i+1, len(variant.Tables), tbl.Canonical, tbl.Legacy)

		tr, err := im.importTable(ctx, src, tbl, quoter(driver), variant.IsLatin1())
		report.Tables = append(report.Tables, tr)
		if err != nil {
			log.Error("Legacy import failed", "table", tbl.Canonical, "error", err)
			return report, err
		}

		log.Info("Table imported",
			"table", tr.Table,
			"read", tr.Read,
			"written", tr.Written,
			"skipped", tr.Skipped,
		)
		gn.Message("<em>Imported %s of %s rows</em>",
			humanize.Comma(int64(tr.Written)), humanize.Comma(int64(tr.Read)))
	}

	duration := time.Since(startTime)
	log.Info("Legacy import complete",
		"skipped", report.Skipped(),
		"duration", gnfmt.TimeString(duration.Seconds()),
	)
	gn.Info(`Import complete
    Rows skipped: %s
    Elapsed time: <em>%s</em>
`,
		humanize.Comma(int64(report.Skipped())),
		gnfmt.TimeString(duration.Seconds()),
	)

	return report, nil
}

func (im *importer) importTable(
	ctx context.Context,
	src *sql.DB,
	tbl legacy.Table,
	quote func(string) string,
	latin1 bool,
) (lifecycle.TableReport, error) {
	tr := lifecycle.TableReport{Table: tbl.Canonical}

	var total int
	q := fmt.Sprintf("SELECT COUNT(*) FROM %s", quote(tbl.Legacy))
	if err := src.QueryRowContext(ctx, q).Scan(&total); err != nil {
		return tr, ReadError(tbl.Legacy, err)
	}

	rows, err := src.QueryContext(ctx, tbl.SelectSQL(quote))
	if err != nil {
		return tr, ReadError(tbl.Legacy, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return tr, ReadError(tbl.Legacy, err)
	}

	bar := pb.Full.Start(total)
	bar.Set("prefix", tbl.Canonical+": ")
	bar.Set(pb.CleanOnFinish, true)
	defer bar.Finish()

	batch := make([]record, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		written, skipped, err := im.writeBatch(ctx, tbl.Canonical, batch)
		if err != nil {
			return err
		}
		tr.Written += written
		tr.Skipped += skipped
		bar.Add(len(batch))
		batch = batch[:0]
		return nil
	}

	for rows.Next() {
		r, err := scanRow(rows, cols)
		if err != nil {
			return tr, ReadError(tbl.Legacy, err)
		}
		tr.Read++
		batch = append(batch, toRecord(tbl.Canonical, r, latin1))
		if len(batch) == batchSize {
			if err = flush(); err != nil {
				return tr, err
			}
		}
	}
	if err = rows.Err(); err != nil {
		return tr, ReadError(tbl.Legacy, err)
	}

	return tr, flush()
}

// writeBatch writes records in one transaction. Rows that break a
// catalog constraint are skipped, any other error rolls the batch
// back.
func (im *importer) writeBatch(
	ctx context.Context,
	table string,
	batch []record,
) (written, skipped int, err error) {
	if err = ctx.Err(); err != nil {
		return 0, 0, CancelledError(err)
	}

	err = im.store.RunInTx(ctx, func(tx catalog.Store) error {
		written, skipped = 0, 0
		for _, rec := range batch {
			err := rec(ctx, tx)
			switch {
			case err == nil:
				written++
			case catalog.IsConstraintViolation(err):
				skipped++
				slog.Debug("Legacy row skipped",
					"table", table,
					"reason", err,
				)
			default:
				return err
			}
		}
		return nil
	})
	return written, skipped, err
}
