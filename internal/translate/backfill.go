package translate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/taibuivan/libris/internal/platform/event"
)

// Target is one table the backfill walks.
type Target struct {
	Entity event.Entity
	Store  Store
}

// Report counts processed records per entity.
type Report struct {
	Processed map[event.Entity]int
	Filled    int
	DryRun    bool
}

// Count returns the processed count for entity.
func (r Report) Count(entity event.Entity) int {
	return r.Processed[entity]
}

// String renders the report the way the backfill command prints it.
func (r Report) String() string {
	line := fmt.Sprintf("Processed Authors: %d, Books: %d", r.Count(event.Author), r.Count(event.Book))
	if r.DryRun {
		line += " (dry run)"
	}
	return line
}

// Backfill fills the missing variants of records that were stored before
// automatic translation existed or while the provider was unavailable.
type Backfill struct {
	filler *Filler
	logger *slog.Logger
}

// NewBackfill builds a [Backfill].
func NewBackfill(filler *Filler, logger *slog.Logger) *Backfill {
	return &Backfill{filler: filler, logger: logger}
}

/*
Run walks every record of every target.

A record counts as processed when it has at least one field with source text.
With dryRun set nothing is translated or written and only the counts are
produced.

Returns:
  - Report: Processed counts per entity
  - error: A failed listing aborts the run
*/
func (backfill *Backfill) Run(ctx context.Context, targets []Target, dryRun bool) (Report, error) {
	report := Report{Processed: make(map[event.Entity]int), DryRun: dryRun}

	for _, target := range targets {
		records, err := target.Store.ListTranslatable(ctx)
		if err != nil {
			return report, fmt.Errorf("backfill: list %s records: %w", target.Entity, err)
		}

		for _, rec := range records {
			if err := ctx.Err(); err != nil {
				return report, err
			}

			pairs := SourcePairs(rec)
			if len(pairs) == 0 {
				continue
			}
			report.Processed[target.Entity]++

			if dryRun {
				continue
			}
			report.Filled += len(backfill.filler.Fill(ctx, target.Store, rec, pairs))
		}

		backfill.logger.InfoContext(ctx, "backfill_entity_done",
			slog.String("entity", string(target.Entity)),
			slog.Int("processed", report.Processed[target.Entity]),
			slog.Bool("dry_run", dryRun),
		)
	}

	return report, nil
}
