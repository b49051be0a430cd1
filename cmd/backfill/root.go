package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	goredis "github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"

	"github.com/taibuivan/libris/internal/library/author"
	"github.com/taibuivan/libris/internal/library/book"
	"github.com/taibuivan/libris/internal/platform/config"
	"github.com/taibuivan/libris/internal/platform/constants"
	"github.com/taibuivan/libris/internal/platform/event"
	pgstore "github.com/taibuivan/libris/internal/platform/postgres"
	redisstore "github.com/taibuivan/libris/internal/platform/redis"
	"github.com/taibuivan/libris/internal/translate"
)

// Entity selectors accepted by --entity.
const (
	entityAll    = "all"
	entityAuthor = "author"
	entityBook   = "book"
)

var (
	dryRun  bool
	entity  string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "backfill",
	Short: "Translate missing Hindi and Tamil variants of stored records",
	Long: `backfill walks every author, then every book, and fills each empty
Hindi or Tamil variant from the English text. Variants that already hold
text are never overwritten, so the command can be re-run safely.

With --dry-run nothing is translated or written; only the records that
would be processed are counted. When AUTO_TRANSLATE_ENABLED is false the
records are still counted but nothing is translated.`,
	Version:      constants.AppVersion,
	SilenceUsage: true,
	RunE:         runBackfill,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Count records without translating or writing")
	rootCmd.Flags().StringVar(&entity, "entity", entityAll, "Records to process: author, book or all")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Debug logging")
}

func runBackfill(cmd *cobra.Command, _ []string) error {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("app", "libris-backfill"))

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	pool, err := pgstore.NewPool(ctx, cfg.Database, log)
	if err != nil {
		return err
	}
	defer pool.Close()

	var rdb *goredis.Client
	if cfg.Redis.Enabled() {
		rdb, err = redisstore.NewClient(ctx, cfg.Redis, log)
		if err != nil {
			return err
		}
		defer rdb.Close()
	}

	// Direct translation writes publish nothing, so the bus has no subscribers.
	bus := event.NewBus(log)
	targets, err := selectTargets(entity,
		author.NewPostgresRepository(pool, bus),
		book.NewPostgresRepository(pool, bus),
	)
	if err != nil {
		return err
	}

	filler := newFiller(cfg, rdb, log)
	if !filler.Enabled() && !dryRun {
		log.WarnContext(ctx, "backfill_translation_disabled",
			slog.String("hint", "set AUTO_TRANSLATE_ENABLED=true to fill variants"))
	}

	report, err := translate.NewBackfill(filler, log).Run(ctx, targets, dryRun)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), report.String())
	return nil
}

// newFiller builds the fill service with the same switch the API uses.
func newFiller(cfg *config.Config, rdb *goredis.Client, log *slog.Logger) *translate.Filler {
	return translate.NewFiller(translate.NewProvider(cfg.Translate, rdb, log), cfg.AutoTranslate, log)
}

// selectTargets maps the --entity flag to the stores to walk, authors first.
func selectTargets(selector string, authors, books translate.Store) ([]translate.Target, error) {
	authorTarget := translate.Target{Entity: event.Author, Store: authors}
	bookTarget := translate.Target{Entity: event.Book, Store: books}

	switch selector {
	case entityAll:
		return []translate.Target{authorTarget, bookTarget}, nil
	case entityAuthor:
		return []translate.Target{authorTarget}, nil
	case entityBook:
		return []translate.Target{bookTarget}, nil
	default:
		return nil, fmt.Errorf("backfill: unknown entity %q (want author, book or all)", selector)
	}
}
