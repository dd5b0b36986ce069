package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"riftstats/internal/config"
	"riftstats/internal/db"
	"riftstats/internal/ingest"
	"riftstats/internal/riot"
	"riftstats/internal/storage"
)

func main() {
	configPath := flag.String("config", "", "Optional YAML config file")
	summoner := flag.String("summoner", "", "Summoner name to ingest")
	count := flag.Int("count", 20, "Number of recent matches to ingest")
	replay := flag.String("replay", "", "Archive file or directory to re-ingest")
	champions := flag.Bool("champions", false, "Load the champion catalog from Data Dragon")
	migrate := flag.Bool("migrate", false, "Create tables and indexes before ingesting")
	compress := flag.Bool("compress", false, "Compress closed archive files when done")
	flag.Parse()

	if *summoner == "" && *replay == "" && !*champions && !*migrate {
		fmt.Println("Usage:")
		fmt.Println("  ingest -summoner='Name' [-count=20] [-config=riftstats.yaml]")
		fmt.Println("  ingest -replay=./archive")
		fmt.Println("  ingest -champions")
		fmt.Println("  ingest -migrate")
		fmt.Println()
		fmt.Println("Database and API settings come from the environment or .env:")
		fmt.Println("  DB_DRIVER, DB, DBUSER, DBPASSWD, DBHOST, DBPORT, DB_PATH, RIOT_API_KEY")
		fmt.Println()
		fmt.Println("When ARCHIVE_PATH is set, fetched payloads are kept in rotating JSONL files:")
		fmt.Println("  hot/   - Active writes")
		fmt.Println("  warm/  - Closed files")
		fmt.Println("  cold/  - Compressed archives")
		os.Exit(1)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid configuration:\n%v\n", err)
		os.Exit(1)
	}

	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)

	if err := run(cfg, logger, options{
		summoner:  *summoner,
		count:     *count,
		replay:    *replay,
		champions: *champions,
		migrate:   *migrate,
		compress:  *compress,
	}); err != nil {
		logger.Error("ingest failed", "error", err)
		os.Exit(1)
	}
}

type options struct {
	summoner  string
	count     int
	replay    string
	champions bool
	migrate   bool
	compress  bool
}

func run(cfg *config.Config, logger *slog.Logger, opts options) error {
	ctx := ingest.SetupSignalHandler(logger, nil)

	store, err := db.Open(ctx, cfg.Database, db.WithLogger(logger))
	if err != nil {
		return err
	}
	defer store.Close()
	logger.Info("database connected", "driver", cfg.Database.Driver)

	if opts.migrate {
		if err := store.Migrate(ctx); err != nil {
			return fmt.Errorf("failed to migrate: %w", err)
		}
		logger.Info("schema ready")
	}

	pipelineOpts := []ingest.Option{ingest.WithLogger(logger)}

	var rotator *storage.FileRotator
	if cfg.Archive.Path != "" && opts.summoner != "" {
		rotator, err = storage.NewFileRotator(cfg.Archive.Path,
			storage.WithMaxMatches(cfg.Archive.MaxMatchesPerFile),
			storage.WithMaxAge(cfg.Archive.MaxFileAge),
			storage.WithLogger(logger))
		if err != nil {
			return err
		}
		pipelineOpts = append(pipelineOpts, ingest.WithArchive(rotator))
	}

	pipeline := ingest.New(store, pipelineOpts...)

	if opts.champions {
		if err := loadChampions(ctx, pipeline, logger); err != nil {
			return err
		}
	}

	if opts.replay != "" {
		rep, err := pipeline.Replay(ctx, opts.replay)
		printReport("replay", rep)
		if err != nil {
			return err
		}
	}

	if opts.summoner != "" {
		if err := cfg.ValidateRiot(); err != nil {
			return err
		}
		client, err := riot.NewClient(cfg.Riot.APIKey,
			riot.WithBaseURL(cfg.Riot.PlatformURL),
			riot.WithLogger(logger))
		if err != nil {
			return err
		}

		rep, runErr := pipeline.Run(ctx, client, opts.summoner, opts.count)
		printReport("run", rep)
		if rotator != nil {
			if err := rotator.Close(); err != nil {
				logger.Warn("failed to close archive", "error", err)
			}
		}
		if runErr != nil && !errors.Is(runErr, context.Canceled) {
			return runErr
		}
	}

	if opts.compress && cfg.Archive.Path != "" {
		compressor := rotator
		if compressor == nil {
			// no writes this run; the rotator only lays out the directories
			if compressor, err = storage.NewFileRotator(cfg.Archive.Path, storage.WithLogger(logger)); err != nil {
				return err
			}
			if err := compressor.Close(); err != nil {
				return err
			}
		}
		n, err := compressor.CompressWarm()
		if err != nil {
			return fmt.Errorf("failed to compress archive: %w", err)
		}
		logger.Info("archive compressed", "files", n)
	}
	return nil
}

func loadChampions(ctx context.Context, pipeline *ingest.Pipeline, logger *slog.Logger) error {
	dd := riot.NewDataDragon(riot.DefaultDataDragonURL)

	version, err := dd.LatestVersion(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch game version: %w", err)
	}
	champions, err := dd.Champions(ctx, version)
	if err != nil {
		return fmt.Errorf("failed to fetch champions: %w", err)
	}
	logger.Info("champion catalog fetched", "version", version, "champions", len(champions))

	rep, err := pipeline.LoadChampions(ctx, champions)
	printReport("champions", rep)
	return err
}

func printReport(label string, rep ingest.Report) {
	fmt.Printf("\n=== %s ===\n", label)
	fmt.Printf("Matches:  %d\n", rep.Matches)
	fmt.Printf("Skipped:  %d\n", rep.Skipped)
	fmt.Printf("Inserted: %d\n", rep.Inserted)
	fmt.Printf("Rejected: %d\n", rep.Rejected)
	fmt.Printf("Failed:   %d\n", rep.Failed)
}
