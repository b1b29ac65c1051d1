package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/db"
	"github.com/gyeh/facilitystats/internal/exitcode"
	"github.com/gyeh/facilitystats/internal/logging"
)

var ingestCmd = &cobra.Command{
	Use:   "ingest",
	Short: "Process a facility CSV and bulk-load it into the database",
	RunE:  runIngest,
}

func init() {
	f := ingestCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to facility CSV (defaults to the bundled sample)")
	f.BoolVar(&cfg.Force, "force", false, "Re-import even if the file SHA already exists")
	f.BoolVar(&cfg.KeepBatch, "keep-batch", false, "Keep partially loaded rows after a failed run")
	rootCmd.AddCommand(ingestCmd)
}

func runIngest(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)
	ctx := context.Background()

	if cfg.FilePath != "" {
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("config validation failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if cfg.DSN == "" {
		log.Error().Msg("--dsn or DATABASE_URL is required")
		os.Exit(exitcode.UsageError)
	}

	sourceName, text, sha, err := loadSource(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.ValidationError)
	}

	res, err := dataset.Run(log, sourceName, text)
	if err != nil {
		var pe *dataset.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("processing failed")
			os.Exit(exitcode.ValidationError)
		}
		log.Error().Err(err).Msg("processing failed")
		os.Exit(exitcode.ProcessError)
	}

	pool, err := db.NewPool(ctx, cfg.DSN)
	if err != nil {
		log.Error().Err(err).Msg("database connection failed")
		os.Exit(exitcode.DBConnError)
	}
	defer pool.Close()

	persisted, err := db.Persist(ctx, pool, log, sourceName, sha, res, cfg.Force, cfg.KeepBatch)
	if err != nil {
		log.Error().Err(err).Msg("persist failed")
		os.Exit(exitcode.CopyError)
	}

	if persisted.AlreadyLoaded {
		fmt.Printf("Dataset already loaded (dataset %d); use --force to re-import\n", persisted.DatasetID)
		return nil
	}
	fmt.Printf("Ingest complete: %d facilities, %d regions, dataset %d (%.1fs)\n",
		persisted.RowsCopied, len(res.Regions), persisted.DatasetID, persisted.Duration.Seconds())
	return nil
}
