package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/exitcode"
	"github.com/gyeh/facilitystats/internal/logging"
	"github.com/gyeh/facilitystats/internal/observability"
	"github.com/gyeh/facilitystats/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pipeline once and serve the results over a JSON API",
	RunE:  runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to facility CSV (defaults to the bundled sample)")
	f.StringVar(&cfg.ListenAddr, "listen", ":8080", "Listen address")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfg.FilePath != "" {
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("config validation failed")
			os.Exit(exitcode.UsageError)
		}
	}

	sourceName, text, _, err := loadSource(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.ValidationError)
	}

	metrics := observability.NewMetrics()
	store := dataset.NewStore(metrics)
	if err := store.Load(log, sourceName, text); err != nil {
		log.Error().Err(err).Msg("dataset load failed")
		os.Exit(exitcode.ProcessError)
	}

	srv := server.New(store, log, metrics)
	if err := srv.Run(cfg.ListenAddr); err != nil {
		log.Error().Err(err).Msg("server stopped")
		os.Exit(exitcode.ProcessError)
	}
	return nil
}
