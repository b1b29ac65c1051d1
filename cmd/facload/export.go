package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/exitcode"
	"github.com/gyeh/facilitystats/internal/export"
	"github.com/gyeh/facilitystats/internal/logging"
)

var configPath string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Run the pipeline and write an xlsx workbook or Parquet file",
	RunE:  runExport,
}

func init() {
	f := exportCmd.Flags()
	f.StringVar(&cfg.FilePath, "file", "", "Path to facility CSV (defaults to the bundled sample)")
	f.StringVar(&cfg.OutPath, "out", "facilities.xlsx", "Output path")
	f.StringVar(&cfg.Format, "format", "xlsx", "Output format: xlsx or parquet")
	f.StringVar(&configPath, "config", "", "YAML config selecting workbook sheets")
	rootCmd.AddCommand(exportCmd)
}

func runExport(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat)

	if cfg.FilePath != "" {
		if err := cfg.Validate(); err != nil {
			log.Error().Err(err).Msg("config validation failed")
			os.Exit(exitcode.UsageError)
		}
	}
	if configPath != "" {
		if err := cfg.LoadFromFile(configPath); err != nil {
			log.Error().Err(err).Msg("config file load failed")
			os.Exit(exitcode.UsageError)
		}
	}

	sourceName, text, _, err := loadSource(cfg.FilePath)
	if err != nil {
		log.Error().Err(err).Msg("failed to read input")
		os.Exit(exitcode.ValidationError)
	}

	res, err := dataset.Run(log, sourceName, text)
	if err != nil {
		log.Error().Err(err).Msg("processing failed")
		os.Exit(exitcode.ProcessError)
	}

	out, err := os.Create(cfg.OutPath)
	if err != nil {
		log.Error().Err(err).Msg("failed to create output file")
		os.Exit(exitcode.ExportError)
	}
	defer out.Close()

	switch cfg.Format {
	case "xlsx":
		err = export.WriteWorkbook(out, res, cfg.Sheets)
	case "parquet":
		err = export.WriteParquet(out, res.Facilities)
	default:
		log.Error().Str("format", cfg.Format).Msg("unknown export format")
		os.Exit(exitcode.UsageError)
	}
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.ExportError)
	}

	fmt.Printf("Export complete: %d facilities written to %s\n", len(res.Facilities), cfg.OutPath)
	return nil
}
