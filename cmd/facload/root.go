package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitystats/internal/config"
	"github.com/gyeh/facilitystats/internal/exitcode"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "facload",
	Short: "Ghana health-facility CSV cleaning and analysis pipeline",
	Long: "Reads semi-structured health-facility CSV exports, normalizes them into " +
		"typed records, scores data completeness, classifies medical desert risk " +
		"per region, and serves, exports, or bulk-loads the results.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.DSN, "dsn", os.Getenv("DATABASE_URL"), "Postgres connection string (or set DATABASE_URL)")
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
