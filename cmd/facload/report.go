package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/exitcode"
	"github.com/gyeh/facilitystats/internal/logging"
	"github.com/gyeh/facilitystats/internal/model"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Run the pipeline and print summary and region risk tables",
	RunE:  runReport,
}

func init() {
	reportCmd.Flags().StringVar(&cfg.FilePath, "file", "", "Path to facility CSV (defaults to the bundled sample)")
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
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

	res, err := dataset.Run(log, sourceName, text)
	if err != nil {
		log.Error().Err(err).Msg("processing failed")
		os.Exit(exitcode.ProcessError)
	}
	s := res.Summary

	fmt.Println("=== Dataset summary ===")
	fmt.Printf("Total facilities:          %d\n", s.TotalFacilities)
	fmt.Printf("Average completeness:      %d%%\n", s.AverageCompletenessScore)
	fmt.Printf("Incomplete data (<50%%):    %d\n", s.FacilitiesWithIncompleteData)
	fmt.Printf("No medical data:           %d\n", s.FacilitiesWithNoMedicalData)
	fmt.Printf("With doctor count:         %d\n", s.FacilitiesWithDoctors)
	fmt.Printf("With bed capacity:         %d\n", s.FacilitiesWithBeds)
	fmt.Printf("With emergency capability: %d\n", s.FacilitiesWithEmergencyCapability)
	fmt.Println()
	fmt.Println("By facility type:")
	for _, t := range model.AllFacilityTypes {
		fmt.Printf("  %-10s %6d\n", t, s.ByFacilityType[t])
	}
	fmt.Println()
	fmt.Println("=== Region risk ===")
	fmt.Printf("%-28s %6s %6s %6s %6s %5s  %s\n",
		"Region", "Total", "Hosp", "Clin", "Emerg", "Avg%", "Risk")
	for _, r := range res.Regions {
		fmt.Printf("%-28s %6d %6d %6d %6d %5d  %s\n",
			r.Region, r.TotalFacilities, r.Hospitals, r.Clinics,
			r.WithEmergency, r.AvgCompleteness, r.RiskLevel)
	}

	return nil
}
