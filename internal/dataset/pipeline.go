// Package dataset runs the full CSV-to-insights pipeline: tokenize, build
// facilities, summarize, and classify region risk. One pass per dataset; the
// result is immutable and replaced wholesale on reload.
package dataset

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/gyeh/facilitystats/internal/csvread"
	"github.com/gyeh/facilitystats/internal/model"
	"github.com/gyeh/facilitystats/internal/normalize"
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// Result is the immutable output of one pipeline run. Consumers must treat
// every field as read-only.
type Result struct {
	Facilities []model.Facility
	Summary    model.DataSummary
	Regions    []model.RegionRisk
	Stats      model.LoadStats
}

// Run executes the pipeline over raw CSV text: parse → build → summarize →
// regions. Individual malformed fields degrade to defaults inside the
// builder; only an unrecognizable header fails the run.
func Run(log zerolog.Logger, sourceName, text string) (*Result, error) {
	totalStart := time.Now()

	// Phase 1: Parse
	parseStart := time.Now()
	table := csvread.Parse(text)
	if err := table.Validate(); err != nil {
		return nil, &PipelineError{Phase: "parse", Err: err}
	}
	parseDur := time.Since(parseStart)
	log.Info().
		Str("source", sourceName).
		Int("rows", len(table.Rows)).
		Int("headers", len(table.Headers)).
		Dur("duration", parseDur).
		Msg("parse complete")

	// Phase 2: Build
	buildStart := time.Now()
	facilities := make([]model.Facility, len(table.Rows))
	for i, row := range table.Rows {
		facilities[i] = normalize.BuildFacility(row, i)
	}
	buildDur := time.Since(buildStart)
	log.Info().
		Int("facilities", len(facilities)).
		Dur("duration", buildDur).
		Msg("build complete")

	// Phase 3: Summarize
	summaryStart := time.Now()
	summary := Summarize(facilities)
	summaryDur := time.Since(summaryStart)

	// Phase 4: Region risk
	regionsStart := time.Now()
	regions := AnalyzeRegions(facilities)
	regionsDur := time.Since(regionsStart)

	log.Info().
		Int("regions", len(regions)).
		Int("avg_completeness", summary.AverageCompletenessScore).
		Dur("duration", summaryDur+regionsDur).
		Msg("analysis complete")

	return &Result{
		Facilities: facilities,
		Summary:    summary,
		Regions:    regions,
		Stats: model.LoadStats{
			SourceName:      sourceName,
			RowsRead:        int64(len(table.Rows)),
			FacilitiesBuilt: int64(len(facilities)),
			RegionsAnalyzed: int64(len(regions)),
			DurationParse:   parseDur,
			DurationBuild:   buildDur,
			DurationSummary: summaryDur,
			DurationRegions: regionsDur,
			DurationTotal:   time.Since(totalStart),
		},
	}, nil
}
