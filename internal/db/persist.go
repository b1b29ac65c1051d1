package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/model"
)

// PersistResult holds the identifiers and counts from one persistence run.
type PersistResult struct {
	DatasetID     int64
	LoadBatchID   uuid.UUID
	RowsCopied    int64
	AlreadyLoaded bool
	Duration      time.Duration
}

// Persist writes a processed dataset to Postgres: registers the dataset by
// content hash, COPY-loads the facilities, and stores the region risk table.
// A dataset whose SHA-256 is already loaded is skipped unless force is set.
// On a mid-load failure the partial batch is deleted unless keepBatch is set.
func Persist(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, sourceName, sha string, res *dataset.Result, force, keepBatch bool) (*PersistResult, error) {
	start := time.Now()

	datasetID, alreadyLoaded, err := registerDataset(ctx, pool, sourceName, sha, len(res.Facilities), force)
	if err != nil {
		return nil, fmt.Errorf("register dataset: %w", err)
	}
	if alreadyLoaded {
		log.Info().
			Int64("dataset_id", datasetID).
			Str("sha256", sha).
			Msg("dataset already loaded, skipping (use --force to re-import)")
		return &PersistResult{DatasetID: datasetID, AlreadyLoaded: true, Duration: time.Since(start)}, nil
	}

	batchID := uuid.New()

	if err := updateStatus(ctx, pool, datasetID, "staging"); err != nil {
		return nil, err
	}

	rows, err := stageFacilities(ctx, pool, datasetID, batchID, res.Facilities)
	if err != nil {
		failBatch(ctx, pool, log, datasetID, batchID, keepBatch)
		return nil, fmt.Errorf("stage facilities: %w", err)
	}
	log.Info().
		Int64("dataset_id", datasetID).
		Int64("rows_copied", rows).
		Msg("facilities staged")

	if err := storeRegionRisk(ctx, pool, datasetID, res.Regions); err != nil {
		failBatch(ctx, pool, log, datasetID, batchID, keepBatch)
		return nil, fmt.Errorf("store region risk: %w", err)
	}

	if err := updateStatus(ctx, pool, datasetID, "loaded"); err != nil {
		return nil, err
	}

	dur := time.Since(start)
	log.Info().
		Int64("dataset_id", datasetID).
		Int64("rows_copied", rows).
		Int("regions", len(res.Regions)).
		Str("duration", dur.String()).
		Msg("persist complete")

	return &PersistResult{
		DatasetID:   datasetID,
		LoadBatchID: batchID,
		RowsCopied:  rows,
		Duration:    dur,
	}, nil
}

func registerDataset(ctx context.Context, pool *pgxpool.Pool, sourceName, sha string, total int, force bool) (int64, bool, error) {
	var datasetID int64
	err := pool.QueryRow(ctx,
		`INSERT INTO facility.datasets (source_name, source_sha256, total_facilities)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (source_sha256) DO NOTHING
		 RETURNING dataset_id`,
		sourceName, sha, total,
	).Scan(&datasetID)

	if errors.Is(err, pgx.ErrNoRows) {
		// Already exists (ON CONFLICT DO NOTHING returned no rows).
		var status string
		if err := pool.QueryRow(ctx,
			"SELECT dataset_id, status FROM facility.datasets WHERE source_sha256 = $1",
			sha,
		).Scan(&datasetID, &status); err != nil {
			return 0, false, fmt.Errorf("lookup existing dataset: %w", err)
		}
		if !force && status == "loaded" {
			return datasetID, true, nil
		}

		// Re-import: clear prior rows and reset status.
		if _, err := pool.Exec(ctx,
			"DELETE FROM facility.facilities WHERE dataset_id = $1", datasetID); err != nil {
			return 0, false, fmt.Errorf("clear prior facilities: %w", err)
		}
		if _, err := pool.Exec(ctx,
			"DELETE FROM facility.region_risk WHERE dataset_id = $1", datasetID); err != nil {
			return 0, false, fmt.Errorf("clear prior region risk: %w", err)
		}
		if err := updateStatus(ctx, pool, datasetID, "pending"); err != nil {
			return 0, false, err
		}
		return datasetID, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return datasetID, false, nil
}

// stageFacilities COPY-loads facilities through a channel-backed source.
func stageFacilities(ctx context.Context, pool *pgxpool.Pool, datasetID int64, batchID uuid.UUID, facilities []model.Facility) (int64, error) {
	ch := make(chan *model.StagingRow, 256)
	go func() {
		defer close(ch)
		for i := range facilities {
			row := &model.StagingRow{
				DatasetID:   datasetID,
				LoadBatchID: batchID,
				Facility:    &facilities[i],
			}
			select {
			case ch <- row:
			case <-ctx.Done():
				return
			}
		}
	}()

	return pool.CopyFrom(ctx,
		pgx.Identifier{"facility", "facilities"},
		model.FacilityColumns(),
		NewChannelSource(ctx, ch),
	)
}

func storeRegionRisk(ctx context.Context, pool *pgxpool.Pool, datasetID int64, regions []model.RegionRisk) error {
	batch := &pgx.Batch{}
	for _, r := range regions {
		batch.Queue(
			`INSERT INTO facility.region_risk
			 (dataset_id, region, total_facilities, hospitals, clinics,
			  with_doctors, with_beds, with_emergency, avg_completeness, risk_level)
			 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
			datasetID, r.Region, r.TotalFacilities, r.Hospitals, r.Clinics,
			r.WithDoctors, r.WithBeds, r.WithEmergency, r.AvgCompleteness, string(r.RiskLevel),
		)
	}
	br := pool.SendBatch(ctx, batch)
	defer br.Close()
	for range regions {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func updateStatus(ctx context.Context, pool *pgxpool.Pool, datasetID int64, status string) error {
	_, err := pool.Exec(ctx,
		"UPDATE facility.datasets SET status = $2 WHERE dataset_id = $1",
		datasetID, status,
	)
	if err != nil {
		return fmt.Errorf("update dataset status to %s: %w", status, err)
	}
	return nil
}

// failBatch marks the dataset failed and clears the partial batch unless
// keepBatch asks to retain it for inspection.
func failBatch(ctx context.Context, pool *pgxpool.Pool, log zerolog.Logger, datasetID int64, batchID uuid.UUID, keepBatch bool) {
	_ = updateStatus(ctx, pool, datasetID, "failed")
	if keepBatch {
		log.Warn().
			Str("load_batch_id", batchID.String()).
			Msg("keeping partial batch for inspection")
		return
	}
	if err := DeleteBatch(ctx, pool, batchID); err != nil {
		log.Error().Err(err).Msg("partial batch cleanup failed")
	}
}

// DeleteBatch removes facilities from a specific load batch (cleanup for
// failed runs).
func DeleteBatch(ctx context.Context, pool *pgxpool.Pool, batchID uuid.UUID) error {
	_, err := pool.Exec(ctx,
		"DELETE FROM facility.facilities WHERE load_batch_id = $1",
		batchID,
	)
	return err
}
