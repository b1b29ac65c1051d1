package db_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	embeddedpostgres "github.com/fergusstrange/embedded-postgres"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"

	"github.com/gyeh/facilitystats/internal/dataset"
	"github.com/gyeh/facilitystats/internal/db"
	"github.com/gyeh/facilitystats/internal/normalize"
)

const (
	testPort     = 15432
	testDB       = "factest"
	testUser     = "postgres"
	testPassword = "postgres"
)

var (
	testDSN string
	pg      *embeddedpostgres.EmbeddedPostgres
)

const integrationCSV = `unique_id,name,facilityTypeId,address_city,address_stateOrRegion,phone_numbers,specialties,capability,numberDoctors,capacity
gh-1,Korle Bu Teaching Hospital,hospital,Accra,Greater Accra Region,"[""+233 302 739 510""]","[""Cardiology"",""Surgery""]","[""24/7 emergency care""]",120,400
gh-2,Suntreso Clinic,clinic,Kumasi,Ashanti Region,,"[""General Practice""]",,3,
gh-3,Tamale Pharmacy,pharmacy,Tamale,Northern Region,,,,,
`

func TestMain(m *testing.M) {
	if os.Getenv("SKIP_DB_TESTS") != "" {
		fmt.Fprintln(os.Stderr, "SKIP: SKIP_DB_TESTS is set")
		os.Exit(0)
	}

	testDSN = fmt.Sprintf("postgresql://%s:%s@localhost:%d/%s?sslmode=disable",
		testUser, testPassword, testPort, testDB)

	pg = embeddedpostgres.NewDatabase(
		embeddedpostgres.DefaultConfig().
			Port(uint32(testPort)).
			Database(testDB).
			Username(testUser).
			Password(testPassword).
			Version(embeddedpostgres.V16).
			StartTimeout(30*time.Second),
	)

	if err := pg.Start(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to start embedded postgres: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()

	if err := pg.Stop(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to stop embedded postgres: %v\n", err)
	}

	os.Exit(code)
}

// setupDB creates a connection pool against a clean schema with migrations
// applied.
func setupDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, testDSN)
	if err != nil {
		t.Fatalf("connect: %v", err)
	}

	if _, err := pool.Exec(ctx, "DROP SCHEMA IF EXISTS facility CASCADE"); err != nil {
		t.Fatalf("drop schema: %v", err)
	}
	if err := db.ApplyMigrations(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	t.Cleanup(pool.Close)
	return pool
}

func runPipeline(t *testing.T) *dataset.Result {
	t.Helper()
	res, err := dataset.Run(zerolog.Nop(), "integration", integrationCSV)
	if err != nil {
		t.Fatalf("pipeline: %v", err)
	}
	return res
}

func TestPersist_FreshDataset(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	res := runPipeline(t)
	sha := normalize.TextHash(integrationCSV)

	pr, err := db.Persist(ctx, pool, zerolog.Nop(), "integration", sha, res, false, false)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}
	if pr.AlreadyLoaded {
		t.Fatal("fresh dataset should not report already loaded")
	}
	if pr.RowsCopied != 3 {
		t.Errorf("rows copied: got %d, want 3", pr.RowsCopied)
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM facility.facilities WHERE dataset_id = $1",
		pr.DatasetID).Scan(&count); err != nil {
		t.Fatalf("count facilities: %v", err)
	}
	if count != 3 {
		t.Errorf("facilities in db: got %d", count)
	}

	var status string
	if err := pool.QueryRow(ctx,
		"SELECT status FROM facility.datasets WHERE dataset_id = $1",
		pr.DatasetID).Scan(&status); err != nil {
		t.Fatalf("dataset status: %v", err)
	}
	if status != "loaded" {
		t.Errorf("status: got %q, want loaded", status)
	}

	var regionCount int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM facility.region_risk WHERE dataset_id = $1",
		pr.DatasetID).Scan(&regionCount); err != nil {
		t.Fatalf("count regions: %v", err)
	}
	if regionCount != 3 {
		t.Errorf("regions in db: got %d", regionCount)
	}
}

func TestPersist_ArrayAndNullableColumns(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	res := runPipeline(t)

	pr, err := db.Persist(ctx, pool, zerolog.Nop(), "integration",
		normalize.TextHash(integrationCSV), res, false, false)
	if err != nil {
		t.Fatalf("Persist: %v", err)
	}

	var specialties []string
	var doctors *int
	var email *string
	if err := pool.QueryRow(ctx,
		`SELECT specialties, number_of_doctors, email
		 FROM facility.facilities
		 WHERE dataset_id = $1 AND facility_id = 'gh-1'`,
		pr.DatasetID).Scan(&specialties, &doctors, &email); err != nil {
		t.Fatalf("select gh-1: %v", err)
	}
	if len(specialties) != 2 || specialties[0] != "Cardiology" {
		t.Errorf("specialties: got %v", specialties)
	}
	if doctors == nil || *doctors != 120 {
		t.Errorf("doctors: got %v", doctors)
	}
	if email != nil {
		t.Errorf("email should be NULL, got %q", *email)
	}
}

func TestPersist_DuplicateSkipped(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	res := runPipeline(t)
	sha := normalize.TextHash(integrationCSV)

	first, err := db.Persist(ctx, pool, zerolog.Nop(), "integration", sha, res, false, false)
	if err != nil {
		t.Fatalf("first persist: %v", err)
	}

	second, err := db.Persist(ctx, pool, zerolog.Nop(), "integration", sha, res, false, false)
	if err != nil {
		t.Fatalf("second persist: %v", err)
	}
	if !second.AlreadyLoaded {
		t.Fatal("duplicate should report already loaded")
	}
	if second.DatasetID != first.DatasetID {
		t.Errorf("dataset ids differ: %d vs %d", first.DatasetID, second.DatasetID)
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM facility.facilities").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("duplicate should not add rows: got %d", count)
	}
}

func TestPersist_ForceReimport(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	res := runPipeline(t)
	sha := normalize.TextHash(integrationCSV)

	if _, err := db.Persist(ctx, pool, zerolog.Nop(), "integration", sha, res, false, false); err != nil {
		t.Fatalf("first persist: %v", err)
	}

	pr, err := db.Persist(ctx, pool, zerolog.Nop(), "integration", sha, res, true, false)
	if err != nil {
		t.Fatalf("force persist: %v", err)
	}
	if pr.AlreadyLoaded {
		t.Fatal("force should re-import")
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM facility.facilities").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 3 {
		t.Errorf("re-import should replace rows, not append: got %d", count)
	}
}

func TestDeleteBatch(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	res := runPipeline(t)

	pr, err := db.Persist(ctx, pool, zerolog.Nop(), "integration",
		normalize.TextHash(integrationCSV), res, false, false)
	if err != nil {
		t.Fatalf("persist: %v", err)
	}

	if err := db.DeleteBatch(ctx, pool, pr.LoadBatchID); err != nil {
		t.Fatalf("DeleteBatch: %v", err)
	}

	var count int
	if err := pool.QueryRow(ctx,
		"SELECT count(*) FROM facility.facilities").Scan(&count); err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("batch rows should be gone, got %d", count)
	}
}

func TestMigrationsIdempotent(t *testing.T) {
	pool := setupDB(t)
	ctx := context.Background()
	if err := db.ApplyMigrations(ctx, pool, zerolog.Nop()); err != nil {
		t.Fatalf("second migration run: %v", err)
	}
}
