//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB            *gorm.DB
	BenchmarkRepo benchmarks.Repository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	cleanupFunc := func() {}

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	require.NoError(t, Migrate(db), "Failed to migrate schema")

	logger := testutil.SetupTestLogger(t)
	benchmarkRepo, err := NewGormBenchmarkRepository(db, logger)
	require.NoError(t, err, "Failed to create benchmark repository")

	return &TestContext{
		DB:            db,
		BenchmarkRepo: benchmarkRepo,
	}
}

// CreateTestResult creates a test benchmark result with default values
func CreateTestResult(t *testing.T, implementation, operation string, mean float64) *benchmarks.Result {
	t.Helper()

	keySize := 32
	if implementation == crypto.ImplementationLibrary {
		keySize = 2048
	}

	return &benchmarks.Result{
		ID:              uuid.NewString(),
		Name:            implementation + " " + operation,
		Implementation:  implementation,
		Operation:       operation,
		KeySize:         keySize,
		Iterations:      10,
		Stats:           benchmarks.Stats{Mean: mean, StdDev: 1, Min: int64(mean) - 1, Max: int64(mean) + 1, Total: int64(mean) * 10},
		DateTimeCreated: time.Now().UTC(),
	}
}
