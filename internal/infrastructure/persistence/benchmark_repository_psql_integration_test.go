//go:build integration
// +build integration

package persistence

import (
	"context"
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenchmarkPostgresRepository_CreateListDelete(t *testing.T) {
	ctx := SetupTestDB(t, config.PostgresDbType)

	result := CreateTestResult(t, crypto.ImplementationLibrary, crypto.OperationKeyGeneration, 5e6)
	require.NoError(t, ctx.BenchmarkRepo.Create(context.Background(), result))

	fetched, err := ctx.BenchmarkRepo.GetByID(context.Background(), result.ID)
	require.NoError(t, err)
	assert.Equal(t, result.Stats, fetched.Stats)

	results, err := ctx.BenchmarkRepo.List(context.Background(), &benchmarks.Query{Implementation: crypto.ImplementationLibrary})
	require.NoError(t, err)
	assert.Len(t, results, 1)

	require.NoError(t, ctx.BenchmarkRepo.DeleteByID(context.Background(), result.ID))
	_, err = ctx.BenchmarkRepo.GetByID(context.Background(), result.ID)
	assert.ErrorIs(t, err, benchmarks.ErrNotFound)
}
