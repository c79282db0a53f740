//go:build unit || integration
// +build unit integration

package app

import (
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/require"
)

// Test constants
const (
	TestTextbookKeyBits = 24
	TestLibraryKeyBits  = 1024
	TestIterations      = 3
)

// TestServices holds the application services and their dependencies for testing
type TestServices struct {
	Textbook         cryptoalg.TextbookRSAProcessor
	Library          cryptoalg.RSAProcessor
	Harness          *Harness
	BenchmarkService benchmarks.Service
	DemoService      *DemoService
}

// SetupTestServices wires real processors around repo, which may be nil.
func SetupTestServices(t *testing.T, repo benchmarks.Repository) *TestServices {
	t.Helper()

	logger := testutil.SetupTestLogger(t)

	textbook, err := cryptography.NewTextbookRSAProcessorFromSettings(&config.RSASettings{
		KeyBits:          TestTextbookKeyBits,
		DomainBits:       config.DefaultDomainBits,
		RetryOnNoInverse: 5,
		LibraryKeyBits:   TestLibraryKeyBits,
	}, logger)
	require.NoError(t, err)

	library, err := cryptography.NewRSAProcessor(logger)
	require.NoError(t, err)

	harness, err := NewHarness(DefaultProgressEvery, logger)
	require.NoError(t, err)

	benchmarkService, err := NewBenchmarkService(textbook, library, repo, harness, logger)
	require.NoError(t, err)

	demoService, err := NewDemoService(textbook, library, harness, logger)
	require.NoError(t, err)

	return &TestServices{
		Textbook:         textbook,
		Library:          library,
		Harness:          harness,
		BenchmarkService: benchmarkService,
		DemoService:      demoService,
	}
}
