//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func storingRepo() *MockBenchmarkRepository {
	repo := new(MockBenchmarkRepository)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*benchmarks.Result")).Return(nil)
	return repo
}

func TestBenchmarkService_RunManualSuite(t *testing.T) {
	repo := storingRepo()
	services := SetupTestServices(t, repo)

	suite, err := services.BenchmarkService.RunManualSuite(context.Background(), TestTextbookKeyBits, TestIterations)
	require.NoError(t, err)
	require.Len(t, suite.Results, 3)
	assert.True(t, suite.IntegrityChecked)
	assert.True(t, suite.IntegrityOK)

	operations := []string{crypto.OperationKeyGeneration, crypto.OperationEncryption, crypto.OperationDecryption}
	for i, result := range suite.Results {
		assert.NoError(t, result.Validate())
		assert.Equal(t, operations[i], result.Operation)
		assert.Equal(t, crypto.ImplementationTextbook, result.Implementation)
		assert.Equal(t, TestIterations, result.Iterations)
		assert.Equal(t, TestTextbookKeyBits, result.KeySize)
		assert.LessOrEqual(t, result.Stats.Min, result.Stats.Max)
	}
	assert.Equal(t, "Manual RSA Key Generation", suite.Results[0].Name)
	repo.AssertNumberOfCalls(t, "Create", 3)
}

func TestBenchmarkService_RunLibrarySuite(t *testing.T) {
	services := SetupTestServices(t, nil)

	suite, err := services.BenchmarkService.RunLibrarySuite(context.Background(), TestLibraryKeyBits, 2)
	require.NoError(t, err)
	require.Len(t, suite.Results, 3)
	assert.True(t, suite.IntegrityOK)
	for _, result := range suite.Results {
		assert.Equal(t, crypto.ImplementationLibrary, result.Implementation)
	}
}

func TestBenchmarkService_RunKeySizeSuite(t *testing.T) {
	repo := storingRepo()
	services := SetupTestServices(t, repo)

	keySizes := []int{16, 20, 24}
	suite, err := services.BenchmarkService.RunKeySizeSuite(context.Background(), keySizes, TestIterations)
	require.NoError(t, err)
	require.Len(t, suite.Results, len(keySizes))
	assert.False(t, suite.IntegrityChecked)

	for i, result := range suite.Results {
		assert.Equal(t, keySizes[i], result.KeySize)
		assert.Equal(t, crypto.OperationKeyGeneration, result.Operation)
	}
	repo.AssertNumberOfCalls(t, "Create", len(keySizes))
}

func TestBenchmarkService_RunMessageSizeSuite(t *testing.T) {
	services := SetupTestServices(t, nil)

	messages := []int64{100, 1000, 10000, 100000}
	suite, err := services.BenchmarkService.RunMessageSizeSuite(context.Background(), 16, messages, TestIterations)
	require.NoError(t, err)
	require.Len(t, suite.Results, len(messages))
	assert.Equal(t, "Encryption m=100000", suite.Results[3].Name)
	for _, result := range suite.Results {
		assert.Equal(t, crypto.OperationEncryption, result.Operation)
	}
}

func TestBenchmarkService_RunComparison(t *testing.T) {
	services := SetupTestServices(t, nil)

	comparisons, err := services.BenchmarkService.RunComparison(context.Background(), TestTextbookKeyBits, TestLibraryKeyBits, 2)
	require.NoError(t, err)
	require.Len(t, comparisons, 3)
	for _, c := range comparisons {
		require.NotNil(t, c.Textbook)
		require.NotNil(t, c.Library)
		assert.Equal(t, c.Operation, c.Textbook.Operation)
		assert.Equal(t, c.Operation, c.Library.Operation)
	}
}

func TestBenchmarkService_RunOperation(t *testing.T) {
	repo := storingRepo()
	services := SetupTestServices(t, repo)

	tests := []struct {
		name    string
		req     *benchmarks.RunRequest
		wantErr bool
	}{
		{"textbook keygen", &benchmarks.RunRequest{Name: "tk", Implementation: "textbook", Operation: "key_generation", KeySize: 20, Iterations: 2}, false},
		{"textbook decrypt", &benchmarks.RunRequest{Name: "td", Implementation: "textbook", Operation: "decryption", KeySize: 20, Iterations: 2}, false},
		{"library encrypt", &benchmarks.RunRequest{Name: "le", Implementation: "library", Operation: "encryption", KeySize: 1024, Iterations: 2}, false},
		{"invalid request", &benchmarks.RunRequest{Name: "bad", Implementation: "textbook", Operation: "key_generation", KeySize: 21, Iterations: 2}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := services.BenchmarkService.RunOperation(context.Background(), tt.req)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.req.Name, result.Name)
			assert.Equal(t, tt.req.Operation, result.Operation)
			assert.Equal(t, tt.req.Iterations, result.Iterations)
		})
	}
	repo.AssertNumberOfCalls(t, "Create", 3)
}

func TestBenchmarkService_StoreFailure(t *testing.T) {
	repo := new(MockBenchmarkRepository)
	repo.On("Create", mock.Anything, mock.Anything).Return(errors.New("disk full"))
	services := SetupTestServices(t, repo)

	_, err := services.BenchmarkService.RunKeySizeSuite(context.Background(), []int{16}, 1)
	assert.ErrorContains(t, err, "disk full")
}

func TestBenchmarkService_ClampedKeySize(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	services := SetupTestServices(t, nil)

	textbook, err := cryptography.NewTextbookRSAProcessorFromSettings(&config.RSASettings{
		KeyBits:          TestTextbookKeyBits,
		DomainBits:       24,
		RetryOnNoInverse: 5,
		LibraryKeyBits:   TestLibraryKeyBits,
	}, logger)
	require.NoError(t, err)

	service, err := NewBenchmarkService(textbook, services.Library, nil, services.Harness, logger)
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("single operation", func(t *testing.T) {
		result, err := service.RunOperation(ctx, &benchmarks.RunRequest{
			Name: "clamped", Implementation: "textbook", Operation: "encryption", KeySize: 32, Iterations: 1,
		})
		require.NoError(t, err)
		assert.Equal(t, 24, result.KeySize)
	})

	t.Run("manual suite", func(t *testing.T) {
		suite, err := service.RunManualSuite(ctx, 32, 1)
		require.NoError(t, err)
		for _, result := range suite.Results {
			assert.Equal(t, 24, result.KeySize)
		}
		assert.True(t, suite.IntegrityOK)
	})

	t.Run("key size suite", func(t *testing.T) {
		suite, err := service.RunKeySizeSuite(ctx, []int{16, 32}, 1)
		require.NoError(t, err)
		require.Len(t, suite.Results, 2)
		assert.Equal(t, 16, suite.Results[0].KeySize)
		assert.Equal(t, 24, suite.Results[1].KeySize)
		assert.Equal(t, "Key Generation 24 bits", suite.Results[1].Name)
	})

	t.Run("message size suite", func(t *testing.T) {
		suite, err := service.RunMessageSizeSuite(ctx, 32, []int64{7}, 1)
		require.NoError(t, err)
		require.Len(t, suite.Results, 1)
		assert.Equal(t, 24, suite.Results[0].KeySize)
	})
}

func TestModulusWidth(t *testing.T) {
	assert.Equal(t, 12, modulusWidth(big.NewInt(3233)))
	assert.Equal(t, 12, modulusWidth(big.NewInt(2047)))
	assert.Equal(t, 16, modulusWidth(big.NewInt(65535)))
}

func TestBenchmarkService_IntegrityFailure(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	services := SetupTestServices(t, nil)

	key := &crypto.KeyPair{N: big.NewInt(3233), E: big.NewInt(17), D: big.NewInt(2753)}
	textbook := new(MockTextbookRSAProcessor)
	textbook.On("GenerateKeys", mock.Anything, 12).Return(key, nil)
	textbook.On("Encrypt", mock.Anything, mock.Anything).Return(big.NewInt(2790))
	textbook.On("Decrypt", mock.Anything, mock.Anything).Return(big.NewInt(1))

	service, err := NewBenchmarkService(textbook, services.Library, nil, services.Harness, logger)
	require.NoError(t, err)

	suite, err := service.RunManualSuite(context.Background(), 12, 1)
	require.NoError(t, err)
	assert.True(t, suite.IntegrityChecked)
	assert.False(t, suite.IntegrityOK)
}

func TestBenchmarkService_KeyGenerationFailure(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	services := SetupTestServices(t, nil)

	textbook := new(MockTextbookRSAProcessor)
	textbook.On("GenerateKeys", mock.Anything, mock.Anything).Return(nil, crypto.ErrNoModularInverse)

	service, err := NewBenchmarkService(textbook, services.Library, nil, services.Harness, logger)
	require.NoError(t, err)

	_, err = service.RunManualSuite(context.Background(), 32, 1)
	assert.ErrorIs(t, err, crypto.ErrNoModularInverse)
}

func TestBenchmarkService_History(t *testing.T) {
	t.Run("disabled", func(t *testing.T) {
		services := SetupTestServices(t, nil)

		_, err := services.BenchmarkService.List(context.Background(), benchmarks.NewQuery())
		assert.ErrorIs(t, err, ErrHistoryDisabled)
		_, err = services.BenchmarkService.GetByID(context.Background(), "id")
		assert.ErrorIs(t, err, ErrHistoryDisabled)
		assert.ErrorIs(t, services.BenchmarkService.DeleteByID(context.Background(), "id"), ErrHistoryDisabled)
	})

	t.Run("delegates to repository", func(t *testing.T) {
		repo := new(MockBenchmarkRepository)
		services := SetupTestServices(t, repo)

		stored := []*benchmarks.Result{{ID: "a"}, {ID: "b"}}
		query := benchmarks.NewQuery()
		repo.On("List", mock.Anything, query).Return(stored, nil)
		repo.On("GetByID", mock.Anything, "a").Return(stored[0], nil)
		repo.On("DeleteByID", mock.Anything, "b").Return(nil)

		list, err := services.BenchmarkService.List(context.Background(), query)
		require.NoError(t, err)
		assert.Len(t, list, 2)

		got, err := services.BenchmarkService.GetByID(context.Background(), "a")
		require.NoError(t, err)
		assert.Equal(t, "a", got.ID)

		assert.NoError(t, services.BenchmarkService.DeleteByID(context.Background(), "b"))
		repo.AssertExpectations(t)
	})
}

func TestNewBenchmarkService_MissingDependencies(t *testing.T) {
	logger := testutil.SetupTestLogger(t)
	services := SetupTestServices(t, nil)

	_, err := NewBenchmarkService(nil, services.Library, nil, services.Harness, logger)
	assert.Error(t, err)
	_, err = NewBenchmarkService(services.Textbook, nil, nil, services.Harness, logger)
	assert.Error(t, err)
	_, err = NewBenchmarkService(services.Textbook, services.Library, nil, nil, logger)
	assert.Error(t, err)
}
