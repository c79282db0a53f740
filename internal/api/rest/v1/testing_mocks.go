//go:build unit
// +build unit

package v1

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockTextbookService is a mock implementation of crypto.TextbookService
type MockTextbookService struct {
	mock.Mock
}

func (m *MockTextbookService) GenerateKeys(ctx context.Context, bits int) (*crypto.KeyMaterial, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyMaterial), args.Error(1)
}

func (m *MockTextbookService) Encrypt(ctx context.Context, message *big.Int, key crypto.PublicKey) (*big.Int, error) {
	args := m.Called(ctx, message, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

func (m *MockTextbookService) Decrypt(ctx context.Context, ciphertext *big.Int, key crypto.PrivateKey) (*big.Int, error) {
	args := m.Called(ctx, ciphertext, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}

// MockBenchmarkRunService is a mock implementation of benchmarks.RunService
type MockBenchmarkRunService struct {
	mock.Mock
}

func (m *MockBenchmarkRunService) RunOperation(ctx context.Context, req *benchmarks.RunRequest) (*benchmarks.Result, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*benchmarks.Result), args.Error(1)
}

// MockBenchmarkMetadataService is a mock implementation of benchmarks.MetadataService
type MockBenchmarkMetadataService struct {
	mock.Mock
}

func (m *MockBenchmarkMetadataService) List(ctx context.Context, query *benchmarks.Query) ([]*benchmarks.Result, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*benchmarks.Result), args.Error(1)
}

func (m *MockBenchmarkMetadataService) GetByID(ctx context.Context, id string) (*benchmarks.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*benchmarks.Result), args.Error(1)
}

func (m *MockBenchmarkMetadataService) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
