//go:build unit
// +build unit

package app

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"

	"github.com/stretchr/testify/mock"
)

// MockBenchmarkRepository is a mock implementation of benchmarks.Repository
type MockBenchmarkRepository struct {
	mock.Mock
}

func (m *MockBenchmarkRepository) Create(ctx context.Context, result *benchmarks.Result) error {
	args := m.Called(ctx, result)
	return args.Error(0)
}

func (m *MockBenchmarkRepository) List(ctx context.Context, query *benchmarks.Query) ([]*benchmarks.Result, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*benchmarks.Result), args.Error(1)
}

func (m *MockBenchmarkRepository) GetByID(ctx context.Context, id string) (*benchmarks.Result, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*benchmarks.Result), args.Error(1)
}

func (m *MockBenchmarkRepository) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockTextbookRSAProcessor is a mock implementation of cryptoalg.TextbookRSAProcessor
type MockTextbookRSAProcessor struct {
	mock.Mock
}

func (m *MockTextbookRSAProcessor) GenerateKeys(ctx context.Context, bits int) (*crypto.KeyPair, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyPair), args.Error(1)
}

func (m *MockTextbookRSAProcessor) GenerateKeyMaterial(ctx context.Context, bits int) (*crypto.KeyMaterial, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*crypto.KeyMaterial), args.Error(1)
}

func (m *MockTextbookRSAProcessor) Encrypt(message *big.Int, key crypto.PublicKey) *big.Int {
	args := m.Called(message, key)
	return args.Get(0).(*big.Int)
}

func (m *MockTextbookRSAProcessor) Decrypt(ciphertext *big.Int, key crypto.PrivateKey) *big.Int {
	args := m.Called(ciphertext, key)
	return args.Get(0).(*big.Int)
}
