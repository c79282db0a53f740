//go:build unit
// +build unit

package cryptography

import (
	"context"
	"math/big"

	"github.com/stretchr/testify/mock"
)

// MockModularArithmetic is a mock implementation of ModularArithmetic
type MockModularArithmetic struct {
	mock.Mock
}

func (m *MockModularArithmetic) GCD(a, b *big.Int) *big.Int {
	args := m.Called(a, b)
	return args.Get(0).(*big.Int)
}

func (m *MockModularArithmetic) ModInverse(a, mod *big.Int) (*big.Int, bool) {
	args := m.Called(a, mod)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(*big.Int), args.Bool(1)
}

func (m *MockModularArithmetic) ModPow(base, exponent, modulus *big.Int) *big.Int {
	args := m.Called(base, exponent, modulus)
	return args.Get(0).(*big.Int)
}

// MockPrimeGenerator is a mock implementation of PrimeGenerator
type MockPrimeGenerator struct {
	mock.Mock
}

func (m *MockPrimeGenerator) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	args := m.Called(ctx, bits)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*big.Int), args.Error(1)
}
