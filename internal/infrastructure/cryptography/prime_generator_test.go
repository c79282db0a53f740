//go:build unit
// +build unit

package cryptography

import (
	"bytes"
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rejectAll is a primality tester that never accepts a candidate.
type rejectAll struct{}

func (rejectAll) IsPrime(*big.Int) bool { return false }

func setupPrimeGenerator(t *testing.T, opts ...PrimeGeneratorOption) cryptoalg.PrimeGenerator {
	t.Helper()
	logger := testutil.SetupTestLogger(t)
	gen, err := NewPrimeGenerator(logger, opts...)
	require.NoError(t, err)
	return gen
}

func TestPrimeGenerator_GeneratePrime(t *testing.T) {
	gen := setupPrimeGenerator(t)
	tester := NewPrimalityTester()

	for _, bits := range []int{2, 3, 8, 16, 24, 32} {
		lo := new(big.Int).Lsh(one, uint(bits-1))
		hi := new(big.Int).Lsh(one, uint(bits))

		for i := 0; i < 20; i++ {
			p, err := gen.GeneratePrime(context.Background(), bits)
			require.NoError(t, err)
			assert.True(t, tester.IsPrime(p), "%s is not prime", p)
			assert.Equal(t, bits, p.BitLen())
			assert.True(t, p.Cmp(lo) >= 0 && p.Cmp(hi) < 0)
		}
	}
}

func TestPrimeGenerator_InvalidBitWidth(t *testing.T) {
	gen := setupPrimeGenerator(t)

	for _, bits := range []int{-1, 0, 1} {
		_, err := gen.GeneratePrime(context.Background(), bits)
		assert.ErrorIs(t, err, crypto.ErrInvalidBitWidth)
	}
}

func TestPrimeGenerator_Deterministic(t *testing.T) {
	genA := setupPrimeGenerator(t, WithRandomSource(testutil.SeededSource(t, "prime")))
	genB := setupPrimeGenerator(t, WithRandomSource(testutil.SeededSource(t, "prime")))

	for i := 0; i < 10; i++ {
		a, err := genA.GeneratePrime(context.Background(), 20)
		require.NoError(t, err)
		b, err := genB.GeneratePrime(context.Background(), 20)
		require.NoError(t, err)
		assert.Equal(t, 0, a.Cmp(b))
	}
}

func TestPrimeGenerator_MaxAttempts(t *testing.T) {
	gen := setupPrimeGenerator(t, WithMaxAttempts(5), WithPrimalityTester(rejectAll{}))

	_, err := gen.GeneratePrime(context.Background(), 16)
	assert.ErrorIs(t, err, crypto.ErrPrimeSearchExhausted)
}

func TestPrimeGenerator_Cancelled(t *testing.T) {
	gen := setupPrimeGenerator(t, WithPrimalityTester(rejectAll{}))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := gen.GeneratePrime(ctx, 16)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestPrimeGenerator_RandomSourceFailure(t *testing.T) {
	gen := setupPrimeGenerator(t, WithRandomSource(bytes.NewReader(nil)))

	_, err := gen.GeneratePrime(context.Background(), 16)
	require.Error(t, err)
	assert.False(t, errors.Is(err, crypto.ErrPrimeSearchExhausted))
}

func TestNewPrimeGenerator_InvalidOptions(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	_, err := NewPrimeGenerator(logger, WithMaxAttempts(-1))
	assert.Error(t, err)

	_, err = NewPrimeGenerator(logger, WithRandomSource(nil))
	assert.Error(t, err)

	_, err = NewPrimeGenerator(logger, WithPrimalityTester(nil))
	assert.Error(t, err)
}
