package cryptography

import (
	"context"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/randutil"
)

// PrimeGeneratorOption configures a prime generator.
type PrimeGeneratorOption func(*primeGenerator)

// WithMaxAttempts bounds the rejection loop. 0, the default, leaves it unbounded.
func WithMaxAttempts(n int) PrimeGeneratorOption {
	return func(g *primeGenerator) {
		g.maxAttempts = n
	}
}

// WithRandomSource replaces crypto/rand as the source of candidates.
func WithRandomSource(r io.Reader) PrimeGeneratorOption {
	return func(g *primeGenerator) {
		g.random = r
	}
}

// WithPrimalityTester replaces the trial-division tester.
func WithPrimalityTester(t cryptoalg.PrimalityTester) PrimeGeneratorOption {
	return func(g *primeGenerator) {
		g.tester = t
	}
}

// primeGenerator implements cryptoalg.PrimeGenerator by rejection sampling
type primeGenerator struct {
	tester      cryptoalg.PrimalityTester
	random      io.Reader
	maxAttempts int
	logger      logger.Logger
}

// NewPrimeGenerator creates a prime generator reading from crypto/rand and testing
// candidates by trial division, unless options say otherwise.
func NewPrimeGenerator(logger logger.Logger, opts ...PrimeGeneratorOption) (cryptoalg.PrimeGenerator, error) {
	g := &primeGenerator{
		tester: NewPrimalityTester(),
		random: randutil.Reader,
		logger: logger,
	}
	for _, opt := range opts {
		opt(g)
	}

	if g.random == nil {
		return nil, fmt.Errorf("random source cannot be nil")
	}
	if g.tester == nil {
		return nil, fmt.Errorf("primality tester cannot be nil")
	}
	if g.maxAttempts < 0 {
		return nil, fmt.Errorf("max attempts cannot be negative: %d", g.maxAttempts)
	}
	return g, nil
}

// GeneratePrime samples uniformly from [2^(bits-1), 2^bits - 1], so the top bit is
// always set, and keeps sampling until the tester accepts a candidate.
func (g *primeGenerator) GeneratePrime(ctx context.Context, bits int) (*big.Int, error) {
	if bits < 2 {
		return nil, fmt.Errorf("%w: prime width %d, need at least 2", crypto.ErrInvalidBitWidth, bits)
	}

	lo := new(big.Int).Lsh(one, uint(bits-1))
	hi := new(big.Int).Lsh(one, uint(bits))
	hi.Sub(hi, one)

	for attempt := 1; g.maxAttempts == 0 || attempt <= g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("prime search cancelled after %d attempts: %w", attempt-1, err)
		}

		candidate, err := randutil.IntInRange(g.random, lo, hi)
		if err != nil {
			return nil, fmt.Errorf("failed to sample prime candidate: %w", err)
		}

		if g.tester.IsPrime(candidate) {
			g.logger.Debugf("Found %d-bit prime after %d attempts", bits, attempt)
			return candidate, nil
		}
	}

	return nil, fmt.Errorf("%w: no %d-bit prime in %d attempts", crypto.ErrPrimeSearchExhausted, bits, g.maxAttempts)
}
