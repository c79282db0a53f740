package cryptography

import (
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/randutil"
)

// NewTextbookRSAProcessorFromSettings wires a prime generator and a textbook
// processor from settings. A configured seed switches candidate sampling to a
// deterministic SHAKE256 stream.
func NewTextbookRSAProcessorFromSettings(settings *config.RSASettings, logger logger.Logger) (cryptoalg.TextbookRSAProcessor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	genOpts := []PrimeGeneratorOption{WithMaxAttempts(settings.MaxPrimeAttempts)}

	seed, err := settings.SeedBytes()
	if err != nil {
		return nil, err
	}
	if seed != nil {
		logger.Warn("Using a seeded prime source; generated keys are reproducible")
		genOpts = append(genOpts, WithRandomSource(randutil.NewShakeSource(seed)))
	}

	primes, err := NewPrimeGenerator(logger, genOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create prime generator: %w", err)
	}

	return NewTextbookRSAProcessor(primes, logger,
		WithDomainBits(settings.DomainBits),
		WithRetryOnNoInverse(settings.RetryOnNoInverse),
	)
}
