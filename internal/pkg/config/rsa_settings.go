package config

import (
	"encoding/hex"
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// RSASettings configures the textbook key generator and the library-backed comparison.
type RSASettings struct {
	// KeyBits is the default modulus width requested from the textbook generator.
	KeyBits int `mapstructure:"key_bits" validate:"required,textbook_keysize"`
	// DomainBits caps the modulus width the textbook generator will honour. 0 disables the cap.
	DomainBits int `mapstructure:"domain_bits" validate:"gte=0,max=4096"`
	// MaxPrimeAttempts bounds the prime rejection loop. 0 keeps it unbounded.
	MaxPrimeAttempts int `mapstructure:"max_prime_attempts" validate:"gte=0"`
	// RetryOnNoInverse re-samples primes when 65537 has no inverse mod phi. 0 aborts instead.
	RetryOnNoInverse int    `mapstructure:"retry_on_no_inverse" validate:"gte=0,max=100"`
	LibraryKeyBits   int    `mapstructure:"library_key_bits" validate:"required,oneof=1024 2048 3072 4096"`
	Seed             string `mapstructure:"seed" validate:"omitempty,hexadecimal"`
}

// Validate checks that all fields in RSASettings are valid
func (s *RSASettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation(validators.TextbookKeySizeTag, validators.TextbookKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for RSASettings: %w", err)
	}

	if s.DomainBits != 0 && s.DomainBits < 4 {
		return fmt.Errorf("domain bits must be 0 or at least 4")
	}
	return nil
}

// SeedBytes decodes Seed. A nil slice means no seed was configured.
func (s *RSASettings) SeedBytes() ([]byte, error) {
	if s.Seed == "" {
		return nil, nil
	}
	seed, err := hex.DecodeString(s.Seed)
	if err != nil {
		return nil, fmt.Errorf("invalid seed: %w", err)
	}
	return seed, nil
}
