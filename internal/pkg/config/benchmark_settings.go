package config

import (
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"
	"github.com/go-playground/validator/v10"
)

// BenchmarkSettings drives the timing harness suites.
type BenchmarkSettings struct {
	Iterations     int     `mapstructure:"iterations" validate:"required,min=1,max=100000"`
	SizeIterations int     `mapstructure:"size_iterations" validate:"required,min=1,max=100000"`
	KeySizes       []int   `mapstructure:"key_sizes" validate:"required,min=1,dive,textbook_keysize"`
	MessageValues  []int64 `mapstructure:"message_values" validate:"required,min=1,dive,gte=0"`
	ProgressEvery  int     `mapstructure:"progress_every" validate:"gte=0"`
}

// Validate checks that all fields in BenchmarkSettings are valid
func (s *BenchmarkSettings) Validate() error {
	validate := validator.New()
	if err := validate.RegisterValidation(validators.TextbookKeySizeTag, validators.TextbookKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register key size validation: %w", err)
	}

	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("validation failed for BenchmarkSettings: %w", err)
	}
	return nil
}
