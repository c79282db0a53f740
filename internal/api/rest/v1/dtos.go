package v1

import (
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse represents an error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// GenerateKeyRequest represents the request body for textbook key generation
type GenerateKeyRequest struct {
	KeySize int `json:"key_size" validate:"required,textbook_keysize"`
}

// Validate for validating GenerateKeyRequest struct
func (r *GenerateKeyRequest) Validate() error {
	return validateRequest(r)
}

// KeyResponse carries a textbook key and the values it was derived from.
// Integers are decimal strings since they can exceed 64 bits.
type KeyResponse struct {
	N   string `json:"n"`
	E   string `json:"e"`
	D   string `json:"d"`
	P   string `json:"p"`
	Q   string `json:"q"`
	Phi string `json:"phi"`
}

// EncryptRequest represents the request body for textbook encryption
type EncryptRequest struct {
	N       string `json:"n" validate:"required,numeric"`
	E       string `json:"e" validate:"required,numeric"`
	Message string `json:"message" validate:"required,numeric"`
}

// Validate for validating EncryptRequest struct
func (r *EncryptRequest) Validate() error {
	return validateRequest(r)
}

// DecryptRequest represents the request body for textbook decryption
type DecryptRequest struct {
	N          string `json:"n" validate:"required,numeric"`
	D          string `json:"d" validate:"required,numeric"`
	Ciphertext string `json:"ciphertext" validate:"required,numeric"`
}

// Validate for validating DecryptRequest struct
func (r *DecryptRequest) Validate() error {
	return validateRequest(r)
}

// EncryptResponse represents the result of an encryption
type EncryptResponse struct {
	Ciphertext string `json:"ciphertext"`
}

// DecryptResponse represents the result of a decryption
type DecryptResponse struct {
	Message string `json:"message"`
}

// RunBenchmarkRequest represents the request body for a benchmark run
type RunBenchmarkRequest struct {
	Name           string `json:"name" validate:"required,min=1,max=255"`
	Implementation string `json:"implementation" validate:"required,oneof=textbook library"`
	Operation      string `json:"operation" validate:"required,oneof=key_generation encryption decryption"`
	KeySize        int    `json:"key_size" validate:"required"`
	Iterations     int    `json:"iterations" validate:"required,min=1,max=100000"`
}

// Validate for validating RunBenchmarkRequest struct
func (r *RunBenchmarkRequest) Validate() error {
	if err := validateRequest(r); err != nil {
		return err
	}
	return r.toDomain().Validate()
}

func (r *RunBenchmarkRequest) toDomain() *benchmarks.RunRequest {
	return &benchmarks.RunRequest{
		Name:           r.Name,
		Implementation: r.Implementation,
		Operation:      r.Operation,
		KeySize:        r.KeySize,
		Iterations:     r.Iterations,
	}
}

// BenchmarkResultResponse represents a stored benchmark result
type BenchmarkResultResponse struct {
	ID              string    `json:"id"`
	Name            string    `json:"name"`
	Implementation  string    `json:"implementation"`
	Operation       string    `json:"operation"`
	KeySize         int       `json:"key_size"`
	Iterations      int       `json:"iterations"`
	MeanNs          float64   `json:"mean_ns"`
	StdDevNs        float64   `json:"std_dev_ns"`
	MinNs           int64     `json:"min_ns"`
	MaxNs           int64     `json:"max_ns"`
	TotalNs         int64     `json:"total_ns"`
	DateTimeCreated time.Time `json:"date_time_created"`
}

func newBenchmarkResultResponse(r *benchmarks.Result) BenchmarkResultResponse {
	return BenchmarkResultResponse{
		ID:              r.ID,
		Name:            r.Name,
		Implementation:  r.Implementation,
		Operation:       r.Operation,
		KeySize:         r.KeySize,
		Iterations:      r.Iterations,
		MeanNs:          r.Stats.Mean,
		StdDevNs:        r.Stats.StdDev,
		MinNs:           r.Stats.Min,
		MaxNs:           r.Stats.Max,
		TotalNs:         r.Stats.Total,
		DateTimeCreated: r.DateTimeCreated,
	}
}

func validateRequest(s any) error {
	validate := validator.New()

	if err := validate.RegisterValidation(validators.TextbookKeySizeTag, validators.TextbookKeySizeValidation); err != nil {
		return fmt.Errorf("failed to register custom validator: %w", err)
	}

	err := validate.Struct(s)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}

// parseInts parses decimal strings keyed by field name.
func parseInts(fields map[string]string) (map[string]*big.Int, error) {
	values := make(map[string]*big.Int, len(fields))
	for field, value := range fields {
		n, ok := new(big.Int).SetString(value, 10)
		if !ok {
			return nil, fmt.Errorf("%s is not a decimal integer: %q", field, value)
		}
		values[field] = n
	}
	return values, nil
}
