package benchmarks

import (
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"
)

// RunRequest describes a single timed operation.
type RunRequest struct {
	Name           string `validate:"required,min=1,max=255"`
	Implementation string `validate:"required,oneof=textbook library"`
	Operation      string `validate:"required,oneof=key_generation encryption decryption"`
	KeySize        int    `validate:"required"`
	Iterations     int    `validate:"required,min=1,max=100000"`
}

// Validate for validating RunRequest struct. Key sizes are checked against the
// range the chosen implementation supports.
func (r *RunRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}

	switch r.Implementation {
	case crypto.ImplementationTextbook:
		if !validators.IsValidTextbookKeySize(int64(r.KeySize)) {
			return fmt.Errorf("validation failed: textbook key size %d must be even and within [%d, %d]",
				r.KeySize, validators.MinTextbookKeyBits, validators.MaxTextbookKeyBits)
		}
	case crypto.ImplementationLibrary:
		switch r.KeySize {
		case 1024, 2048, 3072, 4096:
		default:
			return fmt.Errorf("validation failed: library key size %d must be one of 1024, 2048, 3072, 4096", r.KeySize)
		}
	}
	return nil
}
