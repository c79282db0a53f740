//go:build unit
// +build unit

package validators

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type keySizeRequest struct {
	KeySize int `validate:"textbook_keysize"`
}

func TestTextbookKeySizeValidation(t *testing.T) {
	validate := validator.New()
	require.NoError(t, validate.RegisterValidation(TextbookKeySizeTag, TextbookKeySizeValidation))

	tests := []struct {
		name    string
		keySize int
		valid   bool
	}{
		{"smallest", 4, true},
		{"sixteen", 16, true},
		{"reference width", 128, true},
		{"largest", 4096, true},
		{"odd", 17, false},
		{"too small", 2, false},
		{"zero", 0, false},
		{"negative", -16, false},
		{"too large", 8192, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate.Struct(&keySizeRequest{KeySize: tt.keySize})
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
