package validators

import (
	"github.com/go-playground/validator/v10"
)

// TextbookKeySizeTag is the struct tag name under which TextbookKeySizeValidation is registered.
const TextbookKeySizeTag = "textbook_keysize"

// MinTextbookKeyBits is the smallest modulus that still splits into two 2-bit primes.
const MinTextbookKeyBits = 4

// MaxTextbookKeyBits bounds requests before any domain clamp is applied.
const MaxTextbookKeyBits = 4096

// TextbookKeySizeValidation validates a requested textbook RSA modulus width.
// The width must be even so that both prime factors get the same number of bits.
func TextbookKeySizeValidation(fl validator.FieldLevel) bool {
	return IsValidTextbookKeySize(fl.Field().Int())
}

// IsValidTextbookKeySize reports whether bits is an acceptable textbook modulus width.
func IsValidTextbookKeySize(bits int64) bool {
	return bits >= MinTextbookKeyBits && bits <= MaxTextbookKeyBits && bits%2 == 0
}
