package crypto

import "errors"

var (
	// ErrNoModularInverse is returned when the public exponent has no inverse modulo the totient.
	ErrNoModularInverse = errors.New("no modular inverse")

	// ErrPrimeSearchExhausted is returned when a bounded prime search runs out of attempts.
	ErrPrimeSearchExhausted = errors.New("prime search exhausted")

	// ErrInvalidBitWidth is returned for bit widths the generators cannot honour.
	ErrInvalidBitWidth = errors.New("invalid bit width")

	// ErrMessageOutOfRange is returned by callers that check 0 <= m < n before encrypting.
	ErrMessageOutOfRange = errors.New("message out of range")

	// ErrNilKey is returned when a key or one of its components is missing.
	ErrNilKey = errors.New("nil key")
)
