package crypto

import (
	"context"
	"math/big"
)

// TextbookService exposes the textbook RSA operations with the input checks the
// raw cipher leaves out.
type TextbookService interface {
	// GenerateKeys builds a key of the requested width and returns it with its primes and totient.
	GenerateKeys(ctx context.Context, bits int) (*KeyMaterial, error)

	// Encrypt rejects messages outside [0, n) with ErrMessageOutOfRange.
	Encrypt(ctx context.Context, message *big.Int, key PublicKey) (*big.Int, error)

	// Decrypt rejects ciphertexts outside [0, n) with ErrMessageOutOfRange.
	Decrypt(ctx context.Context, ciphertext *big.Int, key PrivateKey) (*big.Int, error)
}
