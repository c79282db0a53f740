package cryptoalg

import (
	"context"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
)

// PrimalityTester decides whether an integer is prime.
type PrimalityTester interface {
	// IsPrime is deterministic: it proves primality by trial division.
	IsPrime(value *big.Int) bool
}

// PrimeGenerator samples primes of an exact bit width.
type PrimeGenerator interface {
	// GeneratePrime draws uniform integers from [2^(bits-1), 2^bits - 1] until one is prime.
	// It returns crypto.ErrPrimeSearchExhausted when a configured attempt ceiling is hit
	// and the context error when ctx is done.
	GeneratePrime(ctx context.Context, bits int) (*big.Int, error)
}

// ModularArithmetic is the integer engine every other component is built on.
// Arguments are never modified.
type ModularArithmetic interface {
	// GCD returns the greatest common divisor of a and b, with GCD(a, 0) = a.
	GCD(a, b *big.Int) *big.Int

	// ModInverse returns d in [0, m) with a*d = 1 (mod m). ok is false when gcd(a, m) != 1.
	ModInverse(a, m *big.Int) (d *big.Int, ok bool)

	// ModPow returns base^exponent mod modulus by square-and-multiply.
	ModPow(base, exponent, modulus *big.Int) *big.Int
}

// KeyGenerator builds textbook RSA keys from two generated primes.
type KeyGenerator interface {
	// GenerateKeys returns a key whose modulus is the product of two bits/2-bit primes.
	GenerateKeys(ctx context.Context, bits int) (*crypto.KeyPair, error)

	// GenerateKeyMaterial is GenerateKeys but also returns the primes and the totient.
	GenerateKeyMaterial(ctx context.Context, bits int) (*crypto.KeyMaterial, error)
}

// Cipher is textbook RSA: a single modular exponentiation, no padding, no randomness.
type Cipher interface {
	Encrypt(message *big.Int, key crypto.PublicKey) *big.Int
	Decrypt(ciphertext *big.Int, key crypto.PrivateKey) *big.Int
}

// TextbookRSAProcessor bundles key generation and the cipher.
type TextbookRSAProcessor interface {
	KeyGenerator
	Cipher
}
