package cryptography

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
)

// TextbookOption configures a textbook RSA processor.
type TextbookOption func(*textbookRSAProcessor)

// WithDomainBits caps the modulus width. Wider requests are clamped and a warning is
// logged. 0 disables the cap.
func WithDomainBits(bits int) TextbookOption {
	return func(p *textbookRSAProcessor) {
		p.domainBits = bits
	}
}

// WithRetryOnNoInverse re-samples both primes up to n times when the public exponent
// has no inverse modulo phi. The default 0 fails the key generation instead.
func WithRetryOnNoInverse(n int) TextbookOption {
	return func(p *textbookRSAProcessor) {
		p.noInverseRetries = n
	}
}

// WithModularArithmetic replaces the big.Int arithmetic engine.
func WithModularArithmetic(a cryptoalg.ModularArithmetic) TextbookOption {
	return func(p *textbookRSAProcessor) {
		p.arith = a
	}
}

// textbookRSAProcessor implements cryptoalg.TextbookRSAProcessor
type textbookRSAProcessor struct {
	primes           cryptoalg.PrimeGenerator
	arith            cryptoalg.ModularArithmetic
	domainBits       int
	noInverseRetries int
	logger           logger.Logger
}

// NewTextbookRSAProcessor creates a key generator and cipher built on primes.
func NewTextbookRSAProcessor(primes cryptoalg.PrimeGenerator, logger logger.Logger, opts ...TextbookOption) (cryptoalg.TextbookRSAProcessor, error) {
	if primes == nil {
		return nil, fmt.Errorf("prime generator cannot be nil")
	}

	p := &textbookRSAProcessor{
		primes: primes,
		arith:  NewModularArithmetic(),
		logger: logger,
	}
	for _, opt := range opts {
		opt(p)
	}

	if p.arith == nil {
		return nil, fmt.Errorf("modular arithmetic cannot be nil")
	}
	if p.domainBits < 0 || p.noInverseRetries < 0 {
		return nil, fmt.Errorf("domain bits and retries cannot be negative")
	}
	return p, nil
}

// GenerateKeys generates a textbook RSA key pair with a bits-wide modulus.
func (p *textbookRSAProcessor) GenerateKeys(ctx context.Context, bits int) (*crypto.KeyPair, error) {
	material, err := p.GenerateKeyMaterial(ctx, bits)
	if err != nil {
		return nil, err
	}
	return material.Key, nil
}

// GenerateKeyMaterial splits bits in half for p and q, derives n and phi, fixes
// e = 65537 and inverts it modulo phi.
func (p *textbookRSAProcessor) GenerateKeyMaterial(ctx context.Context, bits int) (*crypto.KeyMaterial, error) {
	if bits < 4 {
		return nil, fmt.Errorf("%w: key width %d, need at least 4", crypto.ErrInvalidBitWidth, bits)
	}

	if p.domainBits > 0 && bits > p.domainBits {
		p.logger.Warnf("Requested %d-bit key exceeds the %d-bit integer domain; generating a %d-bit key", bits, p.domainBits, p.domainBits)
		bits = p.domainBits
	}
	primeBits := bits / 2
	e := big.NewInt(crypto.DefaultPublicExponent)

	for attempt := 0; ; attempt++ {
		prime1, prime2, err := p.distinctPrimes(ctx, primeBits)
		if err != nil {
			return nil, err
		}

		n := new(big.Int).Mul(prime1, prime2)
		pm1 := new(big.Int).Sub(prime1, one)
		qm1 := new(big.Int).Sub(prime2, one)
		phi := pm1.Mul(pm1, qm1)

		d, ok := p.arith.ModInverse(e, phi)
		if ok {
			p.logger.Debugf("Generated textbook RSA key with %d-bit modulus", n.BitLen())
			return &crypto.KeyMaterial{
				P:   prime1,
				Q:   prime2,
				Phi: phi,
				Key: &crypto.KeyPair{N: n, E: e, D: d},
			}, nil
		}

		if attempt >= p.noInverseRetries {
			return nil, fmt.Errorf("failed to generate RSA keys: %w: e=%s, phi=%s", crypto.ErrNoModularInverse, e, phi)
		}
		p.logger.Warnf("e=%s has no inverse mod phi=%s, resampling primes (%d/%d)", e, phi, attempt+1, p.noInverseRetries)
	}
}

// distinctPrimes draws p, then redraws q until it differs from p.
func (p *textbookRSAProcessor) distinctPrimes(ctx context.Context, bits int) (*big.Int, *big.Int, error) {
	prime1, err := p.primes.GeneratePrime(ctx, bits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate prime p: %w", err)
	}

	for {
		prime2, err := p.primes.GeneratePrime(ctx, bits)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to generate prime q: %w", err)
		}
		if prime2.Cmp(prime1) != 0 {
			return prime1, prime2, nil
		}
	}
}

// Encrypt computes message^e mod n. Messages outside [0, n) are reduced silently.
func (p *textbookRSAProcessor) Encrypt(message *big.Int, key crypto.PublicKey) *big.Int {
	return p.arith.ModPow(message, key.E, key.N)
}

// Decrypt computes ciphertext^d mod n.
func (p *textbookRSAProcessor) Decrypt(ciphertext *big.Int, key crypto.PrivateKey) *big.Int {
	return p.arith.ModPow(ciphertext, key.D, key.N)
}
