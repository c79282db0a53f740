package crypto

import (
	"fmt"
	"math/big"
)

var one = big.NewInt(1)

// PublicKey is the public half of a textbook RSA key.
type PublicKey struct {
	N *big.Int
	E *big.Int
}

// PrivateKey is the private half of a textbook RSA key.
type PrivateKey struct {
	N *big.Int
	D *big.Int
}

// KeyPair is a textbook RSA key triple. It is built once by a key generator
// and only read afterwards.
type KeyPair struct {
	N *big.Int // modulus
	E *big.Int // public exponent
	D *big.Int // private exponent
}

// PublicKey returns the (n, e) half of the key.
func (k *KeyPair) PublicKey() PublicKey {
	return PublicKey{N: k.N, E: k.E}
}

// PrivateKey returns the (n, d) half of the key.
func (k *KeyPair) PrivateKey() PrivateKey {
	return PrivateKey{N: k.N, D: k.D}
}

// BitLen is the bit length of the modulus.
func (k *KeyPair) BitLen() int {
	if k == nil || k.N == nil {
		return 0
	}
	return k.N.BitLen()
}

// KeyMaterial keeps the primes and the totient a KeyPair was derived from.
type KeyMaterial struct {
	P   *big.Int
	Q   *big.Int
	Phi *big.Int
	Key *KeyPair
}

// Validate checks n = p*q, p != q, phi = (p-1)(q-1) and e*d = 1 mod phi.
func (m *KeyMaterial) Validate() error {
	if m == nil || m.Key == nil || m.P == nil || m.Q == nil || m.Phi == nil ||
		m.Key.N == nil || m.Key.E == nil || m.Key.D == nil {
		return ErrNilKey
	}

	if m.P.Cmp(m.Q) == 0 {
		return fmt.Errorf("primes must differ: p = q = %s", m.P)
	}

	if n := new(big.Int).Mul(m.P, m.Q); n.Cmp(m.Key.N) != 0 {
		return fmt.Errorf("modulus %s is not p*q = %s", m.Key.N, n)
	}

	pm1 := new(big.Int).Sub(m.P, one)
	qm1 := new(big.Int).Sub(m.Q, one)
	if phi := pm1.Mul(pm1, qm1); phi.Cmp(m.Phi) != 0 {
		return fmt.Errorf("totient %s is not (p-1)(q-1) = %s", m.Phi, phi)
	}

	ed := new(big.Int).Mul(m.Key.E, m.Key.D)
	if ed.Mod(ed, m.Phi).Cmp(one) != 0 {
		return fmt.Errorf("e*d mod phi = %s, want 1", ed)
	}
	return nil
}

// CheckMessage reports ErrMessageOutOfRange unless 0 <= m < n.
// The textbook cipher itself reduces out-of-range values silently.
func CheckMessage(m, n *big.Int) error {
	if m == nil || n == nil {
		return ErrNilKey
	}
	if m.Sign() < 0 || m.Cmp(n) >= 0 {
		return fmt.Errorf("%w: %s not in [0, %s)", ErrMessageOutOfRange, m, n)
	}
	return nil
}
