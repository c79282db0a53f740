package cryptography

import (
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// modularArithmetic implements cryptoalg.ModularArithmetic over arbitrary-precision
// integers, so products never overflow before reduction.
type modularArithmetic struct{}

// NewModularArithmetic returns the big.Int backed arithmetic engine.
func NewModularArithmetic() cryptoalg.ModularArithmetic {
	return modularArithmetic{}
}

// GCD runs the Euclidean algorithm iteratively. GCD(a, 0) = a.
func (modularArithmetic) GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Set(a)
	y := new(big.Int).Set(b)
	r := new(big.Int)

	for y.Sign() != 0 {
		r.Rem(x, y)
		x, y, r = y, r, x
	}
	return x
}

// ModInverse runs the extended Euclidean algorithm on (m, a), tracking only the
// coefficient of a. The coefficient can go negative and is shifted into [0, m) at the end.
func (modularArithmetic) ModInverse(a, m *big.Int) (*big.Int, bool) {
	if m.Sign() <= 0 {
		return nil, false
	}

	t, newT := big.NewInt(0), big.NewInt(1)
	r, newR := new(big.Int).Set(m), new(big.Int).Mod(a, m)
	q, tmp := new(big.Int), new(big.Int)

	for newR.Sign() != 0 {
		q.Quo(r, newR)

		tmp.Mul(q, newT)
		tmp.Sub(t, tmp)
		t, newT, tmp = newT, tmp, t

		tmp.Mul(q, newR)
		tmp.Sub(r, tmp)
		r, newR, tmp = newR, tmp, r
	}

	if r.Cmp(one) > 0 {
		return nil, false
	}
	if t.Sign() < 0 {
		t.Add(t, m)
	}
	return t, true
}

// ModPow computes base^exponent mod modulus by right-to-left square-and-multiply.
// modulus must be positive and exponent non-negative; ModPow(b, e, 1) = 0.
func (modularArithmetic) ModPow(base, exponent, modulus *big.Int) *big.Int {
	if modulus.Cmp(one) == 0 {
		return new(big.Int)
	}

	result := big.NewInt(1)
	b := new(big.Int).Mod(base, modulus)
	e := new(big.Int).Set(exponent)

	for e.Sign() > 0 {
		if e.Bit(0) == 1 {
			result.Mul(result, b)
			result.Mod(result, modulus)
		}
		b.Mul(b, b)
		b.Mod(b, modulus)
		e.Rsh(e, 1)
	}
	return result
}
