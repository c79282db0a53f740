package cryptography

import (
	"math"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
)

// trialDivisionTester proves primality by dividing by every odd number up to the
// square root. Cost is O(sqrt(n)), which keeps prime widths small in practice.
type trialDivisionTester struct{}

// NewPrimalityTester returns the deterministic trial-division tester.
func NewPrimalityTester() cryptoalg.PrimalityTester {
	return trialDivisionTester{}
}

// IsPrime reports whether value is prime. Values that fit in 64 bits take a
// native uint64 path; both paths agree on every input.
func (trialDivisionTester) IsPrime(value *big.Int) bool {
	if value.Sign() < 0 {
		return false
	}
	if value.IsUint64() {
		return isPrimeUint64(value.Uint64())
	}
	return isPrimeBig(value)
}

func isPrimeUint64(n uint64) bool {
	if n < 2 {
		return false
	}
	if n == 2 {
		return true
	}
	if n%2 == 0 {
		return false
	}

	limit := isqrt(n)
	for i := uint64(3); i <= limit; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}

// isPrimeBig only sees values above 2^64, so 2 and the small cases are already excluded.
func isPrimeBig(n *big.Int) bool {
	if n.Bit(0) == 0 {
		return false
	}

	limit := new(big.Int).Sqrt(n)
	r := new(big.Int)
	for i := big.NewInt(3); i.Cmp(limit) <= 0; i.Add(i, two) {
		if r.Rem(n, i).Sign() == 0 {
			return false
		}
	}
	return true
}

// isqrt returns floor(sqrt(n)). The float estimate is corrected in both directions.
func isqrt(n uint64) uint64 {
	r := uint64(math.Sqrt(float64(n)))
	if r > math.MaxUint32 {
		r = math.MaxUint32
	}
	for r*r > n {
		r--
	}
	for r < math.MaxUint32 && (r+1)*(r+1) <= n {
		r++
	}
	return r
}
