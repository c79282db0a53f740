// Package cryptoalg defines the contracts of the RSA arithmetic engine and of the
// library-backed RSA it is compared against: primality testing, prime sampling,
// modular arithmetic, key generation and the encrypt/decrypt primitives.
package cryptoalg
