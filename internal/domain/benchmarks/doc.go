// Package benchmarks defines timing results for the RSA implementations, the
// queries used to look them up and the contracts of the services and repository
// that produce and store them.
package benchmarks
