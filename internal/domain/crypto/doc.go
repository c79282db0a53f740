// Package crypto holds the RSA key models, sentinel errors and constants shared by the
// textbook implementation, the library-backed implementation and the timing harness.
package crypto
