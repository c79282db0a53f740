package config

// DefaultKeyBits keeps trial-division prime search in the millisecond range.
const DefaultKeyBits = 32

// DefaultDomainBits mirrors the 128-bit integer width of the reference system.
const DefaultDomainBits = 128

// DefaultLibraryKeyBits is the key size used for the library-backed RSA.
const DefaultLibraryKeyBits = 2048
