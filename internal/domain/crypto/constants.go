package crypto

// DefaultPublicExponent is the conventional public exponent (F4). It is used
// without checking coprimality with the totient first.
const DefaultPublicExponent = 65537

// ImplementationTextbook tags results produced by the from-scratch arithmetic.
const ImplementationTextbook = "textbook"

// ImplementationLibrary tags results produced by crypto/rsa.
const ImplementationLibrary = "library"

// OperationKeyGeneration represents the key generation operation type
const OperationKeyGeneration = "key_generation"

// OperationEncryption represents the encryption operation type
const OperationEncryption = "encryption"

// OperationDecryption represents the decryption operation type
const OperationDecryption = "decryption"

// DemoMessage is the integer message used by the textbook demonstrations.
const DemoMessage = 12345

// DemoLibraryMessage is the byte message used by the library demonstrations.
const DemoLibraryMessage = "Hello, RSA!"
