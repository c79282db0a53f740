package cryptoalg

import "crypto/rsa"

// RSAProcessor handles RSA through the standard library, as the baseline the
// textbook implementation is measured against.
type RSAProcessor interface {
	// GenerateKeys generates an RSA key pair with the specified bit size.
	GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error)

	// Encrypt encrypts plaintext using PKCS#1 v1.5 padding with the public key.
	// Plaintexts longer than one block are split into chunks.
	Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error)

	// Decrypt decrypts PKCS#1 v1.5 ciphertext produced by Encrypt.
	Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error)

	// EncodePrivateKeyPEM returns the private key as a PKCS#1 PEM block.
	EncodePrivateKeyPEM(privateKey *rsa.PrivateKey) ([]byte, error)

	// EncodePublicKeyPEM returns the public key as a PKCS#1 PEM block.
	EncodePublicKeyPEM(publicKey *rsa.PublicKey) ([]byte, error)
}
