package cryptography

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
)

// pkcs1v15Overhead is the padding a PKCS#1 v1.5 block reserves.
const pkcs1v15Overhead = 11

// rsaProcessor struct that implements the RSAProcessor interface
type rsaProcessor struct {
	logger logger.Logger
}

// NewRSAProcessor creates and returns a new instance of rsaProcessor
func NewRSAProcessor(logger logger.Logger) (cryptoalg.RSAProcessor, error) {
	return &rsaProcessor{
		logger: logger,
	}, nil
}

// GenerateKeys generates an RSA key pair with the specified bit size.
func (r *rsaProcessor) GenerateKeys(keySize int) (*rsa.PrivateKey, *rsa.PublicKey, error) {
	privateKey, err := rsa.GenerateKey(rand.Reader, keySize)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate RSA keys: %w", err)
	}
	r.logger.Debugf("Generated %d-bit library RSA key pair", keySize)
	return privateKey, &privateKey.PublicKey, nil
}

// Encrypt encrypts plaintext with PKCS#1 v1.5 padding, one block per
// publicKey.Size()-11 bytes of input.
func (r *rsaProcessor) Encrypt(plainText []byte, publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, errors.New("public key cannot be nil")
	}

	maxSize := publicKey.Size() - pkcs1v15Overhead
	if maxSize <= 0 {
		return nil, fmt.Errorf("public key too small for PKCS#1 v1.5: %d bytes", publicKey.Size())
	}

	var encryptedData []byte
	for len(plainText) > 0 {
		chunkSize := min(maxSize, len(plainText))

		encryptedChunk, err := rsa.EncryptPKCS1v15(rand.Reader, publicKey, plainText[:chunkSize])
		if err != nil {
			return nil, fmt.Errorf("failed to encrypt data: %w", err)
		}
		encryptedData = append(encryptedData, encryptedChunk...)
		plainText = plainText[chunkSize:]
	}

	r.logger.Debug("RSA encryption succeeded")
	return encryptedData, nil
}

// Decrypt reverses Encrypt, reading ciphertext in blocks of privateKey.Size() bytes.
func (r *rsaProcessor) Decrypt(ciphertext []byte, privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	blockSize := privateKey.Size()
	if len(ciphertext)%blockSize != 0 {
		return nil, fmt.Errorf("ciphertext length %d is not a multiple of the %d-byte block size", len(ciphertext), blockSize)
	}

	var decryptedData []byte
	for len(ciphertext) > 0 {
		decryptedChunk, err := rsa.DecryptPKCS1v15(rand.Reader, privateKey, ciphertext[:blockSize])
		if err != nil {
			return nil, fmt.Errorf("failed to decrypt data: %w", err)
		}
		decryptedData = append(decryptedData, decryptedChunk...)
		ciphertext = ciphertext[blockSize:]
	}

	r.logger.Debug("RSA decryption succeeded")
	return decryptedData, nil
}

// EncodePrivateKeyPEM encodes the private key as a PKCS#1 "RSA PRIVATE KEY" block.
func (r *rsaProcessor) EncodePrivateKeyPEM(privateKey *rsa.PrivateKey) ([]byte, error) {
	if privateKey == nil {
		return nil, fmt.Errorf("private key cannot be nil")
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PRIVATE KEY",
		Bytes: x509.MarshalPKCS1PrivateKey(privateKey),
	}), nil
}

// EncodePublicKeyPEM encodes the public key as a PKCS#1 "RSA PUBLIC KEY" block.
func (r *rsaProcessor) EncodePublicKeyPEM(publicKey *rsa.PublicKey) ([]byte, error) {
	if publicKey == nil {
		return nil, fmt.Errorf("public key cannot be nil")
	}

	return pem.EncodeToMemory(&pem.Block{
		Type:  "RSA PUBLIC KEY",
		Bytes: x509.MarshalPKCS1PublicKey(publicKey),
	}), nil
}
