package app

import (
	"context"
	"crypto/rsa"
	"fmt"
	"io"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
)

// DemoService walks through key generation, encryption and decryption once,
// printing the values and timings as it goes.
type DemoService struct {
	textbook cryptoalg.TextbookRSAProcessor
	library  cryptoalg.RSAProcessor
	harness  *Harness
	logger   logger.Logger
}

// NewDemoService creates a new DemoService instance
func NewDemoService(textbook cryptoalg.TextbookRSAProcessor, library cryptoalg.RSAProcessor, harness *Harness, logger logger.Logger) (*DemoService, error) {
	if textbook == nil || library == nil {
		return nil, fmt.Errorf("both RSA processors are required")
	}
	if harness == nil {
		return nil, fmt.Errorf("harness cannot be nil")
	}
	return &DemoService{
		textbook: textbook,
		library:  library,
		harness:  harness,
		logger:   logger,
	}, nil
}

// RunManual demonstrates the textbook implementation on the integer 12345.
// It reports whether decryption restored the message.
func (d *DemoService) RunManual(ctx context.Context, w io.Writer, keyBits int) (bool, error) {
	fmt.Fprintln(w, "=== Manual RSA Implementation ===")
	fmt.Fprintln(w, "Generating RSA keys...")

	var key *crypto.KeyPair
	elapsed, err := d.harness.Measure(ctx, func(ctx context.Context) error {
		var err error
		key, err = d.textbook.GenerateKeys(ctx, keyBits)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to generate keys: %w", err)
	}
	fmt.Fprintf(w, "Key generation time: %v\n", elapsed)
	fmt.Fprintf(w, "Generated key: n=%s, e=%s, d=%s\n", key.N, key.E, key.D)

	message := big.NewInt(crypto.DemoMessage)
	if message.Cmp(key.N) >= 0 {
		message = reduceMessage(message, key.N)
		fmt.Fprintf(w, "Message %d does not fit below n, using %s\n", crypto.DemoMessage, message)
	}
	fmt.Fprintf(w, "Original message: %s\n", message)

	var ciphertext, decrypted *big.Int
	elapsed, _ = d.harness.Measure(ctx, func(context.Context) error {
		ciphertext = d.textbook.Encrypt(message, key.PublicKey())
		return nil
	})
	fmt.Fprintf(w, "Ciphertext: %s\n", ciphertext)
	fmt.Fprintf(w, "Encryption time: %v\n", elapsed)

	elapsed, _ = d.harness.Measure(ctx, func(context.Context) error {
		decrypted = d.textbook.Decrypt(ciphertext, key.PrivateKey())
		return nil
	})
	fmt.Fprintf(w, "Decrypted message: %s\n", decrypted)
	fmt.Fprintf(w, "Decryption time: %v\n", elapsed)

	ok := message.Cmp(decrypted) == 0
	fmt.Fprintln(w, integrityLine(ok, "Encryption/decryption succeeded!", "Encryption/decryption failed!"))
	return ok, nil
}

// RunLibrary demonstrates crypto/rsa on "Hello, RSA!" and prints the public key
// as PEM, followed by the private key when showPrivate is set.
func (d *DemoService) RunLibrary(ctx context.Context, w io.Writer, keyBits int, showPrivate bool) (bool, error) {
	fmt.Fprintln(w, "=== Library RSA Implementation ===")
	fmt.Fprintln(w, "Generating RSA keys...")

	var privateKey *rsa.PrivateKey
	var publicKey *rsa.PublicKey
	elapsed, err := d.harness.Measure(ctx, func(context.Context) error {
		var err error
		privateKey, publicKey, err = d.library.GenerateKeys(keyBits)
		return err
	})
	if err != nil {
		return false, fmt.Errorf("failed to generate keys: %w", err)
	}
	fmt.Fprintf(w, "Key generation time: %v\n", elapsed)
	fmt.Fprintln(w, "Key generated successfully!")

	pubPEM, err := d.library.EncodePublicKeyPEM(publicKey)
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "%s", pubPEM)

	if showPrivate {
		privPEM, err := d.library.EncodePrivateKeyPEM(privateKey)
		if err != nil {
			return false, err
		}
		fmt.Fprintf(w, "%s", privPEM)
	}

	message := []byte(crypto.DemoLibraryMessage)
	fmt.Fprintf(w, "Original message: %s\n", message)

	var ciphertext, decrypted []byte
	elapsed, err = d.harness.Measure(ctx, func(context.Context) error {
		var err error
		ciphertext, err = d.library.Encrypt(message, publicKey)
		return err
	})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "Ciphertext: %x\n", ciphertext)
	fmt.Fprintf(w, "Encryption time: %v\n", elapsed)

	elapsed, err = d.harness.Measure(ctx, func(context.Context) error {
		var err error
		decrypted, err = d.library.Decrypt(ciphertext, privateKey)
		return err
	})
	if err != nil {
		return false, err
	}
	fmt.Fprintf(w, "Decrypted message: %s\n", decrypted)
	fmt.Fprintf(w, "Decryption time: %v\n", elapsed)

	ok := string(message) == string(decrypted)
	fmt.Fprintln(w, integrityLine(ok, "Encryption/decryption succeeded!", "Encryption/decryption failed!"))
	return ok, nil
}
