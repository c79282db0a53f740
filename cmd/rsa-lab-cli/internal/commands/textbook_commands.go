package commands

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/app"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// TextbookCommandHandler encapsulates the single-shot textbook RSA operations.
type TextbookCommandHandler struct {
	textbookService crypto.TextbookService
	defaultKeyBits  int
	logger          logger.Logger
}

// NewTextbookCommandHandler initializes a TextbookCommandHandler from the configuration selected on cmd.
func NewTextbookCommandHandler(cmd *cobra.Command) (*TextbookCommandHandler, error) {
	deps, err := setupDependencies(cmd)
	if err != nil {
		return nil, err
	}

	textbookService, err := app.NewTextbookService(deps.textbook, deps.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook service: %w", err)
	}

	return &TextbookCommandHandler{
		textbookService: textbookService,
		defaultKeyBits:  deps.cfg.RSA.KeyBits,
		logger:          deps.logger,
	}, nil
}

// GenerateKeysCmd prints a fresh key together with its primes and totient
func (commandHandler *TextbookCommandHandler) GenerateKeysCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := intFlagOr(cmd, "key-size", commandHandler.defaultKeyBits)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	material, err := commandHandler.textbookService.GenerateKeys(cmd.Context(), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	w := cmd.OutOrStdout()
	fmt.Fprintf(w, "p = %s\n", material.P)
	fmt.Fprintf(w, "q = %s\n", material.Q)
	fmt.Fprintf(w, "n = %s\n", material.Key.N)
	fmt.Fprintf(w, "phi = %s\n", material.Phi)
	fmt.Fprintf(w, "e = %s\n", material.Key.E)
	fmt.Fprintf(w, "d = %s\n", material.Key.D)
	return nil
}

// EncryptCmd encrypts an integer message with a public key given as flags
func (commandHandler *TextbookCommandHandler) EncryptCmd(cmd *cobra.Command, _ []string) error {
	values := make(map[string]*big.Int, 3)
	for _, name := range []string{"n", "e", "message"} {
		v, err := bigIntFlag(cmd, name)
		if err != nil {
			commandHandler.logger.Error(err)
			return err
		}
		values[name] = v
	}

	ciphertext, err := commandHandler.textbookService.Encrypt(cmd.Context(), values["message"],
		crypto.PublicKey{N: values["n"], E: values["e"]})
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Ciphertext: %s\n", ciphertext)
	return nil
}

// DecryptCmd decrypts an integer ciphertext with a private key given as flags
func (commandHandler *TextbookCommandHandler) DecryptCmd(cmd *cobra.Command, _ []string) error {
	values := make(map[string]*big.Int, 3)
	for _, name := range []string{"n", "d", "ciphertext"} {
		v, err := bigIntFlag(cmd, name)
		if err != nil {
			commandHandler.logger.Error(err)
			return err
		}
		values[name] = v
	}

	message, err := commandHandler.textbookService.Decrypt(cmd.Context(), values["ciphertext"],
		crypto.PrivateKey{N: values["n"], D: values["d"]})
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Message: %s\n", message)
	return nil
}

// InitTextbookCommands registers the textbook key, encrypt and decrypt commands
func InitTextbookCommands(rootCmd *cobra.Command) error {
	var generateKeysCmd = &cobra.Command{
		Use:   "generate-keys",
		Short: "Generate a textbook RSA key and print p, q, n, phi, e and d",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewTextbookCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.GenerateKeysCmd(cmd, args)
		},
	}
	generateKeysCmd.Flags().IntP("key-size", "", 0, "Modulus width in bits (defaults to rsa.key_bits)")
	rootCmd.AddCommand(generateKeysCmd)

	var encryptCmd = &cobra.Command{
		Use:   "encrypt",
		Short: "Encrypt an integer 0 <= message < n with the public key (n, e)",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewTextbookCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.EncryptCmd(cmd, args)
		},
	}
	encryptCmd.Flags().StringP("n", "", "", "Modulus")
	encryptCmd.Flags().StringP("e", "", "", "Public exponent")
	encryptCmd.Flags().StringP("message", "", "", "Integer message")
	rootCmd.AddCommand(encryptCmd)

	var decryptCmd = &cobra.Command{
		Use:   "decrypt",
		Short: "Decrypt an integer 0 <= ciphertext < n with the private key (n, d)",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewTextbookCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.DecryptCmd(cmd, args)
		},
	}
	decryptCmd.Flags().StringP("n", "", "", "Modulus")
	decryptCmd.Flags().StringP("d", "", "", "Private exponent")
	decryptCmd.Flags().StringP("ciphertext", "", "", "Integer ciphertext")
	rootCmd.AddCommand(decryptCmd)

	return nil
}
