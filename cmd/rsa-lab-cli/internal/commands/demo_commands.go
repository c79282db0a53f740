package commands

import (
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/app"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"

	"github.com/spf13/cobra"
)

// ErrIntegrityCheckFailed is returned when a demonstration does not decrypt back to its message.
var ErrIntegrityCheckFailed = errors.New("decrypted message does not match the original")

// BenchmarkHint is printed by the test command.
const BenchmarkHint = "Run 'go test -tags unit -bench=. ./internal/infrastructure/cryptography/' for Go benchmarks"

// DemoCommandHandler encapsulates the manual and library walkthroughs.
type DemoCommandHandler struct {
	demoService    *app.DemoService
	textbookBits   int
	libraryKeyBits int
	logger         logger.Logger
}

// NewDemoCommandHandler initializes a DemoCommandHandler from the configuration selected on cmd.
func NewDemoCommandHandler(cmd *cobra.Command) (*DemoCommandHandler, error) {
	deps, err := setupDependencies(cmd)
	if err != nil {
		return nil, err
	}

	demoService, err := app.NewDemoService(deps.textbook, deps.library, deps.harness, deps.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create demo service: %w", err)
	}

	return &DemoCommandHandler{
		demoService:    demoService,
		textbookBits:   deps.cfg.RSA.KeyBits,
		libraryKeyBits: deps.cfg.RSA.LibraryKeyBits,
		logger:         deps.logger,
	}, nil
}

// ManualCmd walks through the textbook implementation once
func (commandHandler *DemoCommandHandler) ManualCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := intFlagOr(cmd, "key-size", commandHandler.textbookBits)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	if !validators.IsValidTextbookKeySize(int64(keySize)) {
		err := fmt.Errorf("%w: --key-size %d must be even and within [%d, %d]",
			crypto.ErrInvalidBitWidth, keySize, validators.MinTextbookKeyBits, validators.MaxTextbookKeyBits)
		commandHandler.logger.Error(err)
		return err
	}

	ok, err := commandHandler.demoService.RunManual(cmd.Context(), cmd.OutOrStdout(), keySize)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	if !ok {
		return ErrIntegrityCheckFailed
	}
	return nil
}

// LibCmd walks through crypto/rsa once
func (commandHandler *DemoCommandHandler) LibCmd(cmd *cobra.Command, _ []string) error {
	keySize, err := intFlagOr(cmd, "key-size", commandHandler.libraryKeyBits)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	showPrivate, err := cmd.Flags().GetBool("show-private")
	if err != nil {
		commandHandler.logger.Error("invalid show-private flag: ", err)
		return err
	}

	ok, err := commandHandler.demoService.RunLibrary(cmd.Context(), cmd.OutOrStdout(), keySize, showPrivate)
	if err != nil {
		commandHandler.logger.Error(err)
		return err
	}
	if !ok {
		return ErrIntegrityCheckFailed
	}
	return nil
}

// InitDemoCommands registers the manual, lib and test commands
func InitDemoCommands(rootCmd *cobra.Command) error {
	var manualCmd = &cobra.Command{
		Use:   "manual",
		Short: "Demonstrate the textbook RSA implementation",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewDemoCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.ManualCmd(cmd, args)
		},
	}
	manualCmd.Flags().IntP("key-size", "", 0, "Modulus width in bits (defaults to rsa.key_bits)")
	rootCmd.AddCommand(manualCmd)

	var libCmd = &cobra.Command{
		Use:   "lib",
		Short: "Demonstrate crypto/rsa with PKCS#1 v1.5 padding",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewDemoCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.LibCmd(cmd, args)
		},
	}
	libCmd.Flags().IntP("key-size", "", 0, "Key size in bits (defaults to rsa.library_key_bits)")
	libCmd.Flags().BoolP("show-private", "", false, "Also print the private key as PEM")
	rootCmd.AddCommand(libCmd)

	var testCmd = &cobra.Command{
		Use:   "test",
		Short: "Show how to run the Go benchmarks",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), BenchmarkHint)
		},
	}
	rootCmd.AddCommand(testCmd)

	return nil
}
