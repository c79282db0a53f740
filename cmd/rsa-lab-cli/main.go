// Package main is the entry point for the rsa-lab-cli application.
// It initializes the root command, registers the demonstration, benchmark and
// textbook sub-commands, then executes the command-line interface.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	commands "github.com/MGTheTrain/rsa-lab/cmd/rsa-lab-cli/internal/commands"

	"github.com/spf13/cobra"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("Error: %v", err)
	}
}

func run() error {
	rootCmd := &cobra.Command{
		Use:   "rsa-lab-cli",
		Short: "Textbook RSA next to crypto/rsa",
		Long: `rsa-lab-cli builds RSA from primitive integer arithmetic and times it
against the standard library.

  manual         demonstrate the textbook implementation
  lib            demonstrate crypto/rsa
  benchmark      time the textbook implementation
  compare        time both implementations side by side
  history        list stored benchmark results

Configuration is read from --config, with RSALAB_* environment overrides.`,
		SilenceUsage: true,
	}
	commands.AddConfigFlag(rootCmd)

	// Initialize all command groups BEFORE executing
	if err := initializeCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize commands: %w", err)
	}

	// Ctrl-C stops prime searches and benchmark loops between iterations
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Execute root command ONCE after all commands are registered
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// initializeCommands registers all command groups with the root command.
func initializeCommands(rootCmd *cobra.Command) error {
	if err := commands.InitDemoCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize demo commands: %w", err)
	}

	if err := commands.InitBenchmarkCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize benchmark commands: %w", err)
	}

	if err := commands.InitTextbookCommands(rootCmd); err != nil {
		return fmt.Errorf("failed to initialize textbook commands: %w", err)
	}

	return nil
}

// init sets up any necessary initialization before main runs.
func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stderr)
}
