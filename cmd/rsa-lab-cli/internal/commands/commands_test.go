//go:build unit
// +build unit

package commands

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTestConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	content := fmt.Sprintf(`port: "8080"
logger:
  log_level: error
  log_type: console
database:
  type: sqlite
  dsn: %q
rsa:
  key_bits: 24
  domain_bits: 128
  library_key_bits: 1024
benchmark:
  iterations: 2
  size_iterations: 2
  key_sizes: [16, 20]
  message_values: [7, 42]
  progress_every: 0
`, filepath.Join(dir, "history.db"))

	path := filepath.Join(dir, "rsa-lab.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

// executeCommand runs args against a freshly built command tree, since cobra keeps flag state between runs.
func executeCommand(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	rootCmd := &cobra.Command{Use: "rsa-lab-cli", SilenceUsage: true, SilenceErrors: true}
	AddConfigFlag(rootCmd)
	require.NoError(t, InitDemoCommands(rootCmd))
	require.NoError(t, InitBenchmarkCommands(rootCmd))
	require.NoError(t, InitTextbookCommands(rootCmd))

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := rootCmd.Execute()
	return out.String(), err
}

func TestTextbookCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	t.Run("generate-keys", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "generate-keys", "--key-size", "16")
		require.NoError(t, err)
		assert.Contains(t, out, "n = ")
		assert.Contains(t, out, "phi = ")
		assert.Contains(t, out, "e = 65537")
	})

	t.Run("generate-keys uses the configured width", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "generate-keys")
		require.NoError(t, err)
		assert.Contains(t, out, "d = ")
	})

	t.Run("generate-keys rejects odd widths", func(t *testing.T) {
		_, err := executeCommand(t, configPath, "generate-keys", "--key-size", "15")
		assert.ErrorIs(t, err, crypto.ErrInvalidBitWidth)
	})

	t.Run("encrypt", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "encrypt", "--n", "3233", "--e", "17", "--message", "65")
		require.NoError(t, err)
		assert.Contains(t, out, "Ciphertext: 2790")
	})

	t.Run("decrypt", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "decrypt", "--n", "3233", "--d", "2753", "--ciphertext", "2790")
		require.NoError(t, err)
		assert.Contains(t, out, "Message: 65")
	})

	t.Run("encrypt rejects messages not below n", func(t *testing.T) {
		_, err := executeCommand(t, configPath, "encrypt", "--n", "3233", "--e", "17", "--message", "3233")
		assert.ErrorIs(t, err, crypto.ErrMessageOutOfRange)
	})

	t.Run("encrypt requires the modulus", func(t *testing.T) {
		_, err := executeCommand(t, configPath, "encrypt", "--e", "17", "--message", "65")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "--n is required")
	})

	t.Run("decrypt rejects non-integers", func(t *testing.T) {
		_, err := executeCommand(t, configPath, "decrypt", "--n", "3233", "--d", "0x10", "--ciphertext", "2790")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a decimal integer")
	})
}

func TestDemoCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	t.Run("manual", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "manual")
		require.NoError(t, err)
		assert.Contains(t, out, "=== Manual RSA Implementation ===")
		assert.Contains(t, out, "Original message: 12345")
		assert.Contains(t, out, "✓ Encryption/decryption succeeded!")
	})

	t.Run("manual with a small key reduces the message", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "manual", "--key-size", "8")
		require.NoError(t, err)
		assert.Contains(t, out, "does not fit below n")
	})

	t.Run("manual rejects unsupported key sizes", func(t *testing.T) {
		for _, size := range []string{"7", "2", "0", "4098"} {
			out, err := executeCommand(t, configPath, "manual", "--key-size", size)
			assert.ErrorIs(t, err, crypto.ErrInvalidBitWidth, "key size %s", size)
			assert.NotContains(t, out, "=== Manual RSA Implementation ===")
		}
	})

	t.Run("lib", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "lib", "--show-private")
		require.NoError(t, err)
		assert.Contains(t, out, "BEGIN RSA PUBLIC KEY")
		assert.Contains(t, out, "BEGIN RSA PRIVATE KEY")
		assert.Contains(t, out, "Decrypted message: Hello, RSA!")
	})

	t.Run("lib hides the private key by default", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "lib")
		require.NoError(t, err)
		assert.NotContains(t, out, "PRIVATE KEY")
	})

	t.Run("test", func(t *testing.T) {
		out, err := executeCommand(t, configPath, "test")
		require.NoError(t, err)
		assert.Contains(t, out, "go test")
		assert.Contains(t, out, "-bench=.")
	})
}

func TestBenchmarkCommands(t *testing.T) {
	configPath := writeTestConfig(t)

	out, err := executeCommand(t, configPath, "benchmark", "--iterations", "2", "--store")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Benchmark Manual RSA ===")
	assert.Contains(t, out, "Key Generation 16 bits")
	assert.Contains(t, out, "Encryption m=42")
	assert.Contains(t, out, "✓ Integrity check: OK")

	out, err = executeCommand(t, configPath, "history", "--operation", "encryption", "--limit", "50")
	require.NoError(t, err)
	assert.Contains(t, out, "Manual RSA Encryption")
	assert.Contains(t, out, "Encryption m=7")
	assert.NotContains(t, out, "Manual RSA Decryption")

	out, err = executeCommand(t, configPath, "compare", "--iterations", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "=== Textbook vs Library ===")
	assert.Contains(t, out, "key_generation")

	_, err = executeCommand(t, configPath, "history", "--implementation", "openssl")
	assert.Error(t, err)
}
