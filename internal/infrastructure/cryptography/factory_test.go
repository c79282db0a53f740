//go:build unit
// +build unit

package cryptography

import (
	"context"
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRSASettings() *config.RSASettings {
	return &config.RSASettings{
		KeyBits:        config.DefaultKeyBits,
		DomainBits:     config.DefaultDomainBits,
		LibraryKeyBits: config.DefaultLibraryKeyBits,
	}
}

func TestNewTextbookRSAProcessorFromSettings(t *testing.T) {
	logger := testutil.SetupTestLogger(t)

	t.Run("defaults", func(t *testing.T) {
		processor, err := NewTextbookRSAProcessorFromSettings(testRSASettings(), logger)
		require.NoError(t, err)

		material, err := processor.GenerateKeyMaterial(context.Background(), config.DefaultKeyBits)
		require.NoError(t, err)
		assert.NoError(t, material.Validate())
	})

	t.Run("seeded settings are reproducible", func(t *testing.T) {
		settings := testRSASettings()
		settings.Seed = "c0ffee"

		a, err := NewTextbookRSAProcessorFromSettings(settings, logger)
		require.NoError(t, err)
		b, err := NewTextbookRSAProcessorFromSettings(settings, logger)
		require.NoError(t, err)

		keyA, err := a.GenerateKeys(context.Background(), 24)
		require.NoError(t, err)
		keyB, err := b.GenerateKeys(context.Background(), 24)
		require.NoError(t, err)
		assert.Equal(t, 0, keyA.N.Cmp(keyB.N))
	})

	t.Run("domain clamp from settings", func(t *testing.T) {
		settings := testRSASettings()
		settings.DomainBits = 20

		processor, err := NewTextbookRSAProcessorFromSettings(settings, logger)
		require.NoError(t, err)

		key, err := processor.GenerateKeys(context.Background(), 40)
		require.NoError(t, err)
		assert.LessOrEqual(t, key.BitLen(), 20)
	})

	t.Run("invalid settings", func(t *testing.T) {
		settings := testRSASettings()
		settings.KeyBits = 33
		_, err := NewTextbookRSAProcessorFromSettings(settings, logger)
		assert.Error(t, err)
	})
}
