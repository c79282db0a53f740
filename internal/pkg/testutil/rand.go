package testutil

import (
	"testing"

	"github.com/MGTheTrain/rsa-lab/internal/pkg/randutil"
)

// SeededSource returns a deterministic randomness source derived from label,
// so a failing test can be replayed with the same candidate sequence.
func SeededSource(t *testing.T, label string) *randutil.ShakeSource {
	t.Helper()
	return randutil.NewShakeSource([]byte(label))
}
