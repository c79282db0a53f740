package app

import (
	"context"
	"fmt"
	"time"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
)

// DefaultProgressEvery is how often Run logs its progress.
const DefaultProgressEvery = 10

// Operation is one timed unit of work.
type Operation func(ctx context.Context) error

// Harness times operations with the wall clock and summarises the timings.
type Harness struct {
	progressEvery int
	now           func() time.Time
	logger        logger.Logger
}

// NewHarness creates a Harness that logs progress every progressEvery
// iterations. 0 disables progress logging.
func NewHarness(progressEvery int, logger logger.Logger) (*Harness, error) {
	if progressEvery < 0 {
		return nil, fmt.Errorf("progress interval cannot be negative: %d", progressEvery)
	}
	return &Harness{
		progressEvery: progressEvery,
		now:           time.Now,
		logger:        logger,
	}, nil
}

// Measure runs op once and returns how long it took.
func (h *Harness) Measure(ctx context.Context, op Operation) (time.Duration, error) {
	start := h.now()
	if err := op(ctx); err != nil {
		return 0, err
	}
	return h.now().Sub(start), nil
}

// Run measures op iterations times and returns the statistics of the samples.
// The context is checked between iterations.
func (h *Harness) Run(ctx context.Context, name string, iterations int, op Operation) (benchmarks.Stats, error) {
	if iterations < 1 {
		return benchmarks.Stats{}, fmt.Errorf("iterations must be at least 1, got %d", iterations)
	}

	h.logger.Infof("Running benchmark: %s", name)

	samples := make([]time.Duration, 0, iterations)
	for i := 0; i < iterations; i++ {
		if err := ctx.Err(); err != nil {
			return benchmarks.Stats{}, fmt.Errorf("benchmark %q stopped after %d iterations: %w", name, i, err)
		}

		elapsed, err := h.Measure(ctx, op)
		if err != nil {
			return benchmarks.Stats{}, fmt.Errorf("benchmark %q failed at iteration %d: %w", name, i+1, err)
		}
		samples = append(samples, elapsed)

		if h.progressEvery > 0 && (i+1)%h.progressEvery == 0 {
			h.logger.Infof("  Iteration %d/%d", i+1, iterations)
		}
	}

	return benchmarks.ComputeStats(samples), nil
}
