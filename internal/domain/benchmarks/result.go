package benchmarks

import (
	"math"
	"time"
)

// Stats summarises per-iteration timings in nanoseconds. StdDev is the
// population standard deviation.
type Stats struct {
	Mean   float64 `validate:"gte=0"`
	StdDev float64 `validate:"gte=0"`
	Min    int64   `validate:"gte=0"`
	Max    int64   `validate:"gte=0,gtefield=Min"`
	Total  int64   `validate:"gte=0"`
}

// Result entity
type Result struct {
	ID              string    `validate:"required,uuid4"`
	Name            string    `validate:"required,min=1,max=255"`
	Implementation  string    `validate:"required,oneof=textbook library"`
	Operation       string    `validate:"required,oneof=key_generation encryption decryption"`
	KeySize         int       `validate:"required,min=4,max=4096"`
	Iterations      int       `validate:"required,min=1"`
	Stats           Stats
	DateTimeCreated time.Time `validate:"required"`
}

// Validate for validating Result struct
func (r *Result) Validate() error {
	return validateStruct(r)
}

// MeanDuration is the mean iteration time as a time.Duration.
func (r *Result) MeanDuration() time.Duration {
	return time.Duration(r.Stats.Mean)
}

// ComputeStats derives Stats from the individual iteration timings.
// An empty slice gives zero Stats.
func ComputeStats(samples []time.Duration) Stats {
	if len(samples) == 0 {
		return Stats{}
	}

	stats := Stats{Min: int64(samples[0]), Max: int64(samples[0])}
	for _, s := range samples {
		ns := int64(s)
		stats.Total += ns
		stats.Min = min(stats.Min, ns)
		stats.Max = max(stats.Max, ns)
	}
	stats.Mean = float64(stats.Total) / float64(len(samples))

	var sumSq float64
	for _, s := range samples {
		d := float64(s) - stats.Mean
		sumSq += d * d
	}
	stats.StdDev = math.Sqrt(sumSq / float64(len(samples)))
	return stats
}
