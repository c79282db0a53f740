package app

import (
	"fmt"
	"io"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
)

// Report writes the statistics block of one result.
func Report(w io.Writer, result *benchmarks.Result) {
	stats := result.Stats
	fmt.Fprintf(w, "\n=== Statistics for %s ===\n", result.Name)
	fmt.Fprintf(w, "Run ID: %s (%s, %d bits, %d iterations)\n", result.ID, result.Implementation, result.KeySize, result.Iterations)
	fmt.Fprintf(w, "Mean: %.2f ns\n", stats.Mean)
	fmt.Fprintf(w, "Std Dev: %.2f ns\n", stats.StdDev)
	fmt.Fprintf(w, "Min: %d ns\n", stats.Min)
	fmt.Fprintf(w, "Max: %d ns\n", stats.Max)
	fmt.Fprintf(w, "Total: %d ns\n", stats.Total)
}

// ReportSuite writes every result of suite followed by the integrity check, if any.
func ReportSuite(w io.Writer, suite *benchmarks.Suite) {
	fmt.Fprintf(w, "\n=== Benchmark %s ===\n", suite.Name)
	for _, result := range suite.Results {
		Report(w, result)
	}

	if len(suite.Results) > 1 {
		fmt.Fprintf(w, "\n=== Performance Summary ===\n")
		for _, result := range suite.Results {
			fmt.Fprintf(w, "%s: %.2f ns (mean)\n", result.Name, result.Stats.Mean)
		}
	}

	if suite.IntegrityChecked {
		fmt.Fprintln(w, integrityLine(suite.IntegrityOK, "Integrity check: OK", "Integrity check: FAILED"))
	}
}

// ReportComparison writes the textbook and library means side by side.
func ReportComparison(w io.Writer, comparisons []*benchmarks.Comparison) {
	fmt.Fprintf(w, "\n=== Textbook vs Library ===\n")
	fmt.Fprintf(w, "%-16s %16s %16s %10s\n", "operation", "textbook (ns)", "library (ns)", "ratio")
	for _, c := range comparisons {
		var textbookMean, libraryMean float64
		if c.Textbook != nil {
			textbookMean = c.Textbook.Stats.Mean
		}
		if c.Library != nil {
			libraryMean = c.Library.Stats.Mean
		}
		fmt.Fprintf(w, "%-16s %16.2f %16.2f %10.4f\n", c.Operation, textbookMean, libraryMean, c.Ratio())
	}
}

func integrityLine(ok bool, success, failure string) string {
	if ok {
		return "✓ " + success
	}
	return "✗ " + failure
}
