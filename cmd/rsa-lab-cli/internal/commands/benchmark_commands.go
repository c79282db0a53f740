package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/MGTheTrain/rsa-lab/internal/app"
	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"

	"github.com/spf13/cobra"
)

// BenchmarkCommandHandler runs the benchmark suites and reads their stored history.
type BenchmarkCommandHandler struct {
	deps *dependencies
}

// NewBenchmarkCommandHandler initializes a BenchmarkCommandHandler from the configuration selected on cmd.
func NewBenchmarkCommandHandler(cmd *cobra.Command) (*BenchmarkCommandHandler, error) {
	deps, err := setupDependencies(cmd)
	if err != nil {
		return nil, err
	}
	return &BenchmarkCommandHandler{deps: deps}, nil
}

// BenchmarkCmd runs the manual, key size and message size suites
func (commandHandler *BenchmarkCommandHandler) BenchmarkCmd(cmd *cobra.Command, _ []string) error {
	log := commandHandler.deps.logger
	settings := commandHandler.deps.cfg.Benchmark

	iterations, err := intFlagOr(cmd, "iterations", settings.Iterations)
	if err != nil {
		log.Error(err)
		return err
	}
	sizeIterations, err := intFlagOr(cmd, "iterations", settings.SizeIterations)
	if err != nil {
		log.Error(err)
		return err
	}
	store, err := cmd.Flags().GetBool("store")
	if err != nil {
		log.Error("invalid store flag: ", err)
		return err
	}

	service, release, err := commandHandler.deps.benchmarkService(store)
	if err != nil {
		log.Error(err)
		return err
	}
	defer release()

	ctx := cmd.Context()
	w := cmd.OutOrStdout()
	keyBits := commandHandler.deps.cfg.RSA.KeyBits

	manual, err := service.RunManualSuite(ctx, keyBits, iterations)
	if err != nil {
		log.Error(err)
		return err
	}
	app.ReportSuite(w, manual)

	keySizes, err := service.RunKeySizeSuite(ctx, settings.KeySizes, sizeIterations)
	if err != nil {
		log.Error(err)
		return err
	}
	app.ReportSuite(w, keySizes)

	messages, err := service.RunMessageSizeSuite(ctx, keyBits, settings.MessageValues, sizeIterations)
	if err != nil {
		log.Error(err)
		return err
	}
	app.ReportSuite(w, messages)

	if manual.IntegrityChecked && !manual.IntegrityOK {
		return ErrIntegrityCheckFailed
	}
	return nil
}

// CompareCmd runs the textbook and library suites and prints their means side by side
func (commandHandler *BenchmarkCommandHandler) CompareCmd(cmd *cobra.Command, _ []string) error {
	log := commandHandler.deps.logger
	cfg := commandHandler.deps.cfg

	iterations, err := intFlagOr(cmd, "iterations", cfg.Benchmark.Iterations)
	if err != nil {
		log.Error(err)
		return err
	}
	store, err := cmd.Flags().GetBool("store")
	if err != nil {
		log.Error("invalid store flag: ", err)
		return err
	}

	service, release, err := commandHandler.deps.benchmarkService(store)
	if err != nil {
		log.Error(err)
		return err
	}
	defer release()

	comparisons, err := service.RunComparison(cmd.Context(), cfg.RSA.KeyBits, cfg.RSA.LibraryKeyBits, iterations)
	if err != nil {
		log.Error(err)
		return err
	}
	app.ReportComparison(cmd.OutOrStdout(), comparisons)
	return nil
}

// HistoryCmd lists stored benchmark results
func (commandHandler *BenchmarkCommandHandler) HistoryCmd(cmd *cobra.Command, _ []string) error {
	log := commandHandler.deps.logger

	query := benchmarks.NewQuery()
	var err error
	if query.Implementation, err = cmd.Flags().GetString("implementation"); err != nil {
		log.Error("invalid implementation flag: ", err)
		return err
	}
	if query.Operation, err = cmd.Flags().GetString("operation"); err != nil {
		log.Error("invalid operation flag: ", err)
		return err
	}
	if query.Limit, err = cmd.Flags().GetInt("limit"); err != nil {
		log.Error("invalid limit flag: ", err)
		return err
	}
	if err := query.Validate(); err != nil {
		log.Error(err)
		return err
	}

	service, release, err := commandHandler.deps.benchmarkService(true)
	if err != nil {
		log.Error(err)
		return err
	}
	defer release()

	results, err := service.List(cmd.Context(), query)
	if err != nil {
		log.Error(err)
		return err
	}

	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tIMPLEMENTATION\tOPERATION\tBITS\tITERATIONS\tMEAN (ns)\tCREATED")
	for _, r := range results {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%.2f\t%s\n",
			r.ID, r.Name, r.Implementation, r.Operation, r.KeySize, r.Iterations, r.Stats.Mean,
			r.DateTimeCreated.Format("2006-01-02 15:04:05"))
	}
	return tw.Flush()
}

// InitBenchmarkCommands registers the benchmark, compare and history commands
func InitBenchmarkCommands(rootCmd *cobra.Command) error {
	var benchmarkCmd = &cobra.Command{
		Use:   "benchmark",
		Short: "Benchmark the textbook implementation across operations, key sizes and messages",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewBenchmarkCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.BenchmarkCmd(cmd, args)
		},
	}
	benchmarkCmd.Flags().IntP("iterations", "", 0, "Iterations per operation (defaults to benchmark.iterations and benchmark.size_iterations)")
	benchmarkCmd.Flags().BoolP("store", "", false, "Store results in the configured database")
	rootCmd.AddCommand(benchmarkCmd)

	var compareCmd = &cobra.Command{
		Use:   "compare",
		Short: "Compare the textbook implementation with crypto/rsa",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewBenchmarkCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.CompareCmd(cmd, args)
		},
	}
	compareCmd.Flags().IntP("iterations", "", 0, "Iterations per operation (defaults to benchmark.iterations)")
	compareCmd.Flags().BoolP("store", "", false, "Store results in the configured database")
	rootCmd.AddCommand(compareCmd)

	var historyCmd = &cobra.Command{
		Use:   "history",
		Short: "List stored benchmark results, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			handler, err := NewBenchmarkCommandHandler(cmd)
			if err != nil {
				return err
			}
			return handler.HistoryCmd(cmd, args)
		},
	}
	historyCmd.Flags().StringP("implementation", "", "", "Filter by implementation (textbook or library)")
	historyCmd.Flags().StringP("operation", "", "", "Filter by operation (key_generation, encryption or decryption)")
	historyCmd.Flags().IntP("limit", "", 10, "Maximum number of results")
	rootCmd.AddCommand(historyCmd)

	return nil
}
