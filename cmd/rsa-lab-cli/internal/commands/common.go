package commands

import (
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/app"
	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/cryptography"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/persistence"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/config"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"

	"github.com/spf13/cobra"
)

// ConfigFlag names the persistent flag pointing at the YAML configuration file.
const ConfigFlag = "config"

// AddConfigFlag registers the global --config flag on rootCmd.
func AddConfigFlag(rootCmd *cobra.Command) {
	rootCmd.PersistentFlags().StringP(ConfigFlag, "c", "", "Path to the YAML configuration file (defaults and RSALAB_* variables apply without one)")
}

func setupLogger(settings *config.LoggerSettings) (logger.Logger, error) {
	if err := logger.InitLogger(settings); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	loggerInstance, err := logger.GetLogger()
	if err != nil {
		return nil, fmt.Errorf("failed to get logger instance: %w", err)
	}

	return loggerInstance, nil
}

// dependencies are built per invocation since --config is only known once flags are parsed.
type dependencies struct {
	cfg      *config.Config
	logger   logger.Logger
	textbook cryptoalg.TextbookRSAProcessor
	library  cryptoalg.RSAProcessor
	harness  *app.Harness
}

func setupDependencies(cmd *cobra.Command) (*dependencies, error) {
	configPath, err := cmd.Flags().GetString(ConfigFlag)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", ConfigFlag, err)
	}

	cfg, err := config.InitializeConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize config: %w", err)
	}

	loggerInstance, err := setupLogger(&cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}

	textbook, err := cryptography.NewTextbookRSAProcessorFromSettings(&cfg.RSA, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create textbook RSA processor: %w", err)
	}

	library, err := cryptography.NewRSAProcessor(loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create RSA processor: %w", err)
	}

	harness, err := app.NewHarness(cfg.Benchmark.ProgressEvery, loggerInstance)
	if err != nil {
		return nil, fmt.Errorf("failed to create harness: %w", err)
	}

	return &dependencies{
		cfg:      cfg,
		logger:   loggerInstance,
		textbook: textbook,
		library:  library,
		harness:  harness,
	}, nil
}

// openRepository connects to the configured database and migrates it.
// The returned func closes the connection.
func (d *dependencies) openRepository() (benchmarks.Repository, func(), error) {
	db, err := persistence.NewDBConnection(d.cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	closeDB := func() {
		if err := persistence.CloseDB(db); err != nil {
			d.logger.Warn("failed to close database: ", err)
		}
	}

	if err := persistence.Migrate(db); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to migrate schema: %w", err)
	}

	repo, err := persistence.NewGormBenchmarkRepository(db, d.logger)
	if err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to create benchmark repository: %w", err)
	}
	return repo, closeDB, nil
}

// benchmarkService builds the benchmark service, backed by the database when store is set.
// The returned func releases the database, if one was opened.
func (d *dependencies) benchmarkService(store bool) (benchmarks.Service, func(), error) {
	var repo benchmarks.Repository
	release := func() {}

	if store {
		var err error
		repo, release, err = d.openRepository()
		if err != nil {
			return nil, nil, err
		}
	}

	service, err := app.NewBenchmarkService(d.textbook, d.library, repo, d.harness, d.logger)
	if err != nil {
		release()
		return nil, nil, fmt.Errorf("failed to create benchmark service: %w", err)
	}
	return service, release, nil
}

// intFlagOr returns the flag value when it was set on the command line and fallback otherwise.
func intFlagOr(cmd *cobra.Command, name string, fallback int) (int, error) {
	if !cmd.Flags().Changed(name) {
		return fallback, nil
	}
	value, err := cmd.Flags().GetInt(name)
	if err != nil {
		return 0, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	return value, nil
}

func bigIntFlag(cmd *cobra.Command, name string) (*big.Int, error) {
	value, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, fmt.Errorf("invalid %s flag: %w", name, err)
	}
	if value == "" {
		return nil, fmt.Errorf("--%s is required", name)
	}
	n, ok := new(big.Int).SetString(value, 10)
	if !ok {
		return nil, fmt.Errorf("--%s is not a decimal integer: %q", name, value)
	}
	return n, nil
}
