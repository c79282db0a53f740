package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. RSALAB_RSA_KEY_BITS.
const EnvPrefix = "RSALAB"

// Config aggregates the settings of every subsystem.
type Config struct {
	Port      string            `mapstructure:"port" validate:"required,numeric"`
	Logger    LoggerSettings    `mapstructure:"logger"`
	Database  DatabaseSettings  `mapstructure:"database"`
	RSA       RSASettings       `mapstructure:"rsa"`
	Benchmark BenchmarkSettings `mapstructure:"benchmark"`
}

// Validate runs the validation of every nested settings block
func (c *Config) Validate() error {
	if err := validator.New().Var(c.Port, "required,numeric"); err != nil {
		return fmt.Errorf("validation failed for port: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return err
	}
	if err := c.Database.Validate(); err != nil {
		return err
	}
	if err := c.RSA.Validate(); err != nil {
		return err
	}
	return c.Benchmark.Validate()
}

// InitializeConfig loads the configuration from path. A missing file is not an error:
// defaults and environment overrides are used instead. An empty path skips the file.
func InitializeConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", "8080")

	v.SetDefault("logger.log_level", LogLevelInfo)
	v.SetDefault("logger.log_type", LogTypeConsole)
	v.SetDefault("logger.file_path", "")
	v.SetDefault("logger.max_size", 10)
	v.SetDefault("logger.max_backups", 3)
	v.SetDefault("logger.max_age", 28)

	v.SetDefault("database.type", SqliteDbType)
	v.SetDefault("database.dsn", "rsa-lab.db")
	v.SetDefault("database.name", "")

	v.SetDefault("rsa.key_bits", DefaultKeyBits)
	v.SetDefault("rsa.domain_bits", DefaultDomainBits)
	v.SetDefault("rsa.max_prime_attempts", 0)
	v.SetDefault("rsa.retry_on_no_inverse", 0)
	v.SetDefault("rsa.library_key_bits", DefaultLibraryKeyBits)
	v.SetDefault("rsa.seed", "")

	v.SetDefault("benchmark.iterations", 100)
	v.SetDefault("benchmark.size_iterations", 50)
	v.SetDefault("benchmark.key_sizes", []int{16, 32, 48})
	v.SetDefault("benchmark.message_values", []int64{100, 1000, 10000, 100000})
	v.SetDefault("benchmark.progress_every", 10)
}
