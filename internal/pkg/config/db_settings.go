package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// SqliteDbType selects the embedded SQLite backend
const SqliteDbType = "sqlite"

// PostgresDbType selects the PostgreSQL backend
const PostgresDbType = "postgres"

// DatabaseSettings describes where benchmark results are stored.
// Name is only used by PostgreSQL, where the database is created on first connect.
type DatabaseSettings struct {
	Type string `mapstructure:"type" validate:"required,oneof=sqlite postgres"`
	DSN  string `mapstructure:"dsn" validate:"required"`
	Name string `mapstructure:"name"`
}

// Validate checks that all fields in DatabaseSettings are valid
func (s *DatabaseSettings) Validate() error {
	if err := validator.New().Struct(s); err != nil {
		return fmt.Errorf("validation failed for DatabaseSettings: %w", err)
	}
	return nil
}
