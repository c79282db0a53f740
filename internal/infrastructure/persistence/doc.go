// Package persistence provides database repository implementations.
// It uses GORM as the ORM layer to store benchmark results in SQLite or
// PostgreSQL, with validation on write and logging for traceability.
package persistence
