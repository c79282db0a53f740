package models

import (
	"time"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
)

// BenchmarkResultModel is the GORM database model for benchmark results
type BenchmarkResultModel struct {
	ID              string    `gorm:"primaryKey;type:varchar(36)"`
	Name            string    `gorm:"not null;type:varchar(255)"`
	Implementation  string    `gorm:"not null;index;type:varchar(20)"`
	Operation       string    `gorm:"not null;index;type:varchar(20)"`
	KeySize         int       `gorm:"not null"`
	Iterations      int       `gorm:"not null"`
	Mean            float64   `gorm:"not null"`
	StdDev          float64   `gorm:"not null"`
	Min             int64     `gorm:"not null"`
	Max             int64     `gorm:"not null"`
	Total           int64     `gorm:"not null"`
	DateTimeCreated time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (BenchmarkResultModel) TableName() string {
	return "benchmark_results"
}

// ToDomain converts GORM model to domain entity
func (m *BenchmarkResultModel) ToDomain() *benchmarks.Result {
	return &benchmarks.Result{
		ID:             m.ID,
		Name:           m.Name,
		Implementation: m.Implementation,
		Operation:      m.Operation,
		KeySize:        m.KeySize,
		Iterations:     m.Iterations,
		Stats: benchmarks.Stats{
			Mean:   m.Mean,
			StdDev: m.StdDev,
			Min:    m.Min,
			Max:    m.Max,
			Total:  m.Total,
		},
		DateTimeCreated: m.DateTimeCreated,
	}
}

// FromDomain converts domain entity to GORM model
func (m *BenchmarkResultModel) FromDomain(r *benchmarks.Result) {
	m.ID = r.ID
	m.Name = r.Name
	m.Implementation = r.Implementation
	m.Operation = r.Operation
	m.KeySize = r.KeySize
	m.Iterations = r.Iterations
	m.Mean = r.Stats.Mean
	m.StdDev = r.Stats.StdDev
	m.Min = r.Stats.Min
	m.Max = r.Stats.Max
	m.Total = r.Stats.Total
	m.DateTimeCreated = r.DateTimeCreated
}
