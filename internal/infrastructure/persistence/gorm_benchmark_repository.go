package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/infrastructure/persistence/models"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBenchmarkRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBenchmarkRepository creates a new GORM-based benchmarks.Repository implementation
func NewGormBenchmarkRepository(db *gorm.DB, logger logger.Logger) (benchmarks.Repository, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection cannot be nil")
	}
	return &gormBenchmarkRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBenchmarkRepository) Create(ctx context.Context, result *benchmarks.Result) error {
	if err := result.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BenchmarkResultModel{}
	model.FromDomain(result)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create benchmark result: %w", err)
	}

	r.logger.Debug("Stored benchmark result with id ", result.ID)
	return nil
}

func (r *gormBenchmarkRepository) List(ctx context.Context, query *benchmarks.Query) ([]*benchmarks.Result, error) {
	if query == nil {
		query = benchmarks.NewQuery()
	}
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BenchmarkResultModel
	dbQuery := r.db.WithContext(ctx).Model(&models.BenchmarkResultModel{})

	if query.Implementation != "" {
		dbQuery = dbQuery.Where("implementation = ?", query.Implementation)
	}
	if query.Operation != "" {
		dbQuery = dbQuery.Where("operation = ?", query.Operation)
	}
	if query.Name != "" {
		dbQuery = dbQuery.Where("name = ?", query.Name)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		// SortBy and SortOrder are restricted to known values by Validate
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch benchmark results: %w", err)
	}

	domainList := make([]*benchmarks.Result, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBenchmarkRepository) GetByID(ctx context.Context, id string) (*benchmarks.Result, error) {
	var model models.BenchmarkResultModel
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", benchmarks.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to fetch benchmark result: %w", err)
	}
	return model.ToDomain(), nil
}

func (r *gormBenchmarkRepository) DeleteByID(ctx context.Context, id string) error {
	tx := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.BenchmarkResultModel{})
	if tx.Error != nil {
		return fmt.Errorf("failed to delete benchmark result: %w", tx.Error)
	}
	if tx.RowsAffected == 0 {
		return fmt.Errorf("%w: %s", benchmarks.ErrNotFound, id)
	}

	r.logger.Info("Deleted benchmark result with id ", id)
	return nil
}
