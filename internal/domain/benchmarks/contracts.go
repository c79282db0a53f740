package benchmarks

import (
	"context"
)

// RunService defines methods for timing RSA operations.
type RunService interface {
	// RunOperation times req.Iterations runs of one operation, stores the
	// result when a repository is configured and returns it.
	RunOperation(ctx context.Context, req *RunRequest) (*Result, error)
}

// MetadataService defines methods for reading and deleting stored results.
type MetadataService interface {
	// List retrieves stored results considering a query filter when set.
	List(ctx context.Context, query *Query) ([]*Result, error)

	// GetByID retrieves a result by its unique ID.
	// It returns ErrNotFound when no such result exists.
	GetByID(ctx context.Context, id string) (*Result, error)

	// DeleteByID deletes a result by its unique ID.
	DeleteByID(ctx context.Context, id string) error
}

// Repository defines the interface for Result persistence
type Repository interface {
	Create(ctx context.Context, result *Result) error
	List(ctx context.Context, query *Query) ([]*Result, error)
	GetByID(ctx context.Context, id string) (*Result, error)
	DeleteByID(ctx context.Context, id string) error
}

// SuiteService defines the fixed benchmark suites that compare the textbook
// implementation with the library.
type SuiteService interface {
	// RunManualSuite times key generation, encryption and decryption of the
	// textbook implementation and checks that decryption restores the message.
	RunManualSuite(ctx context.Context, keyBits, iterations int) (*Suite, error)

	// RunKeySizeSuite times textbook key generation once per key size.
	RunKeySizeSuite(ctx context.Context, keySizes []int, iterations int) (*Suite, error)

	// RunMessageSizeSuite times textbook encryption once per message value.
	RunMessageSizeSuite(ctx context.Context, keyBits int, messages []int64, iterations int) (*Suite, error)

	// RunLibrarySuite times key generation, encryption and decryption with crypto/rsa.
	RunLibrarySuite(ctx context.Context, keyBits, iterations int) (*Suite, error)

	// RunComparison runs the manual and library suites and pairs their results by operation.
	RunComparison(ctx context.Context, textbookBits, libraryBits, iterations int) ([]*Comparison, error)
}

// Service bundles everything the command line and REST layers need from the benchmark runner.
type Service interface {
	RunService
	SuiteService
	MetadataService
}
