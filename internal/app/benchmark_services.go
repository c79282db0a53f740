package app

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/MGTheTrain/rsa-lab/internal/domain/benchmarks"
	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"

	"github.com/google/uuid"
)

// ErrHistoryDisabled is returned by the history operations when no repository is configured.
var ErrHistoryDisabled = errors.New("benchmark history is not configured")

// benchmarkService implements the benchmarks.Service interface
type benchmarkService struct {
	textbook cryptoalg.TextbookRSAProcessor
	library  cryptoalg.RSAProcessor
	repo     benchmarks.Repository
	harness  *Harness
	logger   logger.Logger
}

// NewBenchmarkService creates a new benchmarkService instance. repo may be nil,
// in which case results are returned but not stored.
func NewBenchmarkService(
	textbook cryptoalg.TextbookRSAProcessor,
	library cryptoalg.RSAProcessor,
	repo benchmarks.Repository,
	harness *Harness,
	logger logger.Logger,
) (benchmarks.Service, error) {
	if textbook == nil || library == nil {
		return nil, fmt.Errorf("both RSA processors are required")
	}
	if harness == nil {
		return nil, fmt.Errorf("harness cannot be nil")
	}
	return &benchmarkService{
		textbook: textbook,
		library:  library,
		repo:     repo,
		harness:  harness,
		logger:   logger,
	}, nil
}

// RunOperation times a single operation described by req.
func (s *benchmarkService) RunOperation(ctx context.Context, req *benchmarks.RunRequest) (*benchmarks.Result, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var ops map[string]Operation
	var err error
	keyBits := req.KeySize
	switch req.Implementation {
	case crypto.ImplementationTextbook:
		ops, _, keyBits, err = s.textbookOperations(ctx, req.KeySize, big.NewInt(crypto.DemoMessage))
	case crypto.ImplementationLibrary:
		ops, _, err = s.libraryOperations(req.KeySize, []byte(crypto.DemoLibraryMessage))
	default:
		return nil, fmt.Errorf("unsupported implementation: %s", req.Implementation)
	}
	if err != nil {
		return nil, err
	}

	return s.measure(ctx, req.Name, req.Implementation, req.Operation, keyBits, req.Iterations, ops[req.Operation])
}

// RunManualSuite times the three textbook operations and verifies the round trip.
func (s *benchmarkService) RunManualSuite(ctx context.Context, keyBits, iterations int) (*benchmarks.Suite, error) {
	ops, verify, generatedBits, err := s.textbookOperations(ctx, keyBits, big.NewInt(crypto.DemoMessage))
	if err != nil {
		return nil, err
	}
	return s.runSuite(ctx, "Manual RSA", crypto.ImplementationTextbook, generatedBits, iterations, ops, verify)
}

// RunLibrarySuite times the three crypto/rsa operations and verifies the round trip.
func (s *benchmarkService) RunLibrarySuite(ctx context.Context, keyBits, iterations int) (*benchmarks.Suite, error) {
	ops, verify, err := s.libraryOperations(keyBits, []byte(crypto.DemoLibraryMessage))
	if err != nil {
		return nil, err
	}
	return s.runSuite(ctx, "Library RSA", crypto.ImplementationLibrary, keyBits, iterations, ops, verify)
}

// RunKeySizeSuite times textbook key generation for each width in keySizes.
// Results carry the width actually generated, which the domain clamp may lower.
func (s *benchmarkService) RunKeySizeSuite(ctx context.Context, keySizes []int, iterations int) (*benchmarks.Suite, error) {
	suite := &benchmarks.Suite{Name: "Key Sizes"}

	for _, bits := range keySizes {
		key, err := s.textbook.GenerateKeys(ctx, bits)
		if err != nil {
			return nil, fmt.Errorf("failed to generate benchmark key: %w", err)
		}
		generatedBits := modulusWidth(key.N)

		result, err := s.measure(ctx, fmt.Sprintf("Key Generation %d bits", generatedBits), crypto.ImplementationTextbook,
			crypto.OperationKeyGeneration, generatedBits, iterations, func(ctx context.Context) error {
				_, err := s.textbook.GenerateKeys(ctx, bits)
				return err
			})
		if err != nil {
			return nil, err
		}
		suite.Results = append(suite.Results, result)
	}
	return suite, nil
}

// RunMessageSizeSuite times textbook encryption of each message under one key.
// Messages that do not fit below n are reduced first.
func (s *benchmarkService) RunMessageSizeSuite(ctx context.Context, keyBits int, messages []int64, iterations int) (*benchmarks.Suite, error) {
	key, err := s.textbook.GenerateKeys(ctx, keyBits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate benchmark key: %w", err)
	}
	pub := key.PublicKey()

	suite := &benchmarks.Suite{Name: "Message Sizes"}
	for _, value := range messages {
		m := reduceMessage(big.NewInt(value), key.N)
		result, err := s.measure(ctx, fmt.Sprintf("Encryption m=%d", value), crypto.ImplementationTextbook,
			crypto.OperationEncryption, modulusWidth(key.N), iterations, func(context.Context) error {
				s.textbook.Encrypt(m, pub)
				return nil
			})
		if err != nil {
			return nil, err
		}
		suite.Results = append(suite.Results, result)
	}
	return suite, nil
}

// RunComparison runs both suites and pairs key generation, encryption and decryption.
func (s *benchmarkService) RunComparison(ctx context.Context, textbookBits, libraryBits, iterations int) ([]*benchmarks.Comparison, error) {
	manual, err := s.RunManualSuite(ctx, textbookBits, iterations)
	if err != nil {
		return nil, err
	}
	library, err := s.RunLibrarySuite(ctx, libraryBits, iterations)
	if err != nil {
		return nil, err
	}

	byOperation := make(map[string]*benchmarks.Result, len(library.Results))
	for _, r := range library.Results {
		byOperation[r.Operation] = r
	}

	comparisons := make([]*benchmarks.Comparison, 0, len(manual.Results))
	for _, r := range manual.Results {
		comparisons = append(comparisons, &benchmarks.Comparison{
			Operation: r.Operation,
			Textbook:  r,
			Library:   byOperation[r.Operation],
		})
	}
	return comparisons, nil
}

// List retrieves stored results considering a query filter when set.
func (s *benchmarkService) List(ctx context.Context, query *benchmarks.Query) ([]*benchmarks.Result, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.List(ctx, query)
}

// GetByID retrieves a stored result by its ID.
func (s *benchmarkService) GetByID(ctx context.Context, id string) (*benchmarks.Result, error) {
	if s.repo == nil {
		return nil, ErrHistoryDisabled
	}
	return s.repo.GetByID(ctx, id)
}

// DeleteByID deletes a stored result by its ID.
func (s *benchmarkService) DeleteByID(ctx context.Context, id string) error {
	if s.repo == nil {
		return ErrHistoryDisabled
	}
	return s.repo.DeleteByID(ctx, id)
}

// suiteOperations is the order in which suites run and report.
var suiteOperations = []struct {
	operation string
	label     string
}{
	{crypto.OperationKeyGeneration, "Key Generation"},
	{crypto.OperationEncryption, "Encryption"},
	{crypto.OperationDecryption, "Decryption"},
}

func (s *benchmarkService) runSuite(ctx context.Context, name, implementation string, keyBits, iterations int, ops map[string]Operation, verify func() bool) (*benchmarks.Suite, error) {
	suite := &benchmarks.Suite{Name: name}

	for _, o := range suiteOperations {
		result, err := s.measure(ctx, name+" "+o.label, implementation, o.operation, keyBits, iterations, ops[o.operation])
		if err != nil {
			return nil, err
		}
		suite.Results = append(suite.Results, result)
	}

	suite.IntegrityChecked = true
	suite.IntegrityOK = verify()
	if !suite.IntegrityOK {
		s.logger.Error(name, ": decrypted message does not match the original")
	}
	return suite, nil
}

// textbookOperations generates one key and returns closures timing each operation
// against it, a check that decryption restores message and the generated modulus width.
func (s *benchmarkService) textbookOperations(ctx context.Context, keyBits int, message *big.Int) (map[string]Operation, func() bool, int, error) {
	key, err := s.textbook.GenerateKeys(ctx, keyBits)
	if err != nil {
		return nil, nil, 0, fmt.Errorf("failed to generate benchmark key: %w", err)
	}
	pub, priv := key.PublicKey(), key.PrivateKey()
	m := reduceMessage(message, key.N)
	c := s.textbook.Encrypt(m, pub)

	ops := map[string]Operation{
		crypto.OperationKeyGeneration: func(ctx context.Context) error {
			_, err := s.textbook.GenerateKeys(ctx, keyBits)
			return err
		},
		crypto.OperationEncryption: func(context.Context) error {
			s.textbook.Encrypt(m, pub)
			return nil
		},
		crypto.OperationDecryption: func(context.Context) error {
			s.textbook.Decrypt(c, priv)
			return nil
		},
	}
	verify := func() bool {
		return s.textbook.Decrypt(c, priv).Cmp(m) == 0
	}
	return ops, verify, modulusWidth(key.N), nil
}

func (s *benchmarkService) libraryOperations(keyBits int, message []byte) (map[string]Operation, func() bool, error) {
	privateKey, publicKey, err := s.library.GenerateKeys(keyBits)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to generate benchmark key: %w", err)
	}
	ciphertext, err := s.library.Encrypt(message, publicKey)
	if err != nil {
		return nil, nil, err
	}

	ops := map[string]Operation{
		crypto.OperationKeyGeneration: func(context.Context) error {
			_, _, err := s.library.GenerateKeys(keyBits)
			return err
		},
		crypto.OperationEncryption: func(context.Context) error {
			_, err := s.library.Encrypt(message, publicKey)
			return err
		},
		crypto.OperationDecryption: func(context.Context) error {
			_, err := s.library.Decrypt(ciphertext, privateKey)
			return err
		},
	}
	verify := func() bool {
		plain, err := s.library.Decrypt(ciphertext, privateKey)
		return err == nil && string(plain) == string(message)
	}
	return ops, verify, nil
}

func (s *benchmarkService) measure(ctx context.Context, name, implementation, operation string, keyBits, iterations int, op Operation) (*benchmarks.Result, error) {
	if op == nil {
		return nil, fmt.Errorf("unsupported operation: %s", operation)
	}

	stats, err := s.harness.Run(ctx, name, iterations, op)
	if err != nil {
		return nil, err
	}

	result := &benchmarks.Result{
		ID:              uuid.NewString(),
		Name:            name,
		Implementation:  implementation,
		Operation:       operation,
		KeySize:         keyBits,
		Iterations:      iterations,
		Stats:           stats,
		DateTimeCreated: time.Now().UTC(),
	}

	if s.repo != nil {
		if err := s.repo.Create(ctx, result); err != nil {
			return nil, fmt.Errorf("failed to store benchmark result: %w", err)
		}
	}
	return result, nil
}

// modulusWidth is the even key width n was generated for. A product of two k-bit
// primes has 2k-1 or 2k bits.
func modulusWidth(n *big.Int) int {
	return (n.BitLen() + 1) &^ 1
}

// reduceMessage returns m mod n, leaving m untouched when it already fits.
func reduceMessage(m, n *big.Int) *big.Int {
	if m.Sign() >= 0 && m.Cmp(n) < 0 {
		return m
	}
	return new(big.Int).Mod(m, n)
}
