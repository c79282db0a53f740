package app

import (
	"context"
	"fmt"
	"math/big"

	"github.com/MGTheTrain/rsa-lab/internal/domain/crypto"
	"github.com/MGTheTrain/rsa-lab/internal/domain/cryptoalg"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/logger"
	"github.com/MGTheTrain/rsa-lab/internal/pkg/validators"
)

// textbookService implements the crypto.TextbookService interface
type textbookService struct {
	processor cryptoalg.TextbookRSAProcessor
	logger    logger.Logger
}

// NewTextbookService creates a new textbookService instance
func NewTextbookService(processor cryptoalg.TextbookRSAProcessor, logger logger.Logger) (crypto.TextbookService, error) {
	if processor == nil {
		return nil, fmt.Errorf("textbook processor cannot be nil")
	}
	return &textbookService{
		processor: processor,
		logger:    logger,
	}, nil
}

// GenerateKeys builds a key after checking that bits is an even width the generator supports.
func (s *textbookService) GenerateKeys(ctx context.Context, bits int) (*crypto.KeyMaterial, error) {
	if !validators.IsValidTextbookKeySize(int64(bits)) {
		return nil, fmt.Errorf("%w: %d must be even and within [%d, %d]",
			crypto.ErrInvalidBitWidth, bits, validators.MinTextbookKeyBits, validators.MaxTextbookKeyBits)
	}

	material, err := s.processor.GenerateKeyMaterial(ctx, bits)
	if err != nil {
		return nil, fmt.Errorf("failed to generate keys: %w", err)
	}
	return material, nil
}

// Encrypt encrypts message after checking 0 <= message < n.
func (s *textbookService) Encrypt(_ context.Context, message *big.Int, key crypto.PublicKey) (*big.Int, error) {
	if key.N == nil || key.E == nil || key.N.Sign() <= 0 || key.E.Sign() <= 0 {
		return nil, fmt.Errorf("%w: public key needs positive n and e", crypto.ErrNilKey)
	}
	if err := crypto.CheckMessage(message, key.N); err != nil {
		return nil, err
	}
	return s.processor.Encrypt(message, key), nil
}

// Decrypt decrypts ciphertext after checking 0 <= ciphertext < n.
func (s *textbookService) Decrypt(_ context.Context, ciphertext *big.Int, key crypto.PrivateKey) (*big.Int, error) {
	if key.N == nil || key.D == nil || key.N.Sign() <= 0 || key.D.Sign() < 0 {
		return nil, fmt.Errorf("%w: private key needs positive n and non-negative d", crypto.ErrNilKey)
	}
	if err := crypto.CheckMessage(ciphertext, key.N); err != nil {
		return nil, err
	}
	return s.processor.Decrypt(ciphertext, key), nil
}
