package accounts

import (
	"context"
	"crypto/subtle"
	"fmt"

	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/dmitrijs2005/gophmarks/internal/models"
)

// Service provides the credential operations used by the portal pages.
type Service struct {
	store  Store
	logger logging.Logger
}

func NewService(store Store, logger logging.Logger) *Service {
	return &Service{store: store, logger: logger}
}

// Authenticate reports whether username exists and its stored password is
// exactly password. Comparison is case-sensitive and unhashed.
func (s *Service) Authenticate(ctx context.Context, username, password string) (bool, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return false, fmt.Errorf("load accounts: %w", err)
	}

	a, ok := accounts[username]
	if !ok {
		s.logger.Debug(ctx, "login for unknown user", "user", username)
		return false, nil
	}

	return subtle.ConstantTimeCompare([]byte(a.Password), []byte(password)) == 1, nil
}

// Register inserts a new account and persists the whole mapping.
// An existing username yields common.ErrDuplicateUsername and nothing is written.
func (s *Service) Register(ctx context.Context, username, password, mobile, city string) error {
	if username == "" {
		return fmt.Errorf("%w: empty", common.ErrInvalidUsername)
	}

	accounts, err := s.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load accounts: %w", err)
	}

	if _, exists := accounts[username]; exists {
		return fmt.Errorf("%w: %s", common.ErrDuplicateUsername, username)
	}

	accounts[username] = models.Account{Password: password, Mobile: mobile, City: city}

	if err := s.store.Save(ctx, accounts); err != nil {
		return fmt.Errorf("save accounts: %w", err)
	}

	s.logger.Info(ctx, "account registered", "user", username)
	return nil
}

// Lookup returns the stored profile for username.
func (s *Service) Lookup(ctx context.Context, username string) (models.Account, error) {
	accounts, err := s.store.Load(ctx)
	if err != nil {
		return models.Account{}, fmt.Errorf("load accounts: %w", err)
	}

	a, ok := accounts[username]
	if !ok {
		return models.Account{}, common.ErrNotFound
	}
	return a, nil
}

func (s *Service) Close() error {
	return s.store.Close()
}
