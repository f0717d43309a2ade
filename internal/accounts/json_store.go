package accounts

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/dmitrijs2005/gophmarks/internal/models"
)

// JSONFileStore keeps the mapping in one JSON document that is rewritten
// wholesale on every Save.
type JSONFileStore struct {
	path   string
	logger logging.Logger
}

func NewJSONFileStore(path string, logger logging.Logger) *JSONFileStore {
	return &JSONFileStore{path: path, logger: logger}
}

// Load never fails: a missing or unparsable file reads as an empty mapping.
func (s *JSONFileStore) Load(ctx context.Context) (map[string]models.Account, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.logger.Warn(ctx, "credential file unreadable, using empty store", "path", s.path, "error", err)
		}
		return map[string]models.Account{}, nil
	}

	var accounts map[string]models.Account
	if err := json.Unmarshal(data, &accounts); err != nil {
		s.logger.Warn(ctx, "credential file malformed, using empty store",
			"path", s.path, "error", fmt.Errorf("%w: %v", common.ErrMalformedStore, err))
		return map[string]models.Account{}, nil
	}
	if accounts == nil {
		accounts = map[string]models.Account{}
	}
	return accounts, nil
}

func (s *JSONFileStore) Save(ctx context.Context, accounts map[string]models.Account) error {
	if accounts == nil {
		accounts = map[string]models.Account{}
	}

	data, err := json.MarshalIndent(accounts, "", "    ")
	if err != nil {
		return fmt.Errorf("marshal accounts: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o770); err != nil {
			return fmt.Errorf("mkdir %s: %w", dir, err)
		}
	}

	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		return fmt.Errorf("write %s: %w", s.path, err)
	}
	s.logger.Debug(ctx, "credential file saved", "path", s.path, "accounts", len(accounts))
	return nil
}

func (s *JSONFileStore) Close() error { return nil }
