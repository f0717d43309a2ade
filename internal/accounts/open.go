package accounts

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/gophmarks/internal/config"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
)

// OpenStore builds the Store selected by cfg.StoreBackend.
func OpenStore(ctx context.Context, cfg *config.Config, logger logging.Logger) (Store, error) {
	switch cfg.StoreBackend {
	case config.BackendJSON, "":
		return NewJSONFileStore(cfg.AccountsFile, logger), nil
	case config.BackendSQLite:
		return openSQL(ctx, SQLite, cfg.DatabaseDSN, logger)
	case config.BackendPostgres:
		return openSQL(ctx, Postgres, cfg.DatabaseDSN, logger)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}

func openSQL(ctx context.Context, dialect Dialect, dsn string, logger logging.Logger) (Store, error) {
	s, err := OpenSQLStore(ctx, dialect, dsn)
	if err != nil {
		return nil, err
	}
	logger.Info(ctx, "credential store opened", "backend", dialect.Name)
	return s, nil
}
