// Package accounts implements the shared credential store and the
// authenticate/register operations built on top of it.
//
// A Store always loads and saves the whole username -> Account mapping.
// There is no locking: two concurrent savers race and the last one wins.
package accounts

import (
	"context"

	"github.com/dmitrijs2005/gophmarks/internal/models"
)

// Store persists the full credential mapping.
type Store interface {
	// Load returns every account keyed by username.
	Load(ctx context.Context) (map[string]models.Account, error)
	// Save replaces the stored mapping with accounts.
	Save(ctx context.Context, accounts map[string]models.Account) error
	Close() error
}
