// Package workspace maps usernames to their on-disk storage namespace.
package workspace

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dmitrijs2005/gophmarks/internal/common"
)

// LedgerExt is the extension of per-user ledger files.
const LedgerExt = ".csv"

// Workspace roots all per-user directories under one directory.
type Workspace struct {
	root string
}

func New(root string) *Workspace {
	return &Workspace{root: root}
}

func (w *Workspace) Root() string {
	return w.root
}

// validate rejects names that would not stay a single path element under root.
func validate(username string) error {
	if username == "" || username == "." || username == ".." ||
		strings.ContainsAny(username, `/\`) || strings.ContainsRune(username, filepath.Separator) {
		return fmt.Errorf("%w: %q", common.ErrInvalidUsername, username)
	}
	return nil
}

// Dir returns the directory of username without touching the disk.
func (w *Workspace) Dir(username string) (string, error) {
	if err := validate(username); err != nil {
		return "", err
	}
	return filepath.Join(w.root, username), nil
}

// Ensure creates the user's directory if needed and returns its path.
// Calling it again for an existing directory is not an error.
func (w *Workspace) Ensure(username string) (string, error) {
	dir, err := w.Dir(username)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o770); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}

	return dir, nil
}

// LedgerPath returns <root>/<username>/<username>.csv.
func (w *Workspace) LedgerPath(username string) (string, error) {
	dir, err := w.Dir(username)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, username+LedgerExt), nil
}
