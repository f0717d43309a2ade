package accounts

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmitrijs2005/gophmarks/internal/config"
	"github.com/dmitrijs2005/gophmarks/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenStore(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	s, err := OpenStore(ctx, &config.Config{StoreBackend: config.BackendJSON, AccountsFile: filepath.Join(dir, "a.json")}, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &JSONFileStore{}, s)

	s, err = OpenStore(ctx, &config.Config{StoreBackend: config.BackendSQLite, DatabaseDSN: filepath.Join(dir, "a.db")}, logging.Discard())
	require.NoError(t, err)
	assert.IsType(t, &SQLStore{}, s)
	require.NoError(t, s.Close())

	_, err = OpenStore(ctx, &config.Config{StoreBackend: "mongo"}, logging.Discard())
	require.Error(t, err)
}
