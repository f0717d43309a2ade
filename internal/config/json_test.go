package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	full := writeTempJSON(t, dir, "full.json", map[string]any{
		"accounts_file":    "accounts.json",
		"users_dir":        "data/users",
		"store_backend":    "sqlite",
		"database_dsn":     "marks.db",
		"log_level":        "debug",
		"s3_bucket":        "bucket",
		"s3_region":        "eu-west-1",
		"s3_root_user":     "user",
		"s3_root_password": "password",
		"s3_base_endpoint": "http://minio:9000/",
	})

	t.Run("loads from json", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", full}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "accounts.json", cfg.AccountsFile)
		assert.Equal(t, "data/users", cfg.UsersDir)
		assert.Equal(t, "sqlite", cfg.StoreBackend)
		assert.Equal(t, "marks.db", cfg.DatabaseDSN)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "bucket", cfg.S3Bucket)
		assert.Equal(t, "eu-west-1", cfg.S3Region)
		assert.Equal(t, "user", cfg.S3RootUser)
		assert.Equal(t, "password", cfg.S3RootPassword)
		assert.Equal(t, "http://minio:9000/", cfg.S3BaseEndpoint)
	})

	t.Run("partial file keeps defaults", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"users_dir": "elsewhere",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "elsewhere", cfg.UsersDir)
		assert.Equal(t, "user_data.json", cfg.AccountsFile)
		assert.Equal(t, BackendJSON, cfg.StoreBackend)
	})

	t.Run("no config flag leaves config untouched", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{AccountsFile: "keep.json", UsersDir: "keep"}
		parseJson(cfg)

		assert.Equal(t, "keep.json", cfg.AccountsFile)
		assert.Equal(t, "keep", cfg.UsersDir)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("missing file panics", func(t *testing.T) {
		os.Args = []string{"testbin", "-c", filepath.Join(dir, "absent.json")}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
