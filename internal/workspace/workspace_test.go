package workspace

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/dmitrijs2005/gophmarks/internal/common"
	"github.com/stretchr/testify/require"
)

func TestEnsure_CreatesDirectoryUnderRoot(t *testing.T) {
	root := filepath.Join(t.TempDir(), "users")
	w := New(root)

	got, err := w.Ensure("alice")
	require.NoError(t, err)

	want := filepath.Join(root, "alice")
	require.Equal(t, want, got)

	fi, err := os.Stat(want)
	require.NoError(t, err)
	require.True(t, fi.IsDir(), "should create a directory")

	if runtime.GOOS != "windows" {
		perm := fi.Mode().Perm()
		require.Equal(t, os.FileMode(0o700), perm&0o700)
	}
}

func TestEnsure_Idempotent(t *testing.T) {
	w := New(t.TempDir())

	first, err := w.Ensure("alice")
	require.NoError(t, err)

	second, err := w.Ensure("alice")
	require.NoError(t, err)

	require.Equal(t, first, second)
}

func TestEnsure_FailsIfFileWithSameNameExists(t *testing.T) {
	root := t.TempDir()
	w := New(root)

	require.NoError(t, os.WriteFile(filepath.Join(root, "alice"), []byte("x"), 0o660))

	_, err := w.Ensure("alice")
	require.Error(t, err, "should fail when a file exists with the same name")
}

func TestLedgerPath_IsDeterministic(t *testing.T) {
	w := New("users")

	p1, err := w.LedgerPath("alice")
	require.NoError(t, err)
	p2, err := w.LedgerPath("alice")
	require.NoError(t, err)

	require.Equal(t, filepath.Join("users", "alice", "alice.csv"), p1)
	require.Equal(t, p1, p2)
}

func TestInvalidUsernamesRejected(t *testing.T) {
	w := New(t.TempDir())

	for _, name := range []string{"", ".", "..", "../escape", "a/b", `a\b`} {
		_, err := w.Ensure(name)
		require.ErrorIs(t, err, common.ErrInvalidUsername, name)

		_, err = w.LedgerPath(name)
		require.ErrorIs(t, err, common.ErrInvalidUsername, name)
	}
}
