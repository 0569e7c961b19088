package filex

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestEnsureSubDir_CreatesDirectoryInCWD(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	got, err := EnsureSubDir("data")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(tmp, "data"), got)

	fi, err := os.Stat(got)
	require.NoError(t, err)
	require.True(t, fi.IsDir())
}

func TestEnsureSubDir_Idempotent(t *testing.T) {
	tmp := t.TempDir()
	chdir(t, tmp)

	first, err := EnsureSubDir("data")
	require.NoError(t, err)

	second, err := EnsureSubDir("data")
	require.NoError(t, err)
	require.Equal(t, first, second)
}
