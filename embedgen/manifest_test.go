package embedgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHandleManifest(t *testing.T) {
	m, err := HandleManifest("name = \"orus-std\"\nversion = \"0.1\"\nnamespace = \"core\"\n")
	require.NoError(t, err)
	require.Equal(t, "orus-std", m.Name)
	require.Equal(t, "0.1", m.Version)
	require.Equal(t, "core", m.Namespace)
	require.Empty(t, m.Ext)
	require.Empty(t, m.Package)
}

func TestHandleManifestMissingVersion(t *testing.T) {
	_, err := HandleManifest("name = \"orus-std\"\n")
	require.Error(t, err)
}

func TestHandleManifestBadToml(t *testing.T) {
	_, err := HandleManifest("name = ")
	require.Error(t, err)
}

func TestLoadManifest(t *testing.T) {
	path := filepath.Join(t.TempDir(), "orus.toml")
	require.NoError(t, os.WriteFile(path, []byte("name = \"std\"\nversion = \"1.0\"\next = \".orus\"\n"), 0o644))

	m, err := LoadManifest(path)
	require.NoError(t, err)
	require.Equal(t, ".orus", m.Ext)
}

func TestLoadManifestMissing(t *testing.T) {
	_, err := LoadManifest(filepath.Join(t.TempDir(), "orus.toml"))
	require.Error(t, err)
}
