package embedgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTree(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		dst := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(dst), 0o755))
		require.NoError(t, os.WriteFile(dst, []byte(content), 0o644))
	}
}

func TestScan(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"math.orus":    "fn abs(x) {\n    return x\n}\n",
		"io/path.orus": "fn join(a, b) {\n    return a + \"/\" + b\n}\n",
		"README.md":    "not embedded",
		"io/notes.txt": "not embedded either",
	})

	modules, err := Scan(root, ".orus", "std")
	require.NoError(t, err)
	require.Equal(t, []Module{
		{Name: "std/io/path.orus", Source: "fn join(a, b) {\n    return a + \"/\" + b\n}\n"},
		{Name: "std/math.orus", Source: "fn abs(x) {\n    return x\n}\n"},
	}, modules)
}

func TestScanKeepsSourceVerbatim(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"math.orus": "print(\"a\nb\")",
	})

	modules, err := Scan(root, ".orus", "std")
	require.NoError(t, err)
	require.Len(t, modules, 1)
	require.Equal(t, "std/math.orus", modules[0].Name)
	require.Equal(t, "print(\"a\nb\")", modules[0].Source)
}

func TestScanEmptyDir(t *testing.T) {
	modules, err := Scan(t.TempDir(), ".orus", "std")
	require.NoError(t, err)
	require.Empty(t, modules)
}

func TestScanMissingRoot(t *testing.T) {
	_, err := Scan(filepath.Join(t.TempDir(), "nope"), ".orus", "std")
	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
	require.Contains(t, scanErr.Error(), "nope")
}

func TestScanRootIsFile(t *testing.T) {
	root := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(root, []byte("x"), 0o644))
	_, err := Scan(root, ".orus", "std")
	var scanErr *ScanError
	require.ErrorAs(t, err, &scanErr)
}

func TestScanDeterministic(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{
		"b.orus":     "b\n",
		"a.orus":     "a\n",
		"sub/c.orus": "c\n",
	})

	first, err := Scan(root, ".orus", "std")
	require.NoError(t, err)
	second, err := Scan(root, ".orus", "std")
	require.NoError(t, err)
	require.Equal(t, first, second)
	require.Equal(t, []string{"std/a.orus", "std/b.orus", "std/sub/c.orus"}, names(first))
}

func names(modules []Module) []string {
	out := make([]string, 0, len(modules))
	for _, m := range modules {
		out = append(out, m.Name)
	}
	return out
}
