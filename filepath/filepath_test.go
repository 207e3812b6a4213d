package file_path

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestClean(t *testing.T) {
	require.Equal(t, "a/b", Clean("a//b/"))
	require.Equal(t, "a/b", Clean(filepath.Join("a", "b")))
}

func TestRel(t *testing.T) {
	rel, err := Rel(filepath.Join("root"), filepath.Join("root", "sub", "f.orus"))
	require.NoError(t, err)
	require.Equal(t, "sub/f.orus", rel)
}
