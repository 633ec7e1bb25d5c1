package model

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoader_LoadFile(t *testing.T) {
	t.Parallel()

	manifest := `shape "ruler" {
  art = "+----+"
}

shape "panel" {
  art = <<ART
+--+
|  |
+--+
ART
}
`
	path := writeManifest(t, t.TempDir(), "shapes.hcl", manifest)

	loader := NewLoader()
	m, err := loader.Load(context.Background(), path)
	require.NoError(t, err)
	require.Len(t, m.Shapes, 2)

	assert.Equal(t, "ruler", m.Shapes[0].Name)
	assert.Equal(t, "+----+", m.Shapes[0].Art)
	assert.Equal(t, path, m.Shapes[0].ArtRange.Filename)

	assert.Equal(t, "panel", m.Shapes[1].Name)
	assert.Equal(t, "+--+\n|  |\n+--+\n", m.Shapes[1].Art)

	// The parsed source is retained for diagnostic rendering.
	assert.Contains(t, loader.Files(), path)
}

func TestLoader_LoadDirectory(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", "shape \"one\" {\n  art = \"+-+\"\n}\n")
	writeManifest(t, dir, filepath.Join("nested", "b.hcl"), "shape \"two\" {\n  art = \"+--+\"\n}\n")
	writeManifest(t, dir, "ignored.txt", "not a manifest")

	m, err := NewLoader().Load(context.Background(), dir)
	require.NoError(t, err)
	require.Len(t, m.Shapes, 2)
	assert.Equal(t, "one", m.Shapes[0].Name)
	assert.Equal(t, "two", m.Shapes[1].Name)
}

func TestLoader_DuplicateNames(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeManifest(t, dir, "a.hcl", "shape \"same\" {\n  art = \"+-+\"\n}\n")
	writeManifest(t, dir, "b.hcl", "shape \"same\" {\n  art = \"+--+\"\n}\n")

	_, err := NewLoader().Load(context.Background(), dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Duplicate \"shape\" block")
}

func TestLoader_Failures(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		manifest string
		wantErr  string
	}{
		{
			name:     "syntax error",
			manifest: "shape \"broken\" {\n  art = \n",
			wantErr:  "failed to parse",
		},
		{
			name:     "art is not a string",
			manifest: "shape \"num\" {\n  art = 42\n}\n",
			wantErr:  "Invalid art attribute",
		},
		{
			name:     "art references a variable",
			manifest: "shape \"ref\" {\n  art = something_else\n}\n",
			wantErr:  "invalid shape block",
		},
		{
			name:     "missing art attribute",
			manifest: "shape \"bare\" {\n}\n",
			wantErr:  "failed to decode",
		},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			path := writeManifest(t, t.TempDir(), "shapes.hcl", tc.manifest)
			_, err := NewLoader().Load(context.Background(), path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}

	t.Run("missing path", func(t *testing.T) {
		t.Parallel()
		_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.hcl"))
		require.Error(t, err)
	})
}
