package app

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeManifest(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "shapes.hcl")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newTestApp(t *testing.T, cfg Config) (*App, *bytes.Buffer) {
	t.Helper()
	validated, err := NewConfig(cfg)
	require.NoError(t, err)
	buf := &bytes.Buffer{}
	return NewApp(buf, validated), buf
}

func TestRun_TextOutput(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `shape "ruler" {
  art = "+----+"
}

shape "panel" {
  art = <<ART
+----+
|    |
+----+
ART
}
`)
	a, buf := newTestApp(t, Config{ManifestPath: path})
	require.NoError(t, a.Run(context.Background()))

	out := buf.String()
	assert.Contains(t, out, "ruler: line of length 4")
	assert.Contains(t, out, "panel: 4x3 rectangle (area 12)")
	// Declaration order is preserved.
	assert.Less(t, strings.Index(out, "ruler"), strings.Index(out, "panel"))
}

func TestRun_JSONOutput(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `shape "ruler" {
  art = "I------I"
}
`)
	a, buf := newTestApp(t, Config{ManifestPath: path, Output: "json"})
	require.NoError(t, a.Run(context.Background()))

	var decoded map[string]map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "line", decoded["ruler"]["kind"])
	assert.Equal(t, float64(6), decoded["ruler"]["length"])
}

func TestRun_MalformedLiteralAborts(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `shape "good" {
  art = "+--+"
}

shape "bad" {
  art = <<ART
+----+
|    |
+---+
ART
}
`)
	a, buf := newTestApp(t, Config{ManifestPath: path})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `shape "bad" is malformed`)
	assert.Contains(t, err.Error(), "mismatched width")

	out := buf.String()
	assert.Contains(t, out, "Mismatched literal width")
	assert.Contains(t, out, "line 3, column 5 of the literal body")
	// No value output is produced once a literal fails.
	assert.NotContains(t, out, "line of length")
}

func TestRun_FirstFailureInDeclarationOrderWins(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, `shape "first_bad" {
  art = "++"
}

shape "second_bad" {
  art = "garbage"
}
`)
	a, buf := newTestApp(t, Config{ManifestPath: path, WorkerCount: 4})
	err := a.Run(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), `shape "first_bad"`)
	assert.Contains(t, buf.String(), "Malformed line literal")
	assert.NotContains(t, buf.String(), "Unclassifiable")
}

func TestRun_EmptyManifest(t *testing.T) {
	t.Parallel()

	path := writeManifest(t, "# no shapes here\n")
	a, _ := newTestApp(t, Config{ManifestPath: path})
	require.NoError(t, a.Run(context.Background()))
}

func TestRun_ManyShapesInParallel(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	for i := 1; i <= 20; i++ {
		fmt.Fprintf(&b, "shape \"s%02d\" {\n  art = \"+%s+\"\n}\n", i, strings.Repeat("-", i))
	}
	path := writeManifest(t, b.String())

	a, buf := newTestApp(t, Config{ManifestPath: path, WorkerCount: 8})
	require.NoError(t, a.Run(context.Background()))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 20)
	for i, line := range lines {
		assert.Equal(t, fmt.Sprintf("s%02d: line of length %d", i+1, i+1), line)
	}
}

func TestNewConfig(t *testing.T) {
	t.Parallel()

	_, err := NewConfig(Config{})
	require.Error(t, err)

	_, err = NewConfig(Config{ManifestPath: "x", Output: "yaml"})
	require.Error(t, err)

	cfg, err := NewConfig(Config{ManifestPath: "x"})
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Output)
	assert.Equal(t, 1, cfg.WorkerCount)
}
