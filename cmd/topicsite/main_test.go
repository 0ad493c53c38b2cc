package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRoot(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(root, name), []byte(data), 0644))
	}
	return root
}

func TestRunExport(t *testing.T) {
	root := newRoot(t, map[string]string{"og-image.jpg": "jpeg"})
	out := filepath.Join(t.TempDir(), "site")

	assert.Equal(t, 0, run([]string{"-root", root, "-export", out}))
	b, err := os.ReadFile(filepath.Join(out, "topics", "crypto", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Cryptocurrency")
	_, err = os.Stat(filepath.Join(out, "og-image.jpg"))
	assert.NoError(t, err)
}

func TestRunExportFromEnvironment(t *testing.T) {
	root := newRoot(t, nil)
	out := filepath.Join(t.TempDir(), "site")
	t.Setenv("TOPICSITE_EXPORT", out)

	assert.Equal(t, 0, run([]string{"-root", root}))
	_, err := os.Stat(filepath.Join(out, "index.html"))
	assert.NoError(t, err)
}

func TestRunBadConfig(t *testing.T) {
	root := newRoot(t, map[string]string{"site.toml": "[site"})
	assert.Equal(t, 2, run([]string{"-root", root, "-export", t.TempDir()}))
}

func TestRunExportFails(t *testing.T) {
	root := newRoot(t, nil)
	file := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	assert.Equal(t, 3, run([]string{"-root", root, "-export", file}))
}

func TestRunFlags(t *testing.T) {
	assert.Equal(t, 1, run([]string{"-nosuchflag"}))
	assert.Equal(t, 0, run([]string{"-h"}))
	t.Setenv("TOPICSITE_PORT", "not-a-number")
	assert.Equal(t, 1, run([]string{"-export", t.TempDir()}))
}
