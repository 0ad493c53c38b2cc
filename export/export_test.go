package export

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/felipe-muner/topicsite/virtual"
)

func newSite(t *testing.T) *virtual.FS {
	t.Helper()
	vfs, err := virtual.New(fstest.MapFS{
		"og-image.jpg":    {Data: []byte("jpeg")},
		"static/site.css": {Data: []byte("body{}")},
		"site.toml":       {Data: []byte("[site]\nname = \"Hidden\"\n")},
	}, nil)
	require.NoError(t, err)
	return vfs
}

func TestWrite(t *testing.T) {
	vfs := newSite(t)
	dir := t.TempDir()

	n, err := Write(context.Background(), vfs, dir, nil)
	require.NoError(t, err)
	assert.Equal(t, len(vfs.Routes())+2, n)

	for _, name := range vfs.Routes() {
		b, err := os.ReadFile(filepath.Join(dir, filepath.FromSlash(name)))
		require.NoError(t, err, name)
		assert.NotEmpty(t, b, name)
	}
	b, err := os.ReadFile(filepath.Join(dir, "topics", "crypto", "index.html"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "Understanding Blockchain Consensus Mechanisms")

	b, err = os.ReadFile(filepath.Join(dir, "static", "site.css"))
	require.NoError(t, err)
	assert.Equal(t, "body{}", string(b))

	_, err = os.Stat(filepath.Join(dir, "site.toml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	_, err = os.Stat(filepath.Join(dir, "topics", "unknown-topic"))
	assert.True(t, errors.Is(err, os.ErrNotExist))

	err = filepath.WalkDir(dir, func(path string, d os.DirEntry, err error) error {
		require.NoError(t, err)
		assert.False(t, strings.HasPrefix(filepath.Base(path), ".export-"), path)
		return nil
	})
	require.NoError(t, err)
}

func TestWriteTmpAssets(t *testing.T) {
	vfs, err := virtual.New(fstest.MapFS{
		"data/feed.json":     {Data: []byte("new")},
		"data/feed.json.tmp": {Data: []byte("scratch")},
	}, nil)
	require.NoError(t, err)
	dir := t.TempDir()

	_, err = Write(context.Background(), vfs, dir, nil)
	require.NoError(t, err)
	b, err := os.ReadFile(filepath.Join(dir, "data", "feed.json"))
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
	b, err = os.ReadFile(filepath.Join(dir, "data", "feed.json.tmp"))
	require.NoError(t, err)
	assert.Equal(t, "scratch", string(b))

	entries, err := os.ReadDir(filepath.Join(dir, "data"))
	require.NoError(t, err)
	assert.Len(t, entries, 2)
	fi, err := os.Stat(filepath.Join(dir, "data", "feed.json"))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0644), fi.Mode().Perm())
}

func TestReplaceFileKeepsNeighbours(t *testing.T) {
	dir := t.TempDir()
	name := filepath.Join(dir, "page.html")
	require.NoError(t, os.WriteFile(name+".tmp", []byte("keep"), 0644))
	require.NoError(t, os.WriteFile(name, []byte("old"), 0644))

	require.NoError(t, replaceFile(name, []byte("new"), 0644))
	b, err := os.ReadFile(name)
	require.NoError(t, err)
	assert.Equal(t, "new", string(b))
	b, err = os.ReadFile(name + ".tmp")
	require.NoError(t, err)
	assert.Equal(t, "keep", string(b))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestReplaceFileMissingDir(t *testing.T) {
	err := replaceFile(filepath.Join(t.TempDir(), "missing", "page.html"), []byte("x"), 0644)
	assert.Error(t, err)
}

func TestWriteTwice(t *testing.T) {
	vfs := newSite(t)
	dir := t.TempDir()
	_, err := Write(context.Background(), vfs, dir, nil)
	require.NoError(t, err)
	n, err := Write(context.Background(), vfs, dir, nil)
	require.NoError(t, err)
	assert.Equal(t, len(vfs.Routes())+2, n)
}

func TestWriteCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	n, err := Write(ctx, newSite(t), t.TempDir(), nil)
	assert.Zero(t, n)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestWriteBadDir(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0644))
	_, err := Write(context.Background(), newSite(t), file, nil)
	assert.Error(t, err)
}
