// Package export writes a site file system to a folder so that it can be
// served by any static host.
package export

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// Write copies every file in fsys to dir, creating folders as needed, and
// returns the number of files written. Existing files are replaced. The walk
// stops early when ctx is cancelled.
func Write(ctx context.Context, fsys fs.FS, dir string, logger *zap.Logger) (int, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	count := 0
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		target := filepath.Join(dir, filepath.FromSlash(name))
		if d.IsDir() {
			return os.MkdirAll(target, 0755)
		}
		b, err := fs.ReadFile(fsys, name)
		if err != nil {
			return err
		}
		err = replaceFile(target, b, 0644)
		if err != nil {
			return err
		}
		logger.Debug("Wrote file", zap.String("name", name), zap.Int("bytes", len(b)))
		count++
		return nil
	})
	if err != nil {
		return count, fmt.Errorf("export: %w", err)
	}
	logger.Info("Exported site", zap.String("dir", dir), zap.Int("files", count))
	return count, nil
}

// replaceFile writes data next to name under a unique hidden name and then
// renames it into place, so a static host never serves a half written page.
func replaceFile(name string, data []byte, perm os.FileMode) (err error) {
	f, err := os.CreateTemp(filepath.Dir(name), ".export-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(f.Name())
		}
	}()
	if _, err = f.Write(data); err != nil {
		return err
	}
	if err = f.Chmod(perm); err != nil {
		return err
	}
	if err = f.Sync(); err != nil {
		return err
	}
	if err = f.Close(); err != nil {
		return err
	}
	return os.Rename(f.Name(), name)
}
