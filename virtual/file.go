package virtual

import (
	"bytes"
	"io"
	"io/fs"
	"time"
)

/*
Types of virtual files:

	Directory  - listing that merges rendered pages with the underlying folder
	Page       - HTML page rendered from the topic table
	Text       - sitemap.txt and robots.txt
*/

// pageFile is a rendered file held in memory.
type pageFile struct {
	*bytes.Reader

	info fileInfo
}

// newPageFile returns a file named name holding b.
func newPageFile(name string, b []byte, modTime time.Time) *pageFile {
	return &pageFile{
		Reader: bytes.NewReader(b),
		info: fileInfo{
			name:    name,
			size:    int64(len(b)),
			mode:    0444,
			modTime: modTime,
		},
	}
}

// Stat returns information about the file.
func (f *pageFile) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

// Close closes the file. Rendered files are in memory, so this function does nothing.
func (f *pageFile) Close() error {
	return nil
}

// fileInfo holds the metadata about a virtual file or folder.
type fileInfo struct {
	name    string
	size    int64
	mode    fs.FileMode
	modTime time.Time
}

// Name returns the base name of the file.
func (fi fileInfo) Name() string { return fi.name }

// Size reports the length of the rendered data.
func (fi fileInfo) Size() int64 { return fi.size }

// Mode returns the file mode bits.
func (fi fileInfo) Mode() fs.FileMode { return fi.mode }

// ModTime returns the time the site was loaded.
func (fi fileInfo) ModTime() time.Time { return fi.modTime }

// IsDir is an abbreviation for Mode().IsDir().
func (fi fileInfo) IsDir() bool { return fi.mode.IsDir() }

// Sys returns nil; there is no underlying data source.
func (fi fileInfo) Sys() any { return nil }

// virtualDirEntry represents an entry of a virtual folder. Info is
// computed on demand because it requires rendering the page.
type virtualDirEntry struct {
	name  string
	isDir bool
	info  func() (fs.FileInfo, error)
}

// Name returns the name of the entry.
func (di virtualDirEntry) Name() string { return di.name }

// IsDir reports whether the entry describes a directory.
func (di virtualDirEntry) IsDir() bool { return di.isDir }

// Type returns the type bits for the entry.
func (di virtualDirEntry) Type() fs.FileMode {
	if di.isDir {
		return fs.ModeDir
	}
	return 0
}

// Info returns the FileInfo for the file or subdirectory described by the entry.
func (di virtualDirEntry) Info() (fs.FileInfo, error) {
	return di.info()
}

// virtualDir is a folder whose entries are known up front.
type virtualDir struct {
	info    fileInfo
	path    string
	entries []fs.DirEntry
	pos     int
}

// Stat returns information about the folder.
func (d *virtualDir) Stat() (fs.FileInfo, error) {
	return d.info, nil
}

// Read fails because folders have no content.
func (d *virtualDir) Read([]byte) (int, error) {
	return 0, &fs.PathError{Op: "read", Path: d.path, Err: fs.ErrInvalid}
}

// Close closes the folder.
func (d *virtualDir) Close() error {
	return nil
}

// ReadDir reads the contents of the directory and returns a slice of up to
// n DirEntry values in name order. If n <= 0, ReadDir returns all remaining
// entries. If n > 0 and no entries remain, ReadDir returns io.EOF.
func (d *virtualDir) ReadDir(n int) ([]fs.DirEntry, error) {
	rest := d.entries[d.pos:]
	if n <= 0 {
		d.pos = len(d.entries)
		return append([]fs.DirEntry(nil), rest...), nil
	}
	if len(rest) == 0 {
		return nil, io.EOF
	}
	if n > len(rest) {
		n = len(rest)
	}
	d.pos += n
	return append([]fs.DirEntry(nil), rest[:n]...), nil
}
