/*
virtual implements a "virtual" view over a fs.FS that presents the topic site as
a tree of rendered files. It is suitable for serving with http.FileServer or
for exporting to a folder as a static site.

The pages are rendered from the topic table with html/template:

	index.html                  home page listing every topic
	<slug>/index.html           fixed route for each topic
	topics/<slug>/index.html    parameterized route for each known slug
	404.html                    "Topic Not Found" view
	sitemap.txt                 absolute URL of every page
	robots.txt                  allows everything and points at the sitemap

Requests for anything below topics/<slug> with an unknown slug fail with
fs.ErrNotExist, even when the underlying file system has such a folder; web
servers are expected to answer with 404.html.

Any other name is opened from the underlying file system, which is where
static assets such as og-image.jpg live. Folder listings merge rendered files
with the underlying folder.

A special file "site.toml" at the root holds settings you can read via the
Config() function. A special folder "template" at the root holds HTML
templates should you want to customize. Templates defined there replace the
embedded ones of the same name ("head", "header", "home", "topic" and
"notfound"); "template/sitemap.txt" replaces the sitemap template. Both are
hidden from view, as are files and folders whose names start with ".".

Templates are passed a virtual.Page and may use these helper functions:

	markdown(string) template.HTML
		Render Markdown text into sanitized HTML
	button(accent string) string
		Button classes for an accent color
	bullet(accent string) string
		Text color class for an accent color
	topicurl(base, slug string) string
		Link to a topic page
	topics() []topic.Topic
		Every topic in table order
	others(slug string) []topic.Topic
		Every topic except slug
	join(parts ...string) string
		The same as path.Join
	trimspace(string) string
		The same as strings.TrimSpace
	now() time.Time
		Current time
*/
package virtual

import (
	"bytes"
	"errors"
	"html/template"
	"io/fs"
	"path"
	"slices"
	"sort"
	"sync"
	texttemplate "text/template"
	"time"

	"github.com/microcosm-cc/bluemonday"
	"go.uber.org/zap"
)

// FS provides a virtual view of the topic site on top of an asset file system.
type FS struct {
	fs         fs.FS
	cfg        Config
	routes     routeTable
	modTime    time.Time
	policy     *bluemonday.Policy
	log        *zap.Logger
	tpl        *template.Template
	sitemapTpl *texttemplate.Template
	tplMutex   sync.RWMutex
}

// New returns a new FS that presents the site over innerFS. A nil logger
// disables logging.
func New(innerFS fs.FS, logger *zap.Logger) (*FS, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg, err := readConfig(innerFS)
	if err != nil {
		return nil, err
	}
	var vfs = FS{
		fs:      innerFS,
		cfg:     cfg,
		routes:  buildRoutes(),
		modTime: time.Now().Truncate(time.Second),
		policy:  bluemonday.UGCPolicy(),
		log:     logger,
	}
	_, err = vfs.loadTemplates()
	if err != nil {
		return nil, err
	}
	return &vfs, nil
}

// Routes returns the name of every rendered file in sitemap order.
func (vfs *FS) Routes() []string {
	return slices.Clone(vfs.routes.order)
}

// Open opens the named file.
//
// When Open returns an error, it is of type *fs.PathError
// with the Op field set to "open", the Path field set to name,
// and the Err field describing the problem.
func (vfs *FS) Open(name string) (fs.File, error) {
	// Make sure the path is valid per fs rules
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	// Don't show hidden or special files
	if isHiddenFile(name) || (name != "." && containsSpecialFile(name)) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	// Unknown slugs are a lookup miss even when the assets have such a folder
	if isUnknownTopic(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	// Rendered files take precedence over the underlying file system
	if r, ok := vfs.routes.routes[name]; ok {
		var buf bytes.Buffer
		err := vfs.render(&buf, r)
		if err != nil {
			vfs.log.Error("Cannot render page", zap.String("name", name), zap.Error(err))
			return nil, &fs.PathError{Op: "open", Path: name, Err: err}
		}
		return newPageFile(path.Base(name), buf.Bytes(), vfs.modTime), nil
	}
	if vfs.routes.isDir(name) {
		return vfs.openDir(name)
	}
	return vfs.fs.Open(name)
}

// stat returns information about a rendered file or virtual folder.
func (vfs *FS) stat(name string) (fs.FileInfo, error) {
	f, err := vfs.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return f.Stat()
}

// openDir returns a virtual folder whose entries are the rendered files and
// folders plus the visible entries of the same folder in the underlying file system.
func (vfs *FS) openDir(name string) (fs.File, error) {
	seen := make(map[string]bool)
	var entries []fs.DirEntry
	for _, child := range vfs.routes.dirs[name] {
		childPath := path.Join(name, child)
		seen[child] = true
		entries = append(entries, virtualDirEntry{
			name:  child,
			isDir: vfs.routes.isDir(childPath),
			info: func() (fs.FileInfo, error) {
				return vfs.stat(childPath)
			},
		})
	}
	inner, err := fs.ReadDir(vfs.fs, name)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		vfs.log.Warn("Cannot read underlying folder", zap.String("name", name), zap.Error(err))
	}
	for _, entry := range inner {
		childPath := path.Join(name, entry.Name())
		if seen[entry.Name()] || isHiddenFile(childPath) || containsSpecialFile(entry.Name()) || isUnknownTopic(childPath) {
			continue
		}
		entries = append(entries, entry)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	return &virtualDir{
		info: fileInfo{
			name:    path.Base(name),
			mode:    fs.ModeDir | 0555,
			modTime: vfs.modTime,
		},
		path:    name,
		entries: entries,
	}, nil
}
