package virtual

import (
	"strings"

	"github.com/felipe-muner/topicsite/topic"
)

var hiddenFiles = []string{
	"template",
	"site.toml",
}

// isHiddenFile returns true if the given file, or a folder containing it,
// is considered hidden from outside view.
func isHiddenFile(name string) bool {
	for _, s := range hiddenFiles {
		if name == s || strings.HasPrefix(name, s+"/") {
			return true
		}
	}
	return false
}

// containsSpecialFile reports whether name contains a path element starting with a period.
// The name is assumed to be a delimited by forward slashes, as guaranteed by the fs.FS interface.
func containsSpecialFile(name string) bool {
	parts := strings.Split(name, "/")
	for _, part := range parts {
		if strings.HasPrefix(part, ".") {
			return true
		}
	}
	return false
}

// isUnknownTopic reports whether name lies below topics/ in a folder whose
// name is not a known slug. Such names never reach the underlying file system.
func isUnknownTopic(name string) bool {
	rest, ok := strings.CutPrefix(name, "topics/")
	if !ok {
		return false
	}
	slug, _, _ := strings.Cut(rest, "/")
	_, found := topic.Get(slug)
	return !found
}

// pagePath converts the name of a rendered file into the URL path that serves it.
// Index files are served by their folder.
func pagePath(name string) string {
	if name == "index.html" {
		return "/"
	}
	if strings.HasSuffix(name, "/index.html") {
		return "/" + strings.TrimSuffix(name, "index.html")
	}
	return "/" + name
}

// buttonClass returns the button classes for an accent color.
func buttonClass(accent string) string {
	return "bg-" + accent + "-600 hover:bg-" + accent + "-700"
}

// bulletClass returns the text color class for an accent color.
func bulletClass(accent string) string {
	return "text-" + accent + "-600"
}

// topicURL joins a link base such as "/" or "/topics/" with a slug.
func topicURL(base, slug string) string {
	if !strings.HasSuffix(base, "/") {
		base += "/"
	}
	return base + slug
}
