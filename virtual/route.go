package virtual

import (
	"path"

	"github.com/felipe-muner/topicsite/topic"
)

// pageKind says which view a route renders.
type pageKind int

const (
	homePage pageKind = iota
	topicPage
	notFoundPage
	sitemapFile
	robotsFile
)

// route binds a file name in the FS to a view.
type route struct {
	kind pageKind
	slug string // topic slug for topicPage
	base string // prefix of links to other topics
}

// routeTable holds the rendered files and the folders that contain them.
type routeTable struct {
	routes map[string]route
	dirs   map[string][]string // folder name to child names
	order  []string            // route names in sitemap order
}

// buildRoutes lays out the site: the home page, a fixed route per topic,
// the parameterized topics/<slug> route for every known slug, and the
// special files.
func buildRoutes() routeTable {
	rt := routeTable{
		routes: make(map[string]route),
		dirs:   make(map[string][]string),
	}
	add := func(name string, r route) {
		rt.routes[name] = r
		rt.order = append(rt.order, name)
		dir, file := path.Split(name)
		dir = path.Clean(dir)
		rt.addChild(dir, file)
	}

	add("index.html", route{kind: homePage, base: "/"})
	for _, slug := range topic.Slugs() {
		add(slug+"/index.html", route{kind: topicPage, slug: slug, base: "/"})
	}
	for _, slug := range topic.Slugs() {
		add("topics/"+slug+"/index.html", route{kind: topicPage, slug: slug, base: "/topics/"})
	}
	add("404.html", route{kind: notFoundPage, base: "/"})
	add("sitemap.txt", route{kind: sitemapFile})
	add("robots.txt", route{kind: robotsFile})
	return rt
}

// addChild records child in folder dir and registers dir in its parent.
func (rt *routeTable) addChild(dir, child string) {
	for _, c := range rt.dirs[dir] {
		if c == child {
			return
		}
	}
	rt.dirs[dir] = append(rt.dirs[dir], child)
	if dir != "." {
		parent, name := path.Split(dir)
		rt.addChild(path.Clean(parent), name)
	}
}

// isDir reports whether name is a virtual folder.
func (rt *routeTable) isDir(name string) bool {
	_, ok := rt.dirs[name]
	return ok
}
