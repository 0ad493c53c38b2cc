package virtual

import (
	"bytes"
	"fmt"
	"io"
	"strings"

	"github.com/felipe-muner/topicsite/topic"
)

// Meta is the metadata rendered into the head of a page.
type Meta struct {
	Title              string // Document and sharing title
	Description        string // Description meta tag
	SocialDescription  string // OpenGraph description
	TwitterDescription string // Twitter card description
	Keywords           string // Keywords, only set for the home page
	Image              string // Absolute URL of the sharing preview image
	URL                string // Canonical URL of the page
	Robots             string // Content of the robots meta tag
}

// Page is what is passed to the page templates.
type Page struct {
	Site   Site          // site identity from site.toml
	Meta   Meta          // metadata for the head
	Path   string        // URL path of the page
	Topic  topic.Topic   // current topic; zero outside topic pages
	Topics []topic.Topic // every topic, for navigation
	Others []topic.Topic // every topic except the current one
	Base   string        // prefix for links to topic pages
}

// RenderTopic writes the page for the topic named by slug to w. Links to
// other topics are formed by joining base and their slug; an empty base means
// "/topics/". An unknown slug writes the "Topic Not Found" view instead and
// found is false. err is only set when the template fails or w cannot be
// written.
func (vfs *FS) RenderTopic(w io.Writer, slug, base string) (found bool, err error) {
	if base == "" {
		base = "/topics/"
	}
	t, ok := topic.Get(slug)
	if !ok {
		return false, vfs.execute(w, "notfound", vfs.notFoundPage())
	}
	return true, vfs.execute(w, "topic", vfs.topicPage(t, base))
}

// topicPage prepares the template data for a topic.
func (vfs *FS) topicPage(t topic.Topic, base string) Page {
	p := topicURL(base, t.Slug) + "/"
	title := t.Name + " | " + vfs.cfg.Site.Name
	return Page{
		Site: vfs.cfg.Site,
		Meta: Meta{
			Title:              title,
			Description:        t.Description,
			SocialDescription:  t.Description,
			TwitterDescription: t.Description,
			Image:              vfs.cfg.Site.URL(vfs.cfg.Site.Image),
			URL:                vfs.cfg.Site.URL(p),
			Robots:             "index, follow",
		},
		Path:   p,
		Topic:  t,
		Topics: topic.All(),
		Others: topic.Others(t.Slug),
		Base:   base,
	}
}

// homePage prepares the template data for the home page.
func (vfs *FS) homePage() Page {
	return Page{
		Site: vfs.cfg.Site,
		Meta: Meta{
			Title:              vfs.cfg.Site.Title,
			Description:        vfs.cfg.Site.Description,
			SocialDescription:  vfs.cfg.Site.orDescription(vfs.cfg.Site.OGDescription),
			TwitterDescription: vfs.cfg.Site.orDescription(vfs.cfg.Site.TwitterDescription),
			Keywords:           vfs.cfg.Site.Keywords,
			Image:              vfs.cfg.Site.URL(vfs.cfg.Site.Image),
			URL:                vfs.cfg.Site.URL("/"),
			Robots:             "index, follow",
		},
		Path:   "/",
		Topics: topic.All(),
		Base:   "/",
	}
}

const notFoundDescription = "The topic you're looking for doesn't exist."

// notFoundPage prepares the template data for the fallback view.
func (vfs *FS) notFoundPage() Page {
	return Page{
		Site: vfs.cfg.Site,
		Meta: Meta{
			Title:              "Topic Not Found",
			Description:        notFoundDescription,
			SocialDescription:  notFoundDescription,
			TwitterDescription: notFoundDescription,
			Image:              vfs.cfg.Site.URL(vfs.cfg.Site.Image),
			Robots:             "noindex",
		},
		Path:   "/404.html",
		Topics: topic.All(),
		Base:   "/",
	}
}

// execute runs the named template into a buffer first so that w never
// receives a partial page.
func (vfs *FS) execute(w io.Writer, name string, p Page) error {
	tpl, _ := vfs.getTemplates()
	var buf bytes.Buffer
	err := tpl.ExecuteTemplate(&buf, name, p)
	if err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	_, err = buf.WriteTo(w)
	if err != nil {
		return fmt.Errorf("execute %s: %w", name, err)
	}
	return nil
}

// render writes the file bound to r.
func (vfs *FS) render(w io.Writer, r route) error {
	switch r.kind {
	case homePage:
		return vfs.execute(w, "home", vfs.homePage())
	case topicPage:
		_, err := vfs.RenderTopic(w, r.slug, r.base)
		return err
	case notFoundPage:
		return vfs.execute(w, "notfound", vfs.notFoundPage())
	case sitemapFile:
		return vfs.renderSitemap(w)
	case robotsFile:
		return vfs.renderRobots(w)
	}
	return fmt.Errorf("render: unknown page kind %d", r.kind)
}

// sitemapURLs returns the absolute URL of every HTML page except the fallback view.
func (vfs *FS) sitemapURLs() []string {
	var urls []string
	for _, name := range vfs.routes.order {
		r := vfs.routes.routes[name]
		if r.kind == homePage || r.kind == topicPage {
			urls = append(urls, vfs.cfg.Site.URL(pagePath(name)))
		}
	}
	return urls
}

// renderSitemap executes the sitemap template with the page URLs.
func (vfs *FS) renderSitemap(w io.Writer) error {
	_, tpl := vfs.getTemplates()
	var buf bytes.Buffer
	err := tpl.Execute(&buf, vfs.sitemapURLs())
	if err != nil {
		return fmt.Errorf("renderSitemap: %w", err)
	}
	_, err = buf.WriteTo(w)
	if err != nil {
		return fmt.Errorf("renderSitemap: %w", err)
	}
	return nil
}

// renderRobots writes a robots.txt that allows everything and points at the sitemap.
func (vfs *FS) renderRobots(w io.Writer) error {
	var sb strings.Builder
	sb.WriteString("User-agent: *\nAllow: /\n\n")
	sb.WriteString("Sitemap: " + vfs.cfg.Site.URL("/sitemap.txt") + "\n")
	_, err := io.WriteString(w, sb.String())
	if err != nil {
		return fmt.Errorf("renderRobots: %w", err)
	}
	return nil
}
