/*
Package topic holds the site's topic table.

The table is compiled into the program and never changes. Every value handed
out by this package is a copy, so callers are free to modify what they get
back without affecting later lookups.
*/
package topic

import "slices"

// Article references a related article by title and URL path.
type Article struct {
	Title string // Title shown on the article card
	Path  string // Target the card links to
}

// Topic is a named subject area with fixed content and a presentation theme.
type Topic struct {
	Slug            string    // Identifier used in URLs
	Name            string    // Display name
	Label           string    // Short word shown over the gradient on the home page
	Nav             string    // Text of the header navigation link
	Description     string    // One-line description
	LongDescription string    // Free text in Markdown
	CallToAction    string    // Caption shown on the home page card
	KeyPoints       []string  // Key points in display order
	Articles        []Article // Related articles in display order
	Gradient        string    // Gradient identifier, e.g. "from-purple-400 to-indigo-500"
	Accent          string    // Accent color identifier, e.g. "indigo"
}

// clone returns a deep copy of t.
func (t Topic) clone() Topic {
	t.KeyPoints = slices.Clone(t.KeyPoints)
	t.Articles = slices.Clone(t.Articles)
	return t
}

// Get returns the topic with the given slug. The second result is false when
// no such topic exists.
func Get(slug string) (Topic, bool) {
	i, ok := index[slug]
	if !ok {
		return Topic{}, false
	}
	return table[i].clone(), true
}

// All returns every topic in table order.
func All() []Topic {
	r := make([]Topic, len(table))
	for i := range table {
		r[i] = table[i].clone()
	}
	return r
}

// Slugs returns the slug of every topic in table order.
func Slugs() []string {
	r := make([]string, len(table))
	for i := range table {
		r[i] = table[i].Slug
	}
	return r
}

// Others returns every topic except the one named by slug, in table order.
// An unknown slug yields the whole table.
func Others(slug string) []Topic {
	r := make([]Topic, 0, len(table))
	for i := range table {
		if table[i].Slug != slug {
			r = append(r, table[i].clone())
		}
	}
	return r
}

// index maps slugs to positions in table.
var index = func() map[string]int {
	m := make(map[string]int, len(table))
	for i, t := range table {
		m[t.Slug] = i
	}
	return m
}()
