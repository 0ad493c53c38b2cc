package virtual

import (
	"errors"
	"fmt"
	"io/fs"
	"maps"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
)

// Config contains configuration data from the site.toml file.
type Config struct {
	Expires       Duration          `toml:"expires"`       // Expiry for rendered pages
	StaticExpires Duration          `toml:"staticexpires"` // Expiry for static assets
	Headers       map[string]string `toml:"headers"`       // Extra response headers
	Site          Site              `toml:"site"`          // Site identity used in page metadata
}

// Site describes the site as a whole. Values fill the metadata of every page.
type Site struct {
	Name        string `toml:"name"`        // Owner name, used in titles and the header
	Title       string `toml:"title"`       // Title of the home page
	Description string `toml:"description"` // Description of the home page
	Keywords    string `toml:"keywords"`    // Keywords of the home page
	BaseURL     string `toml:"baseurl"`     // Absolute URL of the site root
	Image       string `toml:"image"`       // Sharing preview image path
	Locale      string `toml:"locale"`      // OpenGraph locale
	Tagline     string `toml:"tagline"`     // Heading of the home page welcome block

	OGDescription      string `toml:"ogdescription"`      // OpenGraph description of the home page
	TwitterDescription string `toml:"twitterdescription"` // Twitter card description of the home page
}

// orDescription returns v, or the site description when s is empty.
func (s Site) orDescription(v string) string {
	if v == "" {
		return s.Description
	}
	return v
}

// URL returns the absolute URL for the site path p. Without a base URL
// the path is returned unchanged.
func (s Site) URL(p string) string {
	if s.BaseURL == "" || strings.Contains(p, "://") {
		return p
	}
	return strings.TrimSuffix(s.BaseURL, "/") + p
}

// DefaultConfig returns the configuration used when site.toml is missing.
// Fields not present in site.toml keep these values.
func DefaultConfig() Config {
	return Config{
		Expires:       Duration(5 * time.Minute),
		StaticExpires: Duration(time.Hour),
		Site: Site{
			Name:        "Felipe Muner",
			Title:       "Felipe Muner | Yoga, Crypto & Software Development",
			Description: "Explore insights on yoga practice, cryptocurrency investments, and software development from Felipe Muner, an expert across these diverse fields.",
			Keywords:    "yoga, cryptocurrency, software development, web development, mindfulness, tech, blockchain, wellness, programming, next.js",
			BaseURL:     "https://felipe-muner.github.io",
			Image:       "/og-image.jpg",
			Locale:      "en_US",
			Tagline:     "Welcome to My Digital Space",

			OGDescription:      "Explore insights on yoga practice, cryptocurrency investments, and software development from Felipe Muner.",
			TwitterDescription: "Insights on yoga, cryptocurrency, and software development from an industry expert.",
		},
	}
}

// readConfig reads site.toml from fsys on top of the defaults.
// It is not an error if the file does not exist.
func readConfig(fsys fs.FS) (Config, error) {
	cfg := DefaultConfig()
	b, err := fs.ReadFile(fsys, "site.toml")
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("cannot read config file: %w", err)
	}
	err = toml.Unmarshal(b, &cfg)
	if err != nil {
		return cfg, fmt.Errorf("cannot parse config file: %w", err)
	}
	return cfg, nil
}

// Config returns the configuration read from the site.toml file.
func (vfs *FS) Config() Config {
	cfg := vfs.cfg
	cfg.Headers = maps.Clone(vfs.cfg.Headers)
	return cfg
}
