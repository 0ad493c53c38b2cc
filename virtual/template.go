package virtual

import (
	_ "embed"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"path"
	"strings"
	texttemplate "text/template"
	"time"

	"github.com/felipe-muner/topicsite/topic"
	"github.com/russross/blackfriday/v2"
	"go.uber.org/zap"
)

//go:embed default.html
var defaultTemplate string

//go:embed sitemap.txt
var defaultSitemapTemplate string

// getTemplates returns the page and sitemap templates.
func (vfs *FS) getTemplates() (*template.Template, *texttemplate.Template) {
	vfs.tplMutex.RLock()
	defer vfs.tplMutex.RUnlock()
	return vfs.tpl, vfs.sitemapTpl
}

// loadTemplates parses the embedded templates and then any custom templates
// found in the "template" folder, returning true if custom templates were found.
// A custom template replaces the embedded one of the same name.
func (vfs *FS) loadTemplates() (bool, error) {
	funcMap := template.FuncMap{
		"markdown":  vfs.markdown,
		"button":    buttonClass,
		"bullet":    bulletClass,
		"topicurl":  topicURL,
		"topics":    topic.All,
		"others":    topic.Others,
		"join":      path.Join,
		"trimspace": strings.TrimSpace,
		"now":       time.Now,
	}
	tpl, err := template.New("site").Funcs(funcMap).Parse(defaultTemplate)
	if err != nil {
		return false, fmt.Errorf("loadTemplates: %w", err)
	}
	sitemapTpl, err := texttemplate.New("sitemap").Parse(defaultSitemapTemplate)
	if err != nil {
		return false, fmt.Errorf("loadTemplates: %w", err)
	}

	custom := false
	fi, err := fs.Stat(vfs.fs, "template")
	switch {
	case errors.Is(err, fs.ErrNotExist) || (err == nil && !fi.IsDir()):
	case err != nil:
		return false, fmt.Errorf("loadTemplates: %w", err)
	default:
		if m, _ := fs.Glob(vfs.fs, "template/*.html"); len(m) > 0 {
			tpl, err = tpl.ParseFS(vfs.fs, "template/*.html")
			if err != nil {
				return true, fmt.Errorf("loadTemplates: %w", err)
			}
			custom = true
		}
		if b, err := fs.ReadFile(vfs.fs, "template/sitemap.txt"); err == nil {
			sitemapTpl, err = texttemplate.New("sitemap").Parse(string(b))
			if err != nil {
				return true, fmt.Errorf("loadTemplates: %w", err)
			}
			custom = true
		}
	}

	vfs.tplMutex.Lock()
	defer vfs.tplMutex.Unlock()
	vfs.tpl = tpl
	vfs.sitemapTpl = sitemapTpl
	vfs.log.Debug("Loaded templates",
		zap.Bool("custom", custom),
		zap.String("defined", tpl.DefinedTemplates()))
	return custom, nil
}

// markdown converts Markdown text into sanitized HTML and is used in templates.
func (vfs *FS) markdown(s string) template.HTML {
	b := blackfriday.Run([]byte(s), blackfriday.WithExtensions(blackfriday.CommonExtensions),
		blackfriday.WithRenderer(blackfriday.NewHTMLRenderer(blackfriday.HTMLRendererParameters{
			Flags: blackfriday.UseXHTML,
		})))
	return template.HTML(vfs.policy.SanitizeBytes(b))
}
