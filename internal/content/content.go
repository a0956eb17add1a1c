// Package content holds the pages behind the header routes and renders
// them as terminal markdown.
package content

import (
	"bytes"
	"embed"
	"fmt"
	"path"
	"text/template"

	folioerrors "github.com/Didstopia/folio/internal/errors"
	"github.com/Didstopia/folio/internal/header"
)

//go:embed pages/*.md
var pagesFS embed.FS

// Site is the data the page templates are filled with
type Site struct {
	Owner      string
	Logo       string
	ResumeURL  string
	GitHubUser string
}

// Page is one rendered route
type Page struct {
	Path     string
	Title    string
	Markdown string
}

var pageFiles = map[string]string{
	header.PathHome:    "home.md",
	header.PathAbout:   "about.md",
	header.PathWorks:   "works.md",
	header.PathContact: "contact.md",
}

// Load fills the page template for path
func Load(routePath string, site Site) (*Page, error) {
	name, ok := pageFiles[routePath]
	if !ok {
		return nil, folioerrors.NewRouteError(routePath)
	}

	raw, err := pagesFS.ReadFile(path.Join("pages", name))
	if err != nil {
		return nil, fmt.Errorf("failed to read page %s: %w", name, err)
	}

	tmpl, err := template.New(name).Parse(string(raw))
	if err != nil {
		return nil, fmt.Errorf("failed to parse page %s: %w", name, err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, site); err != nil {
		return nil, fmt.Errorf("failed to fill page %s: %w", name, err)
	}

	return &Page{
		Path:     routePath,
		Title:    Title(routePath),
		Markdown: buf.String(),
	}, nil
}

// LoadAll fills every route page in header order
func LoadAll(site Site) ([]*Page, error) {
	routes := header.Routes()
	pages := make([]*Page, 0, len(routes))
	for _, l := range routes {
		p, err := Load(l.Path, site)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}
