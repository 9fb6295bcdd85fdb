package views

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Page template names
const (
	PageDirectory = "directory"
	PageStation   = "station"
	PageReport    = "report"
)

var pageNames = []string{PageDirectory, PageStation, PageReport}

// Renderer executes the embedded page templates
type Renderer struct {
	pages map[string]*template.Template
	cards *template.Template
}

// NewRenderer parses every page template once
func NewRenderer() (*Renderer, error) {
	base, err := template.New("layout").ParseFS(templateFS, "templates/layout.tmpl", "templates/cards.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}

	r := &Renderer{
		pages: make(map[string]*template.Template, len(pageNames)),
		cards: base,
	}
	for _, name := range pageNames {
		t, err := base.Clone()
		if err != nil {
			return nil, fmt.Errorf("clone layout for %s: %w", name, err)
		}
		if _, err := t.ParseFS(templateFS, "templates/"+name+".tmpl"); err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		r.pages[name] = t
	}

	return r, nil
}

// Render writes a full page
func (r *Renderer) Render(w io.Writer, page string, data any) error {
	t, ok := r.pages[page]
	if !ok {
		return fmt.Errorf("unknown page %q", page)
	}
	return t.ExecuteTemplate(w, "layout", data)
}

// RenderResults writes only the grid and count, for live filtering
func (r *Renderer) RenderResults(w io.Writer, data DirectoryPage) error {
	return r.cards.ExecuteTemplate(w, "results", data)
}

// Static serves the embedded stylesheet and script
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
