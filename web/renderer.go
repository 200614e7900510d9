// file: web/renderer.go

package web

import (
	"bytes"
	"embed"
	"fmt"
	"ged-apae-console/logger"
	"html/template"
	"io/fs"
	"net/http"
	"path"

	"github.com/sirupsen/logrus"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutName = "layout.html"

// Renderer executes the console's page templates. Every page is parsed
// together with layout.html, which wraps the page's "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

// NewRenderer parses the embedded templates.
func NewRenderer() (*Renderer, error) {
	return newRenderer(templateFS)
}

func newRenderer(fsys fs.FS) (*Renderer, error) {
	layout, err := template.New(layoutName).Funcs(FuncMap()).ParseFS(fsys, "templates/"+layoutName)
	if err != nil {
		return nil, fmt.Errorf("parsing layout template: %w", err)
	}

	names, err := fs.Glob(fsys, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("listing templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(names))
	for _, file := range names {
		name := path.Base(file)
		if name == layoutName {
			continue
		}
		page, err := template.Must(layout.Clone()).ParseFS(fsys, file)
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", name, err)
		}
		pages[name] = page
	}

	logger.Log.WithField("pages", len(pages)).Debug("Templates loaded")
	return &Renderer{pages: pages}, nil
}

// Render executes the page name into w with the given status. Nothing is
// written when the template fails.
func (r *Renderer) Render(w http.ResponseWriter, status int, name string, data any) error {
	page, ok := r.pages[name]
	if !ok {
		logger.Log.WithField("template", name).Error("Template not found")
		return fmt.Errorf("template %s not found", name)
	}

	var buf bytes.Buffer
	if err := page.ExecuteTemplate(&buf, layoutName, data); err != nil {
		logger.Log.WithFields(logrus.Fields{
			"template": name,
		}).WithError(err).Error("Failed to execute template")
		return fmt.Errorf("template execution failed for %s: %w", name, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
