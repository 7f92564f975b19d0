// Package page renders the server-side HTML of the museum site: the shared
// layout, the error pages and the helpers every page handler uses to report
// DataSource failures.
package page

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"
	"path"
	"strings"

	"museum-web/internal/observability/logging"
	authsvc "museum-web/internal/service/auth"
)

//go:embed templates/*.html
var templateFS embed.FS

const layoutFile = "templates/layout.html"

// View is the data handed to every template.
type View struct {
	Title string
	// Section highlights the current navigation entry.
	Section       string
	Authenticated bool
	// Flash is a success message shown after a redirect.
	Flash string
	// Error is the status banner text.
	Error string
	Data  any
}

// Renderer executes the embedded templates.
type Renderer struct {
	pages  map[string]*template.Template
	logger *slog.Logger
}

// New parses every page template together with the layout.
func New(logger *slog.Logger) (*Renderer, error) {
	if logger == nil {
		logger = slog.Default()
	}
	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(files)), logger: logger}
	for _, f := range files {
		if f == layoutFile {
			continue
		}
		name := strings.TrimSuffix(path.Base(f), ".html")
		t, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutFile, f)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		r.pages[name] = t
	}
	return r, nil
}

// Has reports whether a page template called name exists.
func (r *Renderer) Has(name string) bool {
	_, ok := r.pages[name]
	return ok
}

// Render writes page name with status. The page is rendered into a buffer
// first so a template failure still produces a clean 500.
func (r *Renderer) Render(w http.ResponseWriter, req *http.Request, status int, name string, v View) {
	t, ok := r.pages[name]
	if !ok {
		r.internalError(w, req, fmt.Errorf("unknown page %q", name))
		return
	}
	v.Authenticated = authsvc.Authenticated(req.Context())

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", v); err != nil {
		r.internalError(w, req, fmt.Errorf("render %s: %w", name, err))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (r *Renderer) internalError(w http.ResponseWriter, req *http.Request, err error) {
	logging.WithRequestID(req.Context(), r.logger).Error("page rendering failed", slog.Any("error", err))
	http.Error(w, "Внутренняя ошибка сервера", http.StatusInternalServerError)
}
