package web

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"net/http"

	"github.com/apexcarclub/clubsite/internal/config"
	"github.com/apexcarclub/clubsite/internal/dateutil"
	"github.com/apexcarclub/clubsite/internal/resource"
	"github.com/apexcarclub/clubsite/internal/session"
	webembed "github.com/apexcarclub/clubsite/web"
)

// Templates holds parsed HTML templates.
type Templates struct {
	templates map[string]*template.Template
}

// FuncMap returns the template function map.
func FuncMap() template.FuncMap {
	return template.FuncMap{
		"formatDate": dateutil.FormatDate,
	}
}

// LoadTemplates parses all page templates with the layout.
func LoadTemplates() (*Templates, error) {
	tfs := webembed.TemplatesFS()

	// Read layout.
	layoutBytes, err := fs.ReadFile(tfs, "layout.html")
	if err != nil {
		return nil, fmt.Errorf("reading layout template: %w", err)
	}

	pages := []string{
		"home.html",
		"about.html",
		"events.html",
		"gallery.html",
		"products.html",
		"news.html",
		"news_detail.html",
		"contact.html",
		"login.html",
		"dashboard.html",
		"manager.html",
	}

	ts := &Templates{templates: make(map[string]*template.Template)}

	for _, page := range pages {
		pageBytes, err := fs.ReadFile(tfs, page)
		if err != nil {
			return nil, fmt.Errorf("reading template %s: %w", page, err)
		}

		tmpl := template.New(page).Funcs(FuncMap())
		tmpl, err = tmpl.Parse(string(layoutBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing layout for %s: %w", page, err)
		}
		tmpl, err = tmpl.Parse(string(pageBytes))
		if err != nil {
			return nil, fmt.Errorf("parsing template %s: %w", page, err)
		}

		ts.templates[page] = tmpl
	}

	return ts, nil
}

// Render renders a template with the given data.
func (ts *Templates) Render(w http.ResponseWriter, name string, data any) {
	tmpl, ok := ts.templates[name]
	if !ok {
		http.Error(w, "template not found", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		slog.Error("failed to render template", "template", name, "error", err)
	}
}

// PageData is the base data passed to all templates.
type PageData struct {
	Title    string
	Authed   bool
	Username string
	Error    string
}

// Server holds all dependencies for page handlers.
type Server struct {
	Config    *config.Config
	Templates *Templates
	Uploader  resource.Uploader
}

// pageData builds the shared template data for a request. The nav toggles its
// login/dashboard affordances on token presence alone.
func (s *Server) pageData(r *http.Request, title string) PageData {
	token := session.Token(r)
	return PageData{
		Title:    title,
		Authed:   token != "",
		Username: session.Username(token),
	}
}
