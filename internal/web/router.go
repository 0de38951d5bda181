package web

import (
	"net/http"

	"github.com/apexcarclub/clubsite/internal/config"
	"github.com/apexcarclub/clubsite/internal/uploader"
	webembed "github.com/apexcarclub/clubsite/web"
)

// NewRouter creates the site router with all page routes registered.
func NewRouter(cfg *config.Config) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	up := uploader.New(cfg.CloudinaryCloudName, cfg.CloudinaryPreset,
		uploader.WithUploadURL(cfg.CloudinaryUploadURL))

	s := &Server{
		Config:    cfg,
		Templates: templates,
		Uploader:  up,
	}

	return newMux(s), nil
}

// newMux wires the handlers onto a mux. Split from NewRouter so tests can
// inject their own uploader.
func newMux(s *Server) http.Handler {
	mux := http.NewServeMux()

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public pages.
	mux.HandleFunc("GET /{$}", s.Home)
	mux.HandleFunc("GET /about", s.About)
	mux.HandleFunc("GET /events", s.Events)
	mux.HandleFunc("GET /gallery", s.Gallery)
	mux.HandleFunc("GET /products", s.Products)
	mux.HandleFunc("GET /news", s.News)
	mux.HandleFunc("GET /news/{id}", s.NewsDetail)
	mux.HandleFunc("GET /contact", s.Contact)

	// Auth.
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Admin dashboard, gated on session cookie presence.
	mux.Handle("GET /admin", RequireSession(http.HandlerFunc(s.AdminDashboard)))
	mux.Handle("GET /admin/{resource}", RequireSession(http.HandlerFunc(s.ResourcePage)))
	mux.Handle("POST /admin/{resource}", RequireSession(http.HandlerFunc(s.ResourceSubmit)))
	mux.Handle("POST /admin/{resource}/delete", RequireSession(http.HandlerFunc(s.ResourceDelete)))

	return mux
}
