package web

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/apexcarclub/clubsite/internal/backend"
	"github.com/apexcarclub/clubsite/internal/resource"
)

// memberCarCategory is the news category featured on the home page.
const memberCarCategory = "MEMBER'S CAR OF THE MONTH"

// fetchRecords gets a public collection from the backend. The pages render
// with an inline error rather than failing the whole request.
func (s *Server) fetchRecords(r *http.Request, path string) ([]resource.Record, error) {
	client := backend.New(s.Config.APIBaseURL, "")
	raw, err := client.Get(r.Context(), path)
	if err != nil {
		slog.Error("failed to fetch records", "path", path, "error", err)
		return nil, err
	}

	var records []resource.Record
	if err := json.Unmarshal(raw, &records); err != nil {
		slog.Error("unexpected response shape", "path", path, "error", err)
		return nil, err
	}
	return records, nil
}

// fetchRecord gets a single public record from the backend, or nil.
func (s *Server) fetchRecord(r *http.Request, path string) resource.Record {
	client := backend.New(s.Config.APIBaseURL, "")
	raw, err := client.Get(r.Context(), path)
	if err != nil {
		slog.Error("failed to fetch record", "path", path, "error", err)
		return nil
	}

	var rec resource.Record
	if err := json.Unmarshal(raw, &rec); err != nil {
		slog.Error("unexpected response shape", "path", path, "error", err)
		return nil
	}
	return rec
}

// fetchError turns a fetch failure into the page's inline message.
func fetchError(err error) string {
	if err == nil {
		return ""
	}
	return backend.ErrorMessage(err)
}

// Home handles GET /.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	news, err := s.fetchRecords(r, "news")
	// The featured car is optional; a missing one is not a page error.
	memberCar := s.fetchRecord(r, "news/category/"+url.PathEscape(memberCarCategory))

	data := &struct {
		PageData
		News      []resource.Record
		MemberCar resource.Record
	}{
		PageData:  s.pageData(r, "Home"),
		News:      news,
		MemberCar: memberCar,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "home.html", data)
}

// About handles GET /about.
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	members, err := s.fetchRecords(r, "team-members")
	data := &struct {
		PageData
		TeamMembers []resource.Record
	}{
		PageData:    s.pageData(r, "About Us"),
		TeamMembers: members,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "about.html", data)
}

// Events handles GET /events.
func (s *Server) Events(w http.ResponseWriter, r *http.Request) {
	events, err := s.fetchRecords(r, "events")
	data := &struct {
		PageData
		Events []resource.Record
	}{
		PageData: s.pageData(r, "Events"),
		Events:   events,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "events.html", data)
}

// Gallery handles GET /gallery.
func (s *Server) Gallery(w http.ResponseWriter, r *http.Request) {
	galleries, err := s.fetchRecords(r, "galleries")
	data := &struct {
		PageData
		Galleries []resource.Record
	}{
		PageData:  s.pageData(r, "Gallery"),
		Galleries: galleries,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "gallery.html", data)
}

// Products handles GET /products.
func (s *Server) Products(w http.ResponseWriter, r *http.Request) {
	products, err := s.fetchRecords(r, "products")
	data := &struct {
		PageData
		Products []resource.Record
	}{
		PageData: s.pageData(r, "Products"),
		Products: products,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "products.html", data)
}

// News handles GET /news.
func (s *Server) News(w http.ResponseWriter, r *http.Request) {
	news, err := s.fetchRecords(r, "news")
	data := &struct {
		PageData
		News []resource.Record
	}{
		PageData: s.pageData(r, "News"),
		News:     news,
	}
	data.Error = fetchError(err)
	s.Templates.Render(w, "news.html", data)
}

// NewsDetail handles GET /news/{id}.
func (s *Server) NewsDetail(w http.ResponseWriter, r *http.Request) {
	item := s.fetchRecord(r, "news/"+url.PathEscape(r.PathValue("id")))
	if item == nil {
		http.NotFound(w, r)
		return
	}

	s.Templates.Render(w, "news_detail.html", &struct {
		PageData
		Item resource.Record
	}{
		PageData: s.pageData(r, item.String("title")),
		Item:     item,
	})
}

// Contact handles GET /contact.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "contact.html", s.pageData(r, "Contact"))
}
