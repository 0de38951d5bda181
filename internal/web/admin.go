package web

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/apexcarclub/clubsite/internal/backend"
	"github.com/apexcarclub/clubsite/internal/resource"
	"github.com/apexcarclub/clubsite/internal/session"
)

// maxUploadBytes bounds a single submission including selected images.
const maxUploadBytes = 32 << 20

// newManager builds a manager bound to the request's session token.
func (s *Server) newManager(r *http.Request, schema resource.Schema) *resource.Manager {
	client := backend.New(s.Config.APIBaseURL, session.Token(r))
	return resource.NewManager(schema, client, s.Uploader)
}

// expireSession drops the cookie and sends the user to login. Every admin
// handler funnels a 401 through here, so expiry is a single navigation no
// matter how many calls a page makes.
func expireSession(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}

// AdminDashboard handles GET /admin.
func (s *Server) AdminDashboard(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Schemas []resource.Schema
	}{
		PageData: s.pageData(r, "Admin Dashboard"),
		Schemas:  resource.Schemas,
	})
}

// ResourcePage handles GET /admin/{resource}, optionally with ?edit=id.
func (s *Server) ResourcePage(w http.ResponseWriter, r *http.Request) {
	schema, ok := resource.SchemaByName(r.PathValue("resource"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	m := s.newManager(r, schema)
	if err := m.List(r.Context()); err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			expireSession(w, r)
			return
		}
		slog.Error("failed to list records", "resource", schema.Name, "error", err)
	}

	if editID := r.URL.Query().Get("edit"); editID != "" {
		if err := m.EnterEdit(editID); err != nil {
			slog.Warn("edit target not found", "resource", schema.Name, "id", editID)
		}
	}

	data := &struct {
		PageData
		Manager *resource.Manager
	}{
		PageData: s.pageData(r, schema.Title),
		Manager:  m,
	}
	data.Error = m.Err()
	s.Templates.Render(w, "manager.html", data)
}

// ResourceSubmit handles POST /admin/{resource}: one submission uploads any
// selected images, then creates or updates depending on the hidden id field.
func (s *Server) ResourceSubmit(w http.ResponseWriter, r *http.Request) {
	schema, ok := resource.SchemaByName(r.PathValue("resource"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil && !errors.Is(err, http.ErrNotMultipart) {
		http.Error(w, "bad submission", http.StatusBadRequest)
		return
	}

	m := s.newManager(r, schema)
	m.SetDraft(resource.DraftFromForm(schema, r.FormValue("id"), r.Form))

	var files []resource.File
	if r.MultipartForm != nil {
		for _, fh := range r.MultipartForm.File["imageFile"] {
			f, err := fh.Open()
			if err != nil {
				http.Error(w, "reading upload", http.StatusBadRequest)
				return
			}
			defer f.Close()
			files = append(files, resource.File{Name: fh.Filename, Reader: f})
		}
	}

	err := m.AttachImages(r.Context(), files)
	if err == nil {
		err = m.Submit(r.Context())
	}
	if err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			expireSession(w, r)
			return
		}
		slog.Warn("submission failed", "resource", schema.Name, "error", err)
		s.renderSubmitFailure(w, r, m)
		return
	}

	http.Redirect(w, r, "/admin/"+schema.Name, http.StatusSeeOther)
}

// renderSubmitFailure re-renders the manager page with the failed draft still
// in the form. The error message is captured before the re-fetch, which would
// otherwise clear it.
func (s *Server) renderSubmitFailure(w http.ResponseWriter, r *http.Request, m *resource.Manager) {
	errMsg := m.Err()
	if err := m.List(r.Context()); err != nil && errors.Is(err, backend.ErrSessionExpired) {
		expireSession(w, r)
		return
	}

	data := &struct {
		PageData
		Manager *resource.Manager
	}{
		PageData: s.pageData(r, m.Schema().Title),
		Manager:  m,
	}
	data.Error = errMsg
	s.Templates.Render(w, "manager.html", data)
}

// ResourceDelete handles POST /admin/{resource}/delete. A missing confirm
// value means the prompt was declined and nothing happens.
func (s *Server) ResourceDelete(w http.ResponseWriter, r *http.Request) {
	schema, ok := resource.SchemaByName(r.PathValue("resource"))
	if !ok {
		http.NotFound(w, r)
		return
	}

	m := s.newManager(r, schema)
	confirmed := r.FormValue("confirm") == "yes"
	if err := m.Delete(r.Context(), r.FormValue("id"), confirmed); err != nil {
		if errors.Is(err, backend.ErrSessionExpired) {
			expireSession(w, r)
			return
		}
		slog.Error("failed to delete record", "resource", schema.Name, "error", err)
	}

	http.Redirect(w, r, "/admin/"+schema.Name, http.StatusSeeOther)
}
