package web

import (
	"encoding/json"
	"net/http"

	"github.com/apexcarclub/clubsite/internal/backend"
	"github.com/apexcarclub/clubsite/internal/session"
)

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	if session.Token(r) != "" {
		http.Redirect(w, r, "/admin", http.StatusSeeOther)
		return
	}
	s.Templates.Render(w, "login.html", s.pageData(r, "Login"))
}

// LoginSubmit handles POST /login. The credentials go straight to the
// backend; whatever message it answers with is shown verbatim.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	if username == "" || password == "" {
		data := s.pageData(r, "Login")
		data.Error = "Enter a username and password."
		s.Templates.Render(w, "login.html", data)
		return
	}

	client := backend.New(s.Config.APIBaseURL, "")
	raw, err := client.Post(r.Context(), "admins/login", map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		data := s.pageData(r, "Login")
		data.Error = backend.ErrorMessage(err)
		s.Templates.Render(w, "login.html", data)
		return
	}

	var body struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(raw, &body); err != nil || body.Token == "" {
		data := s.pageData(r, "Login")
		data.Error = "An error occurred"
		s.Templates.Render(w, "login.html", data)
		return
	}

	session.Set(w, body.Token)
	http.Redirect(w, r, "/admin", http.StatusSeeOther)
}

// Logout handles POST /logout.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	session.Clear(w)
	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
