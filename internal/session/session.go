// Package session manages the admin session token. The token is an opaque
// credential issued by the backend; it lives in a single named cookie and is
// only ever written through Set and Clear. Presence of the cookie is what
// gates the dashboard — the token is never validated client-side.
package session

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// CookieName is the fixed name of the session cookie.
const CookieName = "token"

// cookieMaxAge matches the backend's token lifetime closely enough; an
// outlived cookie just earns a 401 and a redirect to login.
const cookieMaxAge = 86400 // 24 hours

// Token returns the session token from the request, or "" if none is set.
func Token(r *http.Request) string {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// Set stores the session token in the response.
func Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear removes the session token from the browser.
func Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteStrictMode,
	})
}

// Username extracts a display name from the token without validating it.
// The backend signs its tokens with a key this app never holds, so the claims
// are display-only. Returns "" for anything that does not look like a JWT.
func Username(token string) string {
	if token == "" {
		return ""
	}

	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return ""
	}

	if name, ok := claims["username"].(string); ok {
		return name
	}
	if sub, ok := claims["sub"].(string); ok {
		return sub
	}
	return ""
}
