package backend

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestBearerHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`[]`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "tok123")
	if _, err := client.Get(context.Background(), "events"); err != nil {
		t.Fatalf("Get: %v", err)
	}
	if gotAuth != "Bearer tok123" {
		t.Errorf("Authorization = %q, want Bearer tok123", gotAuth)
	}
}

func TestEmptyTokenStillSendsHeader(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "")
	_, err := client.Get(context.Background(), "events")
	if !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
	if gotAuth != "Bearer " {
		t.Errorf("Authorization = %q, want empty bearer credential", gotAuth)
	}
}

func TestSessionExpiredCallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	calls := 0
	client := New(server.URL, "stale", WithSessionExpiredFunc(func() { calls++ }))

	_, err := client.Get(context.Background(), "news")
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected callback once, got %d calls", calls)
	}
}

func TestSessionExpiredCarriesServerMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(map[string]string{"error": "Invalid username or password"})
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "")
	_, err := client.Post(context.Background(), "admins/login", map[string]string{"username": "x"})
	if !errors.Is(err, ErrSessionExpired) {
		t.Fatalf("expected ErrSessionExpired, got %v", err)
	}
	if got := ErrorMessage(err); got != "Invalid username or password" {
		t.Errorf("ErrorMessage = %q, want server message", got)
	}
}

func TestSessionExpiredWithoutCallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(server.Close)

	// No callback configured: the 401 must surface as the error alone.
	client := New(server.URL, "stale")
	if _, err := client.Get(context.Background(), "news"); !errors.Is(err, ErrSessionExpired) {
		t.Errorf("expected ErrSessionExpired, got %v", err)
	}
}

func TestServerErrorMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(map[string]string{"error": "title is required"})
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "tok")
	_, err := client.Post(context.Background(), "events", map[string]string{})
	if err == nil {
		t.Fatal("expected error")
	}

	var apiErr *APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *APIError, got %T", err)
	}
	if apiErr.Status != http.StatusBadRequest {
		t.Errorf("Status = %d, want 400", apiErr.Status)
	}
	if got := ErrorMessage(err); got != "title is required" {
		t.Errorf("ErrorMessage = %q, want server message verbatim", got)
	}
}

func TestErrorMessageFallback(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("oops, not json"))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "tok")
	_, err := client.Get(context.Background(), "products")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := ErrorMessage(err); got != "An error occurred" {
		t.Errorf("ErrorMessage = %q, want generic fallback", got)
	}

	// Transport errors get the same fallback.
	dead := New("http://127.0.0.1:1", "tok")
	_, err = dead.Get(context.Background(), "products")
	if err == nil {
		t.Fatal("expected transport error")
	}
	if got := ErrorMessage(err); got != "An error occurred" {
		t.Errorf("ErrorMessage = %q, want generic fallback", got)
	}
}

func TestPutAndDelete(t *testing.T) {
	var gotMethod, gotPath string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.Write([]byte(`{}`))
	}))
	t.Cleanup(server.Close)

	client := New(server.URL, "tok")

	if _, err := client.Put(context.Background(), "events/42", map[string]string{"title": "X"}); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if gotMethod != http.MethodPut || gotPath != "/events/42" {
		t.Errorf("got %s %s, want PUT /events/42", gotMethod, gotPath)
	}

	if err := client.Delete(context.Background(), "events/42"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if gotMethod != http.MethodDelete {
		t.Errorf("got method %s, want DELETE", gotMethod)
	}
}
