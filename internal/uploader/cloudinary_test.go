package uploader

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return New("democloud", "unsigned", WithUploadURL(server.URL))
}

func TestUpload(t *testing.T) {
	var gotPreset, gotCloud, gotFile string
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Fatalf("parsing multipart form: %v", err)
		}
		gotPreset = r.FormValue("upload_preset")
		gotCloud = r.FormValue("cloud_name")

		file, header, err := r.FormFile("file")
		if err != nil {
			t.Fatalf("reading file part: %v", err)
		}
		defer file.Close()
		data, _ := io.ReadAll(file)
		gotFile = header.Filename + ":" + string(data)

		json.NewEncoder(w).Encode(map[string]string{
			"secure_url": "https://res.example.com/image/upload/v1/car.jpg",
		})
	})

	url, err := client.Upload(context.Background(), "car.jpg", strings.NewReader("jpegbytes"))
	if err != nil {
		t.Fatalf("Upload: %v", err)
	}
	if url != "https://res.example.com/image/upload/v1/car.jpg" {
		t.Errorf("unexpected URL %q", url)
	}
	if gotPreset != "unsigned" || gotCloud != "democloud" {
		t.Errorf("form fields: preset=%q cloud=%q", gotPreset, gotCloud)
	}
	if gotFile != "car.jpg:jpegbytes" {
		t.Errorf("file part = %q", gotFile)
	}
}

func TestUploadRemoteFailure(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error":{"message":"Upload preset not found"}}`))
	})

	_, err := client.Upload(context.Background(), "car.jpg", strings.NewReader("x"))
	if err == nil {
		t.Fatal("expected error")
	}

	var uploadErr *Error
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *uploader.Error, got %T", err)
	}
	if uploadErr.Error() != "Failed to upload image" {
		t.Errorf("unexpected message %q", uploadErr.Error())
	}
}

func TestUploadMissingSecureURL(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	var uploadErr *Error
	_, err := client.Upload(context.Background(), "car.jpg", strings.NewReader("x"))
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *uploader.Error, got %v", err)
	}
}

func TestUploadTransportFailure(t *testing.T) {
	client := New("democloud", "unsigned", WithUploadURL("http://127.0.0.1:1"))

	var uploadErr *Error
	_, err := client.Upload(context.Background(), "car.jpg", strings.NewReader("x"))
	if !errors.As(err, &uploadErr) {
		t.Fatalf("expected *uploader.Error, got %v", err)
	}
}
