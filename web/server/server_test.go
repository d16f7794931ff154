package server

import (
	"encoding/json"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestServer_Health(t *testing.T) {
	srv := httptest.NewServer(NewServer(0, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/health")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	var body map[string]string
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		t.Fatalf("Invalid JSON: %v", err)
	}
	if body["status"] != "ok" {
		t.Errorf("Expected status ok, got %q", body["status"])
	}
}

func TestServer_RenderPNG(t *testing.T) {
	srv := httptest.NewServer(NewServer(0, nil).Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/api/render?width=64&workers=2")
	if err != nil {
		t.Fatalf("Request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("Expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Errorf("Expected image/png, got %q", ct)
	}

	img, err := png.Decode(resp.Body)
	if err != nil {
		t.Fatalf("Invalid PNG: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 64 || b.Dy() != 36 {
		t.Errorf("Expected 64x36 image, got %dx%d", b.Dx(), b.Dy())
	}
	if resp.Header.Get("X-Render-Hits") == "0" {
		t.Error("Expected the sphere to cover some pixels")
	}
}

func TestServer_RenderPPM(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/render?width=8&aspectRatio=2&format=ppm", nil)
	rec := httptest.NewRecorder()
	NewServer(0, nil).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("Expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if ct := rec.Header().Get("Content-Type"); ct != "image/x-portable-pixmap" {
		t.Errorf("Expected PPM content type, got %q", ct)
	}
	if !strings.HasPrefix(rec.Body.String(), "P3\n8 4\n255\n") {
		t.Errorf("Unexpected PPM header: %q", rec.Body.String()[:min(20, rec.Body.Len())])
	}
}

func TestServer_RenderInvalidParams(t *testing.T) {
	handler := NewServer(0, nil).Handler()

	tests := []struct {
		name  string
		query string
	}{
		{"non-numeric width", "width=abc"},
		{"width too large", "width=5000"},
		{"zero width", "width=0"},
		{"negative workers", "workers=-1"},
		{"aspect ratio out of range", "aspectRatio=100"},
		{"unknown format", "format=gif"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/render?"+tt.query, nil)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Errorf("Expected 400, got %d", rec.Code)
			}
		})
	}
}

func TestServer_RenderRejectsPost(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/render", nil)
	rec := httptest.NewRecorder()
	NewServer(0, nil).Handler().ServeHTTP(rec, req)

	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("Expected 405, got %d", rec.Code)
	}
}
