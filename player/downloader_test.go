package player

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDownloadWritesExtensionByContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "image/png")
		w.Write([]byte("fake png bytes"))
	}))
	defer srv.Close()
	defer Cleanup()

	path, err := Download(srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if filepath.Ext(path) != ".png" {
		t.Fatalf("got ext %q, want .png", filepath.Ext(path))
	}
	if !strings.HasPrefix(path, downloadDir) {
		t.Fatalf("path %q not under %q", path, downloadDir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatal(err)
	}
}

func TestDownloadUnknownContentType(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/octet-stream")
		w.Write([]byte("x"))
	}))
	defer srv.Close()

	if _, err := Download(srv.URL); err == nil {
		t.Fatal("expected error for unknown content-type")
	}
}

func TestDownloadNonOKStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := Download(srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
}
