package player

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// downloadDir is where fetched resources are staged, per spec.md §4.9.
const downloadDir = "/tmp/cover_screen_download"

var extByContentType = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
	"image/bmp":  "bmp",
	"image/tiff": "tiff",
}

// Download fetches url, maps its Content-Type to a file extension via the
// fixed table, and writes the body to a uuid-named file under
// /tmp/cover_screen_download. Returns the path written.
func Download(url string) (string, error) {
	resp, err := http.Get(url)
	if err != nil {
		return "", fmt.Errorf("player: download %s: %w", url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("player: download %s: status %s", url, resp.Status)
	}

	ct := resp.Header.Get("Content-Type")
	ext, ok := extByContentType[contentTypeBase(ct)]
	if !ok {
		return "", fmt.Errorf("player: unknown content-type %q", ct)
	}

	if err := os.MkdirAll(downloadDir, 0o755); err != nil {
		return "", fmt.Errorf("player: create download dir: %w", err)
	}

	path := filepath.Join(downloadDir, uuid.NewString()+"."+ext)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("player: create %s: %w", path, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, resp.Body); err != nil {
		return "", fmt.Errorf("player: write %s: %w", path, err)
	}
	return path, nil
}

// Cleanup removes the entire download directory recursively.
func Cleanup() error {
	return os.RemoveAll(downloadDir)
}

// contentTypeBase strips any "; charset=..." parameters from a
// Content-Type header value.
func contentTypeBase(ct string) string {
	if i := strings.IndexByte(ct, ';'); i >= 0 {
		ct = ct[:i]
	}
	return strings.TrimSpace(ct)
}
