package services

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func fileHeader(t *testing.T, filename string) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	fw, err := w.CreateFormFile("file", filename)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("payload")); err != nil {
		t.Fatalf("write payload: %v", err)
	}
	w.Close()

	req := httptest.NewRequest("POST", "/", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("ParseMultipartForm: %v", err)
	}
	return req.MultipartForm.File["file"][0]
}

func TestUploadSave(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	uploads := NewUploadService()

	tests := []struct {
		name       string
		filename   string
		kind       string
		wantPrefix string // "" means rejected
	}{
		{"image", "photo.PNG", "image", "images/"},
		{"video", "clip.mp4", "video", "videos/"},
		{"avatar", "me.jpg", "avatar", "avatars/"},
		{"wrong kind for ext", "clip.mp4", "image", ""},
		{"executable", "evil.exe", "image", ""},
		{"no extension", "README", "image", ""},
		{"unknown kind", "photo.png", "banner", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ref := uploads.Save(fileHeader(t, tt.filename), tt.kind)
			if tt.wantPrefix == "" {
				if ref != "" {
					t.Errorf("expected rejection, got ref %q", ref)
				}
				return
			}
			if !strings.HasPrefix(ref, tt.wantPrefix) {
				t.Fatalf("ref = %q, want prefix %q", ref, tt.wantPrefix)
			}
			data, err := os.ReadFile(filepath.Join(uploads.baseDir, filepath.FromSlash(ref)))
			if err != nil {
				t.Fatalf("saved file missing: %v", err)
			}
			if string(data) != "payload" {
				t.Errorf("saved content = %q, want %q", data, "payload")
			}
		})
	}
}

func TestUploadSaveNilHeader(t *testing.T) {
	t.Setenv("UPLOAD_DIR", t.TempDir())
	uploads := NewUploadService()

	if ref := uploads.Save(nil, "image"); ref != "" {
		t.Errorf("nil header should yield empty ref, got %q", ref)
	}
}
