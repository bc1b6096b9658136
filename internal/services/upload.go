package services

import (
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var imageExtensions = map[string]bool{
	"png": true, "jpg": true, "jpeg": true, "gif": true, "webp": true,
}

var videoExtensions = map[string]bool{
	"mp4": true, "avi": true, "mov": true, "wmv": true, "flv": true, "webm": true,
}

// UploadService stores uploaded media on local disk and hands back the
// reference string persisted on the entity. References are relative to
// the /uploads static mount.
type UploadService struct {
	baseDir string
}

func NewUploadService() *UploadService {
	dir := os.Getenv("UPLOAD_DIR")
	if dir == "" {
		dir = "uploads"
	}
	return &UploadService{baseDir: dir}
}

// Save persists a multipart file of the given kind ("image", "video"
// or "avatar"). Malformed, empty, or unsupported files return "" —
// upload fields are lenient and never fail the surrounding request.
func (s *UploadService) Save(fh *multipart.FileHeader, kind string) string {
	if fh == nil || fh.Filename == "" {
		return ""
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(fh.Filename), "."))
	var subdir string
	var allowed map[string]bool
	switch kind {
	case "image":
		subdir, allowed = "images", imageExtensions
	case "video":
		subdir, allowed = "videos", videoExtensions
	case "avatar":
		subdir, allowed = "avatars", imageExtensions
	default:
		return ""
	}
	if !allowed[ext] {
		return ""
	}

	dir := filepath.Join(s.baseDir, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}

	src, err := fh.Open()
	if err != nil {
		return ""
	}
	defer src.Close()

	name := strings.ReplaceAll(uuid.NewString(), "-", "") + "." + ext
	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return ""
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return ""
	}
	return subdir + "/" + name
}
