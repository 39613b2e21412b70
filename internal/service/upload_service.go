package service

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"campusboard/internal/config"
	"campusboard/internal/models"

	"github.com/google/uuid"
)

// PublicUploadPrefix is the URL prefix under which stored files are served.
const PublicUploadPrefix = "/uploads"

// UploadFile is an uploaded file read from a multipart request.
type UploadFile struct {
	Name        string
	ContentType string
	Content     []byte
}

// UploadService stores uploaded files under the configured directory and
// produces attachment metadata. Stored files are immutable; names carry a
// time prefix plus a uuid token so they never collide.
type UploadService struct {
	dir          string
	maxSizeBytes int64
}

// NewUploadService returns an UploadService configured from cfg.
func NewUploadService(cfg *config.Config) *UploadService {
	dir := "./uploads"
	maxSizeMB := 10
	if cfg != nil {
		if cfg.UploadDir != "" {
			dir = cfg.UploadDir
		}
		if cfg.MaxUploadSizeMB > 0 {
			maxSizeMB = cfg.MaxUploadSizeMB
		}
	}
	return &UploadService{
		dir:          dir,
		maxSizeBytes: int64(maxSizeMB) * 1024 * 1024,
	}
}

// Store writes a single file to disk and returns its attachment metadata.
func (s *UploadService) Store(file UploadFile) (models.Attachment, error) {
	if len(file.Content) == 0 {
		return models.Attachment{}, models.NewValidationError("Uploaded file is empty")
	}
	if int64(len(file.Content)) > s.maxSizeBytes {
		return models.Attachment{}, models.NewValidationError(
			fmt.Sprintf("File too large (max %dMB)", s.maxSizeBytes/(1024*1024)))
	}

	original := sanitizeFilename(file.Name)
	fileName := fmt.Sprintf("%d-%s-%s", time.Now().UnixMilli(), uuid.New().String()[:8], original)

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return models.Attachment{}, models.NewInternalError(err)
	}
	if err := os.WriteFile(filepath.Join(s.dir, fileName), file.Content, 0o644); err != nil {
		return models.Attachment{}, models.NewInternalError(err)
	}

	mimeType := file.ContentType
	if mimeType == "" {
		mimeType = http.DetectContentType(file.Content)
	}

	return models.Attachment{
		OriginalName: original,
		FileName:     fileName,
		Path:         PublicUploadPrefix + "/" + fileName,
		MimeType:     mimeType,
	}, nil
}

// StoreAll stores every file or fails the whole batch. Files already written
// before a failure are left on disk; storage durability is out of scope.
func (s *UploadService) StoreAll(files []UploadFile) ([]models.Attachment, error) {
	attachments := make([]models.Attachment, 0, len(files))
	for _, f := range files {
		att, err := s.Store(f)
		if err != nil {
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, nil
}

// Dir returns the directory files are written to.
func (s *UploadService) Dir() string {
	return s.dir
}

// sanitizeFilename strips path components and characters that are unsafe in
// a served file name.
func sanitizeFilename(name string) string {
	base := filepath.Base(strings.TrimSpace(name))
	if base == "." || base == string(filepath.Separator) || base == "" {
		return "file"
	}

	var b strings.Builder
	for _, r := range base {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			b.WriteRune(r)
		case r == '.' || r == '-' || r == '_':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}

	cleaned := strings.Trim(b.String(), "._")
	if cleaned == "" {
		return "file"
	}
	return cleaned
}
