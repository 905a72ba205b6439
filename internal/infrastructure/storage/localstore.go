package storage

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"helpdesk/internal/shared/config"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

// Kind selects the validation rules applied to an uploaded attachment.
type Kind string

const (
	KindVideo      Kind = "video"
	KindScreenshot Kind = "screenshot"
)

const (
	// minFileSize rejects empty or corrupt uploads
	minFileSize         = 100
	fileNameRandomBytes = 16 // 128 bits of entropy
)

// allowedVideoMIMETypes defines allowed MIME types detected from content
var allowedVideoMIMETypes = map[string]string{
	"video/mp4":       ".mp4",
	"video/webm":      ".webm",
	"video/quicktime": ".mov",
}

var allowedImageMIMETypes = map[string]string{
	"image/png":  ".png",
	"image/jpeg": ".jpg",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// AttachmentStore persists uploaded ticket attachments and returns their public URLs.
type AttachmentStore interface {
	Save(kind Kind, file io.Reader, size int64) (string, error)
}

// LocalStore writes attachments to a directory served as static files.
type LocalStore struct {
	uploadDir    string
	baseURL      string
	maxVideoSize int64
	maxImageSize int64
	logger       logger.Interface
}

func NewLocalStore(cfg *config.StorageConfig, logger logger.Interface) *LocalStore {
	return &LocalStore{
		uploadDir:    cfg.UploadDir,
		baseURL:      strings.TrimRight(cfg.BaseURL, "/"),
		maxVideoSize: int64(cfg.MaxVideoSizeMB) << 20,
		maxImageSize: int64(cfg.MaxImageSizeMB) << 20,
		logger:       logger,
	}
}

func (s *LocalStore) Save(kind Kind, file io.Reader, size int64) (string, error) {
	maxSize, allowed := s.rulesFor(kind)
	if allowed == nil {
		return "", errors.NewValidationError(fmt.Sprintf("unknown attachment kind: %s", kind))
	}

	if size > maxSize {
		return "", errors.NewValidationError(fmt.Sprintf("file size exceeds %dMB limit", maxSize>>20))
	}
	if size < minFileSize {
		return "", errors.NewValidationError("file is too small or empty")
	}

	// Read with a hard limit to prevent memory exhaustion
	content, err := io.ReadAll(io.LimitReader(file, maxSize+1))
	if err != nil {
		s.logger.Errorw("failed to read uploaded file", "error", err)
		return "", errors.NewInternalError("failed to process file")
	}
	if int64(len(content)) > maxSize {
		return "", errors.NewValidationError(fmt.Sprintf("file size exceeds %dMB limit", maxSize>>20))
	}

	// Detect real MIME type from content, not the client-provided header
	detectedMIME := mimetype.Detect(content)
	ext, ok := allowed[detectedMIME.String()]
	if !ok {
		s.logger.Warnw("rejected attachment with invalid MIME type",
			"kind", string(kind),
			"detected_mime", detectedMIME.String())
		return "", errors.NewValidationError(fmt.Sprintf("unsupported %s format: %s", kind, detectedMIME.String()))
	}

	if err := os.MkdirAll(s.uploadDir, 0750); err != nil {
		s.logger.Errorw("failed to create upload directory", "error", err)
		return "", errors.NewInternalError("failed to save file")
	}

	filename, err := generateSecureFilename(ext)
	if err != nil {
		s.logger.Errorw("failed to generate secure filename", "error", err)
		return "", errors.NewInternalError("failed to save file")
	}

	dst := filepath.Join(s.uploadDir, filename)
	if err := s.verifyWithinUploadDir(dst); err != nil {
		return "", err
	}

	if err := os.WriteFile(dst, content, 0640); err != nil {
		s.logger.Errorw("failed to save uploaded file", "error", err)
		return "", errors.NewInternalError("failed to save file")
	}

	return s.baseURL + "/" + filename, nil
}

func (s *LocalStore) rulesFor(kind Kind) (int64, map[string]string) {
	switch kind {
	case KindVideo:
		return s.maxVideoSize, allowedVideoMIMETypes
	case KindScreenshot:
		return s.maxImageSize, allowedImageMIMETypes
	default:
		return 0, nil
	}
}

func (s *LocalStore) verifyWithinUploadDir(dst string) error {
	absUploadDir, err := filepath.Abs(s.uploadDir)
	if err != nil {
		return errors.NewInternalError("failed to resolve upload directory path")
	}
	absDst, err := filepath.Abs(dst)
	if err != nil {
		return errors.NewInternalError("failed to resolve destination path")
	}
	if !strings.HasPrefix(absDst, absUploadDir) {
		s.logger.Errorw("path traversal attempt detected", "dst", dst)
		return errors.NewValidationError("invalid filename")
	}
	return nil
}

// generateSecureFilename returns a random hex name with the given extension.
// Pure random names prevent enumeration of other clients' attachments.
func generateSecureFilename(ext string) (string, error) {
	buf := make([]byte, fileNameRandomBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate random filename: %w", err)
	}
	return hex.EncodeToString(buf) + ext, nil
}
