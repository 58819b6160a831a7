package storage

import (
	"context"
	"fmt"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
)

// MaxFileSize caps document uploads at 10MB, checked before any storage write.
const MaxFileSize = 10 * 1024 * 1024

// AllowedMimeTypes are the document formats the portal accepts.
var AllowedMimeTypes = map[string]string{
	"application/pdf": "pdf",
	"image/jpeg":      "jpg",
	"image/jpg":       "jpg",
	"image/png":       "png",
}

// FileStorage abstracts the `documents` bucket. The local-disk implementation
// is the default; the S3 implementation is selected with STORAGE_DRIVER=s3.
type FileStorage interface {
	Save(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	URL(key string) string
	Delete(ctx context.Context, key string) error
}

// ObjectKey builds the bucket key for an uploaded document:
// {userID}/{documentID}_{unixts}.{ext}
func ObjectKey(userID, documentID uuid.UUID, filename string) string {
	ext := strings.TrimPrefix(path.Ext(filename), ".")
	if ext == "" {
		ext = "bin"
	}
	return fmt.Sprintf("%s/%s_%d.%s", userID, documentID, time.Now().Unix(), strings.ToLower(ext))
}

// ValidateUpload enforces the size and MIME-type rules. It must pass before a
// single byte reaches the store.
func ValidateUpload(size int64, contentType string) error {
	if _, ok := AllowedMimeTypes[contentType]; !ok {
		return fmt.Errorf("file type %s is not allowed, upload PDF, JPG or PNG", contentType)
	}
	if size > MaxFileSize {
		return fmt.Errorf("file size %d exceeds the maximum of %d bytes", size, MaxFileSize)
	}
	return nil
}
