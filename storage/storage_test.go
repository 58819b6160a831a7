package storage

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectKey(t *testing.T) {
	userID := uuid.New()
	docID := uuid.New()

	key := ObjectKey(userID, docID, "balance-sheet.PDF")

	pattern := fmt.Sprintf(`^%s/%s_\d+\.pdf$`, userID, docID)
	assert.Regexp(t, regexp.MustCompile(pattern), key)
}

func TestObjectKeyWithoutExtension(t *testing.T) {
	key := ObjectKey(uuid.New(), uuid.New(), "scan")
	assert.Regexp(t, `\.bin$`, key)
}

func TestValidateUpload(t *testing.T) {
	assert.NoError(t, ValidateUpload(1024, "application/pdf"))
	assert.NoError(t, ValidateUpload(MaxFileSize, "image/png"))
	assert.NoError(t, ValidateUpload(42, "image/jpeg"))

	assert.Error(t, ValidateUpload(MaxFileSize+1, "application/pdf"))
	assert.Error(t, ValidateUpload(1024, "application/zip"))
	assert.Error(t, ValidateUpload(1024, "text/html"))
	assert.Error(t, ValidateUpload(1024, ""))
}

func TestLocalStorageSaveAndDelete(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalStorage(dir)
	require.NoError(t, err)

	key := "user-1/doc-1_1700000000.pdf"
	content := []byte("%PDF-1.4 test")

	err = store.Save(context.Background(), key, bytes.NewReader(content), int64(len(content)), "application/pdf")
	require.NoError(t, err)

	saved, err := os.ReadFile(filepath.Join(dir, "user-1", "doc-1_1700000000.pdf"))
	require.NoError(t, err)
	assert.Equal(t, content, saved)

	assert.Equal(t, "/uploads/"+key, store.URL(key))

	require.NoError(t, store.Delete(context.Background(), key))
	_, err = os.Stat(filepath.Join(dir, "user-1", "doc-1_1700000000.pdf"))
	assert.True(t, os.IsNotExist(err))
}
