// Package filestorage stores uploaded files on the local filesystem and maps
// stored paths back to serveable URLs.
package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/minhvu/internhub/internal/pkg/logger"
)

// LocalStorage saves files under a base directory on disk
type LocalStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage creates a LocalStorage rooted at basePath
func NewLocalStorage(basePath, baseURL string) (*LocalStorage, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory %s: %w", basePath, err)
	}
	return &LocalStorage{
		basePath: basePath,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
	}, nil
}

// Save writes an uploaded file into subdir under a random name, keeping the
// original extension. Returns the storage-relative path.
func (s *LocalStorage) Save(file *multipart.FileHeader, subdir string) (string, error) {
	dir := filepath.Join(s.basePath, subdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	relPath := filepath.Join(subdir, name)
	dstPath := filepath.Join(s.basePath, relPath)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(dstPath)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", dstPath, err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to write file %s: %w", dstPath, err)
	}

	logger.Debug().Str("path", relPath).Int64("size", file.Size).Msg("File stored")
	return relPath, nil
}

// Delete removes a stored file by its storage-relative path
func (s *LocalStorage) Delete(relPath string) error {
	if relPath == "" {
		return nil
	}
	fullPath := filepath.Join(s.basePath, relPath)
	if err := os.Remove(fullPath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}
	return nil
}

// URLFor maps a storage-relative path to its public URL
func (s *LocalStorage) URLFor(relPath string) string {
	if relPath == "" {
		return ""
	}
	return s.baseURL + "/" + filepath.ToSlash(relPath)
}
