// Package localstore is the dev fallback storage backend: files land under
// a base directory keyed by logical folder, and the returned URL is the
// path the document-serving endpoint streams from.
package localstore

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/GoAbroadHQ/portal_service/internal/interfaces"
	"github.com/google/uuid"
)

type LocalUploader struct {
	baseDir string
}

func NewLocalUploader(baseDir string) (*LocalUploader, error) {
	if baseDir == "" {
		return nil, errors.New("upload dir is required")
	}
	if err := os.MkdirAll(baseDir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &LocalUploader{baseDir: baseDir}, nil
}

func (l *LocalUploader) Upload(
	ctx context.Context,
	folder string,
	filename string,
	data []byte,
	contentType string,
) (*interfaces.UploadResult, error) {

	folder = sanitize(folder)
	name := uuid.NewString() + filepath.Ext(filename)

	dir := filepath.Join(l.baseDir, folder)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create folder: %w", err)
	}

	dst := filepath.Join(dir, name)
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return nil, fmt.Errorf("write file: %w", err)
	}

	rel := filepath.ToSlash(filepath.Join(folder, name))
	return &interfaces.UploadResult{
		URL:      "/uploads/" + rel,
		PublicID: rel,
	}, nil
}

func (l *LocalUploader) Delete(ctx context.Context, publicID string) error {
	if publicID == "" {
		return nil
	}

	rel := sanitize(publicID)
	path := filepath.Join(l.baseDir, filepath.FromSlash(rel))

	err := os.Remove(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// Resolve maps a stored relative name back to an absolute path inside the
// base directory, rejecting traversal attempts.
func (l *LocalUploader) Resolve(name string) (string, error) {
	rel := sanitize(name)
	if rel == "" {
		return "", errors.New("invalid file name")
	}
	return filepath.Join(l.baseDir, filepath.FromSlash(rel)), nil
}

func sanitize(p string) string {
	p = strings.ReplaceAll(p, "\\", "/")
	p = filepath.ToSlash(filepath.Clean("/" + p))
	return strings.TrimPrefix(p, "/")
}
