package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/lifeboard/backend/domain"
)

// ImageStore writes uploaded images to local disk and hands back the path
// reference that gets persisted on the owning row.
type ImageStore struct {
	dir      string
	heroPath string
	maxBytes int
}

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// NewImageStore ensures the uploads directory exists.
func NewImageStore(dir, heroPath string, maxBytes int) (*ImageStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	if maxBytes <= 0 {
		maxBytes = 10 << 20
	}
	return &ImageStore{dir: dir, heroPath: heroPath, maxBytes: maxBytes}, nil
}

// Save stores the image under a generated name and returns the stored-path
// reference ("/uploads/<name>") used by the frontend.
func (s *ImageStore) Save(originalName string, data []byte) (string, error) {
	if len(data) == 0 {
		return "", domain.NewError(domain.ErrCodeInvalid, "empty image")
	}
	if len(data) > s.maxBytes {
		return "", domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("image exceeds %d bytes", s.maxBytes))
	}

	ext := strings.ToLower(filepath.Ext(originalName))
	if !allowedExtensions[ext] {
		return "", domain.NewError(domain.ErrCodeInvalid, "unsupported image type")
	}

	name := uuid.NewString() + ext
	if err := os.WriteFile(filepath.Join(s.dir, name), data, 0o644); err != nil {
		return "", err
	}
	return "/uploads/" + name, nil
}

// SaveHero replaces the single site-wide banner file in place.
func (s *ImageStore) SaveHero(data []byte) error {
	if len(data) == 0 {
		return domain.NewError(domain.ErrCodeInvalid, "empty image")
	}
	if len(data) > s.maxBytes {
		return domain.NewError(domain.ErrCodeInvalid, fmt.Sprintf("image exceeds %d bytes", s.maxBytes))
	}
	if err := os.MkdirAll(filepath.Dir(s.heroPath), 0o755); err != nil {
		return err
	}
	return os.WriteFile(s.heroPath, data, 0o644)
}

// Remove deletes a previously stored image; missing files are not an error.
func (s *ImageStore) Remove(storedPath string) error {
	name := filepath.Base(storedPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if os.IsNotExist(err) {
		return nil
	}
	return err
}
