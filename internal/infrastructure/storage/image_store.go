package storage

import (
	"fmt"
	"image/jpeg"
	"io"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// maxDimension bounds the longer edge of stored images.
const maxDimension = 1200

// ImageStore persists normalized profile images on local disk. Uploads
// are decoded, resized to fit maxDimension and re-encoded as JPEG, so
// the store never keeps untrusted bytes verbatim.
type ImageStore struct {
	basePath string
}

func NewImageStore(basePath string) (*ImageStore, error) {
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create image dir: %w", err)
	}
	return &ImageStore{basePath: basePath}, nil
}

// Save normalizes the uploaded image and writes it under a generated
// filename, which is returned for the database row.
func (s *ImageStore) Save(r io.Reader) (string, error) {
	img, err := imaging.Decode(r, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("failed to decode image: %w", err)
	}

	img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)

	filename := uuid.NewString() + ".jpg"
	f, err := os.Create(filepath.Join(s.basePath, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	defer f.Close()

	if err := imaging.Encode(f, img, imaging.JPEG, imaging.JPEGQuality(jpeg.DefaultQuality)); err != nil {
		os.Remove(f.Name())
		return "", fmt.Errorf("failed to encode image: %w", err)
	}
	return filename, nil
}

// Remove deletes a stored image file. Missing files are not an error;
// the database row is the source of truth.
func (s *ImageStore) Remove(filename string) error {
	err := os.Remove(filepath.Join(s.basePath, filepath.Base(filename)))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// Path returns the on-disk location for a stored filename.
func (s *ImageStore) Path(filename string) string {
	return filepath.Join(s.basePath, filepath.Base(filename))
}
