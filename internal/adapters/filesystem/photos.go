// Package filesystem contains filesystem-based adapter implementations.
package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/example/garage/internal/ports/secondary"
)

// PhotoStore implements secondary.PhotoStore on the local filesystem.
// Imported images are copied under the photo directory with a generated
// name; the rest of the application only ever sees the returned path.
type PhotoStore struct {
	dir string
}

// NewPhotoStore creates a photo store rooted at dir, defaulting to
// ~/.garage/photos when dir is empty.
func NewPhotoStore(dir string) (*PhotoStore, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".garage", "photos")
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create photo directory: %w", err)
	}

	return &PhotoStore{dir: dir}, nil
}

// Import copies the image at src into the photo directory and returns its
// stable path. The original file extension is kept.
func (s *PhotoStore) Import(src string) (string, error) {
	in, err := os.Open(src)
	if err != nil {
		return "", fmt.Errorf("failed to open photo: %w", err)
	}
	defer in.Close()

	name := fmt.Sprintf("photo_%s%s", uuid.NewString(), filepath.Ext(src))
	dest := filepath.Join(s.dir, name)

	out, err := os.Create(dest)
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		os.Remove(dest)
		return "", fmt.Errorf("failed to copy photo: %w", err)
	}
	if err := out.Close(); err != nil {
		os.Remove(dest)
		return "", fmt.Errorf("failed to write photo: %w", err)
	}

	return dest, nil
}

// Remove deletes a previously imported photo. A missing file is not an
// error.
func (s *PhotoStore) Remove(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo: %w", err)
	}
	return nil
}

// Ensure PhotoStore implements the interface
var _ secondary.PhotoStore = (*PhotoStore)(nil)
