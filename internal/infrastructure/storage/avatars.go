// Package storage persists uploaded files on local disk.
package storage

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/Aman7097/taskie/internal/core/ports"
)

const avatarsSubdir = "avatars"

// AvatarStore writes avatar images under <baseDir>/avatars with generated
// filenames and serves them back as /uploads-relative URLs.
type AvatarStore struct {
	baseDir string
}

// NewAvatarStore creates the backing directory if needed.
func NewAvatarStore(baseDir string) (*AvatarStore, error) {
	dir := filepath.Join(baseDir, avatarsSubdir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("avatar store: %w", err)
	}
	return &AvatarStore{baseDir: baseDir}, nil
}

// Save writes the upload to disk and returns its relative URL, e.g.
// /uploads/avatars/3f1c….png. The client-supplied name contributes only its
// extension.
func (s *AvatarStore) Save(upload ports.AvatarUpload) (string, error) {
	name := uuid.NewString() + sanitizeExt(upload.Filename)
	dst := filepath.Join(s.baseDir, avatarsSubdir, name)

	f, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("save avatar: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, upload.Content); err != nil {
		_ = os.Remove(dst)
		return "", fmt.Errorf("save avatar: %w", err)
	}

	return "/uploads/" + avatarsSubdir + "/" + name, nil
}

// Remove deletes a stored avatar by its relative URL. URLs pointing outside
// the avatars directory are refused.
func (s *AvatarStore) Remove(url string) error {
	name := path.Base(url)
	if name == "." || name == "/" || strings.Contains(name, "..") {
		return fmt.Errorf("remove avatar: bad url %q", url)
	}
	if err := os.Remove(filepath.Join(s.baseDir, avatarsSubdir, name)); err != nil {
		return fmt.Errorf("remove avatar: %w", err)
	}
	return nil
}

// sanitizeExt keeps a short, dot-prefixed extension and drops anything odd.
func sanitizeExt(filename string) string {
	ext := strings.ToLower(path.Ext(path.Base(filename)))
	if len(ext) < 2 || len(ext) > 8 {
		return ""
	}
	for _, r := range ext[1:] {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') {
			return ""
		}
	}
	return ext
}
