// Package storage persists uploaded avatar images on the local filesystem,
// mirrored under the /public/images URL prefix.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/peopledesk/hr-api/internal/core/domain"
)

// MaxAvatarSize is the upload ceiling for a single avatar image.
const MaxAvatarSize = 5 << 20 // 5 MiB

const publicPrefix = "/public/images/"

// DiskAvatarStore writes avatar files into a local directory. Generated
// filenames are unique per upload, so concurrent writes never collide.
type DiskAvatarStore struct {
	dir string
}

func NewDiskAvatarStore(dir string) *DiskAvatarStore {
	return &DiskAvatarStore{dir: dir}
}

// Dir returns the directory avatars are written to.
func (s *DiskAvatarStore) Dir() string {
	return s.dir
}

// Save writes the upload to disk under a collision-resistant name and returns
// the relative URL path. Uploads over MaxAvatarSize fail with
// domain.ErrUploadTooLarge before anything touches the disk.
func (s *DiskAvatarStore) Save(originalName string, size int64, r io.Reader) (string, error) {
	if size > MaxAvatarSize {
		return "", domain.ErrUploadTooLarge
	}

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	name := fmt.Sprintf("%s-%s.jpg", sanitizeFilename(originalName), uuid.NewString())

	f, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create avatar file: %w", err)
	}
	defer f.Close()

	// LimitReader guards against a declared size smaller than the stream.
	if _, err := io.Copy(f, io.LimitReader(r, MaxAvatarSize+1)); err != nil {
		return "", fmt.Errorf("write avatar file: %w", err)
	}

	return publicPrefix + name, nil
}

// sanitizeFilename strips the extension and replaces every non-alphanumeric
// character so the original name can never escape the upload directory.
func sanitizeFilename(name string) string {
	base := strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if base == "" || base == "." {
		base = "avatar"
	}
	var b strings.Builder
	for _, r := range base {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
