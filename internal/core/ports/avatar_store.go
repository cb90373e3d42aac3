package ports

import "io"

// AvatarStore persists uploaded avatar images and returns the relative URL
// path the stored file is served under. size is the declared upload size;
// implementations reject uploads over their configured ceiling.
type AvatarStore interface {
	Save(originalName string, size int64, r io.Reader) (string, error)
}
