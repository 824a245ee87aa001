package storage

import (
	"io"

	"github.com/google/uuid"
)

// Kind partitions the media area by purpose.
type Kind string

const (
	KindAvatar Kind = "avatars"
	KindImage  Kind = "images"
	KindVideo  Kind = "videos"
)

// Store persists uploaded bytes under a generated opaque name and returns that
// name. The name is the only handle callers keep; everything else is backend
// detail.
type Store interface {
	Save(kind Kind, ext string, r io.Reader) (string, error)
	Delete(kind Kind, name string) error
}

// NewFileName returns a collision-resistant generated name. Concurrent uploads
// never overwrite each other.
func NewFileName(ext string) string {
	return uuid.New().String() + ext
}
