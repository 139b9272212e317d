package storage

import (
	"context"
	"errors"
	"io"
)

// ErrNotExist is returned when a delete or read targets an object that is
// not in the store.
var ErrNotExist = errors.New("storage: object does not exist")

// Storage abstracts the blob store that holds uploaded images. The local
// filesystem implementation below can be swapped for S3 / R2 style object
// storage without touching the gateway.
type Storage interface {
	// Save writes the object at key and returns its public URL. The write
	// is atomic: either the object is fully addressable afterwards or an
	// error is returned and no partial object remains.
	Save(ctx context.Context, key string, data io.Reader, contentType string) (url string, err error)

	// Delete removes the object at key. Returns ErrNotExist when there is
	// no such object.
	Delete(ctx context.Context, key string) error

	// List returns the keys of every object under prefix.
	List(ctx context.Context, prefix string) ([]string, error)

	// URL resolves the public URL for a key without touching the store.
	URL(key string) string

	// KeyForURL inverts URL. The second return is false for URLs that do
	// not belong to this store.
	KeyForURL(url string) (string, bool)
}
