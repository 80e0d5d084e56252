package storage

import "context"

// Store persists raw uploaded content under caller-supplied object keys.
// Keys are opaque to implementations; the file usecase generates them.
type Store interface {
	Write(ctx context.Context, key string, content []byte) error
	Read(ctx context.Context, key string) ([]byte, error)
	Remove(ctx context.Context, key string) error
}
