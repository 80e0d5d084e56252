package storage

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
)

type diskStore struct {
	dir string
}

// NewDiskStore keeps stored objects as files under dir, creating it if
// needed.
func NewDiskStore(dir string) (Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create dir %s: %w", dir, err)
	}
	return &diskStore{dir: dir}, nil
}

func (s *diskStore) Write(ctx context.Context, key string, content []byte) error {
	return os.WriteFile(filepath.Join(s.dir, key), content, 0o644)
}

func (s *diskStore) Read(ctx context.Context, key string) ([]byte, error) {
	return os.ReadFile(filepath.Join(s.dir, key))
}

func (s *diskStore) Remove(ctx context.Context, key string) error {
	return os.Remove(filepath.Join(s.dir, key))
}
