package photos

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

type DirStore struct {
	dir string
}

func NewDirStore(dir string) *DirStore {
	return &DirStore{dir: dir}
}

func (store *DirStore) Dir() string {
	return store.dir
}

func (store *DirStore) Init() error {
	if err := os.MkdirAll(store.dir, 0o755); err != nil {
		return fmt.Errorf("create photo directory: %w", err)
	}
	return nil
}

func (store *DirStore) Put(_ context.Context, name string, data []byte, _ string) error {
	if err := os.WriteFile(filepath.Join(store.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("write photo %s: %w", name, err)
	}
	return nil
}

func (store *DirStore) Get(_ context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(store.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("read photo %s: %w", name, err)
	}
	return data, nil
}

func (store *DirStore) Delete(_ context.Context, name string) error {
	err := os.Remove(filepath.Join(store.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("remove photo %s: %w", name, err)
	}
	return nil
}
