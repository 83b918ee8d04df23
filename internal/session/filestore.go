package session

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

const (
	stateDirPerm  = 0o700
	stateFilePerm = 0o600
)

// FileStorage keeps each session entry in its own file under a state
// directory, mirroring the two local-storage keys the browser client used.
type FileStorage struct {
	dir string
}

// NewFileStorage creates the state directory if needed and returns a storage
// over it. An empty dir defaults to <user config dir>/mdd.
func NewFileStorage(dir string) (*FileStorage, error) {
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil, fmt.Errorf("resolve user config dir: %w", err)
		}
		dir = filepath.Join(base, "mdd")
	}
	if err := os.MkdirAll(dir, stateDirPerm); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &FileStorage{dir: dir}, nil
}

// Dir returns the state directory in use.
func (f *FileStorage) Dir() string { return f.dir }

// Read implements Storage.
func (f *FileStorage) Read(_ context.Context, key string) (string, bool, error) {
	raw, err := os.ReadFile(f.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read session entry %s: %w", key, err)
	}
	return string(raw), true, nil
}

// Write implements Storage. Entries hold credentials, so files are created
// owner-only.
func (f *FileStorage) Write(_ context.Context, key, value string) error {
	if err := os.WriteFile(f.path(key), []byte(value), stateFilePerm); err != nil {
		return fmt.Errorf("write session entry %s: %w", key, err)
	}
	return nil
}

// Delete implements Storage.
func (f *FileStorage) Delete(_ context.Context, key string) error {
	err := os.Remove(f.path(key))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete session entry %s: %w", key, err)
	}
	return nil
}

func (f *FileStorage) path(key string) string {
	return filepath.Join(f.dir, key)
}
