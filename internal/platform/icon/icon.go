// Copyright (c) 2026 Tigerlilly. All rights reserved.

// Package icon stores uploaded avatar images behind a narrow port.
//
// Icons are keyed by the owning record's natural name (username for users,
// handle for authors) so a key change can move the stored file along with it.
package icon

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/tigerlilly/api/pkg/slug"
)

// Store is the persistence port for avatar images.
type Store interface {
	// Save writes the image under the given key and returns the stored filename.
	Save(reader io.Reader, key string) (string, error)

	// Rename moves the image stored under oldKey to newKey and returns the new
	// filename. A missing source file is not an error; the caller may never
	// have uploaded one.
	Rename(oldKey, newKey string) (string, error)
}

// FSStore keeps icons as flat files in a single upload directory.
type FSStore struct {
	dir string
}

// NewFSStore creates the upload directory if needed and returns a store over it.
func NewFSStore(dir string) (*FSStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating icon directory %q: %w", dir, err)
	}
	return &FSStore{dir: dir}, nil
}

// Filename derives the stored filename for a key.
func Filename(key string) string {
	return slug.From(key) + "_icon.jpeg"
}

func (store *FSStore) Save(reader io.Reader, key string) (string, error) {
	filename := Filename(key)

	file, err := os.Create(filepath.Join(store.dir, filename))
	if err != nil {
		return "", fmt.Errorf("creating icon file %q: %w", filename, err)
	}
	defer file.Close()

	if _, err := io.Copy(file, reader); err != nil {
		return "", fmt.Errorf("writing icon file %q: %w", filename, err)
	}

	return filename, nil
}

// Check verifies the upload directory still exists and is a directory.
// Used by the readiness probe.
func (store *FSStore) Check() error {
	info, err := os.Stat(store.dir)
	if err != nil {
		return fmt.Errorf("icon directory %q: %w", store.dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("icon path %q is not a directory", store.dir)
	}
	return nil
}

func (store *FSStore) Rename(oldKey, newKey string) (string, error) {
	oldName := Filename(oldKey)
	newName := Filename(newKey)

	err := os.Rename(filepath.Join(store.dir, oldName), filepath.Join(store.dir, newName))
	if err != nil && !os.IsNotExist(err) {
		return "", fmt.Errorf("renaming icon %q to %q: %w", oldName, newName, err)
	}

	return newName, nil
}
