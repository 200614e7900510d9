// file: repository/file_storage.go

package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"ged-apae-console/logger"
	"os"
	"path/filepath"
	"sync"
)

// FileStorage keeps items as a JSON object in a single file, so the session
// survives console restarts. The file holds a bearer token and is written
// with mode 0600 inside a 0700 directory.
type FileStorage struct {
	mu   sync.Mutex
	path string
}

// NewFileStorage creates a FileStorage backed by path. The file is created on first write.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Path returns the backing file path.
func (s *FileStorage) Path() string {
	return s.path
}

func (s *FileStorage) GetItem(_ context.Context, key string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.load()
	if err != nil {
		return "", err
	}
	value, ok := items[key]
	if !ok {
		return "", ErrItemNotFound
	}
	return value, nil
}

func (s *FileStorage) SetItems(_ context.Context, items map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	for key, value := range items {
		current[key] = value
	}
	return s.save(current)
}

func (s *FileStorage) RemoveItems(_ context.Context, keys ...string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.load()
	if err != nil {
		return err
	}
	for _, key := range keys {
		delete(current, key)
	}
	if len(current) == 0 {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("removing session file %s: %w", s.path, err)
		}
		return nil
	}
	return s.save(current)
}

func (s *FileStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return make(map[string]string), nil
		}
		return nil, fmt.Errorf("reading session file %s: %w", s.path, err)
	}

	items := make(map[string]string)
	if len(data) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parsing session file %s: %w", s.path, err)
	}
	return items, nil
}

// save replaces the file through a rename so a crash never leaves half the items on disk.
func (s *FileStorage) save(items map[string]string) error {
	data, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling session items: %w", err)
	}
	data = append(data, '\n')

	directory := filepath.Dir(s.path)
	if err := os.MkdirAll(directory, 0700); err != nil {
		return fmt.Errorf("creating session directory %s: %w", directory, err)
	}

	tmp, err := os.CreateTemp(directory, ".session-*.json")
	if err != nil {
		return fmt.Errorf("creating temp session file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing session file %s: %w", s.path, err)
	}
	if err := tmp.Chmod(0600); err != nil {
		logger.Log.WithError(err).WithField("path", tmpPath).Warn("Could not restrict session file mode")
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing session file %s: %w", s.path, err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing session file %s: %w", s.path, err)
	}
	return nil
}
