package persist

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"
)

// FileStore keeps string preferences as one JSON object in a file. It
// implements theme.PreferenceStore.
type FileStore struct {
	path   string
	logger *zap.Logger
	mu     sync.Mutex
}

// NewFileStore returns a store backed by path. The file is created on the
// first Save. logger may be nil.
func NewFileStore(path string, logger *zap.Logger) *FileStore {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &FileStore{path: path, logger: logger}
}

// Path returns the backing file.
func (s *FileStore) Path() string { return s.path }

// Load returns the value stored under key; ok is false when the file or the
// key does not exist.
func (s *FileStore) Load(key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.readLocked()
	if err != nil {
		return "", false, err
	}
	v, ok := rows[key]
	return v, ok, nil
}

// Save stores value under key, leaving the other keys untouched. A file that
// no longer parses is moved aside to <path>.corrupt and replaced.
func (s *FileStore) Save(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rows, err := s.readLocked()
	var parseErr *parseError
	if errors.As(err, &parseErr) {
		s.logger.Warn("discarding unreadable preferences file",
			zap.String("path", s.path), zap.Error(err))
		if err := os.Rename(s.path, s.path+".corrupt"); err != nil {
			return fmt.Errorf("move aside %s: %w", s.path, err)
		}
		rows, err = map[string]string{}, nil
	}
	if err != nil {
		return err
	}
	rows[key] = value
	return s.writeLocked(rows)
}

// All returns a copy of every stored preference.
func (s *FileStore) All() (map[string]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readLocked()
}

// Replace overwrites the whole file with rows.
func (s *FileStore) Replace(rows map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if rows == nil {
		rows = map[string]string{}
	}
	return s.writeLocked(rows)
}

func (s *FileStore) readLocked() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, err
	}
	if len(data) == 0 {
		return map[string]string{}, nil
	}
	rows := map[string]string{}
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, &parseError{path: s.path, err: err}
	}
	return rows, nil
}

func (s *FileStore) writeLocked(rows map[string]string) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}
	tmpFile, err := os.CreateTemp(dir, ".preferences-*.tmp")
	if err != nil {
		return err
	}
	tmpPath := tmpFile.Name()
	if _, err := tmpFile.Write(data); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Chmod(0o600); err != nil {
		_ = tmpFile.Close()
		_ = os.Remove(tmpPath)
		return err
	}
	if err := tmpFile.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return err
	}
	return nil
}

type parseError struct {
	path string
	err  error
}

func (e *parseError) Error() string { return fmt.Sprintf("parse %s: %v", e.path, e.err) }

func (e *parseError) Unwrap() error { return e.err }
