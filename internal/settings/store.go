// Package settings persists the root directory path between runs.
package settings

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"loc-editor/internal/logger"
)

const component = "SettingsStore"

// Store holds the root path in memory and in a single local file.
type Store struct {
	path   string
	logger logger.Logger

	mu   sync.RWMutex
	root string
}

func NewStore(path string, log logger.Logger) *Store {
	return &Store{path: path, logger: log}
}

// Load reads the persisted root path. A missing file leaves the root empty.
func (s *Store) Load() (string, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Info(component, "no persisted root path", map[string]interface{}{
			"file": s.path,
		})
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", s.path, err)
	}

	root := strings.TrimSpace(string(raw))

	s.mu.Lock()
	s.root = root
	s.mu.Unlock()

	s.logger.Info(component, "root path loaded", map[string]interface{}{
		"root": root,
	})
	return root, nil
}

// Set persists root and, once written, makes it the in-memory value. The
// value is not validated.
func (s *Store) Set(root string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(root), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", s.path, err)
	}

	s.mu.Lock()
	s.root = root
	s.mu.Unlock()

	s.logger.Info(component, "root path saved", map[string]interface{}{
		"root": root,
	})
	return nil
}

func (s *Store) Root() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.root
}

// File is the location of the persisted root path.
func (s *Store) File() string {
	return s.path
}
