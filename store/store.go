// Package store keeps a registry of saved expressions, persisted as
// JSON documents on any billy filesystem (osfs on disk, memfs in
// tests), one file per expression keyed by UUID.
package store

import (
	"fmt"
	"path"
	"strings"
	"sync"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"
	"github.com/google/uuid"

	"symex/algebra"
)

type Store struct {
	mu      sync.Mutex
	fs      billy.Filesystem
	rootDir string
}

func New(fs billy.Filesystem, rootDir string) (*Store, error) {
	if err := fs.MkdirAll(rootDir, 0755); err != nil {
		return nil, fmt.Errorf("creating store root '%s': %w", rootDir, err)
	}

	return &Store{fs: fs, rootDir: rootDir}, nil
}

// Save persists the expression and returns its new id.
func (s *Store) Save(expr *algebra.Expression) (string, error) {
	blob, err := algebra.MarshalExpr(expr)
	if err != nil {
		return "", err
	}

	id := uuid.New().String()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := util.WriteFile(s.fs, s.filePath(id), blob, 0644); err != nil {
		return "", fmt.Errorf("writing expression '%s': %w", id, err)
	}

	return id, nil
}

// Load reads back the expression saved under id.
func (s *Store) Load(id string) (*algebra.Expression, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, fmt.Errorf("invalid expression id '%s': %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	blob, err := util.ReadFile(s.fs, s.filePath(id))
	if err != nil {
		return nil, fmt.Errorf("reading expression '%s': %w", id, err)
	}

	return algebra.UnmarshalExpr(blob)
}

// List returns the ids of all saved expressions.
func (s *Store) List() ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.fs.ReadDir(s.rootDir)
	if err != nil {
		return nil, fmt.Errorf("listing store root '%s': %w", s.rootDir, err)
	}

	ids := []string{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(entry.Name(), ".json"))
	}

	return ids, nil
}

// Remove deletes the expression saved under id.
func (s *Store) Remove(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("invalid expression id '%s': %w", id, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.Remove(s.filePath(id)); err != nil {
		return fmt.Errorf("removing expression '%s': %w", id, err)
	}

	return nil
}

func (s *Store) filePath(id string) string {
	return path.Join(s.rootDir, id+".json")
}
