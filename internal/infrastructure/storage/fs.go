// Package storage persists named levels as a single JSON document: an
// object mapping level name to {"rows": [[int]], "cols": [[int]]}.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"svw.info/nonogram/internal/domain"
)

type FS struct{ path string }

// NewFS stores levels in the JSON document at path.
func NewFS(path string) *FS { return &FS{path: path} }

// readDoc loads the current document. A missing or unreadable document is
// treated as empty so a save can always proceed.
func (s *FS) readDoc() map[string]domain.Level {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]domain.Level{}
	}
	var doc map[string]domain.Level
	if err := json.Unmarshal(data, &doc); err != nil || doc == nil {
		return map[string]domain.Level{}
	}
	return doc
}

func (s *FS) writeDoc(doc map[string]domain.Level) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	f, err := os.Create(s.path)
	if err != nil {
		return err
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// Save merges the level into the document: other names are preserved, the
// same name is overwritten.
func (s *FS) Save(ctx context.Context, name string, l domain.Level) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("storage: missing level name")
	}
	doc := s.readDoc()
	doc[name] = l
	return s.writeDoc(doc)
}

func (s *FS) Load(ctx context.Context, name string) (domain.Level, error) {
	doc := s.readDoc()
	l, ok := doc[strings.TrimSpace(name)]
	if !ok {
		return domain.Level{}, fmt.Errorf("level %q: %w", name, os.ErrNotExist)
	}
	return l, nil
}

// List returns the stored level names in sorted order.
func (s *FS) List(ctx context.Context) ([]string, error) {
	doc := s.readDoc()
	names := make([]string, 0, len(doc))
	for n := range doc {
		names = append(names, n)
	}
	sort.Strings(names)
	return names, nil
}

func (s *FS) Delete(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	doc := s.readDoc()
	if _, ok := doc[name]; !ok {
		return fmt.Errorf("level %q: %w", name, os.ErrNotExist)
	}
	delete(doc, name)
	return s.writeDoc(doc)
}
