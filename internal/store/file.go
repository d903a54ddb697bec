package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/MikeSquared-Agency/Wheel/internal/wheel"
)

// FileStore keeps the list in a single JSON document.
type FileStore struct {
	path string
	mu   sync.Mutex
}

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string { return s.path }

// fileOption accepts the older "probability" key for the weight.
type fileOption struct {
	Name        string `json:"name"`
	Weight      *int   `json:"weight,omitempty"`
	Probability *int   `json:"probability,omitempty"`
}

func (s *FileStore) LoadOptions(_ context.Context) ([]wheel.Option, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []wheel.Option{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read options: %w", err)
	}

	var raw []fileOption
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse options %s: %w", s.path, err)
	}

	options := make([]wheel.Option, 0, len(raw))
	for _, r := range raw {
		o := wheel.Option{Name: r.Name}
		switch {
		case r.Weight != nil:
			o.Weight = *r.Weight
		case r.Probability != nil:
			o.Weight = *r.Probability
		}
		options = append(options, o)
	}
	return options, nil
}

func (s *FileStore) SaveOptions(_ context.Context, options []wheel.Option) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(normalize(options), "", "  ")
	if err != nil {
		return fmt.Errorf("encode options: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create options dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".options-*.json")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(append(data, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("write options: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("sync options: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close options: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace options: %w", err)
	}
	return nil
}

func (s *FileStore) Close() error { return nil }
