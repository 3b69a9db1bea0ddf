package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/octobees/roofcompare/internal/entity"
)

// FileSubmissionsRepository appends submissions to a local JSON file. It is
// the non-production fallback used when no database is configured.
type FileSubmissionsRepository struct {
	path string
	mu   sync.Mutex
}

// NewFileSubmissionsRepository wires a file backed repository.
func NewFileSubmissionsRepository(path string) *FileSubmissionsRepository {
	return &FileSubmissionsRepository{path: path}
}

// Save appends the submission to the JSON file, creating it on first write.
func (r *FileSubmissionsRepository) Save(ctx context.Context, submission entity.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, err := r.readAll()
	if err != nil {
		return err
	}
	existing = append(existing, submission)

	if err := os.MkdirAll(filepath.Dir(r.path), 0o755); err != nil {
		return fmt.Errorf("create submissions directory: %w", err)
	}
	data, err := json.MarshalIndent(existing, "", "  ")
	if err != nil {
		return fmt.Errorf("encode submissions: %w", err)
	}
	if err := os.WriteFile(r.path, data, 0o644); err != nil {
		return fmt.Errorf("write submissions file: %w", err)
	}
	return nil
}

// Recent returns the newest submissions first.
func (r *FileSubmissionsRepository) Recent(ctx context.Context, limit int) ([]entity.Submission, error) {
	if limit <= 0 {
		limit = 50
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	all, err := r.readAll()
	if err != nil {
		return nil, err
	}

	// File order is append order; reverse for newest-first.
	var out []entity.Submission
	for i := len(all) - 1; i >= 0 && len(out) < limit; i-- {
		out = append(out, all[i])
	}
	return out, nil
}

func (r *FileSubmissionsRepository) readAll() ([]entity.Submission, error) {
	data, err := os.ReadFile(r.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read submissions file: %w", err)
	}
	var submissions []entity.Submission
	if err := json.Unmarshal(data, &submissions); err != nil {
		return nil, fmt.Errorf("decode submissions file: %w", err)
	}
	return submissions, nil
}
