// Package memory provides an in-memory implementation of the URL repository.
// All mappings live for the lifetime of the process.
package memory

import (
	"fmt"
	"sync"
	"time"

	"github.com/vadimbarashkov/memshort/internal/entity"
)

// URLRepository keeps short code to URL mappings in a map guarded by a single mutex.
// Every method holds the lock for its whole duration, reads included.
type URLRepository struct {
	mu   sync.Mutex
	urls map[string]*entity.URL
	now  func() time.Time
}

// NewURLRepository returns an empty repository.
func NewURLRepository() *URLRepository {
	return &URLRepository{
		urls: make(map[string]*entity.URL),
		now:  func() time.Time { return time.Now().UTC() },
	}
}

// Put stores a new mapping with zero clicks.
// An existing mapping is never overwritten: ErrShortCodeExists is returned instead.
func (r *URLRepository) Put(shortCode, originalURL string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Put"

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.urls[shortCode]; ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrShortCodeExists)
	}

	url := &entity.URL{
		ShortCode:   shortCode,
		OriginalURL: originalURL,
		CreatedAt:   r.now(),
	}
	r.urls[shortCode] = url

	cp := *url
	return &cp, nil
}

// Get returns the mapping for shortCode without touching its click counter.
func (r *URLRepository) Get(shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Get"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	cp := *url
	return &cp, nil
}

// RecordClick increments the click counter and returns the updated mapping.
func (r *URLRepository) RecordClick(shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.RecordClick"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}
	url.Clicks++

	cp := *url
	return &cp, nil
}

// Stats is a read-only lookup used for analytics.
func (r *URLRepository) Stats(shortCode string) (*entity.URL, error) {
	const op = "adapter.repository.memory.URLRepository.Stats"

	r.mu.Lock()
	defer r.mu.Unlock()

	url, ok := r.urls[shortCode]
	if !ok {
		return nil, fmt.Errorf("%s: %w", op, entity.ErrURLNotFound)
	}

	cp := *url
	return &cp, nil
}

// Len returns the number of stored mappings.
func (r *URLRepository) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.urls)
}
