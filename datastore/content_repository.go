package datastore

import (
	"context"
	"fmt"
	"sync"

	"github.com/coreybb/studio/models"
)

// ContentRepository holds the studio catalog in memory, in catalog order.
type ContentRepository struct {
	mu    sync.RWMutex
	items []models.ContentItem
}

// NewContentRepository creates a ContentRepository seeded with items.
// The items are copied; later changes to the argument do not affect the store.
func NewContentRepository(items []models.ContentItem) *ContentRepository {
	r := &ContentRepository{items: make([]models.ContentItem, 0, len(items))}
	for _, item := range items {
		r.items = append(r.items, item.Clone())
	}
	return r
}

// ListContent returns every item in catalog order.
func (r *ContentRepository) ListContent(ctx context.Context) ([]models.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	items := make([]models.ContentItem, len(r.items))
	for i, item := range r.items {
		items[i] = item.Clone()
	}
	return items, nil
}

// GetContentByID retrieves one item by its ID.
func (r *ContentRepository) GetContentByID(ctx context.Context, id int64) (*models.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("content %d: %w", id, ErrNotFound)
	}
	item := r.items[idx].Clone()
	return &item, nil
}

// DeleteContent removes the item with the given ID. It reports whether an
// item was removed; deleting an absent ID is not an error.
func (r *ContentRepository) DeleteContent(ctx context.Context, id int64) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	r.items = append(r.items[:idx], r.items[idx+1:]...)
	return true, nil
}

// UpdateContentStatus replaces the status of one item with fn(current) while
// holding the write lock, and returns the updated item.
func (r *ContentRepository) UpdateContentStatus(ctx context.Context, id int64, fn func(models.ContentStatus) models.ContentStatus) (*models.ContentItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	idx := r.indexOf(id)
	if idx < 0 {
		return nil, fmt.Errorf("content %d: %w", id, ErrNotFound)
	}
	next := fn(r.items[idx].Status)
	if !models.IsValidContentStatus(next) {
		return nil, fmt.Errorf("invalid content status %q for content %d", next, id)
	}
	r.items[idx].Status = next
	item := r.items[idx].Clone()
	return &item, nil
}

// indexOf must be called with r.mu held.
func (r *ContentRepository) indexOf(id int64) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}
