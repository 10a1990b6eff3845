package catalog

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/coreybb/studio/datastore"
	"github.com/coreybb/studio/models"
)

// ErrNotFound is returned when a content item does not exist.
var ErrNotFound = datastore.ErrNotFound

// ContentRepository is the catalog store backing the studio.
type ContentRepository interface {
	ListContent(ctx context.Context) ([]models.ContentItem, error)
	GetContentByID(ctx context.Context, id int64) (*models.ContentItem, error)
	DeleteContent(ctx context.Context, id int64) (bool, error)
	UpdateContentStatus(ctx context.Context, id int64, fn func(models.ContentStatus) models.ContentStatus) (*models.ContentItem, error)
}

// Service implements the catalog read and mutation operations.
type Service struct {
	repo ContentRepository
}

func NewService(repo ContentRepository) *Service {
	return &Service{repo: repo}
}

// Result is a filtered view of the catalog.
type Result struct {
	Items []models.ContentItem
	Total int // catalog size before filtering
}

// List returns the catalog items matching f, in catalog order.
func (s *Service) List(ctx context.Context, f Filter) (*Result, error) {
	items, err := s.repo.ListContent(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list content: %w", err)
	}
	return &Result{Items: Apply(items, f), Total: len(items)}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*models.ContentItem, error) {
	item, err := s.repo.GetContentByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get content %d: %w", id, err)
	}
	return item, nil
}

// Delete permanently removes an item. Deleting an absent item is a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, err := s.repo.DeleteContent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to delete content %d: %w", id, err)
	}
	if removed {
		slog.Info("Content deleted", "content_id", id)
	} else {
		slog.Debug("Content delete was a no-op", "content_id", id)
	}
	return nil
}

// ToggleThrottle flips an item between throttled and published. A draft
// becomes throttled.
func (s *Service) ToggleThrottle(ctx context.Context, id int64) (*models.ContentItem, error) {
	var previous models.ContentStatus
	item, err := s.repo.UpdateContentStatus(ctx, id, func(current models.ContentStatus) models.ContentStatus {
		previous = current
		return current.Toggled()
	})
	if err != nil {
		return nil, fmt.Errorf("failed to toggle throttle for content %d: %w", id, err)
	}
	slog.Info("Content throttle toggled", "content_id", id, "from", previous, "to", item.Status)
	return item, nil
}

// ShareLink returns the item's share link verbatim.
func (s *Service) ShareLink(ctx context.Context, id int64) (string, error) {
	item, err := s.Get(ctx, id)
	if err != nil {
		return "", err
	}
	return item.ShareLink, nil
}
