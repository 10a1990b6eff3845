package datastore

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/coreybb/studio/models"
	"github.com/google/uuid"
)

type fakeClock struct{ now time.Time }

func (c *fakeClock) Now() time.Time { return c.now }

func newSession(now time.Time) *models.UploadSession {
	return &models.UploadSession{
		ID:        uuid.NewString(),
		State:     models.UploadStateTypeChosen,
		Type:      models.ContentTypeBlog,
		Form:      models.DefaultUploadForm(),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestUploadSessionRepository_CreateAndGet(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	repo := NewUploadSessionRepository(time.Hour, clock.Now)
	ctx := context.Background()

	s := newSession(clock.now)
	if err := repo.CreateSession(ctx, s); err != nil {
		t.Fatalf("CreateSession() error = %v", err)
	}
	if err := repo.CreateSession(ctx, s); err == nil {
		t.Error("expected an error creating a duplicate session")
	}

	got, err := repo.GetSession(ctx, s.ID)
	if err != nil {
		t.Fatalf("GetSession() error = %v", err)
	}
	if got.Type != models.ContentTypeBlog {
		t.Errorf("GetSession() type = %s, expected blog", got.Type)
	}

	if err := repo.CreateSession(ctx, &models.UploadSession{ID: "not-a-uuid"}); err == nil {
		t.Error("expected an error for a malformed session id")
	}
}

func TestUploadSessionRepository_UpdateCommitsOnlyOnSuccess(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	repo := NewUploadSessionRepository(time.Hour, clock.Now)
	ctx := context.Background()

	s := newSession(clock.now)
	_ = repo.CreateSession(ctx, s)

	boom := errors.New("boom")
	_, err := repo.UpdateSession(ctx, s.ID, func(s *models.UploadSession) error {
		s.Form.Title = "should not stick"
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("UpdateSession() error = %v, expected boom", err)
	}
	got, _ := repo.GetSession(ctx, s.ID)
	if got.Form.Title != "" {
		t.Errorf("failed update leaked title %q", got.Form.Title)
	}

	clock.now = clock.now.Add(time.Minute)
	updated, err := repo.UpdateSession(ctx, s.ID, func(s *models.UploadSession) error {
		s.Form.Title = "kept"
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}
	if updated.Form.Title != "kept" || !updated.UpdatedAt.Equal(clock.now) {
		t.Errorf("UpdateSession() = title %q updated %v", updated.Form.Title, updated.UpdatedAt)
	}
}

func TestUploadSessionRepository_ClosedSessionIsRemoved(t *testing.T) {
	repo := NewUploadSessionRepository(time.Hour, nil)
	ctx := context.Background()

	s := newSession(time.Now())
	_ = repo.CreateSession(ctx, s)

	_, err := repo.UpdateSession(ctx, s.ID, func(s *models.UploadSession) error {
		s.State = models.UploadStateClosed
		return nil
	})
	if err != nil {
		t.Fatalf("UpdateSession() error = %v", err)
	}
	if _, err := repo.GetSession(ctx, s.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSession() after close error = %v, expected ErrNotFound", err)
	}
	if repo.Count() != 0 {
		t.Errorf("Count() = %d, expected 0", repo.Count())
	}
}

func TestUploadSessionRepository_Expiry(t *testing.T) {
	clock := &fakeClock{now: time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)}
	repo := NewUploadSessionRepository(10*time.Minute, clock.Now)
	ctx := context.Background()

	stale := newSession(clock.now)
	_ = repo.CreateSession(ctx, stale)

	clock.now = clock.now.Add(11 * time.Minute)
	if _, err := repo.GetSession(ctx, stale.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetSession() of an expired session error = %v, expected ErrNotFound", err)
	}

	other := newSession(clock.now.Add(-20 * time.Minute))
	_ = repo.CreateSession(ctx, other)
	if repo.Count() != 1 {
		t.Errorf("Count() = %d, expected 1 before purge", repo.Count())
	}
	fresh := newSession(clock.now)
	_ = repo.CreateSession(ctx, fresh)
	if repo.Count() != 1 {
		t.Errorf("Count() = %d, expected the stale session purged on create", repo.Count())
	}
	if _, err := repo.GetSession(ctx, fresh.ID); err != nil {
		t.Errorf("GetSession() of a fresh session error = %v", err)
	}
}
