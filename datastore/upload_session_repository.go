package datastore

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coreybb/studio/models"
	"github.com/google/uuid"
)

const defaultSessionTTL = 30 * time.Minute

// UploadSessionRepository keeps open upload sessions in memory. Sessions are
// ephemeral: a closed session is removed, and idle ones expire after the TTL.
type UploadSessionRepository struct {
	mu       sync.Mutex
	sessions map[string]*models.UploadSession
	ttl      time.Duration
	now      func() time.Time
}

// NewUploadSessionRepository creates a repository. A non-positive ttl uses the default.
func NewUploadSessionRepository(ttl time.Duration, now func() time.Time) *UploadSessionRepository {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	if now == nil {
		now = time.Now
	}
	return &UploadSessionRepository{
		sessions: make(map[string]*models.UploadSession),
		ttl:      ttl,
		now:      now,
	}
}

// CreateSession stores a new session. Expired sessions are purged first.
func (r *UploadSessionRepository) CreateSession(ctx context.Context, session *models.UploadSession) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := uuid.Parse(session.ID); err != nil {
		return fmt.Errorf("invalid upload session ID format: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.purgeExpired()
	if _, exists := r.sessions[session.ID]; exists {
		return fmt.Errorf("upload session %s already exists", session.ID)
	}
	stored := session.Clone()
	r.sessions[session.ID] = &stored
	return nil
}

// GetSession retrieves a copy of an open session.
func (r *UploadSessionRepository) GetSession(ctx context.Context, id string) (*models.UploadSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.live(id)
	if !ok {
		return nil, fmt.Errorf("upload session %s: %w", id, ErrNotFound)
	}
	out := session.Clone()
	return &out, nil
}

// UpdateSession applies fn to a working copy of the session under the lock.
// The copy replaces the stored session only if fn succeeds. A session that
// fn leaves in the closed state is removed.
func (r *UploadSessionRepository) UpdateSession(ctx context.Context, id string, fn func(*models.UploadSession) error) (*models.UploadSession, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	session, ok := r.live(id)
	if !ok {
		return nil, fmt.Errorf("upload session %s: %w", id, ErrNotFound)
	}

	working := session.Clone()
	if err := fn(&working); err != nil {
		return nil, err
	}
	working.UpdatedAt = r.now().UTC()

	if working.State == models.UploadStateClosed {
		delete(r.sessions, id)
	} else {
		stored := working.Clone()
		r.sessions[id] = &stored
	}
	return &working, nil
}

// Count returns the number of open sessions.
func (r *UploadSessionRepository) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// live must be called with r.mu held.
func (r *UploadSessionRepository) live(id string) (*models.UploadSession, bool) {
	session, ok := r.sessions[id]
	if !ok {
		return nil, false
	}
	if r.expired(session) {
		delete(r.sessions, id)
		return nil, false
	}
	return session, true
}

func (r *UploadSessionRepository) expired(s *models.UploadSession) bool {
	return r.now().Sub(s.UpdatedAt) > r.ttl
}

// purgeExpired must be called with r.mu held.
func (r *UploadSessionRepository) purgeExpired() {
	for id, s := range r.sessions {
		if r.expired(s) {
			delete(r.sessions, id)
			slog.Debug("Upload session expired", "session_id", id)
		}
	}
}
