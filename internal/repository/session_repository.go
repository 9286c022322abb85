package repository

import (
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
	"sync"
	"time"

	"github.com/google/uuid"
)

// SessionRepository is the in-memory store for assessment sessions. Sessions
// live for the configured TTL past their last activity; expired entries are
// removed by Sweep, driven from the app's background ticker.
type SessionRepository struct {
	mu       sync.RWMutex
	sessions map[string]*model.AssessmentSession
	ttl      time.Duration
}

func NewSessionRepository(ttl time.Duration) *SessionRepository {
	return &SessionRepository{
		sessions: make(map[string]*model.AssessmentSession),
		ttl:      ttl,
	}
}

func (r *SessionRepository) Create() *model.AssessmentSession {
	now := time.Now()
	sess := &model.AssessmentSession{
		ID:         uuid.New().String(),
		Responses:  model.ResponseSet{},
		CreatedAt:  now,
		LastActive: now,
	}

	r.mu.Lock()
	r.sessions[sess.ID] = sess
	r.mu.Unlock()

	return r.snapshot(sess)
}

// Find returns a deep copy so callers never read state that a concurrent
// update is mutating.
func (r *SessionRepository) Find(id string) (*model.AssessmentSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	sess, ok := r.sessions[id]
	if !ok {
		return nil, util.ErrSessionNotFound
	}
	return r.snapshot(sess), nil
}

// Update applies fn to the live session under the store lock. The whole
// mutation either commits or, when fn errors, leaves the session untouched.
func (r *SessionRepository) Update(id string, fn func(*model.AssessmentSession) error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return util.ErrSessionNotFound
	}

	staged := r.snapshot(sess)
	if err := fn(staged); err != nil {
		return err
	}
	staged.LastActive = time.Now()
	r.sessions[id] = staged
	return nil
}

func (r *SessionRepository) Touch(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	sess, ok := r.sessions[id]
	if !ok {
		return util.ErrSessionNotFound
	}
	sess.LastActive = time.Now()
	return nil
}

// Reset replaces the session's state wholesale, returning it to the
// unanswered, unsubmitted state.
func (r *SessionRepository) Reset(id string) error {
	return r.Update(id, func(sess *model.AssessmentSession) error {
		sess.Responses = model.ResponseSet{}
		sess.Submitted = false
		return nil
	})
}

func (r *SessionRepository) Delete(id string) {
	r.mu.Lock()
	delete(r.sessions, id)
	r.mu.Unlock()
}

func (r *SessionRepository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

// SetTTL adjusts the session lifetime, used by config hot reload.
func (r *SessionRepository) SetTTL(ttl time.Duration) {
	r.mu.Lock()
	r.ttl = ttl
	r.mu.Unlock()
}

// Sweep drops sessions idle past the TTL and reports how many were removed.
func (r *SessionRepository) Sweep() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	cutoff := time.Now().Add(-r.ttl)
	for id, sess := range r.sessions {
		if sess.LastActive.Before(cutoff) {
			delete(r.sessions, id)
			removed++
		}
	}
	return removed
}

func (r *SessionRepository) snapshot(sess *model.AssessmentSession) *model.AssessmentSession {
	copied := *sess
	copied.Responses = sess.Responses.Clone()
	return &copied
}
