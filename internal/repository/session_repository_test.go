package repository

import (
	"physician_assessment_backend/internal/model"
	"physician_assessment_backend/internal/util"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAndFind(t *testing.T) {
	repo := NewSessionRepository(time.Hour)

	sess := repo.Create()
	require.NotEmpty(t, sess.ID)
	assert.False(t, sess.Submitted)
	assert.Empty(t, sess.Responses)
	assert.Equal(t, 1, repo.Count())

	found, err := repo.Find(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, sess.ID, found.ID)

	_, err = repo.Find("missing")
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestFindReturnsIsolatedCopy(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	sess := repo.Create()

	v := 3
	require.NoError(t, repo.Update(sess.ID, func(s *model.AssessmentSession) error {
		s.Responses["Category"] = []*int{&v}
		return nil
	}))

	found, err := repo.Find(sess.ID)
	require.NoError(t, err)

	// Mutating the returned copy must not leak into the store.
	*found.Responses["Category"][0] = 9
	found.Submitted = true

	again, err := repo.Find(sess.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, *again.Responses["Category"][0])
	assert.False(t, again.Submitted)
}

func TestUpdateCommitsOnlyOnSuccess(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	sess := repo.Create()

	failed := assert.AnError
	err := repo.Update(sess.ID, func(s *model.AssessmentSession) error {
		s.Submitted = true
		return failed
	})
	require.ErrorIs(t, err, failed)

	found, err := repo.Find(sess.ID)
	require.NoError(t, err)
	assert.False(t, found.Submitted, "failed update must not commit")

	require.NoError(t, repo.Update(sess.ID, func(s *model.AssessmentSession) error {
		s.Submitted = true
		return nil
	}))
	found, err = repo.Find(sess.ID)
	require.NoError(t, err)
	assert.True(t, found.Submitted)

	err = repo.Update("missing", func(s *model.AssessmentSession) error { return nil })
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestResetClearsState(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	sess := repo.Create()

	v := 2
	require.NoError(t, repo.Update(sess.ID, func(s *model.AssessmentSession) error {
		s.Responses["Category"] = []*int{&v}
		s.Submitted = true
		return nil
	}))

	require.NoError(t, repo.Reset(sess.ID))

	found, err := repo.Find(sess.ID)
	require.NoError(t, err)
	assert.False(t, found.Submitted)
	assert.Empty(t, found.Responses)
}

func TestDelete(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	sess := repo.Create()

	repo.Delete(sess.ID)
	assert.Equal(t, 0, repo.Count())

	_, err := repo.Find(sess.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
}

func TestSweepEvictsIdleSessions(t *testing.T) {
	repo := NewSessionRepository(10 * time.Millisecond)

	stale := repo.Create()
	time.Sleep(25 * time.Millisecond)
	fresh := repo.Create()

	removed := repo.Sweep()
	assert.Equal(t, 1, removed)
	assert.Equal(t, 1, repo.Count())

	_, err := repo.Find(stale.ID)
	assert.ErrorIs(t, err, util.ErrSessionNotFound)
	_, err = repo.Find(fresh.ID)
	assert.NoError(t, err)
}

func TestTouchKeepsSessionAlive(t *testing.T) {
	repo := NewSessionRepository(30 * time.Millisecond)
	sess := repo.Create()

	time.Sleep(20 * time.Millisecond)
	require.NoError(t, repo.Touch(sess.ID))
	time.Sleep(20 * time.Millisecond)

	assert.Equal(t, 0, repo.Sweep())
	_, err := repo.Find(sess.ID)
	assert.NoError(t, err)

	assert.ErrorIs(t, repo.Touch("missing"), util.ErrSessionNotFound)
}

func TestSetTTLAppliesToSweep(t *testing.T) {
	repo := NewSessionRepository(time.Hour)
	repo.Create()

	time.Sleep(15 * time.Millisecond)
	assert.Equal(t, 0, repo.Sweep())

	repo.SetTTL(10 * time.Millisecond)
	assert.Equal(t, 1, repo.Sweep())
	assert.Equal(t, 0, repo.Count())
}
