package scheduler

import (
	"errors"
	"testing"
	"time"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/logger"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time           { return c.now }
func (c *fixedClock) Location() *time.Location { return c.now.Location() }

type fakeScheduleStore struct {
	open    []models.DailySchedule
	findErr error

	lockCalls []uuid.UUID
	lockRows  map[uuid.UUID]int64
	lockErrs  map[uuid.UUID]error
}

func (f *fakeScheduleStore) FindOpenDatedOnOrBefore(date time.Time) ([]models.DailySchedule, error) {
	return f.open, f.findErr
}

func (f *fakeScheduleStore) Lock(id uuid.UUID, lockedAt time.Time) (int64, error) {
	f.lockCalls = append(f.lockCalls, id)
	if err, ok := f.lockErrs[id]; ok {
		return 0, err
	}
	if rows, ok := f.lockRows[id]; ok {
		return rows, nil
	}
	return 1, nil
}

type fakeNotificationStore struct {
	cutoff  time.Time
	deleted int64
	err     error
}

func (f *fakeNotificationStore) DeleteReadBefore(cutoff time.Time) (int64, error) {
	f.cutoff = cutoff
	return f.deleted, f.err
}

func newTestScheduler(schedules *fakeScheduleStore, notifications *fakeNotificationStore, clock *fixedClock) *Scheduler {
	return New(schedules, notifications, clock, Options{
		AutoLockHour:    23,
		AutoLockMinute:  59,
		RetentionWindow: 30 * 24 * time.Hour,
	}, logger.New())
}

func openSchedule() models.DailySchedule {
	return models.DailySchedule{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Status:    models.ScheduleStatusOpen,
	}
}

func TestRunAutoLock_LocksAllOpenSchedules(t *testing.T) {
	schedules := &fakeScheduleStore{
		open: []models.DailySchedule{openSchedule(), openSchedule(), openSchedule()},
	}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)}

	s := newTestScheduler(schedules, &fakeNotificationStore{}, clock)
	s.RunAutoLock()

	require.Len(t, schedules.lockCalls, 3)
	for i, schedule := range schedules.open {
		assert.Equal(t, schedule.ID, schedules.lockCalls[i])
	}
}

func TestRunAutoLock_AlreadyLockedIsNotAnError(t *testing.T) {
	first := openSchedule()
	second := openSchedule()
	schedules := &fakeScheduleStore{
		open:     []models.DailySchedule{first, second},
		lockRows: map[uuid.UUID]int64{first.ID: 0},
	}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)}

	s := newTestScheduler(schedules, &fakeNotificationStore{}, clock)
	s.RunAutoLock()

	// Both schedules are attempted even though the first was a no-op.
	require.Len(t, schedules.lockCalls, 2)
}

func TestRunAutoLock_OneFailureDoesNotBlockTheRest(t *testing.T) {
	first := openSchedule()
	second := openSchedule()
	third := openSchedule()
	schedules := &fakeScheduleStore{
		open:     []models.DailySchedule{first, second, third},
		lockErrs: map[uuid.UUID]error{second.ID: errors.New("connection reset")},
	}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)}

	s := newTestScheduler(schedules, &fakeNotificationStore{}, clock)
	s.RunAutoLock()

	require.Len(t, schedules.lockCalls, 3)
	assert.Equal(t, third.ID, schedules.lockCalls[2])
}

func TestRunAutoLock_FindFailureAbortsQuietly(t *testing.T) {
	schedules := &fakeScheduleStore{findErr: errors.New("db down")}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC)}

	s := newTestScheduler(schedules, &fakeNotificationStore{}, clock)
	s.RunAutoLock()

	assert.Empty(t, schedules.lockCalls)
}

func TestRunRetentionSweep_CutoffIsRetentionWindowAgo(t *testing.T) {
	notifications := &fakeNotificationStore{deleted: 7}
	now := time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)
	clock := &fixedClock{now: now}

	s := newTestScheduler(&fakeScheduleStore{}, notifications, clock)
	s.RunRetentionSweep()

	assert.Equal(t, now.Add(-30*24*time.Hour), notifications.cutoff)
}

func TestRunRetentionSweep_DeleteFailureDoesNotPanic(t *testing.T) {
	notifications := &fakeNotificationStore{err: errors.New("db down")}
	clock := &fixedClock{now: time.Date(2025, 6, 10, 3, 0, 0, 0, time.UTC)}

	s := newTestScheduler(&fakeScheduleStore{}, notifications, clock)

	assert.NotPanics(t, func() { s.RunRetentionSweep() })
}
