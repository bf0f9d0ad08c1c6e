package scheduler

import (
	"fmt"
	"time"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/logger"
	"k9-duty-backend/internal/service"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
)

// scheduleStore is the slice of schedule persistence the auto-lock job needs
type scheduleStore interface {
	FindOpenDatedOnOrBefore(date time.Time) ([]models.DailySchedule, error)
	Lock(id uuid.UUID, lockedAt time.Time) (int64, error)
}

// notificationStore is the slice of notification persistence the retention
// sweep needs
type notificationStore interface {
	DeleteReadBefore(cutoff time.Time) (int64, error)
}

// Options configures the background job coordinator
type Options struct {
	AutoLockHour    int
	AutoLockMinute  int
	RetentionWindow time.Duration
}

// Scheduler coordinates the recurring background jobs: the nightly auto-lock
// of past duty schedules and the weekly notification retention sweep. Both
// jobs are idempotent and safe to miss; a skipped run is caught up by the
// next one because auto-lock targets every open schedule dated on or before
// yesterday, not just yesterday's.
type Scheduler struct {
	cron          *cron.Cron
	schedules     scheduleStore
	notifications notificationStore
	clock         service.Clock
	opts          Options
	log           *logger.Logger
}

// New creates a scheduler running in the clock's canonical location
func New(
	schedules scheduleStore,
	notifications notificationStore,
	clock service.Clock,
	opts Options,
	log *logger.Logger,
) *Scheduler {
	return &Scheduler{
		cron:          cron.New(cron.WithLocation(clock.Location())),
		schedules:     schedules,
		notifications: notifications,
		clock:         clock,
		opts:          opts,
		log:           log.WithField("component", "scheduler"),
	}
}

// Start registers the cron entries and launches the cron runner
func (s *Scheduler) Start() error {
	autoLockSpec := fmt.Sprintf("%d %d * * *", s.opts.AutoLockMinute, s.opts.AutoLockHour)
	if _, err := s.cron.AddFunc(autoLockSpec, s.RunAutoLock); err != nil {
		return fmt.Errorf("failed to register auto-lock job: %w", err)
	}

	// Sunday 03:00 in the canonical zone
	if _, err := s.cron.AddFunc("0 3 * * 0", s.RunRetentionSweep); err != nil {
		return fmt.Errorf("failed to register retention sweep: %w", err)
	}

	s.cron.Start()
	s.log.WithField("auto_lock", autoLockSpec).Info("Background jobs started")
	return nil
}

// Stop halts the cron runner and waits for any running job to finish
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.log.Info("Background jobs stopped")
}

// RunAutoLock locks every open schedule dated on or before yesterday. Each
// schedule commits independently, so one failure never blocks the rest, and
// a schedule locked manually in the meantime is skipped by the guarded
// update rather than reported as an error.
func (s *Scheduler) RunAutoLock() {
	now := s.clock.Now()
	yesterday := now.AddDate(0, 0, -1)

	schedules, err := s.schedules.FindOpenDatedOnOrBefore(yesterday)
	if err != nil {
		s.log.WithError(err).Error("Auto-lock: failed to find open schedules")
		return
	}
	if len(schedules) == 0 {
		return
	}

	locked := 0
	for i := range schedules {
		rows, err := s.schedules.Lock(schedules[i].ID, now)
		if err != nil {
			s.log.WithError(err).WithField("schedule_id", schedules[i].ID).
				Error("Auto-lock: failed to lock schedule")
			continue
		}
		if rows > 0 {
			locked++
		}
	}

	s.log.WithFields(map[string]interface{}{
		"candidates": len(schedules),
		"locked":     locked,
	}).Info("Auto-lock completed")
}

// RunRetentionSweep deletes read notifications older than the retention
// window. Unread notifications are never touched.
func (s *Scheduler) RunRetentionSweep() {
	cutoff := s.clock.Now().Add(-s.opts.RetentionWindow)

	deleted, err := s.notifications.DeleteReadBefore(cutoff)
	if err != nil {
		s.log.WithError(err).Error("Retention sweep failed")
		return
	}

	s.log.WithFields(map[string]interface{}{
		"cutoff":  cutoff.Format("2006-01-02"),
		"deleted": deleted,
	}).Info("Retention sweep completed")
}
