package service

import (
	"fmt"
	"time"

	"k9-duty-backend/internal/database/models"
)

// DeadlinePolicy computes the submission cutoff for a duty report: the
// shift's end on the schedule date plus the grace period. Items without a
// shift fall back to end of day. All arithmetic happens in one canonical
// location; the policy itself is pure.
type DeadlinePolicy struct {
	grace time.Duration
	loc   *time.Location
}

// NewDeadlinePolicy creates a deadline policy with the given grace period and
// canonical location
func NewDeadlinePolicy(grace time.Duration, loc *time.Location) *DeadlinePolicy {
	if loc == nil {
		loc = time.UTC
	}
	return &DeadlinePolicy{grace: grace, loc: loc}
}

// Deadline computes the submission cutoff for a schedule date and optional
// shift. A shift whose end precedes its start crosses midnight and ends on
// the following day.
func (p *DeadlinePolicy) Deadline(scheduleDate time.Time, shift *models.Shift) time.Time {
	year, month, day := scheduleDate.In(p.loc).Date()

	if shift == nil {
		endOfDay := time.Date(year, month, day, 23, 59, 59, 0, p.loc)
		return endOfDay.Add(p.grace)
	}

	endHour, endMinute := parseWallClock(shift.EndTime)
	end := time.Date(year, month, day, endHour, endMinute, 0, 0, p.loc)

	startHour, startMinute := parseWallClock(shift.StartTime)
	start := time.Date(year, month, day, startHour, startMinute, 0, 0, p.loc)
	if !end.After(start) {
		end = end.AddDate(0, 0, 1)
	}

	return end.Add(p.grace)
}

// CanSubmit reports whether a submission at now is within the deadline
// (inclusive), with a human-readable reason on refusal
func (p *DeadlinePolicy) CanSubmit(now, scheduleDate time.Time, shift *models.Shift) (bool, string) {
	deadline := p.Deadline(scheduleDate, shift)
	if now.After(deadline) {
		return false, fmt.Sprintf("submission window closed at %s", deadline.Format("2006-01-02 15:04 MST"))
	}
	return true, ""
}

// parseWallClock parses an "HH:MM" string. Malformed values fall back to
// midnight; shift times are validated on write, so this is a safety net for
// legacy rows only.
func parseWallClock(s string) (hour, minute int) {
	if t, err := time.Parse("15:04", s); err == nil {
		return t.Hour(), t.Minute()
	}
	return 0, 0
}
