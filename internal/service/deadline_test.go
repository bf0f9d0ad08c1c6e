package service_test

import (
	"testing"
	"time"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/service"

	"github.com/stretchr/testify/assert"
)

func dayShift() *models.Shift {
	return &models.Shift{Name: "Day", StartTime: "08:00", EndTime: "16:00"}
}

func nightShift() *models.Shift {
	return &models.Shift{Name: "Night", StartTime: "22:00", EndTime: "06:00"}
}

// TestDeadlineWithShift verifies the cutoff is the shift end plus the grace
// period on the schedule date
func TestDeadlineWithShift(t *testing.T) {
	policy := service.NewDeadlinePolicy(4*time.Hour, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	deadline := policy.Deadline(date, dayShift())

	assert.Equal(t, time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC), deadline)
}

// TestDeadlineWithoutShift verifies the end-of-day fallback when the duty has
// no shift
func TestDeadlineWithoutShift(t *testing.T) {
	policy := service.NewDeadlinePolicy(4*time.Hour, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	deadline := policy.Deadline(date, nil)

	assert.Equal(t, time.Date(2026, 3, 11, 3, 59, 59, 0, time.UTC), deadline)
}

// TestDeadlineMidnightCrossingShift verifies a shift ending before it starts
// is treated as ending on the following day
func TestDeadlineMidnightCrossingShift(t *testing.T) {
	policy := service.NewDeadlinePolicy(2*time.Hour, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	deadline := policy.Deadline(date, nightShift())

	assert.Equal(t, time.Date(2026, 3, 11, 8, 0, 0, 0, time.UTC), deadline)
}

func TestCanSubmit(t *testing.T) {
	policy := service.NewDeadlinePolicy(4*time.Hour, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		now     time.Time
		allowed bool
	}{
		{
			name:    "well within the window",
			now:     time.Date(2026, 3, 10, 19, 30, 0, 0, time.UTC),
			allowed: true,
		},
		{
			name:    "exactly at the deadline",
			now:     time.Date(2026, 3, 10, 20, 0, 0, 0, time.UTC),
			allowed: true,
		},
		{
			name:    "one minute past the deadline",
			now:     time.Date(2026, 3, 10, 20, 1, 0, 0, time.UTC),
			allowed: false,
		},
		{
			name:    "the following day",
			now:     time.Date(2026, 3, 11, 9, 0, 0, 0, time.UTC),
			allowed: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ok, reason := policy.CanSubmit(tt.now, date, dayShift())
			assert.Equal(t, tt.allowed, ok)
			if tt.allowed {
				assert.Empty(t, reason)
			} else {
				assert.Contains(t, reason, "submission window closed")
			}
		})
	}
}

// TestDeadlineUsesScheduleDateNotNow verifies late marking of an old duty
// still anchors the deadline to the duty's own date
func TestDeadlineUsesScheduleDateNotNow(t *testing.T) {
	policy := service.NewDeadlinePolicy(4*time.Hour, time.UTC)
	date := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	now := time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)

	ok, _ := policy.CanSubmit(now, date, dayShift())

	assert.False(t, ok)
}

// TestDeadlineMalformedShiftTimes verifies a legacy row with unparseable
// times degrades to midnight rather than panicking
func TestDeadlineMalformedShiftTimes(t *testing.T) {
	policy := service.NewDeadlinePolicy(time.Hour, time.UTC)
	date := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	shift := &models.Shift{Name: "Broken", StartTime: "bogus", EndTime: "junk"}

	deadline := policy.Deadline(date, shift)

	// Start and end both parse to 00:00, so the end rolls to the next day
	assert.Equal(t, time.Date(2026, 3, 11, 1, 0, 0, 0, time.UTC), deadline)
}
