package errors

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError(t *testing.T) {
	t.Run("Error message", func(t *testing.T) {
		err := &NotFoundError{Entity: "daily schedule"}
		assert.Equal(t, "daily schedule not found", err.Error())
	})

	t.Run("errors.Is comparison with same entity", func(t *testing.T) {
		err1 := &NotFoundError{Entity: "daily schedule"}
		err2 := &NotFoundError{Entity: "daily schedule"}
		assert.True(t, errors.Is(err1, err2))
	})

	t.Run("errors.Is comparison with different entity", func(t *testing.T) {
		assert.False(t, errors.Is(ErrScheduleNotFound, ErrReportNotFound))
	})

	t.Run("IsNotFound helper", func(t *testing.T) {
		assert.True(t, IsNotFound(ErrScheduleNotFound))
		assert.True(t, IsNotFound(fmt.Errorf("lookup: %w", ErrDogNotFound)))
		assert.False(t, IsNotFound(ErrScheduleItemExists))
	})
}

func TestConflictError(t *testing.T) {
	t.Run("Error message with context", func(t *testing.T) {
		err := &ConflictError{Entity: "schedule item", Context: "for this schedule and handler"}
		assert.Equal(t, "schedule item already exists for this schedule and handler", err.Error())
	})

	t.Run("Error message without context", func(t *testing.T) {
		err := &ConflictError{Entity: "schedule item"}
		assert.Equal(t, "schedule item already exists", err.Error())
	})

	t.Run("errors.Is comparison", func(t *testing.T) {
		assert.True(t, errors.Is(ErrScheduleItemExists, ErrScheduleItemExists))
		assert.False(t, errors.Is(ErrScheduleItemExists, ErrLiveReportExists))
	})

	t.Run("IsConflict helper", func(t *testing.T) {
		assert.True(t, IsConflict(ErrLiveReportExists))
		assert.False(t, IsConflict(ErrReportNotFound))
	})
}

func TestValidationError(t *testing.T) {
	t.Run("Error message with field", func(t *testing.T) {
		err := &ValidationError{Field: "notes", Message: "rejection notes are required"}
		assert.Equal(t, "validation error: notes - rejection notes are required", err.Error())
	})

	t.Run("Error message without field", func(t *testing.T) {
		err := &ValidationError{Message: "bad input"}
		assert.Equal(t, "validation error: bad input", err.Error())
	})

	t.Run("IsValidation helper", func(t *testing.T) {
		assert.True(t, IsValidation(NewValidationError("notes", "required")))
		assert.False(t, IsValidation(ErrReportNotFound))
	})
}

func TestInvalidStateError(t *testing.T) {
	t.Run("Error message carries entity, id, state and transition", func(t *testing.T) {
		err := &InvalidStateError{
			Entity:     "handler report",
			ID:         "a1b2",
			State:      "approved",
			Transition: "submit",
		}
		assert.Equal(t, "handler report a1b2: cannot submit from state approved", err.Error())
	})

	t.Run("IsInvalidState helper unwraps", func(t *testing.T) {
		err := fmt.Errorf("approve: %w", NewInvalidStateError("handler report", "a1b2", "draft", "approve"))
		assert.True(t, IsInvalidState(err))
		assert.False(t, IsInvalidState(ErrReportNotFound))
	})
}

func TestDeadlineExceededError(t *testing.T) {
	deadline := time.Date(2025, 10, 20, 20, 0, 0, 0, time.UTC)
	attempted := time.Date(2025, 10, 20, 20, 1, 0, 0, time.UTC)

	t.Run("Error message", func(t *testing.T) {
		err := NewDeadlineExceededError(deadline, attempted)
		assert.Contains(t, err.Error(), "2025-10-20T20:00:00Z")
		assert.Contains(t, err.Error(), "2025-10-20T20:01:00Z")
	})

	t.Run("IsDeadlineExceeded helper", func(t *testing.T) {
		assert.True(t, IsDeadlineExceeded(NewDeadlineExceededError(deadline, attempted)))
		assert.False(t, IsDeadlineExceeded(NewValidationError("", "x")))
	})
}
