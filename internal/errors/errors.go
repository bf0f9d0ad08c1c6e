package errors

import (
	"errors"
	"fmt"
	"time"
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Entity string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found", e.Entity)
}

// Is enables errors.Is() comparison for NotFoundError
func (e *NotFoundError) Is(target error) bool {
	t, ok := target.(*NotFoundError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ConflictError represents a violated uniqueness invariant
type ConflictError struct {
	Entity  string
	Context string // e.g. "for this schedule and handler"
}

func (e *ConflictError) Error() string {
	if e.Context != "" {
		return fmt.Sprintf("%s already exists %s", e.Entity, e.Context)
	}
	return fmt.Sprintf("%s already exists", e.Entity)
}

// Is enables errors.Is() comparison for ConflictError
func (e *ConflictError) Is(target error) bool {
	t, ok := target.(*ConflictError)
	if !ok {
		return false
	}
	return e.Entity == t.Entity
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s - %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// InvalidStateError represents an operation attempted from a state that
// forbids it. It carries which entity, its current state, and the transition
// that was attempted so callers can render actionable feedback.
type InvalidStateError struct {
	Entity     string
	ID         string
	State      string
	Transition string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s %s: cannot %s from state %s", e.Entity, e.ID, e.Transition, e.State)
}

// DeadlineExceededError represents a report submission past the grace window
type DeadlineExceededError struct {
	Deadline    time.Time
	AttemptedAt time.Time
}

func (e *DeadlineExceededError) Error() string {
	return fmt.Sprintf("submission deadline %s exceeded (attempted at %s)",
		e.Deadline.Format(time.RFC3339), e.AttemptedAt.Format(time.RFC3339))
}

// Entity Not Found Errors
var (
	ErrScheduleNotFound     = &NotFoundError{Entity: "daily schedule"}
	ErrScheduleItemNotFound = &NotFoundError{Entity: "schedule item"}
	ErrReportNotFound       = &NotFoundError{Entity: "handler report"}
	ErrNotificationNotFound = &NotFoundError{Entity: "notification"}
	ErrEmployeeNotFound     = &NotFoundError{Entity: "employee"}
	ErrDogNotFound          = &NotFoundError{Entity: "dog"}
	ErrProjectNotFound      = &NotFoundError{Entity: "project"}
	ErrShiftNotFound        = &NotFoundError{Entity: "shift"}
)

// Conflict Errors
var (
	ErrScheduleItemExists = &ConflictError{Entity: "schedule item", Context: "for this schedule and handler"}
	ErrLiveReportExists   = &ConflictError{Entity: "handler report", Context: "for this handler and schedule item"}
	ErrScheduleExists     = &ConflictError{Entity: "daily schedule", Context: "for this date and project"}
)

// Helper Functions

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsConflict checks if an error is a ConflictError
func IsConflict(err error) bool {
	var conflictErr *ConflictError
	return errors.As(err, &conflictErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsInvalidState checks if an error is an InvalidStateError
func IsInvalidState(err error) bool {
	var stateErr *InvalidStateError
	return errors.As(err, &stateErr)
}

// IsDeadlineExceeded checks if an error is a DeadlineExceededError
func IsDeadlineExceeded(err error) bool {
	var deadlineErr *DeadlineExceededError
	return errors.As(err, &deadlineErr)
}

// NewNotFoundError creates a new NotFoundError for a custom entity
func NewNotFoundError(entity string) error {
	return &NotFoundError{Entity: entity}
}

// NewConflictError creates a new ConflictError for a custom entity
func NewConflictError(entity, context string) error {
	return &ConflictError{Entity: entity, Context: context}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewInvalidStateError creates a new InvalidStateError
func NewInvalidStateError(entity, id, state, transition string) error {
	return &InvalidStateError{Entity: entity, ID: id, State: state, Transition: transition}
}

// NewDeadlineExceededError creates a new DeadlineExceededError
func NewDeadlineExceededError(deadline, attemptedAt time.Time) error {
	return &DeadlineExceededError{Deadline: deadline, AttemptedAt: attemptedAt}
}
