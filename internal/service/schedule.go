package service

import (
	"errors"
	"fmt"
	"time"

	"k9-duty-backend/internal/database/models"
	apperrors "k9-duty-backend/internal/errors"
	"k9-duty-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ScheduleService owns daily duty schedules and their per-handler items. It
// enforces the one-item-per-(schedule, handler) invariant, gates every item
// mutation on the owning schedule being open, and publishes notification
// events as a side effect of assignments and replacements.
type ScheduleService struct {
	repo            repository.DailyScheduleRepositoryInterface
	itemRepo        repository.DailyScheduleItemRepositoryInterface
	employeeRepo    repository.EmployeeRepositoryInterface
	dogRepo         repository.DogRepositoryInterface
	projectRepo     repository.ProjectRepositoryInterface
	shiftRepo       repository.ShiftRepositoryInterface
	notifier        Notifier
	validator       *validator.Validate
	clock           Clock
	allowDuplicates bool
}

// NewScheduleService creates a new schedule service
func NewScheduleService(
	repo repository.DailyScheduleRepositoryInterface,
	itemRepo repository.DailyScheduleItemRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	dogRepo repository.DogRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
	clock Clock,
	allowDuplicates bool,
) *ScheduleService {
	return &ScheduleService{
		repo:            repo,
		itemRepo:        itemRepo,
		employeeRepo:    employeeRepo,
		dogRepo:         dogRepo,
		projectRepo:     projectRepo,
		shiftRepo:       shiftRepo,
		notifier:        notifier,
		validator:       validator,
		clock:           clock,
		allowDuplicates: allowDuplicates,
	}
}

// CreateScheduleRequest represents the request to create a daily schedule
type CreateScheduleRequest struct {
	ScheduleDate time.Time  `json:"schedule_date" validate:"required"`
	ProjectID    *uuid.UUID `json:"project_id,omitempty"`
	CreatedByID  uuid.UUID  `json:"created_by_id" validate:"required"`
	Notes        string     `json:"notes,omitempty"`
}

// AddItemRequest represents the request to add a handler assignment to a schedule
type AddItemRequest struct {
	ScheduleID uuid.UUID  `json:"schedule_id" validate:"required"`
	HandlerID  uuid.UUID  `json:"handler_id" validate:"required"`
	DogID      *uuid.UUID `json:"dog_id,omitempty"`
	ShiftID    *uuid.UUID `json:"shift_id,omitempty"`
}

// MarkAbsentRequest represents the request to mark a handler absent
type MarkAbsentRequest struct {
	Reason string `json:"reason" validate:"required,max=200"`
}

// ReplaceHandlerRequest represents the request to replace an absent handler
type ReplaceHandlerRequest struct {
	ReplacementHandlerID uuid.UUID `json:"replacement_handler_id" validate:"required"`
	Reason               string    `json:"reason,omitempty"`
	Notes                string    `json:"notes,omitempty"`
}

// ScheduleItemResponse represents the response for schedule item operations
type ScheduleItemResponse struct {
	ID                   uuid.UUID                 `json:"id"`
	ScheduleID           uuid.UUID                 `json:"schedule_id"`
	HandlerID            uuid.UUID                 `json:"handler_id"`
	DogID                *uuid.UUID                `json:"dog_id,omitempty"`
	ShiftID              *uuid.UUID                `json:"shift_id,omitempty"`
	Status               models.ScheduleItemStatus `json:"status"`
	AbsenceReason        string                    `json:"absence_reason,omitempty"`
	ReplacementHandlerID *uuid.UUID                `json:"replacement_handler_id,omitempty"`
	ReplacementNotes     string                    `json:"replacement_notes,omitempty"`
}

// ScheduleResponse represents the response for schedule operations
type ScheduleResponse struct {
	ID           uuid.UUID              `json:"id"`
	ScheduleDate string                 `json:"schedule_date"`
	ProjectID    *uuid.UUID             `json:"project_id,omitempty"`
	Status       models.ScheduleStatus  `json:"status"`
	CreatedByID  uuid.UUID              `json:"created_by_id"`
	Notes        string                 `json:"notes,omitempty"`
	LockedAt     string                 `json:"locked_at,omitempty"`
	Items        []ScheduleItemResponse `json:"items,omitempty"`
	CreatedAt    string                 `json:"created_at"`
	UpdatedAt    string                 `json:"updated_at"`
}

// CreateSchedule creates a new open daily schedule
func (s *ScheduleService) CreateSchedule(req *CreateScheduleRequest) (*ScheduleResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.employeeRepo.GetByID(req.CreatedByID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify creator: %w", err)
	}

	if req.ProjectID != nil {
		if _, err := s.projectRepo.GetByID(*req.ProjectID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrProjectNotFound
			}
			return nil, fmt.Errorf("failed to verify project: %w", err)
		}
	}

	if !s.allowDuplicates {
		exists, err := s.repo.ExistsForDateProject(req.ScheduleDate, req.ProjectID)
		if err != nil {
			return nil, fmt.Errorf("failed to check for existing schedule: %w", err)
		}
		if exists {
			return nil, apperrors.ErrScheduleExists
		}
	}

	schedule := &models.DailySchedule{
		ScheduleDate: req.ScheduleDate,
		ProjectID:    req.ProjectID,
		Status:       models.ScheduleStatusOpen,
		CreatedByID:  req.CreatedByID,
		Notes:        req.Notes,
	}

	if err := s.repo.Create(schedule); err != nil {
		return nil, fmt.Errorf("failed to create schedule: %w", err)
	}

	return s.toScheduleResponse(schedule), nil
}

// AddItem adds a planned handler assignment to an open schedule and informs
// the handler
func (s *ScheduleService) AddItem(req *AddItemRequest) (*ScheduleItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	handler, err := s.employeeRepo.GetByID(req.HandlerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify handler: %w", err)
	}

	if req.DogID != nil {
		if _, err := s.dogRepo.GetByID(*req.DogID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrDogNotFound
			}
			return nil, fmt.Errorf("failed to verify dog: %w", err)
		}
	}

	if req.ShiftID != nil {
		if _, err := s.shiftRepo.GetByID(*req.ShiftID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrShiftNotFound
			}
			return nil, fmt.Errorf("failed to verify shift: %w", err)
		}
	}

	item := &models.DailyScheduleItem{
		ScheduleID: req.ScheduleID,
		HandlerID:  req.HandlerID,
		DogID:      req.DogID,
		ShiftID:    req.ShiftID,
		Status:     models.ItemStatusPlanned,
	}

	if err := s.itemRepo.CreateInOpenSchedule(item); err != nil {
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			return nil, apperrors.ErrScheduleNotFound
		case errors.Is(err, repository.ErrScheduleNotOpen):
			return nil, apperrors.NewInvalidStateError("daily schedule", req.ScheduleID.String(),
				string(models.ScheduleStatusLocked), "add item")
		case errors.Is(err, gorm.ErrDuplicatedKey):
			return nil, apperrors.ErrScheduleItemExists
		}
		return nil, fmt.Errorf("failed to add schedule item: %w", err)
	}

	s.notifier.Publish(Event{
		RecipientID: handler.ID,
		Type:        models.NotificationDutyAssigned,
		Title:       "New duty assignment",
		Message:     fmt.Sprintf("You have been assigned to the duty schedule (item %s)", item.ID),
		EntityType:  "daily_schedule_item",
		EntityID:    &item.ID,
	})

	return s.toItemResponse(item), nil
}

// MarkPresent transitions an item from planned to present
func (s *ScheduleService) MarkPresent(itemID uuid.UUID) (*ScheduleItemResponse, error) {
	rows, err := s.itemRepo.MarkPresent(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to mark present: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyItemFailure(itemID, "mark present")
	}

	return s.fetchItemResponse(itemID)
}

// MarkAbsent transitions an item from planned to absent with a reason
func (s *ScheduleService) MarkAbsent(itemID uuid.UUID, req *MarkAbsentRequest) (*ScheduleItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("reason", "absence reason is required")
	}

	rows, err := s.itemRepo.MarkAbsent(itemID, req.Reason)
	if err != nil {
		return nil, fmt.Errorf("failed to mark absent: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyItemFailure(itemID, "mark absent")
	}

	return s.fetchItemResponse(itemID)
}

// ReplaceHandler transitions an absent item to replaced, records the
// replacement, and notifies the replacement handler
func (s *ScheduleService) ReplaceHandler(itemID uuid.UUID, req *ReplaceHandlerRequest) (*ScheduleItemResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	replacement, err := s.employeeRepo.GetByID(req.ReplacementHandlerID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify replacement handler: %w", err)
	}

	rows, err := s.itemRepo.Replace(itemID, req.ReplacementHandlerID, req.Reason, req.Notes)
	if err != nil {
		return nil, fmt.Errorf("failed to replace handler: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyItemFailure(itemID, "replace handler")
	}

	s.notifier.Publish(Event{
		RecipientID: replacement.ID,
		Type:        models.NotificationEmployeeReplaced,
		Title:       "Duty replacement",
		Message:     "You have been assigned as a replacement for an absent handler",
		EntityType:  "daily_schedule_item",
		EntityID:    &itemID,
	})

	return s.fetchItemResponse(itemID)
}

// LockSchedule transitions a schedule from open to locked. Locking an already
// locked schedule is a no-op; the transition is irreversible.
func (s *ScheduleService) LockSchedule(scheduleID uuid.UUID) (*ScheduleResponse, error) {
	rows, err := s.repo.Lock(scheduleID, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to lock schedule: %w", err)
	}

	schedule, err := s.repo.GetByID(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}

	// rows == 0 with an existing schedule means it was already locked, which
	// is idempotent success
	_ = rows

	return s.toScheduleResponse(schedule), nil
}

// GetSchedule retrieves a schedule with its items
func (s *ScheduleService) GetSchedule(scheduleID uuid.UUID) (*ScheduleResponse, error) {
	schedule, err := s.repo.GetWithItems(scheduleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrScheduleNotFound
		}
		return nil, fmt.Errorf("failed to get schedule: %w", err)
	}
	return s.toScheduleResponse(schedule), nil
}

// GetSchedulesByDate retrieves all schedules for a calendar date
func (s *ScheduleService) GetSchedulesByDate(date time.Time) ([]ScheduleResponse, error) {
	schedules, err := s.repo.GetByDate(date)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedules: %w", err)
	}

	responses := make([]ScheduleResponse, len(schedules))
	for i, schedule := range schedules {
		responses[i] = *s.toScheduleResponse(&schedule)
	}
	return responses, nil
}

// classifyItemFailure turns a zero-rows-affected transition into the precise
// caller-facing error: the item is missing, its schedule is locked, or the
// item is in a state that forbids the transition.
func (s *ScheduleService) classifyItemFailure(itemID uuid.UUID, transition string) error {
	item, err := s.itemRepo.GetWithSchedule(itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrScheduleItemNotFound
		}
		return fmt.Errorf("failed to get schedule item: %w", err)
	}

	if item.Schedule.IsLocked() {
		return apperrors.NewInvalidStateError("daily schedule", item.ScheduleID.String(),
			string(item.Schedule.Status), transition)
	}
	return apperrors.NewInvalidStateError("schedule item", itemID.String(),
		string(item.Status), transition)
}

func (s *ScheduleService) fetchItemResponse(itemID uuid.UUID) (*ScheduleItemResponse, error) {
	item, err := s.itemRepo.GetByID(itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to get schedule item: %w", err)
	}
	return s.toItemResponse(item), nil
}

// toScheduleResponse converts a schedule model to response
func (s *ScheduleService) toScheduleResponse(schedule *models.DailySchedule) *ScheduleResponse {
	response := &ScheduleResponse{
		ID:           schedule.ID,
		ScheduleDate: schedule.ScheduleDate.Format("2006-01-02"),
		ProjectID:    schedule.ProjectID,
		Status:       schedule.Status,
		CreatedByID:  schedule.CreatedByID,
		Notes:        schedule.Notes,
		CreatedAt:    schedule.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:    schedule.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if schedule.LockedAt != nil {
		response.LockedAt = schedule.LockedAt.Format("2006-01-02T15:04:05Z07:00")
	}
	if len(schedule.Items) > 0 {
		response.Items = make([]ScheduleItemResponse, len(schedule.Items))
		for i, item := range schedule.Items {
			response.Items[i] = *s.toItemResponse(&item)
		}
	}
	return response
}

// toItemResponse converts a schedule item model to response
func (s *ScheduleService) toItemResponse(item *models.DailyScheduleItem) *ScheduleItemResponse {
	return &ScheduleItemResponse{
		ID:                   item.ID,
		ScheduleID:           item.ScheduleID,
		HandlerID:            item.HandlerID,
		DogID:                item.DogID,
		ShiftID:              item.ShiftID,
		Status:               item.Status,
		AbsenceReason:        item.AbsenceReason,
		ReplacementHandlerID: item.ReplacementHandlerID,
		ReplacementNotes:     item.ReplacementNotes,
	}
}
