package service

import (
	"errors"
	"fmt"

	"k9-duty-backend/internal/database/models"
	apperrors "k9-duty-backend/internal/errors"
	"k9-duty-backend/internal/repository"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationService handles persistence and queries for notifications
type NotificationService struct {
	repo      repository.NotificationRepositoryInterface
	validator *validator.Validate
	clock     Clock
}

// NewNotificationService creates a new notification service
func NewNotificationService(repo repository.NotificationRepositoryInterface, validator *validator.Validate, clock Clock) *NotificationService {
	return &NotificationService{
		repo:      repo,
		validator: validator,
		clock:     clock,
	}
}

// NotifyRequest represents the request to create a notification
type NotifyRequest struct {
	RecipientID uuid.UUID               `json:"recipient_id" validate:"required"`
	Type        models.NotificationType `json:"type" validate:"required"`
	Title       string                  `json:"title" validate:"required,max=200"`
	Message     string                  `json:"message"`
	EntityType  string                  `json:"entity_type,omitempty"`
	EntityID    *uuid.UUID              `json:"entity_id,omitempty"`
}

// NotificationResponse represents the response for notification operations
type NotificationResponse struct {
	ID          uuid.UUID               `json:"id"`
	RecipientID uuid.UUID               `json:"recipient_id"`
	Type        models.NotificationType `json:"type"`
	Title       string                  `json:"title"`
	Message     string                  `json:"message"`
	IsRead      bool                    `json:"is_read"`
	ReadAt      string                  `json:"read_at,omitempty"`
	EntityType  string                  `json:"entity_type,omitempty"`
	EntityID    *uuid.UUID              `json:"entity_id,omitempty"`
	CreatedAt   string                  `json:"created_at"`
}

// NotificationListResponse represents a paginated list of notifications
type NotificationListResponse struct {
	Notifications []NotificationResponse `json:"notifications"`
	Total         int64                  `json:"total"`
}

// Notify creates an unread notification
func (s *NotificationService) Notify(req *NotifyRequest) (*NotificationResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Type.IsValid() {
		return nil, apperrors.NewValidationError("type", "invalid notification type")
	}

	notification := &models.Notification{
		RecipientID: req.RecipientID,
		Type:        req.Type,
		Title:       req.Title,
		Message:     req.Message,
		EntityType:  req.EntityType,
		EntityID:    req.EntityID,
	}

	if err := s.repo.Create(notification); err != nil {
		return nil, fmt.Errorf("failed to create notification: %w", err)
	}

	return s.toResponse(notification), nil
}

// MarkRead flags a notification as read; calling it again is a no-op
func (s *NotificationService) MarkRead(id uuid.UUID) error {
	rows, err := s.repo.MarkRead(id, s.clock.Now())
	if err != nil {
		return fmt.Errorf("failed to mark notification read: %w", err)
	}
	if rows == 0 {
		// Either already read (idempotent success) or missing
		if _, err := s.repo.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.ErrNotificationNotFound
			}
			return fmt.Errorf("failed to get notification: %w", err)
		}
	}
	return nil
}

// MarkAllRead flags all of a recipient's unread notifications as read and
// returns how many were affected
func (s *NotificationService) MarkAllRead(recipientID uuid.UUID) (int64, error) {
	rows, err := s.repo.MarkAllRead(recipientID, s.clock.Now())
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications read: %w", err)
	}
	return rows, nil
}

// UnreadCount counts a recipient's unread notifications
func (s *NotificationService) UnreadCount(recipientID uuid.UUID) (int64, error) {
	count, err := s.repo.CountUnread(recipientID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// ListUnread retrieves a recipient's unread notifications
func (s *NotificationService) ListUnread(recipientID uuid.UUID, limit int) ([]NotificationResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}

	notifications, err := s.repo.ListUnread(recipientID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list unread notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = *s.toResponse(&n)
	}
	return responses, nil
}

// ListAll retrieves a recipient's notifications with pagination
func (s *NotificationService) ListAll(recipientID uuid.UUID, limit, offset int) (*NotificationListResponse, error) {
	if limit < 1 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	notifications, total, err := s.repo.ListAll(recipientID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}

	responses := make([]NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = *s.toResponse(&n)
	}

	return &NotificationListResponse{
		Notifications: responses,
		Total:         total,
	}, nil
}

// toResponse converts a notification model to response
func (s *NotificationService) toResponse(n *models.Notification) *NotificationResponse {
	response := &NotificationResponse{
		ID:          n.ID,
		RecipientID: n.RecipientID,
		Type:        n.Type,
		Title:       n.Title,
		Message:     n.Message,
		IsRead:      n.IsRead,
		EntityType:  n.EntityType,
		EntityID:    n.EntityID,
		CreatedAt:   n.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
	if n.ReadAt != nil {
		response.ReadAt = n.ReadAt.Format("2006-01-02T15:04:05Z07:00")
	}
	return response
}
