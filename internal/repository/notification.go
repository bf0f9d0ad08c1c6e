package repository

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// NotificationRepository handles database operations for notifications
type NotificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository creates a new notification repository
func NewNotificationRepository(db *gorm.DB) *NotificationRepository {
	return &NotificationRepository{db: db}
}

// Create creates a new notification
func (r *NotificationRepository) Create(notification *models.Notification) error {
	return r.db.Create(notification).Error
}

// GetByID retrieves a notification by ID
func (r *NotificationRepository) GetByID(id uuid.UUID) (*models.Notification, error) {
	var notification models.Notification
	err := r.db.First(&notification, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

// MarkRead flags a notification as read. Already-read notifications are left
// untouched, which keeps the operation idempotent (0 rows affected).
func (r *NotificationRepository) MarkRead(id uuid.UUID, readAt time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("id = ? AND is_read = ?", id, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})
	return result.RowsAffected, result.Error
}

// MarkAllRead flags all of a recipient's unread notifications as read
func (r *NotificationRepository) MarkAllRead(recipientID uuid.UUID, readAt time.Time) (int64, error) {
	result := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Updates(map[string]interface{}{
			"is_read": true,
			"read_at": readAt,
		})
	return result.RowsAffected, result.Error
}

// CountUnread counts a recipient's unread notifications
func (r *NotificationRepository) CountUnread(recipientID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.Model(&models.Notification{}).
		Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Count(&count).Error
	return count, err
}

// ListUnread retrieves a recipient's unread notifications, newest first
func (r *NotificationRepository) ListUnread(recipientID uuid.UUID, limit int) ([]models.Notification, error) {
	var notifications []models.Notification
	err := r.db.Where("recipient_id = ? AND is_read = ?", recipientID, false).
		Order("created_at DESC").Limit(limit).Find(&notifications).Error
	return notifications, err
}

// ListAll retrieves a recipient's notifications, newest first
func (r *NotificationRepository) ListAll(recipientID uuid.UUID, limit, offset int) ([]models.Notification, int64, error) {
	var notifications []models.Notification
	var total int64

	if err := r.db.Model(&models.Notification{}).Where("recipient_id = ?", recipientID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("recipient_id = ?", recipientID).
		Order("created_at DESC").Limit(limit).Offset(offset).Find(&notifications).Error
	return notifications, total, err
}

// DeleteReadBefore deletes read notifications created before the cutoff.
// Unread notifications are never deleted regardless of age.
func (r *NotificationRepository) DeleteReadBefore(cutoff time.Time) (int64, error) {
	result := r.db.Where("is_read = ? AND created_at < ?", true, cutoff).
		Delete(&models.Notification{})
	return result.RowsAffected, result.Error
}
