package models

import (
	"time"

	"github.com/google/uuid"
)

// Notification is an unread-by-default message for one recipient. EntityType
// and EntityID form a weak deep-link reference: they are lookup-only and no
// foreign key constrains them, so deleting the subject never cascades here.
type Notification struct {
	BaseModel
	RecipientID uuid.UUID        `json:"recipient_id" gorm:"type:uuid;not null;index" validate:"required"`
	Type        NotificationType `json:"type" gorm:"type:varchar(40);not null" validate:"required"`
	Title       string           `json:"title" gorm:"size:200;not null" validate:"required,max=200"`
	Message     string           `json:"message" gorm:"type:text"`
	IsRead      bool             `json:"is_read" gorm:"default:false;index"`
	ReadAt      *time.Time       `json:"read_at,omitempty"`
	EntityType  string           `json:"entity_type" gorm:"size:40"`
	EntityID    *uuid.UUID       `json:"entity_id,omitempty" gorm:"type:uuid"`
}

// TableName returns the table name for Notification
func (Notification) TableName() string {
	return "notifications"
}
