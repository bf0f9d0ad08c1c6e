package models

import (
	"github.com/google/uuid"
)

// DailyScheduleItem is the planned pairing of a handler (optionally with a
// dog and shift) for one schedule day. The composite unique index on
// (schedule_id, handler_id) closes the duplicate-assignment race at the
// storage boundary.
type DailyScheduleItem struct {
	BaseModel
	ScheduleID           uuid.UUID          `json:"schedule_id" gorm:"type:uuid;not null;uniqueIndex:uq_schedule_handler" validate:"required"`
	HandlerID            uuid.UUID          `json:"handler_id" gorm:"type:uuid;not null;uniqueIndex:uq_schedule_handler;index" validate:"required"`
	DogID                *uuid.UUID         `json:"dog_id,omitempty" gorm:"type:uuid"`
	ShiftID              *uuid.UUID         `json:"shift_id,omitempty" gorm:"type:uuid"`
	Status               ScheduleItemStatus `json:"status" gorm:"type:varchar(20);not null;default:'planned'"`
	AbsenceReason        string             `json:"absence_reason" gorm:"size:200"`
	ReplacementHandlerID *uuid.UUID         `json:"replacement_handler_id,omitempty" gorm:"type:uuid"`
	ReplacementNotes     string             `json:"replacement_notes" gorm:"type:text"`

	// Relationships
	Schedule           DailySchedule `json:"schedule,omitempty" gorm:"foreignKey:ScheduleID"`
	Handler            Employee      `json:"handler,omitempty" gorm:"foreignKey:HandlerID"`
	Dog                *Dog          `json:"dog,omitempty" gorm:"foreignKey:DogID"`
	Shift              *Shift        `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	ReplacementHandler *Employee     `json:"replacement_handler,omitempty" gorm:"foreignKey:ReplacementHandlerID"`
}

// TableName returns the table name for DailyScheduleItem
func (DailyScheduleItem) TableName() string {
	return "daily_schedule_items"
}
