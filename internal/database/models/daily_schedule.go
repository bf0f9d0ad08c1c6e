package models

import (
	"time"

	"github.com/google/uuid"
)

// DailySchedule represents one day's duty roster, optionally scoped to a
// project. Status only moves open -> locked; schedules are never deleted by
// the workflow.
type DailySchedule struct {
	BaseModel
	ScheduleDate time.Time      `json:"schedule_date" gorm:"type:date;not null;index" validate:"required"`
	ProjectID    *uuid.UUID     `json:"project_id,omitempty" gorm:"type:uuid;index"`
	Status       ScheduleStatus `json:"status" gorm:"type:varchar(20);not null;default:'open'"`
	CreatedByID  uuid.UUID      `json:"created_by_id" gorm:"type:uuid;not null" validate:"required"`
	Notes        string         `json:"notes" gorm:"type:text"`
	LockedAt     *time.Time     `json:"locked_at,omitempty"`

	// Relationships
	Project   *Project            `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	CreatedBy Employee            `json:"created_by,omitempty" gorm:"foreignKey:CreatedByID"`
	Items     []DailyScheduleItem `json:"items,omitempty" gorm:"foreignKey:ScheduleID"`
}

// TableName returns the table name for DailySchedule
func (DailySchedule) TableName() string {
	return "daily_schedules"
}

// IsLocked reports whether the schedule has been frozen
func (s *DailySchedule) IsLocked() bool {
	return s.Status == ScheduleStatusLocked
}
