package models

import (
	"time"

	"github.com/google/uuid"
)

// HandlerReport is a handler's daily duty report over one dog, optionally
// tied to a schedule item. At most one report in a live status (draft,
// submitted, approved) may exist per (handler, schedule item); the guard is a
// partial unique index created in database.Initialize.
type HandlerReport struct {
	BaseModel
	ReportDate     time.Time    `json:"report_date" gorm:"type:date;not null;index" validate:"required"`
	HandlerID      uuid.UUID    `json:"handler_id" gorm:"type:uuid;not null;index" validate:"required"`
	DogID          uuid.UUID    `json:"dog_id" gorm:"type:uuid;not null" validate:"required"`
	ScheduleItemID *uuid.UUID   `json:"schedule_item_id,omitempty" gorm:"type:uuid;index"`
	ProjectID      *uuid.UUID   `json:"project_id,omitempty" gorm:"type:uuid"`
	ShiftID        *uuid.UUID   `json:"shift_id,omitempty" gorm:"type:uuid"`
	Status         ReportStatus `json:"status" gorm:"type:varchar(20);not null;default:'draft'"`
	Location       string       `json:"location" gorm:"size:200"`
	SubmittedAt    *time.Time   `json:"submitted_at,omitempty"`
	ReviewedByID   *uuid.UUID   `json:"reviewed_by_id,omitempty" gorm:"type:uuid"`
	ReviewedAt     *time.Time   `json:"reviewed_at,omitempty"`
	ReviewNotes    string       `json:"review_notes" gorm:"type:text"`

	// Relationships
	Handler      Employee           `json:"handler,omitempty" gorm:"foreignKey:HandlerID"`
	Dog          Dog                `json:"dog,omitempty" gorm:"foreignKey:DogID"`
	ScheduleItem *DailyScheduleItem `json:"schedule_item,omitempty" gorm:"foreignKey:ScheduleItemID"`
	Project      *Project           `json:"project,omitempty" gorm:"foreignKey:ProjectID"`
	Shift        *Shift             `json:"shift,omitempty" gorm:"foreignKey:ShiftID"`
	ReviewedBy   *Employee          `json:"reviewed_by,omitempty" gorm:"foreignKey:ReviewedByID"`

	// Owned sub-records, mutable only while the report is draft or submitted
	HealthEntries   []HealthEntry      `json:"health_entries,omitempty" gorm:"foreignKey:ReportID"`
	TrainingEntries []TrainingEntry    `json:"training_entries,omitempty" gorm:"foreignKey:ReportID"`
	CareEntries     []CareEntry        `json:"care_entries,omitempty" gorm:"foreignKey:ReportID"`
	BehaviorEntries []BehaviorEntry    `json:"behavior_entries,omitempty" gorm:"foreignKey:ReportID"`
	IncidentEntries []IncidentEntry    `json:"incident_entries,omitempty" gorm:"foreignKey:ReportID"`
	Attachments     []ReportAttachment `json:"attachments,omitempty" gorm:"foreignKey:ReportID"`
}

// TableName returns the table name for HandlerReport
func (HandlerReport) TableName() string {
	return "handler_reports"
}
