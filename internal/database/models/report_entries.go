package models

import (
	"time"

	"github.com/google/uuid"
)

// HealthEntry records a health observation on a handler report
type HealthEntry struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	Temperature float64   `json:"temperature"`
	Appetite    string    `json:"appetite" gorm:"size:40"`
	Notes       string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for HealthEntry
func (HealthEntry) TableName() string {
	return "report_health_entries"
}

// TrainingEntry records a training session on a handler report
type TrainingEntry struct {
	BaseModel
	ReportID        uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	Discipline      string    `json:"discipline" gorm:"size:60;not null" validate:"required,max=60"`
	DurationMinutes int       `json:"duration_minutes" validate:"min=0"`
	Performance     string    `json:"performance" gorm:"size:40"`
	Notes           string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for TrainingEntry
func (TrainingEntry) TableName() string {
	return "report_training_entries"
}

// CareEntry records a care activity (feeding, grooming, kennel) on a report
type CareEntry struct {
	BaseModel
	ReportID uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	Activity string    `json:"activity" gorm:"size:60;not null" validate:"required,max=60"`
	Notes    string    `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for CareEntry
func (CareEntry) TableName() string {
	return "report_care_entries"
}

// BehaviorEntry records a behavioral observation on a handler report
type BehaviorEntry struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	Category    string    `json:"category" gorm:"size:60;not null" validate:"required,max=60"`
	Severity    string    `json:"severity" gorm:"size:20"`
	Description string    `json:"description" gorm:"type:text"`
}

// TableName returns the table name for BehaviorEntry
func (BehaviorEntry) TableName() string {
	return "report_behavior_entries"
}

// IncidentEntry records an operational incident on a handler report
type IncidentEntry struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	OccurredAt  time.Time `json:"occurred_at" validate:"required"`
	Severity    string    `json:"severity" gorm:"size:20"`
	Description string    `json:"description" gorm:"type:text;not null" validate:"required"`
	ActionTaken string    `json:"action_taken" gorm:"type:text"`
}

// TableName returns the table name for IncidentEntry
func (IncidentEntry) TableName() string {
	return "report_incident_entries"
}

// ReportAttachment references an uploaded file by storage key; the file
// store itself is an external collaborator.
type ReportAttachment struct {
	BaseModel
	ReportID    uuid.UUID `json:"report_id" gorm:"type:uuid;not null;index" validate:"required"`
	FileName    string    `json:"file_name" gorm:"size:255;not null" validate:"required,max=255"`
	ContentType string    `json:"content_type" gorm:"size:100"`
	SizeBytes   int64     `json:"size_bytes" validate:"min=0"`
	StorageKey  string    `json:"storage_key" gorm:"size:255;not null" validate:"required,max=255"`
}

// TableName returns the table name for ReportAttachment
func (ReportAttachment) TableName() string {
	return "report_attachments"
}
