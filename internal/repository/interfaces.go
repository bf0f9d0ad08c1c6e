package repository

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/repository_mocks.go -package=mocks

// DailyScheduleRepositoryInterface defines the interface for daily schedule repository operations
type DailyScheduleRepositoryInterface interface {
	Create(schedule *models.DailySchedule) error
	GetByID(id uuid.UUID) (*models.DailySchedule, error)
	GetWithItems(id uuid.UUID) (*models.DailySchedule, error)
	GetByDate(date time.Time) ([]models.DailySchedule, error)
	ExistsForDateProject(date time.Time, projectID *uuid.UUID) (bool, error)
	FindOpenDatedOnOrBefore(date time.Time) ([]models.DailySchedule, error)
	Lock(id uuid.UUID, lockedAt time.Time) (int64, error)
}

// DailyScheduleItemRepositoryInterface defines the interface for schedule item repository operations
type DailyScheduleItemRepositoryInterface interface {
	Create(item *models.DailyScheduleItem) error
	CreateInOpenSchedule(item *models.DailyScheduleItem) error
	GetByID(id uuid.UUID) (*models.DailyScheduleItem, error)
	GetWithSchedule(id uuid.UUID) (*models.DailyScheduleItem, error)
	GetByScheduleID(scheduleID uuid.UUID) ([]models.DailyScheduleItem, error)
	MarkPresent(id uuid.UUID) (int64, error)
	MarkAbsent(id uuid.UUID, reason string) (int64, error)
	Replace(id uuid.UUID, replacementHandlerID uuid.UUID, reason, notes string) (int64, error)
}

// HandlerReportRepositoryInterface defines the interface for handler report repository operations
type HandlerReportRepositoryInterface interface {
	Create(report *models.HandlerReport) error
	GetByID(id uuid.UUID) (*models.HandlerReport, error)
	GetWithDetails(id uuid.UUID) (*models.HandlerReport, error)
	GetByHandlerID(handlerID uuid.UUID, limit, offset int) ([]models.HandlerReport, int64, error)
	GetByDate(date time.Time, limit, offset int) ([]models.HandlerReport, int64, error)
	Submit(id uuid.UUID, submittedAt time.Time) (int64, error)
	Approve(id uuid.UUID, reviewerID uuid.UUID, notes string, reviewedAt time.Time) (int64, error)
	Reject(id uuid.UUID, reviewerID uuid.UUID, notes string, reviewedAt time.Time) (int64, error)
	AddHealthEntry(entry *models.HealthEntry) error
	AddTrainingEntry(entry *models.TrainingEntry) error
	AddCareEntry(entry *models.CareEntry) error
	AddBehaviorEntry(entry *models.BehaviorEntry) error
	AddIncidentEntry(entry *models.IncidentEntry) error
	AddAttachment(attachment *models.ReportAttachment) error
}

// NotificationRepositoryInterface defines the interface for notification repository operations
type NotificationRepositoryInterface interface {
	Create(notification *models.Notification) error
	GetByID(id uuid.UUID) (*models.Notification, error)
	MarkRead(id uuid.UUID, readAt time.Time) (int64, error)
	MarkAllRead(recipientID uuid.UUID, readAt time.Time) (int64, error)
	CountUnread(recipientID uuid.UUID) (int64, error)
	ListUnread(recipientID uuid.UUID, limit int) ([]models.Notification, error)
	ListAll(recipientID uuid.UUID, limit, offset int) ([]models.Notification, int64, error)
	DeleteReadBefore(cutoff time.Time) (int64, error)
}

// EmployeeRepositoryInterface defines the interface for employee registry operations
type EmployeeRepositoryInterface interface {
	Create(employee *models.Employee) error
	GetByID(id uuid.UUID) (*models.Employee, error)
	GetAll(limit, offset int) ([]models.Employee, int64, error)
	GetActiveReviewers() ([]models.Employee, error)
}

// DogRepositoryInterface defines the interface for dog registry operations
type DogRepositoryInterface interface {
	Create(dog *models.Dog) error
	GetByID(id uuid.UUID) (*models.Dog, error)
	GetAll(limit, offset int) ([]models.Dog, int64, error)
}

// ProjectRepositoryInterface defines the interface for project registry operations
type ProjectRepositoryInterface interface {
	Create(project *models.Project) error
	GetByID(id uuid.UUID) (*models.Project, error)
	GetAll(limit, offset int) ([]models.Project, int64, error)
}

// ShiftRepositoryInterface defines the interface for shift registry operations
type ShiftRepositoryInterface interface {
	Create(shift *models.Shift) error
	GetByID(id uuid.UUID) (*models.Shift, error)
	GetAll(limit, offset int) ([]models.Shift, int64, error)
}
