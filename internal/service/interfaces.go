package service

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// ScheduleServiceInterface defines the interface for schedule operations
type ScheduleServiceInterface interface {
	CreateSchedule(req *CreateScheduleRequest) (*ScheduleResponse, error)
	AddItem(req *AddItemRequest) (*ScheduleItemResponse, error)
	MarkPresent(itemID uuid.UUID) (*ScheduleItemResponse, error)
	MarkAbsent(itemID uuid.UUID, req *MarkAbsentRequest) (*ScheduleItemResponse, error)
	ReplaceHandler(itemID uuid.UUID, req *ReplaceHandlerRequest) (*ScheduleItemResponse, error)
	LockSchedule(id uuid.UUID) (*ScheduleResponse, error)
	GetSchedule(id uuid.UUID) (*ScheduleResponse, error)
	GetSchedulesByDate(date time.Time) ([]ScheduleResponse, error)
}

// ReportServiceInterface defines the interface for report workflow operations
type ReportServiceInterface interface {
	CreateReport(req *CreateReportRequest) (*ReportResponse, error)
	AddHealthEntry(reportID uuid.UUID, req *AddHealthEntryRequest) (*models.HealthEntry, error)
	AddTrainingEntry(reportID uuid.UUID, req *AddTrainingEntryRequest) (*models.TrainingEntry, error)
	AddCareEntry(reportID uuid.UUID, req *AddCareEntryRequest) (*models.CareEntry, error)
	AddBehaviorEntry(reportID uuid.UUID, req *AddBehaviorEntryRequest) (*models.BehaviorEntry, error)
	AddIncidentEntry(reportID uuid.UUID, req *AddIncidentEntryRequest) (*models.IncidentEntry, error)
	AddAttachment(reportID uuid.UUID, req *AddAttachmentRequest) (*models.ReportAttachment, error)
	CanSubmit(reportID uuid.UUID) (bool, string, error)
	SubmitReport(reportID uuid.UUID) (*ReportResponse, error)
	ApproveReport(reportID uuid.UUID, req *ReviewRequest) (*ReportResponse, error)
	RejectReport(reportID uuid.UUID, req *ReviewRequest) (*ReportResponse, error)
	GetReport(id uuid.UUID) (*ReportResponse, error)
	ListByHandler(handlerID uuid.UUID, limit, offset int) (*ReportListResponse, error)
	ListByDate(date time.Time, limit, offset int) (*ReportListResponse, error)
}

// NotificationServiceInterface defines the interface for notification operations
type NotificationServiceInterface interface {
	Notify(req *NotifyRequest) (*NotificationResponse, error)
	MarkRead(id uuid.UUID) error
	MarkAllRead(recipientID uuid.UUID) (int64, error)
	UnreadCount(recipientID uuid.UUID) (int64, error)
	ListUnread(recipientID uuid.UUID, limit int) ([]NotificationResponse, error)
	ListAll(recipientID uuid.UUID, limit, offset int) (*NotificationListResponse, error)
}

// RegistryServiceInterface defines the interface for registry operations
type RegistryServiceInterface interface {
	CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error)
	GetEmployee(id uuid.UUID) (*models.Employee, error)
	ListEmployees(limit, offset int) (*PagedEmployees, error)
	CreateDog(req *CreateDogRequest) (*models.Dog, error)
	GetDog(id uuid.UUID) (*models.Dog, error)
	ListDogs(limit, offset int) (*PagedDogs, error)
	CreateProject(req *CreateProjectRequest) (*models.Project, error)
	GetProject(id uuid.UUID) (*models.Project, error)
	ListProjects(limit, offset int) (*PagedProjects, error)
	CreateShift(req *CreateShiftRequest) (*models.Shift, error)
	GetShift(id uuid.UUID) (*models.Shift, error)
	ListShifts(limit, offset int) (*PagedShifts, error)
}
