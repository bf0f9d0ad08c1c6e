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

// ReportService owns the handler report lifecycle: draft, submitted,
// approved, rejected. Submission is gated by the deadline policy; review
// transitions are guarded updates so a concurrent approve/reject pair
// resolves to exactly one winner. Rejected is terminal; a handler starts a
// fresh report for the same duty instead of reviving a rejected one.
type ReportService struct {
	repo         repository.HandlerReportRepositoryInterface
	itemRepo     repository.DailyScheduleItemRepositoryInterface
	employeeRepo repository.EmployeeRepositoryInterface
	dogRepo      repository.DogRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	notifier     Notifier
	validator    *validator.Validate
	clock        Clock
	deadlines    *DeadlinePolicy
}

// NewReportService creates a new report service
func NewReportService(
	repo repository.HandlerReportRepositoryInterface,
	itemRepo repository.DailyScheduleItemRepositoryInterface,
	employeeRepo repository.EmployeeRepositoryInterface,
	dogRepo repository.DogRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	notifier Notifier,
	validator *validator.Validate,
	clock Clock,
	deadlines *DeadlinePolicy,
) *ReportService {
	return &ReportService{
		repo:         repo,
		itemRepo:     itemRepo,
		employeeRepo: employeeRepo,
		dogRepo:      dogRepo,
		shiftRepo:    shiftRepo,
		notifier:     notifier,
		validator:    validator,
		clock:        clock,
		deadlines:    deadlines,
	}
}

// CreateReportRequest represents the request to open a draft report
type CreateReportRequest struct {
	ReportDate     time.Time  `json:"report_date" validate:"required"`
	HandlerID      uuid.UUID  `json:"handler_id" validate:"required"`
	DogID          uuid.UUID  `json:"dog_id" validate:"required"`
	ScheduleItemID *uuid.UUID `json:"schedule_item_id,omitempty"`
	ProjectID      *uuid.UUID `json:"project_id,omitempty"`
	ShiftID        *uuid.UUID `json:"shift_id,omitempty"`
	Location       string     `json:"location,omitempty" validate:"max=200"`
}

// AddHealthEntryRequest represents the request to add a health entry
type AddHealthEntryRequest struct {
	Temperature float64 `json:"temperature,omitempty"`
	Appetite    string  `json:"appetite,omitempty" validate:"max=40"`
	Notes       string  `json:"notes,omitempty"`
}

// AddTrainingEntryRequest represents the request to add a training entry
type AddTrainingEntryRequest struct {
	Discipline      string `json:"discipline" validate:"required,max=60"`
	DurationMinutes int    `json:"duration_minutes" validate:"min=0"`
	Performance     string `json:"performance,omitempty" validate:"max=40"`
	Notes           string `json:"notes,omitempty"`
}

// AddCareEntryRequest represents the request to add a care entry
type AddCareEntryRequest struct {
	Activity string `json:"activity" validate:"required,max=60"`
	Notes    string `json:"notes,omitempty"`
}

// AddBehaviorEntryRequest represents the request to add a behavior entry
type AddBehaviorEntryRequest struct {
	Category    string `json:"category" validate:"required,max=60"`
	Severity    string `json:"severity,omitempty" validate:"max=20"`
	Description string `json:"description,omitempty"`
}

// AddIncidentEntryRequest represents the request to add an incident entry
type AddIncidentEntryRequest struct {
	OccurredAt  time.Time `json:"occurred_at" validate:"required"`
	Severity    string    `json:"severity,omitempty" validate:"max=20"`
	Description string    `json:"description" validate:"required"`
	ActionTaken string    `json:"action_taken,omitempty"`
}

// AddAttachmentRequest represents the request to reference an uploaded file
type AddAttachmentRequest struct {
	FileName    string `json:"file_name" validate:"required,max=255"`
	ContentType string `json:"content_type,omitempty" validate:"max=100"`
	SizeBytes   int64  `json:"size_bytes" validate:"min=0"`
	StorageKey  string `json:"storage_key" validate:"required,max=255"`
}

// ReviewRequest represents an approve or reject decision on a submitted report
type ReviewRequest struct {
	ReviewerID uuid.UUID `json:"reviewer_id" validate:"required"`
	Notes      string    `json:"notes,omitempty"`
}

// ReportResponse represents a handler report in API responses
type ReportResponse struct {
	ID             uuid.UUID                 `json:"id"`
	ReportDate     string                    `json:"report_date"`
	HandlerID      uuid.UUID                 `json:"handler_id"`
	DogID          uuid.UUID                 `json:"dog_id"`
	ScheduleItemID *uuid.UUID                `json:"schedule_item_id,omitempty"`
	ProjectID      *uuid.UUID                `json:"project_id,omitempty"`
	ShiftID        *uuid.UUID                `json:"shift_id,omitempty"`
	Status         models.ReportStatus       `json:"status"`
	Location       string                    `json:"location,omitempty"`
	SubmittedAt    *time.Time                `json:"submitted_at,omitempty"`
	ReviewedByID   *uuid.UUID                `json:"reviewed_by_id,omitempty"`
	ReviewedAt     *time.Time                `json:"reviewed_at,omitempty"`
	ReviewNotes    string                    `json:"review_notes,omitempty"`
	HealthEntries  []models.HealthEntry      `json:"health_entries,omitempty"`
	Training       []models.TrainingEntry    `json:"training_entries,omitempty"`
	CareEntries    []models.CareEntry        `json:"care_entries,omitempty"`
	Behavior       []models.BehaviorEntry    `json:"behavior_entries,omitempty"`
	Incidents      []models.IncidentEntry    `json:"incident_entries,omitempty"`
	Attachments    []models.ReportAttachment `json:"attachments,omitempty"`
	CreatedAt      string                    `json:"created_at"`
	UpdatedAt      string                    `json:"updated_at"`
}

// ReportListResponse represents a paginated list of reports
type ReportListResponse struct {
	Reports []ReportResponse `json:"reports"`
	Total   int64            `json:"total"`
	Limit   int              `json:"limit"`
	Offset  int              `json:"offset"`
}

// CreateReport opens a draft report. When the report is tied to a schedule
// item, the item must belong to the reporting handler, and the report
// inherits the item's shift and the schedule's project unless the request
// overrides them. At most one live report may exist per (handler, item); the
// partial unique index closes the concurrent-create race.
func (s *ReportService) CreateReport(req *CreateReportRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.employeeRepo.GetByID(req.HandlerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify handler: %w", err)
	}

	if _, err := s.dogRepo.GetByID(req.DogID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to verify dog: %w", err)
	}

	report := &models.HandlerReport{
		ReportDate:     req.ReportDate,
		HandlerID:      req.HandlerID,
		DogID:          req.DogID,
		ScheduleItemID: req.ScheduleItemID,
		ProjectID:      req.ProjectID,
		ShiftID:        req.ShiftID,
		Status:         models.ReportStatusDraft,
		Location:       req.Location,
	}

	if req.ScheduleItemID != nil {
		item, err := s.itemRepo.GetWithSchedule(*req.ScheduleItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, apperrors.ErrScheduleItemNotFound
			}
			return nil, fmt.Errorf("failed to verify schedule item: %w", err)
		}
		if item.HandlerID != req.HandlerID {
			return nil, apperrors.NewValidationError("schedule_item_id",
				"schedule item is assigned to a different handler")
		}
		if report.ShiftID == nil {
			report.ShiftID = item.ShiftID
		}
		if report.ProjectID == nil {
			report.ProjectID = item.Schedule.ProjectID
		}
	}

	if err := s.repo.Create(report); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.ErrLiveReportExists
		}
		return nil, fmt.Errorf("failed to create report: %w", err)
	}

	return s.toResponse(report), nil
}

// AddHealthEntry adds a health entry to a draft or submitted report
func (s *ReportService) AddHealthEntry(reportID uuid.UUID, req *AddHealthEntryRequest) (*models.HealthEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add health entry"); err != nil {
		return nil, err
	}
	entry := &models.HealthEntry{
		ReportID:    reportID,
		Temperature: req.Temperature,
		Appetite:    req.Appetite,
		Notes:       req.Notes,
	}
	if err := s.repo.AddHealthEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to add health entry: %w", err)
	}
	return entry, nil
}

// AddTrainingEntry adds a training entry to a draft or submitted report
func (s *ReportService) AddTrainingEntry(reportID uuid.UUID, req *AddTrainingEntryRequest) (*models.TrainingEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add training entry"); err != nil {
		return nil, err
	}
	entry := &models.TrainingEntry{
		ReportID:        reportID,
		Discipline:      req.Discipline,
		DurationMinutes: req.DurationMinutes,
		Performance:     req.Performance,
		Notes:           req.Notes,
	}
	if err := s.repo.AddTrainingEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to add training entry: %w", err)
	}
	return entry, nil
}

// AddCareEntry adds a care entry to a draft or submitted report
func (s *ReportService) AddCareEntry(reportID uuid.UUID, req *AddCareEntryRequest) (*models.CareEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add care entry"); err != nil {
		return nil, err
	}
	entry := &models.CareEntry{
		ReportID: reportID,
		Activity: req.Activity,
		Notes:    req.Notes,
	}
	if err := s.repo.AddCareEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to add care entry: %w", err)
	}
	return entry, nil
}

// AddBehaviorEntry adds a behavior entry to a draft or submitted report
func (s *ReportService) AddBehaviorEntry(reportID uuid.UUID, req *AddBehaviorEntryRequest) (*models.BehaviorEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add behavior entry"); err != nil {
		return nil, err
	}
	entry := &models.BehaviorEntry{
		ReportID:    reportID,
		Category:    req.Category,
		Severity:    req.Severity,
		Description: req.Description,
	}
	if err := s.repo.AddBehaviorEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to add behavior entry: %w", err)
	}
	return entry, nil
}

// AddIncidentEntry adds an incident entry to a draft or submitted report
func (s *ReportService) AddIncidentEntry(reportID uuid.UUID, req *AddIncidentEntryRequest) (*models.IncidentEntry, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add incident entry"); err != nil {
		return nil, err
	}
	entry := &models.IncidentEntry{
		ReportID:    reportID,
		OccurredAt:  req.OccurredAt,
		Severity:    req.Severity,
		Description: req.Description,
		ActionTaken: req.ActionTaken,
	}
	if err := s.repo.AddIncidentEntry(entry); err != nil {
		return nil, fmt.Errorf("failed to add incident entry: %w", err)
	}
	return entry, nil
}

// AddAttachment references an uploaded file on a draft or submitted report
func (s *ReportService) AddAttachment(reportID uuid.UUID, req *AddAttachmentRequest) (*models.ReportAttachment, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if err := s.requireMutable(reportID, "add attachment"); err != nil {
		return nil, err
	}
	attachment := &models.ReportAttachment{
		ReportID:    reportID,
		FileName:    req.FileName,
		ContentType: req.ContentType,
		SizeBytes:   req.SizeBytes,
		StorageKey:  req.StorageKey,
	}
	if err := s.repo.AddAttachment(attachment); err != nil {
		return nil, fmt.Errorf("failed to add attachment: %w", err)
	}
	return attachment, nil
}

// CanSubmit reports whether the submission window for a report is still open
// at the current moment, with the refusal reason when it is not. The window
// itself is the duty's shift end plus the grace period, end of day when the
// duty has no shift.
func (s *ReportService) CanSubmit(reportID uuid.UUID) (bool, string, error) {
	report, err := s.getReport(reportID)
	if err != nil {
		return false, "", err
	}
	scheduleDate, shift, err := s.deadlineBasis(report)
	if err != nil {
		return false, "", err
	}
	ok, reason := s.deadlines.CanSubmit(s.clock.Now(), scheduleDate, shift)
	return ok, reason, nil
}

// SubmitReport transitions a report from draft to submitted, provided the
// submission window is still open, and notifies every active reviewer
func (s *ReportService) SubmitReport(reportID uuid.UUID) (*ReportResponse, error) {
	report, err := s.getReport(reportID)
	if err != nil {
		return nil, err
	}

	scheduleDate, shift, err := s.deadlineBasis(report)
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	if ok, _ := s.deadlines.CanSubmit(now, scheduleDate, shift); !ok {
		return nil, apperrors.NewDeadlineExceededError(s.deadlines.Deadline(scheduleDate, shift), now)
	}

	rows, err := s.repo.Submit(reportID, now)
	if err != nil {
		return nil, fmt.Errorf("failed to submit report: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyFailure(reportID, "submit")
	}

	s.notifyReviewers(report)

	return s.fetchResponse(reportID)
}

// ApproveReport transitions a submitted report to approved and notifies the
// reporting handler. A report already decided by a concurrent reviewer
// surfaces as an invalid state error.
func (s *ReportService) ApproveReport(reportID uuid.UUID, req *ReviewRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}

	if _, err := s.employeeRepo.GetByID(req.ReviewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify reviewer: %w", err)
	}

	report, err := s.getReport(reportID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Approve(reportID, req.ReviewerID, req.Notes, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to approve report: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyFailure(reportID, "approve")
	}

	s.notifier.Publish(Event{
		RecipientID: report.HandlerID,
		Type:        models.NotificationReportApproved,
		Title:       "Report approved",
		Message:     fmt.Sprintf("Your report for %s has been approved", report.ReportDate.Format("2006-01-02")),
		EntityType:  "handler_report",
		EntityID:    &report.ID,
	})

	return s.fetchResponse(reportID)
}

// RejectReport transitions a submitted report to rejected. Review notes are
// mandatory on rejection so the handler knows what to fix in a fresh report.
func (s *ReportService) RejectReport(reportID uuid.UUID, req *ReviewRequest) (*ReportResponse, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if req.Notes == "" {
		return nil, apperrors.NewValidationError("notes", "review notes are required when rejecting a report")
	}

	if _, err := s.employeeRepo.GetByID(req.ReviewerID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to verify reviewer: %w", err)
	}

	report, err := s.getReport(reportID)
	if err != nil {
		return nil, err
	}

	rows, err := s.repo.Reject(reportID, req.ReviewerID, req.Notes, s.clock.Now())
	if err != nil {
		return nil, fmt.Errorf("failed to reject report: %w", err)
	}
	if rows == 0 {
		return nil, s.classifyFailure(reportID, "reject")
	}

	s.notifier.Publish(Event{
		RecipientID: report.HandlerID,
		Type:        models.NotificationReportRejected,
		Title:       "Report rejected",
		Message:     fmt.Sprintf("Your report for %s has been rejected: %s", report.ReportDate.Format("2006-01-02"), req.Notes),
		EntityType:  "handler_report",
		EntityID:    &report.ID,
	})

	return s.fetchResponse(reportID)
}

// GetReport retrieves a report with all its sub-records
func (s *ReportService) GetReport(id uuid.UUID) (*ReportResponse, error) {
	report, err := s.repo.GetWithDetails(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return s.toResponse(report), nil
}

// ListByHandler retrieves a handler's reports, newest first
func (s *ReportService) ListByHandler(handlerID uuid.UUID, limit, offset int) (*ReportListResponse, error) {
	limit, offset = clampPage(limit, offset)
	reports, total, err := s.repo.GetByHandlerID(handlerID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return s.toListResponse(reports, total, limit, offset), nil
}

// ListByDate retrieves all reports for a calendar date
func (s *ReportService) ListByDate(date time.Time, limit, offset int) (*ReportListResponse, error) {
	limit, offset = clampPage(limit, offset)
	reports, total, err := s.repo.GetByDate(date, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}
	return s.toListResponse(reports, total, limit, offset), nil
}

// getReport loads a report, mapping a missing row to the domain error
func (s *ReportService) getReport(id uuid.UUID) (*models.HandlerReport, error) {
	report, err := s.repo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrReportNotFound
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}
	return report, nil
}

// requireMutable verifies the report exists and its sub-records are still
// editable. Approved and rejected reports are frozen.
func (s *ReportService) requireMutable(reportID uuid.UUID, operation string) error {
	report, err := s.getReport(reportID)
	if err != nil {
		return err
	}
	if report.Status != models.ReportStatusDraft && report.Status != models.ReportStatusSubmitted {
		return apperrors.NewInvalidStateError("handler report", reportID.String(),
			string(report.Status), operation)
	}
	return nil
}

// deadlineBasis resolves the schedule date and shift the deadline policy
// should apply to this report. A report tied to a schedule item uses the
// schedule's date and the item's shift; a free-standing report uses its own
// report date and shift.
func (s *ReportService) deadlineBasis(report *models.HandlerReport) (time.Time, *models.Shift, error) {
	if report.ScheduleItemID != nil {
		item, err := s.itemRepo.GetWithSchedule(*report.ScheduleItemID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return time.Time{}, nil, apperrors.ErrScheduleItemNotFound
			}
			return time.Time{}, nil, fmt.Errorf("failed to resolve schedule item: %w", err)
		}
		return item.Schedule.ScheduleDate, item.Shift, nil
	}

	var shift *models.Shift
	if report.ShiftID != nil {
		found, err := s.shiftRepo.GetByID(*report.ShiftID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return time.Time{}, nil, apperrors.ErrShiftNotFound
			}
			return time.Time{}, nil, fmt.Errorf("failed to resolve shift: %w", err)
		}
		shift = found
	}
	return report.ReportDate, shift, nil
}

// classifyFailure turns a zero-rows-affected transition into the precise
// domain error by re-reading the report
func (s *ReportService) classifyFailure(reportID uuid.UUID, transition string) error {
	report, err := s.repo.GetByID(reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperrors.ErrReportNotFound
		}
		return fmt.Errorf("failed to %s report: %w", transition, err)
	}
	return apperrors.NewInvalidStateError("handler report", reportID.String(),
		string(report.Status), transition)
}

// notifyReviewers fans a submission event out to every active supervisor and
// admin. Delivery is best effort; a lookup failure never blocks submission.
func (s *ReportService) notifyReviewers(report *models.HandlerReport) {
	reviewers, err := s.employeeRepo.GetActiveReviewers()
	if err != nil {
		return
	}
	for i := range reviewers {
		s.notifier.Publish(Event{
			RecipientID: reviewers[i].ID,
			Type:        models.NotificationReportSubmitted,
			Title:       "Report submitted for review",
			Message:     fmt.Sprintf("A report for %s is awaiting review", report.ReportDate.Format("2006-01-02")),
			EntityType:  "handler_report",
			EntityID:    &report.ID,
		})
	}
}

// fetchResponse re-reads a report with details after a successful transition
func (s *ReportService) fetchResponse(id uuid.UUID) (*ReportResponse, error) {
	report, err := s.repo.GetWithDetails(id)
	if err != nil {
		return nil, fmt.Errorf("failed to reload report: %w", err)
	}
	return s.toResponse(report), nil
}

func (s *ReportService) toResponse(report *models.HandlerReport) *ReportResponse {
	return &ReportResponse{
		ID:             report.ID,
		ReportDate:     report.ReportDate.Format("2006-01-02"),
		HandlerID:      report.HandlerID,
		DogID:          report.DogID,
		ScheduleItemID: report.ScheduleItemID,
		ProjectID:      report.ProjectID,
		ShiftID:        report.ShiftID,
		Status:         report.Status,
		Location:       report.Location,
		SubmittedAt:    report.SubmittedAt,
		ReviewedByID:   report.ReviewedByID,
		ReviewedAt:     report.ReviewedAt,
		ReviewNotes:    report.ReviewNotes,
		HealthEntries:  report.HealthEntries,
		Training:       report.TrainingEntries,
		CareEntries:    report.CareEntries,
		Behavior:       report.BehaviorEntries,
		Incidents:      report.IncidentEntries,
		Attachments:    report.Attachments,
		CreatedAt:      report.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      report.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

func (s *ReportService) toListResponse(reports []models.HandlerReport, total int64, limit, offset int) *ReportListResponse {
	responses := make([]ReportResponse, len(reports))
	for i := range reports {
		responses[i] = *s.toResponse(&reports[i])
	}
	return &ReportListResponse{
		Reports: responses,
		Total:   total,
		Limit:   limit,
		Offset:  offset,
	}
}
