package repository

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HandlerReportRepository handles database operations for handler reports
type HandlerReportRepository struct {
	db *gorm.DB
}

// NewHandlerReportRepository creates a new handler report repository
func NewHandlerReportRepository(db *gorm.DB) *HandlerReportRepository {
	return &HandlerReportRepository{db: db}
}

// Create creates a new handler report. A violation of the partial unique
// index on live (handler_id, schedule_item_id) pairs surfaces as
// gorm.ErrDuplicatedKey, which closes the concurrent-create race.
func (r *HandlerReportRepository) Create(report *models.HandlerReport) error {
	return r.db.Create(report).Error
}

// GetByID retrieves a handler report by ID
func (r *HandlerReportRepository) GetByID(id uuid.UUID) (*models.HandlerReport, error) {
	var report models.HandlerReport
	err := r.db.First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetWithDetails retrieves a handler report with its sub-records preloaded
func (r *HandlerReportRepository) GetWithDetails(id uuid.UUID) (*models.HandlerReport, error) {
	var report models.HandlerReport
	err := r.db.
		Preload("HealthEntries").
		Preload("TrainingEntries").
		Preload("CareEntries").
		Preload("BehaviorEntries").
		Preload("IncidentEntries").
		Preload("Attachments").
		Preload("Dog").
		Preload("Handler").
		First(&report, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &report, nil
}

// GetByHandlerID retrieves reports for a handler, newest first
func (r *HandlerReportRepository) GetByHandlerID(handlerID uuid.UUID, limit, offset int) ([]models.HandlerReport, int64, error) {
	var reports []models.HandlerReport
	var total int64

	if err := r.db.Model(&models.HandlerReport{}).Where("handler_id = ?", handlerID).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("handler_id = ?", handlerID).Order("report_date DESC").
		Limit(limit).Offset(offset).Find(&reports).Error
	return reports, total, err
}

// GetByDate retrieves reports for a calendar date
func (r *HandlerReportRepository) GetByDate(date time.Time, limit, offset int) ([]models.HandlerReport, int64, error) {
	var reports []models.HandlerReport
	var total int64

	query := r.db.Model(&models.HandlerReport{}).Where("report_date = ?", date.Format("2006-01-02"))
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Where("report_date = ?", date.Format("2006-01-02")).Order("created_at ASC").
		Limit(limit).Offset(offset).Find(&reports).Error
	return reports, total, err
}

// Submit transitions a report from draft to submitted. Returns rows affected:
// 0 means the report was missing or not in draft.
func (r *HandlerReportRepository) Submit(id uuid.UUID, submittedAt time.Time) (int64, error) {
	result := r.db.Model(&models.HandlerReport{}).
		Where("id = ? AND status = ?", id, models.ReportStatusDraft).
		Updates(map[string]interface{}{
			"status":       models.ReportStatusSubmitted,
			"submitted_at": submittedAt,
		})
	return result.RowsAffected, result.Error
}

// Approve transitions a report from submitted to approved. The guarded UPDATE
// makes a concurrent approve/reject pair resolve to one winner.
func (r *HandlerReportRepository) Approve(id uuid.UUID, reviewerID uuid.UUID, notes string, reviewedAt time.Time) (int64, error) {
	result := r.db.Model(&models.HandlerReport{}).
		Where("id = ? AND status = ?", id, models.ReportStatusSubmitted).
		Updates(map[string]interface{}{
			"status":         models.ReportStatusApproved,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    reviewedAt,
			"review_notes":   notes,
		})
	return result.RowsAffected, result.Error
}

// Reject transitions a report from submitted to rejected
func (r *HandlerReportRepository) Reject(id uuid.UUID, reviewerID uuid.UUID, notes string, reviewedAt time.Time) (int64, error) {
	result := r.db.Model(&models.HandlerReport{}).
		Where("id = ? AND status = ?", id, models.ReportStatusSubmitted).
		Updates(map[string]interface{}{
			"status":         models.ReportStatusRejected,
			"reviewed_by_id": reviewerID,
			"reviewed_at":    reviewedAt,
			"review_notes":   notes,
		})
	return result.RowsAffected, result.Error
}

// AddHealthEntry attaches a health entry to a report
func (r *HandlerReportRepository) AddHealthEntry(entry *models.HealthEntry) error {
	return r.db.Create(entry).Error
}

// AddTrainingEntry attaches a training entry to a report
func (r *HandlerReportRepository) AddTrainingEntry(entry *models.TrainingEntry) error {
	return r.db.Create(entry).Error
}

// AddCareEntry attaches a care entry to a report
func (r *HandlerReportRepository) AddCareEntry(entry *models.CareEntry) error {
	return r.db.Create(entry).Error
}

// AddBehaviorEntry attaches a behavior entry to a report
func (r *HandlerReportRepository) AddBehaviorEntry(entry *models.BehaviorEntry) error {
	return r.db.Create(entry).Error
}

// AddIncidentEntry attaches an incident entry to a report
func (r *HandlerReportRepository) AddIncidentEntry(entry *models.IncidentEntry) error {
	return r.db.Create(entry).Error
}

// AddAttachment attaches a file reference to a report
func (r *HandlerReportRepository) AddAttachment(attachment *models.ReportAttachment) error {
	return r.db.Create(attachment).Error
}
