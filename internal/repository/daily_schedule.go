package repository

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// DailyScheduleRepository handles database operations for daily schedules
type DailyScheduleRepository struct {
	db *gorm.DB
}

// NewDailyScheduleRepository creates a new daily schedule repository
func NewDailyScheduleRepository(db *gorm.DB) *DailyScheduleRepository {
	return &DailyScheduleRepository{db: db}
}

// Create creates a new daily schedule
func (r *DailyScheduleRepository) Create(schedule *models.DailySchedule) error {
	return r.db.Create(schedule).Error
}

// GetByID retrieves a daily schedule by ID
func (r *DailyScheduleRepository) GetByID(id uuid.UUID) (*models.DailySchedule, error) {
	var schedule models.DailySchedule
	err := r.db.First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetWithItems retrieves a daily schedule with its items preloaded
func (r *DailyScheduleRepository) GetWithItems(id uuid.UUID) (*models.DailySchedule, error) {
	var schedule models.DailySchedule
	err := r.db.Preload("Items").Preload("Items.Handler").Preload("Items.Dog").Preload("Items.Shift").
		First(&schedule, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &schedule, nil
}

// GetByDate retrieves all daily schedules for a calendar date
func (r *DailyScheduleRepository) GetByDate(date time.Time) ([]models.DailySchedule, error) {
	var schedules []models.DailySchedule
	err := r.db.Where("schedule_date = ?", date.Format("2006-01-02")).
		Order("created_at ASC").Find(&schedules).Error
	return schedules, err
}

// ExistsForDateProject reports whether a schedule already exists for the
// given date and project scope (nil project means the unscoped schedule)
func (r *DailyScheduleRepository) ExistsForDateProject(date time.Time, projectID *uuid.UUID) (bool, error) {
	query := r.db.Model(&models.DailySchedule{}).Where("schedule_date = ?", date.Format("2006-01-02"))
	if projectID == nil {
		query = query.Where("project_id IS NULL")
	} else {
		query = query.Where("project_id = ?", *projectID)
	}

	var count int64
	err := query.Count(&count).Error
	return count > 0, err
}

// FindOpenDatedOnOrBefore retrieves schedules dated on or before the given
// date that are still open. Locking failures from a previous auto-lock run
// leave schedules older than yesterday open; including them makes the next
// run the retry.
func (r *DailyScheduleRepository) FindOpenDatedOnOrBefore(date time.Time) ([]models.DailySchedule, error) {
	var schedules []models.DailySchedule
	err := r.db.Where("schedule_date <= ? AND status = ?", date.Format("2006-01-02"), models.ScheduleStatusOpen).
		Order("schedule_date ASC").Find(&schedules).Error
	return schedules, err
}

// Lock transitions a schedule from open to locked as a single guarded UPDATE.
// Returns the number of rows affected: 1 when this caller won the transition,
// 0 when the schedule was missing or already locked.
func (r *DailyScheduleRepository) Lock(id uuid.UUID, lockedAt time.Time) (int64, error) {
	result := r.db.Model(&models.DailySchedule{}).
		Where("id = ? AND status = ?", id, models.ScheduleStatusOpen).
		Updates(map[string]interface{}{
			"status":    models.ScheduleStatusLocked,
			"locked_at": lockedAt,
		})
	return result.RowsAffected, result.Error
}
