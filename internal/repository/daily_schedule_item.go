package repository

import (
	"errors"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrScheduleNotOpen is returned when an item insert finds the owning
// schedule locked
var ErrScheduleNotOpen = errors.New("schedule is not open")

// DailyScheduleItemRepository handles database operations for schedule items
type DailyScheduleItemRepository struct {
	db *gorm.DB
}

// NewDailyScheduleItemRepository creates a new schedule item repository
func NewDailyScheduleItemRepository(db *gorm.DB) *DailyScheduleItemRepository {
	return &DailyScheduleItemRepository{db: db}
}

// Create creates a new schedule item. A violation of the composite
// (schedule_id, handler_id) unique index surfaces as gorm.ErrDuplicatedKey.
func (r *DailyScheduleItemRepository) Create(item *models.DailyScheduleItem) error {
	return r.db.Create(item).Error
}

// CreateInOpenSchedule inserts an item after taking a row lock on the owning
// schedule, so an insert racing a concurrent lockSchedule resolves cleanly:
// the insert either commits before the lock or fails with ErrScheduleNotOpen.
// Duplicate (schedule, handler) pairs surface as gorm.ErrDuplicatedKey and a
// missing schedule as gorm.ErrRecordNotFound.
func (r *DailyScheduleItemRepository) CreateInOpenSchedule(item *models.DailyScheduleItem) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var schedule models.DailySchedule
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&schedule, "id = ?", item.ScheduleID).Error; err != nil {
			return err
		}
		if schedule.Status != models.ScheduleStatusOpen {
			return ErrScheduleNotOpen
		}
		return tx.Create(item).Error
	})
}

// GetByID retrieves a schedule item by ID
func (r *DailyScheduleItemRepository) GetByID(id uuid.UUID) (*models.DailyScheduleItem, error) {
	var item models.DailyScheduleItem
	err := r.db.First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetWithSchedule retrieves a schedule item with its owning schedule, shift
// and handler preloaded
func (r *DailyScheduleItemRepository) GetWithSchedule(id uuid.UUID) (*models.DailyScheduleItem, error) {
	var item models.DailyScheduleItem
	err := r.db.Preload("Schedule").Preload("Shift").Preload("Handler").
		First(&item, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// GetByScheduleID retrieves all items of a schedule
func (r *DailyScheduleItemRepository) GetByScheduleID(scheduleID uuid.UUID) ([]models.DailyScheduleItem, error) {
	var items []models.DailyScheduleItem
	err := r.db.Where("schedule_id = ?", scheduleID).Order("created_at ASC").Find(&items).Error
	return items, err
}

// openScheduleSubquery restricts an item update to items whose owning
// schedule is still open, so a concurrent lock and a concurrent item edit
// resolve to exactly one winner inside a single UPDATE statement.
func (r *DailyScheduleItemRepository) openScheduleSubquery() *gorm.DB {
	return r.db.Model(&models.DailySchedule{}).Select("id").Where("status = ?", models.ScheduleStatusOpen)
}

// MarkPresent transitions an item from planned to present. Returns rows
// affected: 0 means the item was missing, not planned, or its schedule is
// locked.
func (r *DailyScheduleItemRepository) MarkPresent(id uuid.UUID) (int64, error) {
	result := r.db.Model(&models.DailyScheduleItem{}).
		Where("id = ? AND status = ?", id, models.ItemStatusPlanned).
		Where("schedule_id IN (?)", r.openScheduleSubquery()).
		Update("status", models.ItemStatusPresent)
	return result.RowsAffected, result.Error
}

// MarkAbsent transitions an item from planned to absent, recording the reason
func (r *DailyScheduleItemRepository) MarkAbsent(id uuid.UUID, reason string) (int64, error) {
	result := r.db.Model(&models.DailyScheduleItem{}).
		Where("id = ? AND status = ?", id, models.ItemStatusPlanned).
		Where("schedule_id IN (?)", r.openScheduleSubquery()).
		Updates(map[string]interface{}{
			"status":         models.ItemStatusAbsent,
			"absence_reason": reason,
		})
	return result.RowsAffected, result.Error
}

// Replace transitions an item from absent to replaced, recording the
// replacement handler and notes
func (r *DailyScheduleItemRepository) Replace(id uuid.UUID, replacementHandlerID uuid.UUID, reason, notes string) (int64, error) {
	updates := map[string]interface{}{
		"status":                 models.ItemStatusReplaced,
		"replacement_handler_id": replacementHandlerID,
		"replacement_notes":      notes,
	}
	if reason != "" {
		updates["absence_reason"] = reason
	}
	result := r.db.Model(&models.DailyScheduleItem{}).
		Where("id = ? AND status = ?", id, models.ItemStatusAbsent).
		Where("schedule_id IN (?)", r.openScheduleSubquery()).
		Updates(updates)
	return result.RowsAffected, result.Error
}
