package database

import (
	"fmt"
	"time"

	"k9-duty-backend/internal/database/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type Options struct {
	LogLevel        logger.LogLevel
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
	AutoMigrate     bool
}

// Initialize opens a Postgres connection and creates the schema from GORM
// models. TranslateError is enabled so unique-index violations surface as
// gorm.ErrDuplicatedKey, which the repositories map to Conflict.
func Initialize(dsn string, opts *Options) (*gorm.DB, error) {
	// Defaults
	if opts == nil {
		opts = &Options{}
	}
	if opts.LogLevel == 0 {
		opts.LogLevel = logger.Error
	}
	if opts.MaxOpenConns == 0 {
		opts.MaxOpenConns = 20
	}
	if opts.MaxIdleConns == 0 {
		opts.MaxIdleConns = 10
	}
	if opts.ConnMaxLifetime == 0 {
		opts.ConnMaxLifetime = 30 * time.Minute
	}
	if opts.ConnMaxIdleTime == 0 {
		opts.ConnMaxIdleTime = 10 * time.Minute
	}
	if !opts.AutoMigrate {
		opts.AutoMigrate = true
	}

	// Open DB
	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(opts.LogLevel),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.SetMaxOpenConns(opts.MaxOpenConns)
		sqlDB.SetMaxIdleConns(opts.MaxIdleConns)
		sqlDB.SetConnMaxLifetime(opts.ConnMaxLifetime)
		sqlDB.SetConnMaxIdleTime(opts.ConnMaxIdleTime)
	}

	// Ensure required extension for UUID generation (used by BaseModel default gen_random_uuid())
	_ = db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error

	if opts.AutoMigrate {
		all := []interface{}{
			&models.Employee{},
			&models.Dog{},
			&models.Project{},
			&models.Shift{},
			&models.DailySchedule{},
			&models.DailyScheduleItem{},
			&models.HandlerReport{},
			&models.HealthEntry{},
			&models.TrainingEntry{},
			&models.CareEntry{},
			&models.BehaviorEntry{},
			&models.IncidentEntry{},
			&models.ReportAttachment{},
			&models.Notification{},
		}
		if err := db.AutoMigrate(all...); err != nil {
			return nil, fmt.Errorf("auto-migrate: %w", err)
		}

		// AutoMigrate cannot express a partial unique index: only reports in a
		// live status (draft/submitted/approved) count against the
		// one-report-per-(handler, schedule item) invariant, so rejected rows
		// must not block a fresh report for the same item.
		if err := db.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS uq_live_report_per_item
			ON handler_reports (handler_id, schedule_item_id)
			WHERE status IN ('draft', 'submitted', 'approved') AND schedule_item_id IS NOT NULL`).Error; err != nil {
			return nil, fmt.Errorf("create live-report index: %w", err)
		}
	}

	return db, nil
}
