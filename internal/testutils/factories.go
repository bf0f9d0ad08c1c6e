package testutils

import (
	"time"

	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
)

// FactorySet bundles all factories for integration suites
type FactorySet struct {
	Employee *EmployeeFactory
	Dog      *DogFactory
	Project  *ProjectFactory
	Shift    *ShiftFactory
	Schedule *ScheduleFactory
	Report   *ReportFactory
}

// NewFactorySet creates a fresh set of factories
func NewFactorySet() *FactorySet {
	return &FactorySet{
		Employee: NewEmployeeFactory(),
		Dog:      NewDogFactory(),
		Project:  NewProjectFactory(),
		Shift:    NewShiftFactory(),
		Schedule: NewScheduleFactory(),
		Report:   NewReportFactory(),
	}
}

// EmployeeFactory provides methods to create test Employee data
type EmployeeFactory struct{}

// NewEmployeeFactory creates a new EmployeeFactory
func NewEmployeeFactory() *EmployeeFactory {
	return &EmployeeFactory{}
}

// Create creates a handler employee with default values
func (f *EmployeeFactory) Create() *models.Employee {
	id := uuid.New()
	return &models.Employee{
		BaseModel: models.BaseModel{
			ID:        id,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		FullName:    "Test Handler",
		BadgeNumber: "B-" + id.String()[:8],
		Role:        models.RoleHandler,
		Active:      true,
	}
}

// WithRole sets a custom role
func (f *EmployeeFactory) WithRole(role models.EmployeeRole) *models.Employee {
	employee := f.Create()
	employee.Role = role
	return employee
}

// Inactive creates an inactive handler
func (f *EmployeeFactory) Inactive() *models.Employee {
	employee := f.Create()
	employee.Active = false
	return employee
}

// DogFactory provides methods to create test Dog data
type DogFactory struct{}

// NewDogFactory creates a new DogFactory
func NewDogFactory() *DogFactory {
	return &DogFactory{}
}

// Create creates a test Dog with default values
func (f *DogFactory) Create() *models.Dog {
	return &models.Dog{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:   "Rex",
		Breed:  "German Shepherd",
		Active: true,
	}
}

// ProjectFactory provides methods to create test Project data
type ProjectFactory struct{}

// NewProjectFactory creates a new ProjectFactory
func NewProjectFactory() *ProjectFactory {
	return &ProjectFactory{}
}

// Create creates a test Project with default values
func (f *ProjectFactory) Create() *models.Project {
	return &models.Project{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:     "Test Site",
		Location: "North Perimeter",
		Active:   true,
	}
}

// ShiftFactory provides methods to create test Shift data
type ShiftFactory struct{}

// NewShiftFactory creates a new ShiftFactory
func NewShiftFactory() *ShiftFactory {
	return &ShiftFactory{}
}

// Create creates a day shift, 08:00 to 16:00
func (f *ShiftFactory) Create() *models.Shift {
	return &models.Shift{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		Name:      "Day",
		StartTime: "08:00",
		EndTime:   "16:00",
	}
}

// Night creates a night shift that crosses midnight
func (f *ShiftFactory) Night() *models.Shift {
	shift := f.Create()
	shift.Name = "Night"
	shift.StartTime = "22:00"
	shift.EndTime = "06:00"
	return shift
}

// ScheduleFactory provides methods to create test DailySchedule data
type ScheduleFactory struct{}

// NewScheduleFactory creates a new ScheduleFactory
func NewScheduleFactory() *ScheduleFactory {
	return &ScheduleFactory{}
}

// Create creates an open schedule for the given date
func (f *ScheduleFactory) Create(date time.Time, createdBy uuid.UUID) *models.DailySchedule {
	return &models.DailySchedule{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ScheduleDate: date,
		Status:       models.ScheduleStatusOpen,
		CreatedByID:  createdBy,
	}
}

// Locked creates a locked schedule for the given date
func (f *ScheduleFactory) Locked(date time.Time, createdBy uuid.UUID) *models.DailySchedule {
	schedule := f.Create(date, createdBy)
	schedule.Status = models.ScheduleStatusLocked
	lockedAt := time.Now()
	schedule.LockedAt = &lockedAt
	return schedule
}

// ReportFactory provides methods to create test HandlerReport data
type ReportFactory struct{}

// NewReportFactory creates a new ReportFactory
func NewReportFactory() *ReportFactory {
	return &ReportFactory{}
}

// Create creates a draft report for the given handler and dog
func (f *ReportFactory) Create(date time.Time, handlerID, dogID uuid.UUID) *models.HandlerReport {
	return &models.HandlerReport{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		},
		ReportDate: date,
		HandlerID:  handlerID,
		DogID:      dogID,
		Status:     models.ReportStatusDraft,
	}
}

// Submitted creates a submitted report
func (f *ReportFactory) Submitted(date time.Time, handlerID, dogID uuid.UUID) *models.HandlerReport {
	report := f.Create(date, handlerID, dogID)
	report.Status = models.ReportStatusSubmitted
	submittedAt := time.Now()
	report.SubmittedAt = &submittedAt
	return report
}
