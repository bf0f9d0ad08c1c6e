package repository

import (
	"k9-duty-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// The registry repositories cover the employee/dog/project/shift collaborators
// the duty workflow references by identifier. Existence checks are the only
// business rule the workflow applies to them.

// EmployeeRepository handles database operations for employees
type EmployeeRepository struct {
	db *gorm.DB
}

// NewEmployeeRepository creates a new employee repository
func NewEmployeeRepository(db *gorm.DB) *EmployeeRepository {
	return &EmployeeRepository{db: db}
}

// Create creates a new employee
func (r *EmployeeRepository) Create(employee *models.Employee) error {
	return r.db.Create(employee).Error
}

// GetByID retrieves an employee by ID
func (r *EmployeeRepository) GetByID(id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	err := r.db.First(&employee, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &employee, nil
}

// GetAll retrieves all employees
func (r *EmployeeRepository) GetAll(limit, offset int) ([]models.Employee, int64, error) {
	var employees []models.Employee
	var total int64

	if err := r.db.Model(&models.Employee{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("full_name ASC").Limit(limit).Offset(offset).Find(&employees).Error
	return employees, total, err
}

// GetActiveReviewers retrieves active supervisors and admins, the fan-out
// targets of REPORT_SUBMITTED notifications
func (r *EmployeeRepository) GetActiveReviewers() ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.Where("active = ? AND role IN ?", true,
		[]models.EmployeeRole{models.RoleSupervisor, models.RoleAdmin}).
		Find(&employees).Error
	return employees, err
}

// DogRepository handles database operations for dogs
type DogRepository struct {
	db *gorm.DB
}

// NewDogRepository creates a new dog repository
func NewDogRepository(db *gorm.DB) *DogRepository {
	return &DogRepository{db: db}
}

// Create creates a new dog
func (r *DogRepository) Create(dog *models.Dog) error {
	return r.db.Create(dog).Error
}

// GetByID retrieves a dog by ID
func (r *DogRepository) GetByID(id uuid.UUID) (*models.Dog, error) {
	var dog models.Dog
	err := r.db.First(&dog, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &dog, nil
}

// GetAll retrieves all dogs
func (r *DogRepository) GetAll(limit, offset int) ([]models.Dog, int64, error) {
	var dogs []models.Dog
	var total int64

	if err := r.db.Model(&models.Dog{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&dogs).Error
	return dogs, total, err
}

// ProjectRepository handles database operations for projects
type ProjectRepository struct {
	db *gorm.DB
}

// NewProjectRepository creates a new project repository
func NewProjectRepository(db *gorm.DB) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// Create creates a new project
func (r *ProjectRepository) Create(project *models.Project) error {
	return r.db.Create(project).Error
}

// GetByID retrieves a project by ID
func (r *ProjectRepository) GetByID(id uuid.UUID) (*models.Project, error) {
	var project models.Project
	err := r.db.First(&project, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &project, nil
}

// GetAll retrieves all projects
func (r *ProjectRepository) GetAll(limit, offset int) ([]models.Project, int64, error) {
	var projects []models.Project
	var total int64

	if err := r.db.Model(&models.Project{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("name ASC").Limit(limit).Offset(offset).Find(&projects).Error
	return projects, total, err
}

// ShiftRepository handles database operations for shifts
type ShiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository creates a new shift repository
func NewShiftRepository(db *gorm.DB) *ShiftRepository {
	return &ShiftRepository{db: db}
}

// Create creates a new shift
func (r *ShiftRepository) Create(shift *models.Shift) error {
	return r.db.Create(shift).Error
}

// GetByID retrieves a shift by ID
func (r *ShiftRepository) GetByID(id uuid.UUID) (*models.Shift, error) {
	var shift models.Shift
	err := r.db.First(&shift, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &shift, nil
}

// GetAll retrieves all shifts
func (r *ShiftRepository) GetAll(limit, offset int) ([]models.Shift, int64, error) {
	var shifts []models.Shift
	var total int64

	if err := r.db.Model(&models.Shift{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := r.db.Order("start_time ASC").Limit(limit).Offset(offset).Find(&shifts).Error
	return shifts, total, err
}
