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

// RegistryService owns the reference entities the duty workflow points at:
// employees, dogs, projects and shifts. Only the minimal create and read
// surface is exposed; schedules and reports need referents, not a full admin
// console.
type RegistryService struct {
	employeeRepo repository.EmployeeRepositoryInterface
	dogRepo      repository.DogRepositoryInterface
	projectRepo  repository.ProjectRepositoryInterface
	shiftRepo    repository.ShiftRepositoryInterface
	validator    *validator.Validate
}

// NewRegistryService creates a new registry service
func NewRegistryService(
	employeeRepo repository.EmployeeRepositoryInterface,
	dogRepo repository.DogRepositoryInterface,
	projectRepo repository.ProjectRepositoryInterface,
	shiftRepo repository.ShiftRepositoryInterface,
	validator *validator.Validate,
) *RegistryService {
	return &RegistryService{
		employeeRepo: employeeRepo,
		dogRepo:      dogRepo,
		projectRepo:  projectRepo,
		shiftRepo:    shiftRepo,
		validator:    validator,
	}
}

// CreateEmployeeRequest represents the request to register an employee
type CreateEmployeeRequest struct {
	FullName    string              `json:"full_name" validate:"required,min=1,max=100"`
	BadgeNumber string              `json:"badge_number" validate:"required,max=40"`
	Role        models.EmployeeRole `json:"role" validate:"required"`
}

// CreateDogRequest represents the request to register a dog
type CreateDogRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=60"`
	Breed string `json:"breed,omitempty" validate:"max=60"`
}

// CreateProjectRequest represents the request to register a project
type CreateProjectRequest struct {
	Name     string `json:"name" validate:"required,min=1,max=100"`
	Location string `json:"location,omitempty" validate:"max=200"`
}

// CreateShiftRequest represents the request to register a shift. Times are
// wall-clock "HH:MM" in the deployment's canonical zone.
type CreateShiftRequest struct {
	Name      string `json:"name" validate:"required,min=1,max=60"`
	StartTime string `json:"start_time" validate:"required,len=5"`
	EndTime   string `json:"end_time" validate:"required,len=5"`
}

// PagedEmployees is a paginated employee listing
type PagedEmployees struct {
	Employees []models.Employee `json:"employees"`
	Total     int64             `json:"total"`
}

// PagedDogs is a paginated dog listing
type PagedDogs struct {
	Dogs  []models.Dog `json:"dogs"`
	Total int64        `json:"total"`
}

// PagedProjects is a paginated project listing
type PagedProjects struct {
	Projects []models.Project `json:"projects"`
	Total    int64            `json:"total"`
}

// PagedShifts is a paginated shift listing
type PagedShifts struct {
	Shifts []models.Shift `json:"shifts"`
	Total  int64          `json:"total"`
}

// CreateEmployee registers an employee. Badge numbers are unique.
func (s *RegistryService) CreateEmployee(req *CreateEmployeeRequest) (*models.Employee, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !req.Role.IsValid() {
		return nil, apperrors.NewValidationError("role", fmt.Sprintf("unknown role %q", req.Role))
	}
	employee := &models.Employee{
		FullName:    req.FullName,
		BadgeNumber: req.BadgeNumber,
		Role:        req.Role,
		Active:      true,
	}
	if err := s.employeeRepo.Create(employee); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperrors.NewConflictError("employee", "badge number already registered")
		}
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return employee, nil
}

// GetEmployee retrieves an employee by ID
func (s *RegistryService) GetEmployee(id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrEmployeeNotFound
		}
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListEmployees retrieves employees with pagination
func (s *RegistryService) ListEmployees(limit, offset int) (*PagedEmployees, error) {
	limit, offset = clampPage(limit, offset)
	employees, total, err := s.employeeRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}
	return &PagedEmployees{Employees: employees, Total: total}, nil
}

// CreateDog registers a dog
func (s *RegistryService) CreateDog(req *CreateDogRequest) (*models.Dog, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	dog := &models.Dog{Name: req.Name, Breed: req.Breed, Active: true}
	if err := s.dogRepo.Create(dog); err != nil {
		return nil, fmt.Errorf("failed to create dog: %w", err)
	}
	return dog, nil
}

// GetDog retrieves a dog by ID
func (s *RegistryService) GetDog(id uuid.UUID) (*models.Dog, error) {
	dog, err := s.dogRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrDogNotFound
		}
		return nil, fmt.Errorf("failed to get dog: %w", err)
	}
	return dog, nil
}

// ListDogs retrieves dogs with pagination
func (s *RegistryService) ListDogs(limit, offset int) (*PagedDogs, error) {
	limit, offset = clampPage(limit, offset)
	dogs, total, err := s.dogRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list dogs: %w", err)
	}
	return &PagedDogs{Dogs: dogs, Total: total}, nil
}

// CreateProject registers a project
func (s *RegistryService) CreateProject(req *CreateProjectRequest) (*models.Project, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	project := &models.Project{Name: req.Name, Location: req.Location, Active: true}
	if err := s.projectRepo.Create(project); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}
	return project, nil
}

// GetProject retrieves a project by ID
func (s *RegistryService) GetProject(id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrProjectNotFound
		}
		return nil, fmt.Errorf("failed to get project: %w", err)
	}
	return project, nil
}

// ListProjects retrieves projects with pagination
func (s *RegistryService) ListProjects(limit, offset int) (*PagedProjects, error) {
	limit, offset = clampPage(limit, offset)
	projects, total, err := s.projectRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}
	return &PagedProjects{Projects: projects, Total: total}, nil
}

// CreateShift registers a shift window after checking both times parse as
// wall clocks
func (s *RegistryService) CreateShift(req *CreateShiftRequest) (*models.Shift, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, apperrors.NewValidationError("", err.Error())
	}
	if !validWallClock(req.StartTime) {
		return nil, apperrors.NewValidationError("start_time", "must be HH:MM")
	}
	if !validWallClock(req.EndTime) {
		return nil, apperrors.NewValidationError("end_time", "must be HH:MM")
	}
	shift := &models.Shift{Name: req.Name, StartTime: req.StartTime, EndTime: req.EndTime}
	if err := s.shiftRepo.Create(shift); err != nil {
		return nil, fmt.Errorf("failed to create shift: %w", err)
	}
	return shift, nil
}

// GetShift retrieves a shift by ID
func (s *RegistryService) GetShift(id uuid.UUID) (*models.Shift, error) {
	shift, err := s.shiftRepo.GetByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrShiftNotFound
		}
		return nil, fmt.Errorf("failed to get shift: %w", err)
	}
	return shift, nil
}

// ListShifts retrieves shifts with pagination
func (s *RegistryService) ListShifts(limit, offset int) (*PagedShifts, error) {
	limit, offset = clampPage(limit, offset)
	shifts, total, err := s.shiftRepo.GetAll(limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list shifts: %w", err)
	}
	return &PagedShifts{Shifts: shifts, Total: total}, nil
}

func clampPage(limit, offset int) (int, int) {
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

func validWallClock(s string) bool {
	_, err := time.Parse("15:04", s)
	return err == nil
}
