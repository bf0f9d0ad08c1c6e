package service_test

import (
	"testing"

	"k9-duty-backend/internal/database/models"
	apperrors "k9-duty-backend/internal/errors"
	"k9-duty-backend/internal/mocks"
	"k9-duty-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

// RegistryServiceTestSuite defines the test suite for RegistryService
type RegistryServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	mockDogRepo      *mocks.MockDogRepositoryInterface
	mockProjectRepo  *mocks.MockProjectRepositoryInterface
	mockShiftRepo    *mocks.MockShiftRepositoryInterface
	registryService  *service.RegistryService
}

// SetupTest sets up the test suite
func (suite *RegistryServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockDogRepo = mocks.NewMockDogRepositoryInterface(suite.ctrl)
	suite.mockProjectRepo = mocks.NewMockProjectRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)

	suite.registryService = service.NewRegistryService(
		suite.mockEmployeeRepo,
		suite.mockDogRepo,
		suite.mockProjectRepo,
		suite.mockShiftRepo,
		validator.New(),
	)
}

// TearDownTest cleans up after each test
func (suite *RegistryServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateEmployee tests registering an employee
func (suite *RegistryServiceTestSuite) TestCreateEmployee() {
	req := &service.CreateEmployeeRequest{
		FullName:    "Noa Barak",
		BadgeNumber: "B-2210",
		Role:        models.RoleHandler,
	}

	suite.mockEmployeeRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(e *models.Employee) error {
			e.ID = uuid.New()
			return nil
		})

	employee, err := suite.registryService.CreateEmployee(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Noa Barak", employee.FullName)
	assert.True(suite.T(), employee.Active)
}

// TestCreateEmployeeInvalidRole tests rejecting an unknown role
func (suite *RegistryServiceTestSuite) TestCreateEmployeeInvalidRole() {
	req := &service.CreateEmployeeRequest{
		FullName:    "Noa Barak",
		BadgeNumber: "B-2210",
		Role:        models.EmployeeRole("janitor"),
	}

	employee, err := suite.registryService.CreateEmployee(req)

	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateEmployeeDuplicateBadge tests the badge number uniqueness check
func (suite *RegistryServiceTestSuite) TestCreateEmployeeDuplicateBadge() {
	req := &service.CreateEmployeeRequest{
		FullName:    "Noa Barak",
		BadgeNumber: "B-2210",
		Role:        models.RoleHandler,
	}

	suite.mockEmployeeRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	employee, err := suite.registryService.CreateEmployee(req)

	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestGetEmployeeNotFound tests retrieving a missing employee
func (suite *RegistryServiceTestSuite) TestGetEmployeeNotFound() {
	id := uuid.New()

	suite.mockEmployeeRepo.EXPECT().GetByID(id).Return(nil, gorm.ErrRecordNotFound)

	employee, err := suite.registryService.GetEmployee(id)

	assert.Nil(suite.T(), employee)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestListEmployeesClampsPagination tests the default page size
func (suite *RegistryServiceTestSuite) TestListEmployeesClampsPagination() {
	suite.mockEmployeeRepo.EXPECT().
		GetAll(20, 0).
		Return([]models.Employee{{BaseModel: models.BaseModel{ID: uuid.New()}}}, int64(1), nil)

	response, err := suite.registryService.ListEmployees(1000, -1)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Employees, 1)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestCreateShift tests registering a shift with wall-clock validation
func (suite *RegistryServiceTestSuite) TestCreateShift() {
	req := &service.CreateShiftRequest{
		Name:      "Night",
		StartTime: "22:00",
		EndTime:   "06:00",
	}

	suite.mockShiftRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(s *models.Shift) error {
			s.ID = uuid.New()
			return nil
		})

	shift, err := suite.registryService.CreateShift(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "22:00", shift.StartTime)
}

// TestCreateShiftRejectsMalformedTimes tests the HH:MM format check
func (suite *RegistryServiceTestSuite) TestCreateShiftRejectsMalformedTimes() {
	req := &service.CreateShiftRequest{
		Name:      "Broken",
		StartTime: "25:99",
		EndTime:   "06:00",
	}

	shift, err := suite.registryService.CreateShift(req)

	assert.Nil(suite.T(), shift)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateDog tests registering a dog
func (suite *RegistryServiceTestSuite) TestCreateDog() {
	req := &service.CreateDogRequest{Name: "Rex", Breed: "German Shepherd"}

	suite.mockDogRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(d *models.Dog) error {
			d.ID = uuid.New()
			return nil
		})

	dog, err := suite.registryService.CreateDog(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Rex", dog.Name)
}

// TestCreateProjectValidation tests the mandatory project name
func (suite *RegistryServiceTestSuite) TestCreateProjectValidation() {
	project, err := suite.registryService.CreateProject(&service.CreateProjectRequest{})

	assert.Nil(suite.T(), project)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRegistryServiceTestSuite runs the test suite
func TestRegistryServiceTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryServiceTestSuite))
}
