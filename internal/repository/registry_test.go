//go:build integration
// +build integration

package repository

import (
	"errors"
	"testing"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RegistryRepositoryTestSuite tests the employee, dog, project and shift
// registries
type RegistryRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	employees     *EmployeeRepository
	dogs          *DogRepository
	shifts        *ShiftRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *RegistryRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.employees = NewEmployeeRepository(suite.baseTestSuite.DB)
	suite.dogs = NewDogRepository(suite.baseTestSuite.DB)
	suite.shifts = NewShiftRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *RegistryRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *RegistryRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *RegistryRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestBadgeNumberIsUnique tests the badge number unique index
func (suite *RegistryRepositoryTestSuite) TestBadgeNumberIsUnique() {
	employee := suite.factories.Employee.Create()
	suite.NoError(suite.employees.Create(employee))

	duplicate := suite.factories.Employee.Create()
	duplicate.BadgeNumber = employee.BadgeNumber
	err := suite.employees.Create(duplicate)

	suite.True(errors.Is(err, gorm.ErrDuplicatedKey))
}

// TestGetActiveReviewers tests that only active supervisors and admins are
// returned
func (suite *RegistryRepositoryTestSuite) TestGetActiveReviewers() {
	handler := suite.factories.Employee.Create()
	suite.NoError(suite.employees.Create(handler))

	supervisor := suite.factories.Employee.WithRole(models.RoleSupervisor)
	suite.NoError(suite.employees.Create(supervisor))

	admin := suite.factories.Employee.WithRole(models.RoleAdmin)
	suite.NoError(suite.employees.Create(admin))

	inactive := suite.factories.Employee.WithRole(models.RoleSupervisor)
	inactive.Active = false
	suite.NoError(suite.employees.Create(inactive))

	reviewers, err := suite.employees.GetActiveReviewers()

	suite.NoError(err)
	suite.Len(reviewers, 2)
	for _, reviewer := range reviewers {
		suite.True(reviewer.Role.CanReview())
		suite.True(reviewer.Active)
	}
}

// TestGetAllEmployeesPagination tests limit and offset on the listing
func (suite *RegistryRepositoryTestSuite) TestGetAllEmployeesPagination() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.employees.Create(suite.factories.Employee.Create()))
	}

	employees, total, err := suite.employees.GetAll(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(employees, 2)
}

// TestCreateAndGetDog tests the dog registry round trip
func (suite *RegistryRepositoryTestSuite) TestCreateAndGetDog() {
	dog := suite.factories.Dog.Create()
	suite.NoError(suite.dogs.Create(dog))

	loaded, err := suite.dogs.GetByID(dog.ID)

	suite.NoError(err)
	suite.Equal(dog.Name, loaded.Name)
}

// TestCreateAndListShifts tests the shift registry round trip
func (suite *RegistryRepositoryTestSuite) TestCreateAndListShifts() {
	day := suite.factories.Shift.Create()
	suite.NoError(suite.shifts.Create(day))
	night := suite.factories.Shift.Night()
	suite.NoError(suite.shifts.Create(night))

	shifts, total, err := suite.shifts.GetAll(20, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(shifts, 2)
}

// TestRegistryRepositoryTestSuite runs the test suite
func TestRegistryRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RegistryRepositoryTestSuite))
}
