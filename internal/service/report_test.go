package service_test

import (
	"testing"
	"time"

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

// ReportServiceTestSuite defines the test suite for ReportService
type ReportServiceTestSuite struct {
	suite.Suite
	ctrl             *gomock.Controller
	mockReportRepo   *mocks.MockHandlerReportRepositoryInterface
	mockItemRepo     *mocks.MockDailyScheduleItemRepositoryInterface
	mockEmployeeRepo *mocks.MockEmployeeRepositoryInterface
	mockDogRepo      *mocks.MockDogRepositoryInterface
	mockShiftRepo    *mocks.MockShiftRepositoryInterface
	notifier         *recordingNotifier
	clock            fixedClock
	reportService    *service.ReportService

	handler    *models.Employee
	dog        *models.Dog
	reportDate time.Time
}

// SetupTest sets up the test suite
func (suite *ReportServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockReportRepo = mocks.NewMockHandlerReportRepositoryInterface(suite.ctrl)
	suite.mockItemRepo = mocks.NewMockDailyScheduleItemRepositoryInterface(suite.ctrl)
	suite.mockEmployeeRepo = mocks.NewMockEmployeeRepositoryInterface(suite.ctrl)
	suite.mockDogRepo = mocks.NewMockDogRepositoryInterface(suite.ctrl)
	suite.mockShiftRepo = mocks.NewMockShiftRepositoryInterface(suite.ctrl)
	suite.notifier = &recordingNotifier{}

	suite.reportDate = time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC)
	// Mid-morning on the report date, well inside every submission window
	suite.clock = fixedClock{now: time.Date(2026, 3, 10, 10, 0, 0, 0, time.UTC)}

	suite.reportService = service.NewReportService(
		suite.mockReportRepo,
		suite.mockItemRepo,
		suite.mockEmployeeRepo,
		suite.mockDogRepo,
		suite.mockShiftRepo,
		suite.notifier,
		validator.New(),
		suite.clock,
		service.NewDeadlinePolicy(4*time.Hour, time.UTC),
	)

	suite.handler = &models.Employee{
		BaseModel:   models.BaseModel{ID: uuid.New()},
		FullName:    "Noa Barak",
		BadgeNumber: "B-2210",
		Role:        models.RoleHandler,
		Active:      true,
	}
	suite.dog = &models.Dog{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Rex",
	}
}

// TearDownTest cleans up after each test
func (suite *ReportServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ReportServiceTestSuite) draftReport() *models.HandlerReport {
	return &models.HandlerReport{
		BaseModel:  models.BaseModel{ID: uuid.New()},
		ReportDate: suite.reportDate,
		HandlerID:  suite.handler.ID,
		DogID:      suite.dog.ID,
		Status:     models.ReportStatusDraft,
	}
}

// TestCreateReport tests opening a free-standing draft report
func (suite *ReportServiceTestSuite) TestCreateReport() {
	req := &service.CreateReportRequest{
		ReportDate: suite.reportDate,
		HandlerID:  suite.handler.ID,
		DogID:      suite.dog.ID,
		Location:   "North gate",
	}

	suite.mockEmployeeRepo.EXPECT().GetByID(suite.handler.ID).Return(suite.handler, nil)
	suite.mockDogRepo.EXPECT().GetByID(suite.dog.ID).Return(suite.dog, nil)
	suite.mockReportRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(report *models.HandlerReport) error {
			report.ID = uuid.New()
			return nil
		})

	response, err := suite.reportService.CreateReport(req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReportStatusDraft, response.Status)
	assert.Equal(suite.T(), "2026-03-10", response.ReportDate)
	assert.Equal(suite.T(), "North gate", response.Location)
}

// TestCreateReportInheritsFromScheduleItem tests shift and project
// inheritance from the duty assignment
func (suite *ReportServiceTestSuite) TestCreateReportInheritsFromScheduleItem() {
	itemID := uuid.New()
	shiftID := uuid.New()
	projectID := uuid.New()
	req := &service.CreateReportRequest{
		ReportDate:     suite.reportDate,
		HandlerID:      suite.handler.ID,
		DogID:          suite.dog.ID,
		ScheduleItemID: &itemID,
	}

	suite.mockEmployeeRepo.EXPECT().GetByID(suite.handler.ID).Return(suite.handler, nil)
	suite.mockDogRepo.EXPECT().GetByID(suite.dog.ID).Return(suite.dog, nil)
	suite.mockItemRepo.EXPECT().
		GetWithSchedule(itemID).
		Return(&models.DailyScheduleItem{
			BaseModel: models.BaseModel{ID: itemID},
			HandlerID: suite.handler.ID,
			ShiftID:   &shiftID,
			Schedule: models.DailySchedule{
				ScheduleDate: suite.reportDate,
				ProjectID:    &projectID,
				Status:       models.ScheduleStatusOpen,
			},
		}, nil)

	var created *models.HandlerReport
	suite.mockReportRepo.EXPECT().
		Create(gomock.Any()).
		DoAndReturn(func(report *models.HandlerReport) error {
			report.ID = uuid.New()
			created = report
			return nil
		})

	_, err := suite.reportService.CreateReport(req)

	assert.NoError(suite.T(), err)
	if assert.NotNil(suite.T(), created) {
		assert.Equal(suite.T(), &shiftID, created.ShiftID)
		assert.Equal(suite.T(), &projectID, created.ProjectID)
	}
}

// TestCreateReportWrongHandlerForItem tests the item-ownership check
func (suite *ReportServiceTestSuite) TestCreateReportWrongHandlerForItem() {
	itemID := uuid.New()
	req := &service.CreateReportRequest{
		ReportDate:     suite.reportDate,
		HandlerID:      suite.handler.ID,
		DogID:          suite.dog.ID,
		ScheduleItemID: &itemID,
	}

	suite.mockEmployeeRepo.EXPECT().GetByID(suite.handler.ID).Return(suite.handler, nil)
	suite.mockDogRepo.EXPECT().GetByID(suite.dog.ID).Return(suite.dog, nil)
	suite.mockItemRepo.EXPECT().
		GetWithSchedule(itemID).
		Return(&models.DailyScheduleItem{
			BaseModel: models.BaseModel{ID: itemID},
			HandlerID: uuid.New(),
		}, nil)

	response, err := suite.reportService.CreateReport(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestCreateReportLiveReportExists tests the one-live-report invariant
func (suite *ReportServiceTestSuite) TestCreateReportLiveReportExists() {
	req := &service.CreateReportRequest{
		ReportDate: suite.reportDate,
		HandlerID:  suite.handler.ID,
		DogID:      suite.dog.ID,
	}

	suite.mockEmployeeRepo.EXPECT().GetByID(suite.handler.ID).Return(suite.handler, nil)
	suite.mockDogRepo.EXPECT().GetByID(suite.dog.ID).Return(suite.dog, nil)
	suite.mockReportRepo.EXPECT().Create(gomock.Any()).Return(gorm.ErrDuplicatedKey)

	response, err := suite.reportService.CreateReport(req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsConflict(err))
}

// TestAddHealthEntry tests adding a health entry to a draft report
func (suite *ReportServiceTestSuite) TestAddHealthEntry() {
	report := suite.draftReport()
	req := &service.AddHealthEntryRequest{Temperature: 38.4, Appetite: "normal"}

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockReportRepo.EXPECT().AddHealthEntry(gomock.Any()).Return(nil)

	entry, err := suite.reportService.AddHealthEntry(report.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), report.ID, entry.ReportID)
	assert.Equal(suite.T(), 38.4, entry.Temperature)
}

// TestAddEntryToApprovedReport tests that approved reports are frozen
func (suite *ReportServiceTestSuite) TestAddEntryToApprovedReport() {
	report := suite.draftReport()
	report.Status = models.ReportStatusApproved

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	entry, err := suite.reportService.AddCareEntry(report.ID, &service.AddCareEntryRequest{Activity: "grooming"})

	assert.Nil(suite.T(), entry)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
}

// TestAddTrainingEntryValidation tests the mandatory discipline field
func (suite *ReportServiceTestSuite) TestAddTrainingEntryValidation() {
	entry, err := suite.reportService.AddTrainingEntry(uuid.New(), &service.AddTrainingEntryRequest{})

	assert.Nil(suite.T(), entry)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestAddIncidentEntry tests adding an incident entry to a submitted report
func (suite *ReportServiceTestSuite) TestAddIncidentEntry() {
	report := suite.draftReport()
	report.Status = models.ReportStatusSubmitted
	req := &service.AddIncidentEntryRequest{
		OccurredAt:  suite.clock.Now().Add(-time.Hour),
		Severity:    "minor",
		Description: "Dog startled by forklift",
	}

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockReportRepo.EXPECT().AddIncidentEntry(gomock.Any()).Return(nil)

	entry, err := suite.reportService.AddIncidentEntry(report.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), "minor", entry.Severity)
}

// TestSubmitReport tests the draft-to-submitted transition with reviewer
// notifications
func (suite *ReportServiceTestSuite) TestSubmitReport() {
	report := suite.draftReport()
	reviewers := []models.Employee{
		{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleSupervisor, Active: true},
		{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleAdmin, Active: true},
	}

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockReportRepo.EXPECT().Submit(report.ID, suite.clock.Now()).Return(int64(1), nil)
	suite.mockEmployeeRepo.EXPECT().GetActiveReviewers().Return(reviewers, nil)
	suite.mockReportRepo.EXPECT().
		GetWithDetails(report.ID).
		DoAndReturn(func(id uuid.UUID) (*models.HandlerReport, error) {
			submitted := *report
			submitted.Status = models.ReportStatusSubmitted
			now := suite.clock.Now()
			submitted.SubmittedAt = &now
			return &submitted, nil
		})

	response, err := suite.reportService.SubmitReport(report.ID)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReportStatusSubmitted, response.Status)
	assert.Len(suite.T(), suite.notifier.events, 2)
	for _, event := range suite.notifier.events {
		assert.Equal(suite.T(), models.NotificationReportSubmitted, event.Type)
	}
}

// TestSubmitReportPastDeadline tests submission refused after the grace
// window closes
func (suite *ReportServiceTestSuite) TestSubmitReportPastDeadline() {
	report := suite.draftReport()
	shiftID := uuid.New()
	report.ShiftID = &shiftID

	// Day shift ends 16:00, grace 4h, so the window closed at 20:00
	suite.clock = fixedClock{now: time.Date(2026, 3, 10, 20, 1, 0, 0, time.UTC)}
	suite.reportService = service.NewReportService(
		suite.mockReportRepo, suite.mockItemRepo, suite.mockEmployeeRepo,
		suite.mockDogRepo, suite.mockShiftRepo, suite.notifier,
		validator.New(), suite.clock, service.NewDeadlinePolicy(4*time.Hour, time.UTC),
	)

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockShiftRepo.EXPECT().GetByID(shiftID).Return(dayShift(), nil)

	response, err := suite.reportService.SubmitReport(report.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsDeadlineExceeded(err))
	assert.Empty(suite.T(), suite.notifier.events)
}

// TestSubmitReportUsesScheduleItemDeadline tests the deadline anchored to the
// schedule's date when the report is tied to a duty assignment
func (suite *ReportServiceTestSuite) TestSubmitReportUsesScheduleItemDeadline() {
	report := suite.draftReport()
	itemID := uuid.New()
	report.ScheduleItemID = &itemID

	// The duty was a week ago even though the report claims today
	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockItemRepo.EXPECT().
		GetWithSchedule(itemID).
		Return(&models.DailyScheduleItem{
			BaseModel: models.BaseModel{ID: itemID},
			HandlerID: suite.handler.ID,
			Shift:     dayShift(),
			Schedule: models.DailySchedule{
				ScheduleDate: suite.reportDate.AddDate(0, 0, -7),
				Status:       models.ScheduleStatusLocked,
			},
		}, nil)

	response, err := suite.reportService.SubmitReport(report.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsDeadlineExceeded(err))
}

// TestSubmitAlreadySubmittedReport tests the guarded update losing to an
// earlier submission
func (suite *ReportServiceTestSuite) TestSubmitAlreadySubmittedReport() {
	report := suite.draftReport()
	report.Status = models.ReportStatusSubmitted

	gomock.InOrder(
		suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil),
		suite.mockReportRepo.EXPECT().Submit(report.ID, suite.clock.Now()).Return(int64(0), nil),
		suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil),
	)

	response, err := suite.reportService.SubmitReport(report.ID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
	assert.Empty(suite.T(), suite.notifier.events)
}

// TestCanSubmit tests the submission window probe
func (suite *ReportServiceTestSuite) TestCanSubmit() {
	report := suite.draftReport()

	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)

	ok, reason, err := suite.reportService.CanSubmit(report.ID)

	assert.NoError(suite.T(), err)
	assert.True(suite.T(), ok)
	assert.Empty(suite.T(), reason)
}

// TestApproveReport tests the submitted-to-approved transition
func (suite *ReportServiceTestSuite) TestApproveReport() {
	report := suite.draftReport()
	report.Status = models.ReportStatusSubmitted
	reviewer := &models.Employee{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Role:      models.RoleSupervisor,
		Active:    true,
	}
	req := &service.ReviewRequest{ReviewerID: reviewer.ID, Notes: "well documented"}

	suite.mockEmployeeRepo.EXPECT().GetByID(reviewer.ID).Return(reviewer, nil)
	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockReportRepo.EXPECT().
		Approve(report.ID, reviewer.ID, "well documented", suite.clock.Now()).
		Return(int64(1), nil)
	suite.mockReportRepo.EXPECT().
		GetWithDetails(report.ID).
		DoAndReturn(func(id uuid.UUID) (*models.HandlerReport, error) {
			approved := *report
			approved.Status = models.ReportStatusApproved
			approved.ReviewedByID = &reviewer.ID
			return &approved, nil
		})

	response, err := suite.reportService.ApproveReport(report.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReportStatusApproved, response.Status)
	if assert.Len(suite.T(), suite.notifier.events, 1) {
		assert.Equal(suite.T(), models.NotificationReportApproved, suite.notifier.events[0].Type)
		assert.Equal(suite.T(), suite.handler.ID, suite.notifier.events[0].RecipientID)
	}
}

// TestApproveAlreadyRejectedReport tests one winner under concurrent review
func (suite *ReportServiceTestSuite) TestApproveAlreadyRejectedReport() {
	report := suite.draftReport()
	report.Status = models.ReportStatusSubmitted
	reviewer := &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleSupervisor}
	req := &service.ReviewRequest{ReviewerID: reviewer.ID}

	rejected := *report
	rejected.Status = models.ReportStatusRejected

	suite.mockEmployeeRepo.EXPECT().GetByID(reviewer.ID).Return(reviewer, nil)
	gomock.InOrder(
		suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil),
		suite.mockReportRepo.EXPECT().
			Approve(report.ID, reviewer.ID, "", suite.clock.Now()).
			Return(int64(0), nil),
		suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(&rejected, nil),
	)

	response, err := suite.reportService.ApproveReport(report.ID, req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsInvalidState(err))
	assert.Contains(suite.T(), err.Error(), "rejected")
	assert.Empty(suite.T(), suite.notifier.events)
}

// TestRejectReportRequiresNotes tests mandatory review notes on rejection
func (suite *ReportServiceTestSuite) TestRejectReportRequiresNotes() {
	req := &service.ReviewRequest{ReviewerID: uuid.New()}

	response, err := suite.reportService.RejectReport(uuid.New(), req)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsValidation(err))
}

// TestRejectReport tests the submitted-to-rejected transition
func (suite *ReportServiceTestSuite) TestRejectReport() {
	report := suite.draftReport()
	report.Status = models.ReportStatusSubmitted
	reviewer := &models.Employee{BaseModel: models.BaseModel{ID: uuid.New()}, Role: models.RoleSupervisor}
	req := &service.ReviewRequest{ReviewerID: reviewer.ID, Notes: "missing training entries"}

	suite.mockEmployeeRepo.EXPECT().GetByID(reviewer.ID).Return(reviewer, nil)
	suite.mockReportRepo.EXPECT().GetByID(report.ID).Return(report, nil)
	suite.mockReportRepo.EXPECT().
		Reject(report.ID, reviewer.ID, "missing training entries", suite.clock.Now()).
		Return(int64(1), nil)
	suite.mockReportRepo.EXPECT().
		GetWithDetails(report.ID).
		DoAndReturn(func(id uuid.UUID) (*models.HandlerReport, error) {
			rejected := *report
			rejected.Status = models.ReportStatusRejected
			rejected.ReviewNotes = req.Notes
			return &rejected, nil
		})

	response, err := suite.reportService.RejectReport(report.ID, req)

	assert.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.ReportStatusRejected, response.Status)
	if assert.Len(suite.T(), suite.notifier.events, 1) {
		assert.Equal(suite.T(), models.NotificationReportRejected, suite.notifier.events[0].Type)
		assert.Contains(suite.T(), suite.notifier.events[0].Message, "missing training entries")
	}
}

// TestGetReportNotFound tests retrieving a nonexistent report
func (suite *ReportServiceTestSuite) TestGetReportNotFound() {
	reportID := uuid.New()

	suite.mockReportRepo.EXPECT().GetWithDetails(reportID).Return(nil, gorm.ErrRecordNotFound)

	response, err := suite.reportService.GetReport(reportID)

	assert.Nil(suite.T(), response)
	assert.True(suite.T(), apperrors.IsNotFound(err))
}

// TestListByHandler tests pagination clamping on the handler listing
func (suite *ReportServiceTestSuite) TestListByHandler() {
	reports := []models.HandlerReport{*suite.draftReport(), *suite.draftReport()}

	suite.mockReportRepo.EXPECT().
		GetByHandlerID(suite.handler.ID, 20, 0).
		Return(reports, int64(2), nil)

	response, err := suite.reportService.ListByHandler(suite.handler.ID, 0, -5)

	assert.NoError(suite.T(), err)
	assert.Len(suite.T(), response.Reports, 2)
	assert.Equal(suite.T(), int64(2), response.Total)
	assert.Equal(suite.T(), 20, response.Limit)
	assert.Equal(suite.T(), 0, response.Offset)
}

// TestReportServiceTestSuite runs the test suite
func TestReportServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportServiceTestSuite))
}
