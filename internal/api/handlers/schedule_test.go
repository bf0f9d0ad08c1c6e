package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"k9-duty-backend/internal/database/models"
	apperrors "k9-duty-backend/internal/errors"
	"k9-duty-backend/internal/mocks"
	"k9-duty-backend/internal/service"
	"k9-duty-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ScheduleHandlerTestSuite defines the test suite for ScheduleHandler
type ScheduleHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	mockScheduleService *mocks.MockScheduleServiceInterface
	handler             *ScheduleHandler
	httpSuite           *testutils.HTTPTestSuite
	supervisorID        uuid.UUID
}

// SetupTest sets up the test suite
func (suite *ScheduleHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockScheduleService = mocks.NewMockScheduleServiceInterface(suite.ctrl)
	suite.handler = NewScheduleHandler(suite.mockScheduleService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.supervisorID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(authAs(suite.supervisorID, models.RoleSupervisor))

	schedules := v1.Group("/schedules")
	{
		schedules.POST("", suite.handler.CreateSchedule)
		schedules.GET("", suite.handler.ListSchedules)
		schedules.GET("/:id", suite.handler.GetSchedule)
		schedules.POST("/:id/items", suite.handler.AddItem)
		schedules.POST("/:id/lock", suite.handler.LockSchedule)
	}
	items := v1.Group("/schedule-items")
	{
		items.POST("/:id/present", suite.handler.MarkPresent)
		items.POST("/:id/absent", suite.handler.MarkAbsent)
		items.POST("/:id/replace", suite.handler.ReplaceHandler)
	}
}

// TearDownTest cleans up after each test
func (suite *ScheduleHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestCreateSchedule tests creating a schedule
func (suite *ScheduleHandlerTestSuite) TestCreateSchedule() {
	scheduleID := uuid.New()
	requestBody := map[string]interface{}{
		"schedule_date": "2026-03-10",
		"notes":         "Morning perimeter",
	}

	suite.mockScheduleService.EXPECT().
		CreateSchedule(gomock.Any()).
		DoAndReturn(func(req *service.CreateScheduleRequest) (*service.ScheduleResponse, error) {
			assert.Equal(suite.T(), suite.supervisorID, req.CreatedByID)
			assert.Equal(suite.T(), "2026-03-10", req.ScheduleDate.Format("2006-01-02"))
			return &service.ScheduleResponse{
				ID:           scheduleID,
				ScheduleDate: "2026-03-10",
				Status:       models.ScheduleStatusOpen,
				CreatedByID:  req.CreatedByID,
			}, nil
		}).
		Times(1)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/schedules", requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)

	var response service.ScheduleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), scheduleID, response.ID)
	assert.Equal(suite.T(), models.ScheduleStatusOpen, response.Status)
}

// TestCreateScheduleBadDate tests a malformed calendar date
func (suite *ScheduleHandlerTestSuite) TestCreateScheduleBadDate() {
	requestBody := map[string]interface{}{
		"schedule_date": "10/03/2026",
	}

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/schedules", requestBody)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestCreateScheduleConflict tests the duplicate date-and-project response
func (suite *ScheduleHandlerTestSuite) TestCreateScheduleConflict() {
	requestBody := map[string]interface{}{
		"schedule_date": "2026-03-10",
	}

	suite.mockScheduleService.EXPECT().
		CreateSchedule(gomock.Any()).
		Return(nil, apperrors.ErrScheduleExists)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/schedules", requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestGetSchedule tests retrieving a schedule
func (suite *ScheduleHandlerTestSuite) TestGetSchedule() {
	scheduleID := uuid.New()

	suite.mockScheduleService.EXPECT().
		GetSchedule(scheduleID).
		Return(&service.ScheduleResponse{
			ID:           scheduleID,
			ScheduleDate: "2026-03-10",
			Status:       models.ScheduleStatusOpen,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/schedules/%s", scheduleID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestGetScheduleNotFound tests the 404 mapping
func (suite *ScheduleHandlerTestSuite) TestGetScheduleNotFound() {
	scheduleID := uuid.New()

	suite.mockScheduleService.EXPECT().
		GetSchedule(scheduleID).
		Return(nil, apperrors.ErrScheduleNotFound)

	recorder := suite.httpSuite.MakeRequest("GET", fmt.Sprintf("/api/v1/schedules/%s", scheduleID), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestGetScheduleInvalidID tests a malformed UUID in the path
func (suite *ScheduleHandlerTestSuite) TestGetScheduleInvalidID() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/schedules/not-a-uuid", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListSchedulesRequiresDate tests the mandatory date query parameter
func (suite *ScheduleHandlerTestSuite) TestListSchedulesRequiresDate() {
	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/schedules", nil)

	assert.Equal(suite.T(), http.StatusBadRequest, recorder.Code)
}

// TestListSchedules tests listing schedules for a date
func (suite *ScheduleHandlerTestSuite) TestListSchedules() {
	suite.mockScheduleService.EXPECT().
		GetSchedulesByDate(gomock.Any()).
		Return([]service.ScheduleResponse{
			{ID: uuid.New(), ScheduleDate: "2026-03-10"},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/schedules?date=2026-03-10", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response []service.ScheduleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Len(suite.T(), response, 1)
}

// TestAddItem tests adding a handler assignment
func (suite *ScheduleHandlerTestSuite) TestAddItem() {
	scheduleID := uuid.New()
	handlerID := uuid.New()
	requestBody := map[string]interface{}{
		"handler_id": handlerID.String(),
	}

	suite.mockScheduleService.EXPECT().
		AddItem(gomock.Any()).
		DoAndReturn(func(req *service.AddItemRequest) (*service.ScheduleItemResponse, error) {
			assert.Equal(suite.T(), scheduleID, req.ScheduleID)
			assert.Equal(suite.T(), handlerID, req.HandlerID)
			return &service.ScheduleItemResponse{
				ID:         uuid.New(),
				ScheduleID: scheduleID,
				HandlerID:  handlerID,
				Status:     models.ItemStatusPlanned,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedules/%s/items", scheduleID), requestBody)

	assert.Equal(suite.T(), http.StatusCreated, recorder.Code)
}

// TestAddItemDuplicate tests the duplicate handler response
func (suite *ScheduleHandlerTestSuite) TestAddItemDuplicate() {
	scheduleID := uuid.New()
	requestBody := map[string]interface{}{
		"handler_id": uuid.New().String(),
	}

	suite.mockScheduleService.EXPECT().
		AddItem(gomock.Any()).
		Return(nil, apperrors.ErrScheduleItemExists)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedules/%s/items", scheduleID), requestBody)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestLockSchedule tests locking a schedule
func (suite *ScheduleHandlerTestSuite) TestLockSchedule() {
	scheduleID := uuid.New()

	suite.mockScheduleService.EXPECT().
		LockSchedule(scheduleID).
		Return(&service.ScheduleResponse{
			ID:     scheduleID,
			Status: models.ScheduleStatusLocked,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedules/%s/lock", scheduleID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.ScheduleResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), models.ScheduleStatusLocked, response.Status)
}

// TestMarkPresent tests marking a handler present
func (suite *ScheduleHandlerTestSuite) TestMarkPresent() {
	itemID := uuid.New()

	suite.mockScheduleService.EXPECT().
		MarkPresent(itemID).
		Return(&service.ScheduleItemResponse{ID: itemID, Status: models.ItemStatusPresent}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedule-items/%s/present", itemID), nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestMarkPresentLockedSchedule tests the invalid-state mapping
func (suite *ScheduleHandlerTestSuite) TestMarkPresentLockedSchedule() {
	itemID := uuid.New()

	suite.mockScheduleService.EXPECT().
		MarkPresent(itemID).
		Return(nil, apperrors.NewInvalidStateError("daily schedule", uuid.New().String(), "locked", "mark present"))

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedule-items/%s/present", itemID), nil)

	assert.Equal(suite.T(), http.StatusConflict, recorder.Code)
}

// TestMarkAbsent tests marking a handler absent
func (suite *ScheduleHandlerTestSuite) TestMarkAbsent() {
	itemID := uuid.New()
	requestBody := map[string]interface{}{
		"reason": "sick leave",
	}

	suite.mockScheduleService.EXPECT().
		MarkAbsent(itemID, gomock.Any()).
		DoAndReturn(func(id uuid.UUID, req *service.MarkAbsentRequest) (*service.ScheduleItemResponse, error) {
			assert.Equal(suite.T(), "sick leave", req.Reason)
			return &service.ScheduleItemResponse{
				ID:            itemID,
				Status:        models.ItemStatusAbsent,
				AbsenceReason: req.Reason,
			}, nil
		})

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedule-items/%s/absent", itemID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestReplaceHandler tests replacing an absent handler
func (suite *ScheduleHandlerTestSuite) TestReplaceHandler() {
	itemID := uuid.New()
	replacementID := uuid.New()
	requestBody := map[string]interface{}{
		"replacement_handler_id": replacementID.String(),
		"reason":                 "original handler sick",
	}

	suite.mockScheduleService.EXPECT().
		ReplaceHandler(itemID, gomock.Any()).
		Return(&service.ScheduleItemResponse{
			ID:                   itemID,
			Status:               models.ItemStatusReplaced,
			ReplacementHandlerID: &replacementID,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/schedule-items/%s/replace", itemID), requestBody)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestScheduleHandlerTestSuite runs the test suite
func TestScheduleHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ScheduleHandlerTestSuite))
}
