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

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl                    *gomock.Controller
	mockNotificationService *mocks.MockNotificationServiceInterface
	handler                 *NotificationHandler
	httpSuite               *testutils.HTTPTestSuite
	recipientID             uuid.UUID
}

// SetupTest sets up the test suite
func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockNotificationService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.handler = NewNotificationHandler(suite.mockNotificationService)
	suite.httpSuite = testutils.SetupHTTPTest()
	suite.recipientID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.Use(authAs(suite.recipientID, models.RoleHandler))

	notifications := v1.Group("/notifications")
	{
		notifications.GET("", suite.handler.ListNotifications)
		notifications.GET("/unread", suite.handler.ListUnread)
		notifications.GET("/unread/count", suite.handler.UnreadCount)
		notifications.POST("/:id/read", suite.handler.MarkRead)
		notifications.POST("/read-all", suite.handler.MarkAllRead)
	}
}

// TearDownTest cleans up after each test
func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

// TestListNotifications tests the paginated listing scoped to the caller
func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.mockNotificationService.EXPECT().
		ListAll(suite.recipientID, 20, 0).
		Return(&service.NotificationListResponse{
			Notifications: []service.NotificationResponse{
				{ID: uuid.New(), RecipientID: suite.recipientID, Type: models.NotificationDutyAssigned},
			},
			Total: 1,
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response service.NotificationListResponse
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), int64(1), response.Total)
}

// TestListUnread tests the unread listing
func (suite *NotificationHandlerTestSuite) TestListUnread() {
	suite.mockNotificationService.EXPECT().
		ListUnread(suite.recipientID, 5).
		Return([]service.NotificationResponse{
			{ID: uuid.New(), RecipientID: suite.recipientID},
		}, nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications/unread?limit=5", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)
}

// TestUnreadCount tests the unread counter
func (suite *NotificationHandlerTestSuite) TestUnreadCount() {
	suite.mockNotificationService.EXPECT().
		UnreadCount(suite.recipientID).
		Return(int64(4), nil)

	recorder := suite.httpSuite.MakeRequest("GET", "/api/v1/notifications/unread/count", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(4), response["count"])
}

// TestMarkRead tests flagging a notification as read
func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	suite.mockNotificationService.EXPECT().MarkRead(id).Return(nil)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/notifications/%s/read", id), nil)

	assert.Equal(suite.T(), http.StatusNoContent, recorder.Code)
}

// TestMarkReadNotFound tests reading a nonexistent notification
func (suite *NotificationHandlerTestSuite) TestMarkReadNotFound() {
	id := uuid.New()

	suite.mockNotificationService.EXPECT().MarkRead(id).Return(apperrors.ErrNotificationNotFound)

	recorder := suite.httpSuite.MakeRequest("POST", fmt.Sprintf("/api/v1/notifications/%s/read", id), nil)

	assert.Equal(suite.T(), http.StatusNotFound, recorder.Code)
}

// TestMarkAllRead tests the bulk read flag
func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.mockNotificationService.EXPECT().
		MarkAllRead(suite.recipientID).
		Return(int64(6), nil)

	recorder := suite.httpSuite.MakeRequest("POST", "/api/v1/notifications/read-all", nil)

	assert.Equal(suite.T(), http.StatusOK, recorder.Code)

	var response map[string]interface{}
	testutils.ParseJSONResponse(suite.T(), recorder, &response)
	assert.Equal(suite.T(), float64(6), response["marked"])
}

// TestNotificationHandlerTestSuite runs the test suite
func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
