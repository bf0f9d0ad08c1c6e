//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"k9-duty-backend/internal/database/models"
	"k9-duty-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
)

// NotificationRepositoryTestSuite tests the NotificationRepository
type NotificationRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *NotificationRepository
	recipientID   uuid.UUID
}

// SetupSuite runs before all tests in the suite
func (suite *NotificationRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())
	suite.repo = NewNotificationRepository(suite.baseTestSuite.DB)
}

// TearDownSuite runs after all tests in the suite
func (suite *NotificationRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *NotificationRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
	suite.recipientID = uuid.New()
}

// TearDownTest runs after each test
func (suite *NotificationRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

func (suite *NotificationRepositoryTestSuite) createNotification(recipientID uuid.UUID) *models.Notification {
	notification := &models.Notification{
		RecipientID: recipientID,
		Type:        models.NotificationDutyAssigned,
		Title:       "New duty assignment",
		Message:     "You have been assigned",
	}
	suite.NoError(suite.repo.Create(notification))
	return notification
}

// TestMarkReadIsIdempotent tests that the second read affects zero rows and
// keeps the original read timestamp
func (suite *NotificationRepositoryTestSuite) TestMarkReadIsIdempotent() {
	notification := suite.createNotification(suite.recipientID)
	firstRead := time.Now().UTC().Truncate(time.Microsecond)

	rows, err := suite.repo.MarkRead(notification.ID, firstRead)
	suite.NoError(err)
	suite.Equal(int64(1), rows)

	rows, err = suite.repo.MarkRead(notification.ID, firstRead.Add(time.Hour))
	suite.NoError(err)
	suite.Equal(int64(0), rows)

	loaded, err := suite.repo.GetByID(notification.ID)
	suite.NoError(err)
	suite.True(loaded.IsRead)
	suite.WithinDuration(firstRead, *loaded.ReadAt, time.Second)
}

// TestMarkAllRead tests the bulk read flag scoped to one recipient
func (suite *NotificationRepositoryTestSuite) TestMarkAllRead() {
	suite.createNotification(suite.recipientID)
	suite.createNotification(suite.recipientID)
	other := suite.createNotification(uuid.New())

	rows, err := suite.repo.MarkAllRead(suite.recipientID, time.Now().UTC())
	suite.NoError(err)
	suite.Equal(int64(2), rows)

	count, err := suite.repo.CountUnread(suite.recipientID)
	suite.NoError(err)
	suite.Equal(int64(0), count)

	loaded, err := suite.repo.GetByID(other.ID)
	suite.NoError(err)
	suite.False(loaded.IsRead)
}

// TestListUnread tests the unread listing
func (suite *NotificationRepositoryTestSuite) TestListUnread() {
	first := suite.createNotification(suite.recipientID)
	suite.createNotification(suite.recipientID)

	_, err := suite.repo.MarkRead(first.ID, time.Now().UTC())
	suite.NoError(err)

	unread, err := suite.repo.ListUnread(suite.recipientID, 20)

	suite.NoError(err)
	suite.Len(unread, 1)
	suite.NotEqual(first.ID, unread[0].ID)
}

// TestListAll tests pagination and totals
func (suite *NotificationRepositoryTestSuite) TestListAll() {
	for i := 0; i < 3; i++ {
		suite.createNotification(suite.recipientID)
	}

	notifications, total, err := suite.repo.ListAll(suite.recipientID, 2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(notifications, 2)
}

// TestDeleteReadBefore tests the retention sweep semantics: only read
// notifications older than the cutoff are removed
func (suite *NotificationRepositoryTestSuite) TestDeleteReadBefore() {
	oldRead := suite.createNotification(suite.recipientID)
	oldUnread := suite.createNotification(suite.recipientID)
	recentRead := suite.createNotification(suite.recipientID)

	// Age the first two beyond the cutoff
	aged := time.Now().UTC().AddDate(0, 0, -120)
	suite.NoError(suite.baseTestSuite.DB.Model(&models.Notification{}).
		Where("id IN ?", []uuid.UUID{oldRead.ID, oldUnread.ID}).
		Update("created_at", aged).Error)

	_, err := suite.repo.MarkRead(oldRead.ID, time.Now().UTC())
	suite.NoError(err)
	_, err = suite.repo.MarkRead(recentRead.ID, time.Now().UTC())
	suite.NoError(err)

	cutoff := time.Now().UTC().AddDate(0, 0, -90)
	deleted, err := suite.repo.DeleteReadBefore(cutoff)

	suite.NoError(err)
	suite.Equal(int64(1), deleted)

	_, err = suite.repo.GetByID(oldRead.ID)
	suite.Error(err)
	_, err = suite.repo.GetByID(oldUnread.ID)
	suite.NoError(err)
	_, err = suite.repo.GetByID(recentRead.ID)
	suite.NoError(err)
}

// TestNotificationRepositoryTestSuite runs the test suite
func TestNotificationRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationRepositoryTestSuite))
}
