package handlers_test

import (
	"net/http"
	"testing"

	"inspection-scheduler-backend/internal/api/handlers"
	"inspection-scheduler-backend/internal/database/models"
	apperrors "inspection-scheduler-backend/internal/errors"
	"inspection-scheduler-backend/internal/mocks"
	"inspection-scheduler-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl                *gomock.Controller
	notificationService *mocks.MockNotificationServiceInterface
	user                *models.User
	http                *testutils.HTTPTestSuite
}

func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.notificationService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	suite.user = testutils.NewUserFactory().Inspector()

	h := handlers.NewNotificationHandler(suite.notificationService)
	suite.http = testutils.SetupAuthenticatedHTTPTest(suite.user)
	suite.http.Router.GET("/api/notifications", h.ListNotifications)
	suite.http.Router.GET("/api/notifications/unread-count", h.UnreadCount)
	suite.http.Router.POST("/api/notifications/:id/read", h.MarkRead)
	suite.http.Router.POST("/api/notifications/read-all", h.MarkAllRead)
}

func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.notificationService.EXPECT().List(suite.user.ID).Return([]models.Notification{
		{UserID: suite.user.ID, Title: "New shift", Type: models.NotificationShiftAssigned},
	}, nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/notifications", nil)

	suite.Equal(http.StatusOK, w.Code)
	var got []models.Notification
	testutils.ParseJSONResponse(suite.T(), w, &got)
	suite.Len(got, 1)
	suite.Equal("New shift", got[0].Title)
}

func (suite *NotificationHandlerTestSuite) TestUnreadCount() {
	suite.notificationService.EXPECT().UnreadCount(suite.user.ID).Return(int64(3), nil)

	w := suite.http.MakeRequest(http.MethodGet, "/api/notifications/unread-count", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"count":3}`, w.Body.String())
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	suite.Run("own notification", func() {
		id := uuid.New()
		suite.notificationService.EXPECT().MarkRead(id, suite.user.ID).Return(nil)
		w := suite.http.MakeRequest(http.MethodPost, "/api/notifications/"+id.String()+"/read", nil)
		suite.Equal(http.StatusNoContent, w.Code)
	})
	suite.Run("someone else's notification", func() {
		id := uuid.New()
		suite.notificationService.EXPECT().MarkRead(id, suite.user.ID).Return(apperrors.ErrNotificationNotFound)
		w := suite.http.MakeRequest(http.MethodPost, "/api/notifications/"+id.String()+"/read", nil)
		testutils.AssertErrorResponse(suite.T(), w, http.StatusNotFound, "notification not found")
	})
}

func (suite *NotificationHandlerTestSuite) TestMarkAllRead() {
	suite.notificationService.EXPECT().MarkAllRead(suite.user.ID).Return(int64(5), nil)

	w := suite.http.MakeRequest(http.MethodPost, "/api/notifications/read-all", nil)

	suite.Equal(http.StatusOK, w.Code)
	suite.JSONEq(`{"updated":5}`, w.Body.String())
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
