package handlers_test

import (
	"net/http"
	"testing"

	"idea-marketplace-backend/internal/api/handlers"
	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/mocks"
	"idea-marketplace-backend/internal/realtime"
	"idea-marketplace-backend/internal/service"
	"idea-marketplace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// NotificationHandlerTestSuite defines the test suite for NotificationHandler
type NotificationHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockNotificationServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	headers     map[string]string
}

func (suite *NotificationHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockNotificationServiceInterface(suite.ctrl)
	handler := handlers.NewNotificationHandler(suite.mockService, realtime.NewHub(nil, true))

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.T())
	suite.headers = suite.httpSuite.AuthHeaders(suite.T(), callerEmail)

	notifications := suite.httpSuite.Router.Group("/api/v1/notifications")
	notifications.GET("", handler.ListNotifications)
	notifications.GET("/unread-count", handler.UnreadCount)
	notifications.POST("/read-all", handler.MarkAllRead)
	notifications.POST("/:id/read", handler.MarkRead)
}

func (suite *NotificationHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *NotificationHandlerTestSuite) TestListNotifications() {
	suite.T().Run("UnreadOnly", func(t *testing.T) {
		suite.mockService.EXPECT().
			List(gomock.Any(), callerEmail, true, 0, 0).
			Return(&service.NotificationListResponse{
				Notifications: []models.Notification{{RecipientEmail: callerEmail, Type: models.NotificationClaimRequest}},
				Total:         1,
				Unread:        1,
				Page:          1,
				PageSize:      20,
			}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/notifications?unread=true", nil, suite.headers)

		var response service.NotificationListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(1), response.Unread)
		assert.Len(t, response.Notifications, 1)
	})

	suite.T().Run("InvalidFlag", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/notifications?unread=maybe", nil, suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *NotificationHandlerTestSuite) TestMarkRead() {
	id := uuid.New()

	suite.T().Run("OtherUsersNotification", func(t *testing.T) {
		suite.mockService.EXPECT().
			MarkRead(gomock.Any(), id, callerEmail).
			Return(nil, apperrors.ErrNotificationNotFound)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/notifications/"+id.String()+"/read", nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "notification not found")
	})

	suite.T().Run("ReadAll", func(t *testing.T) {
		suite.mockService.EXPECT().MarkAllRead(gomock.Any(), callerEmail).Return(int64(3), nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/notifications/read-all", nil, suite.headers)

		var response map[string]int64
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(3), response["updated"])
	})
}

func (suite *NotificationHandlerTestSuite) TestUnreadCount() {
	suite.mockService.EXPECT().UnreadCount(gomock.Any(), callerEmail).Return(int64(7), nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/notifications/unread-count", nil, suite.headers)

	var response map[string]int64
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &response)
	suite.Equal(int64(7), response["unread"])
}

func TestNotificationHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(NotificationHandlerTestSuite))
}
