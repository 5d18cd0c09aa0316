package handlers_test

import (
	"errors"
	"net/http"
	"testing"

	"idea-marketplace-backend/internal/api/handlers"
	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/mocks"
	"idea-marketplace-backend/internal/repository"
	"idea-marketplace-backend/internal/service"
	"idea-marketplace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

const callerEmail = "dev@example.com"

// IdeaHandlerTestSuite defines the test suite for IdeaHandler
type IdeaHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockIdeaServiceInterface
	handler     *handlers.IdeaHandler
	httpSuite   *testutils.HTTPTestSuite
	headers     map[string]string
}

// SetupTest sets up the test suite
func (suite *IdeaHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockIdeaServiceInterface(suite.ctrl)
	suite.handler = handlers.NewIdeaHandler(suite.mockService)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.T())
	suite.headers = suite.httpSuite.AuthHeaders(suite.T(), callerEmail)

	ideas := suite.httpSuite.Router.Group("/api/v1/ideas")
	{
		ideas.POST("", suite.handler.CreateIdea)
		ideas.GET("", suite.handler.ListIdeas)
		ideas.GET("/:id", suite.handler.GetIdea)
		ideas.PUT("/:id/sub-status", suite.handler.UpdateSubStatus)
		ideas.POST("/:id/complete", suite.handler.CompleteIdea)
		ideas.GET("/:id/history", suite.handler.ListHistory)
		ideas.GET("/:id/activity", suite.handler.ListActivity)
		ideas.POST("/:id/comments", suite.handler.AddComment)
		ideas.POST("/:id/links", suite.handler.AddLink)
	}
}

// TearDownTest cleans up after each test
func (suite *IdeaHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *IdeaHandlerTestSuite) TestCreateIdea() {
	suite.T().Run("Success", func(t *testing.T) {
		idea := &models.Idea{Title: "Faster CI", Team: "platform", SubmitterEmail: callerEmail, Status: models.IdeaStatusOpen}
		idea.ID = uuid.New()

		suite.mockService.EXPECT().
			CreateIdea(gomock.Any(), callerEmail, &service.CreateIdeaRequest{Title: "Faster CI", Team: "platform"}).
			Return(idea, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas",
			map[string]interface{}{"title": "Faster CI", "team": "platform"}, suite.headers)

		var response models.Idea
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, idea.ID, response.ID)
		assert.Equal(t, models.IdeaStatusOpen, response.Status)
	})

	suite.T().Run("InvalidJSON", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRawRequest(http.MethodPost, "/api/v1/ideas", "invalid json", suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("TeamNotFound", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateIdea(gomock.Any(), callerEmail, gomock.Any()).
			Return(nil, apperrors.ErrTeamNotFound)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas",
			map[string]interface{}{"title": "x", "team": "ghost"}, suite.headers)

		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "team not found")
	})

	suite.T().Run("Unauthenticated", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequest(http.MethodPost, "/api/v1/ideas",
			map[string]interface{}{"title": "x", "team": "platform"})
		assert.Equal(t, http.StatusUnauthorized, recorder.Code)
	})
}

func (suite *IdeaHandlerTestSuite) TestGetIdea() {
	suite.T().Run("InvalidID", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas/not-a-uuid", nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid idea ID")
	})

	suite.T().Run("NotFound", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetIdea(gomock.Any(), id).Return(nil, apperrors.ErrIdeaNotFound)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas/"+id.String(), nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusNotFound, "idea not found")
	})

	suite.T().Run("InternalErrorIsMasked", func(t *testing.T) {
		id := uuid.New()
		suite.mockService.EXPECT().GetIdea(gomock.Any(), id).Return(nil, errors.New("connection reset"))

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas/"+id.String(), nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusInternalServerError, "internal server error")
		assert.NotContains(t, recorder.Body.String(), "connection reset")
	})
}

func (suite *IdeaHandlerTestSuite) TestListIdeas() {
	suite.T().Run("PassesFilterAndPaging", func(t *testing.T) {
		filter := repository.IdeaFilter{Status: models.IdeaStatusClaimed, Team: "platform", ClaimedBy: "c@example.com"}
		suite.mockService.EXPECT().
			ListIdeas(gomock.Any(), filter, 2, 10).
			Return(&service.IdeaListResponse{Ideas: []models.Idea{}, Total: 11, Page: 2, PageSize: 10}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet,
			"/api/v1/ideas?status=claimed&team=platform&claimed_by=c@example.com&page=2&page_size=10", nil, suite.headers)

		var response service.IdeaListResponse
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, int64(11), response.Total)
	})

	suite.T().Run("InvalidStatus", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas?status=archived", nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "invalid status filter")
	})

	suite.T().Run("InvalidPage", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas?page=abc", nil, suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *IdeaHandlerTestSuite) TestUpdateSubStatus() {
	id := uuid.New()
	url := "/api/v1/ideas/" + id.String() + "/sub-status"

	suite.T().Run("Success", func(t *testing.T) {
		progress := 40
		updated := &models.Idea{Status: models.IdeaStatusClaimed, SubStatus: models.SubStatusTesting, ProgressPercentage: 40}
		suite.mockService.EXPECT().
			UpdateSubStatus(gomock.Any(), id, callerEmail, &service.UpdateSubStatusRequest{
				SubStatus:          models.SubStatusTesting,
				ProgressPercentage: &progress,
			}).
			Return(updated, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, url,
			map[string]interface{}{"sub_status": "testing", "progress_percentage": 40}, suite.headers)

		var response models.Idea
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.SubStatusTesting, response.SubStatus)
	})

	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"TransitionDenied", apperrors.ErrSubStatusTransitionDenied, http.StatusConflict},
		{"NotAuthorized", apperrors.ErrNotAuthorizedForIdea, http.StatusForbidden},
		{"ProgressOutOfRange", apperrors.ErrProgressOutOfRange, http.StatusBadRequest},
		{"UnknownActor", apperrors.ErrMissingActorInContext, http.StatusUnauthorized},
	}
	for _, tc := range cases {
		suite.T().Run(tc.name, func(t *testing.T) {
			suite.mockService.EXPECT().
				UpdateSubStatus(gomock.Any(), id, callerEmail, gomock.Any()).
				Return(nil, tc.err)

			recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, url,
				map[string]interface{}{"sub_status": "deployed"}, suite.headers)
			testutils.AssertErrorResponse(t, recorder, tc.status, tc.err.Error())
		})
	}
}

func (suite *IdeaHandlerTestSuite) TestCompleteIdea() {
	id := uuid.New()
	url := "/api/v1/ideas/" + id.String() + "/complete"

	suite.T().Run("WithoutBody", func(t *testing.T) {
		suite.mockService.EXPECT().
			CompleteIdea(gomock.Any(), id, callerEmail, "").
			Return(&models.Idea{Status: models.IdeaStatusComplete}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, url, nil, suite.headers)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("WithComment", func(t *testing.T) {
		suite.mockService.EXPECT().
			CompleteIdea(gomock.Any(), id, callerEmail, "shipped").
			Return(&models.Idea{Status: models.IdeaStatusComplete}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, url,
			map[string]interface{}{"comment": "shipped"}, suite.headers)
		assert.Equal(t, http.StatusOK, recorder.Code)
	})

	suite.T().Run("AlreadyComplete", func(t *testing.T) {
		suite.mockService.EXPECT().
			CompleteIdea(gomock.Any(), id, callerEmail, "").
			Return(nil, apperrors.ErrIdeaAlreadyComplete)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, url, nil, suite.headers)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})
}

func (suite *IdeaHandlerTestSuite) TestListHistory() {
	id := uuid.New()

	suite.T().Run("CursorAndLimit", func(t *testing.T) {
		suite.mockService.EXPECT().
			ListHistory(gomock.Any(), id, int64(3), 50).
			Return([]models.StatusHistory{{Sequence: 4}, {Sequence: 5}}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet,
			"/api/v1/ideas/"+id.String()+"/history?after=3&limit=50", nil, suite.headers)

		var response []models.StatusHistory
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Len(t, response, 2)
		assert.Equal(t, int64(4), response[0].Sequence)
	})

	suite.T().Run("InvalidCursor", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet,
			"/api/v1/ideas/"+id.String()+"/history?after=x", nil, suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *IdeaHandlerTestSuite) TestCommentsAndLinks() {
	id := uuid.New()

	suite.T().Run("Comment", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddComment(gomock.Any(), id, callerEmail, "looks good").
			Return(&models.IdeaActivity{ActivityType: models.ActivityCommentAdded, Message: "looks good"}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas/"+id.String()+"/comments",
			map[string]interface{}{"comment": "looks good"}, suite.headers)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})

	suite.T().Run("CommentMissing", func(t *testing.T) {
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas/"+id.String()+"/comments",
			map[string]interface{}{}, suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	suite.T().Run("Link", func(t *testing.T) {
		suite.mockService.EXPECT().
			AddLink(gomock.Any(), id, callerEmail, &service.AddLinkRequest{URL: "https://example.com/pr/1", Title: "PR"}).
			Return(&models.IdeaActivity{ActivityType: models.ActivityLinkAdded}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas/"+id.String()+"/links",
			map[string]interface{}{"url": "https://example.com/pr/1", "title": "PR"}, suite.headers)
		assert.Equal(t, http.StatusCreated, recorder.Code)
	})
}

func (suite *IdeaHandlerTestSuite) TestListActivity() {
	id := uuid.New()
	suite.mockService.EXPECT().
		ListActivity(gomock.Any(), id, 0, 0).
		Return(&service.ActivityListResponse{Total: 0, Page: 1, PageSize: 20}, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/ideas/"+id.String()+"/activity", nil, suite.headers)
	suite.Equal(http.StatusOK, recorder.Code)
}

// TestIdeaHandlerTestSuite runs the test suite
func TestIdeaHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(IdeaHandlerTestSuite))
}
