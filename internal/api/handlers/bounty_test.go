package handlers_test

import (
	"net/http"
	"testing"

	"idea-marketplace-backend/internal/api/handlers"
	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/mocks"
	"idea-marketplace-backend/internal/service"
	"idea-marketplace-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// BountyHandlerTestSuite defines the test suite for BountyHandler
type BountyHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockBountyServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	headers     map[string]string
}

func (suite *BountyHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockBountyServiceInterface(suite.ctrl)
	handler := handlers.NewBountyHandler(suite.mockService)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.T())
	suite.headers = suite.httpSuite.AuthHeaders(suite.T(), callerEmail)

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/ideas/:id/bounties", handler.CreateBounty)
	v1.GET("/ideas/:id/bounties", handler.ListBounties)
	v1.GET("/bounties/pending", handler.PendingBounties)
	v1.GET("/bounties/:id", handler.GetBounty)
	v1.PUT("/bounties/:id/amount", handler.UpdateBountyAmount)
	v1.POST("/bounties/:id/decision", handler.DecideBounty)
}

func (suite *BountyHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *BountyHandlerTestSuite) TestCreateBounty() {
	ideaID := uuid.New()

	suite.T().Run("GatedBounty", func(t *testing.T) {
		req := &service.CreateBountyRequest{Title: "Reward", IsMonetary: true, Amount: 50.01}
		suite.mockService.EXPECT().
			CreateBounty(gomock.Any(), ideaID, callerEmail, req).
			Return(&models.Bounty{IdeaID: ideaID, IsMonetary: true, Amount: 50.01, RequiresApproval: true}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas/"+ideaID.String()+"/bounties",
			map[string]interface{}{"title": "Reward", "is_monetary": true, "amount": 50.01}, suite.headers)

		var response models.Bounty
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.True(t, response.RequiresApproval)
		assert.Nil(t, response.IsApproved)
	})

	suite.T().Run("NegativeAmount", func(t *testing.T) {
		suite.mockService.EXPECT().
			CreateBounty(gomock.Any(), ideaID, callerEmail, gomock.Any()).
			Return(nil, apperrors.ErrNegativeAmount)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/ideas/"+ideaID.String()+"/bounties",
			map[string]interface{}{"is_monetary": true, "amount": -1}, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusBadRequest, "amount")
	})
}

func (suite *BountyHandlerTestSuite) TestUpdateAndDecide() {
	bountyID := uuid.New()

	suite.T().Run("UpdateAmountAfterDecision", func(t *testing.T) {
		suite.mockService.EXPECT().
			UpdateBountyAmount(gomock.Any(), bountyID, callerEmail, 75.0).
			Return(nil, apperrors.ErrBountyAlreadyResolved)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPut, "/api/v1/bounties/"+bountyID.String()+"/amount",
			map[string]interface{}{"amount": 75}, suite.headers)
		assert.Equal(t, http.StatusConflict, recorder.Code)
	})

	suite.T().Run("DecideRequiresAdmin", func(t *testing.T) {
		suite.mockService.EXPECT().
			DecideBounty(gomock.Any(), bountyID, callerEmail, service.DecisionApprove).
			Return(nil, apperrors.ErrAdminRequired)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/bounties/"+bountyID.String()+"/decision",
			map[string]interface{}{"decision": "approve"}, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusForbidden, "admin role required")
	})

	suite.T().Run("DecideApproved", func(t *testing.T) {
		approved := true
		suite.mockService.EXPECT().
			DecideBounty(gomock.Any(), bountyID, callerEmail, service.DecisionApprove).
			Return(&models.Bounty{RequiresApproval: true, IsApproved: &approved, ApprovedBy: callerEmail}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, "/api/v1/bounties/"+bountyID.String()+"/decision",
			map[string]interface{}{"decision": "approve"}, suite.headers)

		var response models.Bounty
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		if assert.NotNil(t, response.IsApproved) {
			assert.True(t, *response.IsApproved)
		}
	})
}

func (suite *BountyHandlerTestSuite) TestPendingRouteIsNotAnID() {
	suite.mockService.EXPECT().
		PendingBounties(gomock.Any(), 1, 5).
		Return(&service.BountyListResponse{Page: 1, PageSize: 5}, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/bounties/pending?page=1&page_size=5", nil, suite.headers)
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestBountyHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(BountyHandlerTestSuite))
}
