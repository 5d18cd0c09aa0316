package handlers_test

import (
	"encoding/json"
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
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// ClaimHandlerTestSuite defines the test suite for ClaimHandler
type ClaimHandlerTestSuite struct {
	suite.Suite
	ctrl        *gomock.Controller
	mockService *mocks.MockClaimServiceInterface
	httpSuite   *testutils.HTTPTestSuite
	headers     map[string]string
	ideaID      uuid.UUID
}

func (suite *ClaimHandlerTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockService = mocks.NewMockClaimServiceInterface(suite.ctrl)
	handler := handlers.NewClaimHandler(suite.mockService)

	suite.httpSuite = testutils.SetupAuthenticatedHTTPTest(suite.T())
	suite.headers = suite.httpSuite.AuthHeaders(suite.T(), callerEmail)
	suite.ideaID = uuid.New()

	v1 := suite.httpSuite.Router.Group("/api/v1")
	v1.POST("/ideas/:id/claims", handler.RequestClaim)
	v1.GET("/ideas/:id/claims", handler.ListClaimApprovals)
	v1.POST("/ideas/:id/claims/decision", handler.DecideClaim)
	v1.GET("/claims/pending", handler.PendingApprovals)
}

func (suite *ClaimHandlerTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClaimHandlerTestSuite) claimsURL(suffix string) string {
	return "/api/v1/ideas/" + suite.ideaID.String() + "/claims" + suffix
}

func (suite *ClaimHandlerTestSuite) TestRequestClaim() {
	suite.T().Run("Success", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestClaim(gomock.Any(), suite.ideaID, callerEmail).
			Return(&models.ClaimApproval{IdeaID: suite.ideaID, ClaimerEmail: callerEmail, Status: models.ClaimApprovalStatusPending}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL(""), nil, suite.headers)

		var response models.ClaimApproval
		testutils.AssertJSONResponse(t, recorder, http.StatusCreated, &response)
		assert.Equal(t, models.ClaimApprovalStatusPending, response.Status)
	})

	suite.T().Run("ActiveClaimExists", func(t *testing.T) {
		suite.mockService.EXPECT().
			RequestClaim(gomock.Any(), suite.ideaID, callerEmail).
			Return(nil, apperrors.ErrActiveClaimExists)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL(""), nil, suite.headers)
		testutils.AssertErrorResponse(t, recorder, http.StatusConflict, "already exists")
	})
}

func (suite *ClaimHandlerTestSuite) TestDecideClaim() {
	body := map[string]interface{}{
		"claimer_email": "claimer@example.com",
		"approver_role": "owner",
		"decision":      "approve",
	}

	suite.T().Run("Approved", func(t *testing.T) {
		suite.mockService.EXPECT().
			DecideClaim(gomock.Any(), suite.ideaID, "claimer@example.com", callerEmail, service.ApproverRoleOwner, service.DecisionApprove).
			Return(&models.ClaimApproval{Status: models.ClaimApprovalStatusApproved}, nil)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL("/decision"), body, suite.headers)

		var response models.ClaimApproval
		testutils.AssertJSONResponse(t, recorder, http.StatusOK, &response)
		assert.Equal(t, models.ClaimApprovalStatusApproved, response.Status)
	})

	suite.T().Run("RaceLostReturnsDeniedApproval", func(t *testing.T) {
		denied := &models.ClaimApproval{
			ClaimerEmail:    "claimer@example.com",
			OwnerDecision:   models.ApprovalSlotApproved,
			ManagerDecision: models.ApprovalSlotApproved,
			Status:          models.ClaimApprovalStatusDenied,
		}
		suite.mockService.EXPECT().
			DecideClaim(gomock.Any(), suite.ideaID, "claimer@example.com", callerEmail, service.ApproverRoleOwner, service.DecisionApprove).
			Return(denied, apperrors.ErrClaimRaceLost)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL("/decision"), body, suite.headers)
		assert.Equal(t, http.StatusConflict, recorder.Code)

		var response struct {
			Error    string               `json:"error"`
			Approval models.ClaimApproval `json:"approval"`
		}
		require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
		assert.Contains(t, response.Error, "claimed by another approval")
		assert.Equal(t, models.ClaimApprovalStatusDenied, response.Approval.Status)
	})

	suite.T().Run("WrongApprover", func(t *testing.T) {
		suite.mockService.EXPECT().
			DecideClaim(gomock.Any(), suite.ideaID, "claimer@example.com", callerEmail, service.ApproverRoleOwner, service.DecisionApprove).
			Return(nil, apperrors.ErrNotIdeaOwner)

		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL("/decision"), body, suite.headers)
		assert.Equal(t, http.StatusForbidden, recorder.Code)
	})

	suite.T().Run("InvalidRole", func(t *testing.T) {
		suite.mockService.EXPECT().
			DecideClaim(gomock.Any(), suite.ideaID, "claimer@example.com", callerEmail, service.ApproverRole("lead"), service.DecisionApprove).
			Return(nil, apperrors.ErrInvalidApproverRole)

		invalid := map[string]interface{}{"claimer_email": "claimer@example.com", "approver_role": "lead", "decision": "approve"}
		recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodPost, suite.claimsURL("/decision"), invalid, suite.headers)
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})
}

func (suite *ClaimHandlerTestSuite) TestListAndPending() {
	suite.mockService.EXPECT().
		ListClaimApprovals(gomock.Any(), suite.ideaID).
		Return([]models.ClaimApproval{{ClaimerEmail: "a@example.com"}, {ClaimerEmail: "b@example.com"}}, nil)
	suite.mockService.EXPECT().
		PendingForApprover(gomock.Any(), callerEmail).
		Return([]models.ClaimApproval{}, nil)

	recorder := suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, suite.claimsURL(""), nil, suite.headers)
	var approvals []models.ClaimApproval
	testutils.AssertJSONResponse(suite.T(), recorder, http.StatusOK, &approvals)
	suite.Len(approvals, 2)

	recorder = suite.httpSuite.MakeRequestWithHeaders(http.MethodGet, "/api/v1/claims/pending", nil, suite.headers)
	suite.Equal(http.StatusOK, recorder.Code)
}

func TestClaimHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimHandlerTestSuite))
}
