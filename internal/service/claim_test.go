package service_test

import (
	"context"
	"testing"
	"time"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/mocks"
	"idea-marketplace-backend/internal/repository"
	"idea-marketplace-backend/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// passThroughStore runs units of work directly against the mocked repositories
type passThroughStore struct {
	repos *repository.Repos
}

func (s passThroughStore) Repositories() *repository.Repos { return s.repos }

func (s passThroughStore) ExecTx(_ context.Context, fn func(*repository.Repos) error) error {
	return fn(s.repos)
}

const (
	ownerEmail   = "owner@example.com"
	claimerEmail = "claimer@example.com"
	managerEmail = "mgr@example.com"
	adminEmail   = "admin@example.com"
)

type ClaimServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	ideas      *mocks.MockIdeaRepositoryInterface
	claims     *mocks.MockClaimRepositoryInterface
	approvals  *mocks.MockClaimApprovalRepositoryInterface
	history    *mocks.MockStatusHistoryRepositoryInterface
	activity   *mocks.MockActivityRepositoryInterface
	identity   *mocks.MockIdentityResolver
	dispatcher *mocks.MockNotificationDispatcher
	service    *service.ClaimService
	now        time.Time
	ctx        context.Context
	idea       *models.Idea
}

func (suite *ClaimServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.ideas = mocks.NewMockIdeaRepositoryInterface(suite.ctrl)
	suite.claims = mocks.NewMockClaimRepositoryInterface(suite.ctrl)
	suite.approvals = mocks.NewMockClaimApprovalRepositoryInterface(suite.ctrl)
	suite.history = mocks.NewMockStatusHistoryRepositoryInterface(suite.ctrl)
	suite.activity = mocks.NewMockActivityRepositoryInterface(suite.ctrl)
	suite.identity = mocks.NewMockIdentityResolver(suite.ctrl)
	suite.dispatcher = mocks.NewMockNotificationDispatcher(suite.ctrl)

	store := passThroughStore{repos: &repository.Repos{
		Idea:          suite.ideas,
		Claim:         suite.claims,
		ClaimApproval: suite.approvals,
		StatusHistory: suite.history,
		Activity:      suite.activity,
	}}
	suite.service = service.NewClaimService(store, suite.identity, suite.dispatcher)
	suite.now = time.Date(2026, 2, 10, 8, 0, 0, 0, time.UTC)
	suite.service.SetClock(func() time.Time { return suite.now })
	suite.ctx = context.Background()

	suite.idea = &models.Idea{Title: "Faster CI", Team: "platform", SubmitterEmail: ownerEmail, Status: models.IdeaStatusOpen, SubStatus: models.SubStatusNone}
	suite.idea.ID = uuid.New()
}

func (suite *ClaimServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *ClaimServiceTestSuite) actor(email, team string, role models.UserRole) *service.Actor {
	return &service.Actor{Email: email, Team: team, Role: role}
}

// captureDispatch records every event handed to the dispatcher
func (suite *ClaimServiceTestSuite) captureDispatch(into *[]service.Event) {
	suite.dispatcher.EXPECT().Dispatch(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, events ...service.Event) int {
			*into = append(*into, events...)
			return len(events)
		}).AnyTimes()
}

func (suite *ClaimServiceTestSuite) TestRequestClaimRoutesToClaimerManager() {
	suite.identity.EXPECT().ResolveActor(gomock.Any(), claimerEmail).Return(suite.actor(claimerEmail, "platform", models.UserRoleUser), nil)
	suite.identity.EXPECT().ManagerOf(gomock.Any(), "platform").Return(suite.actor(managerEmail, "platform", models.UserRoleManager), nil)
	suite.ideas.EXPECT().GetByIDForUpdate(gomock.Any(), suite.idea.ID).Return(suite.idea, nil)
	suite.approvals.EXPECT().ExistsActiveForIdea(gomock.Any(), suite.idea.ID).Return(false, nil)
	suite.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	var events []service.Event
	suite.captureDispatch(&events)

	approval, err := suite.service.RequestClaim(suite.ctx, suite.idea.ID, claimerEmail)

	suite.Require().NoError(err)
	suite.Equal(managerEmail, approval.ManagerEmail)
	suite.Equal(models.ClaimApprovalStatusPending, approval.Status)
	suite.Equal(models.ApprovalSlotPending, approval.OwnerDecision)
	suite.Equal(models.ApprovalSlotPending, approval.ManagerDecision)

	suite.Require().Len(events, 2)
	suite.Equal(models.NotificationClaimRequest, events[0].Type)
	suite.Equal([]string{ownerEmail}, events[0].Recipients)
	suite.Equal(models.NotificationClaimApprovalRequired, events[1].Type)
	suite.Equal([]string{managerEmail}, events[1].Recipients)
}

func (suite *ClaimServiceTestSuite) TestRequestClaimBySelfManagerEscalatesToAdmins() {
	suite.identity.EXPECT().ResolveActor(gomock.Any(), managerEmail).Return(suite.actor(managerEmail, "platform", models.UserRoleManager), nil)
	suite.identity.EXPECT().ManagerOf(gomock.Any(), "platform").Return(suite.actor(managerEmail, "platform", models.UserRoleManager), nil)
	suite.identity.EXPECT().AdminPool(gomock.Any()).Return([]string{adminEmail}, nil)
	suite.ideas.EXPECT().GetByIDForUpdate(gomock.Any(), suite.idea.ID).Return(suite.idea, nil)
	suite.approvals.EXPECT().ExistsActiveForIdea(gomock.Any(), suite.idea.ID).Return(false, nil)
	suite.approvals.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	suite.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)

	var events []service.Event
	suite.captureDispatch(&events)

	approval, err := suite.service.RequestClaim(suite.ctx, suite.idea.ID, managerEmail)

	suite.Require().NoError(err)
	suite.Empty(approval.ManagerEmail)
	suite.Require().Len(events, 2)
	suite.Equal([]string{adminEmail}, events[1].Recipients)
}

func (suite *ClaimServiceTestSuite) TestRequestClaimPreconditions() {
	suite.Run("IdeaNotOpen", func() {
		claimed := *suite.idea
		claimed.Status = models.IdeaStatusClaimed
		suite.identity.EXPECT().ResolveActor(gomock.Any(), claimerEmail).Return(suite.actor(claimerEmail, "", models.UserRoleUser), nil)
		suite.identity.EXPECT().ManagerOf(gomock.Any(), "").Return(nil, apperrors.ErrManagerNotFound)
		suite.identity.EXPECT().AdminPool(gomock.Any()).Return([]string{adminEmail}, nil)
		suite.ideas.EXPECT().GetByIDForUpdate(gomock.Any(), suite.idea.ID).Return(&claimed, nil)

		_, err := suite.service.RequestClaim(suite.ctx, suite.idea.ID, claimerEmail)
		suite.ErrorIs(err, apperrors.ErrIdeaNotOpen)
	})

	suite.Run("ActiveApprovalExists", func() {
		suite.identity.EXPECT().ResolveActor(gomock.Any(), claimerEmail).Return(suite.actor(claimerEmail, "", models.UserRoleUser), nil)
		suite.identity.EXPECT().ManagerOf(gomock.Any(), "").Return(nil, apperrors.ErrManagerNotFound)
		suite.identity.EXPECT().AdminPool(gomock.Any()).Return([]string{adminEmail}, nil)
		suite.ideas.EXPECT().GetByIDForUpdate(gomock.Any(), suite.idea.ID).Return(suite.idea, nil)
		suite.approvals.EXPECT().ExistsActiveForIdea(gomock.Any(), suite.idea.ID).Return(true, nil)

		_, err := suite.service.RequestClaim(suite.ctx, suite.idea.ID, claimerEmail)
		suite.ErrorIs(err, apperrors.ErrActiveClaimExists)
	})
}

func (suite *ClaimServiceTestSuite) pendingApproval() *models.ClaimApproval {
	approval := &models.ClaimApproval{
		IdeaID:          suite.idea.ID,
		ClaimerEmail:    claimerEmail,
		ManagerEmail:    managerEmail,
		OwnerDecision:   models.ApprovalSlotPending,
		ManagerDecision: models.ApprovalSlotPending,
		Status:          models.ClaimApprovalStatusPending,
	}
	approval.ID = uuid.New()
	return approval
}

func (suite *ClaimServiceTestSuite) expectDecisionLookup(approverEmail string, role models.UserRole, approval *models.ClaimApproval) {
	suite.identity.EXPECT().ResolveActor(gomock.Any(), approverEmail).Return(suite.actor(approverEmail, "platform", role), nil)
	suite.ideas.EXPECT().GetByIDForUpdate(gomock.Any(), suite.idea.ID).Return(suite.idea, nil)
	suite.approvals.EXPECT().GetLatestForClaimerForUpdate(gomock.Any(), suite.idea.ID, claimerEmail).Return(approval, nil)
}

func (suite *ClaimServiceTestSuite) TestFirstApprovalStaysPending() {
	approval := suite.pendingApproval()
	suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)
	suite.approvals.EXPECT().Update(gomock.Any(), approval).Return(nil)

	result, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleOwner, service.DecisionApprove)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimApprovalStatusPending, result.Status)
	suite.Equal(models.ApprovalSlotApproved, result.OwnerDecision)
	suite.Equal(ownerEmail, result.OwnerDecidedBy)
	suite.Equal(suite.now, *result.OwnerDecidedAt)
	suite.Nil(result.ResolvedAt)
}

func (suite *ClaimServiceTestSuite) TestRepeatedDecisionIsNoOp() {
	approval := suite.pendingApproval()
	approval.OwnerDecision = models.ApprovalSlotApproved
	approval.OwnerDecidedBy = ownerEmail
	suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)

	result, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleOwner, service.DecisionApprove)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimApprovalStatusPending, result.Status)
}

func (suite *ClaimServiceTestSuite) TestChangingRecordedDecisionConflicts() {
	approval := suite.pendingApproval()
	approval.OwnerDecision = models.ApprovalSlotApproved
	suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)

	_, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleOwner, service.DecisionDeny)

	suite.ErrorIs(err, apperrors.ErrApprovalSlotAlreadySet)
}

func (suite *ClaimServiceTestSuite) TestSecondApprovalClaimsIdea() {
	approval := suite.pendingApproval()
	approval.ManagerDecision = models.ApprovalSlotApproved
	approval.ManagerDecidedBy = managerEmail
	suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)

	suite.ideas.EXPECT().MarkClaimed(gomock.Any(), suite.idea.ID, claimerEmail, ownerEmail, suite.now).Return(int64(1), nil)
	suite.claims.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, claim *models.Claim) error {
			suite.Equal(approval.ID, claim.ClaimApprovalID)
			suite.Equal(claimerEmail, claim.ClaimerEmail)
			return nil
		})
	suite.history.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, entry *models.StatusHistory) error {
			suite.Equal(models.IdeaStatusOpen, entry.FromStatus)
			suite.Equal(models.IdeaStatusClaimed, entry.ToStatus)
			suite.Equal(models.SubStatusNone, entry.FromSubStatus)
			suite.Equal(models.SubStatusPlanning, entry.ToSubStatus)
			suite.Nil(entry.DurationMinutes)
			return nil
		})
	suite.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	suite.approvals.EXPECT().Update(gomock.Any(), approval).Return(nil)

	var events []service.Event
	suite.captureDispatch(&events)

	result, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleOwner, service.DecisionApprove)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimApprovalStatusApproved, result.Status)
	suite.NotNil(result.ResolvedAt)
	suite.Equal(models.IdeaStatusClaimed, suite.idea.Status)
	suite.Equal(models.SubStatusPlanning, suite.idea.SubStatus)
	suite.Equal(claimerEmail, suite.idea.ClaimedBy)

	suite.Require().Len(events, 1)
	suite.Equal(models.NotificationClaimApproved, events[0].Type)
	suite.ElementsMatch([]string{claimerEmail, ownerEmail, managerEmail}, events[0].Recipients)
}

func (suite *ClaimServiceTestSuite) TestLosingTheRaceDeniesApproval() {
	approval := suite.pendingApproval()
	approval.ManagerDecision = models.ApprovalSlotApproved
	suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)

	suite.ideas.EXPECT().MarkClaimed(gomock.Any(), suite.idea.ID, claimerEmail, ownerEmail, suite.now).Return(int64(0), nil)
	suite.activity.EXPECT().Append(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, activity *models.IdeaActivity) error {
			suite.Equal(models.ActivityClaimDenied, activity.ActivityType)
			return nil
		})
	suite.approvals.EXPECT().Update(gomock.Any(), approval).Return(nil)

	var events []service.Event
	suite.captureDispatch(&events)

	result, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleOwner, service.DecisionApprove)

	suite.ErrorIs(err, apperrors.ErrClaimRaceLost)
	suite.Require().NotNil(result)
	suite.Equal(models.ClaimApprovalStatusDenied, result.Status)
	suite.Equal(models.ApprovalSlotApproved, result.OwnerDecision)
	suite.Equal(models.ApprovalSlotApproved, result.ManagerDecision)

	suite.Require().Len(events, 1)
	suite.Equal(models.NotificationClaimDenied, events[0].Type)
	suite.Equal([]string{claimerEmail}, events[0].Recipients)
}

func (suite *ClaimServiceTestSuite) TestDenialShortCircuits() {
	approval := suite.pendingApproval()
	suite.expectDecisionLookup(managerEmail, models.UserRoleManager, approval)
	suite.activity.EXPECT().Append(gomock.Any(), gomock.Any()).Return(nil)
	suite.approvals.EXPECT().Update(gomock.Any(), approval).Return(nil)

	var events []service.Event
	suite.captureDispatch(&events)

	result, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, managerEmail, service.ApproverRoleManager, service.DecisionDeny)

	suite.Require().NoError(err)
	suite.Equal(models.ClaimApprovalStatusDenied, result.Status)
	suite.Equal(models.ApprovalSlotPending, result.OwnerDecision)
	suite.Require().Len(events, 1)
	suite.Equal(models.NotificationClaimDenied, events[0].Type)
}

func (suite *ClaimServiceTestSuite) TestSlotAuthorization() {
	suite.Run("NotTheOwner", func() {
		suite.expectDecisionLookup(managerEmail, models.UserRoleManager, suite.pendingApproval())

		_, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, managerEmail, service.ApproverRoleOwner, service.DecisionApprove)
		suite.ErrorIs(err, apperrors.ErrNotIdeaOwner)
	})

	suite.Run("NotTheManager", func() {
		suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, suite.pendingApproval())

		_, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleManager, service.DecisionApprove)
		suite.ErrorIs(err, apperrors.ErrNotClaimerManager)
	})

	suite.Run("AdminPoolSlotNeedsAdmin", func() {
		approval := suite.pendingApproval()
		approval.ManagerEmail = ""
		suite.expectDecisionLookup(ownerEmail, models.UserRoleUser, approval)

		_, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRoleManager, service.DecisionApprove)
		suite.ErrorIs(err, apperrors.ErrNotClaimerManager)
	})

	suite.Run("InvalidRole", func() {
		_, err := suite.service.DecideClaim(suite.ctx, suite.idea.ID, claimerEmail, ownerEmail, service.ApproverRole("lead"), service.DecisionApprove)
		suite.ErrorIs(err, apperrors.ErrInvalidApproverRole)
	})
}

func (suite *ClaimServiceTestSuite) TestPendingForAdminIncludesPool() {
	mine := suite.pendingApproval()
	pooled := suite.pendingApproval()
	pooled.ManagerEmail = ""

	suite.identity.EXPECT().ResolveActor(gomock.Any(), adminEmail).Return(suite.actor(adminEmail, "", models.UserRoleAdmin), nil)
	suite.approvals.EXPECT().ListPendingForApprover(gomock.Any(), adminEmail).Return([]models.ClaimApproval{*mine}, nil)
	suite.approvals.EXPECT().ListPendingForApprover(gomock.Any(), "").Return([]models.ClaimApproval{*mine, *pooled}, nil)

	approvals, err := suite.service.PendingForApprover(suite.ctx, adminEmail)

	suite.Require().NoError(err)
	suite.Len(approvals, 2)
}

func TestClaimServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ClaimServiceTestSuite))
}
