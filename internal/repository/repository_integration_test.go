//go:build integration
// +build integration

package repository

import (
	"context"
	"testing"
	"time"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// RepositoryTestSuite tests the repositories against a real Postgres
type RepositoryTestSuite struct {
	suite.Suite
	base      *testutils.BaseTestSuite
	factories *testutils.FactorySet
	repos     *Repos
	ctx       context.Context
}

func (suite *RepositoryTestSuite) SetupSuite() {
	suite.base = testutils.SetupTestSuite(suite.T())
	suite.factories = testutils.NewFactorySet()
	suite.repos = NewRepositories(suite.base.DB)
	suite.ctx = context.Background()
}

func (suite *RepositoryTestSuite) SetupTest() {
	suite.base.CleanTestDB()
	suite.Require().NoError(suite.repos.Team.Create(suite.ctx, suite.factories.Team.WithName("platform")))
}

func (suite *RepositoryTestSuite) TearDownSuite() {
	suite.base.CleanTestDB()
}

func (suite *RepositoryTestSuite) openIdea(submitter string) *models.Idea {
	idea := suite.factories.Idea.Open("platform", submitter)
	suite.Require().NoError(suite.repos.Idea.Create(suite.ctx, idea))
	return idea
}

func (suite *RepositoryTestSuite) TestMarkClaimedOnlyOnce() {
	idea := suite.openIdea("owner@example.com")
	at := time.Now().UTC().Truncate(time.Second)

	rows, err := suite.repos.Idea.MarkClaimed(suite.ctx, idea.ID, "a@example.com", "owner@example.com", at)
	suite.Require().NoError(err)
	suite.Equal(int64(1), rows)

	rows, err = suite.repos.Idea.MarkClaimed(suite.ctx, idea.ID, "b@example.com", "owner@example.com", at)
	suite.Require().NoError(err)
	suite.Zero(rows)

	stored, err := suite.repos.Idea.GetByID(suite.ctx, idea.ID)
	suite.Require().NoError(err)
	suite.Equal(models.IdeaStatusClaimed, stored.Status)
	suite.Equal(models.SubStatusPlanning, stored.SubStatus)
	suite.Equal("a@example.com", stored.ClaimedBy)
}

func (suite *RepositoryTestSuite) TestExecTxRollsBack() {
	idea := suite.openIdea("owner@example.com")

	err := suite.repos.ExecTx(suite.ctx, func(tx *Repos) error {
		if _, err := tx.Idea.MarkClaimed(suite.ctx, idea.ID, "a@example.com", "owner@example.com", time.Now()); err != nil {
			return err
		}
		return gorm.ErrInvalidTransaction
	})
	suite.ErrorIs(err, gorm.ErrInvalidTransaction)

	stored, err := suite.repos.Idea.GetByID(suite.ctx, idea.ID)
	suite.Require().NoError(err)
	suite.Equal(models.IdeaStatusOpen, stored.Status)
}

func (suite *RepositoryTestSuite) TestIdeaListFilters() {
	suite.openIdea("owner@example.com")
	suite.openIdea("other@example.com")
	claimed := suite.factories.Idea.Claimed("platform", "owner@example.com", "c@example.com", models.SubStatusTesting)
	suite.Require().NoError(suite.repos.Idea.Create(suite.ctx, claimed))

	ideas, total, err := suite.repos.Idea.List(suite.ctx, IdeaFilter{SubmitterEmail: "owner@example.com"}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(ideas, 2)

	ideas, total, err = suite.repos.Idea.List(suite.ctx, IdeaFilter{Status: models.IdeaStatusClaimed, ClaimedBy: "c@example.com"}, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(claimed.ID, ideas[0].ID)

	ideas, total, err = suite.repos.Idea.List(suite.ctx, IdeaFilter{Team: "platform"}, 1, 1)
	suite.Require().NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(ideas, 1)
}

func (suite *RepositoryTestSuite) TestStatusHistorySequenceCursor() {
	idea := suite.openIdea("owner@example.com")
	subs := []models.SubStatus{models.SubStatusPlanning, models.SubStatusInDevelopment, models.SubStatusTesting}
	from := models.SubStatusNone
	for _, sub := range subs {
		suite.Require().NoError(suite.repos.StatusHistory.Append(suite.ctx, &models.StatusHistory{
			IdeaID:        idea.ID,
			FromStatus:    models.IdeaStatusClaimed,
			ToStatus:      models.IdeaStatusClaimed,
			FromSubStatus: from,
			ToSubStatus:   sub,
			ChangedBy:     "c@example.com",
			ChangedAt:     time.Now(),
		}))
		from = sub
	}

	all, err := suite.repos.StatusHistory.ListByIdea(suite.ctx, idea.ID, 0, 0)
	suite.Require().NoError(err)
	suite.Require().Len(all, 3)
	for i, entry := range all {
		suite.Equal(subs[i], entry.ToSubStatus)
		suite.Positive(entry.Sequence)
	}

	rest, err := suite.repos.StatusHistory.ListByIdea(suite.ctx, idea.ID, all[0].Sequence, 1)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.Equal(models.SubStatusInDevelopment, rest[0].ToSubStatus)
}

func (suite *RepositoryTestSuite) TestNotificationReadState() {
	mine := &models.Notification{RecipientEmail: "me@example.com", Type: models.NotificationClaimRequest, Title: "t"}
	other := &models.Notification{RecipientEmail: "me@example.com", Type: models.NotificationClaimDenied, Title: "t"}
	theirs := &models.Notification{RecipientEmail: "you@example.com", Type: models.NotificationClaimRequest, Title: "t"}
	for _, n := range []*models.Notification{mine, other, theirs} {
		suite.Require().NoError(suite.repos.Notification.Create(suite.ctx, n))
	}

	rows, err := suite.repos.Notification.MarkRead(suite.ctx, theirs.ID, "me@example.com", time.Now())
	suite.Require().NoError(err)
	suite.Zero(rows)

	rows, err = suite.repos.Notification.MarkRead(suite.ctx, mine.ID, "me@example.com", time.Now())
	suite.Require().NoError(err)
	suite.Equal(int64(1), rows)

	count, err := suite.repos.Notification.CountUnread(suite.ctx, "me@example.com")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)

	unread, total, err := suite.repos.Notification.ListByRecipient(suite.ctx, "me@example.com", true, 10, 0)
	suite.Require().NoError(err)
	suite.Equal(int64(1), total)
	suite.Equal(other.ID, unread[0].ID)

	rows, err = suite.repos.Notification.MarkAllRead(suite.ctx, "me@example.com", time.Now())
	suite.Require().NoError(err)
	suite.Equal(int64(1), rows)

	count, err = suite.repos.Notification.CountUnread(suite.ctx, "you@example.com")
	suite.Require().NoError(err)
	suite.Equal(int64(1), count)
}

func (suite *RepositoryTestSuite) TestPendingApprovalsForApprover() {
	idea := suite.openIdea("owner@example.com")
	managed := suite.factories.Approval.Pending(idea.ID, "a@example.com", "mgr@example.com")
	pooled := suite.factories.Approval.Pending(idea.ID, "b@example.com", "")
	suite.Require().NoError(suite.repos.ClaimApproval.Create(suite.ctx, managed))
	suite.Require().NoError(suite.repos.ClaimApproval.Create(suite.ctx, pooled))

	forOwner, err := suite.repos.ClaimApproval.ListPendingForApprover(suite.ctx, "owner@example.com")
	suite.Require().NoError(err)
	suite.Len(forOwner, 2)

	forManager, err := suite.repos.ClaimApproval.ListPendingForApprover(suite.ctx, "mgr@example.com")
	suite.Require().NoError(err)
	suite.Require().Len(forManager, 1)
	suite.Equal(managed.ID, forManager[0].ID)

	forPool, err := suite.repos.ClaimApproval.ListPendingForApprover(suite.ctx, "")
	suite.Require().NoError(err)
	suite.Require().Len(forPool, 1)
	suite.Equal(pooled.ID, forPool[0].ID)

	// once the owner has decided, the approval leaves the owner's queue
	managed.OwnerDecision = models.ApprovalSlotApproved
	suite.Require().NoError(suite.repos.ClaimApproval.Update(suite.ctx, managed))
	forOwner, err = suite.repos.ClaimApproval.ListPendingForApprover(suite.ctx, "owner@example.com")
	suite.Require().NoError(err)
	suite.Len(forOwner, 1)

	active, err := suite.repos.ClaimApproval.ExistsActiveForIdea(suite.ctx, idea.ID)
	suite.Require().NoError(err)
	suite.True(active)
}

func (suite *RepositoryTestSuite) TestManagerLookup() {
	manager := suite.factories.User.ManagerOf("platform")
	suite.Require().NoError(suite.repos.User.Create(suite.ctx, manager))
	suite.Require().NoError(suite.repos.User.Create(suite.ctx, suite.factories.User.Admin("root@example.com")))

	found, err := suite.repos.User.GetManagerOfTeam(suite.ctx, "platform")
	suite.Require().NoError(err)
	suite.Equal(manager.Email, found.Email)

	_, err = suite.repos.User.GetManagerOfTeam(suite.ctx, "growth")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	admins, err := suite.repos.User.ListAdmins(suite.ctx)
	suite.Require().NoError(err)
	suite.Require().Len(admins, 1)
	suite.Equal("root@example.com", admins[0].Email)
}

func TestRepositoryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(RepositoryTestSuite))
}
