package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ClaimApprovalRepository handles database operations for claim approvals
type ClaimApprovalRepository struct {
	db *gorm.DB
}

// NewClaimApprovalRepository creates a new claim approval repository
func NewClaimApprovalRepository(db *gorm.DB) *ClaimApprovalRepository {
	return &ClaimApprovalRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *ClaimApprovalRepository) WithTx(tx *gorm.DB) ClaimApprovalRepositoryInterface {
	return &ClaimApprovalRepository{db: tx}
}

// Create creates a new claim approval
func (r *ClaimApprovalRepository) Create(ctx context.Context, approval *models.ClaimApproval) error {
	return r.db.WithContext(ctx).Create(approval).Error
}

// GetByID retrieves a claim approval by ID
func (r *ClaimApprovalRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ClaimApproval, error) {
	var approval models.ClaimApproval
	err := r.db.WithContext(ctx).First(&approval, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// GetLatestForClaimerForUpdate locks and returns the most recent approval of claimerEmail on an idea
func (r *ClaimApprovalRepository) GetLatestForClaimerForUpdate(ctx context.Context, ideaID uuid.UUID, claimerEmail string) (*models.ClaimApproval, error) {
	var approval models.ClaimApproval
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("idea_id = ? AND claimer_email = ?", ideaID, claimerEmail).
		Order("created_at DESC").
		First(&approval).Error
	if err != nil {
		return nil, err
	}
	return &approval, nil
}

// ExistsActiveForIdea reports whether a pending or approved approval exists for an idea
func (r *ClaimApprovalRepository) ExistsActiveForIdea(ctx context.Context, ideaID uuid.UUID) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ClaimApproval{}).
		Where("idea_id = ? AND status IN ?", ideaID,
			[]models.ClaimApprovalStatus{models.ClaimApprovalStatusPending, models.ClaimApprovalStatusApproved}).
		Count(&count).Error
	return count > 0, err
}

// ListByIdea retrieves every approval of an idea, newest first
func (r *ClaimApprovalRepository) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.ClaimApproval, error) {
	var approvals []models.ClaimApproval
	err := r.db.WithContext(ctx).
		Where("idea_id = ?", ideaID).
		Order("created_at DESC").
		Find(&approvals).Error
	return approvals, err
}

// ListPendingForApprover retrieves pending approvals where email still owes a decision,
// either as the idea owner or as the claimer's manager
func (r *ClaimApprovalRepository) ListPendingForApprover(ctx context.Context, email string) ([]models.ClaimApproval, error) {
	var approvals []models.ClaimApproval
	err := r.db.WithContext(ctx).
		Joins("JOIN ideas ON ideas.id = claim_approvals.idea_id").
		Where("claim_approvals.status = ?", models.ClaimApprovalStatusPending).
		Where(
			r.db.Where("ideas.submitter_email = ? AND claim_approvals.owner_decision = ?", email, models.ApprovalSlotPending).
				Or("claim_approvals.manager_email = ? AND claim_approvals.manager_decision = ?", email, models.ApprovalSlotPending),
		).
		Order("claim_approvals.created_at ASC").
		Find(&approvals).Error
	return approvals, err
}

// Update saves every column of approval
func (r *ClaimApprovalRepository) Update(ctx context.Context, approval *models.ClaimApproval) error {
	return r.db.WithContext(ctx).Save(approval).Error
}
