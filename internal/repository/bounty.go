package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// BountyRepository handles database operations for bounties
type BountyRepository struct {
	db *gorm.DB
}

// NewBountyRepository creates a new bounty repository
func NewBountyRepository(db *gorm.DB) *BountyRepository {
	return &BountyRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *BountyRepository) WithTx(tx *gorm.DB) BountyRepositoryInterface {
	return &BountyRepository{db: tx}
}

// Create creates a new bounty
func (r *BountyRepository) Create(ctx context.Context, bounty *models.Bounty) error {
	return r.db.WithContext(ctx).Create(bounty).Error
}

// GetByID retrieves a bounty by ID
func (r *BountyRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Bounty, error) {
	var bounty models.Bounty
	err := r.db.WithContext(ctx).First(&bounty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bounty, nil
}

// GetByIDForUpdate retrieves a bounty by ID and locks its row
func (r *BountyRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Bounty, error) {
	var bounty models.Bounty
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&bounty, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &bounty, nil
}

// ListByIdea retrieves the bounties of an idea
func (r *BountyRepository) ListByIdea(ctx context.Context, ideaID uuid.UUID) ([]models.Bounty, error) {
	var bounties []models.Bounty
	err := r.db.WithContext(ctx).Where("idea_id = ?", ideaID).Order("created_at ASC").Find(&bounties).Error
	return bounties, err
}

// ListPending retrieves gated bounties still waiting for an admin decision
func (r *BountyRepository) ListPending(ctx context.Context, limit, offset int) ([]models.Bounty, int64, error) {
	var bounties []models.Bounty
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Bounty{}).
		Where("requires_approval = ? AND is_approved IS NULL", true)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at ASC").Limit(limit).Offset(offset).Find(&bounties).Error
	return bounties, total, err
}

// Update saves every column of bounty
func (r *BountyRepository) Update(ctx context.Context, bounty *models.Bounty) error {
	return r.db.WithContext(ctx).Save(bounty).Error
}
