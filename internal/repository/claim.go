package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClaimRepository handles database operations for claims
type ClaimRepository struct {
	db *gorm.DB
}

// NewClaimRepository creates a new claim repository
func NewClaimRepository(db *gorm.DB) *ClaimRepository {
	return &ClaimRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *ClaimRepository) WithTx(tx *gorm.DB) ClaimRepositoryInterface {
	return &ClaimRepository{db: tx}
}

// Create creates a new claim
func (r *ClaimRepository) Create(ctx context.Context, claim *models.Claim) error {
	return r.db.WithContext(ctx).Create(claim).Error
}

// GetByIdeaID retrieves the claim of an idea
func (r *ClaimRepository) GetByIdeaID(ctx context.Context, ideaID uuid.UUID) (*models.Claim, error) {
	var claim models.Claim
	err := r.db.WithContext(ctx).First(&claim, "idea_id = ?", ideaID).Error
	if err != nil {
		return nil, err
	}
	return &claim, nil
}

// CountByIdeaID counts claims for an idea
func (r *ClaimRepository) CountByIdeaID(ctx context.Context, ideaID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Claim{}).Where("idea_id = ?", ideaID).Count(&count).Error
	return count, err
}
