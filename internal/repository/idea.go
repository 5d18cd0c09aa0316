package repository

import (
	"context"
	"time"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// IdeaRepository handles database operations for ideas
type IdeaRepository struct {
	db *gorm.DB
}

// NewIdeaRepository creates a new idea repository
func NewIdeaRepository(db *gorm.DB) *IdeaRepository {
	return &IdeaRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *IdeaRepository) WithTx(tx *gorm.DB) IdeaRepositoryInterface {
	return &IdeaRepository{db: tx}
}

// Create creates a new idea
func (r *IdeaRepository) Create(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).Create(idea).Error
}

// GetByID retrieves an idea by ID
func (r *IdeaRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.WithContext(ctx).First(&idea, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// GetByIDForUpdate retrieves an idea by ID and holds a row lock until the transaction ends
func (r *IdeaRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.Idea, error) {
	var idea models.Idea
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&idea, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &idea, nil
}

// List retrieves ideas matching filter with pagination
func (r *IdeaRepository) List(ctx context.Context, filter IdeaFilter, limit, offset int) ([]models.Idea, int64, error) {
	var ideas []models.Idea
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Idea{})
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}
	if filter.Team != "" {
		query = query.Where("team = ?", filter.Team)
	}
	if filter.SubmitterEmail != "" {
		query = query.Where("submitter_email = ?", filter.SubmitterEmail)
	}
	if filter.ClaimedBy != "" {
		query = query.Where("claimed_by = ?", filter.ClaimedBy)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&ideas).Error
	return ideas, total, err
}

// MarkClaimed moves an open idea to claimed and reports how many rows changed.
// Zero rows means the idea was no longer open when the update ran.
func (r *IdeaRepository) MarkClaimed(ctx context.Context, id uuid.UUID, claimerEmail, actorEmail string, at time.Time) (int64, error) {
	result := r.db.WithContext(ctx).Model(&models.Idea{}).
		Where("id = ? AND status = ?", id, models.IdeaStatusOpen).
		Updates(map[string]interface{}{
			"status":                models.IdeaStatusClaimed,
			"sub_status":            models.SubStatusPlanning,
			"claimed_by":            claimerEmail,
			"progress_percentage":   0,
			"blocked_reason":        "",
			"sub_status_updated_at": at,
			"sub_status_updated_by": actorEmail,
			"updated_at":            at,
		})
	return result.RowsAffected, result.Error
}

// UpdateLifecycle persists the lifecycle columns of idea, including zero values
func (r *IdeaRepository) UpdateLifecycle(ctx context.Context, idea *models.Idea) error {
	return r.db.WithContext(ctx).Model(idea).
		Select("status", "sub_status", "progress_percentage", "blocked_reason",
			"sub_status_updated_at", "sub_status_updated_by", "claimed_by", "completed_at", "updated_at").
		Updates(idea).Error
}
