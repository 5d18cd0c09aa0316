package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ActivityRepository handles database operations for idea activities
type ActivityRepository struct {
	db *gorm.DB
}

// NewActivityRepository creates a new activity repository
func NewActivityRepository(db *gorm.DB) *ActivityRepository {
	return &ActivityRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *ActivityRepository) WithTx(tx *gorm.DB) ActivityRepositoryInterface {
	return &ActivityRepository{db: tx}
}

// Append inserts an activity row
func (r *ActivityRepository) Append(ctx context.Context, activity *models.IdeaActivity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

// ListByIdea retrieves the activity feed of an idea, newest first
func (r *ActivityRepository) ListByIdea(ctx context.Context, ideaID uuid.UUID, limit, offset int) ([]models.IdeaActivity, int64, error) {
	var activities []models.IdeaActivity
	var total int64

	query := r.db.WithContext(ctx).Model(&models.IdeaActivity{}).Where("idea_id = ?", ideaID)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&activities).Error
	return activities, total, err
}
