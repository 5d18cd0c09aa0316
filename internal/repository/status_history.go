package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// StatusHistoryRepository appends and reads the per-idea transition ledger
type StatusHistoryRepository struct {
	db *gorm.DB
}

// NewStatusHistoryRepository creates a new status history repository
func NewStatusHistoryRepository(db *gorm.DB) *StatusHistoryRepository {
	return &StatusHistoryRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *StatusHistoryRepository) WithTx(tx *gorm.DB) StatusHistoryRepositoryInterface {
	return &StatusHistoryRepository{db: tx}
}

// Append inserts a ledger row; Sequence is assigned by the database
func (r *StatusHistoryRepository) Append(ctx context.Context, entry *models.StatusHistory) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

// ListByIdea returns ledger rows in append order, starting after afterSequence.
// A non-positive limit returns every remaining row.
func (r *StatusHistoryRepository) ListByIdea(ctx context.Context, ideaID uuid.UUID, afterSequence int64, limit int) ([]models.StatusHistory, error) {
	var entries []models.StatusHistory
	query := r.db.WithContext(ctx).
		Where("idea_id = ? AND sequence > ?", ideaID, afterSequence).
		Order("sequence ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}
	err := query.Find(&entries).Error
	return entries, err
}
