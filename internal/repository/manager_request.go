package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ManagerRequestRepository handles database operations for manager requests
type ManagerRequestRepository struct {
	db *gorm.DB
}

// NewManagerRequestRepository creates a new manager request repository
func NewManagerRequestRepository(db *gorm.DB) *ManagerRequestRepository {
	return &ManagerRequestRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *ManagerRequestRepository) WithTx(tx *gorm.DB) ManagerRequestRepositoryInterface {
	return &ManagerRequestRepository{db: tx}
}

// Create creates a new manager request
func (r *ManagerRequestRepository) Create(ctx context.Context, request *models.ManagerRequest) error {
	return r.db.WithContext(ctx).Create(request).Error
}

// GetByID retrieves a manager request by ID
func (r *ManagerRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.ManagerRequest, error) {
	var request models.ManagerRequest
	err := r.db.WithContext(ctx).First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// GetByIDForUpdate retrieves a manager request by ID and locks its row
func (r *ManagerRequestRepository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*models.ManagerRequest, error) {
	var request models.ManagerRequest
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&request, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &request, nil
}

// HasPending reports whether email already has a pending request for team
func (r *ManagerRequestRepository) HasPending(ctx context.Context, email, team string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.ManagerRequest{}).
		Where("requester_email = ? AND team = ? AND status = ?", email, team, models.ManagerRequestStatusPending).
		Count(&count).Error
	return count > 0, err
}

// ListPending retrieves pending manager requests, oldest first
func (r *ManagerRequestRepository) ListPending(ctx context.Context) ([]models.ManagerRequest, error) {
	var requests []models.ManagerRequest
	err := r.db.WithContext(ctx).
		Where("status = ?", models.ManagerRequestStatusPending).
		Order("created_at ASC").
		Find(&requests).Error
	return requests, err
}

// Update saves every column of request
func (r *ManagerRequestRepository) Update(ctx context.Context, request *models.ManagerRequest) error {
	return r.db.WithContext(ctx).Save(request).Error
}
