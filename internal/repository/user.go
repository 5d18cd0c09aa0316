package repository

import (
	"context"

	"idea-marketplace-backend/internal/database/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository handles database operations for user profiles
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// WithTx returns a repository bound to tx
func (r *UserRepository) WithTx(tx *gorm.DB) UserRepositoryInterface {
	return &UserRepository{db: tx}
}

// Create creates a new user profile
func (r *UserRepository) Create(ctx context.Context, user *models.UserProfile) error {
	return r.db.WithContext(ctx).Create(user).Error
}

// GetByEmail retrieves a user profile by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.WithContext(ctx).First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmailForUpdate retrieves a user profile by email and locks its row
func (r *UserRepository) GetByEmailForUpdate(ctx context.Context, email string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&user, "email = ?", email).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetManagerOfTeam retrieves the profile whose managed team is team
func (r *UserRepository) GetManagerOfTeam(ctx context.Context, team string) (*models.UserProfile, error) {
	var user models.UserProfile
	err := r.db.WithContext(ctx).First(&user, "managed_team = ?", team).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// ListAdmins retrieves every admin profile
func (r *UserRepository) ListAdmins(ctx context.Context) ([]models.UserProfile, error) {
	var users []models.UserProfile
	err := r.db.WithContext(ctx).Where("role = ?", models.UserRoleAdmin).Order("email ASC").Find(&users).Error
	return users, err
}

// Update saves every column of user
func (r *UserRepository) Update(ctx context.Context, user *models.UserProfile) error {
	return r.db.WithContext(ctx).Save(user).Error
}
