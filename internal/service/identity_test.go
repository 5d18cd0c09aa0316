package service_test

import (
	"context"
	"errors"
	"testing"

	"idea-marketplace-backend/internal/database/models"
	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/mocks"
	"idea-marketplace-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

func strPtr(s string) *string { return &s }

func TestUserIdentityResolver_ResolveActor(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	resolver := service.NewUserIdentityResolver(users, []string{" Root@Example.com "})
	ctx := context.Background()

	t.Run("NormalizesEmail", func(t *testing.T) {
		users.EXPECT().GetByEmail(gomock.Any(), "dev@example.com").Return(&models.UserProfile{
			Email:       "dev@example.com",
			Role:        models.UserRoleManager,
			Team:        strPtr("platform"),
			ManagedTeam: strPtr("platform"),
			IsVerified:  true,
		}, nil)

		actor, err := resolver.ResolveActor(ctx, "  DEV@example.com")
		require.NoError(t, err)
		assert.Equal(t, "platform", actor.Team)
		assert.True(t, actor.Manages("platform"))
		assert.False(t, actor.Manages(""))
		assert.False(t, actor.IsAdmin())
	})

	t.Run("ConfiguredAdmin", func(t *testing.T) {
		users.EXPECT().GetByEmail(gomock.Any(), "root@example.com").
			Return(&models.UserProfile{Email: "root@example.com", Role: models.UserRoleUser, IsVerified: true}, nil)

		actor, err := resolver.ResolveActor(ctx, "root@example.com")
		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})

	t.Run("Unverified", func(t *testing.T) {
		users.EXPECT().GetByEmail(gomock.Any(), "new@example.com").
			Return(&models.UserProfile{Email: "new@example.com", IsVerified: false}, nil)

		_, err := resolver.ResolveActor(ctx, "new@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotVerified)
	})

	t.Run("Unknown", func(t *testing.T) {
		users.EXPECT().GetByEmail(gomock.Any(), "ghost@example.com").Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.ResolveActor(ctx, "ghost@example.com")
		assert.ErrorIs(t, err, apperrors.ErrUserNotFound)
	})

	t.Run("Blank", func(t *testing.T) {
		_, err := resolver.ResolveActor(ctx, "   ")
		assert.ErrorIs(t, err, apperrors.ErrMissingActorInContext)
	})

	t.Run("RepositoryFailure", func(t *testing.T) {
		users.EXPECT().GetByEmail(gomock.Any(), "dev@example.com").Return(nil, errors.New("boom"))

		_, err := resolver.ResolveActor(ctx, "dev@example.com")
		require.Error(t, err)
		assert.Equal(t, apperrors.KindInternal, apperrors.KindOf(err))
	})
}

func TestUserIdentityResolver_ManagerOfAndAdminPool(t *testing.T) {
	ctrl := gomock.NewController(t)
	users := mocks.NewMockUserRepositoryInterface(ctrl)
	resolver := service.NewUserIdentityResolver(users, []string{"root@example.com"})
	ctx := context.Background()

	t.Run("NoTeam", func(t *testing.T) {
		_, err := resolver.ManagerOf(ctx, "")
		assert.ErrorIs(t, err, apperrors.ErrManagerNotFound)
	})

	t.Run("NoManager", func(t *testing.T) {
		users.EXPECT().GetManagerOfTeam(gomock.Any(), "growth").Return(nil, gorm.ErrRecordNotFound)

		_, err := resolver.ManagerOf(ctx, "growth")
		assert.ErrorIs(t, err, apperrors.ErrManagerNotFound)
	})

	t.Run("Manager", func(t *testing.T) {
		users.EXPECT().GetManagerOfTeam(gomock.Any(), "platform").
			Return(&models.UserProfile{Email: "mgr@example.com", ManagedTeam: strPtr("platform")}, nil)

		manager, err := resolver.ManagerOf(ctx, "platform")
		require.NoError(t, err)
		assert.Equal(t, "mgr@example.com", manager.Email)
	})

	t.Run("AdminPoolMergesConfiguredAndStored", func(t *testing.T) {
		users.EXPECT().ListAdmins(gomock.Any()).Return([]models.UserProfile{
			{Email: "Root@example.com"},
			{Email: "ops@example.com"},
		}, nil)

		pool, err := resolver.AdminPool(ctx)
		require.NoError(t, err)
		assert.Equal(t, []string{"root@example.com", "ops@example.com"}, pool)
	})
}
