package routes

import (
	"fmt"
	"time"

	"idea-marketplace-backend/internal/api/handlers"
	"idea-marketplace-backend/internal/api/middleware"
	"idea-marketplace-backend/internal/auth"
	"idea-marketplace-backend/internal/config"
	"idea-marketplace-backend/internal/realtime"
	"idea-marketplace-backend/internal/repository"
	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

const tokenTTL = 24 * time.Hour

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg))

	validator := validator.New()

	// Repositories, identity and notification fan-out
	repos := repository.NewRepositories(db)
	identity := service.NewUserIdentityResolver(repos.User, cfg.AdminEmails)
	hub := realtime.NewHub(cfg.AllowedOrigins, cfg.NotificationPushEnabled)
	dispatcher := service.NewDispatcher(repos.Notification, hub)

	// Services
	ideaService := service.NewIdeaService(repos, identity, dispatcher, validator)
	claimService := service.NewClaimService(repos, identity, dispatcher)
	bountyService := service.NewBountyService(repos, identity, dispatcher, validator, cfg.BountyApprovalThreshold)
	notificationService := service.NewNotificationService(repos.Notification)
	teamService := service.NewTeamService(repos, identity, dispatcher)

	tokenService, err := auth.NewTokenService(cfg.JWTSecret, cfg.JWTIssuer, tokenTTL)
	if err != nil {
		return nil, fmt.Errorf("failed to create token service: %w", err)
	}
	authMiddleware := auth.NewAuthMiddleware(tokenService)

	// Handlers
	healthHandler := handlers.NewHealthHandler(db, hub)
	ideaHandler := handlers.NewIdeaHandler(ideaService)
	claimHandler := handlers.NewClaimHandler(claimService)
	bountyHandler := handlers.NewBountyHandler(bountyService)
	notificationHandler := handlers.NewNotificationHandler(notificationService, hub)
	teamHandler := handlers.NewTeamHandler(teamService)

	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	router.GET("/ws/notifications", authMiddleware.RequireQueryToken(), notificationHandler.Stream)

	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		ideas := v1.Group("/ideas")
		{
			ideas.POST("", ideaHandler.CreateIdea)
			ideas.GET("", ideaHandler.ListIdeas)
			ideas.GET("/:id", ideaHandler.GetIdea)
			ideas.PUT("/:id/sub-status", ideaHandler.UpdateSubStatus)
			ideas.POST("/:id/complete", ideaHandler.CompleteIdea)
			ideas.GET("/:id/history", ideaHandler.ListHistory)
			ideas.GET("/:id/activity", ideaHandler.ListActivity)
			ideas.POST("/:id/comments", ideaHandler.AddComment)
			ideas.POST("/:id/links", ideaHandler.AddLink)

			ideas.POST("/:id/claims", claimHandler.RequestClaim)
			ideas.GET("/:id/claims", claimHandler.ListClaimApprovals)
			ideas.POST("/:id/claims/decision", claimHandler.DecideClaim)

			ideas.POST("/:id/bounties", bountyHandler.CreateBounty)
			ideas.GET("/:id/bounties", bountyHandler.ListBounties)
		}

		v1.GET("/claims/pending", claimHandler.PendingApprovals)

		bounties := v1.Group("/bounties")
		{
			bounties.GET("/pending", bountyHandler.PendingBounties)
			bounties.GET("/:id", bountyHandler.GetBounty)
			bounties.PUT("/:id/amount", bountyHandler.UpdateBountyAmount)
			bounties.POST("/:id/decision", bountyHandler.DecideBounty)
		}

		notifications := v1.Group("/notifications")
		{
			notifications.GET("", notificationHandler.ListNotifications)
			notifications.GET("/unread-count", notificationHandler.UnreadCount)
			notifications.POST("/read-all", notificationHandler.MarkAllRead)
			notifications.POST("/:id/read", notificationHandler.MarkRead)
		}

		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.GetAllTeams)
			teams.POST("/:name/join", teamHandler.JoinTeam)
			teams.POST("/:name/manager-requests", teamHandler.RequestManagerRole)
		}

		v1.GET("/manager-requests", teamHandler.ListPendingManagerRequests)
		v1.POST("/manager-requests/:id/decision", teamHandler.DecideManagerRequest)
	}

	return router, nil
}
