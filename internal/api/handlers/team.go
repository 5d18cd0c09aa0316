package handlers

import (
	"net/http"

	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TeamHandler handles HTTP requests for team membership and manager requests
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// ManagerDecisionRequest is the body of an admin decision on a manager request
type ManagerDecisionRequest struct {
	Decision service.Decision `json:"decision" binding:"required"`
}

// GetAllTeams handles GET /teams
// @Summary List all teams
// @Tags teams
// @Produce json
// @Success 200 {array} models.Team
// @Security BearerAuth
// @Router /teams [get]
func (h *TeamHandler) GetAllTeams(c *gin.Context) {
	teams, err := h.teamService.GetAllTeams(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, teams)
}

// JoinTeam handles POST /teams/:name/join
// @Summary Join a team
// @Description The team's manager is notified of the new member
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 200 {object} models.UserProfile
// @Failure 404 {object} ErrorResponse "Team or user not found"
// @Failure 409 {object} ErrorResponse "Already a member"
// @Security BearerAuth
// @Router /teams/{name}/join [post]
func (h *TeamHandler) JoinTeam(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	profile, err := h.teamService.JoinTeam(c.Request.Context(), email, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, profile)
}

// RequestManagerRole handles POST /teams/:name/manager-requests
// @Summary Ask to become the manager of a team
// @Tags teams
// @Produce json
// @Param name path string true "Team name"
// @Success 201 {object} models.ManagerRequest
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 409 {object} ErrorResponse "Team already managed or request pending"
// @Security BearerAuth
// @Router /teams/{name}/manager-requests [post]
func (h *TeamHandler) RequestManagerRole(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	request, err := h.teamService.RequestManagerRole(c.Request.Context(), email, c.Param("name"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListPendingManagerRequests handles GET /manager-requests
// @Summary Pending manager requests
// @Tags teams
// @Produce json
// @Success 200 {array} models.ManagerRequest
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Security BearerAuth
// @Router /manager-requests [get]
func (h *TeamHandler) ListPendingManagerRequests(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	requests, err := h.teamService.ListPendingManagerRequests(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, requests)
}

// DecideManagerRequest handles POST /manager-requests/:id/decision
// @Summary Admin decision on a manager request
// @Tags teams
// @Accept json
// @Produce json
// @Param id path string true "Manager request ID (UUID)"
// @Param decision body ManagerDecisionRequest true "Decision"
// @Success 200 {object} models.ManagerRequest
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 404 {object} ErrorResponse "Request not found"
// @Failure 409 {object} ErrorResponse "Request already resolved"
// @Security BearerAuth
// @Router /manager-requests/{id}/decision [post]
func (h *TeamHandler) DecideManagerRequest(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "manager request")
	if !ok {
		return
	}
	var req ManagerDecisionRequest
	if !bindJSON(c, &req) {
		return
	}

	request, err := h.teamService.DecideManagerRequest(c.Request.Context(), id, email, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
