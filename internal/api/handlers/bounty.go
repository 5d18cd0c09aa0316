package handlers

import (
	"net/http"

	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// BountyHandler handles HTTP requests for bounties and their approval gate
type BountyHandler struct {
	bountyService service.BountyServiceInterface
}

// NewBountyHandler creates a new bounty handler
func NewBountyHandler(bountyService service.BountyServiceInterface) *BountyHandler {
	return &BountyHandler{
		bountyService: bountyService,
	}
}

// CreateBounty handles POST /ideas/:id/bounties
// @Summary Attach a bounty to an idea
// @Description Monetary, non-expensed bounties above the configured threshold wait for an admin decision
// @Tags bounties
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param bounty body service.CreateBountyRequest true "Bounty data"
// @Success 201 {object} models.Bounty
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 403 {object} ErrorResponse "Caller is not the owner or an admin"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/bounties [post]
func (h *BountyHandler) CreateBounty(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req service.CreateBountyRequest
	if !bindJSON(c, &req) {
		return
	}

	bounty, err := h.bountyService.CreateBounty(c.Request.Context(), id, email, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bounty)
}

// ListBounties handles GET /ideas/:id/bounties
// @Summary List bounties of an idea
// @Tags bounties
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Success 200 {array} models.Bounty
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/bounties [get]
func (h *BountyHandler) ListBounties(c *gin.Context) {
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}

	bounties, err := h.bountyService.ListBounties(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounties)
}

// GetBounty handles GET /bounties/:id
// @Summary Get bounty by ID
// @Tags bounties
// @Produce json
// @Param id path string true "Bounty ID (UUID)"
// @Success 200 {object} models.Bounty
// @Failure 404 {object} ErrorResponse "Bounty not found"
// @Security BearerAuth
// @Router /bounties/{id} [get]
func (h *BountyHandler) GetBounty(c *gin.Context) {
	id, ok := uuidParam(c, "id", "bounty")
	if !ok {
		return
	}

	bounty, err := h.bountyService.GetBounty(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounty)
}

// UpdateBountyAmount handles PUT /bounties/:id/amount
// @Summary Change the amount of an undecided bounty
// @Tags bounties
// @Accept json
// @Produce json
// @Param id path string true "Bounty ID (UUID)"
// @Param amount body service.UpdateBountyAmountRequest true "New amount"
// @Success 200 {object} models.Bounty
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 403 {object} ErrorResponse "Caller is not the owner or an admin"
// @Failure 409 {object} ErrorResponse "Bounty decision already recorded"
// @Security BearerAuth
// @Router /bounties/{id}/amount [put]
func (h *BountyHandler) UpdateBountyAmount(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "bounty")
	if !ok {
		return
	}
	var req service.UpdateBountyAmountRequest
	if !bindJSON(c, &req) {
		return
	}

	bounty, err := h.bountyService.UpdateBountyAmount(c.Request.Context(), id, email, req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounty)
}

// DecideBounty handles POST /bounties/:id/decision
// @Summary Admin decision on a gated bounty
// @Tags bounties
// @Accept json
// @Produce json
// @Param id path string true "Bounty ID (UUID)"
// @Param decision body service.DecideBountyRequest true "Decision"
// @Success 200 {object} models.Bounty
// @Failure 403 {object} ErrorResponse "Admin role required"
// @Failure 409 {object} ErrorResponse "Bounty not gated or already decided"
// @Security BearerAuth
// @Router /bounties/{id}/decision [post]
func (h *BountyHandler) DecideBounty(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "bounty")
	if !ok {
		return
	}
	var req service.DecideBountyRequest
	if !bindJSON(c, &req) {
		return
	}

	bounty, err := h.bountyService.DecideBounty(c.Request.Context(), id, email, req.Decision)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounty)
}

// PendingBounties handles GET /bounties/pending
// @Summary Bounties waiting on an admin decision
// @Tags bounties
// @Produce json
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.BountyListResponse
// @Security BearerAuth
// @Router /bounties/pending [get]
func (h *BountyHandler) PendingBounties(c *gin.Context) {
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	bounties, err := h.bountyService.PendingBounties(c.Request.Context(), page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, bounties)
}
