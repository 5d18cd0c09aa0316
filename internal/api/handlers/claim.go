package handlers

import (
	"errors"
	"net/http"

	apperrors "idea-marketplace-backend/internal/errors"
	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ClaimHandler handles HTTP requests for claim approvals
type ClaimHandler struct {
	claimService service.ClaimServiceInterface
}

// NewClaimHandler creates a new claim handler
func NewClaimHandler(claimService service.ClaimServiceInterface) *ClaimHandler {
	return &ClaimHandler{
		claimService: claimService,
	}
}

// RequestClaim handles POST /ideas/:id/claims
// @Summary Request to claim an open idea
// @Description Opens a pending approval that needs the owner and the claimer's manager
// @Tags claims
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Success 201 {object} models.ClaimApproval
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Failure 409 {object} ErrorResponse "Idea not open or a claim is already active"
// @Security BearerAuth
// @Router /ideas/{id}/claims [post]
func (h *ClaimHandler) RequestClaim(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}

	approval, err := h.claimService.RequestClaim(c.Request.Context(), id, email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, approval)
}

// DecideClaim handles POST /ideas/:id/claims/decision
// @Summary Record an owner or manager decision on a claim
// @Description When both slots approve the idea becomes claimed. A 409 with the denied approval is returned when another claim won the idea first.
// @Tags claims
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param decision body service.DecideClaimRequest true "Decision"
// @Success 200 {object} models.ClaimApproval
// @Failure 400 {object} ErrorResponse "Invalid role or decision"
// @Failure 403 {object} ErrorResponse "Caller may not decide this slot"
// @Failure 404 {object} ErrorResponse "No approval for this claimer"
// @Failure 409 {object} map[string]interface{} "Approval resolved or idea already claimed"
// @Security BearerAuth
// @Router /ideas/{id}/claims/decision [post]
func (h *ClaimHandler) DecideClaim(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req service.DecideClaimRequest
	if !bindJSON(c, &req) {
		return
	}

	approval, err := h.claimService.DecideClaim(c.Request.Context(), id, req.ClaimerEmail, email, req.ApproverRole, req.Decision)
	if errors.Is(err, apperrors.ErrClaimRaceLost) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "approval": approval})
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, approval)
}

// ListClaimApprovals handles GET /ideas/:id/claims
// @Summary List claim approvals of an idea
// @Tags claims
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Success 200 {array} models.ClaimApproval
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/claims [get]
func (h *ClaimHandler) ListClaimApprovals(c *gin.Context) {
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}

	approvals, err := h.claimService.ListClaimApprovals(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, approvals)
}

// PendingApprovals handles GET /claims/pending
// @Summary Claim approvals waiting on the caller
// @Tags claims
// @Produce json
// @Success 200 {array} models.ClaimApproval
// @Security BearerAuth
// @Router /claims/pending [get]
func (h *ClaimHandler) PendingApprovals(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}

	approvals, err := h.claimService.PendingForApprover(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, approvals)
}
