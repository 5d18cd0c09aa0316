package handlers

import (
	"net/http"
	"strconv"

	"idea-marketplace-backend/internal/database/models"
	"idea-marketplace-backend/internal/repository"
	"idea-marketplace-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// IdeaHandler handles HTTP requests for the idea lifecycle
type IdeaHandler struct {
	ideaService service.IdeaServiceInterface
}

// NewIdeaHandler creates a new idea handler
func NewIdeaHandler(ideaService service.IdeaServiceInterface) *IdeaHandler {
	return &IdeaHandler{
		ideaService: ideaService,
	}
}

// CompleteIdeaRequest is the optional body of a completion call
type CompleteIdeaRequest struct {
	Comment string `json:"comment,omitempty"`
}

// CommentRequest is the body of a free-text comment on an idea
type CommentRequest struct {
	Comment string `json:"comment" binding:"required"`
}

// CreateIdea handles POST /ideas
// @Summary Submit an idea
// @Description Create a new open idea owned by the caller
// @Tags ideas
// @Accept json
// @Produce json
// @Param idea body service.CreateIdeaRequest true "Idea data"
// @Success 201 {object} models.Idea
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Security BearerAuth
// @Router /ideas [post]
func (h *IdeaHandler) CreateIdea(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	var req service.CreateIdeaRequest
	if !bindJSON(c, &req) {
		return
	}

	idea, err := h.ideaService.CreateIdea(c.Request.Context(), email, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, idea)
}

// GetIdea handles GET /ideas/:id
// @Summary Get idea by ID
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Success 200 {object} models.Idea
// @Failure 400 {object} ErrorResponse "Invalid idea ID"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id} [get]
func (h *IdeaHandler) GetIdea(c *gin.Context) {
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}

	idea, err := h.ideaService.GetIdea(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// ListIdeas handles GET /ideas
// @Summary List ideas
// @Tags ideas
// @Produce json
// @Param status query string false "Lifecycle status (open, claimed, complete)"
// @Param team query string false "Team name"
// @Param submitter query string false "Submitter email"
// @Param claimed_by query string false "Claimer email"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.IdeaListResponse
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Security BearerAuth
// @Router /ideas [get]
func (h *IdeaHandler) ListIdeas(c *gin.Context) {
	filter := repository.IdeaFilter{
		Status:         models.IdeaStatus(c.Query("status")),
		Team:           c.Query("team"),
		SubmitterEmail: c.Query("submitter"),
		ClaimedBy:      c.Query("claimed_by"),
	}
	if filter.Status != "" && !filter.Status.IsValid() {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid status filter"})
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	ideas, err := h.ideaService.ListIdeas(c.Request.Context(), filter, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, ideas)
}

// UpdateSubStatus handles PUT /ideas/:id/sub-status
// @Summary Move a claimed idea to another sub-status
// @Description Records a history entry and notifies the stakeholders. Verified at 100% completes the idea.
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param update body service.UpdateSubStatusRequest true "Sub-status change"
// @Success 200 {object} models.Idea
// @Failure 400 {object} ErrorResponse "Invalid sub-status, progress or blocked reason"
// @Failure 403 {object} ErrorResponse "Caller may not drive this idea"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Failure 409 {object} ErrorResponse "Transition not allowed"
// @Security BearerAuth
// @Router /ideas/{id}/sub-status [put]
func (h *IdeaHandler) UpdateSubStatus(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req service.UpdateSubStatusRequest
	if !bindJSON(c, &req) {
		return
	}

	idea, err := h.ideaService.UpdateSubStatus(c.Request.Context(), id, email, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// CompleteIdea handles POST /ideas/:id/complete
// @Summary Mark a claimed idea complete
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param body body CompleteIdeaRequest false "Optional comment"
// @Success 200 {object} models.Idea
// @Failure 403 {object} ErrorResponse "Caller may not complete this idea"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Failure 409 {object} ErrorResponse "Idea is open or already complete"
// @Security BearerAuth
// @Router /ideas/{id}/complete [post]
func (h *IdeaHandler) CompleteIdea(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req CompleteIdeaRequest
	if c.Request.ContentLength > 0 && !bindJSON(c, &req) {
		return
	}

	idea, err := h.ideaService.CompleteIdea(c.Request.Context(), id, email, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, idea)
}

// ListHistory handles GET /ideas/:id/history
// @Summary Status history of an idea in sequence order
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param after query int false "Return entries with a sequence greater than this"
// @Param limit query int false "Maximum number of entries (max 1000)"
// @Success 200 {array} models.StatusHistory
// @Failure 400 {object} ErrorResponse "Invalid parameters"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/history [get]
func (h *IdeaHandler) ListHistory(c *gin.Context) {
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	after, err := strconv.ParseInt(c.DefaultQuery("after", "0"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid after"})
		return
	}
	limit, err := strconv.Atoi(c.DefaultQuery("limit", "0"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid limit"})
		return
	}

	history, err := h.ideaService.ListHistory(c.Request.Context(), id, after, limit)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, history)
}

// ListActivity handles GET /ideas/:id/activity
// @Summary Activity feed of an idea, newest first
// @Tags ideas
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Number of items per page" default(20)
// @Success 200 {object} service.ActivityListResponse
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/activity [get]
func (h *IdeaHandler) ListActivity(c *gin.Context) {
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	page, pageSize, ok := pageParams(c)
	if !ok {
		return
	}

	activity, err := h.ideaService.ListActivity(c.Request.Context(), id, page, pageSize)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, activity)
}

// AddComment handles POST /ideas/:id/comments
// @Summary Comment on an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param comment body CommentRequest true "Comment"
// @Success 201 {object} models.IdeaActivity
// @Failure 400 {object} ErrorResponse "Empty comment"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/comments [post]
func (h *IdeaHandler) AddComment(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req CommentRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.ideaService.AddComment(c.Request.Context(), id, email, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}

// AddLink handles POST /ideas/:id/links
// @Summary Attach a link to an idea
// @Tags ideas
// @Accept json
// @Produce json
// @Param id path string true "Idea ID (UUID)"
// @Param link body service.AddLinkRequest true "Link"
// @Success 201 {object} models.IdeaActivity
// @Failure 400 {object} ErrorResponse "Invalid link"
// @Failure 404 {object} ErrorResponse "Idea not found"
// @Security BearerAuth
// @Router /ideas/{id}/links [post]
func (h *IdeaHandler) AddLink(c *gin.Context) {
	email, ok := actorEmail(c)
	if !ok {
		return
	}
	id, ok := uuidParam(c, "id", "idea")
	if !ok {
		return
	}
	var req service.AddLinkRequest
	if !bindJSON(c, &req) {
		return
	}

	activity, err := h.ideaService.AddLink(c.Request.Context(), id, email, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, activity)
}
