package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

const dbPingTimeout = 2 * time.Second

// PushStats is the view of the realtime hub the health endpoints report on
type PushStats interface {
	Stats() (enabled bool, users, connections int)
}

// HealthHandler reports on the database and the notification push channel
type HealthHandler struct {
	db   *gorm.DB
	push PushStats
}

// NewHealthHandler creates a new health handler. push may be nil when the hub is not running.
func NewHealthHandler(db *gorm.DB, push PushStats) *HealthHandler {
	return &HealthHandler{db: db, push: push}
}

// PushHealth describes the websocket notification channel
type PushHealth struct {
	Enabled     bool `json:"enabled"`
	Users       int  `json:"users"`
	Connections int  `json:"connections"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string      `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	Database  string      `json:"database"`
	Push      *PushHealth `json:"push,omitempty"`
}

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// Health returns the health status of the marketplace backend.
// A failing database makes the service unhealthy; push is informational only.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now().UTC(),
		Database:  "healthy",
	}
	if h.push != nil {
		enabled, users, connections := h.push.Stats()
		response.Push = &PushHealth{Enabled: enabled, Users: users, Connections: connections}
	}

	if err := h.pingDatabase(c.Request.Context()); err != nil {
		response.Status = "unhealthy"
		response.Database = "error: " + err.Error()
		c.JSON(http.StatusServiceUnavailable, response)
		return
	}
	c.JSON(http.StatusOK, response)
}

// Ready reports whether requests can be served, which only needs the database
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 503 {object} map[string]interface{}
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	if err := h.pingDatabase(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"ready": false, "reason": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"ready": true})
}

// Live always answers while the process runs
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"alive": true})
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, dbPingTimeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
