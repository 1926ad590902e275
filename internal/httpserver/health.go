package httpserver

import (
	"context"
	"net/http"
	"time"

	"ministry-srv/pkg/errors"
	"ministry-srv/pkg/response"

	"github.com/gin-gonic/gin"
)

const (
	serviceName    = "ministry-srv"
	serviceVersion = "1.0.0"
	pingTimeout    = 2 * time.Second
)

func (srv *HTTPServer) pingDB(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return srv.db.PingContext(ctx)
}

// healthCheck handles health check requests
// @Summary Health Check
// @Description Reports the service and store status
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is healthy"
// @Failure 503 {object} response.ErrorResp "Store unreachable"
// @Router /health [get]
func (srv *HTTPServer) healthCheck(c *gin.Context) {
	ctx := c.Request.Context()

	if err := srv.pingDB(ctx); err != nil {
		srv.l.Errorf(ctx, "internal.httpserver.healthCheck.pingDB: %v", err)
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection failed", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":   "healthy",
		"version":  serviceVersion,
		"service":  serviceName,
		"database": srv.dbDriver,
	})
}

// readyCheck handles readiness check requests
// @Summary Readiness Check
// @Description Reports whether the store answers
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is ready"
// @Failure 503 {object} response.ErrorResp "Service is not ready"
// @Router /ready [get]
func (srv *HTTPServer) readyCheck(c *gin.Context) {
	if err := srv.pingDB(c.Request.Context()); err != nil {
		response.HttpError(c, errors.NewHTTPError(http.StatusServiceUnavailable, "Database connection not available", http.StatusServiceUnavailable))
		return
	}

	response.OK(c, gin.H{
		"status":  "ready",
		"version": serviceVersion,
		"service": serviceName,
	})
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Reports that the process is running
// @Tags Health
// @Produce json
// @Success 200 {object} map[string]interface{} "Service is alive"
// @Router /live [get]
func (srv *HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, gin.H{
		"status":  "alive",
		"version": serviceVersion,
		"service": serviceName,
	})
}
