package handler

import (
	"net/http"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"github.com/taskgo/task-service/api/transport"
	"github.com/taskgo/task-service/internal/infrastructure/monitor"
	"github.com/taskgo/task-service/pkg/httpcontext"
)

type HealthHandler struct {
	baseHandler
	monitor *monitor.Monitor
	service string
}

func NewHealthHandler(mon *monitor.Monitor, service string, adapter *httpcontext.Adapter, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		baseHandler: newBaseHandler(adapter, logger),
		monitor:     mon,
		service:     service,
	}
}

// Check always answers 200; a database outage is reported in the body, not
// through the HTTP status.
//
// @Summary Health check
// @Tags health
// @Router /health [get]
func (h *HealthHandler) Check(ctx *fasthttp.RequestCtx) {
	database := "down"
	if h.monitor != nil && h.monitor.DatabaseUp() {
		database = "up"
	}

	h.respondJSON(ctx, http.StatusOK, transport.HealthResponse{
		Status:   "healthy",
		Database: database,
		Service:  h.service,
	})
}
