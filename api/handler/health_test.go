package handler_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskgo/task-service/api/handler"
	"github.com/taskgo/task-service/api/transport"
	"github.com/taskgo/task-service/internal/infrastructure/monitor"
)

func TestHealthReportsDatabaseDownWith200(t *testing.T) {
	// monitor with no pool has never seen a successful probe
	mon := monitor.New(nil, nil, 0, nil)
	health := apiHandler.NewHealthHandler(mon, "task-service", nil, nil)

	var req fasthttp.Request
	req.Header.SetMethod(http.MethodGet)
	req.SetRequestURI("/health")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	health.Check(ctx)

	require.Equal(t, http.StatusOK, ctx.Response.StatusCode())

	var body transport.HealthResponse
	require.NoError(t, json.Unmarshal(ctx.Response.Body(), &body))
	assert.Equal(t, "healthy", body.Status)
	assert.Equal(t, "down", body.Database)
	assert.Equal(t, "task-service", body.Service)
}

func TestHealthRequiresNoIdentityHeader(t *testing.T) {
	h := newTestHandler(t)

	var req fasthttp.Request
	req.Header.SetMethod(http.MethodGet)
	req.SetRequestURI("/health")

	ctx := &fasthttp.RequestCtx{}
	ctx.Init(&req, nil, nil)
	h(ctx)

	assert.Equal(t, http.StatusOK, ctx.Response.StatusCode())
}
