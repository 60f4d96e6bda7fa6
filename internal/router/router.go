package router

import (
	"github.com/fasthttp/router"
	"github.com/valyala/fasthttp"

	apiHandler "github.com/taskgo/task-service/api/handler"
)

type Handlers struct {
	Task   *apiHandler.TaskHandler
	Health *apiHandler.HealthHandler
}

// New wires the route table. Every /tasks route passes through the identity
// middleware; /health is open.
func New(handlers Handlers, identity func(fasthttp.RequestHandler) fasthttp.RequestHandler) *router.Router {
	r := router.New()

	r.GET("/health", handlers.Health.Check)

	r.POST("/tasks", identity(handlers.Task.CreateTask))
	r.GET("/tasks", identity(handlers.Task.GetTasks))
	r.GET("/tasks/{id}", identity(handlers.Task.GetTask))
	r.PUT("/tasks/{id}", identity(handlers.Task.UpdateTask))
	r.DELETE("/tasks/{id}", identity(handlers.Task.DeleteTask))

	return r
}
