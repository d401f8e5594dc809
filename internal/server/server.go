// Package server exposes the todo and assistant services over HTTP.
package server

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"todo-list/internal/services"
)

// Server wires the services into an HTTP handler.
type Server struct {
	todos     services.TodoService
	assistant services.AssistantService
	logger    zerolog.Logger
}

// New creates a new Server instance
func New(todos services.TodoService, assistant services.AssistantService, logger zerolog.Logger) *Server {
	return &Server{
		todos:     todos,
		assistant: assistant,
		logger:    logger,
	}
}

// Router builds the gin engine with all routes and middleware registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(RequestLogger(s.logger))

	r.GET("/", s.handleIndex)

	api := r.Group("/api")
	{
		api.GET("/todos", s.handleListTodos)
		api.POST("/todos", s.handleCreateTodo)
		api.PUT("/todos/:id", s.handleUpdateTodo)
		api.DELETE("/todos/:id", s.handleDeleteTodo)
		api.POST("/assistant", s.handleAsk)
	}

	return r
}
