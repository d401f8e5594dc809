package server

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"todo-list/internal/domain"
	"todo-list/internal/services"
)

type todoResponse struct {
	ID        int64  `json:"id"`
	Content   string `json:"content"`
	Priority  string `json:"priority"`
	CreatedAt string `json:"created_at"`
}

func newTodoResponse(todo *domain.Todo) todoResponse {
	return todoResponse{
		ID:        todo.ID,
		Content:   todo.Content,
		Priority:  todo.Priority.String(),
		CreatedAt: todo.CreatedAt.Format(time.RFC3339),
	}
}

type listTodosResponse struct {
	Todos      []todoResponse     `json:"todos"`
	Statistics *domain.Statistics `json:"statistics"`
}

func (s *Server) handleListTodos(c *gin.Context) {
	todos, stats, err := s.todos.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)
		return
	}

	resp := listTodosResponse{
		Todos:      make([]todoResponse, 0, len(todos)),
		Statistics: stats,
	}
	for _, todo := range todos {
		resp.Todos = append(resp.Todos, newTodoResponse(todo))
	}

	c.JSON(http.StatusOK, resp)
}

type createTodoRequest struct {
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

type createTodoResponse struct {
	ID       int64  `json:"id"`
	Content  string `json:"content"`
	Priority string `json:"priority"`
}

func (s *Server) handleCreateTodo(c *gin.Context) {
	var req createTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	todo, err := s.todos.Create(c.Request.Context(), req.Content, req.Priority)
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, createTodoResponse{
		ID:       todo.ID,
		Content:  todo.Content,
		Priority: todo.Priority.String(),
	})
}

type updateTodoRequest struct {
	Content  *string `json:"content"`
	Priority *string `json:"priority"`
}

func (s *Server) handleUpdateTodo(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	var req updateTodoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid request body")
		return
	}

	todo, err := s.todos.Update(c.Request.Context(), id, services.UpdateRequest{
		Content:  req.Content,
		Priority: req.Priority,
	})
	if err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, newTodoResponse(todo))
}

func (s *Server) handleDeleteTodo(c *gin.Context) {
	id, ok := todoIDParam(c)
	if !ok {
		return
	}

	if err := s.todos.Delete(c.Request.Context(), id); err != nil {
		s.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Todo deleted successfully"})
}

func todoIDParam(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		respondBadRequest(c, "invalid todo id")
		return 0, false
	}
	return id, true
}
