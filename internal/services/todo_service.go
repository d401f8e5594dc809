package services

import (
	"context"
	"strings"
	"time"

	"todo-list/internal/domain"
	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite"
	"todo-list/internal/validation"
)

// todoServiceImpl implements the TodoService interface
type todoServiceImpl struct {
	repo      sqlite.Repository
	mapper    *domain.Mapper
	validator *validation.TodoValidator
}

// NewTodoService creates a new TodoService instance with default validation limits
func NewTodoService(repo sqlite.Repository) TodoService {
	return NewTodoServiceWithValidator(repo, validation.NewTodoValidator())
}

// NewTodoServiceWithValidator creates a TodoService with a configured validator
func NewTodoServiceWithValidator(repo sqlite.Repository, validator *validation.TodoValidator) TodoService {
	if validator == nil {
		validator = validation.NewTodoValidator()
	}
	return &todoServiceImpl{
		repo:      repo,
		mapper:    domain.NewMapper(),
		validator: validator,
	}
}

// validateAndTrimContent validates and trims todo content
func (s *todoServiceImpl) validateAndTrimContent(content string) (string, error) {
	trimmed := strings.TrimSpace(content)
	if err := s.validator.ValidateContent(trimmed); err != nil {
		return "", errors.NewValidationError("invalid todo content", err)
	}
	return trimmed, nil
}

// Create validates the input, stamps the creation time and persists a new todo.
// An empty priority falls back to the default.
func (s *todoServiceImpl) Create(ctx context.Context, content, priority string) (*domain.Todo, error) {
	trimmed, err := s.validateAndTrimContent(content)
	if err != nil {
		return nil, err
	}

	parsed, ok := domain.ParsePriority(priority)
	if !ok {
		return nil, errors.NewValidationError("invalid priority",
			s.validator.ValidatePriority(priority))
	}

	dbTodo := s.mapper.Todo.ToDatabase(domain.Todo{
		Content:   trimmed,
		Priority:  parsed,
		CreatedAt: time.Now().UTC(),
	})

	if err := s.repo.CreateTodo(ctx, &dbTodo); err != nil {
		return nil, err
	}

	todo := s.mapper.Todo.FromDatabase(dbTodo)
	return &todo, nil
}

// List returns every todo in display order together with priority counts.
func (s *todoServiceImpl) List(ctx context.Context) ([]*domain.Todo, *domain.Statistics, error) {
	dbTodos, err := s.repo.ListTodos(ctx)
	if err != nil {
		return nil, nil, err
	}

	todos := s.mapper.Todo.FromDatabaseSlice(dbTodos)
	domain.SortTodos(todos)

	return todos, domain.ComputeStatistics(todos), nil
}

// Get retrieves a todo by its ID
func (s *todoServiceImpl) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, errors.NewValidationError("invalid todo id", err)
	}

	dbTodo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	todo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &todo, nil
}

// Update applies the supplied fields to an existing todo. ID and creation
// time never change; a validation failure leaves the stored record as is.
func (s *todoServiceImpl) Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Todo, error) {
	if err := s.validator.ValidateID(id); err != nil {
		return nil, errors.NewValidationError("invalid todo id", err)
	}

	dbTodo, err := s.repo.GetTodo(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Content != nil {
		trimmed, err := s.validateAndTrimContent(*req.Content)
		if err != nil {
			return nil, err
		}
		dbTodo.Content = trimmed
	}

	if req.Priority != nil {
		if err := s.validator.ValidatePriority(*req.Priority); err != nil {
			return nil, errors.NewValidationError("invalid priority", err)
		}
		dbTodo.Priority = *req.Priority
	}

	if err := s.repo.UpdateTodo(ctx, dbTodo); err != nil {
		return nil, err
	}

	todo := s.mapper.Todo.FromDatabase(*dbTodo)
	return &todo, nil
}

// Delete permanently removes a todo
func (s *todoServiceImpl) Delete(ctx context.Context, id int64) error {
	if err := s.validator.ValidateID(id); err != nil {
		return errors.NewValidationError("invalid todo id", err)
	}

	return s.repo.DeleteTodo(ctx, id)
}
