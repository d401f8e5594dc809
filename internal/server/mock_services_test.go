package server

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-list/internal/domain"
	"todo-list/internal/services"
)

// MockTodoService is a testify mock of services.TodoService.
type MockTodoService struct {
	mock.Mock
}

func (m *MockTodoService) Create(ctx context.Context, content, priority string) (*domain.Todo, error) {
	args := m.Called(ctx, content, priority)
	if todo := args.Get(0); todo != nil {
		return todo.(*domain.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTodoService) List(ctx context.Context) ([]*domain.Todo, *domain.Statistics, error) {
	args := m.Called(ctx)
	var todos []*domain.Todo
	if v := args.Get(0); v != nil {
		todos = v.([]*domain.Todo)
	}
	var stats *domain.Statistics
	if v := args.Get(1); v != nil {
		stats = v.(*domain.Statistics)
	}
	return todos, stats, args.Error(2)
}

func (m *MockTodoService) Get(ctx context.Context, id int64) (*domain.Todo, error) {
	args := m.Called(ctx, id)
	if todo := args.Get(0); todo != nil {
		return todo.(*domain.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTodoService) Update(ctx context.Context, id int64, req services.UpdateRequest) (*domain.Todo, error) {
	args := m.Called(ctx, id, req)
	if todo := args.Get(0); todo != nil {
		return todo.(*domain.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockTodoService) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockAssistantService is a testify mock of services.AssistantService.
type MockAssistantService struct {
	mock.Mock
}

func (m *MockAssistantService) Ask(ctx context.Context, input string) (string, error) {
	args := m.Called(ctx, input)
	return args.String(0), args.Error(1)
}
