package services

import (
	"context"

	"github.com/stretchr/testify/mock"

	"todo-list/internal/repository/sqlite"
)

// MockRepository is a testify mock of sqlite.Repository for failure injection.
type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) CreateTodo(ctx context.Context, todo *sqlite.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockRepository) GetTodo(ctx context.Context, id int64) (*sqlite.Todo, error) {
	args := m.Called(ctx, id)
	if todo := args.Get(0); todo != nil {
		return todo.(*sqlite.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) ListTodos(ctx context.Context) ([]*sqlite.Todo, error) {
	args := m.Called(ctx)
	if todos := args.Get(0); todos != nil {
		return todos.([]*sqlite.Todo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockRepository) UpdateTodo(ctx context.Context, todo *sqlite.Todo) error {
	args := m.Called(ctx, todo)
	return args.Error(0)
}

func (m *MockRepository) DeleteTodo(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockRepository) Close() error {
	args := m.Called()
	return args.Error(0)
}
