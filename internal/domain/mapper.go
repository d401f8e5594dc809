package domain

import (
	"todo-list/internal/repository/sqlite"
)

// TodoMapper handles conversion between domain and database Todo models.
type TodoMapper struct{}

// NewTodoMapper creates a new TodoMapper instance.
func NewTodoMapper() *TodoMapper {
	return &TodoMapper{}
}

// ToDatabase converts a domain Todo to a database Todo.
func (m *TodoMapper) ToDatabase(domainTodo Todo) sqlite.Todo {
	return sqlite.Todo{
		ID:        domainTodo.ID,
		Content:   domainTodo.Content,
		Priority:  string(domainTodo.Priority),
		CreatedAt: domainTodo.CreatedAt,
	}
}

// FromDatabase converts a database Todo to a domain Todo.
func (m *TodoMapper) FromDatabase(dbTodo sqlite.Todo) Todo {
	return Todo{
		ID:        dbTodo.ID,
		Content:   dbTodo.Content,
		Priority:  Priority(dbTodo.Priority),
		CreatedAt: dbTodo.CreatedAt,
	}
}

// FromDatabaseSlice converts a slice of database Todos to domain Todos.
func (m *TodoMapper) FromDatabaseSlice(dbTodos []*sqlite.Todo) []*Todo {
	domainTodos := make([]*Todo, len(dbTodos))
	for i, dbTodo := range dbTodos {
		todo := m.FromDatabase(*dbTodo)
		domainTodos[i] = &todo
	}
	return domainTodos
}

// Mapper provides a unified interface for all mapping operations.
type Mapper struct {
	Todo *TodoMapper
}

// NewMapper creates a new Mapper instance with all sub-mappers.
func NewMapper() *Mapper {
	return &Mapper{
		Todo: NewTodoMapper(),
	}
}
