package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"todo-list/internal/errors"
	"todo-list/internal/repository/sqlite/migrations"

	_ "modernc.org/sqlite"
)

// Repository defines the interface for database operations
type Repository interface {
	CreateTodo(ctx context.Context, todo *Todo) error
	GetTodo(ctx context.Context, id int64) (*Todo, error)
	ListTodos(ctx context.Context) ([]*Todo, error)
	UpdateTodo(ctx context.Context, todo *Todo) error
	DeleteTodo(ctx context.Context, id int64) error
	Close() error
}

// SQLiteRepository implements the Repository interface
type SQLiteRepository struct {
	db           *sql.DB
	queryTimeout time.Duration
	writeTimeout time.Duration
}

// New opens the database at dbPath and brings the schema up to date.
func New(dbPath string) (*SQLiteRepository, error) {
	return NewWithTimeouts(dbPath, 0, 0)
}

// NewWithTimeouts opens the database with per-operation deadlines.
// A zero timeout disables the deadline for that class of operation.
func NewWithTimeouts(dbPath string, queryTimeout, writeTimeout time.Duration) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, errors.NewDatabaseError("open database", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, errors.NewDatabaseError("run migrations", err)
	}

	return &SQLiteRepository{db: db, queryTimeout: queryTimeout, writeTimeout: writeTimeout}, nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return ctx, func() {}
	}
	return context.WithTimeout(ctx, timeout)
}

// Close closes the database connection
func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}

// CreateTodo inserts a new todo and fills in its assigned ID.
func (r *SQLiteRepository) CreateTodo(ctx context.Context, todo *Todo) error {
	query := `
	INSERT INTO todos (content, priority, created_at)
	VALUES (?, ?, ?)`

	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	id, err := ExecuteWithLastInsertID(ctx, r.db, query, todo.Content, todo.Priority, FormatTimeForDB(todo.CreatedAt))
	if err != nil {
		return err
	}

	todo.ID = id
	return nil
}

// GetTodo retrieves a todo by ID
func (r *SQLiteRepository) GetTodo(ctx context.Context, id int64) (*Todo, error) {
	query := `
	SELECT id, content, priority, created_at
	FROM todos
	WHERE id = ?`

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return QuerySingle(ctx, r.db, query, ScanTodo, "todo", fmt.Sprintf("%d", id), id)
}

// ListTodos retrieves all todos in insertion order.
// Display ordering is the caller's concern.
func (r *SQLiteRepository) ListTodos(ctx context.Context) ([]*Todo, error) {
	query := `
	SELECT id, content, priority, created_at
	FROM todos
	ORDER BY id ASC`

	ctx, cancel := withTimeout(ctx, r.queryTimeout)
	defer cancel()

	return QueryMultiple(ctx, r.db, query, ScanTodos, "todos")
}

// UpdateTodo updates the mutable fields of an existing todo.
// created_at is never written after insert.
func (r *SQLiteRepository) UpdateTodo(ctx context.Context, todo *Todo) error {
	query := `
	UPDATE todos
	SET content = ?, priority = ?
	WHERE id = ?`

	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, query, "todo", fmt.Sprintf("%d", todo.ID), todo.Content, todo.Priority, todo.ID)
}

// DeleteTodo deletes a todo by ID
func (r *SQLiteRepository) DeleteTodo(ctx context.Context, id int64) error {
	query := `DELETE FROM todos WHERE id = ?`

	ctx, cancel := withTimeout(ctx, r.writeTimeout)
	defer cancel()

	return ExecuteWithRowsAffected(ctx, r.db, query, "todo", fmt.Sprintf("%d", id), id)
}
