package services

import (
	"context"

	"todo-list/internal/domain"
)

// UpdateRequest carries the optional fields of a partial todo update.
// A nil field is left untouched.
type UpdateRequest struct {
	Content  *string
	Priority *string
}

// TodoService handles the todo lifecycle: validation, defaulting,
// timestamps, ordering and statistics.
type TodoService interface {
	Create(ctx context.Context, content, priority string) (*domain.Todo, error)
	List(ctx context.Context) ([]*domain.Todo, *domain.Statistics, error)
	Get(ctx context.Context, id int64) (*domain.Todo, error)
	Update(ctx context.Context, id int64, req UpdateRequest) (*domain.Todo, error)
	Delete(ctx context.Context, id int64) error
}

// AssistantService relays user questions to the configured text
// generation capability.
type AssistantService interface {
	Ask(ctx context.Context, input string) (string, error)
}
