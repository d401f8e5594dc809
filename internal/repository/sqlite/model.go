package sqlite

import "time"

// Todo represents a row of the todos table.
type Todo struct {
	ID        int64
	Content   string
	Priority  string
	CreatedAt time.Time
}
