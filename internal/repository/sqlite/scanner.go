package sqlite

// Scanner interface defines the common scanning behavior for both sql.Row and sql.Rows
type Scanner interface {
	Scan(dest ...interface{}) error
}

// Rows interface defines the common behavior for sql.Rows
type Rows interface {
	Next() bool
	Scan(dest ...interface{}) error
	Err() error
}

// ScanTodo scans a single todo from a database row
func ScanTodo(scanner Scanner) (*Todo, error) {
	todo := &Todo{}
	var createdAt string

	err := scanner.Scan(
		&todo.ID,
		&todo.Content,
		&todo.Priority,
		&createdAt,
	)
	if err != nil {
		return nil, err
	}

	todo.CreatedAt, err = ParseTimeFromDB(createdAt)
	if err != nil {
		return nil, err
	}

	return todo, nil
}

// ScanTodos scans multiple todos from database rows
func ScanTodos(rows Rows) ([]*Todo, error) {
	var todos []*Todo
	for rows.Next() {
		todo, err := ScanTodo(rows)
		if err != nil {
			return nil, err
		}
		todos = append(todos, todo)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return todos, nil
}
