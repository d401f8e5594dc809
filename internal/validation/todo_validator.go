package validation

import (
	"todo-list/internal/domain"
)

// DefaultContentMaxLength matches the todos.content column cap.
const DefaultContentMaxLength = 200

// TodoValidator provides validation for todo operations
type TodoValidator struct {
	validator        *Validator
	contentMaxLength int
}

// NewTodoValidator creates a new todo validator with the default content cap
func NewTodoValidator() *TodoValidator {
	return NewTodoValidatorWithLimit(DefaultContentMaxLength)
}

// NewTodoValidatorWithLimit creates a todo validator with a custom content cap
func NewTodoValidatorWithLimit(contentMaxLength int) *TodoValidator {
	if contentMaxLength <= 0 {
		contentMaxLength = DefaultContentMaxLength
	}
	return &TodoValidator{
		validator:        NewValidator(),
		contentMaxLength: contentMaxLength,
	}
}

// ValidateContent validates todo content for creation or update.
// The content is expected to be trimmed by the caller.
func (tv *TodoValidator) ValidateContent(content string) error {
	validationError := NewValidationError()

	if !tv.validator.IsNonEmptyString(content) {
		validationError.AddRequiredError("content")
		return validationError
	}

	if !tv.validator.IsWithinMaxLength(content, tv.contentMaxLength) {
		validationError.AddInvalidLengthError("content", content, tv.contentMaxLength)
		return validationError
	}

	return nil
}

// ValidatePriority validates that a priority value is one of the known levels.
// Empty strings are rejected; defaulting a missing priority is the caller's job.
func (tv *TodoValidator) ValidatePriority(priority string) error {
	if !domain.Priority(priority).Valid() {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("priority", priority, "must be one of high, medium, low")
		return validationError
	}
	return nil
}

// ValidateID validates a todo ID
func (tv *TodoValidator) ValidateID(id int64) error {
	if !tv.validator.IsValidID(id) {
		validationError := NewValidationError()
		validationError.AddInvalidValueError("id", id, "must be a positive integer")
		return validationError
	}
	return nil
}
