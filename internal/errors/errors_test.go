package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewValidationError(t *testing.T) {
	cause := stderrors.New("content is required")
	err := NewValidationError("invalid todo content", cause)

	assert.True(t, err.IsType(ErrorTypeValidation))
	assert.Equal(t, "VALIDATION_FAILED", err.Code)
	assert.Contains(t, err.Error(), "invalid todo content")
	assert.Contains(t, err.Error(), "content is required")
	assert.Equal(t, cause, stderrors.Unwrap(err))
}

func TestNewNotFoundError(t *testing.T) {
	err := NewNotFoundError("todo", "42")

	assert.True(t, err.IsType(ErrorTypeNotFound))
	assert.Equal(t, "todo not found: 42", err.Message)

	resource, ok := err.Context["resource"]
	require.True(t, ok)
	assert.Equal(t, "todo", resource)
}

func TestNewDatabaseError(t *testing.T) {
	cause := stderrors.New("disk I/O error")
	err := NewDatabaseError("insert todo", cause)

	assert.True(t, err.IsType(ErrorTypeDatabase))
	assert.Equal(t, "DATABASE_ERROR", err.Code)
	assert.ErrorIs(t, err, err) // Is matches on type and code
}

func TestNewUnavailableError(t *testing.T) {
	err := NewUnavailableError("assistant", "AI assistant is not available")

	assert.True(t, err.IsType(ErrorTypeUnavailable))
	assert.Equal(t, "AI assistant is not available", GetUserMessage(err))
}

func TestNewUpstreamError(t *testing.T) {
	cause := stderrors.New("quota exceeded")
	err := NewUpstreamError("generate content", cause)

	assert.True(t, err.IsType(ErrorTypeUpstream))
	// upstream failures surface the underlying message to the user
	assert.Equal(t, "quota exceeded", GetUserMessage(err))
}

func TestAsAppError(t *testing.T) {
	appErr := NewNotFoundError("todo", "7")
	wrapped := fmt.Errorf("handler: %w", appErr)

	got, ok := AsAppError(wrapped)
	require.True(t, ok)
	assert.Equal(t, ErrorTypeNotFound, got.Type)

	_, ok = AsAppError(stderrors.New("plain"))
	assert.False(t, ok)
}

func TestIsErrorType(t *testing.T) {
	err := NewDatabaseError("list todos", stderrors.New("locked"))

	assert.True(t, IsErrorType(err, ErrorTypeDatabase))
	assert.False(t, IsErrorType(err, ErrorTypeValidation))
	assert.False(t, IsErrorType(stderrors.New("plain"), ErrorTypeDatabase))
}

func TestGetUserMessage_HidesDatabaseDetails(t *testing.T) {
	err := NewDatabaseError("update todo", stderrors.New("constraint failed: todos.content"))

	msg := GetUserMessage(err)
	assert.NotContains(t, msg, "constraint")
	assert.Contains(t, msg, "database error")
}

func TestShouldLogError(t *testing.T) {
	assert.False(t, ShouldLogError(NewValidationError("bad input", nil)))
	assert.False(t, ShouldLogError(NewNotFoundError("todo", "1")))
	assert.True(t, ShouldLogError(NewDatabaseError("query", nil)))
	assert.True(t, ShouldLogError(NewUpstreamError("generate", nil)))
	assert.True(t, ShouldLogError(stderrors.New("unknown")))
}
