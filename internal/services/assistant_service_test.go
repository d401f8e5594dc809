package services

import (
	"context"
	stderrors "errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"todo-list/internal/errors"
)

func TestAssistantService_Ask(t *testing.T) {
	var gotPrompt string

	service := NewAssistantService(func(ctx context.Context, prompt string) (string, error) {
		gotPrompt = prompt
		return "Break the task into smaller steps.", nil
	})

	out, err := service.Ask(context.Background(), "how do I start?")
	require.NoError(t, err)
	assert.Equal(t, "Break the task into smaller steps.", out)
	assert.Equal(t, "As a todo list assistant, help with this question: how do I start?", gotPrompt)
}

func TestAssistantService_Ask_EmptyInput(t *testing.T) {
	called := false
	service := NewAssistantService(func(ctx context.Context, prompt string) (string, error) {
		called = true
		return "", nil
	})

	for _, input := range []string{"", "   "} {
		_, err := service.Ask(context.Background(), input)
		require.Error(t, err, "input %q", input)
		assert.True(t, errors.IsErrorType(err, errors.ErrorTypeValidation))
	}

	// Validation failures never reach the external service.
	assert.False(t, called)
}

func TestAssistantService_Ask_Unavailable(t *testing.T) {
	service := NewAssistantService(nil)

	_, err := service.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUnavailable))
}

func TestAssistantService_Ask_UpstreamErrorPassthrough(t *testing.T) {
	upstream := errors.NewUpstreamError("generate content", stderrors.New("quota exceeded"))
	service := NewAssistantService(func(ctx context.Context, prompt string) (string, error) {
		return "", upstream
	})

	_, err := service.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUpstream))
	assert.Contains(t, err.Error(), "quota exceeded")
}

func TestAssistantService_Ask_WrapsPlainErrors(t *testing.T) {
	service := NewAssistantService(func(ctx context.Context, prompt string) (string, error) {
		return "", stderrors.New("connection reset")
	})

	_, err := service.Ask(context.Background(), "hello")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeUpstream))
}
