package services

import (
	"context"
	"fmt"
	"strings"

	"todo-list/internal/assistant"
	"todo-list/internal/errors"
)

// promptTemplate wraps every user question before it reaches the model.
const promptTemplate = "As a todo list assistant, help with this question: %s"

// assistantServiceImpl implements the AssistantService interface
type assistantServiceImpl struct {
	generate assistant.Generator
}

// NewAssistantService creates an AssistantService around a generator.
// A nil generator means the capability was never configured; Ask then
// reports unavailable on every call.
func NewAssistantService(generate assistant.Generator) AssistantService {
	return &assistantServiceImpl{generate: generate}
}

// Ask relays a question to the generator and returns its reply verbatim.
func (s *assistantServiceImpl) Ask(ctx context.Context, input string) (string, error) {
	// Availability is process-lifetime state, checked on every call.
	if s.generate == nil {
		return "", errors.NewUnavailableError("assistant", "AI assistant is not available")
	}

	if strings.TrimSpace(input) == "" {
		return "", errors.NewValidationError("input is required", nil)
	}

	response, err := s.generate(ctx, fmt.Sprintf(promptTemplate, input))
	if err != nil {
		if errors.IsAppError(err) {
			return "", err
		}
		return "", errors.NewUpstreamError("generate content", err)
	}

	return response, nil
}
