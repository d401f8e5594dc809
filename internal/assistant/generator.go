// Package assistant provides the text-generation capability behind the
// assistant endpoint.
package assistant

import "context"

// Generator produces a text completion for a prompt. It is the seam
// between the assistant service and the external model provider, so
// tests can substitute a fake without any HTTP involved.
type Generator func(ctx context.Context, prompt string) (string, error)
