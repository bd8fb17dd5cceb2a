//go:generate mockery --name Generator --output ./mocks --outpkg mocks --case=underscore
package generation

import "context"

// Prompt is one request to the generation backend: a system instruction
// describing the coach persona plus the concrete user message.
type Prompt struct {
	System      string
	Instruction string
	UserMessage string
}

// Generator is the boundary to the external text-generation backend.
// Implementations return the raw response text; callers parse it.
type Generator interface {
	Generate(ctx context.Context, prompt Prompt) (string, error)
}
