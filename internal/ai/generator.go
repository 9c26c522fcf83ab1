package ai

import "context"

// TextGenerator produces free-form text from a prompt. The backing service
// is treated as an opaque, occasionally failing, latency-bearing dependency.
// Implementations must be safe for concurrent use.
type TextGenerator interface {
	GenerateContent(ctx context.Context, prompt string) (string, error)
}
