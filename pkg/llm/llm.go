package llm

import "context"

// Completer is a minimal abstraction over prompt-completion backends used by
// the domain. It intentionally hides the concrete transport to preserve
// dependency direction.
type Completer interface {
	Complete(ctx context.Context, endpoint, prompt string) (string, error)
}
