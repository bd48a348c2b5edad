// Package llm adapts the external text generation service behind a single
// narrow contract: submit one prompt, get back one completion. Callers
// never see the service's response structure.
package llm

import (
	"context"
)

// Provider is the generation client contract. Complete is single-turn and
// stateless: one user message in, the first completion's text out. The
// adapter performs no retries; failures surface to the caller. All
// implementations must be safe for concurrent use.
type Provider interface {
	Complete(ctx context.Context, prompt string) (string, error)
	Name() string
	Model() string
}
