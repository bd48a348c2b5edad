package llm

import (
	"context"
	"strings"
	"sync"
)

// Script is a deterministic offline provider. Queued responses are
// returned in order; once the queue drains it falls back to keyword
// heuristics on the prompt so dev mode stays usable without a script.
// It also counts calls, which tests use to assert a pipeline never
// reached the generation service.
type Script struct {
	mu        sync.Mutex
	responses []string
	calls     int
	err       error
}

func NewScript(responses ...string) *Script {
	return &Script{responses: responses}
}

func (s *Script) Name() string { return "script" }

func (s *Script) Model() string { return "script" }

// Fail makes every subsequent Complete call return err. Pass nil to
// clear.
func (s *Script) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Calls reports how many times Complete has been invoked.
func (s *Script) Calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.calls
}

func (s *Script) Complete(_ context.Context, prompt string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return "", s.err
	}
	if len(s.responses) > 0 {
		out := s.responses[0]
		s.responses = s.responses[1:]
		return out, nil
	}
	return improvise(prompt), nil
}

// improvise produces a plausible canned answer for each task's prompt
// shape.
func improvise(prompt string) string {
	switch {
	case strings.Contains(prompt, "predefined categories"):
		return "customer service"
	case strings.Contains(prompt, "ONLY valid JSON"):
		return "{}"
	case strings.Contains(prompt, "Lender Customer Support"):
		return "Thank you for reaching out. Please see our current rates.\n\nLender Customer Support"
	case strings.Contains(prompt, "# Newsletter:"):
		return "## Summary\n(offline mode)\n"
	default:
		return "Thank you for contacting us. A support agent will follow up shortly."
	}
}
