// Package tasks sequences the task pipelines: assemble prompt, call the
// generation service, resolve the output. Each operation is independent
// and stateless; the only shared state is the long-lived generation
// client and the optional cache/store handles.
package tasks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"supportdesk/internal/category"
	"supportdesk/internal/extract"
	"supportdesk/internal/facts"
	"supportdesk/internal/llm"
	"supportdesk/internal/observability"
	"supportdesk/internal/prompt"
	"supportdesk/internal/store"
)

// ErrBlankInput marks a request with empty required input, detected
// before any generation call is made.
var ErrBlankInput = errors.New("input is empty")

// ErrGeneration marks a failed generation service call. Callers report it
// as "generation unavailable", never as a classification fallback.
var ErrGeneration = errors.New("generation service failed")

// CategoryCache memoizes classification results per inquiry. A false hit
// means the caller must classify; Set failures are best-effort and never
// affect the task result.
type CategoryCache interface {
	GetCategory(ctx context.Context, inquiry string) (category.Category, bool, error)
	SetCategory(ctx context.Context, inquiry string, cat category.Category) error
}

type Service struct {
	LLM           llm.Provider
	Facts         facts.Sheet
	SchemaDir     string
	DefaultSchema string

	// Optional handles. Nil disables the corresponding path.
	Cache    CategoryCache
	Store    *store.Store
	Observer *observability.RunObserver
}

func NewService(provider llm.Provider, sheet facts.Sheet, schemaDir string, defaultSchema string) *Service {
	return &Service{
		LLM:           provider,
		Facts:         sheet,
		SchemaDir:     schemaDir,
		DefaultSchema: defaultSchema,
	}
}

// Classify resolves an inquiry to a member of the canonical category set.
// The result is always canonical: unrecognizable generation output
// degrades to the fallback category. Only a failed generation call is an
// error.
func (s *Service) Classify(ctx context.Context, inquiry string) (category.Category, error) {
	if strings.TrimSpace(inquiry) == "" {
		return "", ErrBlankInput
	}
	start := time.Now()
	cat, err := s.classify(ctx, inquiry)
	s.record(ctx, "classify", string(cat), err, len(inquiry), time.Since(start))
	if err != nil {
		return "", err
	}
	return cat, nil
}

func (s *Service) classify(ctx context.Context, inquiry string) (category.Category, error) {
	if s.Cache != nil {
		if cat, ok, err := s.Cache.GetCategory(ctx, inquiry); err == nil && ok {
			s.Observer.RecordCacheHit("classify")
			return cat, nil
		}
	}
	promptText := prompt.Classification(inquiry, category.Canonical(), category.Fallback)
	out, err := s.LLM.Complete(ctx, promptText)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrGeneration, err)
	}
	cat := category.Resolve(out)
	if cat == category.Fallback {
		s.Observer.RecordFallback(len(inquiry))
	}
	if s.Cache != nil {
		_ = s.Cache.SetCategory(ctx, inquiry, cat)
	}
	return cat, nil
}

// ClassifyAndReply classifies the inquiry, then generates a short support
// reply parameterized by the resolved category. The only two-call
// pipeline.
func (s *Service) ClassifyAndReply(ctx context.Context, inquiry string) (category.Category, string, error) {
	if strings.TrimSpace(inquiry) == "" {
		return "", "", ErrBlankInput
	}
	start := time.Now()
	cat, err := s.classify(ctx, inquiry)
	if err != nil {
		s.record(ctx, "chat", "", err, len(inquiry), time.Since(start))
		return "", "", err
	}
	out, err := s.LLM.Complete(ctx, prompt.SupportReply(inquiry, cat))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrGeneration, err)
		s.record(ctx, "chat", string(cat), err, len(inquiry), time.Since(start))
		return "", "", err
	}
	reply := strings.TrimSpace(out)
	s.record(ctx, "chat", string(cat), nil, len(inquiry), time.Since(start))
	return cat, reply, nil
}

// ExtractStructured asks the model to emit JSON matching the named schema
// and parses whatever comes back. Parse and validation failures are
// carried inside the result; the raw text is always preserved for human
// inspection.
func (s *Service) ExtractStructured(ctx context.Context, freeText string, schemaID string) (extract.Result, error) {
	if strings.TrimSpace(freeText) == "" {
		return extract.Result{}, ErrBlankInput
	}
	if schemaID == "" {
		schemaID = s.DefaultSchema
	}
	schema, err := extract.LoadSchema(s.SchemaDir, schemaID)
	if err != nil {
		return extract.Result{}, fmt.Errorf("load schema %q: %w", schemaID, err)
	}
	start := time.Now()
	out, err := s.LLM.Complete(ctx, prompt.Extraction(freeText, extract.Describe(schema)))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrGeneration, err)
		s.record(ctx, "extract", "", err, len(freeText), time.Since(start))
		return extract.Result{}, err
	}
	res := extract.Parse(strings.TrimSpace(out))
	if res.Data != nil {
		if ok, msgs := extract.Validate(schema, res.Data); !ok {
			res.ValidationErrors = msgs
		}
	}
	s.record(ctx, "extract", "", nil, len(freeText), time.Since(start))
	return res, nil
}

// TemplatedReply generates a reply grounded in the configured fact sheet.
func (s *Service) TemplatedReply(ctx context.Context, freeText string) (string, error) {
	if strings.TrimSpace(freeText) == "" {
		return "", ErrBlankInput
	}
	start := time.Now()
	out, err := s.LLM.Complete(ctx, prompt.TemplatedReply(freeText, s.Facts.Render()))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrGeneration, err)
		s.record(ctx, "email", "", err, len(freeText), time.Since(start))
		return "", err
	}
	s.record(ctx, "email", "", nil, len(freeText), time.Since(start))
	return strings.TrimSpace(out), nil
}

// Summarize produces the summary/questions/report text for sourceText.
func (s *Service) Summarize(ctx context.Context, sourceText string) (string, error) {
	if strings.TrimSpace(sourceText) == "" {
		return "", ErrBlankInput
	}
	start := time.Now()
	out, err := s.LLM.Complete(ctx, prompt.Summary(sourceText))
	if err != nil {
		err = fmt.Errorf("%w: %v", ErrGeneration, err)
		s.record(ctx, "summarize", "", err, len(sourceText), time.Since(start))
		return "", err
	}
	s.record(ctx, "summarize", "", nil, len(sourceText), time.Since(start))
	return strings.TrimSpace(out), nil
}

// record writes the audit row and observer counters for one pipeline run.
// Best-effort: audit failures never affect the task result.
func (s *Service) record(ctx context.Context, task string, resolved string, runErr error, inputLen int, latency time.Duration) {
	if runErr != nil {
		s.Observer.RecordFailure(task, runErr)
	} else {
		s.Observer.RecordRun(task, latency)
	}
	if s.Store == nil {
		return
	}
	run := store.Run{
		ID:        uuid.NewString(),
		Task:      task,
		Category:  resolved,
		Model:     s.LLM.Model(),
		Status:    "ok",
		InputLen:  inputLen,
		LatencyMS: latency.Milliseconds(),
		CreatedAt: time.Now().UTC(),
	}
	if runErr != nil {
		run.Status = "error"
		run.Error = runErr.Error()
	}
	_ = s.Store.RecordRun(ctx, run)
}
