package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"supportdesk/internal/tasks"
)

// Handler builds the HTTP surface. Task routes take plain JSON in and out;
// the pipeline core never sees HTTP.
func (a *App) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/healthz", a.handleHealthz)
	mux.HandleFunc("/readyz", a.handleReadyz)
	mux.HandleFunc("/debug", a.handleDebug)
	mux.HandleFunc("/v1/chat", a.handleChat)
	mux.HandleFunc("/v1/classify", a.handleClassify)
	mux.HandleFunc("/v1/extract", a.handleExtract)
	mux.HandleFunc("/v1/email", a.handleEmail)
	mux.HandleFunc("/v1/summarize", a.handleSummarize)
	return mux
}

func (a *App) handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func (a *App) handleReadyz(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	if a.Store != nil {
		if err := a.Store.Ping(ctx); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	if a.Cache != nil {
		if err := a.Cache.Ping(ctx); err != nil {
			http.Error(w, err.Error(), http.StatusServiceUnavailable)
			return
		}
	}
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ready"))
}

func (a *App) handleDebug(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	w.Header().Set("Content-Type", "text/html")
	_, _ = fmt.Fprintf(w, "<html><body><h1>Supportdesk Debug</h1>")
	_, _ = fmt.Fprintf(w, "<p>Provider: %s (%s)</p>", a.LLM.Name(), a.LLM.Model())
	if a.Cache != nil {
		depth, _ := a.Cache.Depth(ctx)
		_, _ = fmt.Fprintf(w, "<p>Triage queue depth: %d</p>", depth)
	}
	if a.Store != nil {
		runs, _ := a.Store.RecentRuns(ctx, 20)
		_, _ = fmt.Fprintf(w, "<h2>Recent runs</h2><ul>")
		for _, run := range runs {
			_, _ = fmt.Fprintf(w, "<li>%s %s status=%s category=%s latency=%dms</li>",
				run.CreatedAt.Format("15:04:05"), run.Task, run.Status, run.Category, run.LatencyMS)
		}
		_, _ = fmt.Fprintf(w, "</ul>")
	}
	_, _ = fmt.Fprintf(w, "</body></html>")
}

func (a *App) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	cat, reply, err := a.Tasks.ClassifyAndReply(r.Context(), req.Message)
	if err != nil {
		a.writeTaskError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"message":  req.Message,
		"category": cat,
		"reply":    reply,
	})
}

func (a *App) handleClassify(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Inquiry string `json:"inquiry"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	cat, err := a.Tasks.Classify(r.Context(), req.Inquiry)
	if err != nil {
		a.writeTaskError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"inquiry":  req.Inquiry,
		"category": cat,
	})
}

func (a *App) handleExtract(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text     string `json:"text"`
		SchemaID string `json:"schema_id"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	res, err := a.Tasks.ExtractStructured(r.Context(), req.Text, req.SchemaID)
	if err != nil {
		a.writeTaskError(w, err)
		return
	}
	writeJSON(w, map[string]any{
		"raw":               res.Raw,
		"data":              res.Data,
		"error":             res.Err,
		"validation_errors": res.ValidationErrors,
	})
}

func (a *App) handleEmail(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	reply, err := a.Tasks.TemplatedReply(r.Context(), req.Email)
	if err != nil {
		a.writeTaskError(w, err)
		return
	}
	writeJSON(w, map[string]any{"reply": reply})
}

func (a *App) handleSummarize(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}
	var req struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return
	}
	report, err := a.Tasks.Summarize(r.Context(), req.Text)
	if err != nil {
		a.writeTaskError(w, err)
		return
	}
	writeJSON(w, map[string]any{"report": report})
}

// writeTaskError maps task failures to HTTP responses. Anything outside
// the known taxonomy is logged with full detail and answered with a
// generic body so internals (such as schema file paths) never reach
// callers.
func (a *App) writeTaskError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, tasks.ErrBlankInput):
		http.Error(w, "input is required", http.StatusBadRequest)
	case errors.Is(err, tasks.ErrGeneration):
		http.Error(w, "generation unavailable", http.StatusBadGateway)
	default:
		a.logger.Printf("task error: %v", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
}

func writeJSON(w http.ResponseWriter, payload any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(payload)
}
