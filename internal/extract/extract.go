// Package extract turns raw generation output into structured data. The
// model frequently wraps JSON in markdown fences or returns prose instead
// of JSON at all, so parse failure is a normal outcome carried in the
// result, never an error that propagates.
package extract

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// Result is the outcome of parsing one generation output. Raw always holds
// the text exactly as returned. For non-empty raw, exactly one of Data and
// Err is set. ValidationErrors is populated only when a schema was checked
// against successfully-parsed data.
type Result struct {
	Raw              string
	Data             map[string]any
	Err              string
	ValidationErrors []string
}

// Parse strips markdown fencing and parses the remainder as JSON. Fence
// stripping is idempotent: already-bare JSON passes through untouched.
func Parse(raw string) Result {
	cleaned := strings.TrimSpace(raw)
	if cleaned == "" {
		return Result{Raw: raw}
	}
	if strings.HasPrefix(cleaned, "```") {
		cleaned = strings.ReplaceAll(cleaned, "```json", "")
		cleaned = strings.ReplaceAll(cleaned, "```", "")
		cleaned = strings.TrimSpace(cleaned)
	}
	var data map[string]any
	if err := json.Unmarshal([]byte(cleaned), &data); err != nil {
		return Result{Raw: raw, Err: err.Error()}
	}
	return Result{Raw: raw, Data: data}
}

// Validate checks parsed data against a JSON schema. A nil schema always
// passes. Validation failure is reported as messages, not as an error:
// callers surface them alongside the parsed value.
func Validate(schema map[string]any, data map[string]any) (bool, []string) {
	if schema == nil {
		return true, nil
	}
	schemaBytes, err := json.Marshal(schema)
	if err != nil {
		return false, []string{err.Error()}
	}
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource("schema.json", bytes.NewReader(schemaBytes)); err != nil {
		return false, []string{err.Error()}
	}
	compiled, err := compiler.Compile("schema.json")
	if err != nil {
		return false, []string{err.Error()}
	}
	if err := compiled.Validate(data); err != nil {
		return false, []string{err.Error()}
	}
	return true, nil
}

// Describe renders a schema into the machine-readable description embedded
// in extraction prompts.
func Describe(schema map[string]any) string {
	if schema == nil {
		return "{}"
	}
	props, ok := schema["properties"].(map[string]any)
	if !ok {
		props = schema
	}
	out, err := json.MarshalIndent(props, "", "  ")
	if err != nil {
		return "{}"
	}
	return string(out)
}
