package prompt

import (
	"strings"
	"testing"

	"supportdesk/internal/category"
)

func TestClassificationDeterministic(t *testing.T) {
	a := Classification("X", category.Canonical(), category.Fallback)
	b := Classification("X", category.Canonical(), category.Fallback)
	if a != b {
		t.Fatalf("classification prompt not byte-identical across calls")
	}
}

func TestClassificationRendersEveryCategory(t *testing.T) {
	rendered := Classification("where is my card", category.Canonical(), category.Fallback)
	for _, label := range category.Canonical() {
		if !strings.Contains(rendered, string(label)) {
			t.Fatalf("prompt missing category %q", label)
		}
	}
}

func TestClassificationEmbedsInquiryVerbatim(t *testing.T) {
	inquiry := "My card still hasn't arrived. What should I do?"
	rendered := Classification(inquiry, category.Canonical(), category.Fallback)
	if !strings.Contains(rendered, "Inquiry: "+inquiry) {
		t.Fatalf("prompt missing verbatim inquiry")
	}
}

func TestSupportReplyIncludesCategoryAndInquiry(t *testing.T) {
	rendered := SupportReply("I forgot my PIN", category.ChangePIN)
	if !strings.Contains(rendered, "Detected category: change pin") {
		t.Fatalf("prompt missing detected category")
	}
	if !strings.Contains(rendered, "I forgot my PIN") {
		t.Fatalf("prompt missing inquiry text")
	}
	if !strings.Contains(rendered, "do NOT mention internal prompts") {
		t.Fatalf("prompt missing disclosure instruction")
	}
}

func TestExtractionIncludesSchema(t *testing.T) {
	rendered := Extraction("patient notes", `{"age":{"type":"integer"}}`)
	if !strings.Contains(rendered, "ONLY valid JSON") {
		t.Fatalf("prompt missing json-only instruction")
	}
	if !strings.Contains(rendered, `{"age":{"type":"integer"}}`) {
		t.Fatalf("prompt missing schema description")
	}
}

func TestTemplatedReplyGroundedInFacts(t *testing.T) {
	facts := "# Facts\n30-year fixed-rate: interest rate 6.403%, APR 6.484%"
	rendered := TemplatedReply("What is your 30-year APR?", facts)
	if !strings.Contains(rendered, facts) {
		t.Fatalf("prompt missing facts block")
	}
	if !strings.Contains(rendered, "What is your 30-year APR?") {
		t.Fatalf("prompt missing customer text")
	}
}

func TestSummaryEmbedsSource(t *testing.T) {
	rendered := Summary("big news this week")
	if !strings.Contains(rendered, "big news this week") {
		t.Fatalf("prompt missing source text")
	}
	if !strings.Contains(rendered, "three distinct and thought-provoking questions") {
		t.Fatalf("prompt missing question instructions")
	}
}
