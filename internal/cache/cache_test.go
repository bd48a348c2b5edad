package cache

import (
	"strings"
	"testing"
	"time"

	"supportdesk/internal/category"
)

func TestNewRejectsBadURL(t *testing.T) {
	if _, err := New("not-a-redis-url", time.Hour); err == nil {
		t.Fatalf("expected parse error for bad url")
	}
}

func TestCategoryKeyDeterministic(t *testing.T) {
	a := categoryKey("My card still hasn't arrived")
	b := categoryKey("My card still hasn't arrived")
	if a != b {
		t.Fatalf("key not deterministic: %q vs %q", a, b)
	}
	if !strings.HasPrefix(a, "classify:") {
		t.Fatalf("unexpected key prefix: %q", a)
	}
}

func TestCategoryKeyDistinctPerInquiry(t *testing.T) {
	if categoryKey("inquiry one") == categoryKey("inquiry two") {
		t.Fatalf("distinct inquiries must not share a key")
	}
}

func TestCanonicalHitValidEntry(t *testing.T) {
	cat, ok := canonicalHit("card arrival")
	if !ok || cat != category.CardArrival {
		t.Fatalf("expected hit for canonical entry, got %q %v", cat, ok)
	}
}

func TestCanonicalHitStaleEntryIsMiss(t *testing.T) {
	// A label removed from the canonical set must read as a miss rather
	// than leak a non-canonical value to callers.
	if _, ok := canonicalHit("retired category"); ok {
		t.Fatalf("expected stale entry to miss")
	}
	if _, ok := canonicalHit(""); ok {
		t.Fatalf("expected empty entry to miss")
	}
}
