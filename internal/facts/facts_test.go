package facts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultRender(t *testing.T) {
	block := Default().Render()
	if !strings.HasPrefix(block, "# Facts\n") {
		t.Fatalf("missing facts header: %q", block)
	}
	if !strings.Contains(block, "30-year fixed-rate: interest rate 6.403%, APR 6.484%") {
		t.Fatalf("missing 30-year line: %q", block)
	}
	if !strings.Contains(block, "30-year fixed-rate VA: interest rate 5.684%, APR 6.062%") {
		t.Fatalf("missing VA line: %q", block)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	sheet, err := Load("")
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if sheet.ID != "mortgage-rates-v1" {
		t.Fatalf("expected default sheet, got %s", sheet.ID)
	}
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rates.yaml")
	doc := `id: test-rates
title: Rates
products:
  - name: 30-year fixed-rate
    rate: 1.000%
    apr: 1.100%
`
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	sheet, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !strings.Contains(sheet.Render(), "30-year fixed-rate: interest rate 1.000%, APR 1.100%") {
		t.Fatalf("unexpected render: %q", sheet.Render())
	}
}

func TestLoadRejectsEmptySheet(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, []byte("id: empty\n"), 0o600); err != nil {
		t.Fatalf("write sheet: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for sheet without products")
	}
}
