package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadRegistryExpandsEnv(t *testing.T) {
	t.Setenv("SHEET_ID", "sheet-from-env")
	t.Setenv("GOOGLE_SHEETS_API_KEY", "key-from-env")
	t.Setenv("GOOGLE_SHEETS_CREDENTIALS_FILE", "")

	reg, err := LoadRegistry("config/sources.yaml")
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	if len(reg.Sources) == 0 {
		t.Fatal("expected at least one source")
	}

	cfg, err := reg.ActiveSource()
	if err != nil {
		t.Fatalf("ActiveSource: %v", err)
	}
	if cfg.ID != "community_sheet" {
		t.Errorf("unexpected active source id %q", cfg.ID)
	}
	if cfg.SpreadsheetID != "sheet-from-env" {
		t.Errorf("spreadsheet_id not expanded: %q", cfg.SpreadsheetID)
	}
	if cfg.APIKey != "key-from-env" {
		t.Errorf("api_key not expanded: %q", cfg.APIKey)
	}
	if cfg.ReadRange == "" {
		t.Error("read_range should be set")
	}
}

func TestLoadRegistryDiskOverride(t *testing.T) {
	override := `sources:
  - id: local_override
    name: Local Override
    spreadsheet_id: override-sheet
    read_range: "A1:J10"
    api_key: override-key
    active: true
`
	path := filepath.Join(t.TempDir(), "sources.yaml")
	if err := os.WriteFile(path, []byte(override), 0o644); err != nil {
		t.Fatalf("write override: %v", err)
	}

	reg, err := LoadRegistry(path)
	if err != nil {
		t.Fatalf("LoadRegistry: %v", err)
	}
	cfg, err := reg.ActiveSource()
	if err != nil {
		t.Fatalf("ActiveSource: %v", err)
	}
	if cfg.ID != "local_override" || cfg.SpreadsheetID != "override-sheet" {
		t.Errorf("disk override not applied: %+v", cfg)
	}
}

func TestLoadRegistryMissingPathUsesEmbedded(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "absent.yaml")} {
		reg, err := LoadRegistry(path)
		if err != nil {
			t.Fatalf("LoadRegistry(%q): %v", path, err)
		}
		cfg, err := reg.ActiveSource()
		if err != nil {
			t.Fatalf("ActiveSource: %v", err)
		}
		if cfg.ID != "community_sheet" {
			t.Errorf("expected the embedded registry, got %q", cfg.ID)
		}
	}
}

func TestActiveSourceNoneActive(t *testing.T) {
	reg := &Registry{Sources: []Config{{ID: "off", Active: false}}}
	if _, err := reg.ActiveSource(); err == nil {
		t.Error("expected an error when no source is active")
	}
}

func TestNewSheetsSourceConfigValidation(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"missing spreadsheet id", Config{ID: "x", APIKey: "k"}},
		{"missing api key", Config{ID: "x", SpreadsheetID: "s"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewSheetsSource(context.Background(), tt.cfg); err == nil {
				t.Error("expected a config error")
			}
		})
	}
}

func TestStaticServesFallback(t *testing.T) {
	table, err := Static{}.Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(table) != 10 {
		t.Fatalf("expected header plus nine rows, got %d", len(table))
	}
	if len(table[0]) != len(FallbackHeader) {
		t.Errorf("header width %d, want %d", len(table[0]), len(FallbackHeader))
	}
	for i, row := range table {
		if len(row) != len(FallbackHeader) {
			t.Errorf("row %d width %d, want %d", i, len(row), len(FallbackHeader))
		}
	}

	custom := Static{Table: [][]string{{"only"}}}
	table, _ = custom.Fetch(context.Background())
	if len(table) != 1 || table[0][0] != "only" {
		t.Errorf("custom table not served: %v", table)
	}
}
