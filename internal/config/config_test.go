package config

import (
	"testing"

	"gopkg.in/yaml.v3"
)

func TestDefaultConfig(t *testing.T) {
	cfg := Default()

	if cfg.Table.PageSize != 10 {
		t.Errorf("Expected default page size 10, got %d", cfg.Table.PageSize)
	}
	if len(cfg.Table.HiddenColumns) != 0 {
		t.Errorf("Expected no hidden columns by default, got %v", cfg.Table.HiddenColumns)
	}
	if cfg.Theme.Highlight == "" || cfg.Theme.Subtle == "" || cfg.Theme.Danger == "" {
		t.Errorf("Theme colors must all default: %+v", cfg.Theme)
	}
}

func TestApplyDefaultsFillsGaps(t *testing.T) {
	raw := `
table:
  hidden_columns: [vin, manufacture_year]
theme:
  highlight: "#FF0000"
`
	var cfg Config
	if err := yaml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("Failed to parse yaml: %v", err)
	}
	cfg.applyDefaults()

	if cfg.Table.PageSize != 10 {
		t.Errorf("Missing page size not defaulted: %d", cfg.Table.PageSize)
	}
	if len(cfg.Table.HiddenColumns) != 2 || cfg.Table.HiddenColumns[0] != "vin" {
		t.Errorf("Hidden columns lost: %v", cfg.Table.HiddenColumns)
	}
	if cfg.Theme.Highlight != "#FF0000" {
		t.Errorf("Explicit highlight overridden: %s", cfg.Theme.Highlight)
	}
	if cfg.Theme.Subtle == "" || cfg.Theme.Danger == "" {
		t.Errorf("Missing theme colors not defaulted: %+v", cfg.Theme)
	}
}

func TestConfigRoundTrip(t *testing.T) {
	cfg := Default()
	cfg.Table.PageSize = 25
	cfg.Table.HiddenColumns = []string{"vin"}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	var back Config
	if err := yaml.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if back.Table.PageSize != 25 {
		t.Errorf("Page size lost in round trip: %d", back.Table.PageSize)
	}
	if len(back.Table.HiddenColumns) != 1 || back.Table.HiddenColumns[0] != "vin" {
		t.Errorf("Hidden columns lost in round trip: %v", back.Table.HiddenColumns)
	}
}
