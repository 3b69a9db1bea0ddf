package siteconfig

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileFallsBackToDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "site.yaml"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "RoofCompare" {
		t.Fatalf("expected default vertical, got %q", cfg.Name)
	}
	if len(cfg.ServiceOptions.Options) != 4 {
		t.Fatalf("expected default service catalog, got %d options", len(cfg.ServiceOptions.Options))
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	payload := "name: GutterCompare\ndomain: guttercompare.com\nindustry:\n  singular: Gutter Installer\n  plural: Gutter Installers\n"
	if err := os.WriteFile(path, []byte(payload), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Name != "GutterCompare" {
		t.Fatalf("expected override, got %q", cfg.Name)
	}
	if cfg.Industry.Plural != "Gutter Installers" {
		t.Fatalf("expected industry override, got %q", cfg.Industry.Plural)
	}
	// Untouched sections keep their defaults.
	if cfg.SEO.CityTitle == "" {
		t.Fatalf("expected default SEO templates to survive override")
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	if err := os.WriteFile(path, []byte(":\n  - broken: ["), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected error for malformed config")
	}
}
