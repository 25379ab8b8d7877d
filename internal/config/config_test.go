// ABOUTME: Tests for ETL configuration management.
// ABOUTME: Covers load, save, defaults, and path expansion.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setTestConfigHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	return dir
}

func TestGetDBPathDefault(t *testing.T) {
	cfg := &Config{}
	got := cfg.GetDBPath()
	if got == "" {
		t.Fatal("GetDBPath() returned empty string")
	}
	if !strings.HasSuffix(got, filepath.Join("codexvitae", "codexvitae.db")) {
		t.Errorf("GetDBPath() = %q, want XDG default", got)
	}
}

func TestGetDBPathExpandsTilde(t *testing.T) {
	cfg := &Config{DBPath: "~/data/life.db"}
	got := cfg.GetDBPath()
	if strings.HasPrefix(got, "~") {
		t.Errorf("GetDBPath() = %q, tilde not expanded", got)
	}
	home, _ := os.UserHomeDir()
	if !strings.HasPrefix(got, home) {
		t.Errorf("GetDBPath() = %q, want under %q", got, home)
	}
}

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	setTestConfigHome(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.JournalQuery != "" || cfg.DBPath != "" {
		t.Errorf("expected zero-value config, got %+v", cfg)
	}
}

func TestSaveAndLoadRoundTrip(t *testing.T) {
	setTestConfigHome(t)

	cfg := &Config{
		JournalQuery: "from:my@remarkable.com",
		ReportQuery:  "from:no-reply@mynetdiary.com",
		BackfillFrom: "2020-04-06",
	}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	loaded, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if loaded.JournalQuery != cfg.JournalQuery {
		t.Errorf("JournalQuery = %q, want %q", loaded.JournalQuery, cfg.JournalQuery)
	}
	if loaded.BackfillFrom != "2020-04-06" {
		t.Errorf("BackfillFrom = %q", loaded.BackfillFrom)
	}
}

func TestLoadRejectsMalformedJSON(t *testing.T) {
	dir := setTestConfigHome(t)
	path := filepath.Join(dir, "codexvitae", "config.json")
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(); err == nil {
		t.Fatal("expected error for malformed config")
	}
}

func TestSavedConfigIsValidJSON(t *testing.T) {
	dir := setTestConfigHome(t)

	cfg := &Config{DBPath: "~/x.db"}
	if err := cfg.Save(); err != nil {
		t.Fatalf("Save() failed: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "codexvitae", "config.json"))
	if err != nil {
		t.Fatalf("read config: %v", err)
	}
	var parsed map[string]any
	if err := json.Unmarshal(data, &parsed); err != nil {
		t.Fatalf("config is not valid JSON: %v", err)
	}
}

func TestRescueTimeKeyFromEnv(t *testing.T) {
	t.Setenv("RESCUETIME_API_KEY", "secret")
	if got := RescueTimeKey(); got != "secret" {
		t.Errorf("RescueTimeKey() = %q", got)
	}
}
