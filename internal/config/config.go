// ABOUTME: Configuration management for the life-log ETL.
// ABOUTME: JSON settings under XDG config, API keys from the environment.
package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/cbatts/codexvitae/internal/db"
)

// Config stores ETL settings. Secrets stay out of this file: the RescueTime
// key and Gmail token path come from the environment (or a .env loaded by
// the CLI).
type Config struct {
	// DBPath overrides the database location. Supports ~ expansion.
	// Defaults to the standard XDG data directory.
	DBPath string `json:"db_path,omitempty"`

	// JournalQuery matches tablet journal emails, e.g. "from:my@remarkable.com".
	JournalQuery string `json:"journal_query,omitempty"`

	// ReportQuery matches weekly diet report emails.
	ReportQuery string `json:"report_query,omitempty"`

	// BackfillFrom is the ISO date the historical email load starts at.
	BackfillFrom string `json:"backfill_from,omitempty"`

	// ExtractDir is the Exist full-extract directory for backfills.
	ExtractDir string `json:"extract_dir,omitempty"`

	// MoodChartsCSV and BulletJournalCSV locate the hand-kept journal CSVs.
	MoodChartsCSV    string `json:"mood_charts_csv,omitempty"`
	BulletJournalCSV string `json:"bullet_journal_csv,omitempty"`
}

// GetDBPath returns the configured database path with ~ expanded.
func (c *Config) GetDBPath() string {
	if c.DBPath == "" {
		return db.GetDefaultDBPath()
	}
	return ExpandPath(c.DBPath)
}

// RescueTimeKey returns the API key from the environment.
func RescueTimeKey() string {
	return os.Getenv("RESCUETIME_API_KEY")
}

// GmailTokenPath returns the OAuth token file path from the environment.
func GmailTokenPath() string {
	return ExpandPath(os.Getenv("GMAIL_TOKEN_PATH"))
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) string {
	if path == "" {
		return ""
	}
	if path == "~" {
		home, _ := os.UserHomeDir()
		return home
	}
	if strings.HasPrefix(path, "~/") {
		home, _ := os.UserHomeDir()
		return filepath.Join(home, path[2:])
	}
	return path
}

// GetConfigPath returns the config file path.
func GetConfigPath() string {
	configDir := os.Getenv("XDG_CONFIG_HOME")
	if configDir == "" {
		homeDir, _ := os.UserHomeDir()
		configDir = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configDir, "codexvitae", "config.json")
}

// Load reads config from disk. A missing file yields defaults.
func Load() (*Config, error) {
	path := GetConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, err
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Save writes config to disk.
func (c *Config) Save() error {
	path := GetConfigPath()
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0600)
}
