package config_test

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/calvinalkan/task-tracker/internal/config"
)

func writeConfig(t *testing.T, path, content string) {
	t.Helper()

	err := os.WriteFile(path, []byte(content), 0o600)
	if err != nil {
		t.Fatalf("write config: %v", err)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	cfg, err := config.Load(config.Input{WorkDirOverride: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "warn" {
		t.Errorf("LogLevel = %q, want warn", cfg.LogLevel)
	}

	if cfg.WorkDir != dir {
		t.Errorf("WorkDir = %q, want %q", cfg.WorkDir, dir)
	}

	if cfg.Source != "" {
		t.Errorf("Source = %q, want empty", cfg.Source)
	}

	if cfg.LogFileAbs != "" {
		t.Errorf("LogFileAbs = %q, want empty", cfg.LogFileAbs)
	}
}

func TestLoadProjectConfigJSONC(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.FileName), `{
  // verbose while debugging
  "log_level": "debug",
  "log_file": "logs/tracker.log", // relative to the work dir
}`)

	cfg, err := config.Load(config.Input{WorkDirOverride: dir})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "debug" {
		t.Errorf("LogLevel = %q, want debug", cfg.LogLevel)
	}

	if want := filepath.Join(dir, "logs", "tracker.log"); cfg.LogFileAbs != want {
		t.Errorf("LogFileAbs = %q, want %q", cfg.LogFileAbs, want)
	}

	if want := filepath.Join(dir, config.FileName); cfg.Source != want {
		t.Errorf("Source = %q, want %q", cfg.Source, want)
	}
}

func TestLoadExplicitConfigReplacesProjectConfig(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.FileName), `{"log_level": "debug", "log_file": "a.log"}`)
	writeConfig(t, filepath.Join(dir, "custom.json"), `{"log_level": "error"}`)

	cfg, err := config.Load(config.Input{WorkDirOverride: dir, ConfigPath: "custom.json"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.LogLevel != "error" {
		t.Errorf("LogLevel = %q, want error", cfg.LogLevel)
	}

	if cfg.LogFile != "" {
		t.Errorf("LogFile = %q, want empty (project file must not be read)", cfg.LogFile)
	}
}

func TestLoadCLIOverrideWins(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, filepath.Join(dir, config.FileName), `{"log_level": "error"}`)

	cfg, err := config.Load(config.Input{WorkDirOverride: dir, LogLevelOverride: "info"})
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	level, err := cfg.Level()
	if err != nil {
		t.Fatalf("Level: %v", err)
	}

	if level != slog.LevelInfo {
		t.Errorf("Level = %v, want %v", level, slog.LevelInfo)
	}
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string // written to the project config file if non-empty
		input   config.Input
		wantErr error
	}{
		{
			name:    "explicit config missing",
			input:   config.Input{ConfigPath: "nope.json"},
			wantErr: config.ErrConfigFileNotFound,
		},
		{
			name:    "invalid JSONC",
			content: `{"log_level": }`,
			wantErr: config.ErrConfigInvalid,
		},
		{
			name:    "unknown key",
			content: `{"data_file": "other.json"}`,
			wantErr: config.ErrConfigInvalid,
		},
		{
			name:    "bad level in file",
			content: `{"log_level": "loud"}`,
			wantErr: config.ErrInvalidLogLevel,
		},
		{
			name:    "bad level override",
			input:   config.Input{LogLevelOverride: "trace"},
			wantErr: config.ErrInvalidLogLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			if tt.content != "" {
				writeConfig(t, filepath.Join(dir, config.FileName), tt.content)
			}

			input := tt.input
			input.WorkDirOverride = dir

			_, err := config.Load(input)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Load err = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
