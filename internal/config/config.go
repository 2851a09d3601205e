// Package config loads the optional project configuration for task-tracker.
//
// Configuration only covers ambient settings such as logging. The location
// and name of the task data file are fixed.
package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/tailscale/hujson"
)

// FileName is the project config file looked up in the working directory.
const FileName = ".task-tracker.json"

// Config holds all configuration options.
type Config struct {
	// From config files (serialized)
	LogLevel string `json:"log_level,omitempty"`
	LogFile  string `json:"log_file,omitempty"`

	// Resolved (computed, not serialized)
	WorkDir    string `json:"-"` // Absolute working directory (from -C flag or os.Getwd)
	LogFileAbs string `json:"-"` // Absolute path to the log file, empty if disabled
	Source     string `json:"-"` // Config file that was loaded, empty if defaults only
}

// Default returns the default configuration.
func Default() Config {
	return Config{
		LogLevel: "warn",
	}
}

// Input holds the inputs for Load.
type Input struct {
	WorkDirOverride  string // -C/--cwd flag value; if empty, os.Getwd() is used
	ConfigPath       string // -c/--config flag value
	LogLevelOverride string // --log-level flag value; empty means no override
}

// Load resolves configuration with the following precedence (highest wins):
// 1. Defaults
// 2. Project config file in the working directory (.task-tracker.json, if exists)
// 3. Explicit config file via ConfigPath, which replaces the project file
// 4. CLI overrides.
func Load(input Input) (Config, error) {
	workDir := input.WorkDirOverride
	if workDir == "" {
		var err error

		workDir, err = os.Getwd()
		if err != nil {
			return Config{}, fmt.Errorf("cannot get working directory: %w", err)
		}
	}

	workDir, err := filepath.Abs(workDir)
	if err != nil {
		return Config{}, fmt.Errorf("resolve working directory: %w", err)
	}

	cfg := Default()

	fileCfg, path, err := loadProjectConfig(workDir, input.ConfigPath)
	if err != nil {
		return Config{}, err
	}

	cfg = merge(cfg, fileCfg)
	cfg.Source = path

	if input.LogLevelOverride != "" {
		cfg.LogLevel = input.LogLevelOverride
	}

	_, err = cfg.Level()
	if err != nil {
		return Config{}, err
	}

	cfg.WorkDir = workDir

	if cfg.LogFile != "" {
		cfg.LogFileAbs = cfg.LogFile
		if !filepath.IsAbs(cfg.LogFileAbs) {
			cfg.LogFileAbs = filepath.Join(workDir, cfg.LogFileAbs)
		}
	}

	return cfg, nil
}

// Level parses LogLevel.
func (c Config) Level() (slog.Level, error) {
	switch strings.ToLower(c.LogLevel) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("%w: %q (want debug|info|warn|error)", ErrInvalidLogLevel, c.LogLevel)
	}
}

// loadProjectConfig loads the explicit config file, or the default project
// file if no explicit path was given. Returns the path if a file was loaded.
func loadProjectConfig(workDir, configPath string) (Config, string, error) {
	if configPath == "" {
		path := filepath.Join(workDir, FileName)

		cfg, loaded, err := loadFile(path, false)
		if err != nil || !loaded {
			return Config{}, "", err
		}

		return cfg, path, nil
	}

	path := configPath
	if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	cfg, _, err := loadFile(path, true)
	if err != nil {
		return Config{}, "", err
	}

	return cfg, path, nil
}

// loadFile reads a JSONC config file. If mustExist is false, a missing file
// is not an error and reports loaded=false.
func loadFile(path string, mustExist bool) (Config, bool, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if mustExist {
				return Config{}, false, fmt.Errorf("%w: %s", ErrConfigFileNotFound, path)
			}

			return Config{}, false, nil
		}

		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigFileRead, path, err)
	}

	cfg, err := parse(data)
	if err != nil {
		return Config{}, false, fmt.Errorf("%w %s: %w", ErrConfigInvalid, path, err)
	}

	return cfg, true, nil
}

func parse(data []byte) (Config, error) {
	// Standardize JSONC to JSON
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSONC: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	var cfg Config

	err = dec.Decode(&cfg)
	if err != nil {
		return Config{}, fmt.Errorf("invalid JSON: %w", err)
	}

	return cfg, nil
}

func merge(base, overlay Config) Config {
	if overlay.LogLevel != "" {
		base.LogLevel = overlay.LogLevel
	}

	if overlay.LogFile != "" {
		base.LogFile = overlay.LogFile
	}

	return base
}
