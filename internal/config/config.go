// Package config assembles runtime settings from defaults, an optional YAML
// file, a .env file and the environment, in increasing order of precedence.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/alexanderramin/stride/internal/llm"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DefaultFile is read from the working directory when no path is given.
const DefaultFile = "stride.yaml"

type LogConfig struct {
	Level string `yaml:"level"`
	// File receives log output. Empty means stderr for serve and no logging
	// for the interactive terminal UI.
	File string `yaml:"file"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type Config struct {
	Locale         string
	Seed           bool
	ReopenProgress int
	Log            LogConfig
	Server         ServerConfig
	LLM            llm.LLMConfig
}

func Default() Config {
	return Config{
		Locale:         "en",
		Seed:           false,
		ReopenProgress: 99,
		Log:            LogConfig{Level: "info"},
		Server:         ServerConfig{Addr: "127.0.0.1:8080"},
		LLM:            llm.DefaultConfig(),
	}
}

// fileConfig mirrors the YAML layout. Pointer fields distinguish "absent"
// from zero values so a file only overrides what it names.
type fileConfig struct {
	Locale         *string       `yaml:"locale"`
	Seed           *bool         `yaml:"seed"`
	ReopenProgress *int          `yaml:"reopen_progress"`
	Log            *LogConfig    `yaml:"log"`
	Server         *ServerConfig `yaml:"server"`
	LLM            *struct {
		Enabled    *bool   `yaml:"enabled"`
		Provider   *string `yaml:"provider"`
		Endpoint   *string `yaml:"endpoint"`
		Model      *string `yaml:"model"`
		APIKey     *string `yaml:"api_key"`
		TimeoutMs  *int    `yaml:"timeout_ms"`
		MaxRetries *int    `yaml:"max_retries"`
		LogCalls   *bool   `yaml:"log_calls"`
	} `yaml:"llm"`
}

// Load builds the configuration. path may be empty, in which case
// STRIDE_CONFIG and then DefaultFile are tried; a missing default file is
// not an error, a missing explicit file is.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = os.Getenv("STRIDE_CONFIG")
		explicit = path != ""
	}
	if path == "" {
		path = DefaultFile
	}
	if err := applyFile(&cfg, path); err != nil {
		if explicit || !errors.Is(err, fs.ErrNotExist) {
			return cfg, err
		}
	}

	// godotenv never overrides variables already set in the environment.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	applyEnv(&cfg)

	return cfg, cfg.Validate()
}

func applyFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config %s: %w", path, err)
	}
	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}

	if fc.Locale != nil {
		cfg.Locale = *fc.Locale
	}
	if fc.Seed != nil {
		cfg.Seed = *fc.Seed
	}
	if fc.ReopenProgress != nil {
		cfg.ReopenProgress = *fc.ReopenProgress
	}
	if fc.Log != nil {
		if fc.Log.Level != "" {
			cfg.Log.Level = fc.Log.Level
		}
		if fc.Log.File != "" {
			cfg.Log.File = fc.Log.File
		}
	}
	if fc.Server != nil && fc.Server.Addr != "" {
		cfg.Server.Addr = fc.Server.Addr
	}
	if l := fc.LLM; l != nil {
		if l.Provider != nil {
			cfg.LLM.UseProvider(llm.Provider(strings.ToLower(*l.Provider)))
		}
		if l.Enabled != nil {
			cfg.LLM.Enabled = *l.Enabled
		}
		if l.Endpoint != nil {
			cfg.LLM.Endpoint = strings.TrimRight(*l.Endpoint, "/")
		}
		if l.Model != nil {
			cfg.LLM.Model = *l.Model
		}
		if l.APIKey != nil {
			cfg.LLM.APIKey = *l.APIKey
		}
		if l.TimeoutMs != nil && *l.TimeoutMs > 0 {
			cfg.LLM.TimeoutMs = *l.TimeoutMs
		}
		if l.MaxRetries != nil && *l.MaxRetries >= 0 {
			cfg.LLM.MaxRetries = *l.MaxRetries
		}
		if l.LogCalls != nil {
			cfg.LLM.LogCalls = *l.LogCalls
		}
	}
	return nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("STRIDE_LOCALE"); v != "" {
		cfg.Locale = v
	}
	if v := os.Getenv("STRIDE_SEED"); v != "" {
		cfg.Seed, _ = strconv.ParseBool(v)
	}
	if v := os.Getenv("STRIDE_REOPEN_PROGRESS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.ReopenProgress = n
		}
	}
	if v := os.Getenv("STRIDE_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("STRIDE_LOG_FILE"); v != "" {
		cfg.Log.File = v
	}
	if v := os.Getenv("STRIDE_ADDR"); v != "" {
		cfg.Server.Addr = v
	}
	llm.ApplyEnv(&cfg.LLM)
}

// Validate rejects settings no component can run with.
func (c Config) Validate() error {
	if c.ReopenProgress < 0 || c.ReopenProgress > 99 {
		return fmt.Errorf("reopen_progress must be within 0-99, got %d", c.ReopenProgress)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown log level %q", c.Log.Level)
	}
	if c.Server.Addr == "" {
		return fmt.Errorf("server address is required")
	}
	return nil
}
