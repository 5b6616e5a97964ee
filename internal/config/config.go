// Package config provides configuration loading for the CLI and server.
// Values come from an optional JSON file overlaid with environment
// variables; flags merged by the CLI take final precedence.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Config holds the runtime configuration. All fields are optional; missing
// values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Resume string `json:"resume,omitempty"` // Path to resume text file
	Job    string `json:"job,omitempty"`    // Path to job description text file

	// Server
	Addr        string `json:"addr,omitempty"`         // HTTP listen address
	DatabaseURL string `json:"database_url,omitempty"` // PostgreSQL connection URL; empty uses in-memory storage

	// Behavior
	InterviewType string `json:"interview_type,omitempty"` // behavioral, technical, situational, or mixed
	Verbose       bool   `json:"verbose,omitempty"`        // Print detailed debug information
}

// DefaultAddr is used when neither the config file nor the environment sets
// a listen address.
const DefaultAddr = ":8080"

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// FromEnv returns a Config populated from environment variables. JSON file
// values win over the environment when both are set.
func FromEnv() Config {
	return Config{
		Addr:        os.Getenv("JOBSYNC_ADDR"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
	}
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	switch c.InterviewType {
	case "", "behavioral", "technical", "situational", "mixed":
	default:
		return fmt.Errorf("config error: unknown interview_type %q", c.InterviewType)
	}

	if c.Resume != "" {
		if _, err := os.Stat(c.Resume); os.IsNotExist(err) {
			return fmt.Errorf("config error: resume file not found: %s", c.Resume)
		}
	}
	if c.Job != "" {
		if _, err := os.Stat(c.Job); os.IsNotExist(err) {
			return fmt.Errorf("config error: job file not found: %s", c.Job)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from
// defaults. The CLI uses this to apply config file values under flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.Addr == "" {
		result.Addr = defaults.Addr
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	if result.InterviewType == "" {
		result.InterviewType = defaults.InterviewType
	}
	if !result.Verbose {
		result.Verbose = defaults.Verbose
	}

	return result
}
