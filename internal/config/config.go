// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config holds the analyzer's configuration: inputs, credentials, and
// behavior flags. All fields are optional in the file; CLI flags and
// environment variables fill the rest.
type Config struct {
	// Inputs
	Resume string `json:"resume,omitempty" validate:"omitempty,file"`
	Job    string `json:"job,omitempty" validate:"omitempty,file"`
	JobURL string `json:"job_url,omitempty" validate:"omitempty,url"`

	// Credentials and storage
	APIKey      string `json:"api_key,omitempty"`
	DatabaseURL string `json:"database_url,omitempty"`

	// Behavior
	Consent bool `json:"consent,omitempty"` // send document text to the LLM provider
	Verbose bool `json:"verbose,omitempty"`
}

// Load reads configuration from a JSON file.
func Load(path string) (*Config, error) {
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

// FromEnv fills credential fields from the environment when unset in the
// file: GEMINI_API_KEY and DATABASE_URL.
func (c *Config) FromEnv() {
	if c.APIKey == "" {
		c.APIKey = os.Getenv("GEMINI_API_KEY")
	}
	if c.DatabaseURL == "" {
		c.DatabaseURL = os.Getenv("DATABASE_URL")
	}
}

// Validate checks field formats and cross-field constraints.
func (c *Config) Validate() error {
	if c.Job != "" && c.JobURL != "" {
		return fmt.Errorf("config error: 'job' and 'job_url' are mutually exclusive")
	}

	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		if fieldErrors, ok := err.(validator.ValidationErrors); ok && len(fieldErrors) > 0 {
			first := fieldErrors[0]
			return fmt.Errorf("config error: field %s failed %s validation", first.Field(), first.Tag())
		}
		return fmt.Errorf("config error: %w", err)
	}
	return nil
}

// Merge returns a copy with empty fields filled from defaults. Bool fields
// are not merged since unset and false are indistinguishable; CLI flags win.
func (c *Config) Merge(defaults Config) Config {
	result := *c
	if result.Resume == "" {
		result.Resume = defaults.Resume
	}
	if result.Job == "" {
		result.Job = defaults.Job
	}
	if result.JobURL == "" {
		result.JobURL = defaults.JobURL
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}
	return result
}
