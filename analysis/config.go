/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package analysis

import (
	"os"
	"strings"
	"time"
)

// Defaults for the Gemini API.
const (
	DefaultModel   = "gemini-2.5-flash"
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
)

// Config holds the inference API configuration.
type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	// Timeout bounds one call. Zero leaves the call unbounded.
	Timeout time.Duration
}

// ConfigFromEnv loads the configuration from environment variables.
func ConfigFromEnv() (Config, error) {
	apiKey := strings.TrimSpace(os.Getenv("GEMINI_API_KEY"))
	if apiKey == "" {
		apiKey = strings.TrimSpace(os.Getenv("API_KEY"))
	}

	cfg := Config{
		APIKey:  apiKey,
		Model:   strings.TrimSpace(os.Getenv("GEMINI_MODEL")),
		BaseURL: strings.TrimSpace(os.Getenv("GEMINI_API_URL")),
	}

	return cfg.withDefaults()
}

func (c Config) withDefaults() (Config, error) {
	if c.APIKey == "" {
		return c, ErrAPIKeyRequired
	}
	if c.Model == "" {
		c.Model = DefaultModel
	}
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	c.BaseURL = strings.TrimSuffix(c.BaseURL, "/")

	return c, nil
}
