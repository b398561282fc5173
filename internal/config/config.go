// Copyright (c) 2025-2026 AEA Engineering
// SPDX-License-Identifier: GPL-3.0-or-later

package config

import (
	"fmt"
	"log/slog"
	"net/url"
	"strings"

	"github.com/caarlos0/env/v11"
)

// knownWeakSecrets contains default/example secrets that must be rejected in production.
var knownWeakSecrets = []string{
	"change-me-to-32-byte-secret-key!",
	"REPLACE_WITH_YOUR_OWN_SECRET_KEY!",
}

// Config holds the application configuration loaded from environment variables.
type Config struct {
	BackendURL    string `env:"AEA_BACKEND_URL,required"`
	DBPath        string `env:"AEA_DB_PATH" envDefault:"./data/aea-site.db"`
	SessionSecret string `env:"AEA_SESSION_SECRET,required"`
	ServerHost    string `env:"AEA_SERVER_HOST" envDefault:"localhost"`
	ServerPort    int    `env:"AEA_SERVER_PORT" envDefault:"8080"`
	Env           string `env:"AEA_ENV" envDefault:"development"`
	LogLevel      string `env:"AEA_LOG_LEVEL" envDefault:"info"`

	// Rate limiting for public POST endpoints (contact form, login)
	PublicRateLimit float64 `env:"AEA_PUBLIC_RATE_LIMIT" envDefault:"0.5"` // requests per second per IP
	PublicRateBurst int     `env:"AEA_PUBLIC_RATE_BURST" envDefault:"5"`
}

// IsDevelopment returns true if the application is running in development mode.
func (c Config) IsDevelopment() bool {
	return c.Env == "development"
}

// ServerAddr returns the full server address in host:port format.
func (c Config) ServerAddr() string {
	return fmt.Sprintf("%s:%d", c.ServerHost, c.ServerPort)
}

// MinSessionSecretLength is the minimum required length for the session secret.
const MinSessionSecretLength = 32

// Load parses environment variables and returns a Config struct.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	// The backend URL must be absolute; everything the app renders comes from it.
	u, err := url.Parse(cfg.BackendURL)
	if err != nil || !u.IsAbs() {
		return nil, fmt.Errorf("AEA_BACKEND_URL must be an absolute URL, got %q", cfg.BackendURL)
	}
	cfg.BackendURL = strings.TrimRight(cfg.BackendURL, "/")

	// Validate session secret length
	if len(cfg.SessionSecret) < MinSessionSecretLength {
		return nil, fmt.Errorf("AEA_SESSION_SECRET must be at least %d bytes long, got %d bytes; "+
			"generate a secure secret with: openssl rand -base64 32",
			MinSessionSecretLength, len(cfg.SessionSecret))
	}

	// Reject known weak/default secrets
	for _, weak := range knownWeakSecrets {
		if cfg.SessionSecret == weak {
			return nil, fmt.Errorf("AEA_SESSION_SECRET is a known default value and must not be used; " +
				"generate a secure secret with: openssl rand -base64 32")
		}
	}

	// Warn about low-entropy secrets
	if !hasMinimumEntropy(cfg.SessionSecret) {
		slog.Warn("AEA_SESSION_SECRET has low character diversity; " +
			"consider generating a random secret with: openssl rand -base64 32")
	}

	if cfg.PublicRateLimit <= 0 {
		cfg.PublicRateLimit = 0.5
	}
	if cfg.PublicRateBurst <= 0 {
		cfg.PublicRateBurst = 5
	}

	return cfg, nil
}

// hasMinimumEntropy checks that a secret contains at least 3 character classes
// (lowercase, uppercase, digits, special characters).
func hasMinimumEntropy(s string) bool {
	charTypes := 0
	if strings.ContainsAny(s, "abcdefghijklmnopqrstuvwxyz") {
		charTypes++
	}
	if strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ") {
		charTypes++
	}
	if strings.ContainsAny(s, "0123456789") {
		charTypes++
	}
	if strings.ContainsAny(s, "!@#$%^&*()-_=+[]{}|;:,.<>?/~`'\"\\") {
		charTypes++
	}
	return charTypes >= 3
}
