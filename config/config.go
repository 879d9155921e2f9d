// Package config provides configuration management for the resume screening
// application. It handles loading and validation of configuration values from
// environment variables, with support for required variables, default values,
// and collective error reporting. This allows the application to be configured
// for different environments (dev, staging, prod) without code changes.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// StoreConfig holds configuration for the flat-file credential store.
type StoreConfig struct {
	// UsersFile is the path of the CSV file holding user records.
	// The file is created with a header row on first use if it is absent.
	UsersFile string
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	JWTSecret       string        // Secret key for signing session tokens
	SessionDuration time.Duration // Lifetime of an issued session token
}

// SessionConfig holds settings for the in-memory session registry.
type SessionConfig struct {
	IdleTimeout  time.Duration // Sessions untouched for this long are reaped
	ReapInterval time.Duration // How often the reaper sweeps the registry
}

// ScoringConfig holds the vocabularies the parser and scorer match against.
// They live in configuration so that the keyword lists can be tuned per
// deployment without a code change; the defaults reproduce the original
// scoring behavior.
type ScoringConfig struct {
	Keywords    []string // High-value keyword vocabulary, in scoring order
	ActionVerbs []string // Action verb vocabulary
}

// ServerConfig holds server-related configuration.
type ServerConfig struct {
	Port           string // Port for the HTTP server
	MaxUploadBytes int64  // Multipart form memory limit for resume uploads
}

// AppConfig is the top-level configuration structure for the application.
type AppConfig struct {
	Store   *StoreConfig
	Auth    *AuthConfig
	Session *SessionConfig
	Scoring *ScoringConfig
	Server  *ServerConfig
}

// defaultKeywords is the fixed ten-term keyword vocabulary used when
// SCORING_KEYWORDS is not set. Order matters: skills_found reports matches
// in this order.
var defaultKeywords = []string{
	"python", "javascript", "sql", "project management", "machine learning",
	"data analysis", "cloud", "aws", "docker", "agile",
}

// defaultActionVerbs is the fixed ten-verb vocabulary used when
// SCORING_ACTION_VERBS is not set.
var defaultActionVerbs = []string{
	"managed", "developed", "created", "led", "implemented", "analyzed",
	"designed", "optimized", "achieved", "streamlined",
}

// Helper function to get a required environment variable.
// Appends an error to the errors slice if the variable is not set.
// This promotes a "fail fast" approach for critical missing configurations.
func getRequiredEnv(key string, errors *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errors = append(*errors, fmt.Sprintf("missing required environment variable: %s", key))
		return "" // Return empty string, error is collected
	}
	return value
}

// Helper function to get an optional environment variable with a default string value.
func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// Helper function to get an optional environment variable parsed as an int64.
// Uses defaultValue if not set. Appends an error if parsing fails.
func getOptionalEnvInt64(key string, defaultValue int64, errors *[]string) int64 {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.ParseInt(valueStr, 10, 64)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueInt
}

// Helper function to get an optional environment variable parsed as time.Duration.
// Uses defaultValue if not set or if parsing fails. Appends an error if parsing fails.
// `time.ParseDuration` expects a string like "15m", "1h30s".
func getOptionalEnvDuration(key string, defaultValue time.Duration, errors *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errors = append(*errors, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue // Return default, error is collected
	}
	return valueDuration
}

// Helper function to get an optional environment variable parsed as a
// comma-separated list. Entries are trimmed and lower-cased; empty entries are
// dropped. Returns a copy of defaultValue when the variable is not set.
func getOptionalEnvList(key string, defaultValue []string) []string {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		out := make([]string, len(defaultValue))
		copy(out, defaultValue)
		return out
	}
	var out []string
	for _, part := range strings.Split(valueStr, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// LoadConfig creates and returns an AppConfig by reading and validating
// environment variables. It collects all errors encountered during loading and
// returns a single aggregated error if any exist.
func LoadConfig() (*AppConfig, error) {
	// `errors` slice collects all validation/parsing errors during config loading.
	var errors []string

	// Credential store configuration. The CSV path matches the original
	// deployment layout by default.
	storeConfig := &StoreConfig{
		UsersFile: getOptionalEnv("USERS_FILE", "users.csv"),
	}

	// Auth configuration
	jwtSecret := getRequiredEnv("JWT_SECRET", &errors)
	sessionDuration := getOptionalEnvDuration("SESSION_TOKEN_DURATION", 12*time.Hour, &errors)
	authConfig := &AuthConfig{
		JWTSecret:       jwtSecret,
		SessionDuration: sessionDuration,
	}

	// Session registry configuration
	sessionConfig := &SessionConfig{
		IdleTimeout:  getOptionalEnvDuration("SESSION_IDLE_TIMEOUT", 2*time.Hour, &errors),
		ReapInterval: getOptionalEnvDuration("SESSION_REAP_INTERVAL", 5*time.Minute, &errors),
	}

	// Scoring vocabularies
	scoringConfig := &ScoringConfig{
		Keywords:    getOptionalEnvList("SCORING_KEYWORDS", defaultKeywords),
		ActionVerbs: getOptionalEnvList("SCORING_ACTION_VERBS", defaultActionVerbs),
	}
	if len(scoringConfig.Keywords) == 0 {
		errors = append(errors, "SCORING_KEYWORDS must not be an empty list")
	}
	if len(scoringConfig.ActionVerbs) == 0 {
		errors = append(errors, "SCORING_ACTION_VERBS must not be an empty list")
	}

	// Server configuration
	serverConfig := &ServerConfig{
		// Server port is a string because it's used directly when binding (e.g. ":8080").
		Port:           getOptionalEnv("PORT", "8080"),
		MaxUploadBytes: getOptionalEnvInt64("MAX_UPLOAD_BYTES", 32<<20, &errors),
	}

	// If any errors were collected during loading, return a single aggregated error message.
	if len(errors) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errors, "\n- "))
	}

	return &AppConfig{
		Store:   storeConfig,
		Auth:    authConfig,
		Session: sessionConfig,
		Scoring: scoringConfig,
		Server:  serverConfig,
	}, nil
}
