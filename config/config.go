// ABOUTME: Configuration for the Folk API client and the MCP transports
// ABOUTME: Handles config storage at XDG paths and environment variable overrides
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/adrg/xdg"

	"github.com/harperreed/folk-mcp/folk"
)

const (
	// DefaultBaseURL is the Folk REST API root.
	DefaultBaseURL = folk.DefaultBaseURL

	// DefaultTimeoutSecs bounds every upstream request.
	DefaultTimeoutSecs = 30

	// DefaultHTTPAddr is where `folk-mcp serve` listens.
	DefaultHTTPAddr = ":8000"

	// DefaultRateLimitPerMin is the per-client request budget in serve mode.
	DefaultRateLimitPerMin = 120
)

// Config stores Folk API credentials and server settings.
type Config struct {
	APIKey      string     `json:"api_key"`
	BaseURL     string     `json:"base_url,omitempty"`
	TimeoutSecs int        `json:"timeout_secs,omitempty"`
	HTTP        HTTPConfig `json:"http,omitempty"`
}

// HTTPConfig holds settings for the streamable HTTP transport (serve mode).
type HTTPConfig struct {
	Addr            string `json:"addr,omitempty"`
	RequireAuth     bool   `json:"require_auth,omitempty"`
	AuthToken       string `json:"auth_token,omitempty"`
	RateLimitPerMin int    `json:"rate_limit_per_min,omitempty"`
}

// Dir returns the XDG-compliant directory for folk-mcp configuration.
func Dir() string {
	return filepath.Join(xdg.DataHome, "folk-mcp")
}

// Path returns the XDG-compliant path of the config file.
func Path() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads configuration from the XDG data directory.
// Returns a default config if the file does not exist.
// Environment variables override file values:
// - FOLK_API_KEY
// - FOLK_API_URL
// - FOLK_TIMEOUT_SECS
// - MCP_HTTP_ADDR
// - MCP_HTTP_REQUIRE_AUTH
// - MCP_HTTP_AUTH_TOKEN
// - MCP_HTTP_RATE_LIMIT_PER_MIN.
func Load() (*Config, error) {
	path := Path()

	cfg := Default()

	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			applyEnvOverrides(cfg)
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to open config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	if err := json.NewDecoder(f).Decode(cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}

	// Defaults fill first so an explicit env value always wins, including
	// MCP_HTTP_RATE_LIMIT_PER_MIN=0 to disable rate limiting.
	cfg.fillDefaults()
	applyEnvOverrides(cfg)

	return cfg, nil
}

// Default returns a config populated with defaults and no credentials.
func Default() *Config {
	return &Config{
		BaseURL:     DefaultBaseURL,
		TimeoutSecs: DefaultTimeoutSecs,
		HTTP: HTTPConfig{
			Addr:            DefaultHTTPAddr,
			RateLimitPerMin: DefaultRateLimitPerMin,
		},
	}
}

// Timeout returns the request timeout as a duration.
func (c *Config) Timeout() time.Duration {
	secs := c.TimeoutSecs
	if secs <= 0 {
		secs = DefaultTimeoutSecs
	}
	return time.Duration(secs) * time.Second
}

func (c *Config) fillDefaults() {
	if c.BaseURL == "" {
		c.BaseURL = DefaultBaseURL
	}
	if c.TimeoutSecs <= 0 {
		c.TimeoutSecs = DefaultTimeoutSecs
	}
	if c.HTTP.Addr == "" {
		c.HTTP.Addr = DefaultHTTPAddr
	}
	if c.HTTP.RateLimitPerMin == 0 {
		c.HTTP.RateLimitPerMin = DefaultRateLimitPerMin
	}
}

// applyEnvOverrides applies environment variable overrides to the config.
func applyEnvOverrides(cfg *Config) {
	if key := os.Getenv("FOLK_API_KEY"); key != "" {
		cfg.APIKey = key
	}
	if url := os.Getenv("FOLK_API_URL"); url != "" {
		cfg.BaseURL = url
	}
	if secs := os.Getenv("FOLK_TIMEOUT_SECS"); secs != "" {
		var n int
		if _, err := fmt.Sscanf(secs, "%d", &n); err == nil && n > 0 {
			cfg.TimeoutSecs = n
		}
	}
	if addr := os.Getenv("MCP_HTTP_ADDR"); addr != "" {
		cfg.HTTP.Addr = addr
	}
	if v := os.Getenv("MCP_HTTP_REQUIRE_AUTH"); v != "" {
		cfg.HTTP.RequireAuth = envBool(v)
	}
	if token := os.Getenv("MCP_HTTP_AUTH_TOKEN"); token != "" {
		cfg.HTTP.AuthToken = token
	}
	if limit := os.Getenv("MCP_HTTP_RATE_LIMIT_PER_MIN"); limit != "" {
		var n int
		if _, err := fmt.Sscanf(limit, "%d", &n); err == nil && n >= 0 {
			cfg.HTTP.RateLimitPerMin = n
		}
	}
}

func envBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on":
		return true
	}
	return false
}

// Save writes configuration to the XDG data directory.
func Save(cfg *Config) error {
	path := Path()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Config holds the API key, so keep permissions tight
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() { _ = f.Close() }()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(cfg); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
