package model

import "time"

// Config is the full runtime configuration, layered by the CLI from
// defaults, the config file, DISCLOSE_* environment variables, and flags.
type Config struct {
	Site        SiteConfig        `json:"site" yaml:"site"`
	LinkCheck   LinkCheckConfig   `json:"linkcheck" yaml:"linkcheck"`
	Cache       CacheConfig       `json:"cache" yaml:"cache"`
	LLM         LLMConfig         `json:"llm" yaml:"llm"`
	Concurrency ConcurrencyConfig `json:"concurrency" yaml:"concurrency"`
	Output      OutputConfig      `json:"output" yaml:"output"`
}

// SiteConfig identifies the publishing organization. These values feed
// the Organization schema and JSON-LD page URLs.
type SiteConfig struct {
	BaseURL          string   `json:"base_url" yaml:"base_url"`
	OrganizationName string   `json:"organization_name" yaml:"organization_name"`
	LogoURL          string   `json:"logo_url" yaml:"logo_url"`
	Description      string   `json:"description" yaml:"description"`
	ContactEmail     string   `json:"contact_email" yaml:"contact_email"`
	ContactPhone     string   `json:"contact_phone" yaml:"contact_phone"`
	SameAs           []string `json:"same_as" yaml:"same_as"`
}

// LinkCheckConfig controls the evidence document URL checker
type LinkCheckConfig struct {
	Timeout           time.Duration `json:"timeout" yaml:"timeout"`
	MaxWorkers        int           `json:"max_workers" yaml:"max_workers"`
	UserAgent         string        `json:"user_agent" yaml:"user_agent"`
	RequestsPerSecond float64       `json:"requests_per_second" yaml:"requests_per_second"`
	Burst             int           `json:"burst" yaml:"burst"`
	RespectRobots     bool          `json:"respect_robots" yaml:"respect_robots"`
}

// CacheConfig controls the projected-markup cache
type CacheConfig struct {
	Enabled bool          `json:"enabled" yaml:"enabled"`
	TTL     time.Duration `json:"ttl" yaml:"ttl"`
}

// LLMConfig controls the optional editorial summary. Disabled unless a
// provider is set; summaries never influence validation outcomes.
type LLMConfig struct {
	Provider  string `json:"provider" yaml:"provider"` // "" disables
	Model     string `json:"model" yaml:"model"`
	APIKey    string `json:"-" yaml:"-"` // env only, never persisted
	BaseURL   string `json:"base_url,omitempty" yaml:"base_url,omitempty"`
	Timeout   int    `json:"timeout" yaml:"timeout"` // seconds
	MaxTokens int    `json:"max_tokens" yaml:"max_tokens"`
}

// ConcurrencyConfig sizes the validation worker pool
type ConcurrencyConfig struct {
	ValidationWorkers int `json:"validation_workers" yaml:"validation_workers"`
}

// OutputConfig controls CLI output behavior
type OutputConfig struct {
	Verbose bool `json:"verbose" yaml:"verbose"`
	JSON    bool `json:"json" yaml:"json"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Site: SiteConfig{
			BaseURL:          "https://www.one-dna.com",
			OrganizationName: "ONE-DNA",
			LogoURL:          "https://www.one-dna.com/images/logo.png",
			Description:      "A design philosophy enabling circularity from the first molecule.",
			ContactEmail:     "info@one-dna.com",
			SameAs: []string{
				"https://www.linkedin.com/company/one-dna",
				"https://www.youtube.com/@one-dna",
			},
		},
		LinkCheck: LinkCheckConfig{
			Timeout:           10 * time.Second,
			MaxWorkers:        10,
			UserAgent:         "Disclose/0.1 (+https://github.com/one-dna/disclose)",
			RequestsPerSecond: 2,
			Burst:             5,
			RespectRobots:     true,
		},
		Cache: CacheConfig{
			Enabled: true,
			TTL:     time.Hour,
		},
		LLM: LLMConfig{
			Provider:  "",
			Timeout:   30,
			MaxTokens: 1000,
		},
		Concurrency: ConcurrencyConfig{
			ValidationWorkers: 8,
		},
		Output: OutputConfig{},
	}
}
