package llmwire

import (
	"context"
	"time"
)

// Defaults applied at construction when the corresponding field is zero.
const (
	DefaultTemperature = 0.7
	DefaultAPIVersion  = "2024-12-01-preview"

	// Local OpenAI-compatible servers accept any key but the wire format
	// still requires one.
	defaultAPIKey = "dummy"
)

// AzureADTokenProvider returns a bearer token for the Azure OpenAI service.
// It is consulted on every request, so short-lived tokens stay fresh.
type AzureADTokenProvider func(ctx context.Context) (string, error)

// Config is the constructor-time surface shared by both provider variants.
// Nothing here is consulted after construction; build a new client to change
// any of it.
type Config struct {
	// Provider selects the client variant when constructing through New.
	// See Providers for the known tags.
	Provider string `mapstructure:"provider"`

	// Name identifies the client in logs and defaults to model@baseURL.
	Name string `mapstructure:"name"`

	// APIKey authenticates requests. The generic variant defaults it to
	// "dummy"; Azure requires a real credential (key, AD token or token
	// provider).
	APIKey string `mapstructure:"api_key"`

	// BaseURL points the generic variant at any OpenAI-compatible endpoint,
	// empty meaning the platform default. For Azure it is the resource
	// endpoint, e.g. https://myresource.openai.azure.com, and is required.
	BaseURL string `mapstructure:"base_url"`

	// Model is the wire model identifier. Required.
	Model string `mapstructure:"model"`

	// Stream selects streamed accumulation for every call made by this
	// client; buffered otherwise.
	Stream bool `mapstructure:"stream"`

	// Temperature defaults to DefaultTemperature when zero.
	Temperature float64 `mapstructure:"temperature"`

	// Timeout bounds each request end to end. Zero means no client-side
	// timeout.
	Timeout time.Duration `mapstructure:"timeout"`

	// MaxTokens caps completion length. The generic variant omits the cap
	// from the request when non-positive; Azure sends it as configured.
	MaxTokens int64 `mapstructure:"max_tokens"`

	// MaxRate admissions per TimePeriod shape the request gate.
	// Defaults: 1000 per second.
	MaxRate    float64       `mapstructure:"max_rate"`
	TimePeriod time.Duration `mapstructure:"time_period"`

	// Think switches on the enable_thinking chat-template extension
	// understood by vLLM-style servers. Generic variant only.
	Think bool `mapstructure:"think"`

	// APIVersion is the Azure API version, defaulted when empty.
	APIVersion string `mapstructure:"api_version"`

	// Deployment, when set, routes Azure requests through
	// /openai/deployments/{Deployment} on the resource endpoint.
	Deployment string `mapstructure:"azure_deployment"`

	// AzureADToken is a static bearer credential. AzureADTokenProvider
	// replaces it when tokens must be minted per request.
	AzureADToken         string               `mapstructure:"azure_ad_token"`
	AzureADTokenProvider AzureADTokenProvider `mapstructure:"-"`

	// Extra holds provider-specific request-body fields applied to every
	// request by JSON path, e.g. "chat_template_kwargs.enable_thinking".
	Extra map[string]any `mapstructure:"extra"`
}

// applyDefaults fills the zero fields both variants share.
func (cfg *Config) applyDefaults() {
	if cfg.Temperature == 0 {
		cfg.Temperature = DefaultTemperature
	}
	if cfg.MaxRate <= 0 {
		cfg.MaxRate = defaultMaxRate
	}
	if cfg.TimePeriod <= 0 {
		cfg.TimePeriod = defaultTimePeriod
	}
}

func (cfg Config) defaultName() string {
	if cfg.Name != "" {
		return cfg.Name
	}
	if cfg.BaseURL == "" {
		return cfg.Model
	}
	return cfg.Model + "@" + cfg.BaseURL
}
