package llmwire

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
)

// AzureOpenAIClient talks to an Azure OpenAI resource. It behaves exactly
// like OpenAIClient: same call shapes, same tool handling, same progress
// notifications. Only transport assembly differs: the deployment routes in
// the URL, the API version travels as a query parameter, and authentication
// is an api-key header or an AD bearer token.
type AzureOpenAIClient struct {
	clientCore
	cfg Config
}

var _ Client = (*AzureOpenAIClient)(nil)

// NewAzureOpenAIClient validates cfg, applies defaults and builds the
// transport. BaseURL (the resource endpoint), Model and one credential are
// required.
func NewAzureOpenAIClient(cfg Config) (*AzureOpenAIClient, error) {
	cfg.applyDefaults()
	if cfg.APIVersion == "" {
		cfg.APIVersion = DefaultAPIVersion
	}
	if cfg.BaseURL == "" {
		return nil, ErrNoBaseURL
	}
	if cfg.Model == "" {
		return nil, ErrNoModel
	}
	if cfg.APIKey == "" && cfg.AzureADToken == "" && cfg.AzureADTokenProvider == nil {
		return nil, ErrNoCredential
	}

	clientOpts := []option.RequestOption{
		option.WithBaseURL(azureBaseURL(cfg.BaseURL, cfg.Deployment)),
		option.WithQueryAdd("api-version", cfg.APIVersion),
	}
	switch {
	case cfg.APIKey != "":
		clientOpts = append(clientOpts, option.WithHeader("api-key", cfg.APIKey))
	case cfg.AzureADToken != "":
		clientOpts = append(clientOpts, option.WithHeader("Authorization", "Bearer "+cfg.AzureADToken))
	default:
		clientOpts = append(clientOpts, option.WithHTTPClient(&http.Client{
			Transport: &adTokenTransport{provider: cfg.AzureADTokenProvider},
		}))
	}
	client := openai.NewClient(clientOpts...)

	callOpts := []option.RequestOption{}
	if cfg.Timeout > 0 {
		callOpts = append(callOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	for key, value := range cfg.Extra {
		callOpts = append(callOpts, option.WithJSONSet(key, value))
	}

	return &AzureOpenAIClient{
		clientCore: clientCore{
			completer: &chatCompleter{client: client},
			limiter:   newRateGate(cfg.MaxRate, cfg.TimePeriod),
			name:      cfg.defaultName(),
			model:     cfg.Model,
			stream:    cfg.Stream,
			callOpts:  callOpts,
			logger:    slog.Default(),
		},
		cfg: cfg,
	}, nil
}

func (c *AzureOpenAIClient) Call(ctx context.Context, req Request) (Result, error) {
	return c.invoke(ctx, req, c.params(req))
}

func (c *AzureOpenAIClient) CallAsync(ctx context.Context, req Request) <-chan AsyncResult {
	return c.invokeAsync(ctx, req, c.Call)
}

// params assembles the wire request. Unlike the generic variant the token
// cap is always sent as configured; the service applies its own limit when
// the cap is zero.
func (c *AzureOpenAIClient) params(req Request) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages:    openai.F(BuildMessages(req.Prompt, req.ImageURL, req.Messages)),
		Model:       openai.F(c.cfg.Model),
		Temperature: openai.F(c.cfg.Temperature),
		MaxTokens:   openai.F(c.cfg.MaxTokens),
	}
	if len(req.Tools) > 0 {
		params.Tools = openai.F(req.Tools)
	}
	return params
}

// azureBaseURL mirrors how the official SDKs address a resource: requests go
// under /openai, with the deployment segment when one is configured. The
// trailing slash matters: request paths resolve relative to the base, so
// without it the last segment would be dropped.
func azureBaseURL(endpoint, deployment string) string {
	base := strings.TrimSuffix(endpoint, "/")
	if deployment == "" {
		return base + "/openai/"
	}
	return base + "/openai/deployments/" + deployment + "/"
}

// adTokenTransport asks the configured provider for a fresh AD token on
// every request and attaches it as the bearer credential.
type adTokenTransport struct {
	provider AzureADTokenProvider
	base     http.RoundTripper
}

func (t *adTokenTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	token, err := t.provider(req.Context())
	if err != nil {
		return nil, fmt.Errorf("azure ad token provider: %w", err)
	}
	clone := req.Clone(req.Context())
	clone.Header.Set("Authorization", "Bearer "+token)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}
