package llmwire

import (
	"context"
	"log/slog"
	"strings"

	gonanoid "github.com/matoous/go-nanoid/v2"
	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"golang.org/x/time/rate"
)

// Request carries the per-invocation inputs. The zero value plus a Prompt is
// a complete request.
type Request struct {
	// Prompt becomes the user message unless Messages is supplied.
	Prompt string

	// ImageURL, when set, attaches an image part next to the prompt text.
	ImageURL string

	// Messages, when non-nil, is sent verbatim and Prompt and ImageURL are
	// ignored.
	Messages []openai.ChatCompletionMessageParamUnion

	// Tools, when non-empty, is forwarded to the provider. A buffered
	// response whose message carries tool calls then comes back as a tool
	// Result.
	Tools []openai.ChatCompletionToolParam

	// Reporter, when set, receives progress notifications for this call.
	// Segment and Tag identify the call in those notifications.
	Reporter Reporter
	Segment  string
	Tag      string
}

// Client is the uniform invocation contract every provider variant
// satisfies.
type Client interface {
	// Name identifies the client in logs and diagnostics.
	Name() string

	// Call runs one invocation to completion, buffered or streamed per the
	// client configuration.
	Call(ctx context.Context, req Request) (Result, error)

	// CallAsync runs the same invocation on its own goroutine and delivers
	// the outcome exactly once on the returned channel. The channel is
	// buffered, so the result is never lost to a slow receiver.
	CallAsync(ctx context.Context, req Request) <-chan AsyncResult
}

// clientCore carries what both variants share: the transport seam, the
// request gate and logging. The variant assembles provider parameters; the
// core runs the invocation.
type clientCore struct {
	completer Completer
	limiter   *rate.Limiter
	name      string
	model     string
	stream    bool
	callOpts  []option.RequestOption
	logger    *slog.Logger
}

func (c *clientCore) Name() string {
	return c.name
}

// SetLogger replaces the default logger. Call before the client is shared.
func (c *clientCore) SetLogger(logger *slog.Logger) {
	c.logger = logger
}

// invoke waits on the request gate, issues the request and shapes the
// outcome. Streamed clients accumulate deltas and resolve to text; buffered
// clients normalize the completion and notify FINISH themselves.
func (c *clientCore) invoke(ctx context.Context, req Request, params openai.ChatCompletionNewParams) (Result, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return Result{}, err
	}
	callID := gonanoid.Must()
	c.logger.Debug("chat completion",
		"call", callID,
		"client", c.name,
		"model", c.model,
		"stream", c.stream,
	)
	// Calls run concurrently over the same client; copy before appending.
	opts := append([]option.RequestOption(nil), c.callOpts...)
	opts = optsWithIds(ctx, opts)

	if c.stream {
		stream := c.completer.NewStreaming(ctx, params, opts...)
		text, err := accumulateStream(stream, req.Reporter, req.Segment, req.Tag)
		if err != nil {
			c.logger.Error("chat completion stream failed", "call", callID, "error", err)
			return Result{}, err
		}
		return Result{Text: text}, nil
	}

	completion, err := c.completer.New(ctx, params, opts...)
	if err != nil {
		c.logger.Error("chat completion failed", "call", callID, "error", err)
		return Result{}, err
	}
	res := normalizeCompletion(completion, len(req.Tools) > 0)
	if req.Reporter != nil {
		req.Reporter.Report(req.Segment, req.Tag, res.Text, StatusFinish)
	}
	return res, nil
}

// invokeAsync notifies INIT before anything else touches the request, then
// hands off to the variant's synchronous path.
func (c *clientCore) invokeAsync(ctx context.Context, req Request, call func(context.Context, Request) (Result, error)) <-chan AsyncResult {
	out := make(chan AsyncResult, 1)
	go func() {
		defer close(out)
		if req.Reporter != nil {
			req.Reporter.Report(req.Segment, req.Tag, "", StatusInit)
		}
		res, err := call(ctx, req)
		out <- AsyncResult{Result: res, Err: err}
	}()
	return out
}

// OpenAIClient talks to api.openai.com or any endpoint speaking the same
// chat completion dialect (vLLM, MaaS gateways, local servers).
type OpenAIClient struct {
	clientCore
	cfg Config
}

var _ Client = (*OpenAIClient)(nil)

// NewOpenAIClient validates cfg, applies defaults and builds the transport.
// The returned client is safe for concurrent use.
func NewOpenAIClient(cfg Config) (*OpenAIClient, error) {
	cfg.applyDefaults()
	if cfg.APIKey == "" {
		cfg.APIKey = defaultAPIKey
	}
	if cfg.Model == "" {
		return nil, ErrNoModel
	}

	var client *openai.Client
	if cfg.BaseURL != "" {
		client = openai.NewClient(option.WithBaseURL(withTrailingSlash(cfg.BaseURL)), option.WithAPIKey(cfg.APIKey))
	} else {
		client = openai.NewClient(option.WithAPIKey(cfg.APIKey))
	}

	callOpts := []option.RequestOption{}
	if cfg.Timeout > 0 {
		callOpts = append(callOpts, option.WithRequestTimeout(cfg.Timeout))
	}
	if cfg.Think {
		callOpts = append(callOpts, option.WithJSONSet("chat_template_kwargs.enable_thinking", true))
	}
	for key, value := range cfg.Extra {
		callOpts = append(callOpts, option.WithJSONSet(key, value))
	}

	return &OpenAIClient{
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

func (c *OpenAIClient) Call(ctx context.Context, req Request) (Result, error) {
	return c.invoke(ctx, req, c.params(req))
}

func (c *OpenAIClient) CallAsync(ctx context.Context, req Request) <-chan AsyncResult {
	return c.invokeAsync(ctx, req, c.Call)
}

// params assembles the wire request. Tools are forwarded only when the
// caller supplied some; the token cap is omitted entirely when
// non-positive, leaving the limit to the provider.
func (c *OpenAIClient) params(req Request) openai.ChatCompletionNewParams {
	params := openai.ChatCompletionNewParams{
		Messages:    openai.F(BuildMessages(req.Prompt, req.ImageURL, req.Messages)),
		Model:       openai.F(c.cfg.Model),
		Temperature: openai.F(c.cfg.Temperature),
	}
	if len(req.Tools) > 0 {
		params.Tools = openai.F(req.Tools)
	}
	if c.cfg.MaxTokens > 0 {
		params.MaxTokens = openai.F(c.cfg.MaxTokens)
	}
	return params
}

// withTrailingSlash keeps a path-bearing base URL intact: request paths
// resolve relative to the base, and without the slash its last segment,
// /v1 on most OpenAI-compatible servers, would be dropped.
func withTrailingSlash(baseURL string) string {
	if strings.HasSuffix(baseURL, "/") {
		return baseURL
	}
	return baseURL + "/"
}
