package llmwire

import (
	"context"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// ContextKey is the type for identifiers threaded through context into the
// request body.
type ContextKey string

// Context keys recognized by the transport. Values must be strings; anything
// else is ignored.
const (
	ContextKeyCallID     ContextKey = "callID"
	ContextKeyCustomerID ContextKey = "customerID"
)

// Completer is the transport contract the client variants run on: one
// buffered and one streamed completion request. The production
// implementation wraps the openai-go chat service; tests substitute fakes.
type Completer interface {
	New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
	NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) *ssestream.Stream[openai.ChatCompletionChunk]
}

type chatCompleter struct {
	client *openai.Client
}

func (c *chatCompleter) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	return c.client.Chat.Completions.New(ctx, params, opts...)
}

func (c *chatCompleter) NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) *ssestream.Stream[openai.ChatCompletionChunk] {
	return c.client.Chat.Completions.NewStreaming(ctx, params, opts...)
}

// optsWithIds appends identifiers from the context as request-body fields so
// provider-side logs can be correlated with ours. Only proxies that accept
// the extra fields should be fed these keys.
func optsWithIds(ctx context.Context, opts []option.RequestOption) []option.RequestOption {
	if callID, ok := ctx.Value(ContextKeyCallID).(string); ok {
		opts = append(opts, option.WithJSONSet("custom_identifier", callID))
	}
	if customerID, ok := ctx.Value(ContextKeyCustomerID).(string); ok {
		opts = append(opts, option.WithJSONSet("customer_identifier", customerID))
	}
	return opts
}
