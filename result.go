package llmwire

import "github.com/openai/openai-go"

// Result is the outcome of a completed invocation. Text always holds the
// assistant text content, possibly empty. ToolMessage is set only when tools
// were requested and the model answered with at least one tool call; it is
// the provider message verbatim so callers can execute the calls and feed
// the message back into the conversation. When ToolMessage is set the
// invocation is a tool call and Text merely mirrors any content the provider
// attached alongside it.
type Result struct {
	Text        string
	ToolMessage *openai.ChatCompletionMessage
}

// IsToolCall reports whether the model chose to call tools instead of
// answering with text.
func (r Result) IsToolCall() bool {
	return r.ToolMessage != nil
}

// AsyncResult is delivered exactly once on the channel returned by
// CallAsync. Err is set when the invocation failed; Result is only
// meaningful when Err is nil.
type AsyncResult struct {
	Result Result
	Err    error
}
