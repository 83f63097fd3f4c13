package llmwire

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
)

// mockCompleter routes transport calls to function fields so tests can shape
// responses without a server.
type mockCompleter struct {
	NewFunc          func(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error)
	NewStreamingFunc func(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) *ssestream.Stream[openai.ChatCompletionChunk]
}

func (m *mockCompleter) New(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) (*openai.ChatCompletion, error) {
	return m.NewFunc(ctx, params, opts...)
}

func (m *mockCompleter) NewStreaming(ctx context.Context, params openai.ChatCompletionNewParams, opts ...option.RequestOption) *ssestream.Stream[openai.ChatCompletionChunk] {
	return m.NewStreamingFunc(ctx, params, opts...)
}

// chunkDecoder feeds pre-baked SSE payloads into an ssestream.Stream.
type chunkDecoder struct {
	events []string
	idx    int
	closed bool
}

func (d *chunkDecoder) Next() bool {
	if d.idx >= len(d.events) {
		return false
	}
	d.idx++
	return true
}

func (d *chunkDecoder) Event() ssestream.Event {
	return ssestream.Event{Data: []byte(d.events[d.idx-1])}
}

func (d *chunkDecoder) Close() error {
	d.closed = true
	return nil
}

func (d *chunkDecoder) Err() error {
	return nil
}

// chunkStream builds a stream that yields the given chunk payloads and then
// ends cleanly.
func chunkStream(payloads ...string) *ssestream.Stream[openai.ChatCompletionChunk] {
	return ssestream.NewStream[openai.ChatCompletionChunk](&chunkDecoder{events: payloads}, nil)
}

// textChunk is the minimal chunk payload carrying one content delta.
func textChunk(content string) string {
	raw, err := json.Marshal(map[string]any{
		"choices": []map[string]any{
			{"delta": map[string]any{"content": content}},
		},
	})
	if err != nil {
		panic(err)
	}
	return string(raw)
}

func completionWith(content string, toolCalls ...openai.ChatCompletionMessageToolCall) *openai.ChatCompletion {
	return &openai.ChatCompletion{
		Choices: []openai.ChatCompletionChoice{
			{
				Message: openai.ChatCompletionMessage{
					Content:   content,
					ToolCalls: toolCalls,
				},
			},
		},
	}
}

func weatherToolCall() openai.ChatCompletionMessageToolCall {
	return openai.ChatCompletionMessageToolCall{
		ID:   "call_1",
		Type: openai.ChatCompletionMessageToolCallTypeFunction,
		Function: openai.ChatCompletionMessageToolCallFunction{
			Name:      "get_weather",
			Arguments: `{"city":"Paris"}`,
		},
	}
}

type reportLine struct {
	segment string
	tag     string
	content string
	status  Status
}

// recordReporter captures notifications in arrival order.
type recordReporter struct {
	mu    sync.Mutex
	lines []reportLine
}

func (r *recordReporter) Report(segment, tag, content string, status Status) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, reportLine{segment: segment, tag: tag, content: content, status: status})
}

func (r *recordReporter) all() []reportLine {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]reportLine(nil), r.lines...)
}
