package llmwire

import (
	"strings"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/packages/ssestream"
)

// accumulateStream drains a chat completion stream and concatenates the text
// deltas in arrival order. Chunks without choices are skipped. A delta
// counts when its content field is present and not null, which includes the
// empty string; every counted delta appends to the running text and, when a
// reporter is attached, produces one RUNNING notification with the text so
// far. After a clean drain the reporter gets exactly one FINISH with the
// final text, even when the stream carried nothing. A stream error is
// returned as-is with no FINISH and no partial text.
//
// Tool calls are not reconstructed from stream fragments; a streamed
// invocation always resolves to plain text.
func accumulateStream(stream *ssestream.Stream[openai.ChatCompletionChunk], rep Reporter, segment, tag string) (string, error) {
	defer stream.Close()

	var text strings.Builder
	for stream.Next() {
		chunk := stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta
		if delta.JSON.Content.IsMissing() || delta.JSON.Content.IsNull() {
			continue
		}
		text.WriteString(delta.Content)
		if rep != nil {
			rep.Report(segment, tag, text.String(), StatusRunning)
		}
	}
	if err := stream.Err(); err != nil {
		return "", err
	}
	if rep != nil {
		rep.Report(segment, tag, text.String(), StatusFinish)
	}
	return text.String(), nil
}
