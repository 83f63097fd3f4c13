package llmwire

import "github.com/openai/openai-go"

// normalizeCompletion shapes a buffered completion into a Result. The
// provider message comes back verbatim when tools were requested and the
// model answered with at least one tool call; otherwise the text content is
// the whole result, even when empty. A completion with no choices
// normalizes to an empty text result rather than an error.
func normalizeCompletion(completion *openai.ChatCompletion, toolsRequested bool) Result {
	if completion == nil || len(completion.Choices) == 0 {
		return Result{}
	}
	message := completion.Choices[0].Message
	res := Result{Text: message.Content}
	if toolsRequested && len(message.ToolCalls) > 0 {
		res.ToolMessage = &message
	}
	return res
}
