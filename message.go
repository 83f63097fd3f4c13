package llmwire

import "github.com/openai/openai-go"

// Role instruction sent ahead of every prompt the builder assembles.
const systemPrompt = "you are a helpful assistant"

// BuildMessages assembles the conversation for one invocation. Pre-built
// messages, when non-nil, are used verbatim and prompt and imageURL are
// ignored; an empty non-nil slice counts as pre-built. Otherwise the result
// is the system instruction followed by one user message, which carries a
// text part and an image part when imageURL is set. The builder never
// mutates its inputs, so the same arguments always produce the same
// conversation.
func BuildMessages(prompt, imageURL string, preBuilt []openai.ChatCompletionMessageParamUnion) []openai.ChatCompletionMessageParamUnion {
	if preBuilt != nil {
		return preBuilt
	}
	if imageURL != "" {
		return []openai.ChatCompletionMessageParamUnion{
			openai.SystemMessage(systemPrompt),
			openai.UserMessageParts(
				openai.TextPart(prompt),
				openai.ImagePart(imageURL),
			),
		}
	}
	return []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage(systemPrompt),
		openai.UserMessage(prompt),
	}
}
