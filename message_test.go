package llmwire

import (
	"testing"

	"github.com/openai/openai-go"
)

func userTextParts(t *testing.T, msg openai.ChatCompletionMessageParamUnion) (string, []openai.ChatCompletionContentPartUnionParam) {
	t.Helper()
	user, ok := msg.(openai.ChatCompletionUserMessageParam)
	if !ok {
		t.Fatalf("Expected a user message, got %T", msg)
	}
	text := ""
	for _, part := range user.Content.Value {
		if textPart, ok := part.(openai.ChatCompletionContentPartTextParam); ok {
			text += textPart.Text.Value
		}
	}
	return text, user.Content.Value
}

func TestBuildMessagesTextOnly(t *testing.T) {
	msgs := BuildMessages("What is the capital of France?", "", nil)
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}

	system, ok := msgs[0].(openai.ChatCompletionSystemMessageParam)
	if !ok {
		t.Fatalf("Expected first message to be a system message, got %T", msgs[0])
	}
	if len(system.Content.Value) == 0 || system.Content.Value[0].Text.Value != systemPrompt {
		t.Fatalf("Unexpected system content: %+v", system.Content.Value)
	}

	text, parts := userTextParts(t, msgs[1])
	if text != "What is the capital of France?" {
		t.Fatalf("Expected user text to match the prompt, got %q", text)
	}
	if len(parts) != 1 {
		t.Fatalf("Expected a single text part, got %d parts", len(parts))
	}
}

func TestBuildMessagesWithImage(t *testing.T) {
	msgs := BuildMessages("describe this", "https://example.com/cat.png", nil)
	if len(msgs) != 2 {
		t.Fatalf("Expected 2 messages, got %d", len(msgs))
	}

	text, parts := userTextParts(t, msgs[1])
	if text != "describe this" {
		t.Fatalf("Expected user text %q, got %q", "describe this", text)
	}
	if len(parts) != 2 {
		t.Fatalf("Expected text and image parts, got %d parts", len(parts))
	}
	image, ok := parts[1].(openai.ChatCompletionContentPartImageParam)
	if !ok {
		t.Fatalf("Expected second part to be an image, got %T", parts[1])
	}
	if got := image.ImageURL.Value.URL.Value; got != "https://example.com/cat.png" {
		t.Fatalf("Expected image URL to be preserved, got %q", got)
	}
}

func TestBuildMessagesPreBuiltWinsVerbatim(t *testing.T) {
	preBuilt := []openai.ChatCompletionMessageParamUnion{
		openai.SystemMessage("custom system"),
		openai.UserMessage("first"),
		openai.AssistantMessage("second"),
	}
	msgs := BuildMessages("ignored prompt", "https://example.com/ignored.png", preBuilt)
	if len(msgs) != len(preBuilt) {
		t.Fatalf("Expected %d messages, got %d", len(preBuilt), len(msgs))
	}
	if &msgs[0] != &preBuilt[0] {
		t.Fatalf("Expected pre-built messages to be passed through without copying")
	}
}

func TestBuildMessagesEmptyPreBuiltCountsAsPreBuilt(t *testing.T) {
	msgs := BuildMessages("ignored", "", []openai.ChatCompletionMessageParamUnion{})
	if len(msgs) != 0 {
		t.Fatalf("Expected an empty conversation, got %d messages", len(msgs))
	}
}

func TestBuildMessagesDeterministic(t *testing.T) {
	first := BuildMessages("same prompt", "https://example.com/a.png", nil)
	second := BuildMessages("same prompt", "https://example.com/a.png", nil)
	if len(first) != len(second) {
		t.Fatalf("Expected identical message counts, got %d and %d", len(first), len(second))
	}
	firstText, _ := userTextParts(t, first[1])
	secondText, _ := userTextParts(t, second[1])
	if firstText != secondText {
		t.Fatalf("Expected identical user text, got %q and %q", firstText, secondText)
	}
}
