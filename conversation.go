package llmwire

import "github.com/openai/openai-go"

// Conversation accumulates messages for the pre-built path of Request,
// preserving insertion order. The zero value is ready to use.
type Conversation struct {
	messages []openai.ChatCompletionMessageParamUnion
}

func NewConversation() *Conversation {
	return &Conversation{}
}

// Add appends messages in FIFO order and returns the conversation for
// chaining.
func (c *Conversation) Add(msgs ...openai.ChatCompletionMessageParamUnion) *Conversation {
	c.messages = append(c.messages, msgs...)
	return c
}

func (c *Conversation) AddSystem(content string) *Conversation {
	return c.Add(openai.SystemMessage(content))
}

func (c *Conversation) AddUser(content string) *Conversation {
	return c.Add(openai.UserMessage(content))
}

func (c *Conversation) AddAssistant(content string) *Conversation {
	return c.Add(openai.AssistantMessage(content))
}

func (c *Conversation) Len() int {
	return len(c.messages)
}

// Messages exposes the accumulated messages for Request.Messages. It returns
// nil while the conversation is empty, so an unused Conversation does not
// override the prompt path.
func (c *Conversation) Messages() []openai.ChatCompletionMessageParamUnion {
	return c.messages
}

// Clone copies the conversation so one history can fork per invocation.
func (c *Conversation) Clone() *Conversation {
	return &Conversation{
		messages: append([]openai.ChatCompletionMessageParamUnion{}, c.messages...),
	}
}
