package openai

// ChatModel represents an OpenAI chat model.
type ChatModel string

const (
	GPT5     ChatModel = "gpt-5"
	GPT5Mini ChatModel = "gpt-5-mini"
	GPT41    ChatModel = "gpt-4.1"
	GPT4o    ChatModel = "gpt-4o"

	// DefaultChatModel is the recommended default model.
	DefaultChatModel ChatModel = GPT5Mini
)

func (m ChatModel) String() string { return string(m) }
