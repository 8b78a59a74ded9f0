// Package anthropic provides an Anthropic Claude API client implementing
// [nutriagent.ChatProvider].
//
// This package wraps the official Anthropic Go SDK. Only non-streaming chat
// with tool calling is supported.
//
// # Basic Usage
//
//	client := anthropic.New(os.Getenv("ANTHROPIC_API_KEY"))
//
//	resp, err := client.Chat(ctx, messages,
//	    nutriagent.WithTools(registry.Tools()),
//	)
//
// System messages are sent as the request's system prompt. Tool results are
// sent as user messages with tool_result blocks.
//
// # Errors
//
// Failed calls return *[nutriagent.APIError] carrying the HTTP status when
// the API answered.
package anthropic
