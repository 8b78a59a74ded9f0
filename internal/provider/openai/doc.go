// Package openai provides an OpenAI chat completions client implementing
// [nutriagent.ChatProvider].
//
// Each tool result becomes its own tool message, as the API requires.
// Failed calls return *[nutriagent.APIError].
package openai
