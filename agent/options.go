package agent

import (
	"github.com/spetersoncode/nutriagent"
)

// Defaults for the data tool exposed to the model.
const (
	DefaultToolName        = "get_nutrition_info"
	DefaultToolDescription = "Fetch nutrition information for the food the user asked about."
)

// Options contains configuration for agent execution.
type Options struct {
	// MaxSteps limits the number of model calls.
	// Set to 0 for unlimited (not recommended). Default is 10.
	MaxSteps int

	// ToolName and ToolDescription describe the data tool to the model.
	ToolName        string
	ToolDescription string

	// SystemPrompt, when set, is sent ahead of the conversation.
	SystemPrompt string

	// ChatOptions are passed through to the underlying ChatProvider.
	ChatOptions []nutriagent.Option
}

// Option is a functional option for configuring an Agent.
type Option func(*Options)

// WithMaxSteps sets the maximum number of model calls.
func WithMaxSteps(n int) Option {
	return func(o *Options) {
		o.MaxSteps = n
	}
}

// WithTool overrides the name and description of the data tool.
func WithTool(name, description string) Option {
	return func(o *Options) {
		o.ToolName = name
		o.ToolDescription = description
	}
}

// WithSystemPrompt sets a system prompt sent ahead of the conversation.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// WithChatOptions passes options through to the ChatProvider.
// These options are applied to every chat call made by the agent.
func WithChatOptions(opts ...nutriagent.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// WithModel is a convenience option to set the model for chat calls.
func WithModel(model string) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, nutriagent.WithModel(model))
	}
}

// WithMaxTokens is a convenience option to set max tokens for chat calls.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, nutriagent.WithMaxTokens(n))
	}
}

// WithTemperature is a convenience option to set temperature for chat calls.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, nutriagent.WithTemperature(t))
	}
}

// ApplyOptions applies functional options to an Options struct with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxSteps:        10,
		ToolName:        DefaultToolName,
		ToolDescription: DefaultToolDescription,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
