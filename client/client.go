package client

import (
	"context"
	"fmt"
	"sync"
	"time"

	ai "github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/internal/provider/anthropic"
	"github.com/spetersoncode/nutriagent/internal/provider/google"
	"github.com/spetersoncode/nutriagent/internal/provider/openai"
)

// APIKeys holds API keys for different providers.
// Only the key for the configured provider is required.
type APIKeys struct {
	Anthropic string
	OpenAI    string
	Google    string
}

// Config holds configuration for creating a client.
type Config struct {
	// Provider selects the backend used for chat requests.
	Provider ai.Provider

	// APIKeys contains authentication keys for each provider.
	APIKeys APIKeys

	// Model overrides the provider's default chat model.
	Model string

	// Events is an optional channel for receiving client operation events.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// ErrMissingAPIKey is returned when the configured provider has no API key.
type ErrMissingAPIKey struct {
	Provider ai.Provider
	Model    string
}

func (e *ErrMissingAPIKey) Error() string {
	if e.Model != "" {
		return fmt.Sprintf("no API key configured for %s (required by model %q)", e.Provider, e.Model)
	}
	return fmt.Sprintf("no API key configured for %s", e.Provider)
}

// ErrUnsupportedProvider is returned when Config.Provider names no known backend.
type ErrUnsupportedProvider struct {
	Provider ai.Provider
}

func (e *ErrUnsupportedProvider) Error() string {
	if e.Provider == "" {
		return "no provider configured"
	}
	return fmt.Sprintf("unsupported provider: %s", e.Provider)
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultTemperature sets the default temperature for chat requests.
// Per-request options override this default.
func WithDefaultTemperature(t float64) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithTemperature(t))
	}
}

// WithDefaultMaxTokens sets the default max tokens for chat requests.
// Per-request options override this default.
func WithDefaultMaxTokens(n int) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, ai.WithMaxTokens(n))
	}
}

// WithDefaultChatOptions sets default options for all chat requests.
// Per-request options override these defaults.
func WithDefaultChatOptions(opts ...ai.Option) ClientOption {
	return func(c *Client) {
		c.defaultChatOpts = append(c.defaultChatOpts, opts...)
	}
}

// WithChatProvider uses p instead of building a backend from Config.
func WithChatProvider(p ai.ChatProvider) ClientOption {
	return func(c *Client) {
		c.chat = p
	}
}

// Client routes chat requests to the configured provider.
// The provider backend is lazily initialized on the first request.
type Client struct {
	provider        ai.Provider
	apiKeys         APIKeys
	model           string
	events          chan<- Event
	defaultChatOpts []ai.Option

	mu      sync.Mutex
	chat    ai.ChatProvider
	initErr error
}

var _ ai.ChatProvider = (*Client)(nil)

// New creates a client with the given configuration.
func New(cfg Config, opts ...ClientOption) *Client {
	c := &Client{
		provider: cfg.Provider,
		apiKeys:  cfg.APIKeys,
		model:    cfg.Model,
		events:   cfg.Events,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Provider returns the configured provider.
func (c *Client) Provider() ai.Provider {
	return c.provider
}

// Init builds the provider backend, reporting configuration errors early.
func (c *Client) Init(ctx context.Context) error {
	_, err := c.getChatProvider(ctx)
	return err
}

func (c *Client) getChatProvider(ctx context.Context) (ai.ChatProvider, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.chat != nil {
		return c.chat, nil
	}
	if c.initErr != nil {
		return nil, c.initErr
	}

	c.chat, c.initErr = c.newChatProvider(ctx)
	return c.chat, c.initErr
}

func (c *Client) newChatProvider(ctx context.Context) (ai.ChatProvider, error) {
	switch c.provider {
	case ai.ProviderAnthropic:
		if c.apiKeys.Anthropic == "" {
			return nil, &ErrMissingAPIKey{Provider: c.provider, Model: c.model}
		}
		var opts []anthropic.ClientOption
		if c.model != "" {
			opts = append(opts, anthropic.WithModel(anthropic.ChatModel(c.model)))
		}
		return anthropic.New(c.apiKeys.Anthropic, opts...), nil
	case ai.ProviderOpenAI:
		if c.apiKeys.OpenAI == "" {
			return nil, &ErrMissingAPIKey{Provider: c.provider, Model: c.model}
		}
		var opts []openai.ClientOption
		if c.model != "" {
			opts = append(opts, openai.WithModel(openai.ChatModel(c.model)))
		}
		return openai.New(c.apiKeys.OpenAI, opts...), nil
	case ai.ProviderGoogle:
		if c.apiKeys.Google == "" {
			return nil, &ErrMissingAPIKey{Provider: c.provider, Model: c.model}
		}
		var opts []google.ClientOption
		if c.model != "" {
			opts = append(opts, google.WithModel(google.ChatModel(c.model)))
		}
		client, err := google.New(ctx, c.apiKeys.Google, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize Google client: %w", err)
		}
		return client, nil
	default:
		return nil, &ErrUnsupportedProvider{Provider: c.provider}
	}
}

// Chat sends a conversation to the configured provider and returns its response.
func (c *Client) Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	// Prepend default options so per-request options override them
	opts = append(append([]ai.Option(nil), c.defaultChatOpts...), opts...)
	options := ai.ApplyOptions(opts...)

	model := options.Model
	if model == "" {
		model = c.model
	}

	chat, err := c.getChatProvider(ctx)
	if err != nil {
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestStart,
		Operation: "chat",
		Provider:  c.provider,
		Model:     model,
	})

	start := time.Now()
	resp, err := chat.Chat(ctx, messages, opts...)
	if err != nil {
		emit(c.events, Event{
			Type:      EventRequestError,
			Operation: "chat",
			Provider:  c.provider,
			Model:     model,
			Duration:  time.Since(start),
			Error:     err,
		})
		return nil, err
	}

	emit(c.events, Event{
		Type:      EventRequestComplete,
		Operation: "chat",
		Provider:  c.provider,
		Model:     model,
		Duration:  time.Since(start),
		Usage:     &resp.Usage,
	})
	return resp, nil
}
