package client

import (
	"context"
	"errors"
	"testing"

	ai "github.com/spetersoncode/nutriagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	resp    *ai.Response
	err     error
	options *ai.Options
}

func (s *stubProvider) Chat(_ context.Context, _ []ai.Message, opts ...ai.Option) (*ai.Response, error) {
	s.options = ai.ApplyOptions(opts...)
	return s.resp, s.err
}

func TestErrMissingAPIKey(t *testing.T) {
	t.Run("Error with model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: ai.ProviderAnthropic, Model: "claude-sonnet"}
		expected := `no API key configured for anthropic (required by model "claude-sonnet")`
		assert.Equal(t, expected, err.Error())
	})

	t.Run("Error without model", func(t *testing.T) {
		err := &ErrMissingAPIKey{Provider: ai.ProviderOpenAI}
		assert.Equal(t, "no API key configured for openai", err.Error())
	})
}

func TestErrUnsupportedProvider(t *testing.T) {
	assert.Equal(t, "unsupported provider: mistral", (&ErrUnsupportedProvider{Provider: "mistral"}).Error())
	assert.Equal(t, "no provider configured", (&ErrUnsupportedProvider{}).Error())
}

func TestInit(t *testing.T) {
	ctx := context.Background()

	t.Run("missing key for each provider", func(t *testing.T) {
		for _, p := range []ai.Provider{ai.ProviderAnthropic, ai.ProviderOpenAI, ai.ProviderGoogle} {
			c := New(Config{Provider: p, Model: "some-model"})
			err := c.Init(ctx)
			var missing *ErrMissingAPIKey
			require.ErrorAs(t, err, &missing, "provider %s", p)
			assert.Equal(t, p, missing.Provider)
			assert.Equal(t, "some-model", missing.Model)
		}
	})

	t.Run("unknown provider", func(t *testing.T) {
		c := New(Config{Provider: "mistral"})
		var unsupported *ErrUnsupportedProvider
		require.ErrorAs(t, c.Init(ctx), &unsupported)
	})

	t.Run("init error is sticky", func(t *testing.T) {
		c := New(Config{Provider: ai.ProviderAnthropic})
		first := c.Init(ctx)
		second := c.Init(ctx)
		require.Error(t, first)
		assert.Same(t, first, second)
	})

	t.Run("anthropic and openai build without network", func(t *testing.T) {
		c := New(Config{Provider: ai.ProviderAnthropic, APIKeys: APIKeys{Anthropic: "key"}})
		assert.NoError(t, c.Init(ctx))

		c = New(Config{Provider: ai.ProviderOpenAI, APIKeys: APIKeys{OpenAI: "key"}})
		assert.NoError(t, c.Init(ctx))
	})
}

func TestChat(t *testing.T) {
	ctx := context.Background()

	t.Run("forwards to provider with defaults first", func(t *testing.T) {
		stub := &stubProvider{resp: &ai.Response{Content: "hi", Usage: ai.Usage{InputTokens: 3, OutputTokens: 2}}}
		c := New(Config{Provider: ai.ProviderOpenAI},
			WithChatProvider(stub),
			WithDefaultMaxTokens(100),
			WithDefaultTemperature(0.2),
		)

		resp, err := c.Chat(ctx, []ai.Message{{Role: ai.RoleUser, Content: "hello"}}, ai.WithMaxTokens(50))
		require.NoError(t, err)
		assert.Equal(t, "hi", resp.Content)
		assert.Equal(t, 50, stub.options.MaxTokens)
		require.NotNil(t, stub.options.Temperature)
		assert.InDelta(t, 0.2, *stub.options.Temperature, 1e-9)
	})

	t.Run("does not mutate default options", func(t *testing.T) {
		stub := &stubProvider{resp: &ai.Response{}}
		c := New(Config{}, WithChatProvider(stub), WithDefaultChatOptions(ai.WithMaxTokens(10)))

		_, err := c.Chat(ctx, nil, ai.WithModel("a"))
		require.NoError(t, err)
		_, err = c.Chat(ctx, nil)
		require.NoError(t, err)
		assert.Empty(t, stub.options.Model)
		assert.Len(t, c.defaultChatOpts, 1)
	})

	t.Run("emits start and complete events", func(t *testing.T) {
		events := make(chan Event, 10)
		stub := &stubProvider{resp: &ai.Response{Usage: ai.Usage{InputTokens: 1, OutputTokens: 1}}}
		c := New(Config{Provider: ai.ProviderGoogle, Model: "gemini", Events: events}, WithChatProvider(stub))

		_, err := c.Chat(ctx, nil)
		require.NoError(t, err)
		close(events)

		var got []Event
		for e := range events {
			got = append(got, e)
		}
		require.Len(t, got, 2)
		assert.Equal(t, EventRequestStart, got[0].Type)
		assert.Equal(t, EventRequestComplete, got[1].Type)
		assert.Equal(t, ai.ProviderGoogle, got[1].Provider)
		assert.Equal(t, "gemini", got[1].Model)
		require.NotNil(t, got[1].Usage)
		assert.Equal(t, 1, got[1].Usage.InputTokens)
		assert.False(t, got[1].Timestamp.IsZero())
	})

	t.Run("emits error event and returns error unchanged", func(t *testing.T) {
		events := make(chan Event, 10)
		boom := errors.New("boom")
		c := New(Config{Events: events}, WithChatProvider(&stubProvider{err: boom}))

		_, err := c.Chat(ctx, nil)
		assert.Same(t, boom, err)
		close(events)

		var last Event
		for e := range events {
			last = e
		}
		assert.Equal(t, EventRequestError, last.Type)
		assert.Same(t, boom, last.Error)
	})

	t.Run("configuration error surfaces from chat", func(t *testing.T) {
		c := New(Config{Provider: ai.ProviderAnthropic})
		_, err := c.Chat(ctx, nil)
		var missing *ErrMissingAPIKey
		assert.ErrorAs(t, err, &missing)
	})
}

func TestEmitDoesNotBlock(t *testing.T) {
	ch := make(chan Event)
	emit(ch, Event{Type: EventRequestStart})
	emit(nil, Event{Type: EventRequestStart})
}
