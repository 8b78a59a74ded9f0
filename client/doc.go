// Package client provides a single chat client over the supported AI providers.
//
// The Client wraps a provider-specific implementation and provides:
//
//   - Provider selection from configuration
//   - Lazy backend initialization
//   - Default chat options
//   - Event emission via channel
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    Provider: nutriagent.ProviderAnthropic,
//	    APIKeys:  client.APIKeys{Anthropic: os.Getenv("ANTHROPIC_API_KEY")},
//	})
//
//	resp, err := c.Chat(ctx, []nutriagent.Message{
//	    {Role: nutriagent.RoleUser, Content: "Hello!"},
//	})
//
// # Events
//
// Observe requests via an event channel:
//
//	events := make(chan client.Event, 100)
//	c := client.New(client.Config{
//	    Provider: nutriagent.ProviderOpenAI,
//	    APIKeys:  client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	    Events:   events,
//	})
//
//	go func() {
//	    for e := range events {
//	        fmt.Printf("[%s] %s took %v\n", e.Type, e.Operation, e.Duration)
//	    }
//	}()
package client
