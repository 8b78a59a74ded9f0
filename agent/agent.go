package agent

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/tool"
)

// DataProvider fetches the data an agent answers from. It is handed to
// each Generate call rather than configured on the agent.
type DataProvider func(ctx context.Context) (any, error)

// Generator produces a result for a conversation using a data capability.
// Implementations return the capability's value verbatim in Result.Text.
type Generator interface {
	Generate(ctx context.Context, messages []nutriagent.Message, fetch DataProvider) (*Result, error)
}

// GeneratorFunc adapts a function to Generator.
type GeneratorFunc func(ctx context.Context, messages []nutriagent.Message, fetch DataProvider) (*Result, error)

// Generate calls f.
func (f GeneratorFunc) Generate(ctx context.Context, messages []nutriagent.Message, fetch DataProvider) (*Result, error) {
	return f(ctx, messages, fetch)
}

// TerminationReason indicates why the agent stopped execution.
type TerminationReason string

const (
	// TerminationComplete indicates normal completion (no more tool calls).
	TerminationComplete TerminationReason = "complete"

	// TerminationMaxSteps indicates the step limit was reached.
	TerminationMaxSteps TerminationReason = "max_steps"
)

// Result contains the outcome of a Generate call.
type Result struct {
	// Text is the value returned by the data capability.
	Text any

	// Response is the final response from the model, nil without a model.
	Response *nutriagent.Response

	// Steps is the number of model calls made.
	Steps int

	// Termination indicates why execution stopped.
	Termination TerminationReason

	// TotalUsage aggregates token usage across all steps.
	TotalUsage nutriagent.Usage
}

// Agent is an LLM-backed Generator. The data capability is exposed to the
// model as a tool taking no arguments.
type Agent struct {
	provider nutriagent.ChatProvider
	options  *Options
}

// New creates an Agent that talks to provider.
func New(provider nutriagent.ChatProvider, opts ...Option) *Agent {
	return &Agent{
		provider: provider,
		options:  ApplyOptions(opts...),
	}
}

// Generate runs the tool-calling loop. The first call to the tool invokes
// fetch; later calls reuse its value. A fetch error ends the run and is
// returned unchanged. If the model never calls the tool, fetch is invoked
// once after the loop.
func (a *Agent) Generate(ctx context.Context, messages []nutriagent.Message, fetch DataProvider) (*Result, error) {
	if fetch == nil {
		return nil, ErrNoDataProvider
	}

	capture := &capturedData{fetch: fetch}
	registry := tool.NewRegistry()
	registry.MustRegister(nutriagent.Tool{
		Name:        a.options.ToolName,
		Description: a.options.ToolDescription,
		Parameters:  tool.MustSchemaFor[struct{}](),
	}, capture.handle)

	history := make([]nutriagent.Message, 0, len(messages)+1)
	if a.options.SystemPrompt != "" {
		history = append(history, nutriagent.Message{Role: nutriagent.RoleSystem, Content: a.options.SystemPrompt})
	}
	history = append(history, messages...)

	chatOpts := append([]nutriagent.Option{nutriagent.WithTools(registry.Tools())}, a.options.ChatOptions...)

	result := &Result{Termination: TerminationMaxSteps}

	for step := 1; a.options.MaxSteps <= 0 || step <= a.options.MaxSteps; step++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		response, err := a.provider.Chat(ctx, history, chatOpts...)
		if err != nil {
			return nil, fmt.Errorf("agent: step %d: %w", step, err)
		}

		result.Steps = step
		result.Response = response
		result.TotalUsage = result.TotalUsage.Add(response.Usage)

		if len(response.ToolCalls) == 0 {
			result.Termination = TerminationComplete
			break
		}

		history = append(history, nutriagent.Message{
			Role:      nutriagent.RoleAssistant,
			Content:   response.Content,
			ToolCalls: response.ToolCalls,
		})

		results := make([]nutriagent.ToolResult, 0, len(response.ToolCalls))
		for _, tc := range response.ToolCalls {
			tr, err := registry.Execute(ctx, tc)
			if err != nil {
				// Unknown tool; let the model recover.
				tr = nutriagent.ToolResult{ToolCallID: tc.ID, Name: tc.Name, Content: err.Error(), IsError: true}
			}
			if capture.err != nil {
				return nil, capture.err
			}
			results = append(results, tr)
		}
		history = append(history, nutriagent.NewToolResultMessage(results...))
	}

	value, err := capture.get(ctx)
	if err != nil {
		return nil, err
	}
	result.Text = value
	return result, nil
}

// capturedData calls fetch at most once and remembers the outcome.
// A single Generate call uses it sequentially.
type capturedData struct {
	fetch  DataProvider
	called bool
	value  any
	err    error
}

func (c *capturedData) get(ctx context.Context) (any, error) {
	if !c.called {
		c.value, c.err = c.fetch(ctx)
		c.called = true
	}
	return c.value, c.err
}

func (c *capturedData) handle(ctx context.Context, _ nutriagent.ToolCall) (string, error) {
	value, err := c.get(ctx)
	if err != nil {
		return "", err
	}
	return render(value)
}

// render formats a captured value for the model.
func render(value any) (string, error) {
	switch v := value.(type) {
	case string:
		return v, nil
	case interface{ Text() string }:
		return v.Text(), nil
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}
}
