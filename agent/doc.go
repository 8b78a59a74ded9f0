// Package agent provides the generators that answer nutrition requests.
//
// A [Generator] receives the flattened conversation and a [DataProvider]
// capability. Whatever the capability returns is passed through verbatim as
// [Result.Text]; the caller decides how to interpret it.
//
// # LLM Agent
//
// [Agent] exposes the capability to a model as a single tool with no
// arguments and runs a tool-calling loop until the model stops calling
// tools or MaxSteps is reached:
//
//	a := agent.New(provider,
//	    agent.WithMaxSteps(5),
//	    agent.WithModel("claude-sonnet-4-5"),
//	)
//	result, err := a.Generate(ctx, messages, func(ctx context.Context) (any, error) {
//	    return client.Lookup(ctx, "apple")
//	})
//
// The capability runs at most once per call. If the model answers without
// calling the tool, the capability is still invoked after the loop so the
// result always carries its value. A capability error aborts the run and is
// returned unchanged; model errors are wrapped.
//
// # Passthrough
//
// [Passthrough] calls the capability directly. It is used when no model
// provider is configured.
//
// # Registry
//
// [Registry] maps agent ids to generators. [Registry.Resolve] returns
// *[NotFoundError] for unknown ids, which reports nutriagent.KindNotFound.
//
// # Configuration Options
//
//   - WithMaxSteps(n): Limit model calls (default: 10)
//   - WithTool(name, desc): Rename the data tool (default: get_nutrition_info)
//   - WithSystemPrompt(s): Prepend a system message
//   - WithChatOptions(opts...): Pass options to underlying ChatProvider
package agent
