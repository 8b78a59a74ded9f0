// Package tool provides the tool registry used by the agent and the MCP server.
//
// This package includes:
//   - Registry and Handler types for tool management
//   - Typed registration with automatic schema generation from struct tags
//
// # Basic Usage
//
// Define tool arguments as a struct with tags, then register a typed handler:
//
//	type LookupArgs struct {
//	    Query string `json:"query" jsonschema:"description=Food to look up"`
//	}
//
//	registry := tool.NewRegistry()
//	tool.MustRegisterFunc(registry, "get_nutrition_info", "Look up a food",
//	    func(ctx context.Context, args LookupArgs) (string, error) {
//	        return lookup(ctx, args.Query)
//	    })
//
// # Execution
//
// [Registry.Execute] runs a tool call. Handler errors are reported in the
// returned ToolResult with IsError set, so a model can see the failure;
// only an unknown tool name is returned as an error.
//
// # Thread Safety
//
// Registry is safe for concurrent use.
package tool
