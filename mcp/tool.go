// Package mcp exposes a [tool.Registry] over the Model Context Protocol.
//
// MCP clients such as desktop assistants discover the registry's tools and
// call them over stdio:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_nutrition_info", "Look up a food", lookupHandler),
//	)
//
//	if err := mcp.ServeStdio(registry, mcp.WithName("nutrition")); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/spetersoncode/nutriagent"
)

// ToMCPTool converts a Tool to an MCP Tool.
// Tool.Parameters is used as the MCP Tool's RawInputSchema.
func ToMCPTool(t nutriagent.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPCallToolResult converts a ToolResult to an MCP CallToolResult.
func ToMCPCallToolResult(result nutriagent.ToolResult) *mcp.CallToolResult {
	if result.IsError {
		return mcp.NewToolResultError(result.Content)
	}
	return mcp.NewToolResultText(result.Content)
}
