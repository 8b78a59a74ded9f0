// Command mcp serves the nutrition lookup tool over MCP stdio.
//
// Usage:
//
//	FDC_API_KEY=... go run ./cmd/mcp
//
// Configuration for an MCP client:
//
//	{
//	    "mcpServers": {
//	        "nutrition": {
//	            "command": "go",
//	            "args": ["run", "./cmd/mcp"],
//	            "cwd": "/path/to/nutriagent",
//	            "env": {"FDC_API_KEY": "..."}
//	        }
//	    }
//	}
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spetersoncode/nutriagent/agent"
	"github.com/spetersoncode/nutriagent/mcp"
	"github.com/spetersoncode/nutriagent/nutrition"
	"github.com/spetersoncode/nutriagent/tool"
)

// LookupArgs are the arguments for the nutrition lookup tool.
type LookupArgs struct {
	Query string `json:"query" jsonschema:"description=Food to look up, e.g. apple"`
}

func main() {
	godotenv.Load() // Load .env file if present

	apiKey := os.Getenv("FDC_API_KEY")
	if apiKey == "" {
		log.Fatal("FDC_API_KEY is required")
	}

	var opts []nutrition.ClientOption
	if baseURL := os.Getenv("FDC_BASE_URL"); baseURL != "" {
		opts = append(opts, nutrition.WithBaseURL(baseURL))
	}
	foods := nutrition.NewClient(apiKey, opts...)

	registry := tool.NewRegistry().Add(
		tool.Func(agent.DefaultToolName, "Look up nutrition facts for a food", lookupHandler(foods)),
	)

	// Logs go to stderr; stdout carries the protocol
	log.SetOutput(os.Stderr)
	if err := mcp.ServeStdio(registry,
		mcp.WithName("nutriagent"),
		mcp.WithVersion("1.0.0"),
	); err != nil {
		log.Fatal(err)
	}
}

func lookupHandler(foods *nutrition.Client) tool.TypedHandler[LookupArgs] {
	return func(ctx context.Context, args LookupArgs) (string, error) {
		query := strings.TrimSpace(args.Query)
		if query == "" {
			return "", fmt.Errorf("query is required")
		}
		summary, err := foods.Lookup(ctx, query)
		if err != nil {
			return "", err
		}
		return summary.Text(), nil
	}
}
