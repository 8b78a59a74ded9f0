package openai

import (
	"encoding/json"
	"testing"

	"github.com/openai/openai-go"
	"github.com/spetersoncode/nutriagent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvertMessages(t *testing.T) {
	messages := []nutriagent.Message{
		{Role: nutriagent.RoleSystem, Content: "You are a nutritionist."},
		{Role: nutriagent.RoleUser, Content: "apple"},
		{Role: nutriagent.RoleAssistant, ToolCalls: []nutriagent.ToolCall{{ID: "call_1", Name: "get_nutrition_info"}}},
		nutriagent.NewToolResultMessage(
			nutriagent.ToolResult{ToolCallID: "call_1", Content: "Calories: 52 kcal"},
			nutriagent.ToolResult{ToolCallID: "call_2", Content: "again"},
		),
		{Role: nutriagent.RoleAssistant, Content: ""},
	}

	result := convertMessages(messages)

	require.Len(t, result, 5)
	assert.NotNil(t, result[0].OfSystem)
	assert.NotNil(t, result[1].OfUser)
	require.NotNil(t, result[2].OfAssistant)
	require.Len(t, result[2].OfAssistant.ToolCalls, 1)
	assert.Equal(t, "call_1", result[2].OfAssistant.ToolCalls[0].ID)
	assert.Equal(t, "{}", result[2].OfAssistant.ToolCalls[0].Function.Arguments)
	require.NotNil(t, result[3].OfTool)
	assert.Equal(t, "call_1", result[3].OfTool.ToolCallID)
	require.NotNil(t, result[4].OfTool)
	assert.Equal(t, "call_2", result[4].OfTool.ToolCallID)
}

func TestConvertTools(t *testing.T) {
	tools := []nutriagent.Tool{
		{
			Name:        "lookup",
			Description: "Look up a food",
			Parameters:  json.RawMessage(`{"type":"object","properties":{"query":{"type":"string"}}}`),
		},
		{Name: "noop"},
	}

	result := convertTools(tools)

	require.Len(t, result, 2)
	assert.Equal(t, "lookup", result[0].Function.Name)
	assert.Equal(t, "object", result[0].Function.Parameters["type"])
	assert.Equal(t, map[string]any{}, result[1].Function.Parameters["properties"])
}

func TestExtractToolCalls(t *testing.T) {
	msg := openai.ChatCompletionMessage{
		ToolCalls: []openai.ChatCompletionMessageToolCall{{
			ID: "call_1",
			Function: openai.ChatCompletionMessageToolCallFunction{
				Name:      "get_nutrition_info",
				Arguments: "{}",
			},
		}},
	}

	calls := extractToolCalls(msg)

	require.Len(t, calls, 1)
	assert.Equal(t, nutriagent.ToolCall{ID: "call_1", Name: "get_nutrition_info", Arguments: "{}"}, calls[0])
	assert.Nil(t, extractToolCalls(openai.ChatCompletionMessage{}))
}
