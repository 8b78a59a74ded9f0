package google

import (
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/nutriagent"
	"google.golang.org/genai"
)

// ConvertTools converts tools to Google genai Tools.
func ConvertTools(tools []nutriagent.Tool) []*genai.Tool {
	if len(tools) == 0 {
		return nil
	}

	funcs := make([]*genai.FunctionDeclaration, len(tools))
	for i, t := range tools {
		funcs[i] = &genai.FunctionDeclaration{
			Name:        t.Name,
			Description: t.Description,
			Parameters:  ConvertJSONSchemaToGenaiSchema(t.Parameters),
		}
	}

	return []*genai.Tool{{FunctionDeclarations: funcs}}
}

// ConvertToolChoice converts a ToolChoice to a Google genai ToolConfig.
func ConvertToolChoice(choice nutriagent.ToolChoice) *genai.ToolConfig {
	mode := genai.FunctionCallingConfigModeAuto
	switch choice {
	case nutriagent.ToolChoiceNone:
		mode = genai.FunctionCallingConfigModeNone
	case nutriagent.ToolChoiceRequired:
		mode = genai.FunctionCallingConfigModeAny
	}
	return &genai.ToolConfig{
		FunctionCallingConfig: &genai.FunctionCallingConfig{Mode: mode},
	}
}

// ExtractToolCalls extracts tool calls from Google genai Parts.
// Gemini does not always assign call ids, so ids are derived from the
// part position and function name.
func ExtractToolCalls(parts []*genai.Part) []nutriagent.ToolCall {
	var calls []nutriagent.ToolCall
	for i, part := range parts {
		if part.FunctionCall == nil {
			continue
		}
		args, _ := json.Marshal(part.FunctionCall.Args)
		if part.FunctionCall.Args == nil {
			args = []byte("{}")
		}
		calls = append(calls, nutriagent.ToolCall{
			ID:        fmt.Sprintf("call_%d_%s", i, part.FunctionCall.Name),
			Name:      part.FunctionCall.Name,
			Arguments: string(args),
		})
	}
	return calls
}
