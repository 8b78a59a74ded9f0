package google

import (
	"encoding/json"
	"strings"

	"github.com/spetersoncode/nutriagent"
	"google.golang.org/genai"
)

// convertMessages converts a conversation to Gemini contents. System
// messages are merged into a single system instruction, nil when absent.
func convertMessages(messages []nutriagent.Message) ([]*genai.Content, *genai.Content) {
	var contents []*genai.Content
	var systemTexts []string

	for _, msg := range messages {
		role := string(genai.RoleUser)
		switch msg.Role {
		case nutriagent.RoleSystem:
			if msg.Content != "" {
				systemTexts = append(systemTexts, msg.Content)
			}
			continue
		case nutriagent.RoleAssistant:
			role = string(genai.RoleModel)
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			args := map[string]any{}
			if tc.Arguments != "" {
				_ = json.Unmarshal([]byte(tc.Arguments), &args)
			}
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			// Structured results pass through; anything else is wrapped.
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				key := "output"
				if tr.IsError {
					key = "error"
				}
				result = map[string]any{key: tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     tr.Name,
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	if len(systemTexts) == 0 {
		return contents, nil
	}
	return contents, &genai.Content{
		Parts: []*genai.Part{{Text: strings.Join(systemTexts, "\n\n")}},
	}
}
