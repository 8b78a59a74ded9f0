package a2a

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/spetersoncode/nutriagent"
)

// ToAgentInput flattens A2A messages into chat messages for an agent.
// Each message's parts are rendered as text and joined with newlines.
func ToAgentInput(msgs []Message) []nutriagent.Message {
	result := make([]nutriagent.Message, 0, len(msgs))
	for _, msg := range msgs {
		result = append(result, ToAgentMessage(msg))
	}
	return result
}

// ToAgentMessage flattens a single A2A message.
func ToAgentMessage(msg Message) nutriagent.Message {
	texts := make([]string, 0, len(msg.Parts))
	for _, part := range msg.Parts {
		texts = append(texts, partText(part))
	}
	return nutriagent.Message{
		Role:    toAgentRole(msg.Role),
		Content: strings.Join(texts, "\n"),
	}
}

// partText returns the textual form of a part. Data parts render as
// compact JSON; parts of unknown kind render as the empty string.
func partText(part Part) string {
	switch p := part.(type) {
	case TextPart:
		return p.Text
	case DataPart:
		return compactJSON(p.Data)
	case UnknownPart:
		return ""
	default:
		return ""
	}
}

func compactJSON(v any) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(v); err != nil {
		return ""
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// ToHistoryMessages re-wraps inbound messages for a task's history.
// Roles and parts are kept verbatim. Missing message ids are generated;
// a missing task id falls back to fallbackTaskID, or is generated when
// that is empty too.
func ToHistoryMessages(msgs []Message, fallbackTaskID string, ids IDGenerator) []Message {
	result := make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		h := msg
		h.Kind = "message"
		if h.Parts == nil {
			h.Parts = []Part{}
		}
		if h.MessageID == "" {
			h.MessageID = ids.NewID()
		}
		if h.TaskID == "" {
			h.TaskID = fallbackTaskID
		}
		if h.TaskID == "" {
			h.TaskID = ids.NewID()
		}
		result = append(result, h)
	}
	return result
}

// FirstText returns the first text part of the first message, or fallback
// when there is none or it is blank.
func FirstText(msgs []Message, fallback string) string {
	if len(msgs) == 0 {
		return fallback
	}
	for _, part := range msgs[0].Parts {
		if tp, ok := part.(TextPart); ok {
			if strings.TrimSpace(tp.Text) == "" {
				return fallback
			}
			return tp.Text
		}
	}
	return fallback
}

// toAgentRole converts an A2A role to a chat role.
func toAgentRole(role MessageRole) nutriagent.Role {
	if role == MessageRoleAgent {
		return nutriagent.RoleAssistant
	}
	return nutriagent.RoleUser
}
