package a2a

import (
	"encoding/json"
	"fmt"
)

// MessageRole indicates the originator of a message.
type MessageRole string

const (
	// MessageRoleUser is the role for messages from the user/client.
	MessageRoleUser MessageRole = "user"
	// MessageRoleAgent is the role for messages from the agent/server.
	MessageRoleAgent MessageRole = "agent"
)

// TaskState represents the lifecycle state of a task.
type TaskState string

const (
	TaskStateSubmitted TaskState = "submitted"
	TaskStateWorking   TaskState = "working"
	TaskStateCompleted TaskState = "completed"
	TaskStateFailed    TaskState = "failed"
)

// IsTerminal returns true if the state is a terminal state.
func (s TaskState) IsTerminal() bool {
	return s == TaskStateCompleted || s == TaskStateFailed
}

// Part kinds.
const (
	KindText = "text"
	KindData = "data"
)

// Message represents a single exchange between a user and an agent.
// Roles are kept as sent; only "agent" is treated specially.
type Message struct {
	Kind      string         `json:"kind"`
	MessageID string         `json:"messageId,omitempty"`
	Role      MessageRole    `json:"role"`
	Parts     []Part         `json:"parts"`
	ContextID string         `json:"contextId,omitempty"`
	TaskID    string         `json:"taskId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewMessage creates a message with the given role and parts.
// The caller is responsible for assigning a message id.
func NewMessage(role MessageRole, parts ...Part) Message {
	if parts == nil {
		parts = []Part{}
	}
	return Message{
		Kind:  "message",
		Role:  role,
		Parts: parts,
	}
}

// UnmarshalJSON implements custom JSON unmarshaling for Message.
// Parts is a []Part interface which can't be directly unmarshaled.
func (m *Message) UnmarshalJSON(data []byte) error {
	type messageAlias Message
	var tmp struct {
		messageAlias
		Parts []json.RawMessage `json:"parts"`
	}

	if err := json.Unmarshal(data, &tmp); err != nil {
		return err
	}

	*m = Message(tmp.messageAlias)
	m.Parts = make([]Part, 0, len(tmp.Parts))

	for i, raw := range tmp.Parts {
		part, err := UnmarshalPart(raw)
		if err != nil {
			return fmt.Errorf("part %d: %w", i, err)
		}
		m.Parts = append(m.Parts, part)
	}

	return nil
}

// Part is a segment of a message. The set of implementations is closed:
// [TextPart], [DataPart] and [UnknownPart].
type Part interface {
	partMarker()
	GetKind() string
}

// TextPart represents a text segment within a message.
type TextPart struct {
	Kind     string         `json:"kind"`
	Text     string         `json:"text"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (TextPart) partMarker()     {}
func (TextPart) GetKind() string { return KindText }

// NewTextPart creates a new TextPart with the given text.
func NewTextPart(text string) TextPart {
	return TextPart{Kind: KindText, Text: text}
}

// DataPart represents arbitrary structured data (JSON) within a message.
// Decoded parts hold their payload as json.RawMessage.
type DataPart struct {
	Kind     string         `json:"kind"`
	Data     any            `json:"data"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

func (DataPart) partMarker()     {}
func (DataPart) GetKind() string { return KindData }

// NewDataPart creates a new DataPart with the given data.
func NewDataPart(data any) DataPart {
	return DataPart{Kind: KindData, Data: data}
}

// UnknownPart is a part of any kind this package does not interpret,
// files included. It re-encodes exactly as it was received.
type UnknownPart struct {
	Kind string
	Raw  json.RawMessage
}

func (UnknownPart) partMarker()       {}
func (p UnknownPart) GetKind() string { return p.Kind }

// MarshalJSON returns the part as it was received.
func (p UnknownPart) MarshalJSON() ([]byte, error) {
	if len(p.Raw) == 0 {
		return []byte("null"), nil
	}
	return p.Raw, nil
}

// UnmarshalPart decodes a Part, dispatching on its kind.
func UnmarshalPart(data []byte) (Part, error) {
	var raw struct {
		Kind string `json:"kind"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	switch raw.Kind {
	case KindText:
		var p TextPart
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return p, nil
	case KindData:
		var p struct {
			Kind     string          `json:"kind"`
			Data     json.RawMessage `json:"data"`
			Metadata map[string]any  `json:"metadata,omitempty"`
		}
		if err := json.Unmarshal(data, &p); err != nil {
			return nil, err
		}
		return DataPart{Kind: p.Kind, Data: p.Data, Metadata: p.Metadata}, nil
	default:
		return UnknownPart{Kind: raw.Kind, Raw: append(json.RawMessage(nil), data...)}, nil
	}
}

// TaskStatus represents the current status of a task.
type TaskStatus struct {
	State     TaskState `json:"state"`
	Timestamp string    `json:"timestamp"`
	Message   *Message  `json:"message,omitempty"`
}

// Task represents a unit of work processed by the agent.
type Task struct {
	Kind      string     `json:"kind"`
	ID        string     `json:"id"`
	ContextID string     `json:"contextId"`
	Status    TaskStatus `json:"status"`
	Artifacts []Artifact `json:"artifacts"`
	History   []Message  `json:"history"`
}

// Artifact represents an output generated by a task.
type Artifact struct {
	ArtifactID string `json:"artifactId"`
	Name       string `json:"name"`
	Parts      []Part `json:"parts"`
}
