package a2a

import (
	"encoding/json"
	"time"
)

// Default artifact names for a successful task.
const (
	DefaultTextArtifactName = "NutritionInfoText"
	DefaultDataArtifactName = "ToolResults"
)

// Builder assembles JSON-RPC response envelopes.
type Builder struct {
	ids IDGenerator
	now func() time.Time
}

// BuilderOption configures a Builder.
type BuilderOption func(*Builder)

// WithIDGenerator sets the generator used for every missing identifier.
func WithIDGenerator(ids IDGenerator) BuilderOption {
	return func(b *Builder) {
		b.ids = ids
	}
}

// WithClock sets the clock used for status timestamps.
func WithClock(now func() time.Time) BuilderOption {
	return func(b *Builder) {
		b.now = now
	}
}

// NewBuilder creates a Builder that generates UUIDs and reads the wall clock.
func NewBuilder(opts ...BuilderOption) *Builder {
	b := &Builder{
		ids: UUIDGenerator{},
		now: time.Now,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// IDs returns the builder's identifier generator.
func (b *Builder) IDs() IDGenerator {
	return b.ids
}

// SuccessParams describes a completed task.
type SuccessParams struct {
	RequestID json.RawMessage
	// ContextID and TaskID are generated when empty.
	ContextID string
	TaskID    string
	// Text is the human-readable answer; Data is the structured result.
	Text             string
	Data             any
	TextArtifactName string
	DataArtifactName string
	// History is replayed ahead of the synthesized agent answer.
	History []Message
}

// Success builds a completed task envelope. The task carries a text
// artifact and a data artifact, and its history ends with one agent message
// holding Text.
func (b *Builder) Success(p SuccessParams) *Response {
	contextID := p.ContextID
	if contextID == "" {
		contextID = b.ids.NewID()
	}
	taskID := p.TaskID
	if taskID == "" {
		taskID = b.ids.NewID()
	}

	textName := p.TextArtifactName
	if textName == "" {
		textName = DefaultTextArtifactName
	}
	dataName := p.DataArtifactName
	if dataName == "" {
		dataName = DefaultDataArtifactName
	}

	statusMsg := b.agentMessage(p.Text, taskID, contextID)

	artifacts := []Artifact{
		{ArtifactID: b.ids.NewID(), Name: textName, Parts: []Part{NewTextPart(p.Text)}},
		{ArtifactID: b.ids.NewID(), Name: dataName, Parts: []Part{NewDataPart(p.Data)}},
	}

	history := make([]Message, 0, len(p.History)+1)
	history = append(history, p.History...)
	history = append(history, b.agentMessage(p.Text, taskID, contextID))

	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      p.RequestID,
		Result: &Task{
			Kind:      "task",
			ID:        taskID,
			ContextID: contextID,
			Status: TaskStatus{
				State:     TaskStateCompleted,
				Timestamp: b.now().UTC().Format(time.RFC3339),
				Message:   &statusMsg,
			},
			Artifacts: artifacts,
			History:   history,
		},
	}
}

// Error builds an error envelope. data.details is included only when
// details is non-empty. A nil id encodes as null.
func (b *Builder) Error(id json.RawMessage, code int, message, details string) *Response {
	rpcErr := &RPCError{Code: code, Message: message}
	if details != "" {
		rpcErr.Data = &ErrorData{Details: details}
	}
	return &Response{
		JSONRPC: JSONRPCVersion,
		ID:      id,
		Error:   rpcErr,
	}
}

func (b *Builder) agentMessage(text, taskID, contextID string) Message {
	m := NewMessage(MessageRoleAgent, NewTextPart(text))
	m.MessageID = b.ids.NewID()
	m.TaskID = taskID
	m.ContextID = contextID
	return m
}
