package a2a

import (
	"encoding/json"
)

// JSONRPCVersion is the only protocol version accepted.
const JSONRPCVersion = "2.0"

// JSON-RPC error codes used by this agent.
const (
	CodeInvalidRequest = -32600
	CodeAgentNotFound  = -32602
	CodeInternalError  = -32603
)

// Request is a validated JSON-RPC task request.
type Request struct {
	JSONRPC string
	// ID is the request id exactly as sent (a JSON string or number).
	ID     json.RawMessage
	Method string
	Params Params
}

// Params holds the task request parameters.
type Params struct {
	Message   *Message  `json:"message,omitempty"`
	Messages  []Message `json:"messages,omitempty"`
	ContextID string    `json:"contextId,omitempty"`
	TaskID    string    `json:"taskId,omitempty"`
}

// Conversation returns the inbound messages. A messages list takes
// precedence over a single message; with neither the conversation is empty.
func (p Params) Conversation() []Message {
	if p.Messages != nil {
		return p.Messages
	}
	if p.Message != nil {
		return []Message{*p.Message}
	}
	return nil
}

// Response is a JSON-RPC response envelope. Exactly one of Result and
// Error is set.
type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id"`
	Result  *Task           `json:"result,omitempty"`
	Error   *RPCError       `json:"error,omitempty"`
}

// RPCError is the error member of a JSON-RPC response.
type RPCError struct {
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    *ErrorData `json:"data,omitempty"`
}

// ErrorData carries additional error detail.
type ErrorData struct {
	Details string `json:"details"`
}
