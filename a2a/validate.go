package a2a

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spetersoncode/nutriagent"
)

// ValidationError reports a malformed request envelope. ID holds the
// request id when one could be recovered, nil otherwise.
type ValidationError struct {
	ID     json.RawMessage
	Reason string
}

func (e *ValidationError) Error() string {
	return "invalid request: " + e.Reason
}

// Kind returns nutriagent.KindInvalidEnvelope.
func (e *ValidationError) Kind() nutriagent.ErrorKind {
	return nutriagent.KindInvalidEnvelope
}

// ParseRequest decodes and validates a JSON-RPC request body.
// It checks, in order: the body is a JSON object, jsonrpc is "2.0", id is
// present and neither null nor the empty string, and params has the
// expected shape. Failures are returned as *ValidationError.
func ParseRequest(body []byte) (*Request, error) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err != nil || fields == nil {
		return nil, &ValidationError{Reason: "body is not a JSON object"}
	}

	rawID := fields["id"]
	echoID := echoableID(rawID)

	var version string
	if raw, ok := fields["jsonrpc"]; !ok || json.Unmarshal(raw, &version) != nil || version != JSONRPCVersion {
		return nil, &ValidationError{ID: echoID, Reason: fmt.Sprintf("jsonrpc must be %q", JSONRPCVersion)}
	}

	if echoID == nil || string(echoID) == `""` {
		return nil, &ValidationError{ID: echoID, Reason: "id is required"}
	}

	req := &Request{JSONRPC: version, ID: echoID}

	if raw, ok := fields["method"]; ok {
		// Method is informational; a non-string value is ignored.
		_ = json.Unmarshal(raw, &req.Method)
	}

	if raw, ok := fields["params"]; ok && !isNull(raw) {
		if err := json.Unmarshal(raw, &req.Params); err != nil {
			return nil, &ValidationError{ID: echoID, Reason: "invalid params: " + err.Error()}
		}
	}

	return req, nil
}

// echoableID returns raw compacted when it is a JSON string or number,
// nil otherwise.
func echoableID(raw json.RawMessage) json.RawMessage {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil
	}

	var v any
	if err := json.Unmarshal(trimmed, &v); err != nil {
		return nil
	}
	switch v.(type) {
	case string, float64:
		return trimmed
	default:
		return nil
	}
}

func isNull(raw json.RawMessage) bool {
	return string(bytes.TrimSpace(raw)) == "null"
}
