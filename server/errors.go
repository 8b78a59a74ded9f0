package server

import (
	"net/http"

	"github.com/spetersoncode/nutriagent"
	"github.com/spetersoncode/nutriagent/a2a"
)

// rpcFailure is the envelope code, message and HTTP status for an error kind.
type rpcFailure struct {
	code    int
	message string
	status  int
}

// failureFor maps an error kind to its response. Upstream and internal
// failures share the internal error code.
func failureFor(kind nutriagent.ErrorKind) rpcFailure {
	switch kind {
	case nutriagent.KindInvalidEnvelope:
		return rpcFailure{a2a.CodeInvalidRequest, "Invalid Request", http.StatusBadRequest}
	case nutriagent.KindNotFound:
		return rpcFailure{a2a.CodeAgentNotFound, "Agent not found", http.StatusNotFound}
	default:
		return rpcFailure{a2a.CodeInternalError, "Internal error", http.StatusInternalServerError}
	}
}
