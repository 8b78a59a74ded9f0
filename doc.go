// Package nutriagent holds the shared vocabulary of the nutrition agent:
// chat messages, tool definitions, provider options and the error kinds that
// decide which JSON-RPC code a failure is reported with.
//
// The protocol layer lives in [github.com/spetersoncode/nutriagent/a2a], the
// data normalization in [github.com/spetersoncode/nutriagent/nutrition] and the
// request orchestration in [github.com/spetersoncode/nutriagent/server].
//
// # Error kinds
//
// Every failure that crosses a package boundary carries one of four kinds:
//
//   - [KindInvalidEnvelope]: the request envelope is malformed
//   - [KindNotFound]: the addressed agent does not exist
//   - [KindUpstream]: the nutrition dataset returned nothing or failed
//   - [KindInternal]: anything else
//
// Use [KindOf] to classify an arbitrary error:
//
//	switch nutriagent.KindOf(err) {
//	case nutriagent.KindInvalidEnvelope:
//	    // -32600
//	case nutriagent.KindNotFound:
//	    // -32602
//	default:
//	    // -32603
//	}
package nutriagent
