// Package a2a implements the A2A (Agent-to-Agent) task envelope used by the
// nutrition agent.
//
// A2A uses JSON-RPC 2.0 over HTTP. A client sends a task request carrying
// one or more messages; the agent replies with a completed [Task] holding a
// status message, artifacts and the replayed history.
//
// # Overview
//
// This package provides:
//   - Core A2A types: [Message], [Task], [TaskState], [Artifact] and the
//     closed set of [Part] types
//   - Request validation: [ParseRequest]
//   - Message conversion: [ToAgentInput] for agent calls and
//     [ToHistoryMessages] for task history
//   - Envelope construction: [Builder]
//
// The package does NOT provide HTTP handlers; see the server package.
//
// # Parts
//
// Parts decode by their kind. Text and data parts are interpreted; any other
// kind decodes to [UnknownPart], which re-encodes byte for byte and
// contributes no text to agent input.
//
// # Identifiers
//
// Every identifier the agent mints comes from an [IDGenerator]. The default
// [UUIDGenerator] returns random UUIDs, so no two generated ids in a response
// are equal.
//
// # Errors
//
// [ParseRequest] returns *[ValidationError], which reports
// nutriagent.KindInvalidEnvelope. The error codes are fixed:
//
//   - [CodeInvalidRequest] (-32600): malformed envelope
//   - [CodeAgentNotFound] (-32602): unknown agent
//   - [CodeInternalError] (-32603): any other failure
package a2a
