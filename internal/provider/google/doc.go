// Package google provides a Gemini client implementing [nutriagent.ChatProvider]
// on top of the Google GenAI SDK.
//
// System messages become the request's system instruction. Tool results are
// sent as function responses keyed by tool name.
package google
