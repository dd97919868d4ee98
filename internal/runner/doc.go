// Package runner answers one user turn by exchanging messages with the
// Anthropic Messages API and dispatching tool calls.
//
// Invariant:
//   - tool_use and the corresponding tool_result are kept adjacent within a turn.
//   - history is read, never written; the caller records the finished exchange.
//
// Flow:
//
//	user(text) -> assistant(tool_use) -> user(tool_result) -> assistant(text)
package runner
