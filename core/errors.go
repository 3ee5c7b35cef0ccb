package core

import "fmt"

// UnknownToolError reports a tool call naming a tool absent from the current
// owning agent's tool set. Non-fatal: the engine records it and continues.
type UnknownToolError struct {
	Agent string
	Tool  string
}

func (e *UnknownToolError) Error() string {
	return fmt.Sprintf("agent %q has no tool %q", e.Agent, e.Tool)
}

// InvalidHandoffError reports a handoff to a target that is not reachable
// from the current owning agent. Non-fatal: ownership stays unchanged.
type InvalidHandoffError struct {
	From string
	To   string
}

func (e *InvalidHandoffError) Error() string {
	return fmt.Sprintf("agent %q cannot hand off to %q", e.From, e.To)
}

// ToolExecutionError wraps a failure raised by a manager collaborator during
// tool execution, carrying the tool name and underlying cause. Non-fatal:
// it is recorded as a failed tool result.
type ToolExecutionError struct {
	Tool  string
	Cause error
}

func (e *ToolExecutionError) Error() string {
	return fmt.Sprintf("tool %q execution failed: %v", e.Tool, e.Cause)
}

// Unwrap returns the underlying cause.
func (e *ToolExecutionError) Unwrap() error { return e.Cause }

// OracleUnavailableError reports a failure to reach the decision oracle
// (transport error or timeout). Fatal to the turn: it propagates to the
// driver; actions applied earlier in the same turn stand.
type OracleUnavailableError struct {
	Cause error
}

func (e *OracleUnavailableError) Error() string {
	return fmt.Sprintf("decision oracle unavailable: %v", e.Cause)
}

// Unwrap returns the underlying cause.
func (e *OracleUnavailableError) Unwrap() error { return e.Cause }
