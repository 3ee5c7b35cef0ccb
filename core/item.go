package core

// Item is one entry of the append-only conversation history. Concrete item
// types implement the unexported isItem marker enabling a closed set.
//
// History is never reordered or pruned; the full sequence is resubmitted to
// the decision oracle on every turn so context survives handoffs.
type Item interface{ isItem() }

// UserMessageItem records a message typed by the end user.
type UserMessageItem struct {
	Text string
}

func (UserMessageItem) isItem() {}

// AgentMessageItem records a message authored by an agent.
type AgentMessageItem struct {
	Agent string // authoring agent name
	Text  string
}

func (AgentMessageItem) isItem() {}

// ToolCallItem records an agent's request to execute a tool.
type ToolCallItem struct {
	Agent  string // agent that issued the call
	Tool   string
	CallID string // correlates the call with its ToolResultItem
	Args   map[string]any
}

func (ToolCallItem) isItem() {}

// ToolResultItem records the outcome of a tool call. Exactly one of Output
// and Err is meaningful: Err is empty on success and Output is nil on failure.
type ToolResultItem struct {
	Agent  string
	Tool   string
	CallID string
	Output any
	Err    string
}

func (ToolResultItem) isItem() {}

// Failed reports whether the recorded call ended in an error.
func (r ToolResultItem) Failed() bool { return r.Err != "" }

// HandoffItem records a validated transfer of conversation ownership.
type HandoffItem struct {
	From string
	To   string
}

func (HandoffItem) isItem() {}

// FailureItem records a rejected action (unknown tool, invalid handoff) so
// the oracle sees the failure on the next turn and can recover.
type FailureItem struct {
	Agent   string // owning agent when the failure occurred
	Kind    string // FailureUnknownTool or FailureInvalidHandoff
	Message string
}

func (FailureItem) isItem() {}

// Failure kinds recorded in FailureItem and FailureEvent.
const (
	FailureUnknownTool    = "unknown_tool"
	FailureInvalidHandoff = "invalid_handoff"
)
