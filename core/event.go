package core

// Event is the typed rendering record emitted once per applied or failed
// action, in application order. Drivers switch exhaustively over the closed
// variant set: Message | HandoffApplied | ToolInvoked | ToolResult | Failure.
type Event interface{ isEvent() }

// MessageEvent renders an agent-authored message.
type MessageEvent struct {
	Agent string
	Text  string
}

func (MessageEvent) isEvent() {}

// HandoffAppliedEvent renders a completed ownership transfer.
type HandoffAppliedEvent struct {
	From string
	To   string
}

func (HandoffAppliedEvent) isEvent() {}

// ToolInvokedEvent renders the start of a tool call.
type ToolInvokedEvent struct {
	Agent string
	Tool  string
}

func (ToolInvokedEvent) isEvent() {}

// ToolResultEvent renders a tool outcome. Err is empty on success; mutating
// tools that return no value render with a nil Output ("action performed").
type ToolResultEvent struct {
	Agent  string
	Tool   string
	Output any
	Err    string
}

func (ToolResultEvent) isEvent() {}

// Failed reports whether the tool call ended in an error.
func (e ToolResultEvent) Failed() bool { return e.Err != "" }

// FailureEvent renders a rejected action (unknown tool, invalid handoff).
// Kind is one of the Failure* constants.
type FailureEvent struct {
	Agent   string
	Kind    string
	Message string
}

func (FailureEvent) isEvent() {}
