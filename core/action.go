package core

// Action is one step the decision oracle wants applied to the conversation.
// The engine applies the returned actions strictly in order; a Handoff in the
// middle of a turn redirects the remaining actions to the new owning agent.
//
// Concrete action types implement the unexported isAction marker enabling a
// closed set. Oracle output is treated as untrusted but well-typed: malformed
// targets and unknown tool names are caught at application time, never here.
type Action interface{ isAction() }

// EmitMessage asks the engine to append an agent-authored message to history.
type EmitMessage struct {
	Text string
}

func (EmitMessage) isAction() {}

// InvokeTool asks the engine to dispatch a named tool against the current
// owning agent's tool set. CallID correlates the call with its result; the
// engine assigns one when the oracle leaves it empty.
type InvokeTool struct {
	CallID string
	Name   string
	Args   map[string]any
}

func (InvokeTool) isAction() {}

// Handoff asks the engine to transfer conversation ownership to the named
// agent. The target must be in the current owner's handoff set.
type Handoff struct {
	Target string
}

func (Handoff) isAction() {}
