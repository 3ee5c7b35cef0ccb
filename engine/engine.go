package engine

import (
	"context"
	"time"

	"github.com/rross/oai-wealth-management/agent"
	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/internal/util"
	"github.com/rross/oai-wealth-management/logging"
	"github.com/rross/oai-wealth-management/oracle"
)

// Options holds configuration overrides passed to New().
type Options struct {
	// OracleTimeout bounds one Decide round-trip; expiry is treated as the
	// oracle being unavailable.
	OracleTimeout time.Duration
	// Logger receives structured turn/action logs.
	Logger logging.Logger
}

// Engine applies decision-oracle output to conversation state. One Engine
// serves many conversations; per-conversation state lives in Conversation.
type Engine struct {
	registry      *agent.Registry
	oracle        oracle.Oracle
	oracleTimeout time.Duration
	logger        logging.Logger
}

// New constructs an Engine over a sealed agent registry and an oracle.
func New(registry *agent.Registry, o oracle.Oracle, optFns ...func(o *Options)) *Engine {
	opts := Options{
		OracleTimeout: 60 * time.Second,
		Logger:        logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Engine{
		registry:      registry,
		oracle:        o,
		oracleTimeout: opts.OracleTimeout,
		logger:        opts.Logger,
	}
}

// Conversation is the state that survives across turns: the owning agent,
// the append-only history and the shared account context. It is exclusively
// owned by one driver loop; turns never run concurrently.
type Conversation struct {
	id      string
	current *agent.Agent
	history []core.Item
	account *core.AccountContext
}

// NewConversation starts a fresh conversation owned by the named root agent
// (the supervisor in this deployment) with empty history and account context.
func (e *Engine) NewConversation(rootAgent string) (*Conversation, error) {
	root, ok := e.registry.Get(rootAgent)
	if !ok {
		return nil, &core.InvalidHandoffError{From: "", To: rootAgent}
	}

	return &Conversation{
		id:      util.NewID(),
		current: root,
		history: []core.Item{},
		account: core.NewAccountContext(),
	}, nil
}

// ID returns the conversation's unique identifier.
func (c *Conversation) ID() string { return c.id }

// CurrentAgent returns the agent that currently owns the conversation.
func (c *Conversation) CurrentAgent() *agent.Agent { return c.current }

// Account returns the conversation's shared account context.
func (c *Conversation) Account() *core.AccountContext { return c.account }

// History returns a defensive copy of the conversation history.
func (c *Conversation) History() []core.Item {
	out := make([]core.Item, len(c.history))
	copy(out, c.history)
	return out
}

// RunTurn executes one turn: it appends the user's message to history, asks
// the oracle for an ordered action list and applies the actions in order.
// The returned events mirror every applied or failed action for rendering.
//
// A *core.OracleUnavailableError return ends the turn; the user message (and
// nothing else) remains in history. All other failures are converted into
// recorded events and RunTurn succeeds.
func (e *Engine) RunTurn(ctx context.Context, conv *Conversation, userText string) ([]core.Event, error) {
	conv.history = append(conv.history, core.UserMessageItem{Text: userText})

	e.logger.Debug("engine.turn.start",
		"conversation", conv.id,
		"agent", conv.current.Name(),
		"history_len", len(conv.history),
	)

	decideCtx, cancel := context.WithTimeout(ctx, e.oracleTimeout)
	defer cancel()

	actions, err := e.oracle.Decide(decideCtx, oracle.Request{
		Agent:   conv.current,
		History: conv.History(),
		Account: conv.account,
	})
	if err != nil {
		e.logger.Error("engine.oracle.unavailable", "conversation", conv.id, "error", err.Error())

		return nil, &core.OracleUnavailableError{Cause: err}
	}

	events := make([]core.Event, 0, len(actions))
	for _, action := range actions {
		switch act := action.(type) {
		case core.EmitMessage:
			events = append(events, e.applyMessage(conv, act))
		case core.InvokeTool:
			events = append(events, e.applyInvoke(ctx, conv, act)...)
		case core.Handoff:
			events = append(events, e.applyHandoff(conv, act))
		}
	}

	e.logger.Debug("engine.turn.complete",
		"conversation", conv.id,
		"agent", conv.current.Name(),
		"actions", len(actions),
	)

	return events, nil
}

// applyMessage appends an agent-authored message to history.
func (e *Engine) applyMessage(conv *Conversation, act core.EmitMessage) core.Event {
	author := conv.current.Name()
	conv.history = append(conv.history, core.AgentMessageItem{Agent: author, Text: act.Text})

	return core.MessageEvent{Agent: author, Text: act.Text}
}

// applyInvoke dispatches a tool call against the current owning agent's tool
// set. An unknown tool is rejected before any state is touched; execution
// errors become failed tool results. Both leave the conversation running.
func (e *Engine) applyInvoke(ctx context.Context, conv *Conversation, act core.InvokeTool) []core.Event {
	owner := conv.current

	t, ok := owner.Tool(act.Name)
	if !ok {
		rejection := &core.UnknownToolError{Agent: owner.Name(), Tool: act.Name}

		e.logger.Warn("engine.tool.unknown", "conversation", conv.id, "agent", owner.Name(), "tool", act.Name)

		conv.history = append(conv.history, core.FailureItem{
			Agent:   owner.Name(),
			Kind:    core.FailureUnknownTool,
			Message: rejection.Error(),
		})

		return []core.Event{core.FailureEvent{
			Agent:   owner.Name(),
			Kind:    core.FailureUnknownTool,
			Message: rejection.Error(),
		}}
	}

	callID := act.CallID
	if callID == "" {
		callID = util.NewID()
	}

	conv.history = append(conv.history, core.ToolCallItem{
		Agent:  owner.Name(),
		Tool:   act.Name,
		CallID: callID,
		Args:   act.Args,
	})

	events := []core.Event{core.ToolInvokedEvent{Agent: owner.Name(), Tool: act.Name}}

	toolCtx := core.NewToolContext(ctx, conv.account, owner.Name(), callID, e.logger)

	output, err := t.Call(toolCtx, act.Args)
	if err != nil {
		execErr := &core.ToolExecutionError{Tool: act.Name, Cause: err}

		e.logger.Warn("engine.tool.failed", "conversation", conv.id, "tool", act.Name, "error", err.Error())

		conv.history = append(conv.history, core.ToolResultItem{
			Agent:  owner.Name(),
			Tool:   act.Name,
			CallID: callID,
			Err:    execErr.Error(),
		})

		return append(events, core.ToolResultEvent{
			Agent: owner.Name(),
			Tool:  act.Name,
			Err:   execErr.Error(),
		})
	}

	conv.history = append(conv.history, core.ToolResultItem{
		Agent:  owner.Name(),
		Tool:   act.Name,
		CallID: callID,
		Output: output,
	})

	return append(events, core.ToolResultEvent{
		Agent:  owner.Name(),
		Tool:   act.Name,
		Output: output,
	})
}

// applyHandoff validates the target against the current owner's declared
// edges and transfers ownership. Remaining actions of the same turn dispatch
// against the new owner.
func (e *Engine) applyHandoff(conv *Conversation, act core.Handoff) core.Event {
	from := conv.current.Name()

	if !e.registry.Reachable(from, act.Target) {
		rejection := &core.InvalidHandoffError{From: from, To: act.Target}

		e.logger.Warn("engine.handoff.rejected", "conversation", conv.id, "from", from, "to", act.Target)

		conv.history = append(conv.history, core.FailureItem{
			Agent:   from,
			Kind:    core.FailureInvalidHandoff,
			Message: rejection.Error(),
		})

		return core.FailureEvent{
			Agent:   from,
			Kind:    core.FailureInvalidHandoff,
			Message: rejection.Error(),
		}
	}

	target, _ := e.registry.Get(act.Target)
	conv.current = target
	conv.history = append(conv.history, core.HandoffItem{From: from, To: act.Target})

	e.logger.Info("engine.handoff.applied", "conversation", conv.id, "from", from, "to", act.Target)

	return core.HandoffAppliedEvent{From: from, To: act.Target}
}
