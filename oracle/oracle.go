// Package oracle abstracts the external reasoning component that, given the
// owning agent, the full conversation history and the account context,
// chooses the actions to apply next. The engine's correctness is testable
// with the Scripted implementation; production deployments use the openai or
// anthropic adapters.
package oracle

import (
	"context"
	"fmt"
	"sync"

	"github.com/rross/oai-wealth-management/agent"
	"github.com/rross/oai-wealth-management/core"
)

// Request carries one turn's worth of decision input. History is the full
// append-only sequence; it is resubmitted unabridged on every turn so context
// survives handoffs.
type Request struct {
	Agent   *agent.Agent
	History []core.Item
	Account *core.AccountContext
}

// Oracle is the single capability interface behind which the reasoning
// engine hides. Decide returns an ordered list of actions; the engine treats
// the output as untrusted but well-typed, converting malformed tool names or
// handoff targets into recorded failures rather than letting them propagate.
type Oracle interface {
	Decide(ctx context.Context, req Request) ([]core.Action, error)
}

// TransferToolName is the pseudo-tool adapters expose so a reasoning model
// can request a handoff; its invocation decodes to a core.Handoff action and
// is never dispatched as a real tool.
const TransferToolName = "transfer_to_agent"

// Scripted is a deterministic Oracle returning pre-programmed action lists in
// FIFO order, one list per Decide call. It records every request it sees.
// Useful for tests and demos.
type Scripted struct {
	mu       sync.Mutex
	queue    [][]core.Action
	requests []Request
}

// NewScripted constructs a Scripted oracle with the given turn scripts.
func NewScripted(turns ...[]core.Action) *Scripted {
	return &Scripted{queue: turns}
}

// Enqueue appends one more turn's actions to the script.
func (s *Scripted) Enqueue(actions ...core.Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.queue = append(s.queue, actions)
}

// Decide pops the next scripted action list. It fails when the script is
// exhausted, which surfaces as an oracle-unavailable turn in the engine.
func (s *Scripted) Decide(_ context.Context, req Request) ([]core.Action, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.requests = append(s.requests, req)

	if len(s.queue) == 0 {
		return nil, fmt.Errorf("scripted oracle exhausted after %d turns", len(s.requests)-1)
	}

	actions := s.queue[0]
	s.queue = s.queue[1:]

	return actions, nil
}

// Requests returns the decision requests observed so far.
func (s *Scripted) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}
