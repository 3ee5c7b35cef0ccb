// Package engine drives conversation turns: it submits the owning agent, the
// full history and the shared account context to the decision oracle, applies
// the returned actions strictly in order (messages, tool calls, handoffs) and
// emits one typed rendering event per applied or failed action.
//
// Tool and handoff failures are non-fatal: they are recorded in history so the
// oracle sees them on the next turn and can recover. Only failure to reach
// the oracle itself ends a turn with an error.
package engine
