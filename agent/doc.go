// Package agent models the named participants of a conversation and the
// static handoff graph between them.
//
// Agents are built in two phases: each agent is constructed with its forward
// handoff edges, then reciprocal edges (specialist back to supervisor) are
// added on the Registry before Seal() freezes the graph. Edges are stored as
// name sets in a name-keyed arena rather than mutual object references, so
// arbitrary graphs (including cycles) construct without ordering problems.
package agent
