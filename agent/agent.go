package agent

import (
	"fmt"
	"sort"

	"github.com/rross/oai-wealth-management/tool"
)

// Agent is a named conversational participant: an instruction persona for the
// decision oracle, a set of tools it may invoke and a set of agents it may
// hand the conversation off to.
//
// The tool set and handoff set are fixed once the owning Registry is sealed;
// there is no dynamic rewiring at runtime.
type Agent struct {
	name         string
	description  string // shown to peers deciding whether to hand off here
	instructions string
	tools        map[string]tool.Tool
	handoffs     map[string]struct{} // target agent names
}

// Options configures construction of an Agent.
type Options struct {
	Description  string
	Instructions string
	Tools        []tool.Tool
	Handoffs     []string // forward edges; reciprocal edges are added via Registry.Link
}

// New constructs an Agent with the given unique name.
func New(name string, optFns ...func(o *Options)) *Agent {
	opts := Options{
		Instructions: fmt.Sprintf("You are %s, a helpful assistant.", name),
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	a := &Agent{
		name:         name,
		description:  opts.Description,
		instructions: opts.Instructions,
		tools:        make(map[string]tool.Tool, len(opts.Tools)),
		handoffs:     make(map[string]struct{}, len(opts.Handoffs)),
	}

	for _, t := range opts.Tools {
		a.tools[t.Name()] = t
	}
	for _, h := range opts.Handoffs {
		a.handoffs[h] = struct{}{}
	}

	return a
}

// Name returns the agent's unique name.
func (a *Agent) Name() string { return a.name }

// Description returns the short description shown to handoff sources.
func (a *Agent) Description() string { return a.description }

// Instructions returns the persona text submitted to the decision oracle.
func (a *Agent) Instructions() string { return a.instructions }

// Tool resolves a tool by name within this agent's tool set only.
func (a *Agent) Tool(name string) (tool.Tool, bool) {
	t, ok := a.tools[name]
	return t, ok
}

// Tools returns the agent's tools sorted by name for stable oracle prompts.
func (a *Agent) Tools() []tool.Tool {
	names := make([]string, 0, len(a.tools))
	for name := range a.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	tools := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		tools = append(tools, a.tools[name])
	}
	return tools
}

// CanHandoff reports whether target is a declared forward edge of this agent.
// An agent never implicitly reaches itself; self-handoffs require an explicit
// (and unusual) self edge.
func (a *Agent) CanHandoff(target string) bool {
	_, ok := a.handoffs[target]
	return ok
}

// Handoffs returns the declared handoff targets sorted by name.
func (a *Agent) Handoffs() []string {
	targets := make([]string, 0, len(a.handoffs))
	for name := range a.handoffs {
		targets = append(targets, name)
	}
	sort.Strings(targets)
	return targets
}

// addTool registers a tool; used by Registry.AttachTools before sealing.
func (a *Agent) addTool(t tool.Tool) { a.tools[t.Name()] = t }

// addHandoff adds a forward edge; used by Registry.Link before sealing.
func (a *Agent) addHandoff(target string) { a.handoffs[target] = struct{}{} }
