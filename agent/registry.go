package agent

import (
	"fmt"

	"github.com/rross/oai-wealth-management/tool"
)

// Registry is an arena of agents addressed by name. Handoff edges refer to
// names in the arena, never to agent pointers, so symmetric graphs (the
// specialist-back-to-supervisor link) build without construction-order cycles.
//
// Mutating calls (Register, Link, AttachTools) are only legal before Seal.
// A sealed registry is immutable and safe for concurrent reads.
type Registry struct {
	agents map[string]*Agent
	sealed bool
}

// NewRegistry constructs an empty registry.
func NewRegistry() *Registry {
	return &Registry{agents: make(map[string]*Agent)}
}

// Register adds an agent to the arena. Names must be unique.
func (r *Registry) Register(agents ...*Agent) error {
	if r.sealed {
		return fmt.Errorf("registry is sealed")
	}
	for _, a := range agents {
		if _, exists := r.agents[a.name]; exists {
			return fmt.Errorf("agent %q already registered", a.name)
		}
		r.agents[a.name] = a
	}
	return nil
}

// Get resolves an agent by name.
func (r *Registry) Get(name string) (*Agent, bool) {
	a, ok := r.agents[name]
	return a, ok
}

// Link adds a forward handoff edge from one registered agent to another.
// Used for the second construction phase: adding reciprocal edges after all
// agents exist.
func (r *Registry) Link(from, to string) error {
	if r.sealed {
		return fmt.Errorf("registry is sealed")
	}
	src, ok := r.agents[from]
	if !ok {
		return fmt.Errorf("unknown agent %q", from)
	}
	if _, ok := r.agents[to]; !ok {
		return fmt.Errorf("unknown agent %q", to)
	}
	src.addHandoff(to)
	return nil
}

// AttachTools adds tools to a registered agent, e.g. tools discovered from an
// external provider at startup.
func (r *Registry) AttachTools(name string, tools ...tool.Tool) error {
	if r.sealed {
		return fmt.Errorf("registry is sealed")
	}
	a, ok := r.agents[name]
	if !ok {
		return fmt.Errorf("unknown agent %q", name)
	}
	for _, t := range tools {
		a.addTool(t)
	}
	return nil
}

// Seal freezes the graph: any declared edge must point at a registered agent,
// and further mutation is rejected.
func (r *Registry) Seal() error {
	if r.sealed {
		return nil
	}
	for name, a := range r.agents {
		for target := range a.handoffs {
			if _, ok := r.agents[target]; !ok {
				return fmt.Errorf("agent %q declares handoff to unregistered agent %q", name, target)
			}
		}
	}
	r.sealed = true
	return nil
}

// Sealed reports whether the graph is frozen.
func (r *Registry) Sealed() bool { return r.sealed }

// Reachable reports whether agent from may hand the conversation off to
// agent to through a declared edge. Both agents must be registered.
func (r *Registry) Reachable(from, to string) bool {
	src, ok := r.agents[from]
	if !ok {
		return false
	}
	if _, ok := r.agents[to]; !ok {
		return false
	}
	return src.CanHandoff(to)
}
