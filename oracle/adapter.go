package oracle

import (
	"encoding/json"

	"github.com/rross/oai-wealth-management/agent"
	"github.com/rross/oai-wealth-management/core"
)

// ToolDefinition declaratively exposes a callable function to a reasoning
// model. Parameters is a JSON Schema object (minimal subset).
type ToolDefinition struct {
	Name        string         `json:"name"`
	Description string         `json:"description"`
	Parameters  map[string]any `json:"parameters"`
}

// AgentToolDefinitions returns the tool definitions for one agent's tool set
// plus, when the agent has handoff targets, the transfer_to_agent pseudo-tool
// restricted to those targets. Shared by the provider adapters so both expose
// an identical function surface.
func AgentToolDefinitions(a *agent.Agent) []ToolDefinition {
	tools := a.Tools()
	defs := make([]ToolDefinition, 0, len(tools)+1)

	for _, t := range tools {
		defs = append(defs, ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			Parameters:  t.Parameters(),
		})
	}

	if targets := a.Handoffs(); len(targets) > 0 {
		defs = append(defs, ToolDefinition{
			Name:        TransferToolName,
			Description: "Transfer the conversation to another agent by name. Use when another agent is better suited to help the customer.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"agent": map[string]any{
						"type":        "string",
						"description": "Target agent name",
						"enum":        targets,
					},
				},
				"required": []string{"agent"},
			},
		})
	}

	return defs
}

// DecodeToolCall maps a provider tool call into an Action. A call to the
// transfer pseudo-tool becomes a Handoff; everything else becomes an
// InvokeTool. Unparseable argument payloads decode to an empty argument map
// so the failure surfaces through tool validation instead of aborting the
// turn.
func DecodeToolCall(callID, name, argsJSON string) core.Action {
	args := map[string]any{}
	if argsJSON != "" {
		_ = json.Unmarshal([]byte(argsJSON), &args)
	}

	if name == TransferToolName {
		target, _ := args["agent"].(string)
		return core.Handoff{Target: target}
	}

	return core.InvokeTool{CallID: callID, Name: name, Args: args}
}
