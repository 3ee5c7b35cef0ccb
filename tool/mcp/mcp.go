// Package mcp connects to an external tool-provider process over the Model
// Context Protocol (stdio transport) and adapts its advertised tools to the
// module's tool.Tool interface. The supervisor agent attaches these tools at
// startup to answer account-profile questions the in-process managers do not
// cover.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os/exec"
	"strings"

	sdk "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/tool"
)

// Client communicates with an MCP server using the official MCP Go SDK.
type Client struct {
	client  *sdk.Client
	session *sdk.ClientSession
}

// Connect spawns an MCP server process and returns a connected client. The
// SDK performs protocol initialization during Connect.
func Connect(ctx context.Context, command string, args ...string) (*Client, error) {
	transport := &sdk.CommandTransport{
		Command: exec.Command(command, args...), //nolint:gosec // command is caller-provided by design
	}

	return connect(ctx, transport)
}

// connect creates a Client using the given transport. Split out so tests can
// use the SDK's InMemoryTransport.
func connect(ctx context.Context, transport sdk.Transport) (*Client, error) {
	client := sdk.NewClient(&sdk.Implementation{
		Name:    "wealthchat",
		Version: "0.1.0",
	}, nil)

	session, err := client.Connect(ctx, transport, nil)
	if err != nil {
		return nil, fmt.Errorf("mcp: connect: %w", err)
	}

	return &Client{client: client, session: session}, nil
}

// Tools fetches the tools advertised by the server and returns them as
// tool.Tool values whose Call delegates back through the session.
func (c *Client) Tools(ctx context.Context) ([]tool.Tool, error) {
	result, err := c.session.ListTools(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("mcp: list tools: %w", err)
	}

	tools := make([]tool.Tool, 0, len(result.Tools))
	for _, t := range result.Tools {
		adapted, err := c.adaptTool(t)
		if err != nil {
			return nil, fmt.Errorf("mcp: convert tool %q: %w", t.Name, err)
		}
		tools = append(tools, adapted)
	}

	return tools, nil
}

// Call invokes a named tool on the server with the given arguments.
func (c *Client) Call(ctx context.Context, name string, args map[string]any) (string, error) {
	result, err := c.session.CallTool(ctx, &sdk.CallToolParams{
		Name:      name,
		Arguments: args,
	})
	if err != nil {
		return "", fmt.Errorf("mcp: call tool: %w", err)
	}

	text := extractText(result)

	if result.IsError {
		return "", fmt.Errorf("mcp: tool error: %s", text)
	}

	return text, nil
}

// Close terminates the session; the SDK shuts the subprocess down through the
// transport (stdin close, then SIGTERM/SIGKILL escalation).
func (c *Client) Close() error {
	return c.session.Close()
}

// remoteTool adapts one advertised MCP tool to the tool.Tool interface.
type remoteTool struct {
	client      *Client
	name        string
	description string
	parameters  map[string]any
}

func (c *Client) adaptTool(t *sdk.Tool) (tool.Tool, error) {
	schemaBytes, err := json.Marshal(t.InputSchema)
	if err != nil {
		return nil, fmt.Errorf("marshal input schema: %w", err)
	}

	parameters := map[string]any{}
	if err := json.Unmarshal(schemaBytes, &parameters); err != nil {
		return nil, fmt.Errorf("decode input schema: %w", err)
	}

	return &remoteTool{
		client:      c,
		name:        t.Name,
		description: t.Description,
		parameters:  parameters,
	}, nil
}

func (t *remoteTool) Name() string { return t.name }

func (t *remoteTool) Description() string { return t.description }

func (t *remoteTool) Parameters() map[string]any { return t.parameters }

// Call forwards the invocation to the external process. Account-scoped
// remote tools follow the same context-mutation convention as local ones:
// an account_id argument overwrites the shared account context.
func (t *remoteTool) Call(toolCtx *core.ToolContext, args map[string]any) (any, error) {
	if id, ok := args["account_id"].(string); ok && id != "" {
		toolCtx.Account().SetAccountID(id)
	}

	text, err := t.client.Call(toolCtx.Context(), t.name, args)
	if err != nil {
		return nil, tool.NewToolError(t.name, err.Error(), "EXECUTION_ERROR")
	}

	return text, nil
}

// extractText joins all TextContent items from a CallToolResult with newlines.
func extractText(result *sdk.CallToolResult) string {
	var texts []string
	for _, item := range result.Content {
		if tc, ok := item.(*sdk.TextContent); ok {
			texts = append(texts, tc.Text)
		}
	}

	return strings.Join(texts, "\n")
}
