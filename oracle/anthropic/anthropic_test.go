package anthropic

import (
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/oracle"
)

func TestNewDefaults(t *testing.T) {
	o := New()
	assert.Equal(t, anthropic.ModelClaude3_5Sonnet20241022, o.opts.Model)
	assert.Equal(t, int64(4096), o.opts.MaxTokens)

	o = New(func(opts *Options) {
		opts.MaxTokens = 1024
	})
	assert.Equal(t, int64(1024), o.opts.MaxTokens)
}

func TestBuildMessages(t *testing.T) {
	history := []core.Item{
		core.UserMessageItem{Text: "list my beneficiaries"},
		core.HandoffItem{From: "SupervisorAgent", To: "BeneficiaryAgent"},
		core.ToolCallItem{
			Agent:  "BeneficiaryAgent",
			Tool:   "list_beneficiaries",
			CallID: "call-1",
			Args:   map[string]any{"account_id": "42"},
		},
		core.ToolResultItem{
			Agent:  "BeneficiaryAgent",
			Tool:   "list_beneficiaries",
			CallID: "call-1",
			Err:    "boom",
		},
		core.AgentMessageItem{Agent: "BeneficiaryAgent", Text: "Something went wrong."},
	}

	messages := buildMessages(history)
	require.Len(t, messages, 5)

	assert.Equal(t, anthropic.MessageParamRoleUser, messages[0].Role)
	assert.Equal(t, anthropic.MessageParamRoleAssistant, messages[1].Role) // handoff note
	assert.Equal(t, anthropic.MessageParamRoleAssistant, messages[2].Role) // tool use

	require.Len(t, messages[2].Content, 1)
	toolUse := messages[2].Content[0].OfToolUse
	require.NotNil(t, toolUse)
	assert.Equal(t, "call-1", toolUse.ID)
	assert.Equal(t, "list_beneficiaries", toolUse.Name)

	// Tool results travel as user messages carrying a tool_result block.
	assert.Equal(t, anthropic.MessageParamRoleUser, messages[3].Role)
	require.Len(t, messages[3].Content, 1)
	toolResult := messages[3].Content[0].OfToolResult
	require.NotNil(t, toolResult)
	assert.Equal(t, "call-1", toolResult.ToolUseID)
	assert.True(t, toolResult.IsError.Value)

	assert.Equal(t, anthropic.MessageParamRoleAssistant, messages[4].Role)
}

func TestBuildTools(t *testing.T) {
	defs := []oracle.ToolDefinition{
		{
			Name:        "open_investment",
			Description: "Open an investment.",
			Parameters: map[string]any{
				"type": "object",
				"properties": map[string]any{
					"account_id": map[string]any{"type": "string"},
				},
				"required": []string{"account_id"},
			},
		},
		{
			Name: oracle.TransferToolName,
			Parameters: map[string]any{
				"type":       "object",
				"properties": map[string]any{"agent": map[string]any{"type": "string"}},
				"required":   []any{"agent"},
			},
		},
	}

	tools := buildTools(defs)
	require.Len(t, tools, 2)

	first := tools[0].OfTool
	require.NotNil(t, first)
	assert.Equal(t, "open_investment", first.Name)
	assert.Equal(t, []string{"account_id"}, first.InputSchema.Required)

	// required as []any (schemas decoded from JSON) normalizes too.
	second := tools[1].OfTool
	require.NotNil(t, second)
	assert.Equal(t, []string{"agent"}, second.InputSchema.Required)
}

func TestRenderResult(t *testing.T) {
	assert.Equal(t, "ok", renderResult(core.ToolResultItem{}))
	assert.Equal(t, "error: boom", renderResult(core.ToolResultItem{Err: "boom"}))
	assert.Equal(t, `{"id":"x"}`, renderResult(core.ToolResultItem{Output: map[string]string{"id": "x"}}))
}
