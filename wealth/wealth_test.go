package wealth

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rross/oai-wealth-management/account"
	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/logging"
	"github.com/rross/oai-wealth-management/tool"
)

func newToolContext() *core.ToolContext {
	return core.NewToolContext(context.Background(), core.NewAccountContext(), "Tester", "fc-1", logging.NoOpLogger{})
}

func findTool(t *testing.T, tools []tool.Tool, name string) tool.Tool {
	t.Helper()
	for _, tl := range tools {
		if tl.Name() == name {
			return tl
		}
	}
	t.Fatalf("tool %q not found", name)
	return nil
}

func TestBuildRegistryTopology(t *testing.T) {
	registry, err := BuildRegistry(account.NewBeneficiaryManager(), account.NewInvestmentManager())
	require.NoError(t, err)
	require.True(t, registry.Sealed())

	supervisor, ok := registry.Get(SupervisorAgentName)
	require.True(t, ok)
	beneficiary, ok := registry.Get(BeneficiaryAgentName)
	require.True(t, ok)
	investment, ok := registry.Get(InvestmentAgentName)
	require.True(t, ok)

	// Hub and spoke: supervisor reaches both specialists, specialists only
	// reach back to the supervisor.
	assert.Equal(t, []string{BeneficiaryAgentName, InvestmentAgentName}, supervisor.Handoffs())
	assert.Equal(t, []string{SupervisorAgentName}, beneficiary.Handoffs())
	assert.Equal(t, []string{SupervisorAgentName}, investment.Handoffs())
	assert.False(t, registry.Reachable(BeneficiaryAgentName, InvestmentAgentName))

	benTools := beneficiary.Tools()
	require.Len(t, benTools, 3)
	assert.Equal(t, "add_beneficiaries", benTools[0].Name())
	assert.Equal(t, "delete_beneficiaries", benTools[1].Name())
	assert.Equal(t, "list_beneficiaries", benTools[2].Name())

	invTools := investment.Tools()
	require.Len(t, invTools, 3)
	assert.Equal(t, "close_investment", invTools[0].Name())
	assert.Equal(t, "list_investments", invTools[1].Name())
	assert.Equal(t, "open_investment", invTools[2].Name())

	assert.Empty(t, supervisor.Tools())
}

func TestBuildRegistrySupervisorTools(t *testing.T) {
	extra := tool.NewFunctionTool("get_account_profile", "Account profile lookup.",
		map[string]any{"type": "object", "properties": map[string]any{}},
		func(_ *core.ToolContext, _ map[string]any) (any, error) { return nil, nil },
	)

	registry, err := BuildRegistry(account.NewBeneficiaryManager(), account.NewInvestmentManager(), extra)
	require.NoError(t, err)

	supervisor, _ := registry.Get(SupervisorAgentName)
	_, ok := supervisor.Tool("get_account_profile")
	assert.True(t, ok)

	// Discovered tools attach to the supervisor only.
	beneficiary, _ := registry.Get(BeneficiaryAgentName)
	_, ok = beneficiary.Tool("get_account_profile")
	assert.False(t, ok)
}

func TestBeneficiaryToolsRoundTrip(t *testing.T) {
	mgr := account.NewBeneficiaryManager()
	tools := NewBeneficiaryTools(mgr)
	toolCtx := newToolContext()

	_, err := findTool(t, tools, "add_beneficiaries").Call(toolCtx, map[string]any{
		"account_id":   "42",
		"first_name":   "Jane",
		"last_name":    "Doe",
		"relationship": "spouse",
	})
	require.NoError(t, err)

	out, err := findTool(t, tools, "list_beneficiaries").Call(toolCtx, map[string]any{
		"account_id": "42",
	})
	require.NoError(t, err)

	listed, ok := out.([]account.Beneficiary)
	require.True(t, ok)
	require.Len(t, listed, 1)
	assert.Equal(t, "Jane", listed[0].FirstName)

	_, err = findTool(t, tools, "delete_beneficiaries").Call(toolCtx, map[string]any{
		"account_id":     "42",
		"beneficiary_id": listed[0].ID,
	})
	require.NoError(t, err)
	assert.Empty(t, mgr.List("42"))
}

func TestInvestmentToolsRoundTrip(t *testing.T) {
	mgr := account.NewInvestmentManager()
	tools := NewInvestmentTools(mgr)
	toolCtx := newToolContext()

	_, err := findTool(t, tools, "open_investment").Call(toolCtx, map[string]any{
		"account_id": "42",
		"name":       "Growth",
		"balance":    "1000",
	})
	require.NoError(t, err)

	out, err := findTool(t, tools, "list_investments").Call(toolCtx, map[string]any{
		"account_id": "42",
	})
	require.NoError(t, err)

	listed, ok := out.([]account.Investment)
	require.True(t, ok)
	require.Len(t, listed, 1)
	assert.Equal(t, "Growth", listed[0].Name)
	assert.Equal(t, "1000", listed[0].Balance)

	_, err = findTool(t, tools, "close_investment").Call(toolCtx, map[string]any{
		"account_id":    "42",
		"investment_id": listed[0].ID,
	})
	require.NoError(t, err)
	assert.Empty(t, mgr.List("42"))
}

// Every account-scoped tool records its account_id on the shared context
// before running, so the most recent call always wins.
func TestToolsSetAccountContext(t *testing.T) {
	benTools := NewBeneficiaryTools(account.NewBeneficiaryManager())
	invTools := NewInvestmentTools(account.NewInvestmentManager())
	toolCtx := newToolContext()

	_, err := findTool(t, benTools, "list_beneficiaries").Call(toolCtx, map[string]any{
		"account_id": "42",
	})
	require.NoError(t, err)
	assert.Equal(t, "42", toolCtx.Account().AccountID())

	_, err = findTool(t, invTools, "list_investments").Call(toolCtx, map[string]any{
		"account_id": "7",
	})
	require.NoError(t, err)
	assert.Equal(t, "7", toolCtx.Account().AccountID())
}

func TestDeleteMissingRecordFails(t *testing.T) {
	tools := NewBeneficiaryTools(account.NewBeneficiaryManager())

	_, err := findTool(t, tools, "delete_beneficiaries").Call(newToolContext(), map[string]any{
		"account_id":     "42",
		"beneficiary_id": "missing",
	})
	require.Error(t, err)

	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
}
