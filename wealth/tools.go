package wealth

import (
	"fmt"

	"github.com/rross/oai-wealth-management/account"
	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/tool"
)

// Argument containers drive the tool schemas through reflection. All fields
// are required; descriptions are surfaced to the decision oracle.

type accountArgs struct {
	AccountID string `json:"account_id" description:"The customer's account id"`
}

type addBeneficiaryArgs struct {
	AccountID    string `json:"account_id" description:"The customer's account id"`
	FirstName    string `json:"first_name" description:"Beneficiary first name"`
	LastName     string `json:"last_name" description:"Beneficiary last name"`
	Relationship string `json:"relationship" description:"Relationship to the account holder, e.g. spouse"`
}

type deleteBeneficiaryArgs struct {
	AccountID     string `json:"account_id" description:"The customer's account id"`
	BeneficiaryID string `json:"beneficiary_id" description:"Id of the beneficiary to remove"`
}

type openInvestmentArgs struct {
	AccountID string `json:"account_id" description:"The customer's account id"`
	Name      string `json:"name" description:"Name of the investment to open"`
	Balance   string `json:"balance" description:"Opening balance"`
}

type closeInvestmentArgs struct {
	AccountID    string `json:"account_id" description:"The customer's account id"`
	InvestmentID string `json:"investment_id" description:"Id of the investment to close"`
}

// scopeAccount applies the context-mutation convention shared by every
// account-scoped tool: the account named in the arguments becomes the
// conversation's active account before the operation runs, so later tools
// (possibly after a handoff) may refer to it without re-specifying.
func scopeAccount(toolCtx *core.ToolContext, args map[string]any) (string, error) {
	accountID, ok := args["account_id"].(string)
	if !ok || accountID == "" {
		return "", fmt.Errorf("missing required field 'account_id'")
	}

	toolCtx.Account().SetAccountID(accountID)

	return accountID, nil
}

// stringArg extracts a required string argument by name.
func stringArg(args map[string]any, name string) (string, error) {
	v, ok := args[name].(string)
	if !ok || v == "" {
		return "", fmt.Errorf("missing required field '%s'", name)
	}
	return v, nil
}

// NewBeneficiaryTools returns the beneficiary specialist's tool set bound to
// the given store.
func NewBeneficiaryTools(mgr *account.BeneficiaryManager) []tool.Tool {
	listTool := tool.NewFunctionToolFromStruct(
		"list_beneficiaries",
		"List the beneficiaries for the given account id.",
		accountArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			return mgr.List(accountID), nil
		},
	)

	addTool := tool.NewFunctionToolFromStruct(
		"add_beneficiaries",
		"Add a beneficiary to the given account id.",
		addBeneficiaryArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			firstName, err := stringArg(args, "first_name")
			if err != nil {
				return nil, err
			}
			lastName, err := stringArg(args, "last_name")
			if err != nil {
				return nil, err
			}
			relationship, err := stringArg(args, "relationship")
			if err != nil {
				return nil, err
			}

			mgr.Add(accountID, firstName, lastName, relationship)

			return nil, nil
		},
	)

	deleteTool := tool.NewFunctionToolFromStruct(
		"delete_beneficiaries",
		"Delete a beneficiary by id from the given account id.",
		deleteBeneficiaryArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			beneficiaryID, err := stringArg(args, "beneficiary_id")
			if err != nil {
				return nil, err
			}

			toolCtx.LogInfo("tool.beneficiary.delete", "account_id", accountID, "beneficiary_id", beneficiaryID)

			return nil, mgr.Delete(accountID, beneficiaryID)
		},
	)

	return []tool.Tool{listTool, addTool, deleteTool}
}

// NewInvestmentTools returns the investment specialist's tool set bound to
// the given store.
func NewInvestmentTools(mgr *account.InvestmentManager) []tool.Tool {
	listTool := tool.NewFunctionToolFromStruct(
		"list_investments",
		"List the investment accounts and balances for the given account id.",
		accountArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			return mgr.List(accountID), nil
		},
	)

	openTool := tool.NewFunctionToolFromStruct(
		"open_investment",
		"Open a new investment with a name and opening balance on the given account id.",
		openInvestmentArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			name, err := stringArg(args, "name")
			if err != nil {
				return nil, err
			}
			balance, err := stringArg(args, "balance")
			if err != nil {
				return nil, err
			}

			mgr.Add(accountID, name, balance)

			return nil, nil
		},
	)

	closeTool := tool.NewFunctionToolFromStruct(
		"close_investment",
		"Close an investment by id on the given account id.",
		closeInvestmentArgs{},
		func(toolCtx *core.ToolContext, args map[string]any) (any, error) {
			accountID, err := scopeAccount(toolCtx, args)
			if err != nil {
				return nil, err
			}
			investmentID, err := stringArg(args, "investment_id")
			if err != nil {
				return nil, err
			}

			// A production close would settle positions rather than drop the record.
			return nil, mgr.Delete(accountID, investmentID)
		},
	)

	return []tool.Tool{listTool, openTool, closeTool}
}
