package wealth

import (
	"github.com/rross/oai-wealth-management/account"
	"github.com/rross/oai-wealth-management/agent"
	"github.com/rross/oai-wealth-management/tool"
)

// Agent names of the deployment. The supervisor owns every fresh conversation.
const (
	SupervisorAgentName  = "SupervisorAgent"
	BeneficiaryAgentName = "BeneficiaryAgent"
	InvestmentAgentName  = "InvestmentAgent"
)

const supervisorInstructions = `You are the supervisor agent for ABC Wealth Management. Greet the customer,
figure out what they need and route them to the right specialist: transfer to
BeneficiaryAgent for anything about account beneficiaries, and to
InvestmentAgent for anything about investment accounts. Answer general account
questions yourself using your account tools. Always ask for the customer's
account id when you do not have one.`

const beneficiaryInstructions = `You are the beneficiary specialist for ABC Wealth Management. You can list,
add and delete beneficiaries on a customer's account. Every operation needs
the customer's account id; ask for it if you do not have one. Transfer back to
SupervisorAgent for anything outside beneficiary management.`

const investmentInstructions = `You are the investment specialist for ABC Wealth Management. You can list a
customer's investment accounts and balances, open new investments and close
existing ones. Every operation needs the customer's account id; ask for it if
you do not have one. Transfer back to SupervisorAgent for anything outside
investment management.`

// BuildRegistry constructs the sealed hub-and-spoke agent graph: the
// supervisor links forward to both specialists, then each specialist gets its
// reciprocal edge back to the supervisor. Tools discovered from an external
// provider (supervisorTools) attach to the supervisor only, matching the
// deployment's tool topology.
func BuildRegistry(
	beneficiaries *account.BeneficiaryManager,
	investments *account.InvestmentManager,
	supervisorTools ...tool.Tool,
) (*agent.Registry, error) {
	beneficiaryAgent := agent.New(BeneficiaryAgentName, func(o *agent.Options) {
		o.Description = "Handles listing, adding and deleting account beneficiaries."
		o.Instructions = beneficiaryInstructions
		o.Tools = NewBeneficiaryTools(beneficiaries)
	})

	investmentAgent := agent.New(InvestmentAgentName, func(o *agent.Options) {
		o.Description = "Handles listing, opening and closing investment accounts."
		o.Instructions = investmentInstructions
		o.Tools = NewInvestmentTools(investments)
	})

	supervisorAgent := agent.New(SupervisorAgentName, func(o *agent.Options) {
		o.Description = "Routes customers to the right specialist and answers general account questions."
		o.Instructions = supervisorInstructions
		o.Tools = supervisorTools
		o.Handoffs = []string{BeneficiaryAgentName, InvestmentAgentName}
	})

	registry := agent.NewRegistry()
	if err := registry.Register(supervisorAgent, beneficiaryAgent, investmentAgent); err != nil {
		return nil, err
	}

	// Reciprocal phase: specialists hand back to the hub.
	if err := registry.Link(BeneficiaryAgentName, SupervisorAgentName); err != nil {
		return nil, err
	}
	if err := registry.Link(InvestmentAgentName, SupervisorAgentName); err != nil {
		return nil, err
	}

	if err := registry.Seal(); err != nil {
		return nil, err
	}

	return registry, nil
}
