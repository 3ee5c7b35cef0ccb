package core

import (
	"context"
	"fmt"

	"github.com/rross/oai-wealth-management/logging"
)

// ToolContext provides the constrained surface a tool implementation sees:
// the ambient cancellation context, the conversation's shared AccountContext,
// the issuing agent's name, the function call id and a logger.
type ToolContext struct {
	ctx            context.Context
	account        *AccountContext
	agentName      string
	functionCallID string

	*loggerAdapter
}

// NewToolContext constructs a tool context bound to one tool invocation.
func NewToolContext(ctx context.Context, account *AccountContext, agentName, functionCallID string, logger logging.Logger) *ToolContext {
	return &ToolContext{
		ctx:            ctx,
		account:        account,
		agentName:      agentName,
		functionCallID: functionCallID,
		loggerAdapter:  newLoggerAdapter(logger),
	}
}

// Context returns the context associated with the tool invocation.
func (tc *ToolContext) Context() context.Context { return tc.ctx }

// Account returns the conversation's shared account context.
func (tc *ToolContext) Account() *AccountContext { return tc.account }

// AgentName returns the agent that issued the tool call.
func (tc *ToolContext) AgentName() string { return tc.agentName }

// FunctionCallID returns the id correlating the call with its result.
func (tc *ToolContext) FunctionCallID() string { return tc.functionCallID }

// Logger returns the logger associated with the tool invocation.
func (tc *ToolContext) Logger() logging.Logger { return tc.loggerAdapter.Logger() }

// Validate performs a structural sanity check of the context.
func (tc *ToolContext) Validate() error {
	if tc.ctx == nil || tc.account == nil || tc.functionCallID == "" {
		return fmt.Errorf("invalid ToolContext")
	}
	return nil
}
