// Package tool implements the typed tool subsystem that lets agents invoke
// structured operations (manager CRUD, external account-data lookups) with
// schema validated arguments and consistent error handling.
package tool

import (
	"fmt"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/internal/util"
)

// Tool defines the interface for operations an agent may invoke against
// account-scoped state.
//
// A tool belongs to exactly one agent's tool set at construction time. Read
// operations return a structured result (slice or map of records); mutating
// operations return nil. Errors from manager collaborators are surfaced to
// the engine, which records them as failed tool results rather than ending
// the conversation.
//
// Implementations should:
//   - Provide clear, descriptive snake_case names
//   - Define a proper JSON schema for parameters
//   - Be safe for sequential reuse across turns
type Tool interface {
	// Name returns the unique identifier for this tool.
	Name() string

	// Description returns a human-readable description provided to the
	// decision oracle to help it choose when to use the tool.
	Description() string

	// Parameters returns a JSON schema describing the expected arguments.
	Parameters() map[string]any

	// Call executes the tool with already-decoded arguments and a ToolContext
	// giving access to the conversation's shared account state.
	Call(toolCtx *core.ToolContext, args map[string]any) (any, error)
}

// ValidationError represents parameter validation errors with detailed information.
type ValidationError = util.ValidationError

// ToolError represents errors that occur during tool execution.
type ToolError struct {
	Tool    string `json:"tool"`              // Name of the tool that failed
	Message string `json:"message"`           // Error message
	Code    string `json:"code"`              // Error code for categorization
	Details any    `json:"details,omitempty"` // Additional error details
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
