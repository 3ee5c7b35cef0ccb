package tool

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/logging"
)

type greetArgs struct {
	Name string `json:"name" description:"Who to greet"`
}

func newTestToolContext() *core.ToolContext {
	return core.NewToolContext(context.Background(), core.NewAccountContext(), "Tester", "fc-1", logging.NoOpLogger{})
}

func TestFunctionToolFromStructSchema(t *testing.T) {
	ft := NewFunctionToolFromStruct("greet", "Greets someone.", greetArgs{},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			return "hello " + args["name"].(string), nil
		},
	)

	assert.Equal(t, "greet", ft.Name())
	assert.Equal(t, "Greets someone.", ft.Description())

	schema := ft.Parameters()
	assert.Equal(t, "object", schema["type"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, props, "name")

	nameSchema, ok := props["name"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", nameSchema["type"])
	assert.Equal(t, "Who to greet", nameSchema["description"])

	assert.Contains(t, schema["required"], "name")
}

func TestFunctionToolCallSuccess(t *testing.T) {
	ft := NewFunctionToolFromStruct("greet", "Greets someone.", greetArgs{},
		func(_ *core.ToolContext, args map[string]any) (any, error) {
			return "hello " + args["name"].(string), nil
		},
	)

	out, err := ft.Call(newTestToolContext(), map[string]any{"name": "Ada"})
	require.NoError(t, err)
	assert.Equal(t, "hello Ada", out)
}

func TestFunctionToolValidation(t *testing.T) {
	called := false
	ft := NewFunctionToolFromStruct("greet", "Greets someone.", greetArgs{},
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			called = true
			return nil, nil
		},
	)

	tests := []struct {
		name string
		args map[string]any
	}{
		{name: "missing required field", args: map[string]any{}},
		{name: "wrong type", args: map[string]any{"name": 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ft.Call(newTestToolContext(), tt.args)
			require.Error(t, err)

			var toolErr *ToolError
			require.ErrorAs(t, err, &toolErr)
			assert.Equal(t, "VALIDATION_ERROR", toolErr.Code)
			assert.Equal(t, "greet", toolErr.Tool)
			assert.False(t, called)
		})
	}
}

func TestFunctionToolExecutionError(t *testing.T) {
	ft := NewFunctionToolFromStruct("greet", "Greets someone.", greetArgs{},
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			return nil, errors.New("downstream failure")
		},
	)

	_, err := ft.Call(newTestToolContext(), map[string]any{"name": "Ada"})
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "EXECUTION_ERROR", toolErr.Code)
	assert.Equal(t, "downstream failure", toolErr.Message)
}

// A *ToolError returned by the wrapped function keeps its custom code instead
// of being re-wrapped.
func TestFunctionToolErrorPassthrough(t *testing.T) {
	ft := NewFunctionToolFromStruct("greet", "Greets someone.", greetArgs{},
		func(_ *core.ToolContext, _ map[string]any) (any, error) {
			return nil, NewToolError("greet", "quota exceeded", "RATE_LIMITED")
		},
	)

	_, err := ft.Call(newTestToolContext(), map[string]any{"name": "Ada"})
	require.Error(t, err)

	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, "RATE_LIMITED", toolErr.Code)
}

func TestToolErrorMessage(t *testing.T) {
	withCode := NewToolError("greet", "boom", "EXECUTION_ERROR")
	assert.Equal(t, "tool error [EXECUTION_ERROR] in greet: boom", withCode.Error())

	withoutCode := &ToolError{Tool: "greet", Message: "boom"}
	assert.Equal(t, "tool error in greet: boom", withoutCode.Error())
}
