package util

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sampleArgs struct {
	AccountID string  `json:"account_id" description:"The customer's account id"`
	Limit     int     `json:"limit,omitempty"`
	Note      *string `json:"note"`
	hidden    string  `json:"hidden"`
	Skipped   string  `json:"-"`
}

func TestCreateSchema(t *testing.T) {
	schema := CreateSchema(sampleArgs{})

	assert.Equal(t, "object", schema["type"])

	properties, ok := schema["properties"].(map[string]any)
	require.True(t, ok)

	accountID, ok := properties["account_id"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "string", accountID["type"])
	assert.Equal(t, "The customer's account id", accountID["description"])

	limit, ok := properties["limit"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "integer", limit["type"])
	assert.NotContains(t, limit, "description")

	// Unexported and json:"-" fields never surface.
	assert.NotContains(t, properties, "hidden")
	assert.NotContains(t, properties, "Skipped")

	// omitempty and pointer fields are optional.
	assert.Equal(t, []string{"account_id"}, schema["required"])
}

func TestCreateSchemaPointerAndNonStruct(t *testing.T) {
	viaPointer := CreateSchema(&sampleArgs{})
	assert.Equal(t, CreateSchema(sampleArgs{}), viaPointer)

	degenerate := CreateSchema("not a struct")
	assert.Equal(t, "object", degenerate["type"])
	assert.Empty(t, degenerate["properties"])
}

func TestValidateParameters(t *testing.T) {
	schema := CreateSchema(sampleArgs{})

	tests := []struct {
		name    string
		params  map[string]any
		wantErr string
	}{
		{
			name:   "valid",
			params: map[string]any{"account_id": "42", "limit": 10},
		},
		{
			name:   "json decoded integers arrive as float64",
			params: map[string]any{"account_id": "42", "limit": float64(10)},
		},
		{
			name:   "extra fields allowed",
			params: map[string]any{"account_id": "42", "unexpected": true},
		},
		{
			name:    "missing required field",
			params:  map[string]any{"limit": 10},
			wantErr: "account_id",
		},
		{
			name:    "wrong type",
			params:  map[string]any{"account_id": 42},
			wantErr: "account_id",
		},
		{
			name:    "fractional value for integer field",
			params:  map[string]any{"account_id": "42", "limit": 10.5},
			wantErr: "limit",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateParameters(tt.params, schema)
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)

			var vErr *ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.wantErr, vErr.Field)
		})
	}
}

func TestValidateParametersRequiredAsAnySlice(t *testing.T) {
	// Schemas decoded from JSON carry required as []any.
	schema := map[string]any{
		"type":       "object",
		"properties": map[string]any{"name": map[string]any{"type": "string"}},
		"required":   []any{"name"},
	}

	assert.NoError(t, ValidateParameters(map[string]any{"name": "x"}, schema))
	assert.Error(t, ValidateParameters(map[string]any{}, schema))
}
