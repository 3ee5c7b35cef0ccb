// Package anthropic provides an oracle.Oracle implementation backed by the
// Anthropic Messages API.
package anthropic

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/shared/constant"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/oracle"
)

// Options configures the Anthropic oracle adapter (model id, temperature,
// max tokens, API key).
type Options struct {
	Model       anthropic.Model
	Temperature float64
	MaxTokens   int64
	APIKey      string
}

// Oracle wraps the Anthropic Messages API behind the oracle.Oracle interface.
type Oracle struct {
	client *anthropic.Client
	opts   Options
}

// New creates a new Anthropic oracle using the official client.
func New(optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	var clientOpts []option.RequestOption
	if opts.APIKey != "" {
		clientOpts = append(clientOpts, option.WithAPIKey(opts.APIKey))
	}

	client := anthropic.NewClient(clientOpts...)

	return &Oracle{client: &client, opts: opts}
}

// NewFromClient creates a new Anthropic oracle from an existing client.
func NewFromClient(client *anthropic.Client, optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:       anthropic.ModelClaude3_5Sonnet20241022,
		Temperature: 0.7,
		MaxTokens:   4096,
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	return &Oracle{client: client, opts: opts}
}

// Decide submits the agent's instructions, the full history and the tool
// surface to the Messages API and decodes the reply into actions.
func (o *Oracle) Decide(ctx context.Context, req oracle.Request) ([]core.Action, error) {
	params := anthropic.MessageNewParams{
		Model:       o.opts.Model,
		Messages:    buildMessages(req.History),
		MaxTokens:   o.opts.MaxTokens,
		Temperature: anthropic.Float(o.opts.Temperature),
		System: []anthropic.TextBlockParam{
			{Text: req.Agent.Instructions()},
		},
	}

	if defs := oracle.AgentToolDefinitions(req.Agent); len(defs) > 0 {
		params.Tools = buildTools(defs)
	}

	resp, err := o.client.Messages.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("anthropic api error: %w", err)
	}

	var actions []core.Action
	for _, block := range resp.Content {
		switch block.Type {
		case "text":
			if text := block.AsText().Text; text != "" {
				actions = append(actions, core.EmitMessage{Text: text})
			}
		case "tool_use":
			toolBlock := block.AsToolUse()
			args := ""
			if toolBlock.Input != nil {
				if argsBytes, err := json.Marshal(toolBlock.Input); err == nil {
					args = string(argsBytes)
				}
			}
			actions = append(actions, oracle.DecodeToolCall(toolBlock.ID, toolBlock.Name, args))
		}
	}

	return actions, nil
}

// buildMessages converts history items to Anthropic message format. Tool use
// blocks and their matching results already interleave in history order.
func buildMessages(history []core.Item) []anthropic.MessageParam {
	var messages []anthropic.MessageParam

	for _, item := range history {
		switch it := item.(type) {
		case core.UserMessageItem:
			messages = append(messages, anthropic.NewUserMessage(anthropic.NewTextBlock(it.Text)))
		case core.AgentMessageItem:
			messages = append(messages, anthropic.NewAssistantMessage(anthropic.NewTextBlock(it.Text)))
		case core.ToolCallItem:
			messages = append(messages, anthropic.NewAssistantMessage(
				anthropic.NewToolUseBlock(it.CallID, it.Args, it.Tool),
			))
		case core.ToolResultItem:
			messages = append(messages, anthropic.NewUserMessage(
				anthropic.NewToolResultBlock(it.CallID, renderResult(it), it.Failed()),
			))
		case core.HandoffItem:
			messages = append(messages, anthropic.NewAssistantMessage(
				anthropic.NewTextBlock(fmt.Sprintf("Conversation transferred from %s to %s.", it.From, it.To)),
			))
		case core.FailureItem:
			messages = append(messages, anthropic.NewAssistantMessage(
				anthropic.NewTextBlock(fmt.Sprintf("[%s] %s", it.Kind, it.Message)),
			))
		}
	}

	return messages
}

// buildTools converts shared tool definitions to the Anthropic tool format.
func buildTools(defs []oracle.ToolDefinition) []anthropic.ToolUnionParam {
	tools := make([]anthropic.ToolUnionParam, len(defs))

	for i, def := range defs {
		inputSchema := anthropic.ToolInputSchemaParam{
			Type: constant.Object("object"),
		}

		if def.Parameters != nil {
			if properties, exists := def.Parameters["properties"]; exists {
				inputSchema.Properties = properties
			}
			switch required := def.Parameters["required"].(type) {
			case []string:
				inputSchema.Required = required
			case []any:
				for _, r := range required {
					if s, ok := r.(string); ok {
						inputSchema.Required = append(inputSchema.Required, s)
					}
				}
			}
		}

		tools[i] = anthropic.ToolUnionParamOfTool(inputSchema, def.Name)
	}

	return tools
}

// renderResult serializes a tool outcome for the model.
func renderResult(it core.ToolResultItem) string {
	if it.Failed() {
		return fmt.Sprintf("error: %s", it.Err)
	}
	if it.Output == nil {
		return "ok"
	}
	payload, err := json.Marshal(it.Output)
	if err != nil {
		return fmt.Sprintf("%v", it.Output)
	}
	return string(payload)
}
