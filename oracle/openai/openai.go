// Package openai provides an oracle.Oracle implementation backed by the
// OpenAI Chat Completions API (with function/tool calling). It adapts the
// conversation history into the SDK's message format, exposes the owning
// agent's tools plus the transfer pseudo-tool, and decodes the completion
// back into ordered actions.
package openai

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openai/openai-go"

	"github.com/rross/oai-wealth-management/core"
	"github.com/rross/oai-wealth-management/oracle"
)

// Options configure the OpenAI oracle adapter. Fields mirror a subset of
// Chat Completion parameters intentionally kept minimal.
type Options struct {
	Model               string
	Temperature         float64
	MaxCompletionTokens int64
}

// Oracle wraps the OpenAI Chat Completions API behind the oracle.Oracle interface.
type Oracle struct {
	client *openai.Client
	opts   Options
}

// New creates a new OpenAI oracle using the official client (API key from
// the environment).
func New(optFns ...func(o *Options)) *Oracle {
	client := openai.NewClient()
	return NewFromClient(&client, optFns...)
}

// NewFromClient creates a new OpenAI oracle from an existing client.
func NewFromClient(client *openai.Client, optFns ...func(o *Options)) *Oracle {
	opts := Options{
		Model:               openai.ChatModelGPT4oMini,
		Temperature:         0.7,
		MaxCompletionTokens: 4096,
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Oracle{client: client, opts: opts}
}

// Decide submits the agent's instructions, the full history and the tool
// surface to the Chat Completions API and decodes the reply into actions.
func (o *Oracle) Decide(ctx context.Context, req oracle.Request) ([]core.Action, error) {
	params := openai.ChatCompletionNewParams{
		Messages:            buildMessages(req),
		Model:               o.opts.Model,
		Temperature:         openai.Float(o.opts.Temperature),
		MaxCompletionTokens: openai.Int(o.opts.MaxCompletionTokens),
	}

	if defs := oracle.AgentToolDefinitions(req.Agent); len(defs) > 0 {
		tools := make([]openai.ChatCompletionToolParam, len(defs))
		for i, def := range defs {
			tools[i] = openai.ChatCompletionToolParam{
				Type: "function",
				Function: openai.FunctionDefinitionParam{
					Name:        def.Name,
					Description: openai.String(def.Description),
					Parameters:  def.Parameters,
				},
			}
		}
		params.Tools = tools
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("openai api error: %w", err)
	}
	if len(resp.Choices) == 0 {
		return nil, fmt.Errorf("no choices returned")
	}

	msg := resp.Choices[0].Message

	actions := make([]core.Action, 0, len(msg.ToolCalls)+1)
	if msg.Content != "" {
		actions = append(actions, core.EmitMessage{Text: msg.Content})
	}
	for _, tc := range msg.ToolCalls {
		actions = append(actions, oracle.DecodeToolCall(tc.ID, tc.Function.Name, tc.Function.Arguments))
	}

	return actions, nil
}

// buildMessages converts the history into OpenAI chat messages. Tool calls
// and their results already interleave correctly in history, so each
// ToolCallItem becomes an assistant tool-call message and the following
// ToolResultItem becomes the matching tool message.
func buildMessages(req oracle.Request) []openai.ChatCompletionMessageParamUnion {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(req.History)+1)
	messages = append(messages, openai.SystemMessage(req.Agent.Instructions()))

	for _, item := range req.History {
		switch it := item.(type) {
		case core.UserMessageItem:
			messages = append(messages, openai.UserMessage(it.Text))
		case core.AgentMessageItem:
			messages = append(messages, openai.AssistantMessage(it.Text))
		case core.ToolCallItem:
			args, _ := json.Marshal(it.Args)
			messages = append(messages, openai.ChatCompletionMessageParamUnion{
				OfAssistant: &openai.ChatCompletionAssistantMessageParam{
					Role: "assistant",
					ToolCalls: []openai.ChatCompletionMessageToolCallParam{{
						ID:   it.CallID,
						Type: "function",
						Function: openai.ChatCompletionMessageToolCallFunctionParam{
							Name:      it.Tool,
							Arguments: string(args),
						},
					}},
				},
			})
		case core.ToolResultItem:
			messages = append(messages, openai.ToolMessage(renderResult(it), it.CallID))
		case core.HandoffItem:
			messages = append(messages, openai.AssistantMessage(fmt.Sprintf("Conversation transferred from %s to %s.", it.From, it.To)))
		case core.FailureItem:
			messages = append(messages, openai.AssistantMessage(fmt.Sprintf("[%s] %s", it.Kind, it.Message)))
		}
	}

	return messages
}

// renderResult serializes a tool outcome for the model: the error text on
// failure, a JSON payload (or bare acknowledgment) on success.
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
