// Command acctserver is a stdio MCP server exposing read-only account data
// (profile and standing) that wealthchat attaches to the supervisor agent.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

type accountRecord struct {
	AccountID string `json:"account_id"`
	Owner     string `json:"owner"`
	Tier      string `json:"tier"`
	Standing  string `json:"standing"`
	Since     string `json:"since"`
}

// accounts is the canned profile table served to the assistant.
var accounts = map[string]accountRecord{
	"42": {
		AccountID: "42",
		Owner:     "Jordan Rivers",
		Tier:      "premier",
		Standing:  "good",
		Since:     "2017-03-12",
	},
	"1001": {
		AccountID: "1001",
		Owner:     "Sam Okafor",
		Tier:      "standard",
		Standing:  "good",
		Since:     "2021-11-02",
	},
	"2002": {
		AccountID: "2002",
		Owner:     "Priya Natarajan",
		Tier:      "standard",
		Standing:  "restricted",
		Since:     "2019-06-30",
	},
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, in io.Reader, out io.Writer) error {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    "acctserver",
		Version: "0.1.0",
	}, nil)

	accountSchema := json.RawMessage(`{
		"type": "object",
		"properties": {
			"account_id": {"type": "string", "description": "The account to look up."}
		},
		"required": ["account_id"]
	}`)

	server.AddTool(&mcp.Tool{
		Name:        "get_account_profile",
		Description: "Return the profile (owner, tier, open date) for an account.",
		InputSchema: accountSchema,
	}, lookupHandler(func(rec accountRecord) any {
		return rec
	}))

	server.AddTool(&mcp.Tool{
		Name:        "get_account_standing",
		Description: "Return the current standing for an account.",
		InputSchema: accountSchema,
	}, lookupHandler(func(rec accountRecord) any {
		return map[string]string{"account_id": rec.AccountID, "standing": rec.Standing}
	}))

	transport := &mcp.IOTransport{
		Reader: io.NopCloser(in),
		Writer: nopWriteCloser{out},
	}

	return server.Run(ctx, transport)
}

// lookupHandler resolves the account_id argument against the canned table and
// renders the projected record as JSON text content.
func lookupHandler(project func(accountRecord) any) mcp.ToolHandler {
	return func(_ context.Context, req *mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		var params struct {
			AccountID string `json:"account_id"`
		}
		if len(req.Params.Arguments) > 0 {
			if err := json.Unmarshal(req.Params.Arguments, &params); err != nil {
				return errorResult(fmt.Sprintf("invalid arguments: %v", err)), nil
			}
		}

		rec, ok := accounts[params.AccountID]
		if !ok {
			return errorResult(fmt.Sprintf("account %q not found", params.AccountID)), nil
		}

		payload, err := json.Marshal(project(rec))
		if err != nil {
			return errorResult(err.Error()), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{&mcp.TextContent{Text: string(payload)}},
		}, nil
	}
}

func errorResult(msg string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{&mcp.TextContent{Text: msg}},
		IsError: true,
	}
}

// nopWriteCloser wraps an io.Writer as an io.WriteCloser with a no-op Close.
type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
