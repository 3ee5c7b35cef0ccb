package core

// AccountContext is the mutable state shared by reference across a whole
// conversation and every tool invocation within it. It holds the account the
// conversation currently operates on.
//
// Every account-scoped tool overwrites AccountID with the account named in
// its arguments before performing its operation, so the context always
// reflects the most recent tool invocation regardless of which agent issued
// it ("last write wins"). This lets later tools, possibly running after a
// handoff, refer to the same account without the user re-specifying it.
//
// A conversation is driven by one goroutine at a time, so AccountContext
// carries no locking; it must not be shared between conversations.
type AccountContext struct {
	accountID string
}

// NewAccountContext returns an empty context with no active account.
func NewAccountContext() *AccountContext {
	return &AccountContext{}
}

// AccountID returns the account named in the most recent account-scoped tool
// call, or the empty string when no tool has run yet.
func (c *AccountContext) AccountID() string { return c.accountID }

// SetAccountID records id as the active account.
func (c *AccountContext) SetAccountID(id string) { c.accountID = id }

// HasAccount reports whether an account id has been recorded.
func (c *AccountContext) HasAccount() bool { return c.accountID != "" }
