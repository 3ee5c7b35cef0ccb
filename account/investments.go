package account

import (
	"fmt"
	"sync"

	"github.com/rross/oai-wealth-management/internal/util"
)

// Investment is one investment-account record on a customer account.
// Balance stays a string end to end; the system reports it, it never
// computes with it.
type Investment struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Balance string `json:"balance"`
}

// InvestmentManager stores investment accounts per customer account. It is
// safe for concurrent access.
type InvestmentManager struct {
	mu        sync.RWMutex
	byAccount map[string][]Investment
}

// NewInvestmentManager constructs an empty store.
func NewInvestmentManager() *InvestmentManager {
	return &InvestmentManager{byAccount: make(map[string][]Investment)}
}

// Add opens a new investment with a freshly generated id and returns it.
func (m *InvestmentManager) Add(accountID, name, balance string) Investment {
	m.mu.Lock()
	defer m.mu.Unlock()

	inv := Investment{
		ID:      util.NewID(),
		Name:    name,
		Balance: balance,
	}
	m.byAccount[accountID] = append(m.byAccount[accountID], inv)

	return inv
}

// List returns the account's investments in insertion order. An account with
// no records yields an empty slice, not an error.
func (m *InvestmentManager) List(accountID string) []Investment {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.byAccount[accountID]
	out := make([]Investment, len(records))
	copy(out, records)

	return out
}

// Delete removes the investment with the given id from the account. It is an
// error when no matching record exists.
func (m *InvestmentManager) Delete(accountID, investmentID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.byAccount[accountID]
	for i, inv := range records {
		if inv.ID == investmentID {
			m.byAccount[accountID] = append(records[:i:i], records[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("investment %q not found on account %q", investmentID, accountID)
}
