package account

import (
	"fmt"
	"sync"

	"github.com/rross/oai-wealth-management/internal/util"
)

// Beneficiary is one beneficiary record on an account.
type Beneficiary struct {
	ID           string `json:"id"`
	FirstName    string `json:"first_name"`
	LastName     string `json:"last_name"`
	Relationship string `json:"relationship"`
}

// BeneficiaryManager stores beneficiaries per account. It is safe for
// concurrent access; conversations touching the same account serialize here.
type BeneficiaryManager struct {
	mu        sync.RWMutex
	byAccount map[string][]Beneficiary
}

// NewBeneficiaryManager constructs an empty store.
func NewBeneficiaryManager() *BeneficiaryManager {
	return &BeneficiaryManager{byAccount: make(map[string][]Beneficiary)}
}

// Add appends a new beneficiary with a freshly generated id and returns it.
func (m *BeneficiaryManager) Add(accountID, firstName, lastName, relationship string) Beneficiary {
	m.mu.Lock()
	defer m.mu.Unlock()

	b := Beneficiary{
		ID:           util.NewID(),
		FirstName:    firstName,
		LastName:     lastName,
		Relationship: relationship,
	}
	m.byAccount[accountID] = append(m.byAccount[accountID], b)

	return b
}

// List returns the account's beneficiaries in insertion order. An account
// with no records yields an empty slice, not an error.
func (m *BeneficiaryManager) List(accountID string) []Beneficiary {
	m.mu.RLock()
	defer m.mu.RUnlock()

	records := m.byAccount[accountID]
	out := make([]Beneficiary, len(records))
	copy(out, records)

	return out
}

// Delete removes the beneficiary with the given id from the account. It is
// an error when no matching record exists.
func (m *BeneficiaryManager) Delete(accountID, beneficiaryID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	records := m.byAccount[accountID]
	for i, b := range records {
		if b.ID == beneficiaryID {
			m.byAccount[accountID] = append(records[:i:i], records[i+1:]...)
			return nil
		}
	}

	return fmt.Errorf("beneficiary %q not found on account %q", beneficiaryID, accountID)
}
