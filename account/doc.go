// Package account holds the in-memory record stores the domain tools operate
// on: beneficiaries and investment accounts, keyed by account id. The stores
// are shared across conversations and serialize concurrent mutation; record
// ids are freshly generated per insertion and unique within an account.
package account
