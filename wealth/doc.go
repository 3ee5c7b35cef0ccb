// Package wealth wires the wealth-management deployment: a supervisor agent
// routing customers to a beneficiary specialist and an investment specialist,
// each with typed tools over the shared account stores. The supervisor is the
// hub; each specialist links back to it so conversations can return.
package wealth
