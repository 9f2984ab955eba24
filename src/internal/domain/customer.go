package domain

import "time"

// Customer owns its accounts by number; accounts refer back by tax id. Keyed
// references keep lookups in the registries and avoid cyclic ownership.
type Customer struct {
	TaxID          string
	Name           string
	BirthDate      time.Time
	Address        string
	AccountNumbers []int64
}

func NewCustomer(taxID string, name string, birthDate time.Time, address string) *Customer {
	return &Customer{
		TaxID:     taxID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	}
}

// RegisterAccount links an account number to the customer. Numbers are unique
// by construction, so no de-duplication is needed.
func (c *Customer) RegisterAccount(number int64) {
	c.AccountNumbers = append(c.AccountNumbers, number)
}

// Execute applies a transaction to an account on the customer's behalf. The
// customer is the actor; the account is the ledger.
func (c *Customer) Execute(account *Account, transaction Transaction) bool {
	return transaction.Apply(account)
}
