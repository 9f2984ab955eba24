package domain

import "context"

type CustomerRepository interface {
	// Create stores the customer keyed by tax id, failing with
	// ErrDuplicateCustomer when the tax id is already registered.
	Create(ctx context.Context, customer Customer) (*Customer, error)
	GetByTaxID(ctx context.Context, taxID string) (*Customer, error)
}
