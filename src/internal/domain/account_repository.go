package domain

import "context"

type AccountRepository interface {
	// Create stores the account under the next sequential account number,
	// starting at 1. Numbers are never reused.
	Create(ctx context.Context, account Account) (*Account, error)
	GetByNumber(ctx context.Context, number int64) (*Account, error)
}
