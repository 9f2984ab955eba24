package memory

import (
	"context"
	"sync"

	"github.com/api-sage/bank-teller/src/internal/domain"
)

// AccountRepository is the session-scoped account directory. Account numbers
// are issued sequentially starting at 1 and never reused.
type AccountRepository struct {
	mu         sync.RWMutex
	accounts   map[int64]*domain.Account
	nextNumber int64
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{
		accounts:   make(map[int64]*domain.Account),
		nextNumber: 1,
	}
}

func (r *AccountRepository) Create(_ context.Context, account domain.Account) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account.Number = r.nextNumber
	r.nextNumber++
	if account.History == nil {
		account.History = domain.NewHistory()
	}

	stored := account
	r.accounts[stored.Number] = &stored
	return &stored, nil
}

func (r *AccountRepository) GetByNumber(_ context.Context, number int64) (*domain.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	account, exists := r.accounts[number]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}
	return account, nil
}
