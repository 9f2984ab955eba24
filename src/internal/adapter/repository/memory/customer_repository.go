package memory

import (
	"context"
	"sync"

	"github.com/api-sage/bank-teller/src/internal/domain"
)

// CustomerRepository is the session-scoped customer directory, keyed by tax
// id. Nothing survives process exit.
type CustomerRepository struct {
	mu        sync.RWMutex
	customers map[string]*domain.Customer
}

func NewCustomerRepository() *CustomerRepository {
	return &CustomerRepository{
		customers: make(map[string]*domain.Customer),
	}
}

func (r *CustomerRepository) Create(_ context.Context, customer domain.Customer) (*domain.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.customers[customer.TaxID]; exists {
		return nil, domain.ErrDuplicateCustomer
	}

	stored := customer
	r.customers[customer.TaxID] = &stored
	return &stored, nil
}

func (r *CustomerRepository) GetByTaxID(_ context.Context, taxID string) (*domain.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	customer, exists := r.customers[taxID]
	if !exists {
		return nil, domain.ErrRecordNotFound
	}
	return customer, nil
}
