package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionKind string

const (
	TransactionKindDeposit    TransactionKind = "DEPOSIT"
	TransactionKindWithdrawal TransactionKind = "WITHDRAWAL"
)

// Transaction is an immutable record of a single balance movement. It is
// created and applied in the same step, so the timestamp doubles as the
// application time.
type Transaction struct {
	ID        uuid.UUID
	Kind      TransactionKind
	Amount    decimal.Decimal
	Timestamp time.Time
}

func NewTransaction(kind TransactionKind, amount decimal.Decimal, now time.Time) Transaction {
	return Transaction{
		ID:        uuid.New(),
		Kind:      kind,
		Amount:    amount,
		Timestamp: now,
	}
}

// Apply mutates the account balance and records the transaction in its
// history. A withdrawal that the balance (plus any overdraft allowance)
// cannot cover returns false and leaves the account untouched.
func (t Transaction) Apply(account *Account) bool {
	switch t.Kind {
	case TransactionKindDeposit:
		account.Balance = account.Balance.Add(t.Amount)
		account.History.Append(t)
		return true
	case TransactionKindWithdrawal:
		if t.Amount.GreaterThan(account.Balance.Add(account.overdraftAllowance())) {
			return false
		}
		account.Balance = account.Balance.Sub(t.Amount)
		account.History.Append(t)
		return true
	}
	return false
}

func (t Transaction) Describe() string {
	label := "Deposit"
	if t.Kind == TransactionKindWithdrawal {
		label = "Withdrawal"
	}
	return fmt.Sprintf("%s - %s - %s", t.Timestamp.Format("02/01/2006 15:04:05"), label, t.Amount.StringFixed(2))
}
