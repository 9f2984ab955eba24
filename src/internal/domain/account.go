package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// dailyCounter tracks how many withdrawals were applied on a given calendar
// date. The date is compared on every attempt so a counter left over from a
// previous day never blocks a withdrawal.
type dailyCounter struct {
	day   time.Time
	count int
}

func (c dailyCounter) sameDay(now time.Time) bool {
	return c.day.Year() == now.Year() && c.day.YearDay() == now.YearDay()
}

// CheckingPolicy is the withdrawal policy of a checking account: the balance
// may go negative up to OverdraftLimit, and at most DailyWithdrawalLimit
// withdrawals are allowed per calendar date. A plain account carries no
// policy and has an implicit overdraft limit of zero.
type CheckingPolicy struct {
	OverdraftLimit       decimal.Decimal
	DailyWithdrawalLimit int

	withdrawals dailyCounter
}

// Account is the ledger unit: a balance plus the history of the transactions
// that produced it. The balance is only ever mutated through an applied
// Transaction.
type Account struct {
	Number     int64
	BranchCode string
	OwnerTaxID string
	Balance    decimal.Decimal
	History    *History
	Checking   *CheckingPolicy
}

func NewAccount(number int64, branchCode string, ownerTaxID string) *Account {
	return &Account{
		Number:     number,
		BranchCode: branchCode,
		OwnerTaxID: ownerTaxID,
		History:    NewHistory(),
	}
}

func NewCheckingAccount(number int64, branchCode string, ownerTaxID string, policy CheckingPolicy) *Account {
	account := NewAccount(number, branchCode, ownerTaxID)
	account.Checking = &policy
	return account
}

func (a *Account) overdraftAllowance() decimal.Decimal {
	if a.Checking == nil {
		return decimal.Zero
	}
	return a.Checking.OverdraftLimit
}

// Deposit applies a deposit of the given amount. Any positive amount
// succeeds.
func (a *Account) Deposit(amount decimal.Decimal, now time.Time) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}
	NewTransaction(TransactionKindDeposit, amount, now).Apply(a)
	return nil
}

// Withdraw applies a withdrawal of the given amount. For checking accounts
// the daily counter is rolled over and checked, then funds are checked
// against balance plus overdraft, before any money moves. A failed attempt
// leaves balance, history and counter untouched.
func (a *Account) Withdraw(amount decimal.Decimal, now time.Time) error {
	if amount.Sign() <= 0 {
		return ErrInvalidAmount
	}

	if a.Checking != nil {
		if !a.Checking.withdrawals.sameDay(now) {
			a.Checking.withdrawals = dailyCounter{day: now}
		}
		if a.Checking.withdrawals.count >= a.Checking.DailyWithdrawalLimit {
			return ErrDailyLimitExceeded
		}
		if amount.GreaterThan(a.Balance.Add(a.Checking.OverdraftLimit)) {
			return ErrInsufficientFunds
		}
		a.Checking.withdrawals.count++
	}

	if !NewTransaction(TransactionKindWithdrawal, amount, now).Apply(a) {
		return ErrInsufficientFunds
	}
	return nil
}

// WithdrawalsToday reports the current value of the daily counter, zero when
// the stored date is not today's. Plain accounts always report zero.
func (a *Account) WithdrawalsToday(now time.Time) int {
	if a.Checking == nil || !a.Checking.withdrawals.sameDay(now) {
		return 0
	}
	return a.Checking.withdrawals.count
}
