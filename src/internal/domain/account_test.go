package domain_test

import (
	"errors"
	"testing"
	"time"

	"github.com/api-sage/bank-teller/src/internal/domain"
	"github.com/shopspring/decimal"
)

func newCheckingAccount(overdraft string, dailyLimit int) *domain.Account {
	return domain.NewCheckingAccount(1, "0001", "12345678900", domain.CheckingPolicy{
		OverdraftLimit:       decimal.RequireFromString(overdraft),
		DailyWithdrawalLimit: dailyLimit,
	})
}

func countByKind(account *domain.Account, kind domain.TransactionKind) int {
	n := 0
	for _, transaction := range account.History.InOrder() {
		if transaction.Kind == kind {
			n++
		}
	}
	return n
}

func TestDepositIncreasesBalanceAndRecordsHistory(t *testing.T) {
	account := domain.NewAccount(1, "0001", "12345678900")
	now := time.Now()

	if err := account.Deposit(decimal.RequireFromString("100.50"), now); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if !account.Balance.Equal(decimal.RequireFromString("100.50")) {
		t.Fatalf("expected balance 100.50, got %s", account.Balance)
	}
	if got := countByKind(account, domain.TransactionKindDeposit); got != 1 {
		t.Fatalf("expected exactly 1 deposit in history, got %d", got)
	}
}

func TestDepositRejectsNonPositiveAmount(t *testing.T) {
	account := domain.NewAccount(1, "0001", "12345678900")
	now := time.Now()

	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		if err := account.Deposit(amount, now); !errors.Is(err, domain.ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount for %s, got %v", amount, err)
		}
	}

	if !account.Balance.IsZero() {
		t.Fatalf("expected untouched balance, got %s", account.Balance)
	}
	if account.History.Len() != 0 {
		t.Fatalf("expected empty history, got %d entries", account.History.Len())
	}
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	account := newCheckingAccount("1000.00", 3)
	now := time.Now()

	if err := account.Withdraw(decimal.Zero, now); !errors.Is(err, domain.ErrInvalidAmount) {
		t.Fatalf("expected ErrInvalidAmount, got %v", err)
	}
	if got := account.WithdrawalsToday(now); got != 0 {
		t.Fatalf("expected daily counter untouched, got %d", got)
	}
}

func TestWithdrawPlainAccountCannotOverdraw(t *testing.T) {
	account := domain.NewAccount(1, "0001", "12345678900")
	now := time.Now()

	if err := account.Deposit(decimal.NewFromInt(50), now); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if err := account.Withdraw(decimal.RequireFromString("50.01"), now); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(50)) {
		t.Fatalf("expected untouched balance 50, got %s", account.Balance)
	}

	if err := account.Withdraw(decimal.NewFromInt(50), now); err != nil {
		t.Fatalf("expected full withdrawal to succeed, got %v", err)
	}
	if !account.Balance.IsZero() {
		t.Fatalf("expected zero balance, got %s", account.Balance)
	}
}

func TestWithdrawCheckingAccountCanUseOverdraft(t *testing.T) {
	account := newCheckingAccount("1000.00", 3)
	now := time.Now()

	if err := account.Deposit(decimal.NewFromInt(100), now); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	if err := account.Withdraw(decimal.NewFromInt(1100), now); err != nil {
		t.Fatalf("expected overdraft-covered withdrawal to succeed, got %v", err)
	}
	if !account.Balance.Equal(decimal.NewFromInt(-1000)) {
		t.Fatalf("expected balance -1000, got %s", account.Balance)
	}

	// The balance now sits exactly at the overdraft floor.
	if err := account.Withdraw(decimal.RequireFromString("0.01"), now); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds at the floor, got %v", err)
	}
}

func TestWithdrawBeyondOverdraftLeavesCounterUntouched(t *testing.T) {
	account := newCheckingAccount("1000.00", 3)
	now := time.Now()

	if err := account.Deposit(decimal.NewFromInt(100), now); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	over := decimal.RequireFromString("1100.01")
	if err := account.Withdraw(over, now); !errors.Is(err, domain.ErrInsufficientFunds) {
		t.Fatalf("expected ErrInsufficientFunds, got %v", err)
	}

	if got := account.WithdrawalsToday(now); got != 0 {
		t.Fatalf("expected daily counter untouched after rejected withdrawal, got %d", got)
	}
	if !account.Balance.Equal(decimal.NewFromInt(100)) {
		t.Fatalf("expected untouched balance 100, got %s", account.Balance)
	}
}

func TestWithdrawEnforcesDailyLimit(t *testing.T) {
	account := newCheckingAccount("1000.00", 3)
	now := time.Now()

	if err := account.Deposit(decimal.NewFromInt(100), now); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	one := decimal.RequireFromString("1.00")
	for i := 0; i < 3; i++ {
		if err := account.Withdraw(one, now); err != nil {
			t.Fatalf("withdrawal %d failed: %v", i+1, err)
		}
	}

	if err := account.Withdraw(one, now); !errors.Is(err, domain.ErrDailyLimitExceeded) {
		t.Fatalf("expected ErrDailyLimitExceeded on 4th withdrawal, got %v", err)
	}

	if got := countByKind(account, domain.TransactionKindWithdrawal); got != 3 {
		t.Fatalf("expected exactly 3 withdrawals in history, got %d", got)
	}
	if got := account.WithdrawalsToday(now); got != 3 {
		t.Fatalf("expected counter at 3, got %d", got)
	}
}

func TestDailyCounterResetsOnDateChange(t *testing.T) {
	account := newCheckingAccount("1000.00", 3)
	yesterday := time.Date(2026, 8, 26, 23, 0, 0, 0, time.UTC)
	today := time.Date(2026, 8, 27, 8, 0, 0, 0, time.UTC)

	if err := account.Deposit(decimal.NewFromInt(100), yesterday); err != nil {
		t.Fatalf("deposit failed: %v", err)
	}

	one := decimal.RequireFromString("1.00")
	for i := 0; i < 3; i++ {
		if err := account.Withdraw(one, yesterday); err != nil {
			t.Fatalf("withdrawal %d failed: %v", i+1, err)
		}
	}
	if err := account.Withdraw(one, yesterday); !errors.Is(err, domain.ErrDailyLimitExceeded) {
		t.Fatalf("expected limit reached on the same day, got %v", err)
	}

	// A new calendar date resets the counter before the limit check.
	if err := account.Withdraw(one, today); err != nil {
		t.Fatalf("expected first withdrawal of the new day to succeed, got %v", err)
	}
	if got := account.WithdrawalsToday(today); got != 1 {
		t.Fatalf("expected counter at 1 after rollover, got %d", got)
	}
}
