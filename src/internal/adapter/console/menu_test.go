package console_test

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/api-sage/bank-teller/src/internal/adapter/console"
	"github.com/api-sage/bank-teller/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-teller/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newMenuService() *services.TellerService {
	return services.NewTellerService(
		memory.NewCustomerRepository(),
		memory.NewAccountRepository(),
		"0001",
		decimal.RequireFromString("1000.00"),
		3,
	)
}

func runSession(t *testing.T, script string) string {
	t.Helper()

	var out bytes.Buffer
	menu := console.NewMenu(strings.NewReader(script), &out, newMenuService())
	if err := menu.Run(context.Background()); err != nil {
		t.Fatalf("session failed: %v", err)
	}
	return out.String()
}

func TestMenuFullSession(t *testing.T) {
	script := strings.Join([]string{
		"9", // invalid option
		"4", "11122233344", "Ada Lovelace", "10/12/1815", "1 Analytical Row",
		"4", "11122233344", "Ada Lovelace", "10/12/1815", "1 Analytical Row", // duplicate
		"5", "11122233344",
		"1", "1", "100.50",
		"2", "1", "2000", // beyond balance + overdraft
		"2", "1", "50.25",
		"1", "abc", // unparseable account number
		"3", "1",
		"3", "9", // unknown account
		"6",
	}, "\n") + "\n"

	output := runSession(t, script)

	for _, want := range []string{
		"invalid option",
		"Customer registered successfully",
		"Customer already registered",
		"Account created successfully",
		"Account number: 1",
		"Deposit successful",
		"Insufficient funds",
		"Withdrawal successful",
		"Invalid account number",
		"Name: Ada Lovelace",
		"Deposit - 100.50",
		"Withdrawal - 50.25",
		"Balance: 50.25",
		"Account not found",
		"Goodbye",
	} {
		if !strings.Contains(output, want) {
			t.Fatalf("expected output to contain %q, got:\n%s", want, output)
		}
	}

	if strings.Index(output, "Deposit - 100.50") > strings.Index(output, "Withdrawal - 50.25") {
		t.Fatal("expected statement lines in application order")
	}
}

func TestMenuDailyLimitMessage(t *testing.T) {
	script := strings.Join([]string{
		"4", "11122233344", "Ada Lovelace", "10/12/1815", "1 Analytical Row",
		"5", "11122233344",
		"1", "1", "100",
		"2", "1", "1",
		"2", "1", "1",
		"2", "1", "1",
		"2", "1", "1", // 4th withdrawal of the day
		"6",
	}, "\n") + "\n"

	output := runSession(t, script)

	if strings.Count(output, "Withdrawal successful") != 3 {
		t.Fatalf("expected exactly 3 successful withdrawals, got:\n%s", output)
	}
	if !strings.Contains(output, "Daily withdrawal limit reached") {
		t.Fatalf("expected daily limit message, got:\n%s", output)
	}
}

func TestMenuStopsAtEndOfInput(t *testing.T) {
	output := runSession(t, "9\n")

	if !strings.Contains(output, "invalid option") {
		t.Fatalf("expected invalid option message, got:\n%s", output)
	}
}
