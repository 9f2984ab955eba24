package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/api-sage/bank-teller/src/internal/adapter/console/models"
	"github.com/api-sage/bank-teller/src/internal/commons"
	"github.com/api-sage/bank-teller/src/internal/usecase/service_interfaces"
	"github.com/shopspring/decimal"
)

const menuText = `
1. Deposit
2. Withdraw
3. Statement
4. Register user
5. Open account
6. Exit

Choose an option: `

// Menu drives the interactive session. It owns all console reads and writes;
// parsed values go to the teller service and coded outcomes come back to be
// rendered as user-facing lines.
type Menu struct {
	in      *bufio.Reader
	out     io.Writer
	service service_interfaces.TellerService
}

func NewMenu(in io.Reader, out io.Writer, service service_interfaces.TellerService) *Menu {
	return &Menu{
		in:      bufio.NewReader(in),
		out:     out,
		service: service,
	}
}

// Run loops over menu turns until the user exits or input ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		fmt.Fprint(m.out, menuText)

		choice, err := m.readLine()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		switch choice {
		case "1":
			m.deposit(ctx)
		case "2":
			m.withdraw(ctx)
		case "3":
			m.statement(ctx)
		case "4":
			m.registerCustomer(ctx)
		case "5":
			m.openAccount(ctx)
		case "6":
			fmt.Fprintln(m.out, "Goodbye")
			return nil
		default:
			fmt.Fprintln(m.out, "invalid option")
		}
	}
}

func (m *Menu) deposit(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := m.promptAmount()
	if !ok {
		return
	}

	resp, _ := m.service.Deposit(ctx, models.DepositRequest{AccountNumber: number, Amount: amount})
	if resp.Success {
		fmt.Fprintln(m.out, "Deposit successful")
		fmt.Fprintf(m.out, "Balance: %s\n", resp.Data.Balance)
		return
	}
	fmt.Fprintln(m.out, failureLine(resp))
}

func (m *Menu) withdraw(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}
	amount, ok := m.promptAmount()
	if !ok {
		return
	}

	resp, _ := m.service.Withdraw(ctx, models.WithdrawRequest{AccountNumber: number, Amount: amount})
	if resp.Success {
		fmt.Fprintln(m.out, "Withdrawal successful")
		fmt.Fprintf(m.out, "Balance: %s\n", resp.Data.Balance)
		return
	}
	fmt.Fprintln(m.out, failureLine(resp))
}

func (m *Menu) statement(ctx context.Context) {
	number, ok := m.promptAccountNumber()
	if !ok {
		return
	}

	resp, _ := m.service.Statement(ctx, number)
	if !resp.Success {
		fmt.Fprintln(m.out, failureLine(resp))
		return
	}

	statement := resp.Data
	fmt.Fprintln(m.out, "===================== Statement =====================")
	fmt.Fprintf(m.out, "Name: %s\n", statement.HolderName)
	fmt.Fprintf(m.out, "Tax id: %s\n", statement.TaxID)
	fmt.Fprintf(m.out, "Branch: %s\n", statement.BranchCode)
	fmt.Fprintf(m.out, "Account number: %d\n", statement.AccountNumber)
	fmt.Fprintln(m.out, "===================== Transactions ==================")
	for _, line := range statement.Lines {
		fmt.Fprintf(m.out, "-> %s\n", line)
	}
	fmt.Fprintf(m.out, "Balance: %s\n", statement.Balance)
}

func (m *Menu) registerCustomer(ctx context.Context) {
	taxID, err := m.promptString("Tax id: ")
	if err != nil {
		return
	}
	name, err := m.promptString("Name: ")
	if err != nil {
		return
	}
	birthDate, err := m.promptString("Birth date (dd/mm/yyyy): ")
	if err != nil {
		return
	}
	address, err := m.promptString("Address: ")
	if err != nil {
		return
	}

	resp, _ := m.service.RegisterCustomer(ctx, models.RegisterCustomerRequest{
		TaxID:     taxID,
		Name:      name,
		BirthDate: birthDate,
		Address:   address,
	})
	if resp.Success {
		fmt.Fprintln(m.out, "Customer registered successfully")
		return
	}
	fmt.Fprintln(m.out, failureLine(resp))
}

func (m *Menu) openAccount(ctx context.Context) {
	taxID, err := m.promptString("Tax id: ")
	if err != nil {
		return
	}

	resp, _ := m.service.OpenAccount(ctx, models.OpenAccountRequest{TaxID: taxID})
	if resp.Success {
		fmt.Fprintln(m.out, "Account created successfully")
		fmt.Fprintf(m.out, "Branch: %s\n", resp.Data.BranchCode)
		fmt.Fprintf(m.out, "Account number: %d\n", resp.Data.AccountNumber)
		return
	}
	fmt.Fprintln(m.out, failureLine(resp))
}

func (m *Menu) promptAccountNumber() (int64, bool) {
	raw, err := m.promptString("Account number: ")
	if err != nil {
		return 0, false
	}
	number, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid account number")
		return 0, false
	}
	return number, true
}

func (m *Menu) promptAmount() (decimal.Decimal, bool) {
	raw, err := m.promptString("Amount: ")
	if err != nil {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		fmt.Fprintln(m.out, "Invalid amount")
		return decimal.Zero, false
	}
	return amount, true
}

func (m *Menu) promptString(prompt string) (string, error) {
	fmt.Fprint(m.out, prompt)
	return m.readLine()
}

func (m *Menu) readLine() (string, error) {
	line, err := m.in.ReadString('\n')
	if err != nil && line == "" {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

func failureLine[T any](resp commons.Response[T]) string {
	switch resp.Code {
	case commons.CodeInvalidAmount:
		return "Invalid amount"
	case commons.CodeInsufficientFunds:
		return "Insufficient funds"
	case commons.CodeDailyLimitExceeded:
		return "Daily withdrawal limit reached"
	case commons.CodeAccountNotFound:
		return "Account not found"
	case commons.CodeCustomerNotFound:
		return "Customer not found"
	case commons.CodeDuplicateCustomer:
		return "Customer already registered"
	}
	if len(resp.Errors) > 0 {
		return resp.Errors[0]
	}
	return "Operation failed"
}
