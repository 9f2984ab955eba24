package models

import (
	"errors"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BirthDateLayout is the date format customers are asked for at the prompt.
const BirthDateLayout = "02/01/2006"

type RegisterCustomerRequest struct {
	TaxID     string
	Name      string
	BirthDate string
	Address   string
}

func (r RegisterCustomerRequest) Validate() error {
	var errs []string

	if strings.TrimSpace(r.TaxID) == "" {
		errs = append(errs, "tax id is required")
	}
	if strings.TrimSpace(r.Name) == "" {
		errs = append(errs, "name is required")
	}

	birthDate := strings.TrimSpace(r.BirthDate)
	if birthDate == "" {
		errs = append(errs, "birth date is required")
	} else if _, err := time.Parse(BirthDateLayout, birthDate); err != nil {
		errs = append(errs, "birth date must be dd/mm/yyyy")
	}

	if strings.TrimSpace(r.Address) == "" {
		errs = append(errs, "address is required")
	}

	if len(errs) > 0 {
		return errors.New(strings.Join(errs, "; "))
	}
	return nil
}

type RegisterCustomerResponse struct {
	TaxID     string
	Name      string
	BirthDate string
	Address   string
}

type OpenAccountRequest struct {
	TaxID string
}

func (r OpenAccountRequest) Validate() error {
	if strings.TrimSpace(r.TaxID) == "" {
		return errors.New("tax id is required")
	}
	return nil
}

type OpenAccountResponse struct {
	AccountNumber int64
	BranchCode    string
	TaxID         string
}

type DepositRequest struct {
	AccountNumber int64
	Amount        decimal.Decimal
}

func (r DepositRequest) Validate() error {
	if r.AccountNumber < 1 {
		return errors.New("account number must be a positive integer")
	}
	return nil
}

type DepositResponse struct {
	AccountNumber int64
	Amount        string
	Balance       string
}

type WithdrawRequest struct {
	AccountNumber int64
	Amount        decimal.Decimal
}

func (r WithdrawRequest) Validate() error {
	if r.AccountNumber < 1 {
		return errors.New("account number must be a positive integer")
	}
	return nil
}

type WithdrawResponse struct {
	AccountNumber int64
	Amount        string
	Balance       string
}

type StatementResponse struct {
	HolderName    string
	TaxID         string
	BranchCode    string
	AccountNumber int64
	Lines         []string
	Balance       string
}
