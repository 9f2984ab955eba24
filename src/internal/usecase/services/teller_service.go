package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/api-sage/bank-teller/src/internal/adapter/console/models"
	"github.com/api-sage/bank-teller/src/internal/commons"
	"github.com/api-sage/bank-teller/src/internal/domain"
	"github.com/api-sage/bank-teller/src/internal/logger"
	"github.com/shopspring/decimal"
)

// TellerService routes session operations to the customer and account
// directories and translates domain outcomes into coded responses for the
// presentation layer.
type TellerService struct {
	customerRepo         domain.CustomerRepository
	accountRepo          domain.AccountRepository
	branchCode           string
	overdraftLimit       decimal.Decimal
	dailyWithdrawalLimit int
}

func NewTellerService(
	customerRepo domain.CustomerRepository,
	accountRepo domain.AccountRepository,
	branchCode string,
	overdraftLimit decimal.Decimal,
	dailyWithdrawalLimit int,
) *TellerService {
	return &TellerService{
		customerRepo:         customerRepo,
		accountRepo:          accountRepo,
		branchCode:           strings.TrimSpace(branchCode),
		overdraftLimit:       overdraftLimit,
		dailyWithdrawalLimit: dailyWithdrawalLimit,
	}
}

func (s *TellerService) RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error) {
	logger.Info("teller service register customer request", logger.Fields{
		"taxId": req.TaxID,
	})

	if err := req.Validate(); err != nil {
		logger.Error("teller service register customer validation failed", err, nil)
		return commons.ErrorResponse[models.RegisterCustomerResponse](commons.CodeValidationFailed, "validation failed", err.Error()), err
	}

	birthDate, err := time.Parse(models.BirthDateLayout, strings.TrimSpace(req.BirthDate))
	if err != nil {
		return commons.ErrorResponse[models.RegisterCustomerResponse](commons.CodeValidationFailed, "validation failed", "birth date must be dd/mm/yyyy"), err
	}

	customer := domain.NewCustomer(strings.TrimSpace(req.TaxID), strings.TrimSpace(req.Name), birthDate, strings.TrimSpace(req.Address))

	created, err := s.customerRepo.Create(ctx, *customer)
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateCustomer) {
			return commons.ErrorResponse[models.RegisterCustomerResponse](commons.CodeDuplicateCustomer, "customer already registered"), err
		}
		logger.Error("teller service register customer repository failed", err, logger.Fields{
			"taxId": customer.TaxID,
		})
		return commons.ErrorResponse[models.RegisterCustomerResponse](commons.CodeValidationFailed, "failed to register customer", "Unable to register customer right now"), err
	}

	logger.Info("teller service register customer success", logger.Fields{
		"taxId": created.TaxID,
	})

	return commons.SuccessResponse("customer registered successfully", models.RegisterCustomerResponse{
		TaxID:     created.TaxID,
		Name:      created.Name,
		BirthDate: created.BirthDate.Format(models.BirthDateLayout),
		Address:   created.Address,
	}), nil
}

func (s *TellerService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error) {
	logger.Info("teller service open account request", logger.Fields{
		"taxId": req.TaxID,
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.OpenAccountResponse](commons.CodeValidationFailed, "validation failed", err.Error()), err
	}

	taxID := strings.TrimSpace(req.TaxID)
	customer, err := s.customerRepo.GetByTaxID(ctx, taxID)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.OpenAccountResponse](commons.CodeCustomerNotFound, "customer not found"), err
		}
		logger.Error("teller service open account customer lookup failed", err, logger.Fields{
			"taxId": taxID,
		})
		return commons.ErrorResponse[models.OpenAccountResponse](commons.CodeValidationFailed, "failed to open account", "Unable to open account right now"), err
	}

	account := domain.Account{
		BranchCode: s.branchCode,
		OwnerTaxID: customer.TaxID,
		History:    domain.NewHistory(),
		Checking: &domain.CheckingPolicy{
			OverdraftLimit:       s.overdraftLimit,
			DailyWithdrawalLimit: s.dailyWithdrawalLimit,
		},
	}

	created, err := s.accountRepo.Create(ctx, account)
	if err != nil {
		logger.Error("teller service open account repository failed", err, logger.Fields{
			"taxId": taxID,
		})
		return commons.ErrorResponse[models.OpenAccountResponse](commons.CodeValidationFailed, "failed to open account", "Unable to open account right now"), err
	}

	customer.RegisterAccount(created.Number)

	logger.Info("teller service open account success", logger.Fields{
		"taxId":         taxID,
		"accountNumber": created.Number,
	})

	return commons.SuccessResponse("account opened successfully", models.OpenAccountResponse{
		AccountNumber: created.Number,
		BranchCode:    created.BranchCode,
		TaxID:         created.OwnerTaxID,
	}), nil
}

func (s *TellerService) Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.DepositResponse], error) {
	logger.Info("teller service deposit request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.DepositResponse](commons.CodeValidationFailed, "validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.DepositResponse](commons.CodeAccountNotFound, "account not found"), err
		}
		logger.Error("teller service deposit account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.DepositResponse](commons.CodeValidationFailed, "failed to process deposit", "Unable to process deposit right now"), err
	}

	if err := account.Deposit(req.Amount, time.Now()); err != nil {
		return commons.ErrorResponse[models.DepositResponse](commons.CodeInvalidAmount, "deposit rejected", err.Error()), err
	}

	logger.Info("teller service deposit success", logger.Fields{
		"accountNumber": account.Number,
		"amount":        req.Amount.String(),
	})

	return commons.SuccessResponse("deposit applied successfully", models.DepositResponse{
		AccountNumber: account.Number,
		Amount:        req.Amount.StringFixed(2),
		Balance:       account.Balance.StringFixed(2),
	}), nil
}

func (s *TellerService) Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.WithdrawResponse], error) {
	logger.Info("teller service withdraw request", logger.Fields{
		"accountNumber": req.AccountNumber,
		"amount":        req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		return commons.ErrorResponse[models.WithdrawResponse](commons.CodeValidationFailed, "validation failed", err.Error()), err
	}

	account, err := s.accountRepo.GetByNumber(ctx, req.AccountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.WithdrawResponse](commons.CodeAccountNotFound, "account not found"), err
		}
		logger.Error("teller service withdraw account lookup failed", err, logger.Fields{
			"accountNumber": req.AccountNumber,
		})
		return commons.ErrorResponse[models.WithdrawResponse](commons.CodeValidationFailed, "failed to process withdrawal", "Unable to process withdrawal right now"), err
	}

	if err := account.Withdraw(req.Amount, time.Now()); err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidAmount):
			return commons.ErrorResponse[models.WithdrawResponse](commons.CodeInvalidAmount, "withdrawal rejected", err.Error()), err
		case errors.Is(err, domain.ErrDailyLimitExceeded):
			return commons.ErrorResponse[models.WithdrawResponse](commons.CodeDailyLimitExceeded, "withdrawal rejected", err.Error()), err
		default:
			return commons.ErrorResponse[models.WithdrawResponse](commons.CodeInsufficientFunds, "withdrawal rejected", err.Error()), err
		}
	}

	logger.Info("teller service withdraw success", logger.Fields{
		"accountNumber": account.Number,
		"amount":        req.Amount.String(),
	})

	return commons.SuccessResponse("withdrawal applied successfully", models.WithdrawResponse{
		AccountNumber: account.Number,
		Amount:        req.Amount.StringFixed(2),
		Balance:       account.Balance.StringFixed(2),
	}), nil
}

func (s *TellerService) Statement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error) {
	logger.Info("teller service statement request", logger.Fields{
		"accountNumber": accountNumber,
	})

	account, err := s.accountRepo.GetByNumber(ctx, accountNumber)
	if err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			return commons.ErrorResponse[models.StatementResponse](commons.CodeAccountNotFound, "account not found"), err
		}
		logger.Error("teller service statement account lookup failed", err, logger.Fields{
			"accountNumber": accountNumber,
		})
		return commons.ErrorResponse[models.StatementResponse](commons.CodeValidationFailed, "failed to produce statement", "Unable to produce statement right now"), err
	}

	holderName := ""
	taxID := account.OwnerTaxID
	customer, err := s.customerRepo.GetByTaxID(ctx, account.OwnerTaxID)
	if err == nil {
		holderName = customer.Name
		taxID = customer.TaxID
	}

	transactions := account.History.InOrder()
	lines := make([]string, 0, len(transactions))
	for _, transaction := range transactions {
		lines = append(lines, transaction.Describe())
	}

	return commons.SuccessResponse("statement produced successfully", models.StatementResponse{
		HolderName:    holderName,
		TaxID:         taxID,
		BranchCode:    account.BranchCode,
		AccountNumber: account.Number,
		Lines:         lines,
		Balance:       account.Balance.StringFixed(2),
	}), nil
}
