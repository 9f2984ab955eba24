package service_interfaces

import (
	"context"

	"github.com/api-sage/bank-teller/src/internal/adapter/console/models"
	"github.com/api-sage/bank-teller/src/internal/commons"
)

type TellerService interface {
	RegisterCustomer(ctx context.Context, req models.RegisterCustomerRequest) (commons.Response[models.RegisterCustomerResponse], error)
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (commons.Response[models.OpenAccountResponse], error)
	Deposit(ctx context.Context, req models.DepositRequest) (commons.Response[models.DepositResponse], error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (commons.Response[models.WithdrawResponse], error)
	Statement(ctx context.Context, accountNumber int64) (commons.Response[models.StatementResponse], error)
}
