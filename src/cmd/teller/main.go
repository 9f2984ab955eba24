package main

import (
	"context"
	"log"
	"os"

	"github.com/api-sage/bank-teller/src/internal/adapter/console"
	"github.com/api-sage/bank-teller/src/internal/adapter/repository/memory"
	"github.com/api-sage/bank-teller/src/internal/config"
	"github.com/api-sage/bank-teller/src/internal/logger"
	"github.com/api-sage/bank-teller/src/internal/usecase/services"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	if err := logger.Init(); err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer logger.Sync()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	customerRepo := memory.NewCustomerRepository()
	accountRepo := memory.NewAccountRepository()

	teller := services.NewTellerService(
		customerRepo,
		accountRepo,
		cfg.BranchCode,
		cfg.OverdraftLimit,
		cfg.DailyWithdrawalLimit,
	)

	menu := console.NewMenu(os.Stdin, os.Stdout, teller)
	if err := menu.Run(context.Background()); err != nil {
		log.Fatalf("run session: %v", err)
	}
}
