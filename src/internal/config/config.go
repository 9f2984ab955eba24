package config

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

const defaultBranchCode = "0001"
const defaultOverdraftLimit = "1000.00"
const defaultDailyWithdrawalLimit = 3

// Config carries the account defaults applied to every checking account
// opened during the session. Values are read from the environment or an
// optional .env file.
type Config struct {
	BranchCode           string
	OverdraftLimit       decimal.Decimal
	DailyWithdrawalLimit int
}

func Load() (Config, error) {
	viper.AddConfigPath(".")
	viper.SetConfigName(".env")
	viper.SetConfigType("env")
	viper.AutomaticEnv()

	viper.SetDefault("BRANCH_CODE", defaultBranchCode)
	viper.SetDefault("OVERDRAFT_LIMIT", defaultOverdraftLimit)
	viper.SetDefault("DAILY_WITHDRAWAL_LIMIT", defaultDailyWithdrawalLimit)

	if err := viper.ReadInConfig(); err != nil {
		// The .env file is optional; only a malformed one is an error.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	branchCode := strings.TrimSpace(viper.GetString("BRANCH_CODE"))
	if branchCode == "" {
		branchCode = defaultBranchCode
	}

	overdraftLimit, err := decimal.NewFromString(strings.TrimSpace(viper.GetString("OVERDRAFT_LIMIT")))
	if err != nil {
		return Config{}, fmt.Errorf("parse OVERDRAFT_LIMIT: %w", err)
	}
	if overdraftLimit.IsNegative() {
		return Config{}, fmt.Errorf("OVERDRAFT_LIMIT cannot be negative")
	}

	dailyWithdrawalLimit := viper.GetInt("DAILY_WITHDRAWAL_LIMIT")
	if dailyWithdrawalLimit < 0 {
		return Config{}, fmt.Errorf("DAILY_WITHDRAWAL_LIMIT cannot be negative")
	}

	return Config{
		BranchCode:           branchCode,
		OverdraftLimit:       overdraftLimit,
		DailyWithdrawalLimit: dailyWithdrawalLimit,
	}, nil
}
