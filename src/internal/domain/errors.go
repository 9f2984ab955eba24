package domain

import "errors"

var ErrRecordNotFound = errors.New("Record not found")
var ErrDuplicateCustomer = errors.New("Customer already registered")
var ErrInvalidAmount = errors.New("Amount must be greater than zero")
var ErrInsufficientFunds = errors.New("Insufficient funds")
var ErrDailyLimitExceeded = errors.New("Daily withdrawal limit reached")
