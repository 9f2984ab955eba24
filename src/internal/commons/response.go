package commons

// Reason codes reported alongside failed responses. The presentation layer
// turns these into user-facing lines; the services never print.
const (
	CodeInvalidAmount      = "INVALID_AMOUNT"
	CodeInsufficientFunds  = "INSUFFICIENT_FUNDS"
	CodeDailyLimitExceeded = "DAILY_LIMIT_EXCEEDED"
	CodeAccountNotFound    = "ACCOUNT_NOT_FOUND"
	CodeCustomerNotFound   = "CUSTOMER_NOT_FOUND"
	CodeDuplicateCustomer  = "DUPLICATE_CUSTOMER"
	CodeValidationFailed   = "VALIDATION_FAILED"
)

type Response[T any] struct {
	Success bool     `json:"success"`
	Code    string   `json:"code,omitempty"`
	Message string   `json:"message"`
	Data    *T       `json:"data,omitempty"`
	Errors  []string `json:"errors,omitempty"`
}

func SuccessResponse[T any](message string, data T) Response[T] {
	return Response[T]{
		Success: true,
		Message: message,
		Data:    &data,
	}
}

func ErrorResponse[T any](code string, message string, errors ...string) Response[T] {
	return Response[T]{
		Success: false,
		Code:    code,
		Message: message,
		Errors:  errors,
	}
}
