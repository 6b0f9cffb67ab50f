package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Wallet registry (WAL) ----

func ErrWalletNotFound() *AppError {
	return New("WAL_001", "Wallet not found", http.StatusNotFound)
}

// ErrDuplicateWalletID is an internal-invariant violation: identifier
// generation collided or a session was inserted twice. The client sees a
// generic internal error; the collision detail stays in the logs.
func ErrDuplicateWalletID(err error) *AppError {
	return Wrap("WAL_002", "Internal server error", http.StatusInternalServerError, err)
}

func ErrInvalidWalletID() *AppError {
	return New("WAL_003", "Invalid wallet id", http.StatusBadRequest)
}

// ---- Balance (BAL) ----

// ErrMalformedBalance is an internal-invariant violation: the protocol
// client reported a negative or inconsistent amount.
func ErrMalformedBalance(err error) *AppError {
	return Wrap("BAL_001", "Internal server error", http.StatusInternalServerError, err)
}

// ---- Transactions (TXN) ----

func ErrInsufficientFunds() *AppError {
	return New("TXN_001", "Insufficient offchain balance", http.StatusPaymentRequired)
}

func ErrInvalidAddress() *AppError {
	return New("TXN_002", "Invalid Ark address", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("TXN_003", "Invalid amount", http.StatusBadRequest)
}

func ErrSettlementFailed(err error) *AppError {
	return Wrap("TXN_004", "Settlement failed", http.StatusBadGateway, err)
}

func ErrSendFailed(err error) *AppError {
	return Wrap("TXN_005", "Offchain send failed", http.StatusBadGateway, err)
}

func ErrNothingToSettle() *AppError {
	return New("TXN_006", "No boarding outputs or VTXOs can be settled at the moment", http.StatusUnprocessableEntity)
}

// ---- Faucet (FCT) ----

func ErrFaucetUnavailable(err error) *AppError {
	return Wrap("FCT_001", "Faucet unavailable", http.StatusServiceUnavailable, err)
}

// ---- System & infrastructure (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}

// ErrBusy signals lock contention on a wallet; safe to retry.
func ErrBusy(err error) *AppError {
	return Wrap("SYS_002", "Wallet is busy, retry later", http.StatusServiceUnavailable, err)
}

// ErrTimeout signals an operation deadline exceeded; state unchanged.
func ErrTimeout(err error) *AppError {
	return Wrap("SYS_003", "Operation timed out", http.StatusGatewayTimeout, err)
}

func ErrAdapterUnavailable(err error) *AppError {
	return Wrap("SYS_004", "Ark server unavailable", http.StatusBadGateway, err)
}

// Validation returns a TXN_003-style validation error with a custom message.
func Validation(message string) *AppError {
	return New("TXN_003", message, http.StatusBadRequest)
}
