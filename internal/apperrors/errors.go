package apperrors

import (
	"errors"
)

// Every error below belongs to one of four kinds the transport layer cares
// about: invalid input, not found, conflict, insufficient funds. Handlers map
// them to HTTP status codes with errors.Is.
var (
	ErrPlayerIDRequired        = errors.New("playerId can not be null and empty")
	ErrAmountRequired          = errors.New("amount can not be null and empty")
	ErrTransactionIDRequired   = errors.New("transactionId can not be null and empty")
	ErrTransactionTypeRequired = errors.New("transactionType can not be null and empty")
	ErrAmountInvalid           = errors.New("please specify valid amount")
	ErrTransactionTypeInvalid  = errors.New("please specify valid transactionType: CREDIT or DEBIT")
	ErrTransactionIDInvalid    = errors.New("transaction id is not a valid identifier")

	ErrWalletNotFound      = errors.New("no wallet found for player")
	ErrNoWallets           = errors.New("no wallet found")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrNoTransactions      = errors.New("no transactions found for player")

	ErrWalletExists      = errors.New("wallet already exists for player")
	ErrTransactionExists = errors.New("transactionId already used")

	ErrInsufficientFunds = errors.New("no sufficient funds in account for withdrawal")
)

// IsInvalidInput reports whether err is a client input error.
func IsInvalidInput(err error) bool {
	for _, target := range []error{
		ErrPlayerIDRequired,
		ErrAmountRequired,
		ErrTransactionIDRequired,
		ErrTransactionTypeRequired,
		ErrAmountInvalid,
		ErrTransactionTypeInvalid,
		ErrTransactionIDInvalid,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsNotFound reports whether err means the requested record is absent.
func IsNotFound(err error) bool {
	for _, target := range []error{
		ErrWalletNotFound,
		ErrNoWallets,
		ErrTransactionNotFound,
		ErrNoTransactions,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// IsConflict reports whether err is a uniqueness violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrWalletExists) || errors.Is(err, ErrTransactionExists)
}
