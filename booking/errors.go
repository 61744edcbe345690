package booking

import (
	"fmt"
	"math/big"

	"handylink-tui/helpers"

	"github.com/pkg/errors"
)

// User-facing messages
const (
	ValidationMessage        = "Please fill in all fields and connect a wallet."
	ConnectFailedMessage     = "Failed to connect to wallet. Please try again."
	TransactionFailedMessage = "Transaction failed. Please try again."
)

var (
	// ErrValidation is returned when a booking is submitted with missing
	// fields or without a connected wallet
	ErrValidation = errors.New("booking validation failed")
	// ErrInsufficientBalance is returned when the wallet cannot cover the deposit
	ErrInsufficientBalance = errors.New("insufficient balance for deposit")
)

// Currency describes the native currency of the target chain
type Currency struct {
	Symbol   string
	Decimals uint8
	Chain    string // display name of the chain, used in messages
}

// InsufficientBalanceError carries the numbers behind ErrInsufficientBalance
type InsufficientBalanceError struct {
	Balance  *big.Int
	Required *big.Int
	Currency Currency
}

func (e *InsufficientBalanceError) Error() string {
	return fmt.Sprintf("You need to make a deposit of at least %s to proceed. Please fund your wallet address on %s.",
		helpers.FormatToken(e.Required, e.Currency.Decimals, e.Currency.Symbol), e.Currency.Chain)
}

// Is lets errors.Is match the sentinel
func (e *InsufficientBalanceError) Is(target error) bool {
	return target == ErrInsufficientBalance
}

// CheckDeposit compares a wallet balance against the required deposit.
// Both values are in the smallest unit of the native currency.
func CheckDeposit(balance, required *big.Int, cur Currency) error {
	if required == nil || required.Sign() <= 0 {
		return nil
	}
	if balance == nil || balance.Cmp(required) < 0 {
		return &InsufficientBalanceError{Balance: balance, Required: required, Currency: cur}
	}
	return nil
}
