package banking

import "errors"

// Messages carried by the errors returned by the Bank.
const (
	CannotAffordNewAccountMessage = "Person cannot afford new account"
	CannotAffordDepositMessage    = "Person cannot afford the deposit"
	BalanceTooLowMessage          = "Not enough money in account"
)

// Failure kinds. Every error returned by a Bank operation matches exactly
// one of them with errors.Is.
var (
	ErrInsufficientFunds   = errors.New("insufficient funds")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

var (
	// ErrCannotAffordNewAccount is returned when a customer's cash is lower
	// than the initial deposit of a new account.
	ErrCannotAffordNewAccount error = &bankError{kind: ErrInsufficientFunds, msg: CannotAffordNewAccountMessage}
	// ErrCannotAffordDeposit is returned when an account owner's cash is lower
	// than the amount to deposit.
	ErrCannotAffordDeposit error = &bankError{kind: ErrInsufficientFunds, msg: CannotAffordDepositMessage}
	// ErrBalanceTooLow is returned when an account balance is lower than the
	// amount to withdraw or transfer.
	ErrBalanceTooLow error = &bankError{kind: ErrInsufficientBalance, msg: BalanceTooLowMessage}
)

// bankError is a failure with a fixed message belonging to a failure kind.
type bankError struct {
	kind error
	msg  string
}

func (e *bankError) Error() string { return e.msg }
func (e *bankError) Unwrap() error { return e.kind }
