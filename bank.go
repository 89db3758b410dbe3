package banking

import (
	"cmp"
	"iter"
	"slices"

	"github.com/quintans/faults"
)

// Bank mediates every operation between customers and their accounts.
//
// A Bank checks affordability before any mutation, so a failed operation
// leaves every balance and cash untouched. It is meant for a single caller:
// it holds no lock.
type Bank struct {
	serial    int                   // last serial number assigned
	directory map[*Person][]*Account // accounts by owner, in creation order
	customers []*Person             // owners in order of their first account
}

// NewBank creates a bank without any account.
func NewBank() *Bank {
	return &Bank{
		directory: make(map[*Person][]*Account),
	}
}

// CreateAccount opens a new account for customer, funded from the customer's
// cash with initialDeposit.
//
// It returns ErrCannotAffordNewAccount if the customer cannot pay the initial
// deposit. Serial numbers start at 1 and follow creation order.
func (b *Bank) CreateAccount(customer *Person, initialDeposit Money) (*Account, error) {
	if !customer.CanPay(initialDeposit) {
		return nil, faults.Wrap(ErrCannotAffordNewAccount)
	}
	b.serial++
	customer.Pay(initialDeposit)
	account := newAccount(b.serial, customer, initialDeposit)
	b.register(account)
	return account, nil
}

// register appends account to its owner's entry in the directory.
func (b *Bank) register(account *Account) {
	owner := account.Owner()
	if _, exists := b.directory[owner]; !exists {
		b.directory[owner] = make([]*Account, 0, 1)
		b.customers = append(b.customers, owner)
	}
	b.directory[owner] = append(b.directory[owner], account)
}

// GetAccountsForCustomer returns the accounts of customer in creation order.
// It returns an empty slice if customer has no account in this bank.
func (b *Bank) GetAccountsForCustomer(customer *Person) []*Account {
	accounts := b.directory[customer]
	// a copy, callers must not alter the directory.
	out := make([]*Account, len(accounts))
	copy(out, accounts)
	return out
}

// Deposit moves amount from the owner's cash into account.
//
// It returns ErrCannotAffordDeposit if the owner cannot pay amount.
func (b *Bank) Deposit(account *Account, amount Money) error {
	owner := account.Owner()
	if !owner.CanPay(amount) {
		return faults.Wrap(ErrCannotAffordDeposit)
	}
	owner.Pay(amount)
	account.Deposit(amount)
	return nil
}

// Withdraw moves amount from account into the owner's cash.
//
// It returns ErrBalanceTooLow if the balance is lower than amount.
func (b *Bank) Withdraw(account *Account, amount Money) error {
	if !account.CanWithdraw(amount) {
		return faults.Wrap(ErrBalanceTooLow)
	}
	account.Withdraw(amount)
	account.Owner().Receive(amount)
	return nil
}

// Transfer moves amount from one account to another, whoever owns them.
//
// It returns ErrBalanceTooLow if the balance of from is lower than amount.
// Transferring an account to itself leaves its balance unchanged.
func (b *Bank) Transfer(from, to *Account, amount Money) error {
	if !from.CanWithdraw(amount) {
		return faults.Wrap(ErrBalanceTooLow)
	}
	from.Withdraw(amount)
	to.Deposit(amount)
	return nil
}

// Customers iterates over the persons owning at least one account, in the
// order they opened their first one.
func (b *Bank) Customers() iter.Seq[*Person] {
	return func(yield func(*Person) bool) {
		for _, p := range b.customers {
			if !yield(p) {
				return
			}
		}
	}
}

// Accounts iterates over every account of the bank by serial number.
func (b *Bank) Accounts() iter.Seq[*Account] {
	return func(yield func(*Account) bool) {
		all := make([]*Account, 0, b.serial)
		for _, accounts := range b.directory {
			all = append(all, accounts...)
		}
		slices.SortFunc(all, func(x, y *Account) int { return cmp.Compare(x.serial, y.serial) })
		for _, a := range all {
			if !yield(a) {
				return
			}
		}
	}
}
