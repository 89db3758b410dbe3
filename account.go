package banking

// Account is a bank account owned by a single Person.
//
// Accounts are created by the Bank, which is responsible for checking
// affordability before calling Withdraw or Deposit.
type Account struct {
	serial  int
	owner   *Person
	balance Money
}

func newAccount(serial int, owner *Person, balance Money) *Account {
	return &Account{serial: serial, owner: owner, balance: balance}
}

// SerialNum returns the serial number assigned by the bank.
func (a *Account) SerialNum() int { return a.serial }

// Owner returns the person owning the account.
func (a *Account) Owner() *Person { return a.owner }

// Balance returns the money held in the account.
func (a *Account) Balance() Money { return a.balance }

// CanWithdraw reports whether amount is less than or equal to the balance.
func (a *Account) CanWithdraw(amount Money) bool {
	return amount.Amount().LessThanOrEqual(a.balance.Amount())
}

// Withdraw takes amount from the balance, without any check.
func (a *Account) Withdraw(amount Money) {
	a.balance = NewMoney(a.balance.Amount().Sub(amount.Amount()))
}

// Deposit adds amount to the balance, without any check.
func (a *Account) Deposit(amount Money) {
	a.balance = NewMoney(a.balance.Amount().Add(amount.Amount()))
}
