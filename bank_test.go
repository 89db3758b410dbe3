package banking

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// cashIs asserts that p can pay exactly want and not a cent more.
func cashIs(t *testing.T, p *Person, want float64) {
	t.Helper()
	assert.True(t, p.CanPay(M(want)), "should afford %v", want)
	assert.False(t, p.CanPay(M(want+0.01)), "should not afford more than %v", want)
	assert.True(t, p.Cash().Equal(M(want)), "cash is %v, want %v", p.Cash(), want)
}

func TestBank_CreateAccount(t *testing.T) {
	t.Run("with enough cash", func(t *testing.T) {
		bank := NewBank()
		person := NewPerson("alice", M(300))

		account, err := bank.CreateAccount(person, M(200))
		require.NoError(t, err)

		assert.True(t, account.Balance().Equal(M(200)))
		assert.Same(t, person, account.Owner())
		cashIs(t, person, 100)
	})

	t.Run("owner is the customer, not a lookalike", func(t *testing.T) {
		bank := NewBank()
		person := NewPerson("alice", M(300))
		other := NewPerson("alice", M(300))

		account, err := bank.CreateAccount(person, M(200))
		require.NoError(t, err)

		assert.Same(t, person, account.Owner())
		assert.NotSame(t, other, account.Owner())
		assert.Empty(t, bank.GetAccountsForCustomer(other))
	})

	t.Run("with exactly the cash", func(t *testing.T) {
		bank := NewBank()
		person := NewPerson("alice", M(200))

		_, err := bank.CreateAccount(person, M(200))
		require.NoError(t, err)
		cashIs(t, person, 0)
	})

	t.Run("without enough cash", func(t *testing.T) {
		bank := NewBank()
		person := NewPerson("alice", M(100))

		account, err := bank.CreateAccount(person, M(200))
		require.Error(t, err)

		assert.Nil(t, account)
		assert.ErrorIs(t, err, ErrCannotAffordNewAccount)
		assert.ErrorIs(t, err, ErrInsufficientFunds)
		assert.NotErrorIs(t, err, ErrInsufficientBalance)
		assert.Contains(t, err.Error(), CannotAffordNewAccountMessage)
		assert.Empty(t, bank.GetAccountsForCustomer(person))
		cashIs(t, person, 100)
	})
}

func TestBank_CreateAccount_SerialNumbers(t *testing.T) {
	bank := NewBank()
	person := NewPerson("alice", M(600))
	other := NewPerson("bob", M(600))

	a1, err := bank.CreateAccount(person, M(200))
	require.NoError(t, err)
	a2, err := bank.CreateAccount(other, M(200))
	require.NoError(t, err)
	_, err = bank.CreateAccount(other, M(1000)) // fails, consumes no serial
	require.Error(t, err)
	a3, err := bank.CreateAccount(person, M(200))
	require.NoError(t, err)

	assert.Equal(t, 1, a1.SerialNum())
	assert.Equal(t, 2, a2.SerialNum())
	assert.Equal(t, 3, a3.SerialNum())
}

func TestBank_GetAccountsForCustomer(t *testing.T) {
	bank := NewBank()
	person := NewPerson("alice", M(400))
	other := NewPerson("bob", M(400))

	a0, err := bank.CreateAccount(person, M(200))
	require.NoError(t, err)
	b0, err := bank.CreateAccount(other, M(100))
	require.NoError(t, err)
	a1, err := bank.CreateAccount(person, M(200))
	require.NoError(t, err)

	assert.Equal(t, []*Account{a0, a1}, bank.GetAccountsForCustomer(person))
	assert.Equal(t, []*Account{b0}, bank.GetAccountsForCustomer(other))

	stranger := NewPerson("carol", M(400))
	got := bank.GetAccountsForCustomer(stranger)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)

	// the result is a copy.
	got = bank.GetAccountsForCustomer(person)
	got[0] = nil
	assert.Same(t, a0, bank.GetAccountsForCustomer(person)[0])
}

func TestBank_Deposit(t *testing.T) {
	testCases := []struct {
		name        string
		cash        float64
		deposit     float64
		wantErr     error
		wantBalance float64
		wantCash    float64
	}{
		{name: "with enough cash", cash: 400, deposit: 100, wantBalance: 300, wantCash: 100},
		{name: "cash after opening is enough", cash: 250, deposit: 50, wantBalance: 250, wantCash: 0},
		{name: "without enough cash", cash: 250, deposit: 100, wantErr: ErrCannotAffordDeposit, wantBalance: 200, wantCash: 50},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank := NewBank()
			person := NewPerson("alice", M(tc.cash))
			account, err := bank.CreateAccount(person, M(200))
			require.NoError(t, err)

			err = bank.Deposit(account, M(tc.deposit))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrInsufficientFunds)
				assert.Contains(t, err.Error(), CannotAffordDepositMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance().Equal(M(tc.wantBalance)), "balance %v, want %v", account.Balance(), tc.wantBalance)
			cashIs(t, person, tc.wantCash)
		})
	}
}

func TestBank_Withdraw(t *testing.T) {
	testCases := []struct {
		name        string
		amount      float64
		wantErr     error
		wantBalance float64
		wantCash    float64
	}{
		{name: "with enough balance", amount: 100, wantBalance: 100, wantCash: 300},
		{name: "whole balance", amount: 200, wantBalance: 0, wantCash: 400},
		{name: "without enough balance", amount: 300, wantErr: ErrBalanceTooLow, wantBalance: 200, wantCash: 200},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank := NewBank()
			person := NewPerson("alice", M(400))
			account, err := bank.CreateAccount(person, M(200))
			require.NoError(t, err)

			err = bank.Withdraw(account, M(tc.amount))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.ErrorIs(t, err, ErrInsufficientBalance)
				assert.Contains(t, err.Error(), BalanceTooLowMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, account.Balance().Equal(M(tc.wantBalance)), "balance %v, want %v", account.Balance(), tc.wantBalance)
			cashIs(t, person, tc.wantCash)
		})
	}
}

func TestBank_Transfer(t *testing.T) {
	testCases := []struct {
		name     string
		amount   float64
		wantErr  error
		wantFrom float64
		wantTo   float64
	}{
		{name: "with enough balance", amount: 100, wantFrom: 100, wantTo: 300},
		{name: "whole balance", amount: 200, wantFrom: 0, wantTo: 400},
		{name: "without enough balance", amount: 300, wantErr: ErrBalanceTooLow, wantFrom: 200, wantTo: 200},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			bank := NewBank()
			person := NewPerson("alice", M(400))
			from, err := bank.CreateAccount(person, M(200))
			require.NoError(t, err)
			to, err := bank.CreateAccount(person, M(200))
			require.NoError(t, err)

			err = bank.Transfer(from, to, M(tc.amount))
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				assert.Contains(t, err.Error(), BalanceTooLowMessage)
			} else {
				assert.NoError(t, err)
			}
			assert.True(t, from.Balance().Equal(M(tc.wantFrom)), "from %v, want %v", from.Balance(), tc.wantFrom)
			assert.True(t, to.Balance().Equal(M(tc.wantTo)), "to %v, want %v", to.Balance(), tc.wantTo)
			cashIs(t, person, 0)
		})
	}
}

func TestBank_Transfer_BetweenCustomers(t *testing.T) {
	bank := NewBank()
	alice := NewPerson("alice", M(200))
	bob := NewPerson("bob", M(200))
	a, err := bank.CreateAccount(alice, M(200))
	require.NoError(t, err)
	b, err := bank.CreateAccount(bob, M(200))
	require.NoError(t, err)

	require.NoError(t, bank.Transfer(a, b, M(100)))

	assert.True(t, a.Balance().Equal(M(100)))
	assert.True(t, b.Balance().Equal(M(300)))
	// cash never moves in a transfer.
	cashIs(t, alice, 0)
	cashIs(t, bob, 0)
}

func TestBank_Transfer_ToItself(t *testing.T) {
	bank := NewBank()
	person := NewPerson("alice", M(200))
	a, err := bank.CreateAccount(person, M(200))
	require.NoError(t, err)

	require.NoError(t, bank.Transfer(a, a, M(150)))
	assert.True(t, a.Balance().Equal(M(200)))

	assert.ErrorIs(t, bank.Transfer(a, a, M(250)), ErrBalanceTooLow)
}

func TestBank_DepositThenWithdraw_RestoresState(t *testing.T) {
	amounts := []float64{0, 0.01, 12.34, 50, 100}
	for _, amount := range amounts {
		bank := NewBank()
		person := NewPerson("alice", M(300))
		account, err := bank.CreateAccount(person, M(200))
		require.NoError(t, err)

		require.NoError(t, bank.Deposit(account, M(amount)))
		require.NoError(t, bank.Withdraw(account, M(amount)))

		assert.True(t, account.Balance().Equal(M(200)), "amount %v: balance %v", amount, account.Balance())
		cashIs(t, person, 100)
	}
}

func TestBank_Errors_AreDistinct(t *testing.T) {
	all := []error{ErrCannotAffordNewAccount, ErrCannotAffordDeposit, ErrBalanceTooLow}
	for i, a := range all {
		for j, b := range all {
			assert.Equal(t, i == j, errors.Is(a, b), "%v vs %v", a, b)
		}
	}
	assert.EqualError(t, ErrCannotAffordNewAccount, "Person cannot afford new account")
	assert.EqualError(t, ErrCannotAffordDeposit, "Person cannot afford the deposit")
	assert.EqualError(t, ErrBalanceTooLow, "Not enough money in account")
}

func TestBank_Customers_And_Accounts(t *testing.T) {
	bank := NewBank()
	alice := NewPerson("alice", M(1000))
	bob := NewPerson("bob", M(1000))

	a1, _ := bank.CreateAccount(bob, M(10))
	a2, _ := bank.CreateAccount(alice, M(10))
	a3, _ := bank.CreateAccount(bob, M(10))

	var customers []*Person
	for p := range bank.Customers() {
		customers = append(customers, p)
	}
	assert.Equal(t, []*Person{bob, alice}, customers)

	var accounts []*Account
	for a := range bank.Accounts() {
		accounts = append(accounts, a)
	}
	assert.Equal(t, []*Account{a1, a2, a3}, accounts)
}
