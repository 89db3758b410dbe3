// Package banking provides a minimal in-memory bank.
//
// Persons hold cash. A Bank opens accounts for them, funded from their cash,
// and moves money between cash and accounts:
//   - CreateAccount pays an initial deposit from the customer's cash.
//   - Deposit moves cash from the owner into the account.
//   - Withdraw moves an account balance back to the owner's cash.
//   - Transfer moves a balance between two accounts, whoever owns them.
//
// Every operation is checked before anything changes: a rejected operation
// returns one of ErrCannotAffordNewAccount, ErrCannotAffordDeposit or
// ErrBalanceTooLow, and leaves all cash and balances as they were.
//
// Operations can also be written as a JSONL Script and replayed on a Bank,
// producing an Outcome and a Report of the final state. This is what the
// `bank` command-line tool is built on.
package banking
