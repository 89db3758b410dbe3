package banking

import (
	"errors"
	"fmt"
	"iter"
	"strings"

	"github.com/quintans/faults"
)

// OpType identifies a script operation.
type OpType string

// Script operations.
const (
	OpPerson   OpType = "person"
	OpOpen     OpType = "open"
	OpDeposit  OpType = "deposit"
	OpWithdraw OpType = "withdraw"
	OpTransfer OpType = "transfer"
)

// Script errors. They abort a replay, unlike the bank's business errors.
var (
	ErrUnknownPerson  = errors.New("unknown person")
	ErrUnknownAccount = errors.New("unknown account")
	ErrDuplicateName  = errors.New("duplicate name")
	ErrInvalidStep    = errors.New("invalid step")
)

// Operation is a single step of a Script, applied to a bank during a replay.
type Operation interface {
	What() OpType // What returns the operation type (e.g. "open", "deposit").
	// Validate checks the operation fields, independently of any bank state.
	Validate() error
	apply(r *Outcome) error
}

type baseOp struct {
	Op   OpType `json:"op"`             // Op identifies the operation.
	Memo string `json:"memo,omitempty"` // Memo is a free note, ignored by the replay.
}

func (o baseOp) What() OpType { return o.Op }

// checkAmount rejects negative amounts. The bank itself accepts them, a script
// is input from a user.
func checkAmount(field string, m Money) error {
	if m.IsNegative() {
		return fmt.Errorf("%s must not be negative: %v", field, m)
	}
	return nil
}

// checkLabel rejects an empty label, and labels that would break a markdown
// table row.
func checkLabel(field, label string) error {
	if label == "" {
		return fmt.Errorf("%s is missing", field)
	}
	if strings.ContainsAny(label, "|\r\n") {
		return fmt.Errorf("%s %q must not contain '|' or line breaks", field, label)
	}
	return nil
}

// Declare introduces a customer and the cash they start with.
type Declare struct {
	baseOp
	Name string `json:"name"`
	Cash Money  `json:"cash"`
}

// NewDeclare creates a Declare operation.
func NewDeclare(name string, cash Money) Declare {
	return Declare{baseOp: baseOp{Op: OpPerson}, Name: name, Cash: cash}
}

func (o Declare) Validate() error {
	return errors.Join(checkLabel("name", o.Name), checkAmount("cash", o.Cash))
}

func (o Declare) apply(r *Outcome) error {
	if _, exists := r.persons[o.Name]; exists {
		return fmt.Errorf("person %q: %w", o.Name, ErrDuplicateName)
	}
	p := NewPerson(o.Name, o.Cash)
	r.persons[o.Name] = p
	r.names = append(r.names, o.Name)
	return nil
}

// Open opens an account for a declared customer. Ref labels the new account
// for the following steps.
type Open struct {
	baseOp
	Name   string `json:"name"`
	Ref    string `json:"ref"`
	Amount Money  `json:"amount"`
}

// NewOpen creates an Open operation.
func NewOpen(name, ref string, amount Money) Open {
	return Open{baseOp: baseOp{Op: OpOpen}, Name: name, Ref: ref, Amount: amount}
}

func (o Open) Validate() error {
	return errors.Join(checkLabel("name", o.Name), checkLabel("ref", o.Ref), checkAmount("amount", o.Amount))
}

func (o Open) apply(r *Outcome) error {
	p, err := r.person(o.Name)
	if err != nil {
		return err
	}
	if _, exists := r.accounts[o.Ref]; exists {
		return fmt.Errorf("account %q: %w", o.Ref, ErrDuplicateName)
	}
	account, err := r.bank.CreateAccount(p, o.Amount)
	if err != nil {
		return err
	}
	r.accounts[o.Ref] = account
	return nil
}

// Deposit moves cash from the owner of an account into it.
type Deposit struct {
	baseOp
	Ref    string `json:"ref"`
	Amount Money  `json:"amount"`
}

// NewDeposit creates a Deposit operation.
func NewDeposit(ref string, amount Money) Deposit {
	return Deposit{baseOp: baseOp{Op: OpDeposit}, Ref: ref, Amount: amount}
}

func (o Deposit) Validate() error {
	return errors.Join(checkLabel("ref", o.Ref), checkAmount("amount", o.Amount))
}

func (o Deposit) apply(r *Outcome) error {
	account, err := r.account(o.Ref)
	if err != nil {
		return err
	}
	return r.bank.Deposit(account, o.Amount)
}

// Withdraw moves money from an account to its owner's cash.
type Withdraw struct {
	baseOp
	Ref    string `json:"ref"`
	Amount Money  `json:"amount"`
}

// NewWithdraw creates a Withdraw operation.
func NewWithdraw(ref string, amount Money) Withdraw {
	return Withdraw{baseOp: baseOp{Op: OpWithdraw}, Ref: ref, Amount: amount}
}

func (o Withdraw) Validate() error {
	return errors.Join(checkLabel("ref", o.Ref), checkAmount("amount", o.Amount))
}

func (o Withdraw) apply(r *Outcome) error {
	account, err := r.account(o.Ref)
	if err != nil {
		return err
	}
	return r.bank.Withdraw(account, o.Amount)
}

// Transfer moves money between two accounts.
type Transfer struct {
	baseOp
	From   string `json:"from"`
	To     string `json:"to"`
	Amount Money  `json:"amount"`
}

// NewTransfer creates a Transfer operation.
func NewTransfer(from, to string, amount Money) Transfer {
	return Transfer{baseOp: baseOp{Op: OpTransfer}, From: from, To: to, Amount: amount}
}

func (o Transfer) Validate() error {
	return errors.Join(checkLabel("from", o.From), checkLabel("to", o.To), checkAmount("amount", o.Amount))
}

func (o Transfer) apply(r *Outcome) error {
	from, err := r.account(o.From)
	if err != nil {
		return err
	}
	to, err := r.account(o.To)
	if err != nil {
		return err
	}
	return r.bank.Transfer(from, to, o.Amount)
}

// Step is an operation with the script line it comes from.
type Step struct {
	Line int
	Operation
}

// Script is an ordered list of operations to replay on a bank.
type Script struct {
	Steps []Step
}

// NewScript creates a script from operations, numbered from line 1.
func NewScript(ops ...Operation) *Script {
	s := &Script{Steps: make([]Step, 0, len(ops))}
	for i, op := range ops {
		s.Steps = append(s.Steps, Step{Line: i + 1, Operation: op})
	}
	return s
}

// Result is the result of a step in a replay.
type Result struct {
	Step
	Err error // Err is the bank's error, nil if the step succeeded.
}

// Status returns "ok" or the message of the bank's error.
func (r Result) Status() string {
	if r.Err == nil {
		return "ok"
	}
	return r.Err.Error()
}

// Outcome is the state reached by replaying a script.
type Outcome struct {
	bank     *Bank
	persons  map[string]*Person
	names    []string // declaration order
	accounts map[string]*Account
	results  []Result
}

// Bank returns the bank the script was replayed on.
func (r *Outcome) Bank() *Bank { return r.bank }

// Results returns the result of each step, in script order.
func (r *Outcome) Results() []Result { return r.results }

// Failed returns the number of steps rejected by the bank.
func (r *Outcome) Failed() (n int) {
	for _, res := range r.results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Person returns the person declared under name, or nil.
func (r *Outcome) Person(name string) *Person { return r.persons[name] }

// Account returns the account labelled ref, or nil.
func (r *Outcome) Account(ref string) *Account { return r.accounts[ref] }

// Persons iterates over the declared persons in declaration order.
func (r *Outcome) Persons() iter.Seq[*Person] {
	return func(yield func(*Person) bool) {
		for _, name := range r.names {
			if !yield(r.persons[name]) {
				return
			}
		}
	}
}

func (r *Outcome) person(name string) (*Person, error) {
	p, ok := r.persons[name]
	if !ok {
		return nil, fmt.Errorf("person %q: %w", name, ErrUnknownPerson)
	}
	return p, nil
}

func (r *Outcome) account(ref string) (*Account, error) {
	a, ok := r.accounts[ref]
	if !ok {
		return nil, fmt.Errorf("account %q: %w", ref, ErrUnknownAccount)
	}
	return a, nil
}

// Replay applies every step of s to b, in order.
//
// A step rejected by the bank (insufficient funds or balance) is recorded in
// its Result and the replay goes on. Any other error stops the replay and is
// returned with the line of the faulty step.
func Replay(b *Bank, s *Script) (*Outcome, error) {
	r := &Outcome{
		bank:     b,
		persons:  make(map[string]*Person),
		accounts: make(map[string]*Account),
		results:  make([]Result, 0, len(s.Steps)),
	}
	for _, step := range s.Steps {
		if err := step.Validate(); err != nil {
			return r, faults.Wrap(fmt.Errorf("line %d: %w %s: %w", step.Line, ErrInvalidStep, step.What(), err))
		}
		err := step.apply(r)
		if err != nil && !isBusinessError(err) {
			return r, faults.Errorf("line %d: %s: %w", step.Line, step.What(), err)
		}
		r.results = append(r.results, Result{Step: step, Err: err})
	}
	return r, nil
}

// isBusinessError reports whether err is a rejection by the bank.
func isBusinessError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds) || errors.Is(err, ErrInsufficientBalance)
}
