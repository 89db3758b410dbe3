package banking

import (
	"bytes"
	"encoding/json"
	"iter"

	"github.com/PaesslerAG/jsonpath"
	"github.com/quintans/faults"
)

// AccountLine is an account as shown in a Report.
type AccountLine struct {
	Serial  int   `json:"serial"`
	Balance Money `json:"balance"`
}

// CustomerLine is a person and their accounts as shown in a Report.
type CustomerLine struct {
	Name     string        `json:"name"`
	Cash     Money         `json:"cash"`
	Balance  Money         `json:"balance"` // Balance is the sum of the account balances.
	Accounts []AccountLine `json:"accounts"`
}

// Report is a read-only view of persons, their cash and their accounts at a
// given time. It does not change when the bank does.
type Report struct {
	Customers    []CustomerLine `json:"customers"`
	TotalCash    Money          `json:"totalCash"`
	TotalBalance Money          `json:"totalBalance"`
	Accounts     int            `json:"accounts"`
}

// NewReport reports on every customer of b, in the order they became customers.
func NewReport(b *Bank) *Report {
	return newReport(b, b.Customers())
}

// Report reports on every declared person, including those without an account,
// in declaration order.
func (r *Outcome) Report() *Report {
	return newReport(r.bank, r.Persons())
}

func newReport(b *Bank, persons iter.Seq[*Person]) *Report {
	rep := &Report{Customers: make([]CustomerLine, 0)}
	totalCash, totalBalance := M(0).Amount(), M(0).Amount()
	for p := range persons {
		line := CustomerLine{Name: p.Name(), Cash: p.Cash(), Accounts: make([]AccountLine, 0)}
		balance := M(0).Amount()
		for _, a := range b.GetAccountsForCustomer(p) {
			line.Accounts = append(line.Accounts, AccountLine{Serial: a.SerialNum(), Balance: a.Balance()})
			balance = balance.Add(a.Balance().Amount())
		}
		line.Balance = M(balance)
		rep.Customers = append(rep.Customers, line)
		rep.Accounts += len(line.Accounts)
		totalCash = totalCash.Add(p.Cash().Amount())
		totalBalance = totalBalance.Add(balance)
	}
	rep.TotalCash, rep.TotalBalance = M(totalCash), M(totalBalance)
	return rep
}

// Query evaluates a JSONPath expression (e.g. "$.customers[0].cash") on the
// JSON document of the report.
func (rep *Report) Query(path string) (any, error) {
	data, err := json.Marshal(rep)
	if err != nil {
		return nil, faults.Errorf("could not marshal report: %w", err)
	}
	// numbers stay json.Number, amounts are not rounded through float64.
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, faults.Errorf("could not read report: %w", err)
	}
	v, err := jsonpath.Get(path, doc)
	if err != nil {
		return nil, faults.Errorf("error evaluating %q: %w", path, err)
	}
	return v, nil
}
