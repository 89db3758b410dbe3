package banking

// Person is a customer holding cash outside of any account.
//
// A Person is identified by its pointer: two persons with the same name and
// cash are still different customers.
type Person struct {
	name string
	cash Money
}

// NewPerson creates a person carrying cash.
func NewPerson(name string, cash Money) *Person {
	return &Person{name: name, cash: cash}
}

// Name returns the display name of the person.
func (p *Person) Name() string { return p.name }

// Cash returns the unbanked money of the person.
func (p *Person) Cash() Money { return p.cash }

// CanPay reports whether amount is less than or equal to the person's cash.
func (p *Person) CanPay(amount Money) bool {
	return amount.Amount().LessThanOrEqual(p.cash.Amount())
}

// Pay takes amount from the person's cash.
//
// Pay does not check CanPay, cash goes negative if the caller did not.
func (p *Person) Pay(amount Money) {
	p.cash = NewMoney(p.cash.Amount().Sub(amount.Amount()))
}

// Receive adds amount to the person's cash.
func (p *Person) Receive(amount Money) {
	p.cash = NewMoney(p.cash.Amount().Add(amount.Amount()))
}
