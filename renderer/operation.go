package renderer

import (
	"fmt"

	"github.com/etnz/banking"
)

// Operation renders a script operation to a short sentence.
func Operation(op banking.Operation, currency string) string {
	switch v := op.(type) {
	case banking.Declare:
		return fmt.Sprintf("%s declared with %s", v.Name, v.Cash.Format(currency))
	case banking.Open:
		return fmt.Sprintf("%s opens %s with %s", v.Name, v.Ref, v.Amount.Format(currency))
	case banking.Deposit:
		return fmt.Sprintf("deposit %s into %s", v.Amount.Format(currency), v.Ref)
	case banking.Withdraw:
		return fmt.Sprintf("withdraw %s from %s", v.Amount.Format(currency), v.Ref)
	case banking.Transfer:
		return fmt.Sprintf("transfer %s from %s to %s", v.Amount.Format(currency), v.From, v.To)
	default:
		return string(op.What())
	}
}
