package cmd

import (
	"context"
	"flag"
	"fmt"
	"strings"

	"github.com/etnz/banking"
	"github.com/etnz/banking/renderer"
	"github.com/google/subcommands"
)

// scenario is a named script showing one rule of the bank.
type scenario struct {
	title  string
	script *banking.Script
}

func withMemo(memo string, op banking.Operation) banking.Operation {
	switch v := op.(type) {
	case banking.Declare:
		v.Memo = memo
		return v
	case banking.Open:
		v.Memo = memo
		return v
	case banking.Deposit:
		v.Memo = memo
		return v
	case banking.Withdraw:
		v.Memo = memo
		return v
	case banking.Transfer:
		v.Memo = memo
		return v
	}
	return op
}

// scenarios returns the built-in demonstration scripts.
func scenarios() []scenario {
	M := banking.M[int]
	return []scenario{
		{
			title: "Opening an account with enough cash",
			script: banking.NewScript(
				banking.NewDeclare("alice", M(300)),
				withMemo("alice keeps 100", banking.NewOpen("alice", "a1", M(200))),
			),
		},
		{
			title: "Opening an account without enough cash",
			script: banking.NewScript(
				banking.NewDeclare("bob", M(100)),
				withMemo("rejected, cash stays 100", banking.NewOpen("bob", "b1", M(200))),
			),
		},
		{
			title: "Depositing cash",
			script: banking.NewScript(
				banking.NewDeclare("carol", M(450)),
				banking.NewOpen("carol", "c1", M(200)),
				withMemo("carol has 250, balance becomes 300", banking.NewDeposit("c1", M(100))),
				banking.NewDeclare("dave", M(250)),
				banking.NewOpen("dave", "d1", M(200)),
				withMemo("rejected, dave has 50", banking.NewDeposit("d1", M(100))),
			),
		},
		{
			title: "Withdrawing more than the balance",
			script: banking.NewScript(
				banking.NewDeclare("erin", M(400)),
				banking.NewOpen("erin", "e1", M(200)),
				withMemo("rejected, balance stays 200", banking.NewWithdraw("e1", M(300))),
			),
		},
		{
			title: "Transferring between accounts",
			script: banking.NewScript(
				banking.NewDeclare("frank", M(200)),
				banking.NewDeclare("grace", M(200)),
				banking.NewOpen("frank", "f1", M(200)),
				banking.NewOpen("grace", "g1", M(200)),
				withMemo("f1 ends with 100, g1 with 300", banking.NewTransfer("f1", "g1", M(100))),
			),
		},
	}
}

type demoCmd struct {
	*app
	print bool
}

func (*demoCmd) Name() string     { return "demo" }
func (*demoCmd) Synopsis() string { return "replay the built-in scenarios" }
func (*demoCmd) Usage() string {
	return `demo [-print]

  Replays built-in scenarios, each on its own empty bank, showing when the bank
  accepts or rejects an operation. With -print, writes the scenarios as
  JSONL scripts instead, ready for "run".
`
}

func (c *demoCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.print, "print", false, "Print the scenario scripts as JSONL")
}

func (c *demoCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.print {
		for _, s := range scenarios() {
			if err := banking.EncodeScript(c.stdout, s.script); err != nil {
				return c.fail("printing scenario", err)
			}
		}
		return subcommands.ExitSuccess
	}

	var b strings.Builder
	for i, s := range scenarios() {
		outcome, err := banking.Replay(banking.NewBank(), s.script)
		if err != nil {
			return c.fail(fmt.Sprintf("replaying %q", s.title), err)
		}
		// scenario titles become top headers, rendered headers shift one level down.
		fmt.Fprintf(&b, "# %d. %s\n\n", i+1, s.title)
		b.WriteString(demote(renderer.Outcome(outcome, c.cfg.Currency)))
		b.WriteString("\n")
		b.WriteString(demote(renderer.Report(outcome.Report(), c.cfg.Currency)))
		b.WriteString("\n")
	}
	c.printMarkdown(b.String())
	return subcommands.ExitSuccess
}

// demote turns every markdown header of md into a lower level one.
func demote(md string) string {
	lines := strings.Split(md, "\n")
	for i, l := range lines {
		if strings.HasPrefix(l, "#") {
			lines[i] = "#" + l
		}
	}
	return strings.Join(lines, "\n")
}
