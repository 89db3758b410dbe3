package cmd

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/etnz/banking"
	"github.com/etnz/banking/renderer"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

type runCmd struct {
	*app
	file   string
	json   bool
	query  string
	strict bool
}

func (*runCmd) Name() string     { return "run" }
func (*runCmd) Synopsis() string { return "replay a script on an empty bank and report" }
func (*runCmd) Usage() string {
	return `run -f <script.jsonl> [-json | -q <jsonpath>] [-strict]

  Replays the operations of a JSONL script on an empty, in-memory bank, then
  prints each step's status and the final cash and balances.
  See "topic script" for the format.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.file, "f", "", `Script file, "-" for standard input`)
	f.BoolVar(&c.json, "json", false, "Print the final report as JSON")
	f.StringVar(&c.query, "q", "", "Print the result of a JSONPath query on the final report")
	f.BoolVar(&c.strict, "strict", false, "Exit with a failure if the bank rejected any step")
}

// openScript opens name for reading, "-" being the standard input.
func openScript(name string) (io.ReadCloser, error) {
	if name == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	return os.Open(name)
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.file == "" || (c.json && c.query != "") {
		f.Usage()
		return subcommands.ExitUsageError
	}

	r, err := openScript(c.file)
	if err != nil {
		return c.fail("opening script", err)
	}
	defer r.Close()

	script, err := banking.DecodeScript(r)
	if err != nil {
		return c.fail(fmt.Sprintf("decoding %q", c.file), err)
	}

	outcome, err := banking.Replay(banking.NewBank(), script)
	if err != nil {
		return c.fail(fmt.Sprintf("replaying %q", c.file), err)
	}
	log.WithFields(log.Fields{
		"file":     c.file,
		"steps":    len(outcome.Results()),
		"rejected": outcome.Failed(),
	}).Info("script replayed")

	report := outcome.Report()
	switch {
	case c.query != "":
		v, err := report.Query(c.query)
		if err != nil {
			return c.fail("querying report", err)
		}
		if err := c.printJSON(v); err != nil {
			return c.fail("printing result", err)
		}
	case c.json:
		if err := c.printJSON(report); err != nil {
			return c.fail("printing report", err)
		}
	default:
		c.printMarkdown(renderer.Outcome(outcome, c.cfg.Currency) + "\n" + renderer.Report(report, c.cfg.Currency))
	}

	if c.strict && outcome.Failed() > 0 {
		fmt.Fprintf(c.stderr, "%d step(s) rejected by the bank\n", outcome.Failed())
		return subcommands.ExitFailure
	}
	return subcommands.ExitSuccess
}

func (c *runCmd) printJSON(v any) error {
	enc := json.NewEncoder(c.stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
