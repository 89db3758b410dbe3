package cmd

import (
	"context"
	"flag"

	"github.com/etnz/banking/docs"
	"github.com/google/subcommands"
)

type topicCmd struct {
	*app
}

func (*topicCmd) Name() string     { return "topic" }
func (*topicCmd) Synopsis() string { return "show documentation" }
func (*topicCmd) Usage() string {
	return `topic [<topic>...]

  Show documentation for the given topics, "*" for all of them.
  Without topic, list the available ones.
`
}

func (c *topicCmd) SetFlags(f *flag.FlagSet) {}

func (c *topicCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	topics := f.Args()
	if len(topics) == 0 {
		topics = []string{"readme"}
	}

	doc, err := docs.GetTopics(topics...)
	if err != nil {
		return c.fail("reading doc", err)
	}
	c.printMarkdown(doc)
	return subcommands.ExitSuccess
}
