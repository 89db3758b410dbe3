package cmd

import (
	"github.com/etnz/banking/docs"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

// Completion returns the shell completion tree of the subcommands.
// The main package calls Complete on it before parsing flags.
func Completion() *complete.Command {
	topics, _ := docs.GetAllTopics()
	return &complete.Command{
		Sub: map[string]*complete.Command{
			"run": {
				Flags: map[string]complete.Predictor{
					"f":      predict.Files("*.jsonl"),
					"json":   predict.Nothing,
					"q":      predict.Something,
					"strict": predict.Nothing,
				},
			},
			"demo": {
				Flags: map[string]complete.Predictor{
					"print": predict.Nothing,
				},
			},
			"topic":    {Args: predict.Set(append(topics, "*"))},
			"help":     {Args: predict.Set{"run", "demo", "topic"}},
			"commands": {},
			"flags":    {},
		},
	}
}
