package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/banking/cmd"
	"github.com/google/subcommands"
	log "github.com/sirupsen/logrus"
)

func init() {
	log.SetOutput(os.Stderr)
	log.SetFormatter(&log.TextFormatter{
		DisableQuote: true,
	})
}

func main() {
	// exits when invoked by the shell for completion.
	cmd.Completion().Complete(path.Base(os.Args[0]))

	cfg, err := cmd.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel) // checked by LoadConfig
	log.SetLevel(level)

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")
	cmd.Register(commander, cfg)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}
