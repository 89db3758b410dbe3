// Package cmd implements the CLI application replaying scripts on a bank.
package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/caarlos0/env/v6"
	"github.com/charmbracelet/glamour"
	"github.com/google/subcommands"
	"github.com/quintans/faults"
	log "github.com/sirupsen/logrus"
)

// Environment variables read by LoadConfig.
const (
	EnvCurrency = "BANK_CURRENCY"
	EnvLogLevel = "BANK_LOG_LEVEL"
	EnvNoColor  = "BANK_NO_COLOR"
)

// Config is the configuration of the application, read from the environment.
type Config struct {
	Currency string `env:"BANK_CURRENCY" envDefault:"EUR"`  // display currency
	LogLevel string `env:"BANK_LOG_LEVEL" envDefault:"warn"` // logrus level name
	NoColor  bool   `env:"BANK_NO_COLOR" envDefault:"false"` // raw markdown output
}

// LoadConfig parses the configuration from the environment and checks it.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, faults.Errorf("invalid environment: %w", err)
	}
	cfg.Currency = strings.ToUpper(cfg.Currency)
	if money.GetCurrency(cfg.Currency) == nil {
		return nil, faults.Errorf("%s: unknown currency %q", EnvCurrency, cfg.Currency)
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return nil, faults.Errorf("%s: %w", EnvLogLevel, err)
	}
	return cfg, nil
}

// app holds what every subcommand shares.
type app struct {
	cfg    *Config
	stdout io.Writer
	stderr io.Writer
}

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander, cfg *Config) {
	a := &app{cfg: cfg, stdout: os.Stdout, stderr: os.Stderr}
	c.Register(&runCmd{app: a}, "scripts")
	c.Register(&demoCmd{app: a}, "scripts")
	c.Register(&topicCmd{app: a}, "help")
}

// printMarkdown writes md to stdout, styled for the terminal unless disabled.
func (a *app) printMarkdown(md string) {
	if a.cfg.NoColor {
		fmt.Fprint(a.stdout, md)
		return
	}
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err != nil {
		log.WithError(err).Debug("cannot style markdown, printing it raw")
		fmt.Fprint(a.stdout, md)
		return
	}
	out, err := r.Render(md)
	if err != nil {
		log.WithError(err).Debug("cannot style markdown, printing it raw")
		fmt.Fprint(a.stdout, md)
		return
	}
	fmt.Fprint(a.stdout, out)
}

// fail reports err to the user and returns the failure status.
func (a *app) fail(context string, err error) subcommands.ExitStatus {
	fmt.Fprintf(a.stderr, "Error %s: %v\n", context, err)
	log.Debugf("%+v", err)
	return subcommands.ExitFailure
}
