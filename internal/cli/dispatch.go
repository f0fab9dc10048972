// Package cli parses the command line and runs the interactive menu.
package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// Version is the application version. Set at build time.
var Version = "0.1.0"

// ServiceFactory creates the task store for a session.
// Used to inject the backend during dispatch.
type ServiceFactory func(cfg *config.Config) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
}

// NewDispatcher creates a new dispatcher with the given registry and service factory.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
	}
}

// Run parses arguments and either prints help/version or runs the menu
// loop reading from in. Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, in io.Reader, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(config.AppName, flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var configDir string
	var quiet bool
	var debug bool

	fs.StringVar(&configDir, "config", "", "")
	fs.BoolVar(&quiet, "quiet", false, "")
	fs.BoolVar(&debug, "debug", false, "")

	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagName)
			return exitcode.UserError
		}

		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimPrefix(errStr, "flag provided but not defined: ")
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return exitcode.UserError
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return exitcode.UserError
	}

	positional := fs.Args()
	if len(positional) > 1 {
		if strings.HasPrefix(positional[1], "-") {
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[1])
		} else {
			fmt.Fprintf(errOut, "error: unexpected argument: %s\n", positional[1])
		}
		return exitcode.UserError
	}

	if len(positional) == 1 {
		switch positional[0] {
		case "help":
			fmt.Fprint(out, helpText)
			return exitcode.Success
		case "version":
			fmt.Fprintf(out, "%s %s\n", config.AppName, Version)
			return exitcode.Success
		default:
			fmt.Fprintf(errOut, "error: unknown command: %s\n", positional[0])
			return exitcode.UserError
		}
	}

	cfg, err := config.New(configDir)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}
	// Flags can only turn these on; settings files and env may have set them already.
	cfg.Quiet = cfg.Quiet || quiet
	cfg.Debug = cfg.Debug || debug

	svc, err := d.factory(cfg)
	if err != nil {
		fmt.Fprintf(errOut, "error: %s\n", err)
		return exitcode.ConfigError
	}

	return d.runMenu(ctx, cfg, svc, in, out, errOut)
}

const helpText = `Usage:
  todo [flags]         Start the interactive task menu
  todo help            Print usage
  todo version         Print version

Flags:
  --config <dir>   Override config directory
  --quiet          Suppress banners and headings
  --debug          Print debug logs to stderr

Settings (config.yml in the config directory, or environment):
  quiet         TODO_QUIET
  debug         TODO_DEBUG
  skip_pause    TODO_SKIP_PAUSE     Do not wait for Enter between actions
  skip_confirm  TODO_SKIP_CONFIRM   Delete without asking
`
