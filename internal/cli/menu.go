package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

const menuTitle = "TODO CONSOLE APP"

// runMenu shows the menu and dispatches choices until an exiting command
// runs, input ends, or ctx is cancelled. Leaving the loop is never an error.
func (d *Dispatcher) runMenu(ctx context.Context, cfg *config.Config, svc service.Service, in io.Reader, out, errOut io.Writer) int {
	logger := cfg.Logger(errOut)
	session := uuid.NewString()
	logger.Printf("session %s started (settings %s)", session, cfg.SettingsPath())

	prompter := commands.NewPrompter(in, out)

	if !cfg.Quiet {
		fmt.Fprintln(out, "Welcome to the Todo Console App!")
	}

	for {
		fmt.Fprintln(out)
		output.FormatMenu(out, menuTitle, d.registry.MenuItems())

		cmd, err := d.readChoice(ctx, prompter, out)
		if err != nil {
			fmt.Fprintf(out, "\n\n%s\n", commands.CancelMessage(err))
			logger.Printf("session %s: input closed: %v", session, err)
			d.exit(ctx, cfg, svc, prompter, out)
			break
		}

		code := cmd.Run(ctx, cfg, svc, prompter, out)
		logger.Printf("session %s: %s -> exit code %d (%d tasks)", session, cmd.Name(), code, len(svc.ListAll()))
		if cmd.Exits() {
			break
		}

		if ctx.Err() != nil {
			d.exit(ctx, cfg, svc, prompter, out)
			break
		}
		if !cfg.SkipPause {
			if _, err := prompter.Ask(ctx, "\nPress Enter to continue..."); err != nil {
				fmt.Fprintln(out)
				d.exit(ctx, cfg, svc, prompter, out)
				break
			}
		}
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "Application exited. Have a great day!")
	}
	logger.Printf("session %s ended", session)
	return exitcode.Success
}

// readChoice prompts until the answer names a registered command.
func (d *Dispatcher) readChoice(ctx context.Context, prompter *commands.Prompter, out io.Writer) (commands.Command, error) {
	first, last := d.keyRange()
	for {
		line, err := prompter.Ask(ctx, fmt.Sprintf("Enter your choice (%s-%s): ", first, last))
		if err != nil {
			return nil, err
		}
		if cmd, ok := d.registry.Find(strings.TrimSpace(line)); ok {
			return cmd, nil
		}
		fmt.Fprintf(out, "Invalid choice. Please enter a number between %s and %s.\n", first, last)
	}
}

// exit runs the registry's exiting command, if it has one.
func (d *Dispatcher) exit(ctx context.Context, cfg *config.Config, svc service.Service, prompter *commands.Prompter, out io.Writer) {
	if cmd, ok := d.registry.ExitCommand(); ok {
		cmd.Run(ctx, cfg, svc, prompter, out)
	}
}

func (d *Dispatcher) keyRange() (first, last string) {
	items := d.registry.MenuItems()
	if len(items) == 0 {
		return "", ""
	}
	return items[0].Key, items[len(items)-1].Key
}
