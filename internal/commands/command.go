// Package commands provides the menu actions of the interactive front end.
package commands

import (
	"context"
	"io"

	"todo/internal/config"
	"todo/internal/service"
)

// Command defines one entry of the main menu.
type Command interface {
	// Key returns the menu number the user types to select the command.
	Key() string

	// Name returns the primary command name, also accepted at the menu prompt.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Label returns the text shown in the menu.
	Label() string

	// Exits returns true if the menu loop ends after this command.
	Exits() bool

	// Run executes the command.
	// cfg is always provided. in reads the user's answers to prompts;
	// everything the user should see is written to out.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int
}
