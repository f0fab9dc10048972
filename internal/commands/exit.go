package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&ExitCmd{})
}

// ExitCmd ends the menu loop.
type ExitCmd struct{}

func (c *ExitCmd) Key() string       { return "6" }
func (c *ExitCmd) Name() string      { return "exit" }
func (c *ExitCmd) Aliases() []string { return []string{"quit", "q"} }
func (c *ExitCmd) Label() string     { return "Exit" }
func (c *ExitCmd) Exits() bool       { return true }

func (c *ExitCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nThank you for using the Todo Console App. Goodbye!")
	}
	return exitcode.Success
}
