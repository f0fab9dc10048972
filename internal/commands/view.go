package commands

import (
	"context"
	"fmt"
	"io"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&ViewCmd{})
}

// ViewCmd implements the view menu action.
type ViewCmd struct{}

func (c *ViewCmd) Key() string       { return "2" }
func (c *ViewCmd) Name() string      { return "view" }
func (c *ViewCmd) Aliases() []string { return []string{"list", "ls"} }
func (c *ViewCmd) Label() string     { return "View All Tasks" }
func (c *ViewCmd) Exits() bool       { return false }

func (c *ViewCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nRetrieving all tasks...")
	}

	tasks := svc.ListAll()
	if len(tasks) == 0 {
		fmt.Fprintln(out, "\nNo tasks found. Your list is empty!")
		return exitcode.Success
	}

	fmt.Fprintln(out, "\nTask List:")
	output.FormatTaskTable(out, tasks)
	return exitcode.Success
}
