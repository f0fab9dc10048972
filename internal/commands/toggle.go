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
	Register(&ToggleCmd{})
}

// ToggleCmd implements the mark complete/incomplete menu action.
type ToggleCmd struct{}

func (c *ToggleCmd) Key() string       { return "5" }
func (c *ToggleCmd) Name() string      { return "toggle" }
func (c *ToggleCmd) Aliases() []string { return []string{"done"} }
func (c *ToggleCmd) Label() string     { return "Mark Task Complete/Incomplete" }
func (c *ToggleCmd) Exits() bool       { return false }

func (c *ToggleCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nToggling Task Completion Status...")
	}

	task, ok := promptTask(ctx, svc, in, out, "Enter task ID to toggle completion status: ", "Mark complete")
	if !ok {
		return exitcode.UserError
	}

	if !svc.ToggleComplete(task.ID) {
		fmt.Fprintf(out, "Failed to update task %d.\n", task.ID)
		return exitcode.UserError
	}

	state := "incomplete"
	if !task.Completed {
		state = "completed"
	}
	fmt.Fprintf(out, "Task %d marked as %s!\n", task.ID, state)
	return exitcode.Success
}
