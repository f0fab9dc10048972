package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&DeleteCmd{})
}

// DeleteCmd implements the delete menu action.
type DeleteCmd struct{}

func (c *DeleteCmd) Key() string       { return "4" }
func (c *DeleteCmd) Name() string      { return "delete" }
func (c *DeleteCmd) Aliases() []string { return []string{"rm"} }
func (c *DeleteCmd) Label() string     { return "Delete Task" }
func (c *DeleteCmd) Exits() bool       { return false }

func (c *DeleteCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nDeleting Task...")
	}

	task, ok := promptTask(ctx, svc, in, out, "Enter task ID to delete: ", "Delete")
	if !ok {
		return exitcode.UserError
	}
	fmt.Fprintln(out, "Task to delete:")
	output.FormatTask(out, task)

	if !cfg.SkipConfirm {
		answer, err := in.Ask(ctx, "Are you sure you want to delete this task? (y/N): ")
		if err != nil {
			printCancelled(out, "Delete", err)
			return exitcode.Success
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
		default:
			fmt.Fprintln(out, "Delete operation cancelled.")
			return exitcode.Success
		}
	}

	if !svc.Delete(task.ID) {
		fmt.Fprintf(out, "Failed to delete task %d.\n", task.ID)
		return exitcode.UserError
	}

	fmt.Fprintf(out, "Task %d deleted successfully!\n", task.ID)
	return exitcode.Success
}
