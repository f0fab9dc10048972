package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&UpdateCmd{})
}

// UpdateCmd implements the update menu action.
// A blank answer keeps the current value of a field.
type UpdateCmd struct{}

func (c *UpdateCmd) Key() string       { return "3" }
func (c *UpdateCmd) Name() string      { return "update" }
func (c *UpdateCmd) Aliases() []string { return []string{"edit"} }
func (c *UpdateCmd) Label() string     { return "Update Task" }
func (c *UpdateCmd) Exits() bool       { return false }

func (c *UpdateCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nUpdating Task...")
	}

	task, ok := promptTask(ctx, svc, in, out, "Enter task ID to update: ", "Update")
	if !ok {
		return exitcode.UserError
	}
	fmt.Fprintln(out, "Current task:")
	output.FormatTask(out, task)
	fmt.Fprintln(out, "Leave blank to keep current value.")

	var patch service.TaskPatch

	line, err := in.Ask(ctx, fmt.Sprintf("New title (current: '%s'): ", task.Title))
	if err != nil {
		printCancelled(out, "Update", err)
		return exitcode.Success
	}
	if title := strings.TrimSpace(line); title != "" {
		if utf8.RuneCountInString(title) > service.MaxTitleLen {
			fmt.Fprintln(out, "Title is too long. Update cancelled.")
			return exitcode.UserError
		}
		patch.Title = &title
	}

	description, err := in.Ask(ctx, fmt.Sprintf("New description (current: '%s'): ", task.Description))
	if err != nil {
		printCancelled(out, "Update", err)
		return exitcode.Success
	}
	if description != "" {
		if utf8.RuneCountInString(description) > service.MaxDescriptionLen {
			fmt.Fprintln(out, "Description is too long. Update cancelled.")
			return exitcode.UserError
		}
		patch.Description = &description
	}

	updated, err := svc.Update(task.ID, patch)
	if err != nil {
		fmt.Fprintf(out, "Error updating task: %v\n", err)
		return exitcode.UserError
	}
	if !updated {
		fmt.Fprintf(out, "Failed to update task %d.\n", task.ID)
		return exitcode.UserError
	}

	fmt.Fprintf(out, "Task %d updated successfully!\n", task.ID)
	return exitcode.Success
}
