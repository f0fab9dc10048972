package commands

import (
	"context"
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add menu action.
type AddCmd struct{}

func (c *AddCmd) Key() string       { return "1" }
func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"create"} }
func (c *AddCmd) Label() string     { return "Add Task" }
func (c *AddCmd) Exits() bool       { return false }

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, in *Prompter, out io.Writer) int {
	if !cfg.Quiet {
		fmt.Fprintln(out, "\nAdding New Task...")
	}

	title, description, ok := promptTaskDetails(ctx, in, out)
	if !ok {
		fmt.Fprintln(out, "Add task operation cancelled.")
		return exitcode.Success
	}

	task, err := svc.Create(title, description)
	if err != nil {
		fmt.Fprintf(out, "Error adding task: %v\n", err)
		return exitcode.UserError
	}

	fmt.Fprintf(out, "Task added successfully! Your task ID is: %d\n", task.ID)
	return exitcode.Success
}

// promptTaskDetails asks for a title until one is acceptable, then for a
// description. An over-long description is truncated rather than rejected.
// Returns false if the title prompt was abandoned.
func promptTaskDetails(ctx context.Context, in *Prompter, out io.Writer) (title, description string, ok bool) {
	for {
		line, err := in.Ask(ctx, "Enter task title (required): ")
		if err != nil {
			fmt.Fprintf(out, "\n\n%s\n", CancelMessage(err))
			return "", "", false
		}
		title = strings.TrimSpace(line)
		if title == "" {
			fmt.Fprintln(out, "Title cannot be empty. Please try again.")
			continue
		}
		if utf8.RuneCountInString(title) > service.MaxTitleLen {
			fmt.Fprintf(out, "Title is too long. Please enter a title with %d characters or less.\n", service.MaxTitleLen)
			continue
		}
		break
	}

	description, err := in.Ask(ctx, "Enter task description (optional): ")
	if err != nil {
		fmt.Fprintf(out, "\n\n%s\n", CancelMessage(err))
		return title, "", true
	}
	if utf8.RuneCountInString(description) > service.MaxDescriptionLen {
		fmt.Fprintf(out, "Description is too long. Truncating to %d characters.\n", service.MaxDescriptionLen)
		description = string([]rune(description)[:service.MaxDescriptionLen])
	}
	return title, description, true
}
