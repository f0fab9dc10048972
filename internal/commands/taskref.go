package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"todo/internal/service"
)

// ErrTaskIDRequired indicates a blank task id was entered.
var ErrTaskIDRequired = errors.New("task ID required")

// ParseTaskID parses a task id typed at a prompt.
// Surrounding whitespace is ignored. A blank answer yields ErrTaskIDRequired.
func ParseTaskID(s string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrTaskIDRequired
	}
	id, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid task ID: %s", s)
	}
	return id, nil
}

// promptTask asks for a task id and looks the task up.
// op names the operation in cancellation messages, e.g. "Update".
// Returns false after printing why when no task was selected.
func promptTask(ctx context.Context, svc service.Service, in *Prompter, out io.Writer, label, op string) (service.Task, bool) {
	line, err := in.Ask(ctx, label)
	if err != nil {
		printCancelled(out, op, err)
		return service.Task{}, false
	}

	id, err := ParseTaskID(line)
	if errors.Is(err, ErrTaskIDRequired) {
		fmt.Fprintf(out, "%s operation cancelled.\n", op)
		return service.Task{}, false
	}
	if err != nil {
		fmt.Fprintln(out, "Invalid task ID. Please enter a number.")
		return service.Task{}, false
	}

	task, ok := svc.Get(id)
	if !ok {
		fmt.Fprintf(out, "Task with ID %d not found.\n", id)
		return service.Task{}, false
	}
	return task, true
}

// printCancelled reports a prompt abandoned through end of input or an interrupt.
func printCancelled(out io.Writer, op string, err error) {
	if errors.Is(err, ErrInterrupted) {
		fmt.Fprintf(out, "\n\n%s operation cancelled by user.\n", op)
		return
	}
	fmt.Fprintf(out, "\n\n%s operation cancelled.\n", op)
}
