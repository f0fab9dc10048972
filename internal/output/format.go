// Package output provides formatters for the menu and the task table.
package output

import (
	"fmt"
	"io"
	"strings"

	"todo/internal/service"
)

const (
	menuWidth  = 50
	tableWidth = 80

	titleWidth       = 30
	descriptionWidth = 35
)

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key   string
	Label string
}

// FormatMenu writes the main menu.
func FormatMenu(w io.Writer, title string, items []MenuItem) {
	fmt.Fprintln(w, strings.Repeat("=", menuWidth))
	fmt.Fprintf(w, "%s%s\n", strings.Repeat(" ", 11), title)
	fmt.Fprintln(w, strings.Repeat("=", menuWidth))
	fmt.Fprintln(w, "What would you like to do?")
	for _, item := range items {
		fmt.Fprintf(w, "%s. %s\n", item.Key, item.Label)
	}
	fmt.Fprintln(w, strings.Repeat("-", menuWidth))
}

// FormatTaskTable writes tasks as a fixed-width table.
// Format per row: "{ID:<4} {STATUS:<10} {TITLE:<30} {DESCRIPTION}", trailing spaces trimmed.
// Titles longer than 30 characters are cut to 27 plus "...";
// descriptions longer than 35 are cut to 35 plus "...".
func FormatTaskTable(w io.Writer, tasks []service.Task) {
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
	writeRow(w, "ID", "Status", "Title", "Description")
	fmt.Fprintln(w, strings.Repeat("-", tableWidth))
	for _, task := range tasks {
		title := normalizeCell(task.Title)
		if runeLen(title) > titleWidth {
			title = truncate(title, titleWidth-3) + "..."
		}
		description := normalizeCell(task.Description)
		if runeLen(description) > descriptionWidth {
			description = truncate(description, descriptionWidth) + "..."
		}
		writeRow(w, fmt.Sprint(task.ID), task.Status(), title, description)
	}
	fmt.Fprintln(w, strings.Repeat("=", tableWidth))
}

// FormatTask writes a single task's fields, one per line.
func FormatTask(w io.Writer, task service.Task) {
	fmt.Fprintf(w, "ID:          %d\n", task.ID)
	fmt.Fprintf(w, "Title:       %s\n", normalizeCell(task.Title))
	fmt.Fprintf(w, "Description: %s\n", normalizeCell(task.Description))
	fmt.Fprintf(w, "Status:      %s\n", task.Status())
}

func writeRow(w io.Writer, id, status, title, description string) {
	line := fmt.Sprintf("%-4s %-10s %-30s %s", id, status, title, description)
	fmt.Fprintln(w, strings.TrimRight(line, " "))
}

// normalizeCell replaces newlines with spaces so a task stays on one row.
func normalizeCell(s string) string {
	s = strings.ReplaceAll(s, "\r", " ")
	return strings.ReplaceAll(s, "\n", " ")
}

func runeLen(s string) int {
	return len([]rune(s))
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}
