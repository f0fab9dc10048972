package cli_test

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"todo/internal/backend/memory"
	"todo/internal/cli"
	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
)

// testFactory creates a service factory that returns the given store.
func testFactory(svc service.Service) cli.ServiceFactory {
	return func(cfg *config.Config) (service.Service, error) {
		return svc, nil
	}
}

// run drives the dispatcher with scripted stdin and an isolated config dir.
func run(t *testing.T, svc service.Service, input string, args ...string) (stdout, stderr string, code int) {
	t.Helper()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))

	var outBuf, errBuf bytes.Buffer
	args = append([]string{"--config", t.TempDir()}, args...)
	code = dispatcher.Run(context.Background(), args, strings.NewReader(input), &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func TestDispatcher_UnknownCommand(t *testing.T) {
	_, stderr, code := run(t, memory.New(), "", "unknowncmd")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown command: unknowncmd\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_UnknownFlag(t *testing.T) {
	_, stderr, code := run(t, memory.New(), "", "--unknown")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: -unknown\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_FlagAfterCommand(t *testing.T) {
	_, stderr, code := run(t, memory.New(), "", "help", "--quiet")

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: unknown flag: --quiet\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

func TestDispatcher_MissingFlagValue(t *testing.T) {
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(memory.New()))

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--config"}, strings.NewReader(""), &stdout, &stderr)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	expected := "error: flag needs an argument: -config\n"
	if stderr.String() != expected {
		t.Errorf("expected %q, got %q", expected, stderr.String())
	}
}

func TestDispatcher_HelpCommand(t *testing.T) {
	stdout, stderr, code := run(t, memory.New(), "", "help")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("expected help output to contain 'Usage:'")
	}
}

func TestDispatcher_VersionCommand(t *testing.T) {
	stdout, _, code := run(t, memory.New(), "", "version")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected 'todo 0.1.0\\n', got %q", stdout)
	}
}

func TestMenu_Scenario(t *testing.T) {
	svc := memory.New()
	input := strings.Join([]string{
		"1", "Buy groceries", "Milk, bread, eggs", "",
		"1", "Walk the dog", "", "",
		"3", "2", "Walk the cat", "", "",
		"5", "1", "",
		"4", "2", "y", "",
		"2", "",
		"6",
	}, "\n") + "\n"

	stdout, stderr, code := run(t, svc, input)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}

	for _, want := range []string{
		"Welcome to the Todo Console App!",
		"           TODO CONSOLE APP\n",
		"Enter your choice (1-6): ",
		"Your task ID is: 1\n",
		"Your task ID is: 2\n",
		"Task 2 updated successfully!",
		"Task 1 marked as completed!",
		"Task 2 deleted successfully!",
		"1    Completed  Buy groceries                  Milk, bread, eggs\n",
		"Goodbye!",
		"Application exited. Have a great day!\n",
	} {
		if !strings.Contains(stdout, want) {
			t.Errorf("expected output to contain %q", want)
		}
	}

	tasks := svc.ListAll()
	if len(tasks) != 1 || tasks[0].ID != 1 || !tasks[0].Completed {
		t.Errorf("unexpected final tasks %+v", tasks)
	}
}

func TestMenu_InvalidChoice(t *testing.T) {
	stdout, _, code := run(t, memory.New(), "9\nfoo\n\n6\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if n := strings.Count(stdout, "Invalid choice. Please enter a number between 1 and 6.\n"); n != 3 {
		t.Errorf("expected 3 invalid choice notices, got %d", n)
	}
}

func TestMenu_AcceptsNames(t *testing.T) {
	svc := memory.New()

	_, _, code := run(t, svc, " add \nTitle\n\n\nquit\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if len(svc.ListAll()) != 1 {
		t.Errorf("expected 1 task, got %d", len(svc.ListAll()))
	}
}

func TestMenu_EndOfInputExits(t *testing.T) {
	stdout, _, code := run(t, memory.New(), "")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "\n\nOperation cancelled.\n") {
		t.Errorf("expected cancellation notice, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "Goodbye!") {
		t.Error("expected exit command to run")
	}
}

func TestMenu_EndOfInputAtPause(t *testing.T) {
	stdout, _, code := run(t, memory.New(), "2\n")

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Press Enter to continue...") {
		t.Error("expected pause prompt")
	}
	if strings.Count(stdout, "What would you like to do?") != 1 {
		t.Error("expected menu shown once")
	}
	if !strings.Contains(stdout, "Goodbye!") {
		t.Error("expected exit command to run")
	}
}

func TestMenu_Interrupted(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(memory.New()))
	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(ctx, []string{"--config", t.TempDir()}, pr, &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout.String(), "Operation cancelled by user.") {
		t.Errorf("expected interrupt notice, got:\n%s", stdout.String())
	}
}

func TestMenu_Quiet(t *testing.T) {
	stdout, _, _ := run(t, memory.New(), "6\n", "--quiet")

	if strings.Contains(stdout, "Welcome") || strings.Contains(stdout, "Goodbye") || strings.Contains(stdout, "Application exited") {
		t.Errorf("expected banners suppressed, got:\n%s", stdout)
	}
	if !strings.Contains(stdout, "TODO CONSOLE APP") {
		t.Error("expected menu still shown")
	}
}

func TestMenu_SettingsFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("skip_pause: true\nskip_confirm: true\n"), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}
	svc := memory.New()
	svc.Create("Title", "")

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(svc))
	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--config", dir}, strings.NewReader("4\n1\n6\n"), &stdout, &stderr)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if strings.Contains(stdout.String(), "Press Enter") || strings.Contains(stdout.String(), "Are you sure") {
		t.Errorf("expected pause and confirmation skipped, got:\n%s", stdout.String())
	}
	if len(svc.ListAll()) != 0 {
		t.Error("expected task deleted")
	}
}

func TestMenu_MalformedSettings(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, config.SettingsFile), []byte("quiet: [\n"), 0600); err != nil {
		t.Fatalf("failed to write settings: %v", err)
	}

	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, testFactory(memory.New()))
	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--config", dir}, strings.NewReader(""), &stdout, &stderr)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(stderr.String(), "error: read config.yml:") {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestMenu_FactoryError(t *testing.T) {
	factory := func(cfg *config.Config) (service.Service, error) {
		return nil, errors.New("store unavailable")
	}
	dispatcher := cli.NewDispatcher(commands.DefaultRegistry, factory)

	var stdout, stderr bytes.Buffer
	code := dispatcher.Run(context.Background(), []string{"--config", t.TempDir()}, strings.NewReader(""), &stdout, &stderr)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if stderr.String() != "error: store unavailable\n" {
		t.Errorf("unexpected stderr %q", stderr.String())
	}
}

func TestMenu_DebugLog(t *testing.T) {
	_, stderr, _ := run(t, memory.New(), "2\n\n6\n", "--debug")

	if !strings.HasPrefix(stderr, "debug: session ") {
		t.Errorf("expected debug session log, got %q", stderr)
	}
	if !strings.Contains(stderr, " started (settings ") || !strings.Contains(stderr, "config.yml)\n") {
		t.Errorf("expected settings path in session log, got %q", stderr)
	}
	if !strings.Contains(stderr, ": view -> exit code 0 (0 tasks)\n") {
		t.Errorf("expected dispatch log, got %q", stderr)
	}
}

func TestMenu_LongLineKeepsSession(t *testing.T) {
	svc := memory.New()
	input := "1\nTitle\n" + strings.Repeat("d", 70000) + "\n\n2\n\n6\n"

	stdout, _, code := run(t, svc, input)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "Description is too long. Truncating to 1000 characters.") {
		t.Error("expected truncation notice")
	}
	if strings.Contains(stdout, "Operation cancelled") {
		t.Error("expected session to continue after a long line")
	}
	if !strings.Contains(stdout, "Task List:") {
		t.Error("expected view to run after the long line")
	}
	task, ok := svc.Get(1)
	if !ok || len(task.Description) != 1000 {
		t.Errorf("expected 1000-char description, got %d (ok=%v)", len(task.Description), ok)
	}
}
