package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/harrison/tinygrep/internal/walker"
)

// execute runs a fresh root command with the given args and stdin,
// returning captured stdout and the command error. The config path is
// pinned to an empty temp location so a stray .tinygrep.yaml in the
// working directory cannot change results.
func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetIn(strings.NewReader(stdin))
	configPath := filepath.Join(t.TempDir(), "tinygrep.yaml")
	cmd.SetArgs(append([]string{"--config", configPath}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func writeTempFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRootCommandHelp(t *testing.T) {
	cmd := NewRootCommand()
	if cmd == nil {
		t.Fatal("Root command should not be nil")
	}

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(buf)
	cmd.SetArgs([]string{"--help"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("--help returned error: %v", err)
	}

	output := buf.String()
	if !strings.Contains(output, "tinygrep") {
		t.Errorf("Help text should contain 'tinygrep', got: %s", output)
	}
	if !strings.Contains(output, "PATTERN") {
		t.Errorf("Help text should mention PATTERN, got: %s", output)
	}
	if !strings.Contains(output, "--ignore-case") {
		t.Errorf("Help text should list --ignore-case, got: %s", output)
	}
}

func TestRootCommandSearchesFile(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "Rust:\nsafe, fast, productive.\nPick three.\nDuct tape.")

	out, err := execute(t, "", "duct", path)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := path + ":safe, fast, productive.\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRootCommandLineNumbersFlag(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "Rust:\nsafe, fast, productive.")

	out, err := execute(t, "", "-n", "fast", path)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := path + ":2: safe, fast, productive.\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRootCommandIgnoreCaseFlag(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "Rust:\nDuct tape.")

	out, err := execute(t, "", "-i", "rUsT", path)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := path + ":Rust:\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRootCommandReadsStdin(t *testing.T) {
	out, err := execute(t, "needle in here\nnothing\n", "needle")
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := "stdin:needle in here\n"
	if out != want {
		t.Errorf("Expected %q, got %q", want, out)
	}
}

func TestRootCommandDirectoryWithoutRecursive(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "x", dir)
	if !errors.Is(err, walker.ErrDirectoryWithoutRecursive) {
		t.Errorf("Expected ErrDirectoryWithoutRecursive, got %v", err)
	}
	if out != "" {
		t.Errorf("Expected no output, got %q", out)
	}
}

func TestRootCommandRecursiveFlag(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("needle a"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "b.txt"), []byte("needle b"), 0o644); err != nil {
		t.Fatal(err)
	}

	out, err := execute(t, "", "-R", "needle", dir)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if !strings.Contains(out, filepath.Join(dir, "a.txt")+":needle a") {
		t.Errorf("Expected match from a.txt, got %q", out)
	}
	if !strings.Contains(out, filepath.Join(dir, "b.txt")+":needle b") {
		t.Errorf("Expected match from b.txt, got %q", out)
	}
}

func TestRootCommandInvalidRegex(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "content")

	_, err := execute(t, "", "-r", "[invalid", path)
	if err == nil {
		t.Fatal("Expected error for invalid regex")
	}
	if !strings.Contains(err.Error(), "[invalid") {
		t.Errorf("Error should carry the raw pattern, got: %v", err)
	}
}

func TestRootCommandUnknownFlag(t *testing.T) {
	_, err := execute(t, "", "--unknown", "query")
	if err == nil {
		t.Fatal("Expected error for unknown flag")
	}
}

func TestRootCommandMissingPattern(t *testing.T) {
	_, err := execute(t, "")
	if err == nil {
		t.Fatal("Expected error when no pattern is given")
	}
}

func TestRootCommandConfigFile(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "Rust:\nsafe, fast, productive.")
	configPath := writeTempFile(t, "tinygrep.yaml", "line_numbers: true\n")

	cmd := NewRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(""))
	cmd.SetArgs([]string{"--config", configPath, "fast", path})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	want := path + ":2: safe, fast, productive.\n"
	if out.String() != want {
		t.Errorf("Expected %q, got %q", want, out.String())
	}
}

func TestRootCommandColorFlag(t *testing.T) {
	path := writeTempFile(t, "poem.txt", "Rust is powerful, and Rocks are heavy.")

	out, err := execute(t, "", "-r", "-c", `R\w+`, path)
	if err != nil {
		t.Fatalf("Execute() returned error: %v", err)
	}

	if !strings.Contains(out, "\x1b[1;33mRust\x1b[0m") {
		t.Errorf("Expected highlighted 'Rust', got %q", out)
	}
	if !strings.Contains(out, "\x1b[1;33mRocks\x1b[0m") {
		t.Errorf("Expected highlighted 'Rocks', got %q", out)
	}
}
