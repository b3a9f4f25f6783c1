// CLI integration tests for contacts. Each test drives the built binary
// through a scripted stdin transcript and inspects stdout plus the
// persisted snapshot.
package integration

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
	"testing"
)

var (
	buildOnce   sync.Once
	buildErr    error
	contactsBin string
)

// buildBinary compiles the contacts binary once for all tests.
func buildBinary(t *testing.T) string {
	t.Helper()
	buildOnce.Do(func() {
		root, err := findProjectRoot()
		if err != nil {
			buildErr = err
			return
		}
		dir, err := os.MkdirTemp("", "contacts-test-*")
		if err != nil {
			buildErr = err
			return
		}
		contactsBin = filepath.Join(dir, "contacts")
		cmd := exec.Command("go", "build", "-o", contactsBin, "./cmd/contacts")
		cmd.Dir = root
		if output, err := cmd.CombinedOutput(); err != nil {
			buildErr = fmt.Errorf("%v\n%s", err, output)
			contactsBin = ""
		}
	})
	if buildErr != nil {
		t.Fatalf("building contacts binary: %v", buildErr)
	}
	return contactsBin
}

// findProjectRoot walks up from the working directory looking for go.mod.
func findProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", os.ErrNotExist
		}
		dir = parent
	}
}

// runContacts executes the binary with an isolated config dir, feeding
// input on stdin and returning combined stdout output.
func runContacts(t *testing.T, workDir, input string, args ...string) string {
	t.Helper()
	bin := buildBinary(t)

	full := append([]string{"--config-dir", filepath.Join(workDir, ".config")}, args...)
	cmd := exec.Command(bin, full...)
	cmd.Dir = workDir
	cmd.Stdin = strings.NewReader(input)
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("running contacts %v: %v\noutput:\n%s", args, err, out)
	}
	return string(out)
}

func TestMenuLoopExits(t *testing.T) {
	dir := t.TempDir()

	out := runContacts(t, dir, "exit\n")

	if !strings.Contains(out, "[menu] Enter action (add, list, search, count, exit): ") {
		t.Errorf("missing menu prompt in output:\n%s", out)
	}
}

func TestAddPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.json")

	// First run: add a person; the snapshot file is created on save.
	out := runContacts(t, dir, "add\nperson\nJohn\nDoe\n2000-01-01\nM\n555-1234\nexit\n", file)
	if !strings.Contains(out, "The record added.") {
		t.Errorf("missing add confirmation in output:\n%s", out)
	}
	if _, err := os.Stat(file); err != nil {
		t.Fatalf("snapshot not created: %v", err)
	}

	// Second run: the record is still there.
	out = runContacts(t, dir, "count\nlist\nback\nexit\n", file)
	if !strings.Contains(out, "The Phone Book has 1 records.") {
		t.Errorf("record did not persist:\n%s", out)
	}
	if !strings.Contains(out, "1. John Doe") {
		t.Errorf("missing listed record:\n%s", out)
	}
}

func TestEditPersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.json")

	runContacts(t, dir, "add\nperson\nJohn\nDoe\n2000-01-01\nM\n555-1234\nexit\n", file)
	out := runContacts(t, dir, "list\n1\nedit\nname\nJane\nmenu\nexit\n", file)
	if !strings.Contains(out, "Saved") {
		t.Errorf("missing edit confirmation:\n%s", out)
	}

	out = runContacts(t, dir, "list\nback\nexit\n", file)
	if !strings.Contains(out, "1. Jane Doe") {
		t.Errorf("edit did not persist:\n%s", out)
	}
}

func TestDeletePersistsAcrossRuns(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.json")

	runContacts(t, dir, "add\nperson\nJohn\nDoe\n2000-01-01\nM\n555-1234\nexit\n", file)
	out := runContacts(t, dir, "list\n1\ndelete\nexit\n", file)
	if !strings.Contains(out, "The record removed!") {
		t.Errorf("missing delete confirmation:\n%s", out)
	}

	out = runContacts(t, dir, "count\nexit\n", file)
	if !strings.Contains(out, "The Phone Book has 0 records.") {
		t.Errorf("delete did not persist:\n%s", out)
	}
}

func TestSQLiteBackendByExtension(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.db")

	runContacts(t, dir, "add\norganization\nAcme Corp\n1 Main St\n555-0000\nexit\n", file)
	out := runContacts(t, dir, "count\nsearch\nacme\nback\nexit\n", file)

	if !strings.Contains(out, "The Phone Book has 1 records.") {
		t.Errorf("record did not persist in sqlite store:\n%s", out)
	}
	if !strings.Contains(out, "Found 1 results") {
		t.Errorf("search did not find persisted record:\n%s", out)
	}
}

func TestCorruptFileReportsOnceAndStaysUsable(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "book.json")
	if err := os.WriteFile(file, []byte("corrupted"), 0o644); err != nil {
		t.Fatal(err)
	}

	out := runContacts(t, dir, "count\nadd\nperson\nJohn\nDoe\n2000-01-01\nM\n555-1234\nexit\n", file)

	if got := strings.Count(out, "Cannot load file."); got != 1 {
		t.Errorf("want exactly one load diagnostic, got %d:\n%s", got, out)
	}
	if !strings.Contains(out, "The Phone Book has 0 records.") {
		t.Errorf("session should start empty:\n%s", out)
	}
	if !strings.Contains(out, "The record added.") {
		t.Errorf("session should stay usable after load failure:\n%s", out)
	}
}

func TestMissingFileStartsEmpty(t *testing.T) {
	dir := t.TempDir()

	out := runContacts(t, dir, "count\nexit\n", filepath.Join(dir, "absent.json"))

	if strings.Contains(out, "Cannot load file.") {
		t.Errorf("a missing file is not a load failure:\n%s", out)
	}
	if !strings.Contains(out, "The Phone Book has 0 records.") {
		t.Errorf("session should start empty:\n%s", out)
	}
}

func TestVersionCommand(t *testing.T) {
	dir := t.TempDir()

	out := runContacts(t, dir, "", "version")

	if !strings.HasPrefix(out, "contacts ") {
		t.Errorf("unexpected version output:\n%s", out)
	}
}
