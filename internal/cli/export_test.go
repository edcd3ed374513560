package cli

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

// runCommand executes the CLI against args with stderr logging captured.
func runCommand(t *testing.T, args ...string) error {
	t.Helper()
	c := New(io.Discard, log.ErrorLevel)
	root := c.RootCommand()
	root.SetArgs(args)
	root.SetOut(io.Discard)
	root.SetErr(io.Discard)
	return root.Execute()
}

func TestExportDOTToFile(t *testing.T) {
	input := writeTestDoc(t)
	output := filepath.Join(t.TempDir(), "graph.dot")

	if err := runCommand(t, "export", input, "-o", output); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	dot := string(data)
	if !strings.HasPrefix(dot, "digraph {\n") || !strings.HasSuffix(dot, "}") {
		t.Errorf("export produced malformed DOT:\n%s", dot)
	}
	// app -> lib, app -> core, lib -> core, tool -> core.
	if got := strings.Count(dot, "->"); got != 4 {
		t.Errorf("DOT has %d edges, want 4", got)
	}
}

func TestExportJSONToFile(t *testing.T) {
	input := writeTestDoc(t)
	output := filepath.Join(t.TempDir(), "graph.json")

	if err := runCommand(t, "export", input, "-f", "json", "-o", output); err != nil {
		t.Fatalf("export error = %v", err)
	}

	data, err := os.ReadFile(output)
	if err != nil {
		t.Fatal(err)
	}
	var doc struct {
		Nodes []struct {
			Name string `json:"name"`
		} `json:"nodes"`
	}
	if err := json.Unmarshal(data, &doc); err != nil {
		t.Fatalf("export produced invalid JSON: %v", err)
	}
	if len(doc.Nodes) != 4 {
		t.Errorf("exported %d nodes, want 4", len(doc.Nodes))
	}
}

func TestExportRejectsUnknownFormat(t *testing.T) {
	input := writeTestDoc(t)

	err := runCommand(t, "export", input, "-f", "yaml")
	if err == nil || !strings.Contains(err.Error(), "invalid format") {
		t.Errorf("export -f yaml error = %v, want invalid format", err)
	}
}

func TestWalkUnknownStart(t *testing.T) {
	input := writeTestDoc(t)

	if err := runCommand(t, "walk", input, "-s", "ghost"); err == nil {
		t.Error("walk -s ghost succeeded, want error")
	}
}

func TestOrderRuns(t *testing.T) {
	input := writeTestDoc(t)

	if err := runCommand(t, "order", input); err != nil {
		t.Errorf("order error = %v", err)
	}
}

func TestVisitPruneAndPostpone(t *testing.T) {
	input := writeTestDoc(t)

	if err := runCommand(t, "visit", input, "-s", "app", "--prune", "lib", "--postpone", "core"); err != nil {
		t.Errorf("visit error = %v", err)
	}
}

func TestExportDOTStdout(t *testing.T) {
	input := writeTestDoc(t)

	old := os.Stdout
	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	os.Stdout = w

	runErr := runCommand(t, "export", input)

	w.Close()
	os.Stdout = old
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r); err != nil {
		t.Fatal(err)
	}

	if runErr != nil {
		t.Fatalf("export error = %v", runErr)
	}
	if !strings.HasPrefix(buf.String(), "digraph {") {
		t.Errorf("stdout = %q, want DOT output", buf.String())
	}
}
