package report

import (
	"bytes"
	"strings"
	"testing"

	"threadtree/coloransi"
	"threadtree/threads"
)

func TestTableRender(t *testing.T) {
	t.Parallel()

	tbl := NewTable(
		ColumnSpec{Header: "NAME"},
		ColumnSpec{Header: "N", MinWidth: 3},
	)
	tbl.AddRow("alpha", "1")
	tbl.AddRow("b")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	want := "NAME  N\n" +
		"----- ---\n" +
		"alpha 1\n" +
		"b     -\n"
	if got := buf.String(); got != want {
		t.Errorf("Render() =\n%q\nwant\n%q", got, want)
	}
}

func TestTableIgnoresANSIWidth(t *testing.T) {
	t.Parallel()

	red := func(v string) string { return coloransi.Foreground(coloransi.Red, v) }
	tbl := NewTable(ColumnSpec{Header: "A", FormatFunc: red}, ColumnSpec{Header: "B"})
	tbl.AddRow("xy", "z")

	var buf bytes.Buffer
	if err := tbl.Render(&buf); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	lines := strings.Split(coloransi.Strip(buf.String()), "\n")
	if lines[2] != "xy z" {
		t.Errorf("row = %q, want %q", lines[2], "xy z")
	}
}

func TestList(t *testing.T) {
	t.Parallel()

	root := exampleTree()
	root.group(threads.GroupInfo{Name: "idle"})

	var buf bytes.Buffer
	if err := New().List(&buf, root); err != nil {
		t.Fatalf("List() error = %v", err)
	}
	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 5 {
		t.Fatalf("List() produced %d lines, want 5:\n%s", len(lines), buf.String())
	}
	if fields := strings.Fields(lines[0]); strings.Join(fields, " ") != "GROUP THREAD ID PRIORITY DAEMON ALIVE STATE" {
		t.Errorf("header = %q", lines[0])
	}

	rows := []string{
		"main worker-1 - 5 no yes -",
		"main/pool worker-2 - 3 yes no -",
		"main/idle - - - - - -",
	}
	for i, want := range rows {
		if got := strings.Join(strings.Fields(lines[i+2]), " "); got != want {
			t.Errorf("row %d = %q, want %q", i, got, want)
		}
	}
}

func TestListEmpty(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	if err := New().List(&buf, nil); err != nil {
		t.Fatalf("List(nil) error = %v", err)
	}
	if buf.Len() != 0 {
		t.Errorf("List(nil) wrote %q", buf.String())
	}
}
