package report

import (
	"io"
	"strconv"
	"strings"

	"threadtree/coloransi"
	"threadtree/threads"
)

// List writes a flat table with one row per thread beneath root.
// Groups without threads get a row of their own so no group is lost.
func (r *Reporter) List(w io.Writer, root threads.ThreadGroup) error {
	t := r.threadTable()

	var (
		path    []string
		pending string // group whose row is owed if no thread follows
	)
	flush := func() {
		if pending != "" {
			t.AddRow(pending)
			pending = ""
		}
	}

	v := threads.VisitorFuncs{
		Group: func(depth int, g threads.ThreadGroup) error {
			if r.tooDeep(depth) {
				return threads.SkipGroup
			}
			flush()
			path = append(path[:depth], g.Info().Name)
			pending = strings.Join(path, "/")
			return nil
		},
		Thread: func(depth int, th *threads.ThreadInfo) error {
			pending = ""
			id := ""
			if th.ID != 0 {
				id = strconv.Itoa(th.ID)
			}
			t.AddRow(
				strings.Join(path[:depth+1], "/"),
				th.Name,
				id,
				strconv.Itoa(th.Priority),
				yesNo(th.Daemon),
				yesNo(th.Alive),
				string(th.State),
			)
			return nil
		},
	}
	if err := threads.Walk(root, v); err != nil {
		return err
	}
	flush()
	if t.Len() == 0 {
		return nil
	}
	return t.Render(w)
}

func (r *Reporter) threadTable() *Table {
	var alive FormatFunc
	if r.color {
		alive = func(v string) string {
			if v == "no" {
				return coloransi.Foreground(coloransi.Red, v)
			}
			return v
		}
	}
	return NewTable(
		ColumnSpec{Header: "GROUP"},
		ColumnSpec{Header: "THREAD"},
		ColumnSpec{Header: "ID"},
		ColumnSpec{Header: "PRIORITY"},
		ColumnSpec{Header: "DAEMON"},
		ColumnSpec{Header: "ALIVE", FormatFunc: alive},
		ColumnSpec{Header: "STATE"},
	)
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
