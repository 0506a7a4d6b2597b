//go:build linux

package threads_linux

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"threadtree/threads"
)

const procRoot = "/proc"

// taskStat holds the fields of /proc/<pid>/task/<tid>/stat this package uses
type taskStat struct {
	Comm  string
	State threads.ThreadState
	PPID  int
	TTY   int
	Nice  int
}

// parseStat parses a stat line. The comm field may contain spaces and
// parentheses, so it runs from the first '(' to the last ')'.
func parseStat(data string) (taskStat, error) {
	var st taskStat

	open := strings.IndexByte(data, '(')
	end := strings.LastIndexByte(data, ')')
	if open < 0 || end < open {
		return st, errors.New("invalid stat format: no comm field")
	}
	st.Comm = data[open+1 : end]

	// rest[0] is field 3 (state)
	rest := strings.Fields(data[end+1:])
	if len(rest) < 17 {
		return st, fmt.Errorf("invalid stat format: %d fields after comm", len(rest))
	}

	st.State = threads.ThreadState(rest[0])

	var err error
	if st.PPID, err = strconv.Atoi(rest[1]); err != nil {
		return st, fmt.Errorf("invalid ppid: %w", err)
	}
	if st.TTY, err = strconv.Atoi(rest[4]); err != nil {
		return st, fmt.Errorf("invalid tty_nr: %w", err)
	}
	if st.Nice, err = strconv.Atoi(rest[16]); err != nil {
		return st, fmt.Errorf("invalid nice: %w", err)
	}

	return st, nil
}

// niceToPriority maps a nice value (-20..19) onto 1..40, higher runs first
func niceToPriority(nice int) int {
	return 20 - nice
}

func readStat(path string) (taskStat, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return taskStat{}, err
	}
	st, err := parseStat(string(data))
	if err != nil {
		return taskStat{}, fmt.Errorf("%s: %w", path, err)
	}
	return st, nil
}

// readTask reads one task of process pid
func readTask(root string, pid, tid int) (*threads.ThreadInfo, error) {
	dir := filepath.Join(root, strconv.Itoa(pid), "task", strconv.Itoa(tid))

	st, err := readStat(filepath.Join(dir, "stat"))
	if err != nil {
		return nil, err
	}

	// prefer the comm file, stat's copy is the fallback
	name := st.Comm
	if comm, err := os.ReadFile(filepath.Join(dir, "comm")); err == nil {
		if trimmed := string(bytesTrimNL(comm)); trimmed != "" {
			name = trimmed
		}
	}

	return &threads.ThreadInfo{
		ID:       tid,
		Name:     name,
		Priority: niceToPriority(st.Nice),
		Daemon:   tid != pid,
		Alive:    st.State.Alive(),
		State:    st.State,
	}, nil
}

// listTasks returns the task IDs of process pid in ascending order
func listTasks(root string, pid int) ([]int, error) {
	entries, err := os.ReadDir(filepath.Join(root, strconv.Itoa(pid), "task"))
	if err != nil {
		return nil, err
	}

	tids := make([]int, 0, len(entries))
	for _, e := range entries {
		tid, err := strconv.Atoi(e.Name())
		if err != nil || tid <= 0 {
			continue
		}
		tids = append(tids, tid)
	}
	slices.Sort(tids)

	return tids, nil
}

func bytesTrimNL(b []byte) []byte {
	// Trim trailing '\n' if present (comm has a newline).
	for len(b) > 0 {
		switch b[len(b)-1] {
		case '\n', '\r', ' ', '\t':
			b = b[:len(b)-1]
		default:
			return b
		}
	}
	return b
}
