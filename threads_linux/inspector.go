//go:build linux

package threads_linux

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"sync"

	"threadtree/threads"

	"github.com/Moonlight-Companies/gologger/coloransi"
	"github.com/Moonlight-Companies/gologger/logger"
	"github.com/shirou/gopsutil/v3/process"
	"golang.org/x/sys/unix"
)

// processEntry is one row of the process table
type processEntry struct {
	pid      int
	ppid     int
	name     string
	tty      int
	priority int
}

// Inspector exposes live Linux processes as thread groups and their tasks
// as threads. The process table (parents, names) is captured by Refresh;
// tasks are read from /proc each time a group is enumerated.
type Inspector struct {
	mu       sync.RWMutex
	table    map[int]*processEntry
	children map[int][]int
	current  int
	byName   string
	root     string
	log      *logger.Logger
}

var _ threads.GroupInspector = (*Inspector)(nil)

// Option configures an Inspector
type Option func(*Inspector)

// WithCurrentPID makes pid the inspector's current group instead of the
// calling process
func WithCurrentPID(pid int) Option {
	return func(i *Inspector) {
		i.current = pid
	}
}

// WithCurrentName makes the lowest-PID process named name the inspector's
// current group
func WithCurrentName(name string) Option {
	return func(i *Inspector) {
		i.byName = name
	}
}

// NewInspector creates an Inspector and captures the process table
func NewInspector(ctx context.Context, opts ...Option) (*Inspector, error) {
	i := &Inspector{
		current: unix.Getpid(),
		root:    procRoot,
		log:     logger.NewLogger(coloransi.Color(coloransi.ColorPurple, coloransi.ColorOrange, "procfs")),
	}
	for _, opt := range opts {
		opt(i)
	}

	if err := i.Refresh(ctx); err != nil {
		return nil, err
	}

	if i.byName != "" {
		pid, err := i.FindByName(i.byName)
		if err != nil {
			return nil, err
		}
		i.current = pid
	}

	i.mu.RLock()
	_, ok := i.table[i.current]
	i.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("process with PID %d does not exist", i.current)
	}

	return i, nil
}

// Refresh rebuilds the process table. Processes that exit while the table
// is being read are left out.
func (i *Inspector) Refresh(ctx context.Context) error {
	pids, err := process.PidsWithContext(ctx)
	if err != nil {
		return fmt.Errorf("failed to list processes: %w", err)
	}

	table := make(map[int]*processEntry, len(pids))
	for _, pid := range pids {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("refresh canceled: %w", err)
		}

		entry, err := i.readProcess(ctx, int(pid))
		if err != nil {
			// Process may have terminated while we were reading
			i.log.Debugln("Skipping process", pid, err)
			continue
		}
		table[entry.pid] = entry
	}

	children := make(map[int][]int)
	for pid, entry := range table {
		if entry.ppid == pid {
			continue
		}
		children[entry.ppid] = append(children[entry.ppid], pid)
	}
	for _, list := range children {
		slices.Sort(list)
	}

	i.mu.Lock()
	i.table = table
	i.children = children
	i.mu.Unlock()

	i.log.Infoln("Process table refreshed,", len(table), "processes")

	return nil
}

func (i *Inspector) readProcess(ctx context.Context, pid int) (*processEntry, error) {
	proc, err := process.NewProcessWithContext(ctx, int32(pid))
	if err != nil {
		return nil, err
	}

	name, err := proc.NameWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read process name: %w", err)
	}

	st, err := readStat(filepath.Join(i.root, strconv.Itoa(pid), "stat"))
	if err != nil {
		return nil, err
	}

	// getpriority(2) returns 20 - nice, the same scale as niceToPriority
	priority, err := unix.Getpriority(unix.PRIO_PROCESS, pid)
	if err != nil {
		priority = niceToPriority(st.Nice)
	}

	return &processEntry{
		pid:      pid,
		ppid:     st.PPID,
		name:     name,
		tty:      st.TTY,
		priority: priority,
	}, nil
}

func (i *Inspector) CurrentGroup() threads.ThreadGroup {
	return i.Group(i.current)
}

// Group returns the thread group for pid, or nil if pid is not in the table
func (i *Inspector) Group(pid int) threads.ThreadGroup {
	i.mu.RLock()
	defer i.mu.RUnlock()

	if _, ok := i.table[pid]; !ok {
		return nil
	}
	return &processGroup{ins: i, pid: pid}
}

// FindByName returns the lowest PID whose name equals name, or
// os.ErrNotExist if none matches
func (i *Inspector) FindByName(name string) (int, error) {
	i.mu.RLock()
	defer i.mu.RUnlock()

	found := 0
	for pid, entry := range i.table {
		if entry.name != name {
			continue
		}
		if found == 0 || pid < found {
			found = pid
		}
	}
	if found == 0 {
		return 0, fmt.Errorf("no process found with name '%s': %w", name, os.ErrNotExist)
	}
	return found, nil
}

func (i *Inspector) entry(pid int) (*processEntry, bool) {
	i.mu.RLock()
	defer i.mu.RUnlock()
	e, ok := i.table[pid]
	return e, ok
}

func (i *Inspector) childPIDs(pid int) []int {
	i.mu.RLock()
	defer i.mu.RUnlock()
	return slices.Clone(i.children[pid])
}
