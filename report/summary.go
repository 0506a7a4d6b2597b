package report

import (
	"fmt"

	"threadtree/threads"
)

// Summary counts what a report contains
type Summary struct {
	Groups          int
	Threads         int
	DaemonThreads   int
	NotAlive        int
	MaxDepth        int
	DaemonGroups    int
	HighestPriority int
}

// Summarize walks root with the reporter's depth limit and counts its contents
func (r *Reporter) Summarize(root threads.ThreadGroup) Summary {
	var s Summary
	v := threads.VisitorFuncs{
		Group: func(depth int, g threads.ThreadGroup) error {
			if r.tooDeep(depth) {
				return threads.SkipGroup
			}
			info := g.Info()
			s.Groups++
			if info.Daemon {
				s.DaemonGroups++
			}
			if depth > s.MaxDepth {
				s.MaxDepth = depth
			}
			return nil
		},
		Thread: func(depth int, t *threads.ThreadInfo) error {
			s.Threads++
			if t.Daemon {
				s.DaemonThreads++
			}
			if !t.Alive {
				s.NotAlive++
			}
			if s.Threads == 1 || t.Priority > s.HighestPriority {
				s.HighestPriority = t.Priority
			}
			return nil
		},
	}
	// the visitor never fails
	_ = threads.Walk(root, v)
	return s
}

func (s Summary) String() string {
	return fmt.Sprintf("%d groups (%d daemon), %d threads (%d daemon, %d not alive), depth %d, highest priority %d",
		s.Groups, s.DaemonGroups, s.Threads, s.DaemonThreads, s.NotAlive, s.MaxDepth, s.HighestPriority)
}
