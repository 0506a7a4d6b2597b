//go:build linux

package threads_linux

import "threadtree/threads"

// processGroup is a live process viewed as a thread group
type processGroup struct {
	ins *Inspector
	pid int
}

var _ threads.ThreadGroup = (*processGroup)(nil)

func (g *processGroup) Info() threads.GroupInfo {
	e, ok := g.ins.entry(g.pid)
	if !ok {
		return threads.GroupInfo{ID: g.pid}
	}
	return threads.GroupInfo{
		ID:          e.pid,
		Name:        e.name,
		MaxPriority: e.priority,
		Daemon:      e.tty == 0,
	}
}

func (g *processGroup) Parent() threads.ThreadGroup {
	e, ok := g.ins.entry(g.pid)
	if !ok || e.ppid == 0 || e.ppid == g.pid {
		return nil
	}
	return g.ins.Group(e.ppid)
}

// Threads reads the process's tasks now; tasks that exit between listing
// and reading are skipped
func (g *processGroup) Threads() []*threads.ThreadInfo {
	tids, err := listTasks(g.ins.root, g.pid)
	if err != nil {
		g.ins.log.Debugln("Failed to list tasks of", g.pid, err)
		return nil
	}

	out := make([]*threads.ThreadInfo, 0, len(tids))
	for _, tid := range tids {
		t, err := readTask(g.ins.root, g.pid, tid)
		if err != nil {
			g.ins.log.Debugln("Skipping task", tid, "of", g.pid, err)
			continue
		}
		out = append(out, t)
	}
	return out
}

func (g *processGroup) Groups() []threads.ThreadGroup {
	pids := g.ins.childPIDs(g.pid)
	out := make([]threads.ThreadGroup, 0, len(pids))
	for _, pid := range pids {
		if child := g.ins.Group(pid); child != nil {
			out = append(out, child)
		}
	}
	return out
}
