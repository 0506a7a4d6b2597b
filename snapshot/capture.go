package snapshot

import "threadtree/threads"

// Capture copies the tree below g into a fixed snapshot. Groups nested
// deeper than maxDepth below g are left out; zero or less means no limit.
// The copy is only as consistent as the enumerations g returns.
func Capture(g threads.ThreadGroup, maxDepth int) *Group {
	var (
		root  *Group
		stack []*Group
	)

	v := threads.VisitorFuncs{
		Group: func(depth int, tg threads.ThreadGroup) error {
			if maxDepth > 0 && depth > maxDepth {
				return threads.SkipGroup
			}
			info := tg.Info()
			grp := &Group{
				ID:          info.ID,
				Name:        info.Name,
				MaxPriority: info.MaxPriority,
				Daemon:      info.Daemon,
			}
			stack = append(stack[:depth], grp)
			if depth == 0 {
				root = grp
			} else {
				stack[depth-1].Add(grp)
			}
			return nil
		},
		Thread: func(depth int, t *threads.ThreadInfo) error {
			grp := stack[depth]
			grp.Members = append(grp.Members, Thread{
				ID:       t.ID,
				Name:     t.Name,
				Priority: t.Priority,
				Daemon:   t.Daemon,
				Alive:    t.Alive,
				State:    string(t.State),
			})
			return nil
		},
	}
	// the visitor never fails
	_ = threads.Walk(g, v)

	return root
}
