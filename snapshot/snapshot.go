package snapshot

import (
	"strings"

	"threadtree/threads"
)

// File is the on-disk layout of a snapshot
type File struct {
	Root *Group `json:"root" toml:"root"`
}

// Group is a fixed thread group. It implements threads.ThreadGroup.
type Group struct {
	ID          int      `json:"id,omitempty" toml:"id,omitempty"`
	Name        string   `json:"name" toml:"name"`
	MaxPriority int      `json:"max_priority" toml:"max_priority"`
	Daemon      bool     `json:"daemon" toml:"daemon"`
	Members     []Thread `json:"threads,omitempty" toml:"threads,omitempty"`
	Children    []*Group `json:"groups,omitempty" toml:"groups,omitempty"`

	parent *Group
}

// Thread is a fixed thread entry
type Thread struct {
	ID       int    `json:"id,omitempty" toml:"id,omitempty"`
	Name     string `json:"name" toml:"name"`
	Priority int    `json:"priority" toml:"priority"`
	Daemon   bool   `json:"daemon" toml:"daemon"`
	Alive    bool   `json:"alive" toml:"alive"`
	State    string `json:"state,omitempty" toml:"state,omitempty"`
}

var _ threads.ThreadGroup = (*Group)(nil)

func (g *Group) Info() threads.GroupInfo {
	if g == nil {
		return threads.GroupInfo{}
	}
	return threads.GroupInfo{
		ID:          g.ID,
		Name:        g.Name,
		MaxPriority: g.MaxPriority,
		Daemon:      g.Daemon,
	}
}

func (g *Group) Parent() threads.ThreadGroup {
	if g == nil || g.parent == nil {
		return nil
	}
	return g.parent
}

func (g *Group) Threads() []*threads.ThreadInfo {
	if g == nil {
		return nil
	}
	out := make([]*threads.ThreadInfo, 0, len(g.Members))
	for _, t := range g.Members {
		out = append(out, &threads.ThreadInfo{
			ID:       t.ID,
			Name:     t.Name,
			Priority: t.Priority,
			Daemon:   t.Daemon,
			Alive:    t.Alive,
			State:    threads.ThreadState(t.State),
		})
	}
	return out
}

func (g *Group) Groups() []threads.ThreadGroup {
	if g == nil {
		return nil
	}
	out := make([]threads.ThreadGroup, 0, len(g.Children))
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		out = append(out, child)
	}
	return out
}

// Add appends child below g and returns it
func (g *Group) Add(child *Group) *Group {
	child.parent = g
	g.Children = append(g.Children, child)
	return child
}

// Link sets the parent references of every group below g.
// Trees built by decoding have no parent references until linked.
func (g *Group) Link() {
	for _, child := range g.Children {
		if child == nil {
			continue
		}
		child.parent = g
		child.Link()
	}
}

// Find returns the group reached from g by following slash-separated
// child names. An empty path or "." returns g itself.
func (g *Group) Find(path string) (*Group, bool) {
	if g == nil {
		return nil, false
	}
	cur := g
	for _, name := range strings.Split(strings.Trim(path, "/"), "/") {
		if name == "" || name == "." {
			continue
		}
		next := cur.child(name)
		if next == nil {
			return nil, false
		}
		cur = next
	}
	return cur, true
}

func (g *Group) child(name string) *Group {
	for _, child := range g.Children {
		if child != nil && child.Name == name {
			return child
		}
	}
	return nil
}
