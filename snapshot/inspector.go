package snapshot

import (
	"fmt"

	"threadtree/threads"
)

// Inspector serves a fixed tree, treating one of its groups as the
// caller's own group
type Inspector struct {
	current *Group
}

var _ threads.GroupInspector = (*Inspector)(nil)

// NewInspector resolves current (a slash-separated path below root, empty
// for root itself) and returns an inspector reporting it as the current group
func NewInspector(root *Group, current string) (*Inspector, error) {
	if root == nil {
		return nil, fmt.Errorf("snapshot inspector: nil root")
	}
	g, ok := root.Find(current)
	if !ok {
		return nil, fmt.Errorf("snapshot inspector: %q: %w", current, ErrGroupNotFound)
	}
	return &Inspector{current: g}, nil
}

func (i *Inspector) CurrentGroup() threads.ThreadGroup {
	return i.current
}
