package threads

import (
	"errors"
	"reflect"
)

// SkipGroup is returned by Visitor.VisitGroup to leave out the group's
// threads and child groups. Walk never returns it.
var SkipGroup = errors.New("skip this group")

// Visitor receives the nodes of a tree in depth-first pre-order.
// Depth is 0 for the group Walk starts from.
type Visitor interface {
	VisitGroup(depth int, g ThreadGroup) error
	VisitThread(depth int, t *ThreadInfo) error
}

// Walk visits root, its threads, then each child group in turn.
//
// Nil groups (including nil pointers held in a ThreadGroup) and nil threads
// are skipped: enumerations of live state may include entries that vanished
// before they could be read. The first error
// returned by the visitor, other than SkipGroup, stops the walk.
func Walk(root ThreadGroup, v Visitor) error {
	return walk(root, 0, v)
}

func walk(g ThreadGroup, depth int, v Visitor) error {
	if isNil(g) {
		return nil
	}

	if err := v.VisitGroup(depth, g); err != nil {
		if errors.Is(err, SkipGroup) {
			return nil
		}
		return err
	}

	for _, t := range g.Threads() {
		if t == nil {
			continue
		}
		if err := v.VisitThread(depth, t); err != nil {
			return err
		}
	}

	for _, child := range g.Groups() {
		if err := walk(child, depth+1, v); err != nil {
			return err
		}
	}

	return nil
}

// VisitorFuncs adapts a pair of functions to the Visitor interface.
// A nil function accepts every node.
type VisitorFuncs struct {
	Group  func(depth int, g ThreadGroup) error
	Thread func(depth int, t *ThreadInfo) error
}

func (f VisitorFuncs) VisitGroup(depth int, g ThreadGroup) error {
	if f.Group == nil {
		return nil
	}
	return f.Group(depth, g)
}

func (f VisitorFuncs) VisitThread(depth int, t *ThreadInfo) error {
	if f.Thread == nil {
		return nil
	}
	return f.Thread(depth, t)
}

// isNil reports whether g is nil or wraps a nil pointer
func isNil(g ThreadGroup) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface:
		return v.IsNil()
	}
	return false
}
