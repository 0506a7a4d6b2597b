package threads

// LocateRoot returns the root of the tree containing the caller's own group.
// It returns nil only when the inspector reports no current group.
func LocateRoot(inspector GroupInspector) ThreadGroup {
	if inspector == nil {
		return nil
	}
	return RootOf(inspector.CurrentGroup())
}

// RootOf follows parent references from g until it reaches a group with no parent.
func RootOf(g ThreadGroup) ThreadGroup {
	if isNil(g) {
		return nil
	}
	for {
		parent := g.Parent()
		if isNil(parent) {
			return g
		}
		g = parent
	}
}
