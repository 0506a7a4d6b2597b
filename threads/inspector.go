package threads

// ThreadGroup is a read-only view of one node in a tree of thread groups.
// Implementations are owned by the host; every enumeration is a snapshot
// taken at call time and may already be stale when it is returned.
type ThreadGroup interface {
	// Info returns the group's display attributes
	Info() GroupInfo

	// Parent returns the enclosing group, or nil at the root
	Parent() ThreadGroup

	// Threads returns the threads directly contained in the group
	Threads() []*ThreadInfo

	// Groups returns the groups directly contained in the group
	Groups() []ThreadGroup
}

// GroupInspector resolves the group the calling unit of execution belongs to
type GroupInspector interface {
	// CurrentGroup returns the caller's own group
	CurrentGroup() ThreadGroup
}
