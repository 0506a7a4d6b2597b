package threads

// GroupInfo contains the display attributes of a thread group
type GroupInfo struct {
	ID          int    // Host identifier (PID for live groups), 0 when unknown
	Name        string // Display name
	MaxPriority int    // Highest priority a member thread may run at
	Daemon      bool   // Group is cleaned up automatically once empty
}

// ThreadInfo contains the display attributes of a single thread
type ThreadInfo struct {
	ID       int         // Host identifier (TID for live threads), 0 when unknown
	Name     string      // Display name
	Priority int         // Scheduling priority
	Daemon   bool        // Thread does not keep its group alive
	Alive    bool        // Thread is still schedulable
	State    ThreadState // Optional state letter, empty when unknown
}
