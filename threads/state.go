package threads

// ThreadState represents the scheduler state of a thread
type ThreadState string

const (
	ThreadRunning    ThreadState = "R" // Running
	ThreadSleeping   ThreadState = "S" // Sleeping in an interruptible wait
	ThreadWaiting    ThreadState = "D" // Waiting in uninterruptible disk sleep
	ThreadZombie     ThreadState = "Z" // Zombie
	ThreadStopped    ThreadState = "T" // Stopped (on a signal)
	ThreadTracingStp ThreadState = "t" // Tracing stop
	ThreadPaging     ThreadState = "W" // Paging
	ThreadDead       ThreadState = "X" // Dead
	ThreadWakekill   ThreadState = "K" // Wakekill
	ThreadIdle       ThreadState = "I" // Idle kernel thread
	ThreadParked     ThreadState = "P" // Parked
)

// Alive reports whether a thread in this state can still be scheduled.
// An unknown (empty) state counts as alive.
func (s ThreadState) Alive() bool {
	return s != ThreadZombie && s != ThreadDead
}

// Valid reports whether s is empty or one of the known state letters.
func (s ThreadState) Valid() bool {
	switch s {
	case "", ThreadRunning, ThreadSleeping, ThreadWaiting, ThreadZombie,
		ThreadStopped, ThreadTracingStp, ThreadPaging, ThreadDead,
		ThreadWakekill, ThreadIdle, ThreadParked:
		return true
	}
	return false
}
