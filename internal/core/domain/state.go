package domain

// State is the lifecycle state of the build orchestrator.
type State int32

const (
	// StateIdle means no session is active and a new build may start.
	StateIdle State = iota
	// StateValidating means a request is being validated and launched.
	StateValidating
	// StateRunning means the packaging tool is running.
	StateRunning
	// StateSucceeded means the last session finished with exit code 0.
	StateSucceeded
	// StateFailed means the last session failed.
	StateFailed
	// StateToolMissing means the packaging tool could not be located.
	StateToolMissing
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateValidating:
		return "validating"
	case StateRunning:
		return "running"
	case StateSucceeded:
		return "succeeded"
	case StateFailed:
		return "failed"
	case StateToolMissing:
		return "tool-missing"
	default:
		return "unknown"
	}
}

// Terminal reports whether s ends a session.
func (s State) Terminal() bool {
	return s == StateSucceeded || s == StateFailed || s == StateToolMissing
}
