package domain

// BuildOutcome is the result of a finished build session.
type BuildOutcome struct {
	// State is the terminal state the session reached.
	State State
	// ExitCode is the exit code of the packaging tool, or -1 if it never ran.
	ExitCode int
	// Transcript holds every line appended to the log during the session.
	Transcript []string
	// ArtifactHint points at the produced artifact on success.
	ArtifactHint string
	Err          error
}

// Succeeded reports whether the session produced an artifact.
func (o BuildOutcome) Succeeded() bool {
	return o.State == StateSucceeded
}
