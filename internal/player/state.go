package player

type State int

const (
	Idle State = iota
	Running
	Paused
	Completed
	Abandoned
)

func (s State) String() string {
	switch s {
	case Running:
		return "running"
	case Paused:
		return "paused"
	case Completed:
		return "completed"
	case Abandoned:
		return "abandoned"
	default:
		return "idle"
	}
}

// Active reports whether a session is in progress. Completed and Abandoned only
// report how the last session ended and behave like Idle otherwise.
func (s State) Active() bool {
	return s == Running || s == Paused
}
