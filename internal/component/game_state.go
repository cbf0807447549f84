package component

// GameState is the phase of the whole play session
type GameState int

const (
	NotStarted GameState = iota
	Running
	Ended
)

func (s GameState) String() string {
	switch s {
	case Running:
		return "running"
	case Ended:
		return "ended"
	}
	return "not started"
}
