package components

import "github.com/yohamta/donburi"

// SessionState is the game's only state machine: Ready -> Playing -> Ended.
type SessionState int

const (
	SessionReady SessionState = iota
	SessionPlaying
	SessionEnded
)

func (s SessionState) String() string {
	switch s {
	case SessionReady:
		return "ready"
	case SessionPlaying:
		return "playing"
	case SessionEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Outcome records how an ended session finished
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeVictory
	OutcomeDefeat
)

func (o Outcome) String() string {
	switch o {
	case OutcomeVictory:
		return "victory"
	case OutcomeDefeat:
		return "defeat"
	default:
		return "none"
	}
}

// SessionData holds the score and session state. Singleton component.
type SessionData struct {
	State   SessionState
	Outcome Outcome
	Score   int
	Frames  int // Frames spent in Playing
}

// Defeated reports whether the session has reached its terminal state,
// regardless of whether it was won or lost.
func (s *SessionData) Defeated() bool {
	return s.State == SessionEnded
}

// Playing reports whether gameplay systems should run.
func (s *SessionData) Playing() bool {
	return s.State == SessionPlaying
}

var Session = donburi.NewComponentType[SessionData]()
