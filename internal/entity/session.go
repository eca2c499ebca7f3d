package entity

// SessionState is the top-level voice session state. The dispatcher owns it
// exclusively; feature handlers never see or mutate it.
type SessionState int

const (
	StateListening SessionState = iota
	StateDispatching
	StateFollowUp
	StateTerminated
)

func (s SessionState) String() string {
	switch s {
	case StateListening:
		return "listening"
	case StateDispatching:
		return "dispatching"
	case StateFollowUp:
		return "follow_up"
	case StateTerminated:
		return "terminated"
	default:
		return "unknown"
	}
}
