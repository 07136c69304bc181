package booking

type Status string

const (
	StatusHold      Status = "HOLD"
	StatusConfirmed Status = "CONFIRMED"
	StatusCancelled Status = "CANCELLED"
)

var transitions = map[Status][]Status{
	StatusHold:      {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCancelled},
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusHold, StatusConfirmed, StatusCancelled:
		return true
	default:
		return false
	}
}

// CanTransitionTo reports whether next is reachable from s in one step.
// Staying in the same status is always allowed.
func (s Status) CanTransitionTo(next Status) bool {
	if !next.IsValid() {
		return false
	}
	if s == next {
		return true
	}
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

func (s Status) IsTerminal() bool {
	return len(transitions[s]) == 0
}
