package game

type Status string

const (
	StatusScheduled  Status = "scheduled"
	StatusOpen       Status = "open"
	StatusFull       Status = "full"
	StatusInProgress Status = "in_progress"
	StatusCompleted  Status = "completed"
	StatusCancelled  Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusScheduled, StatusOpen, StatusFull, StatusInProgress, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

func NewStatus(s string) (Status, error) {
	status := Status(s)
	if !status.IsValid() {
		return "", ErrInvalidStatus
	}
	return status, nil
}

// IsTerminal reports statuses that capacity changes never move a game out of.
func (s Status) IsTerminal() bool {
	return s == StatusCancelled || s == StatusCompleted || s == StatusInProgress
}

// NextStatus is the single transition function for capacity-driven status
// changes. The same rule is expressed in SQL by the capacity queries.
func NextStatus(current Status, spotsRemaining int) Status {
	if current.IsTerminal() {
		return current
	}
	if spotsRemaining <= 0 {
		return StatusFull
	}
	if current == StatusFull {
		return StatusOpen
	}
	return current
}
