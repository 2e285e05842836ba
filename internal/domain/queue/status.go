package queue

import "fmt"

type Status string

const (
	StatusCreate  Status = "create"
	StatusUpdate  Status = "update"
	StatusDelete  Status = "delete"
	StatusSuccess Status = "success"
	StatusFailed  Status = "failed"
)

// legal moves out of each status; a pending action only ever settles.
var transitions = map[Status][]Status{
	StatusCreate:  {StatusSuccess, StatusFailed},
	StatusUpdate:  {StatusSuccess, StatusFailed},
	StatusDelete:  {StatusSuccess, StatusFailed},
	StatusSuccess: nil,
	StatusFailed:  nil,
}

func ParseStatus(s string) (Status, error) {
	st := Status(s)
	if !st.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidStatus, s)
	}
	return st, nil
}

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	_, ok := transitions[s]
	return ok
}

func (s Status) IsTerminal() bool {
	return s == StatusSuccess || s == StatusFailed
}

// IsAction reports whether the status is one of the pending intents.
func (s Status) IsAction() bool {
	switch s {
	case StatusCreate, StatusUpdate, StatusDelete:
		return true
	default:
		return false
	}
}

func Transition(from, to Status) error {
	for _, next := range transitions[from] {
		if next == to {
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
}

// PendingStatuses lists the statuses the dispatcher selects from.
func PendingStatuses() []Status {
	return []Status{StatusCreate, StatusUpdate, StatusDelete}
}
