package game

type Status int

const (
	InProgress Status = iota
	Win
	Draw
)

func (s Status) String() string {
	switch s {
	case InProgress:
		return "in_progress"
	case Win:
		return "win"
	case Draw:
		return "draw"
	}
	return "unknown"
}

// Outcome is the result of a game. Winner is only set when Status is Win.
type Outcome struct {
	Status Status
	Winner Player
}

func (o Outcome) IsOver() bool {
	return o.Status != InProgress
}

func (o Outcome) String() string {
	if o.Status == Win {
		return o.Winner.String() + " wins"
	}
	return o.Status.String()
}
