package game

// Player is one of the two sides of a game. X always moves first.
type Player uint8

const (
	X Player = iota + 1
	O
)

// Opponent returns the other side. Calling it on an invalid player panics.
func (p Player) Opponent() Player {
	switch p {
	case X:
		return O
	case O:
		return X
	}
	panic("opponent of invalid player")
}

func (p Player) IsValid() bool {
	return p == X || p == O
}

func (p Player) String() string {
	switch p {
	case X:
		return "X"
	case O:
		return "O"
	}
	return "?"
}

// Cell is the content of one board square: either Empty or marked by a player.
// The zero value is Empty.
type Cell uint8

const Empty Cell = 0

// MarkedBy returns the cell holding p's mark.
func MarkedBy(p Player) Cell {
	return Cell(p)
}

// Owner returns the player whose mark occupies the cell, if any.
func (c Cell) Owner() (Player, bool) {
	if c == Empty {
		return 0, false
	}
	return Player(c), true
}

func (c Cell) String() string {
	if p, ok := c.Owner(); ok {
		return p.String()
	}
	return " "
}
