package game

import "fmt"

// Move identifies a cell by its zero-based row and column.
type Move struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// NoMove is returned when there is no vacant cell left to play.
var NoMove = Move{Row: -1, Col: -1}

func (m Move) IsValid() bool {
	return inRange(m.Row) && inRange(m.Col)
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Col)
}
