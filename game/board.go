package game

import (
	"errors"
	"fmt"
)

// Size is the number of rows and columns of the board.
const Size = 3

var (
	ErrOutOfRange    = errors.New("coordinate out of range")
	ErrOccupied      = errors.New("cell is already occupied")
	ErrInvalidPlayer = errors.New("invalid player")
)

// lines lists every winning line: rows, columns, then both diagonals.
var lines = [8][3]Move{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Board is the 3x3 grid. It is mutated in place by every move, and
// temporarily by the search engine, which always undoes its own writes.
type Board struct {
	cells [Size][Size]Cell
}

// NewBoard returns an empty board.
func NewBoard() *Board {
	return &Board{}
}

// Clone returns an independent copy of the board.
func (b *Board) Clone() *Board {
	c := *b
	return &c
}

// IsVacant reports whether no mark occupies the cell.
// Querying outside the board is a caller bug and panics.
func (b *Board) IsVacant(row, col int) bool {
	if err := checkRange(row, col); err != nil {
		panic(err)
	}
	return b.cells[row][col] == Empty
}

// Cell returns the content of a cell.
func (b *Board) Cell(row, col int) (Cell, error) {
	if err := checkRange(row, col); err != nil {
		return Empty, err
	}
	return b.cells[row][col], nil
}

// Place writes p's mark into a vacant cell.
func (b *Board) Place(row, col int, p Player) error {
	if err := checkRange(row, col); err != nil {
		return err
	}
	if !p.IsValid() {
		return fmt.Errorf("%w: %d", ErrInvalidPlayer, p)
	}
	if b.cells[row][col] != Empty {
		return fmt.Errorf("%w: (%d,%d) holds %s", ErrOccupied, row, col, b.cells[row][col])
	}
	b.cells[row][col] = MarkedBy(p)
	return nil
}

// Clear reverts a cell to vacant. Only the search engine uses it, to undo
// a speculative move.
func (b *Board) Clear(row, col int) error {
	if err := checkRange(row, col); err != nil {
		return err
	}
	b.cells[row][col] = Empty
	return nil
}

// IsWinner reports whether p holds all three cells of any row, column or diagonal.
func (b *Board) IsWinner(p Player) bool {
	mark := MarkedBy(p)
	for _, line := range lines {
		if b.at(line[0]) == mark && b.at(line[1]) == mark && b.at(line[2]) == mark {
			return true
		}
	}
	return false
}

// IsDraw reports whether every cell is occupied. It ignores winners, so
// callers must check IsWinner first.
func (b *Board) IsDraw() bool {
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				return false
			}
		}
	}
	return true
}

// Vacancies returns the vacant cells in row-major order.
func (b *Board) Vacancies() []Move {
	moves := make([]Move, 0, Size*Size)
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == Empty {
				moves = append(moves, Move{Row: r, Col: c})
			}
		}
	}
	return moves
}

// Marks counts the cells holding p's mark.
func (b *Board) Marks(p Player) int {
	mark := MarkedBy(p)
	count := 0
	for r := range Size {
		for c := range Size {
			if b.cells[r][c] == mark {
				count++
			}
		}
	}
	return count
}

// Outcome derives the state of the game from the board.
func (b *Board) Outcome() Outcome {
	switch {
	case b.IsWinner(X):
		return Outcome{Status: Win, Winner: X}
	case b.IsWinner(O):
		return Outcome{Status: Win, Winner: O}
	case b.IsDraw():
		return Outcome{Status: Draw}
	}
	return Outcome{Status: InProgress}
}

func (b *Board) at(m Move) Cell {
	return b.cells[m.Row][m.Col]
}

func checkRange(row, col int) error {
	if !inRange(row) || !inRange(col) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfRange, row, col)
	}
	return nil
}

func inRange(i int) bool {
	return i >= 0 && i < Size
}
