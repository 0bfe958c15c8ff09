package game

import "fmt"

// FromRows builds a board from three rows of three characters each, using
// 'X', 'O' and '.' (or ' ') for an empty cell.
func FromRows(rows ...string) (*Board, error) {
	if len(rows) != Size {
		return nil, fmt.Errorf("expected %d rows, got %d", Size, len(rows))
	}
	b := NewBoard()
	for r, row := range rows {
		if len(row) != Size {
			return nil, fmt.Errorf("row %d: expected %d cells, got %q", r, Size, row)
		}
		for c, ch := range []byte(row) {
			switch ch {
			case 'X', 'x':
				b.cells[r][c] = MarkedBy(X)
			case 'O', 'o':
				b.cells[r][c] = MarkedBy(O)
			case '.', ' ':
			default:
				return nil, fmt.Errorf("row %d: unexpected cell %q", r, ch)
			}
		}
	}
	return b, nil
}
