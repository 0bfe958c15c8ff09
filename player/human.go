package player

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"tictactoe/experiments/metrics"
	"tictactoe/game"
)

// Human reads moves from a console. Rows and columns are entered 1-indexed.
type Human struct {
	mark game.Player
	in   *bufio.Scanner
	out  io.Writer
}

// NewHuman reads whitespace-separated tokens from in. The scanner is shared
// with whoever else reads the same console, so its split function is left alone.
func NewHuman(mark game.Player, in *bufio.Scanner, out io.Writer) *Human {
	return &Human{
		mark: mark,
		in:   in,
		out:  out,
	}
}

func (h *Human) Mark() game.Player {
	return h.mark
}

func (h *Human) Name() string {
	return "human"
}

func (h *Human) NextMove(board *game.Board) (game.Move, metrics.SearchMetric, error) {
	for {
		row, rowErr := h.prompt("Select a row: ")
		if rowErr != nil && !isBadNumber(rowErr) {
			return game.NoMove, metrics.SearchMetric{}, rowErr
		}
		col, colErr := h.prompt("Select a column: ")
		if colErr != nil && !isBadNumber(colErr) {
			return game.NoMove, metrics.SearchMetric{}, colErr
		}

		move := game.Move{Row: row - 1, Col: col - 1}
		if rowErr != nil || colErr != nil || !move.IsValid() || !board.IsVacant(move.Row, move.Col) {
			fmt.Fprintln(h.out, "Invalid field selection")
			continue
		}
		return move, metrics.SearchMetric{}, nil
	}
}

func (h *Human) prompt(label string) (int, error) {
	fmt.Fprint(h.out, label)
	if !h.in.Scan() {
		if err := h.in.Err(); err != nil {
			return 0, fmt.Errorf("failed to read input: %w", err)
		}
		return 0, fmt.Errorf("input closed: %w", io.ErrUnexpectedEOF)
	}
	return strconv.Atoi(h.in.Text())
}

func isBadNumber(err error) bool {
	var numErr *strconv.NumError
	return errors.As(err, &numErr)
}
