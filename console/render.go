package console

import (
	"fmt"
	"io"
	"strings"
	"tictactoe/game"
)

const separator = "  -------------"

// Render draws the board with 1-indexed row and column labels.
func Render(w io.Writer, b *game.Board) {
	var sb strings.Builder
	sb.WriteString("    1   2   3\n")
	sb.WriteString(separator + "\n")
	for r := range game.Size {
		fmt.Fprintf(&sb, "%d |", r+1)
		for c := range game.Size {
			cell, err := b.Cell(r, c)
			if err != nil {
				panic(err)
			}
			fmt.Fprintf(&sb, " %s |", cell)
		}
		sb.WriteString("\n" + separator + "\n")
	}
	io.WriteString(w, sb.String())
}
