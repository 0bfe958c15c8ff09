package console

import (
	"io"
	"strings"
	"testing"
	"tictactoe/game"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string) (string, error) {
	t.Helper()
	out := &strings.Builder{}
	err := New(strings.NewReader(input), out, WithSeed(1)).Run()
	return out.String(), err
}

func TestRender(t *testing.T) {
	b, err := game.FromRows(
		"X.O",
		".X.",
		"O..",
	)
	require.NoError(t, err)
	out := &strings.Builder{}

	Render(out, b)

	require.Equal(t, ""+
		"    1   2   3\n"+
		"  -------------\n"+
		"1 | X |   | O |\n"+
		"  -------------\n"+
		"2 |   | X |   |\n"+
		"  -------------\n"+
		"3 | O |   |   |\n"+
		"  -------------\n", out.String())
}

func TestConsoleMenu(t *testing.T) {
	t.Run("exit prints the menu once and stops", func(t *testing.T) {
		out, err := run(t, "5\n")

		require.NoError(t, err)
		require.Equal(t, menu+"Exiting program.\n", out)
	})

	t.Run("out of range choice is an error", func(t *testing.T) {
		for _, input := range []string{"0\n", "6\n", "9\n", "-1\n"} {
			out, err := run(t, input)
			require.ErrorIs(t, err, ErrInvalidChoice, "input %q", input)
			require.True(t, strings.HasSuffix(out, "Invalid input. Exiting program.\n"))
		}
	})

	t.Run("non-numeric choice is an error", func(t *testing.T) {
		out, err := run(t, "abc\n")

		require.ErrorIs(t, err, ErrInvalidChoice)
		require.Contains(t, out, "Invalid input. Exiting program.")
	})

	t.Run("missing input is an error", func(t *testing.T) {
		_, err := run(t, "")
		require.ErrorIs(t, err, ErrInvalidChoice)
	})
}

func TestConsolePlayers(t *testing.T) {
	c := New(strings.NewReader(""), io.Discard, WithSeed(3))

	tests := []struct {
		mode   Mode
		first  string
		second string
	}{
		{mode: HumanVsHuman, first: "human", second: "human"},
		{mode: HumanVsOptimal, first: "human", second: "optimal"},
		{mode: HumanVsRandom, first: "human", second: "random"},
		{mode: OptimalVsOptimal, first: "optimal", second: "optimal"},
	}
	for _, tt := range tests {
		players := c.players(tt.mode)
		require.Equal(t, tt.first, players[0].Name(), "mode %d", tt.mode)
		require.Equal(t, tt.second, players[1].Name(), "mode %d", tt.mode)
		require.Equal(t, game.X, players[0].Mark())
		require.Equal(t, game.O, players[1].Mark())
	}
	require.Panics(t, func() { c.players(Exit) })
}

func TestConsoleGames(t *testing.T) {
	t.Run("human vs human ends with player 1 winning", func(t *testing.T) {
		input := "1\n" +
			"1 1\n" +
			"2 1\n" +
			"4 4\n" + // out of range
			"1 1\n" + // occupied
			"1 2\n" +
			"2 2\n" +
			"1 3\n" +
			"5\n"

		out, err := run(t, input)

		require.NoError(t, err)
		require.Contains(t, out, "Player 1: X\nPlayer 2: O\n")
		require.Contains(t, out, "Player 1's turn\n")
		require.Contains(t, out, "Player 2's turn\n")
		require.Equal(t, 2, strings.Count(out, "Invalid field selection\n"))
		require.Contains(t, out, "1 | X | X | X |\n")
		require.Contains(t, out, "Winner is: Player 1\n")
		require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
		require.Equal(t, 2, strings.Count(out, menu), "Menu should be shown again after the game")
	})

	t.Run("computer vs computer is a draw", func(t *testing.T) {
		out, err := run(t, "4\n5\n")

		require.NoError(t, err)
		require.Contains(t, out, "A draw!\n")
		require.Equal(t, 9, strings.Count(out, "'s turn\n"))
		require.NotContains(t, out, "Select a row")
	})

	t.Run("human against the minimax computer is held to a draw", func(t *testing.T) {
		// The computer answers 1 1 with the centre, then blocks 1 3 and 2 1.
		input := "2\n1 1\n1 2\n3 1\n2 3\n3 3\n5\n"

		out, err := run(t, input)

		require.NoError(t, err)
		require.NotContains(t, out, "Invalid field selection")
		require.Contains(t, out, "A draw!\n")
		require.True(t, strings.HasSuffix(out, "Exiting program.\n"))
	})

	t.Run("running out of input mid-game is an error", func(t *testing.T) {
		_, err := run(t, "1\n1 1\n")
		require.ErrorIs(t, err, io.ErrUnexpectedEOF)
	})
}
