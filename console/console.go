package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"tictactoe/engine"
	"tictactoe/game"
	"tictactoe/player"

	"github.com/rs/zerolog/log"
)

var ErrInvalidChoice = errors.New("invalid menu choice")

const menu = `Choose your game mode.
(1) Human vs Human
(2) Human vs Computer (Minimax)
(3) Human vs Computer (Random)
(4) Computer (Minimax) vs Computer (Minimax)
(5) Exit Program
`

type Mode int

const (
	HumanVsHuman Mode = iota + 1
	HumanVsOptimal
	HumanVsRandom
	OptimalVsOptimal
	Exit
)

type Option func(c *Console)

// WithSeed seeds every random computer player created by the console.
// A zero seed leaves them time-seeded.
func WithSeed(seed uint64) Option {
	return func(c *Console) {
		c.seed = seed
	}
}

// Console runs the interactive menu. Menu choices and moves are read as
// whitespace-separated tokens from the same input.
type Console struct {
	in   *bufio.Scanner
	out  io.Writer
	seed uint64
}

func New(in io.Reader, out io.Writer, options ...Option) *Console {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	c := &Console{
		in:  scanner,
		out: out,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Run shows the menu and plays the chosen games until the user exits.
// Any choice outside the menu ends the program with ErrInvalidChoice.
func (c *Console) Run() error {
	for {
		fmt.Fprint(c.out, menu)
		mode, err := c.readMode()
		if err != nil {
			fmt.Fprintln(c.out, "Invalid input. Exiting program.")
			return err
		}
		if mode == Exit {
			fmt.Fprintln(c.out, "Exiting program.")
			return nil
		}

		log.Debug().Int("mode", int(mode)).Msg("menu choice")
		e := engine.LocalEngine(c.players(mode), engine.WithObserver(observer{out: c.out}))
		if _, _, _, err := e.Run(); err != nil {
			return fmt.Errorf("game %s: %w", e.ID, err)
		}
	}
}

func (c *Console) readMode() (Mode, error) {
	if !c.in.Scan() {
		if err := c.in.Err(); err != nil {
			return 0, fmt.Errorf("%w: %w", ErrInvalidChoice, err)
		}
		return 0, fmt.Errorf("%w: no input", ErrInvalidChoice)
	}
	choice, err := strconv.Atoi(c.in.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not a number", ErrInvalidChoice, c.in.Text())
	}
	mode := Mode(choice)
	if mode < HumanVsHuman || mode > Exit {
		return 0, fmt.Errorf("%w: %d", ErrInvalidChoice, choice)
	}
	return mode, nil
}

func (c *Console) players(mode Mode) [2]player.Player {
	human := player.NewHuman(game.X, c.in, c.out)
	switch mode {
	case HumanVsHuman:
		return [2]player.Player{human, player.NewHuman(game.O, c.in, c.out)}
	case HumanVsOptimal:
		return [2]player.Player{human, player.NewOptimal(game.O)}
	case HumanVsRandom:
		return [2]player.Player{human, c.random(game.O)}
	case OptimalVsOptimal:
		return [2]player.Player{player.NewOptimal(game.X), player.NewOptimal(game.O)}
	}
	panic(fmt.Sprintf("no players for mode %d", mode))
}

func (c *Console) random(mark game.Player) *player.Random {
	if c.seed == 0 {
		return player.NewRandom(mark)
	}
	return player.NewRandom(mark, player.WithSeed(c.seed))
}
