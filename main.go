package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"tictactoe/config"
	"tictactoe/console"
	"tictactoe/experiments"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	configPath := flag.String("config", "config.yml", "Path to the config file")
	tournament := flag.Bool("tournament", false, "Run a computer vs computer tournament instead of the menu")
	games := flag.Int("games", 0, "Games per matchup in tournament mode, overrides the config")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	initLogger(conf)

	var err error
	if *tournament {
		err = runTournament(conf, *games)
	} else {
		err = console.New(os.Stdin, os.Stdout, console.WithSeed(conf.Seed)).Run()
	}

	if errors.Is(err, console.ErrInvalidChoice) {
		os.Exit(1)
	}
	if err != nil {
		log.Error().Err(err).Msg("exiting")
		os.Exit(1)
	}
}

func runTournament(conf *config.Config, games int) error {
	if games <= 0 {
		games = conf.Tournament.Games
	}
	t := experiments.NewTournament(
		experiments.WithGames(games),
		experiments.WithParallelism(conf.Tournament.Parallelism),
		experiments.WithSeed(conf.Seed),
		experiments.WithOutputDir(conf.Tournament.OutputDir),
	)
	_, err := t.Run()
	return err
}

// initLogger writes to stderr so the board on stdout stays readable.
func initLogger(conf *config.Config) {
	level, err := zerolog.ParseLevel(conf.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)

	if conf.LogFormat == "json" {
		log.Logger = zerolog.New(os.Stderr).With().Timestamp().Logger()
		return
	}
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
}
