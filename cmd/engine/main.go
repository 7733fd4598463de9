// Command engine speaks a GTP style text protocol on stdin and stdout, so that Animal Shogi can be
// played against a search player from a terminal or a GUI.
//
//	$ engine -a alphabeta:5
//	play b1b2
//	=
//
//	genmove
//	= [B3B2]
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/gorgonia/dobutsu/config"
	"github.com/gorgonia/dobutsu/game/animalshogi"
	"github.com/gorgonia/dobutsu/gtp"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const version = "0.1"

func main() {
	flags := config.Flags()
	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	path, _ := flags.GetString("config")
	cfg, err := config.Load(path, flags)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	lvl, _ := cfg.Level()
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		Level(lvl).
		With().Timestamp().Logger()

	var g animalshogi.Game
	p, err := config.NewPlayer(g, cfg.PlayerA, cfg.Seed)
	if err != nil {
		log.Fatal().Err(err).Msg("unable to create player")
	}
	e := gtp.New(g, "dobutsu "+cfg.PlayerA, version, nil)
	e.Generate = p
	log.Info().Str("player", cfg.PlayerA).Msg("engine ready")
	if err := e.Serve(os.Stdin, os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("engine failed")
	}
}
