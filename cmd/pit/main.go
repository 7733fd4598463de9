// Command pit plays two search players against each other at Animal Shogi.
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorgonia/dobutsu"
	"github.com/gorgonia/dobutsu/config"
	"github.com/gorgonia/dobutsu/encoding/gif"
	"github.com/gorgonia/dobutsu/game/animalshogi"
	"github.com/gorgonia/dobutsu/store"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

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

	if err := run(cfg); err != nil {
		log.Fatal().Err(err).Msg("pit failed")
	}
}

func run(cfg *config.Config) error {
	var g animalshogi.Game
	pa, err := config.NewPlayer(g, cfg.PlayerA, cfg.Seed)
	if err != nil {
		return err
	}
	pb, err := config.NewPlayer(g, cfg.PlayerB, cfg.Seed+1)
	if err != nil {
		return err
	}
	a := dobutsu.NewAgent("A "+cfg.PlayerA, pa)
	b := dobutsu.NewAgent("B "+cfg.PlayerB, pb)

	record := cfg.ExamplesPath != ""
	conf := dobutsu.Config{
		PlyLimit: cfg.PlyLimit,
		Seed:     cfg.Seed,
		Encoder:  animalshogi.EncodeFeatures,
		Logger:   &log.Logger,
	}
	if record {
		conf.Augmenter = dobutsu.SymmetryAugmenter(g, animalshogi.EncodeFeatures)
	}
	m := dobutsu.New(g, a, b, conf)

	var outputs multiEncoder
	if cfg.GifPath != "" {
		f, err := os.Create(cfg.GifPath)
		if err != nil {
			return errors.Wrap(err, "unable to create gif")
		}
		defer f.Close()
		outputs = append(outputs, gif.NewGifEncoder(f, 800, 600))
	}
	if cfg.WebsocketAddr != "" {
		ws := NewEncoder()
		mux := http.NewServeMux()
		mux.Handle("/ws", ws)
		srv := &http.Server{Addr: cfg.WebsocketAddr, Handler: mux}
		go func() {
			log.Info().Str("addr", cfg.WebsocketAddr).Msg("serving moves on /ws")
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				log.Error().Err(err).Msg("websocket server")
			}
		}()
		defer func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Second)
			defer cancel()
			srv.Shutdown(ctx)
		}()
		outputs = append(outputs, ws)
	}
	if len(outputs) > 0 {
		m.SetOutputEncoder(outputs)
	}

	tally, examples, err := m.Play(cfg.Games, record)
	if err != nil {
		return err
	}
	log.Info().
		Str("a", a.Name()).
		Str("b", b.Name()).
		Int("wins", tally.Wins).
		Int("losses", tally.Losses).
		Int("draws", tally.Draws).
		Msg("Match over")
	fmt.Printf("%s: %d wins, %d losses, %d draws against %s\n", a.Name(), tally.Wins, tally.Losses, tally.Draws, b.Name())

	if record {
		if err := store.WriteExamples(cfg.ExamplesPath, examples, "pit"); err != nil {
			return err
		}
		log.Info().Int("examples", len(examples)).Str("path", cfg.ExamplesPath).Msg("Examples written")
	}
	if cfg.StatsPath != "" {
		if err := m.Dump(cfg.StatsPath); err != nil {
			return err
		}
	}
	return nil
}
