package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/mastermind/internal/config"
)

const usage = `usage: mastermind [auto|play|evaluate [N]|outcomes GUESS]

  auto       solve a secret from SECRET, DAILY_SALT or a seeded random draw
  play       think of a secret and type the scores of each guess
  evaluate   solve every code (or every N-th code) and print statistics
  outcomes   print how GUESS splits the full universe`

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	if cfg.LogFormat == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	args := os.Args[1:]
	mode := "auto"
	if len(args) > 0 {
		mode, args = args[0], args[1:]
	}

	a := newApp(cfg, os.Stdout)
	log.Info().
		Str("mode", mode).
		Stringer("dims", a.dims).
		Int("workers", cfg.Workers).
		Msg("starting mastermind")

	switch mode {
	case "auto":
		err = a.auto(ctx)
	case "play":
		err = a.play(ctx, os.Stdin)
	case "evaluate":
		err = a.evaluate(ctx, args)
	case "outcomes":
		err = a.outcomes(args)
	case "help", "-h", "--help":
		_, _ = os.Stdout.WriteString(usage + "\n")
		return
	default:
		_, _ = os.Stderr.WriteString(usage + "\n")
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Str("mode", mode).Msg("run failed")
	}
}
