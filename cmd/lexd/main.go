package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	lexicon "github.com/doctoryoo/Lexicon"
	"github.com/doctoryoo/Lexicon/internal/api"
	"github.com/doctoryoo/Lexicon/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	wordlist := flag.String("wordlist", "", "wordlist file, one word per line (overrides config)")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	log.Logger = logger

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Msg("load config")
	}
	if *wordlist != "" {
		cfg.Lexicon.Wordlist = *wordlist
	}
	if *debug || cfg.Server.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	}

	lx := lexicon.New()
	if cfg.Lexicon.Wordlist != "" {
		added, err := lx.AddFile(cfg.Lexicon.Wordlist)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.Lexicon.Wordlist).Msg("load wordlist")
		}
		log.Info().Int("words", added).Str("path", cfg.Lexicon.Wordlist).Msg("wordlist loaded")
	}

	server := api.NewServer(cfg.Server.Addr(), lx, cfg.Lexicon.MaxDistance)

	errs := make(chan error, 1)
	go func() {
		errs <- server.Start()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errs:
		if err != nil {
			log.Fatal().Err(err).Msg("server error")
		}
		return
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("shutdown")
	}
}
