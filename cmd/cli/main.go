package main

import (
	"os"

	"github.com/minaorangina/cardtable/console"
	"github.com/minaorangina/cardtable/crazyeights"
	"github.com/minaorangina/cardtable/deck"
	"github.com/minaorangina/cardtable/game"
	"github.com/minaorangina/cardtable/internal/config"
	"github.com/minaorangina/cardtable/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
	log, err := cfg.Logger()
	if err != nil {
		os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}

	if store.Variant(cfg.Variant) != store.CrazyEights {
		log.WithField("variant", cfg.Variant).Fatal("the console only plays crazyeights")
	}

	opts := crazyeights.Options{HandSize: cfg.HandSize, Logger: log}
	if cfg.Seed != 0 {
		opts.Shuffler = deck.NewRandomShuffler(cfg.Seed)
		opts.Chooser = game.NewRandomChooser(cfg.Seed + 1)
	}

	g, err := crazyeights.New(store.NewID(), cfg.Players, opts)
	if err != nil {
		log.WithError(err).Fatal("could not initialise a new game")
	}

	if err := console.New(g, os.Stdin, os.Stdout, log).Run(nil); err != nil {
		log.WithError(err).Fatal("game stopped")
	}
}
