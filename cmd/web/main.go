package main

import (
	"os"

	"github.com/minaorangina/cardtable/internal/config"
	"github.com/minaorangina/cardtable/server"
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

	s := server.NewServer(store.NewInMemoryGameStore(), log)
	s.Addr = cfg.Addr

	log.WithField("addr", cfg.Addr).Info("listening")
	log.Fatal(s.ListenAndServe())
}
