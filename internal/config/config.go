// Package config reads settings from the environment. A .env file in the
// working directory is loaded first when present.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

var ErrNoPlayers = errors.New("at least two players are needed")

type Config struct {
	LogLevel string   `env:"LOG_LEVEL,default=info"`
	Addr     string   `env:"ADDR,default=:8000"`
	Variant  string   `env:"VARIANT,default=crazyeights"`
	HandSize int      `env:"HAND_SIZE"`
	Seed     int64    `env:"SEED"`
	Players  []string `env:"PLAYERS,default=Harry;Sally"`
}

// Load reads the optional env file, then the environment
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var c Config
	if err := envdecode.Decode(&c); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return Config{}, fmt.Errorf("decoding environment: %w", err)
	}

	players := []string{}
	for _, p := range c.Players {
		if p = strings.TrimSpace(p); p != "" {
			players = append(players, p)
		}
	}
	if len(players) < 2 {
		return Config{}, ErrNoPlayers
	}
	c.Players = players
	return c, nil
}

// Logger builds a logger at the configured level
func (c Config) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	l := logrus.New()
	l.SetLevel(level)
	l.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	return l, nil
}
