package main

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/daystram/chesscore/board"
)

type config struct {
	FEN     string      `toml:"fen"`
	PGN     string      `toml:"pgn"`
	NoColor bool        `toml:"nocolor"`
	Count   countConfig `toml:"count"`
	Step    stepConfig  `toml:"step"`
}

type countConfig struct {
	Depth    int  `toml:"depth"`
	Parallel bool `toml:"parallel"`
}

type stepConfig struct {
	Count int   `toml:"count"`
	Seed  int64 `toml:"seed"`
}

func defaultConfig() config {
	return config{
		FEN: board.DefaultStartingPositionFEN,
		Count: countConfig{
			Depth:    -1,
			Parallel: true,
		},
		Step: stepConfig{
			Count: 200,
			Seed:  1,
		},
	}
}

// resolveConfig layers the config file at path, if any, over the defaults, then applies
// override.
func resolveConfig(path string, override func(*config)) (config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return config{}, fmt.Errorf("read config: %w", err)
		}
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return config{}, fmt.Errorf("parse config: %w", err)
		}
	}
	if override != nil {
		override(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return config{}, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func (c *config) validate() error {
	if c.FEN == "" {
		c.FEN = board.DefaultStartingPositionFEN
	}
	if c.Count.Depth < -1 {
		return fmt.Errorf("count depth %d out of range", c.Count.Depth)
	}
	if c.Step.Count < 0 {
		return fmt.Errorf("step count %d out of range", c.Step.Count)
	}
	return nil
}

// startingGame builds the game every mode starts from: the PGN replay when one is given,
// the FEN otherwise.
func startingGame(cfg config) (*board.Game, error) {
	if cfg.PGN != "" {
		text, err := os.ReadFile(cfg.PGN)
		if err != nil {
			return nil, fmt.Errorf("read pgn: %w", err)
		}
		return board.NewGameFromPGN(string(text))
	}
	return board.NewGame(board.WithFEN(cfg.FEN))
}
