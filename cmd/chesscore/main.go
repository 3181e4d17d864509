package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/shell"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile    = flag.Bool("profile", false, "serve pprof endpoint")
	configPath = flag.String("config", "", "path to a TOML config file")
	noColor    = flag.Bool("nocolor", false, "draw boards without colors")

	fenFlag = flag.String("fen", "", "starting position FEN")
	pgnFlag = flag.String("pgn", "", "PGN file to replay before running")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	countDepth    = flag.Int("count", -1, "count leaf nodes to the given depth")
	countParallel = flag.Bool("count.parallel", true, "count subtrees concurrently")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepCount = flag.Int("step.count", 200, "number of random moves in step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	cfg, err := resolveConfig(*configPath, flagOverrides())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}

	err = realMain(cfg)
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

// flagOverrides collects the flags given explicitly on the command line.
func flagOverrides() func(*config) {
	set := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		set[f.Name] = true
	})
	return func(cfg *config) {
		if set["fen"] {
			cfg.FEN = *fenFlag
		}
		if set["pgn"] {
			cfg.PGN = *pgnFlag
		}
		if set["nocolor"] {
			cfg.NoColor = *noColor
		}
		if set["count"] {
			cfg.Count.Depth = *countDepth
		}
		if set["count.parallel"] {
			cfg.Count.Parallel = *countParallel
		}
		if set["step.count"] {
			cfg.Step.Count = *stepCount
		}
		if set["step.seed"] {
			cfg.Step.Seed = *stepSeed
		}
	}
}

func realMain(cfg config) error {
	if cfg.NoColor {
		color.NoColor = true
	}

	g, err := startingGame(cfg)
	if err != nil {
		return err
	}
	switch {
	case *movegenRun:
		return movegen(os.Stdout, g, *movegenDraw)
	case *stepRun:
		return step(os.Stdout, g, cfg.Step.Count, cfg.Step.Seed)
	case cfg.Count.Depth >= 0:
		return count(g, cfg.Count.Depth, cfg.Count.Parallel)
	}

	i := shell.NewInterface(shell.WithParallelCount(cfg.Count.Parallel))
	i.SetGame(g)
	return i.Run(context.Background())
}
