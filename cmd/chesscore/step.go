package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chesscore/board"
)

// step plays random quiet moves from g, printing every position, until steps moves were made
// or the side to move has none left.
func step(w io.Writer, g *board.Game, steps int, seed int64) error {
	log.Println("============ step")
	var (
		timesAllMoves []time.Duration
		timesExecute  []time.Duration
	)
	r := rand.New(rand.NewSource(seed))
	for n := 0; n < steps; n++ {
		t1 := time.Now()
		actions, err := board.AllMoves(g.Turn(), 0, false, g)
		t2 := time.Now()
		if err != nil {
			return err
		}
		timesAllMoves = append(timesAllMoves, t2.Sub(t1))
		if len(actions) == 0 {
			fmt.Fprintf(w, "\n===== no moves left for %s\n", g.Turn())
			break
		}
		a := actions[r.Intn(len(actions))]
		turn := g.Turn()

		t1 = time.Now()
		g.ExecuteAction(a)
		t2 = time.Now()
		timesExecute = append(timesExecute, t2.Sub(t1))

		fmt.Fprintf(w, "\n===== [#%d] %s: %s\n", n/2+1, turn, a)
		fmt.Fprintln(w, g.Board().Draw())
		fmt.Fprintln(w, g.FEN())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Fprintln(w)
	fmt.Fprintln(w, "allmv:", avg(timesAllMoves))
	fmt.Fprintln(w, "exec:", avg(timesExecute))
	return nil
}
