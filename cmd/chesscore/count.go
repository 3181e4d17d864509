package main

import (
	"log"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/board"
)

func count(g *board.Game, depth int, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ count(%d): %s\n", depth, name)

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()
	err := bench.Count(depth, g.FEN(), parallel, true, out)
	close(out)
	<-done
	return err
}
