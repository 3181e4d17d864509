package main

import (
	"fmt"
	"io"
	"log"
	"strconv"

	"github.com/daystram/chesscore/board"
)

func movegen(w io.Writer, g *board.Game, draw bool) error {
	log.Println("============ movegen")
	fmt.Fprintln(w, "to move:", g.Turn())
	fmt.Fprintln(w, g.Board().Dump())
	fmt.Fprintln(w, g.Board().Draw())
	fmt.Fprintln(w, g.FEN())

	actions, err := board.AllMoves(g.Turn(), 0, false, g)
	if err != nil {
		return err
	}
	dumpActions(w, actions)

	if draw {
		for _, a := range actions {
			gg := g.Clone()
			gg.ExecuteAction(a)
			fmt.Fprintln(w, a)
			fmt.Fprintln(w, gg.Board().Draw())
			fmt.Fprintln(w, gg.FEN())
		}
	}
	return nil
}

func dumpActions(w io.Writer, actions []board.Action) {
	for i, a := range actions {
		fmt.Fprintf(w, "option %*d: [%s] [%s] %s %s => %s (%s)\n",
			len(strconv.Itoa(len(actions))), i+1, a.UCI(), a, a.Piece(), a.FromIndex(), a.ToIndex(), a.Type().Kind)
	}
}
