package bench

import (
	"fmt"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chesscore/board"
)

// Count walks every line of quiet moves from fen to the given depth and reports the number of
// leaf nodes, broken down by the piece that made the last move. Check is never detected, so
// the totals only match perft while no side is in check.
func Count(depth int, fen string, parallel, verbose bool, out chan string) error {
	g, err := board.NewGame(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}

	var run countFunc
	if parallel {
		run = runCountParallel
	} else {
		run = runCount
	}

	var c counters
	start := time.Now()
	if _, err := run(g, depth, true, verbose, out, &c); err != nil {
		return err
	}
	end := time.Now()

	out <- message.NewPrinter(language.English).
		Sprintf("d=%d nodes=%d rate=%dn/s pwn=%d kni=%d sld=%d (%.3fs elapsed)",
			depth, c.nodes, int(float64(c.nodes)/end.Sub(start).Seconds()), c.pawns, c.knights, c.sliders, end.Sub(start).Seconds())

	return nil
}

type counters struct {
	nodes, pawns, knights, sliders uint64
}

// tally records the leaf actions of one node.
func (c *counters) tally(leaves []board.Action, add func(*uint64, uint64)) {
	var pawns, knights, sliders uint64
	for _, a := range leaves {
		switch a.Piece() {
		case board.PiecePawn:
			pawns++
		case board.PieceKnight:
			knights++
		case board.PieceBishop, board.PieceRook, board.PieceQueen:
			sliders++
		}
	}
	add(&c.nodes, uint64(len(leaves)))
	add(&c.pawns, pawns)
	add(&c.knights, knights)
	add(&c.sliders, sliders)
}

func addPlain(p *uint64, v uint64) { *p += v }

func addAtomic(p *uint64, v uint64) { atomic.AddUint64(p, v) }

type countFunc func(g *board.Game, d int, root, verbose bool, out chan string, c *counters) (uint64, error)

func runCount(g *board.Game, d int, root, verbose bool, out chan string, c *counters) (uint64, error) {
	if d == 0 {
		c.nodes++
		return 1, nil
	}

	actions, err := board.AllMoves(g.Turn(), 0, false, g)
	if err != nil {
		return 0, err
	}
	var sum uint64
	for _, a := range actions {
		var child uint64
		gg := g.Clone()
		gg.ExecuteAction(a)
		if d != 1 {
			child, err = runCount(gg, d-1, false, verbose, out, c)
			if err != nil {
				return 0, err
			}
		} else {
			child = 1
			c.tally([]board.Action{a}, addPlain)
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", a.UCI(), child)
		}
		sum += child
	}
	return sum, nil
}

func runCountParallel(g *board.Game, d int, root, verbose bool, out chan string, c *counters) (uint64, error) {
	if d == 0 {
		atomic.AddUint64(&c.nodes, 1)
		return 1, nil
	}

	actions, err := board.AllMoves(g.Turn(), 0, false, g)
	if err != nil {
		return 0, err
	}
	if d == 1 {
		c.tally(actions, addAtomic)
		if verbose && root {
			for _, a := range actions {
				out <- fmt.Sprintf("%s: %d", a.UCI(), 1)
			}
		}
		return uint64(len(actions)), nil
	}

	var sum uint64
	var eg errgroup.Group
	for _, a := range actions {
		a := a
		eg.Go(func() error {
			gg := g.Clone()
			gg.ExecuteAction(a)
			child, err := runCountParallel(gg, d-1, false, verbose, out, c)
			if err != nil {
				return err
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", a.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return 0, err
	}
	return sum, nil
}
