package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/daystram/chesscore/bench"
	"github.com/daystram/chesscore/bitboard"
	"github.com/daystram/chesscore/board"
	"github.com/daystram/chesscore/position"
)

var (
	ErrUnknownCommand = errors.New("unknown command")

	defaultOptions = options{
		parallelCount: true,
	}
)

type options struct {
	parallelCount bool
}

type Option func(*Interface)

func WithParallelCount(parallel bool) Option {
	return func(i *Interface) {
		i.options.parallelCount = parallel
	}
}

func WithIO(in io.Reader, out io.Writer) Option {
	return func(i *Interface) {
		i.in, i.out = in, out
	}
}

// Interface is a line based shell over a single game.
type Interface struct {
	game    *board.Game
	options options

	in  io.Reader
	out io.Writer
}

func NewInterface(opts ...Option) *Interface {
	i := &Interface{
		options: defaultOptions,
		in:      os.Stdin,
		out:     os.Stdout,
	}
	for _, opt := range opts {
		opt(i)
	}
	return i
}

// SetGame replaces the current game.
func (i *Interface) SetGame(g *board.Game) {
	i.game = g
}

// Run reads commands until quit or the end of input. Command errors are printed and do not
// stop the loop.
func (i *Interface) Run(ctx context.Context) error {
	if i.game == nil {
		i.reset(ctx)
	}

	scanner := bufio.NewScanner(i.in)
	for scanner.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}
		args := strings.Fields(scanner.Text())
		if len(args) == 0 {
			continue
		}

		var err error
		switch args[0] {
		case "newgame":
			i.reset(ctx)
		case "setoption":
			err = i.commandSetOption(ctx, args[1:])
		case "position":
			err = i.commandPosition(ctx, args[1:])
		case "pgn":
			err = i.commandPGN(ctx, args[1:])
		case "d":
			i.commandDraw(ctx)
		case "fen":
			i.println(i.game.FEN())
		case "moves":
			err = i.commandMoves(ctx)
		case "attackers":
			err = i.commandAttackers(ctx, args[1:])
		case "go":
			err = i.commandGo(ctx, args[1:])
		case "quit":
			return nil
		default:
			err = fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
		}
		if err != nil {
			i.println("error:", err)
		}
	}
	return scanner.Err()
}

func (i *Interface) commandSetOption(_ context.Context, args []string) error {
	if len(args) < 4 || args[0] != "name" || args[2] != "value" {
		return fmt.Errorf("%w: setoption name <name> value <value>", position.ErrWrongParameterNumber)
	}
	switch name, valueStr := strings.ToLower(args[1]), args[3]; name {
	case "parallel":
		value, err := strconv.ParseBool(valueStr)
		if err != nil {
			return fmt.Errorf("%w: %w", position.ErrInvalidParameter, err)
		}
		i.options.parallelCount = value
	default:
		return fmt.Errorf("%w: option %s", position.ErrInvalidParameter, name)
	}
	return nil
}

// commandPosition handles "position startpos|fen <fen> [moves <san>...]".
func (i *Interface) commandPosition(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position startpos|fen <fen> [moves ...]", position.ErrWrongParameterNumber)
	}

	var moves []string
	for n, arg := range args {
		if arg == "moves" {
			args, moves = args[:n], args[n+1:]
			break
		}
	}

	var fen string
	switch args[0] {
	case "fen":
		fen = strings.Join(args[1:], " ")
	case "startpos":
		fen = board.DefaultStartingPositionFEN
	default:
		return fmt.Errorf("%w: position %s", position.ErrInvalidParameter, args[0])
	}

	g, err := board.NewGame(board.WithFEN(fen))
	if err != nil {
		return err
	}
	for _, san := range moves {
		a, err := board.NewActionFromSAN(san, g)
		if err != nil {
			return err
		}
		g.ExecuteAction(a)
	}
	i.game = g
	return nil
}

func (i *Interface) commandPGN(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: pgn <file>", position.ErrWrongParameterNumber)
	}
	text, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	g, err := board.NewGameFromPGN(string(text))
	if err != nil {
		return err
	}
	i.game = g
	return nil
}

func (i *Interface) commandDraw(_ context.Context) {
	i.println(i.game.Board().Draw())
	i.println("to move:", i.game.Turn())
	i.println("fen:", i.game.FEN())
}

func (i *Interface) commandMoves(_ context.Context) error {
	actions, err := board.AllMoves(i.game.Turn(), 0, false, i.game)
	if err != nil {
		return err
	}
	i.println(strings.Join(lo.Map(actions, func(a board.Action, _ int) string {
		return a.UCI()
	}), " "))
	return nil
}

// commandAttackers handles "attackers <square> <piece>", the piece given as a SAN letter or P.
func (i *Interface) commandAttackers(_ context.Context, args []string) error {
	if len(args) != 2 || len(args[1]) != 1 {
		return fmt.Errorf("%w: attackers <square> <piece>", position.ErrWrongParameterNumber)
	}
	dest, err := position.NewPosFromNotation(args[0])
	if err != nil {
		return err
	}
	p := board.PiecePawn
	if sym := strings.ToUpper(args[1])[0]; sym != 'P' {
		if p, err = board.PieceFromSymbol(sym); err != nil {
			return err
		}
	}

	var squares []string
	c := bitboard.NewCursor(board.CanBeAttackedFrom(dest, p, i.game))
	for pos, ok := c.Next(); ok; pos, ok = c.Next() {
		squares = append(squares, pos.String())
	}
	if len(squares) == 0 {
		i.println("none")
		return nil
	}
	i.println(strings.Join(squares, " "))
	return nil
}

func (i *Interface) commandGo(_ context.Context, args []string) error {
	if len(args) != 2 || args[0] != "count" {
		return fmt.Errorf("%w: go count <depth>", position.ErrWrongParameterNumber)
	}
	depth, err := strconv.Atoi(args[1])
	if err != nil || depth < 0 {
		return fmt.Errorf("%w: depth %s", position.ErrInvalidParameter, args[1])
	}

	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()
	err = bench.Count(depth, i.game.FEN(), i.options.parallelCount, true, out)
	close(out)
	<-done
	return err
}

func (i *Interface) reset(_ context.Context) {
	i.game = board.StartingGame()
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}
