package board

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/daystram/chesscore/position"
)

// Game is a board plus the state a FEN record carries besides placement.
type Game struct {
	board         *Board
	turn          Side
	castleRights  CastleRights
	enPassant     position.Pos
	halfMoveClock uint32
	fullMoveClock uint32
}

type gameConfig struct {
	fen string
}

type GameOption func(*gameConfig)

func WithFEN(fen string) GameOption {
	return func(cfg *gameConfig) {
		cfg.fen = fen
	}
}

func NewGame(opts ...GameOption) (*Game, error) {
	cfg := &gameConfig{
		fen: DefaultStartingPositionFEN,
	}
	for _, f := range opts {
		f(cfg)
	}
	return parseFEN(cfg.fen)
}

// StartingGame returns the standard initial position.
func StartingGame() *Game {
	return &Game{
		board:         StartingBoard(),
		turn:          SideWhite,
		castleRights:  NewCastleRights(),
		enPassant:     position.NoPos,
		fullMoveClock: 1,
	}
}

func parseFEN(fen string) (*Game, error) {
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return nil, fmt.Errorf("%w: %w: expected 6 fields, got %d", ErrInvalidFEN, position.ErrWrongParameterNumber, len(segments))
	}

	b, err := ParseBoardFEN(segments[0])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	turn, err := parseSide(segments[1])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	castleRights, err := parseCastleRights(segments[2])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	enPassant := position.NoPos
	if segments[3] != "-" {
		enPassant, err = position.NewPosFromNotation(segments[3])
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidFEN, err)
		}
		if y := enPassant.Y(); y != position.Rank3 && y != position.Rank6 {
			return nil, fmt.Errorf("%w: %w: en passant target %s off the 3rd and 6th ranks", ErrInvalidFEN, position.ErrInvalidParameter, enPassant)
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: half move clock %q", ErrInvalidFEN, position.ErrInvalidParameter, segments[4])
	}

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %w: full move clock %q", ErrInvalidFEN, position.ErrInvalidParameter, segments[5])
	}

	return &Game{
		board:         b,
		turn:          turn,
		castleRights:  castleRights,
		enPassant:     enPassant,
		halfMoveClock: uint32(halfMoveClock),
		fullMoveClock: uint32(fullMoveClock),
	}, nil
}

func (g *Game) FEN() string {
	enPassant := "-"
	if g.enPassant != position.NoPos {
		enPassant = g.enPassant.Notation()
	}
	return fmt.Sprintf("%s %s %s %s %d %d",
		g.board.FEN(), g.turn.FEN(), g.castleRights, enPassant, g.halfMoveClock, g.fullMoveClock)
}

// ExecuteAction plays a for the side to move. The action is trusted: nothing checks that it is
// legal or even that the moved piece stands on its origin.
func (g *Game) ExecuteAction(a Action) {
	side := g.turn
	from, to := a.FromIndex(), a.ToIndex()
	piece := a.Piece()
	g.halfMoveClock++

	g.board.ExecuteAction(a, side)

	if a.IsCastling() {
		g.castleRights.RevokeSide(side)
		rookFrom, rookTo := NewCastleDirection(side, a.IsKingsideCastling()).rookSquares()
		g.board.ExecuteAction(NewActionFromIndex(rookFrom, rookTo, PieceRook, Quiet()), side)
	}

	if a.IsCapture() {
		g.halfMoveClock = 0
		if piece == PiecePawn && to == g.enPassant {
			g.board.remove(to - side.forward())
		}
		if captured, _ := a.CapturePiece(); captured == PieceRook {
			g.revokeCorner(side.Opposite(), to)
		}
	}

	if promoted, ok := a.PromotionPiece(); ok {
		g.board.put(to, promoted, side)
	}

	g.enPassant = position.NoPos

	switch piece {
	case PieceKing:
		g.castleRights.RevokeSide(side)
	case PieceRook:
		g.revokeCorner(side, from)
	case PiecePawn:
		g.halfMoveClock = 0
		if to-from == 2*side.forward() {
			g.enPassant = to - side.forward()
		}
	}

	if side == SideBlack {
		g.fullMoveClock++
	}
	g.turn = side.Opposite()
}

// revokeCorner clears the right tied to s's rook home square pos, if pos is one.
func (g *Game) revokeCorner(s Side, pos position.Pos) {
	for _, kingside := range []bool{true, false} {
		d := NewCastleDirection(s, kingside)
		if home, _ := d.rookSquares(); home == pos {
			g.castleRights.Revoke(d)
		}
	}
}

func (g *Game) Clone() *Game {
	gg := *g
	gg.board = g.board.Clone()
	return &gg
}

func (g *Game) Board() *Board {
	return g.board
}

func (g *Game) Turn() Side {
	return g.turn
}

func (g *Game) CastleRights() CastleRights {
	return g.castleRights
}

// EnPassant returns the en passant target, or position.NoPos.
func (g *Game) EnPassant() position.Pos {
	return g.enPassant
}

func (g *Game) HalfMoveClock() uint32 {
	return g.halfMoveClock
}

func (g *Game) FullMoveClock() uint32 {
	return g.fullMoveClock
}
