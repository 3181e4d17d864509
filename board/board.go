package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/daystram/chesscore/bitboard"
	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells

	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"
)

var (
	ErrInvalidFEN         = errors.New("invalid fen")
	ErrInvalidSAN         = errors.New("invalid san")
	ErrInvalidPGN         = errors.New("invalid pgn")
	ErrInCheckUnsupported = errors.New("move generation in check is unsupported")
)

// Board is the piece placement only. Queens are the squares set in both bishops and rooks, and
// an occupied square missing from whites is Black's.
type Board struct {
	pawns   bitboard.Bitboard
	knights bitboard.Bitboard
	kings   bitboard.Bitboard
	bishops bitboard.Bitboard
	rooks   bitboard.Bitboard
	whites  bitboard.Bitboard
}

func StartingBoard() *Board {
	mustRepr := func(repr string) bitboard.Bitboard {
		bm, err := bitboard.FromRepr(repr)
		if err != nil {
			panic(err)
		}
		return bm
	}
	return &Board{
		pawns:   mustRepr("8/00000000/8/8/8/8/00000000/8"),
		knights: mustRepr("10401/8/8/8/8/8/8/10401"),
		kings:   mustRepr("403/8/8/8/8/8/8/403"),
		bishops: mustRepr("200102/8/8/8/8/8/8/200102"),
		rooks:   mustRepr("02030/8/8/8/8/8/8/02030"),
		whites:  mustRepr("8/8/8/8/8/8/00000000/00000000"),
	}
}

// ParseBoardFEN parses the piece placement field of a FEN record.
func ParseBoardFEN(field string) (*Board, error) {
	rows := strings.Split(field, "/")
	if len(rows) != int(Height) {
		return nil, fmt.Errorf("%w: expected %d ranks, got %d", position.ErrWrongParameterNumber, Height, len(rows))
	}
	b := &Board{}
	for y, row := range rows {
		x := position.Pos(0)
		for _, cell := range row {
			if '1' <= cell && cell <= '8' {
				x += position.Pos(cell - '0')
				if x > Width {
					return nil, fmt.Errorf("%w: skip out of bounds on rank %d", position.ErrInvalidParameter, Height-position.Pos(y))
				}
				continue
			}
			p, s, ok := pieceFromFEN(cell)
			if !ok {
				return nil, fmt.Errorf("%w: unknown symbol '%c'", position.ErrInvalidParameter, cell)
			}
			if x >= Width {
				return nil, fmt.Errorf("%w: rank %d is overfull", position.ErrInvalidParameter, Height-position.Pos(y))
			}
			b.put(position.NewPos(x, position.Pos(y)), p, s)
			x++
		}
		if x != Width {
			return nil, fmt.Errorf("%w: rank %d has %d cells", position.ErrWrongParameterNumber, Height-position.Pos(y), x)
		}
	}
	return b, nil
}

// FEN returns the piece placement field.
func (b *Board) FEN() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		var skip uint8
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPos(x, y)
			p := b.PieceAt(pos)
			if p == PieceUnknown {
				skip++
				continue
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
				skip = 0
			}
			_, _ = builder.WriteString(p.SymbolFEN(b.SideAt(pos)))
		}
		if skip != 0 {
			_, _ = builder.WriteRune(rune(skip + '0'))
		}
		if y < Height-1 {
			_, _ = builder.WriteRune('/')
		}
	}
	return builder.String()
}

// ExecuteAction moves the action's piece for s, clearing whatever stood on either square. Legality,
// the castling rook, en passant removal and promotion are left to the caller.
func (b *Board) ExecuteAction(a Action, s Side) {
	b.remove(a.FromIndex())
	b.remove(a.ToIndex())
	b.put(a.ToIndex(), a.Piece(), s)
}

func (b *Board) put(pos position.Pos, p Piece, s Side) {
	b.remove(pos)
	switch p {
	case PiecePawn:
		b.pawns.Set(pos)
	case PieceKnight:
		b.knights.Set(pos)
	case PieceKing:
		b.kings.Set(pos)
	case PieceBishop:
		b.bishops.Set(pos)
	case PieceRook:
		b.rooks.Set(pos)
	case PieceQueen:
		b.bishops.Set(pos)
		b.rooks.Set(pos)
	default:
		return
	}
	if s == SideWhite {
		b.whites.Set(pos)
	}
}

func (b *Board) remove(pos position.Pos) {
	b.pawns.Unset(pos)
	b.knights.Unset(pos)
	b.kings.Unset(pos)
	b.bishops.Unset(pos)
	b.rooks.Unset(pos)
	b.whites.Unset(pos)
}

// PieceAt returns the piece on pos, or PieceUnknown for an empty square.
func (b *Board) PieceAt(pos position.Pos) Piece {
	switch {
	case b.pawns.Has(pos):
		return PiecePawn
	case b.knights.Has(pos):
		return PieceKnight
	case b.kings.Has(pos):
		return PieceKing
	case b.bishops.Has(pos):
		if b.rooks.Has(pos) {
			return PieceQueen
		}
		return PieceBishop
	case b.rooks.Has(pos):
		return PieceRook
	default:
		return PieceUnknown
	}
}

func (b *Board) SideAt(pos position.Pos) Side {
	switch {
	case !b.Occupied().Has(pos):
		return SideUnknown
	case b.whites.Has(pos):
		return SideWhite
	default:
		return SideBlack
	}
}

func (b *Board) Pawns() bitboard.Bitboard   { return b.pawns }
func (b *Board) Knights() bitboard.Bitboard { return b.knights }
func (b *Board) Kings() bitboard.Bitboard   { return b.kings }
func (b *Board) Bishops() bitboard.Bitboard { return b.bishops &^ b.rooks }
func (b *Board) Rooks() bitboard.Bitboard   { return b.rooks &^ b.bishops }
func (b *Board) Queens() bitboard.Bitboard  { return b.bishops & b.rooks }

func (b *Board) Occupied() bitboard.Bitboard {
	return b.pawns | b.knights | b.kings | b.bishops | b.rooks
}

func (b *Board) SideBitmap(s Side) bitboard.Bitboard {
	switch s {
	case SideWhite:
		return b.whites
	case SideBlack:
		return b.Occupied() &^ b.whites
	default:
		return 0
	}
}

// Bitmap returns the squares holding p for s.
func (b *Board) Bitmap(s Side, p Piece) bitboard.Bitboard {
	var bm bitboard.Bitboard
	switch p {
	case PiecePawn:
		bm = b.Pawns()
	case PieceKnight:
		bm = b.Knights()
	case PieceKing:
		bm = b.Kings()
	case PieceBishop:
		bm = b.Bishops()
	case PieceRook:
		bm = b.Rooks()
	case PieceQueen:
		bm = b.Queens()
	}
	return bm & b.SideBitmap(s)
}

func (b *Board) Clone() *Board {
	bb := *b
	return &bb
}

func (b *Board) Dump() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", Height-y))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPos(x, y)
			sym := b.PieceAt(pos).SymbolFEN(b.SideAt(pos))
			if sym == "" {
				sym = "."
			}
			_, _ = builder.WriteString(fmt.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("    ------------------------\n    ")
	for x := position.Pos(0); x < Width; x++ {
		n, _ := position.FileToNotation(uint8(x))
		_, _ = builder.WriteString(fmt.Sprintf(" %s ", n))
	}
	return builder.String()
}

var (
	colorLight = color.New(color.FgBlack, color.BgHiWhite)
	colorDark  = color.New(color.FgBlack, color.BgGreen)
	colorLabel = color.New(color.Bold)
)

// Draw renders the board with coloured squares. color.NoColor disables the escapes.
func (b *Board) Draw() string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(colorLabel.Sprintf(" %d ", Height-y))
		for x := position.Pos(0); x < Width; x++ {
			pos := position.NewPos(x, y)
			sym := b.PieceAt(pos).SymbolUnicode(b.SideAt(pos))
			if sym == "" {
				sym = " "
			}
			c := colorLight
			if (x+y)%2 == 1 {
				c = colorDark
			}
			_, _ = builder.WriteString(c.Sprintf(" %s ", sym))
		}
		_, _ = builder.WriteString("\n")
	}
	_, _ = builder.WriteString("   ")
	for x := position.Pos(0); x < Width; x++ {
		n, _ := position.FileToNotation(uint8(x))
		_, _ = builder.WriteString(colorLabel.Sprintf(" %s ", n))
	}
	return builder.String()
}
