package bitboard

import (
	"fmt"
	"math/bits"
	"strings"

	"github.com/daystram/chesscore/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = position.TotalCells
)

// Bitboard is a set of squares, bit i standing for position.Pos(i).
type Bitboard uint64

// FromRepr parses a FEN-like mask where '0' marks a set square and digits 1-8 skip empty files,
// e.g. "8/0303/8/8/8/8/8/8" sets a7 and e7.
func FromRepr(repr string) (Bitboard, error) {
	ranks := strings.Split(repr, "/")
	if len(ranks) != int(Height) {
		return 0, fmt.Errorf("%w: expected %d ranks, got %d", position.ErrWrongParameterNumber, Height, len(ranks))
	}
	var bm Bitboard
	for y, rank := range ranks {
		x := position.Pos(0)
		for _, c := range rank {
			if x >= Width {
				return 0, fmt.Errorf("%w: rank %d is overfull", position.ErrInvalidParameter, y)
			}
			switch {
			case c == '0':
				bm |= Cells[position.NewPos(x, position.Pos(y))]
				x++
			case '1' <= c && c <= '8':
				x += position.Pos(c - '0')
			default:
				return 0, fmt.Errorf("%w: unexpected character '%c'", position.ErrInvalidParameter, c)
			}
		}
	}
	return bm, nil
}

// ShiftN moves every square n ranks towards the 8th rank, dropping what leaves the board.
func ShiftN(bm Bitboard, n uint) Bitboard {
	return bm >> (8 * n)
}

// ShiftS moves every square n ranks towards the 1st rank, dropping what leaves the board.
func ShiftS(bm Bitboard, n uint) Bitboard {
	return bm << (8 * n)
}

func ShiftE(bm Bitboard) Bitboard {
	return (bm &^ Files[position.FileH]) << 1
}

func ShiftW(bm Bitboard) Bitboard {
	return (bm &^ Files[position.FileA]) >> 1
}

// KingMask returns the squares adjacent to every square in bm.
func KingMask(bm Bitboard) Bitboard {
	row := bm | ShiftE(bm) | ShiftW(bm)
	return (row | ShiftN(row, 1) | ShiftS(row, 1)) &^ bm
}

func (bm Bitboard) Has(pos position.Pos) bool {
	return bm&Cells[pos] != 0
}

func (bm *Bitboard) Set(pos position.Pos) {
	*bm |= Cells[pos]
}

func (bm *Bitboard) Unset(pos position.Pos) {
	*bm &^= Cells[pos]
}

// LS1B returns the lowest set square, or position.NoPos when empty.
func (bm Bitboard) LS1B() position.Pos {
	if bm == 0 {
		return position.NoPos
	}
	return position.Pos(bits.TrailingZeros64(uint64(bm)))
}

// PopLS1B clears the lowest set square and returns it.
func (bm *Bitboard) PopLS1B() position.Pos {
	pos := bm.LS1B()
	if pos != position.NoPos {
		*bm &= *bm - 1
	}
	return pos
}

func (bm Bitboard) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

func (bm Bitboard) Dump(sym ...rune) string {
	builder := strings.Builder{}
	for y := position.Pos(0); y < Height; y++ {
		_, _ = builder.WriteString(fmt.Sprintf(" %d |", Height-y))
		for x := position.Pos(0); x < Width; x++ {
			if bm.Has(position.NewPos(x, y)) {
				s := "#"
				if len(sym) == 1 {
					s = string(sym[0])
				}
				_, _ = builder.WriteString(fmt.Sprintf(" %s ", s))
			} else {
				_, _ = builder.WriteString(" . ")
			}
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

// Cursor walks the squares of a bitboard in ascending order.
type Cursor struct {
	bm Bitboard
}

func NewCursor(bm Bitboard) *Cursor {
	return &Cursor{bm: bm}
}

func (c *Cursor) Next() (position.Pos, bool) {
	if c.bm == 0 {
		return position.NoPos, false
	}
	return c.bm.PopLS1B(), true
}
