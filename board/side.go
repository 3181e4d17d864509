package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

type Side uint8

const (
	SideUnknown Side = iota
	SideWhite
	SideBlack
)

func parseSide(s string) (Side, error) {
	switch s {
	case "w":
		return SideWhite, nil
	case "b":
		return SideBlack, nil
	default:
		return SideUnknown, fmt.Errorf("%w: unknown side %q", position.ErrInvalidParameter, s)
	}
}

func (s Side) String() string {
	switch s {
	case SideWhite:
		return "White"
	case SideBlack:
		return "Black"
	default:
		return ""
	}
}

// FEN returns the side-to-move field.
func (s Side) FEN() string {
	if s == SideBlack {
		return "b"
	}
	return "w"
}

func (s Side) Opposite() Side {
	switch s {
	case SideWhite:
		return SideBlack
	case SideBlack:
		return SideWhite
	default:
		return SideUnknown
	}
}

// backRank is the rank row the side's pieces start on.
func (s Side) backRank() position.Pos {
	if s == SideBlack {
		return position.Rank8
	}
	return position.Rank1
}

// pawnRank is the rank row the side's pawns start on.
func (s Side) pawnRank() position.Pos {
	if s == SideBlack {
		return position.Rank7
	}
	return position.Rank2
}

// forward is the index delta of a one-rank pawn step.
func (s Side) forward() position.Pos {
	if s == SideBlack {
		return position.MaxComponentScalar
	}
	return -position.MaxComponentScalar
}
