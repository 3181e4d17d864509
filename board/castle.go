package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/position"
)

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionWhiteKingside
	CastleDirectionWhiteQueenside
	CastleDirectionBlackKingside
	CastleDirectionBlackQueenside
)

var maskCastleRights = [5]CastleRights{
	0,
	0b0001, // CastleDirectionWhiteKingside
	0b0010, // CastleDirectionWhiteQueenside
	0b0100, // CastleDirectionBlackKingside
	0b1000, // CastleDirectionBlackQueenside
}

func NewCastleDirection(s Side, kingside bool) CastleDirection {
	switch {
	case s == SideWhite && kingside:
		return CastleDirectionWhiteKingside
	case s == SideWhite:
		return CastleDirectionWhiteQueenside
	case s == SideBlack && kingside:
		return CastleDirectionBlackKingside
	case s == SideBlack:
		return CastleDirectionBlackQueenside
	default:
		return CastleDirectionUnknown
	}
}

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionWhiteKingside:
		return "White O-O"
	case CastleDirectionWhiteQueenside:
		return "White O-O-O"
	case CastleDirectionBlackKingside:
		return "Black O-O"
	case CastleDirectionBlackQueenside:
		return "Black O-O-O"
	default:
		return ""
	}
}

func (d CastleDirection) IsWhite() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionWhiteQueenside
}

func (d CastleDirection) IsKingside() bool {
	return d == CastleDirectionWhiteKingside || d == CastleDirectionBlackKingside
}

// rookSquares returns the rook's home corner and its square after castling.
func (d CastleDirection) rookSquares() (position.Pos, position.Pos) {
	switch d {
	case CastleDirectionWhiteKingside:
		return position.H1, position.F1
	case CastleDirectionWhiteQueenside:
		return position.A1, position.D1
	case CastleDirectionBlackKingside:
		return position.H8, position.F8
	case CastleDirectionBlackQueenside:
		return position.A8, position.D8
	default:
		return position.NoPos, position.NoPos
	}
}

// CastleRights packs the four castling flags. Over a game they are only ever revoked.
type CastleRights uint8

// NewCastleRights returns rights with all four directions allowed.
func NewCastleRights() CastleRights {
	return maskCastleRights[1] | maskCastleRights[2] | maskCastleRights[3] | maskCastleRights[4]
}

func parseCastleRights(field string) (CastleRights, error) {
	if len(field) == 0 || len(field) > 4 {
		return 0, fmt.Errorf("%w: castling field %q must have 1 to 4 characters", position.ErrWrongParameterNumber, field)
	}
	var c CastleRights
	if field == "-" {
		return c, nil
	}
	for _, e := range field {
		switch e {
		case 'K':
			c.Set(CastleDirectionWhiteKingside, true)
		case 'Q':
			c.Set(CastleDirectionWhiteQueenside, true)
		case 'k':
			c.Set(CastleDirectionBlackKingside, true)
		case 'q':
			c.Set(CastleDirectionBlackQueenside, true)
		default:
			return 0, fmt.Errorf("%w: unexpected castling character '%c'", position.ErrInvalidParameter, e)
		}
	}
	return c, nil
}

func (c *CastleRights) Set(d CastleDirection, allow bool) {
	if allow {
		*c |= maskCastleRights[d]
	} else {
		*c &^= maskCastleRights[d]
	}
}

func (c *CastleRights) Revoke(ds ...CastleDirection) {
	for _, d := range ds {
		c.Set(d, false)
	}
}

// RevokeSide clears both rights of s.
func (c *CastleRights) RevokeSide(s Side) {
	c.Revoke(NewCastleDirection(s, true), NewCastleDirection(s, false))
}

func (c CastleRights) IsAllowed(d CastleDirection) bool {
	return c&maskCastleRights[d] != 0
}

func (c CastleRights) IsSideAllowed(s Side) bool {
	return c.IsAllowed(NewCastleDirection(s, true)) || c.IsAllowed(NewCastleDirection(s, false))
}

// String renders the FEN castling field.
func (c CastleRights) String() string {
	if c == 0 {
		return "-"
	}
	builder := strings.Builder{}
	if c.IsAllowed(CastleDirectionWhiteKingside) {
		_, _ = builder.WriteRune('K')
	}
	if c.IsAllowed(CastleDirectionWhiteQueenside) {
		_, _ = builder.WriteRune('Q')
	}
	if c.IsAllowed(CastleDirectionBlackKingside) {
		_, _ = builder.WriteRune('k')
	}
	if c.IsAllowed(CastleDirectionBlackQueenside) {
		_, _ = builder.WriteRune('q')
	}
	return builder.String()
}
