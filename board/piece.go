package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

// Piece fits in 3 bits; values above PieceKing never appear on the board.
type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceBishop, PieceKnight, PieceRook, PieceQueen}

// pieceFromBits decodes a 3-bit packed field. Patterns that name no piece decode to PieceUnknown.
func pieceFromBits(b uint8) Piece {
	switch p := Piece(b & 0b111); p {
	case PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing:
		return p
	default:
		return PieceUnknown
	}
}

// PieceFromSymbol maps an uppercase SAN piece letter. Pawns have no letter.
func PieceFromSymbol(sym byte) (Piece, error) {
	switch sym {
	case 'K':
		return PieceKing, nil
	case 'Q':
		return PieceQueen, nil
	case 'R':
		return PieceRook, nil
	case 'B':
		return PieceBishop, nil
	case 'N':
		return PieceKnight, nil
	default:
		return PieceUnknown, fmt.Errorf("%w: unknown piece letter %q", position.ErrInvalidParameter, sym)
	}
}

// pieceFromFEN decodes a FEN board letter, uppercase being White.
func pieceFromFEN(sym rune) (Piece, Side, bool) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	switch sym {
	case 'P':
		return PiecePawn, s, true
	case 'B':
		return PieceBishop, s, true
	case 'N':
		return PieceKnight, s, true
	case 'R':
		return PieceRook, s, true
	case 'Q':
		return PieceQueen, s, true
	case 'K':
		return PieceKing, s, true
	default:
		return PieceUnknown, SideUnknown, false
	}
}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra() string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(SideWhite)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	const symbols = "♙♗♘♖♕♔♟♝♞♜♛♚"
	if p == PieceUnknown || p > PieceKing {
		return ""
	}
	i := int(p) - 1
	switch s {
	case SideWhite:
	case SideBlack:
		i += 6
	default:
		return ""
	}
	return string([]rune(symbols)[i])
}
