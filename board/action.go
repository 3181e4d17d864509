package board

import (
	"fmt"

	"github.com/daystram/chesscore/position"
)

type ActionKind uint8

const (
	ActionKindQuiet ActionKind = iota
	ActionKindCapture
	ActionKindPromotion
	ActionKindPromotionCapture
	ActionKindCastling
)

func (k ActionKind) String() string {
	switch k {
	case ActionKindQuiet:
		return "Quiet"
	case ActionKindCapture:
		return "Capture"
	case ActionKindPromotion:
		return "Promotion"
	case ActionKindPromotionCapture:
		return "PromotionCapture"
	case ActionKindCastling:
		return "Castling"
	default:
		return ""
	}
}

// ActionType is the special information of an action. Captured and Promoted are PieceUnknown and
// Kingside is false unless the kind carries them.
type ActionType struct {
	Kind     ActionKind
	Captured Piece
	Promoted Piece
	Kingside bool
}

func Quiet() ActionType {
	return ActionType{Kind: ActionKindQuiet}
}

func Capture(captured Piece) ActionType {
	return ActionType{Kind: ActionKindCapture, Captured: captured}
}

func Promotion(promoted Piece) ActionType {
	return ActionType{Kind: ActionKindPromotion, Promoted: promoted}
}

func PromotionCapture(promoted, captured Piece) ActionType {
	return ActionType{Kind: ActionKindPromotionCapture, Captured: captured, Promoted: promoted}
}

func Castling(kingside bool) ActionType {
	return ActionType{Kind: ActionKindCastling, Kingside: kingside}
}

const (
	maskSquare      = 0b0011_1111
	flagCastling    = 0b0100_0000
	flagCapture     = 0b0000_0001
	flagPromotion   = 0b0000_0010
	shiftCaptured   = 2
	shiftPromoted   = 5
	flagKingside    = 1 << shiftCaptured
	shiftPieceLow   = 6
	maskPieceHigh   = 0b1000_0000
	shiftPieceHigh  = 5
	maskPieceFields = 0b111
)

// Action is a move packed into three bytes:
//
//	from:    bits 0-5 square, bits 6-7 low bits of the moved piece
//	to:      bits 0-5 square, bit 6 castling, bit 7 high bit of the moved piece
//	special: bit 0 capture, bit 1 promotion, bits 2-4 captured piece (bit 2 is the kingside flag
//	         when castling), bits 5-7 promoted piece
type Action struct {
	from, to, special uint8
}

// NewAction builds an action from file/rank coordinates. Coordinates outside 0..7 panic.
func NewAction(fromX, fromY, toX, toY uint8, p Piece, t ActionType) Action {
	for _, c := range [...]uint8{fromX, fromY, toX, toY} {
		if c >= uint8(position.MaxComponentScalar) {
			panic(fmt.Sprintf("action coordinate %d out of range", c))
		}
	}
	from := position.NewPos(position.Pos(fromX), position.Pos(fromY))
	to := position.NewPos(position.Pos(toX), position.Pos(toY))
	return NewActionFromIndex(from, to, p, t)
}

func NewActionFromIndex(from, to position.Pos, p Piece, t ActionType) Action {
	if !from.IsValid() || !to.IsValid() {
		panic(fmt.Sprintf("action square out of range: %d -> %d", from, to))
	}
	a := Action{
		from: uint8(from)&maskSquare | uint8(p)<<shiftPieceLow,
		to:   uint8(to)&maskSquare | (uint8(p)<<shiftPieceHigh)&maskPieceHigh,
	}
	switch t.Kind {
	case ActionKindCapture:
		a.special = flagCapture | uint8(t.Captured)<<shiftCaptured
	case ActionKindPromotion:
		a.special = flagPromotion | uint8(t.Promoted)<<shiftPromoted
	case ActionKindPromotionCapture:
		a.special = flagCapture | flagPromotion | uint8(t.Captured)<<shiftCaptured | uint8(t.Promoted)<<shiftPromoted
	case ActionKindCastling:
		a.to |= flagCastling
		if t.Kingside {
			a.special = flagKingside
		}
	}
	return a
}

func (a Action) FromIndex() position.Pos {
	return position.Pos(a.from & maskSquare)
}

func (a Action) ToIndex() position.Pos {
	return position.Pos(a.to & maskSquare)
}

// From returns the origin file and rank.
func (a Action) From() (uint8, uint8) {
	return a.FromIndex().Coords()
}

// To returns the destination file and rank.
func (a Action) To() (uint8, uint8) {
	return a.ToIndex().Coords()
}

func (a Action) Piece() Piece {
	return pieceFromBits(a.from>>shiftPieceLow | (a.to&maskPieceHigh)>>shiftPieceHigh)
}

func (a Action) IsCapture() bool {
	return a.special&flagCapture != 0
}

func (a Action) IsPromotion() bool {
	return a.special&flagPromotion != 0
}

func (a Action) IsCastling() bool {
	return a.to&flagCastling != 0
}

// IsKingsideCastling is only meaningful when IsCastling holds. On other actions it reads bit 2 of
// the captured piece field.
func (a Action) IsKingsideCastling() bool {
	return a.special&flagKingside != 0
}

func (a Action) CapturePiece() (Piece, bool) {
	if !a.IsCapture() {
		return PieceUnknown, false
	}
	return pieceFromBits(a.special>>shiftCaptured&maskPieceFields), true
}

func (a Action) PromotionPiece() (Piece, bool) {
	if !a.IsPromotion() {
		return PieceUnknown, false
	}
	return pieceFromBits(a.special>>shiftPromoted&maskPieceFields), true
}

func (a Action) Type() ActionType {
	if a.IsCastling() {
		return Castling(a.IsKingsideCastling())
	}
	captured, isCapture := a.CapturePiece()
	promoted, isPromotion := a.PromotionPiece()
	switch {
	case isCapture && isPromotion:
		return PromotionCapture(promoted, captured)
	case isCapture:
		return Capture(captured)
	case isPromotion:
		return Promotion(promoted)
	default:
		return Quiet()
	}
}

func (a Action) UCI() string {
	nt := a.FromIndex().Notation() + a.ToIndex().Notation()
	if p, ok := a.PromotionPiece(); ok {
		nt += p.SymbolFEN(SideBlack)
	}
	return nt
}

// String renders long algebraic notation, e.g. "Ng1-f3", "e5xd6" or "O-O-O".
func (a Action) String() string {
	if a.IsCastling() {
		if a.IsKingsideCastling() {
			return "O-O"
		}
		return "O-O-O"
	}
	sep := "-"
	if a.IsCapture() {
		sep = "x"
	}
	nt := a.Piece().SymbolAlgebra() + a.FromIndex().Notation() + sep + a.ToIndex().Notation()
	if p, ok := a.PromotionPiece(); ok {
		nt += "=" + p.SymbolAlgebra()
	}
	return nt
}
