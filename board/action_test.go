package board

import (
	"testing"

	"github.com/daystram/chesscore/position"
)

func TestActionEncoding(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		from    position.Pos
		to      position.Pos
		piece   Piece
		typ     ActionType
		wantUCI string
		wantStr string
	}{
		{
			name:    "quiet pawn",
			from:    position.E2,
			to:      position.E4,
			piece:   PiecePawn,
			typ:     Quiet(),
			wantUCI: "e2e4",
			wantStr: "e2-e4",
		},
		{
			name:    "knight capture",
			from:    position.F3,
			to:      position.D4,
			piece:   PieceKnight,
			typ:     Capture(PiecePawn),
			wantUCI: "f3d4",
			wantStr: "Nf3xd4",
		},
		{
			name:    "queen captures queen",
			from:    position.H8,
			to:      position.A1,
			piece:   PieceQueen,
			typ:     Capture(PieceQueen),
			wantUCI: "h8a1",
			wantStr: "Qh8xa1",
		},
		{
			name:    "king captures rook",
			from:    position.E1,
			to:      position.F1,
			piece:   PieceKing,
			typ:     Capture(PieceRook),
			wantUCI: "e1f1",
			wantStr: "Ke1xf1",
		},
		{
			name:    "promotion",
			from:    position.G2,
			to:      position.G1,
			piece:   PiecePawn,
			typ:     Promotion(PieceQueen),
			wantUCI: "g2g1q",
			wantStr: "g2-g1=Q",
		},
		{
			name:    "promotion capture",
			from:    position.C2,
			to:      position.B1,
			piece:   PiecePawn,
			typ:     PromotionCapture(PieceKnight, PieceRook),
			wantUCI: "c2b1n",
			wantStr: "c2xb1=N",
		},
		{
			name:    "kingside castling",
			from:    position.E1,
			to:      position.G1,
			piece:   PieceKing,
			typ:     Castling(true),
			wantUCI: "e1g1",
			wantStr: "O-O",
		},
		{
			name:    "queenside castling",
			from:    position.E8,
			to:      position.C8,
			piece:   PieceKing,
			typ:     Castling(false),
			wantUCI: "e8c8",
			wantStr: "O-O-O",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			a := NewActionFromIndex(tt.from, tt.to, tt.piece, tt.typ)
			if a.FromIndex() != tt.from || a.ToIndex() != tt.to {
				t.Errorf("unexpected squares: got=%s%s want=%s%s", a.FromIndex(), a.ToIndex(), tt.from, tt.to)
			}
			if a.Piece() != tt.piece {
				t.Errorf("unexpected piece: got=%s want=%s", a.Piece(), tt.piece)
			}
			if a.Type() != tt.typ {
				t.Errorf("unexpected type: got=%+v want=%+v", a.Type(), tt.typ)
			}
			if a.UCI() != tt.wantUCI {
				t.Errorf("unexpected UCI: got=%s want=%s", a.UCI(), tt.wantUCI)
			}
			if a.String() != tt.wantStr {
				t.Errorf("unexpected string: got=%s want=%s", a.String(), tt.wantStr)
			}

			fromX, fromY := tt.from.Coords()
			toX, toY := tt.to.Coords()
			if b := NewAction(fromX, fromY, toX, toY, tt.piece, tt.typ); b != a {
				t.Errorf("unexpected action from coordinates: got=%+v want=%+v", b, a)
			}
			if gotX, gotY := a.From(); gotX != fromX || gotY != fromY {
				t.Errorf("unexpected from: got=%d,%d want=%d,%d", gotX, gotY, fromX, fromY)
			}
			if gotX, gotY := a.To(); gotX != toX || gotY != toY {
				t.Errorf("unexpected to: got=%d,%d want=%d,%d", gotX, gotY, toX, toY)
			}

			captured, isCapture := a.CapturePiece()
			wantCapture := tt.typ.Kind == ActionKindCapture || tt.typ.Kind == ActionKindPromotionCapture
			if isCapture != wantCapture || captured != tt.typ.Captured {
				t.Errorf("unexpected capture: got=%s,%v want=%s,%v", captured, isCapture, tt.typ.Captured, wantCapture)
			}
			promoted, isPromotion := a.PromotionPiece()
			wantPromotion := tt.typ.Kind == ActionKindPromotion || tt.typ.Kind == ActionKindPromotionCapture
			if isPromotion != wantPromotion || promoted != tt.typ.Promoted {
				t.Errorf("unexpected promotion: got=%s,%v want=%s,%v", promoted, isPromotion, tt.typ.Promoted, wantPromotion)
			}
			if a.IsCastling() != (tt.typ.Kind == ActionKindCastling) {
				t.Errorf("unexpected castling flag: got=%v", a.IsCastling())
			}
			if a.IsCastling() && a.IsKingsideCastling() != tt.typ.Kingside {
				t.Errorf("unexpected kingside flag: got=%v want=%v", a.IsKingsideCastling(), tt.typ.Kingside)
			}
		})
	}
}

func TestActionAllPieces(t *testing.T) {
	t.Parallel()
	pieces := []Piece{PiecePawn, PieceBishop, PieceKnight, PieceRook, PieceQueen, PieceKing}
	for _, p := range pieces {
		for _, captured := range pieces {
			a := NewActionFromIndex(position.H1, position.A8, p, Capture(captured))
			if a.Piece() != p {
				t.Errorf("unexpected piece: got=%s want=%s", a.Piece(), p)
			}
			if got, _ := a.CapturePiece(); got != captured {
				t.Errorf("unexpected captured piece: got=%s want=%s", got, captured)
			}
			if a.ToIndex() != position.A8 || a.FromIndex() != position.H1 {
				t.Errorf("unexpected squares: got=%s%s", a.FromIndex(), a.ToIndex())
			}
		}
	}
}

func TestNewActionPanics(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("panic expected for coordinate 8")
		}
	}()
	_ = NewAction(8, 0, 0, 0, PiecePawn, Quiet())
}

func TestPieceFromBits(t *testing.T) {
	t.Parallel()
	for b := uint8(0); b < 8; b++ {
		got := pieceFromBits(b)
		if b >= 1 && b <= 6 && got != Piece(b) {
			t.Errorf("unexpected piece for %03b: got=%s want=%s", b, got, Piece(b))
		}
		if (b == 0 || b == 7) && got != PieceUnknown {
			t.Errorf("unexpected piece for %03b: got=%s want=unknown", b, got)
		}
	}
}
