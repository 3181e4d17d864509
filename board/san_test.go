package board

import (
	"errors"
	"testing"

	"github.com/daystram/chesscore/position"
)

func TestNewActionFromSAN(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		fen     string
		san     string
		want    Action
		wantErr error
	}{
		{
			name: "single pawn push",
			fen:  DefaultStartingPositionFEN,
			san:  "e3",
			want: NewActionFromIndex(position.E2, position.E3, PiecePawn, Quiet()),
		},
		{
			name: "double pawn push",
			fen:  DefaultStartingPositionFEN,
			san:  "e4",
			want: NewActionFromIndex(position.E2, position.E4, PiecePawn, Quiet()),
		},
		{
			name: "black double pawn push",
			fen:  "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			san:  "c5",
			want: NewActionFromIndex(position.C7, position.C5, PiecePawn, Quiet()),
		},
		{
			name: "knight with check mark",
			fen:  DefaultStartingPositionFEN,
			san:  "Nf3+",
			want: NewActionFromIndex(position.G1, position.F3, PieceKnight, Quiet()),
		},
		{
			name: "pawn capture",
			fen:  "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			san:  "exd5",
			want: NewActionFromIndex(position.E4, position.D5, PiecePawn, Capture(PiecePawn)),
		},
		{
			name: "en passant",
			fen:  "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3",
			san:  "exf6",
			want: NewActionFromIndex(position.E5, position.F6, PiecePawn, Capture(PiecePawn)),
		},
		{
			name: "file disambiguation",
			fen:  "4k3/8/8/8/8/8/4K3/R6R w - - 0 1",
			san:  "Rhf1",
			want: NewActionFromIndex(position.H1, position.F1, PieceRook, Quiet()),
		},
		{
			name: "rank disambiguation",
			fen:  "4k3/8/8/R7/8/8/8/R3K3 w - - 0 1",
			san:  "R1a3",
			want: NewActionFromIndex(position.A1, position.A3, PieceRook, Quiet()),
		},
		{
			name: "square disambiguation",
			fen:  "4k3/8/8/8/8/2Q1Q3/8/2Q1K3 w - - 0 1",
			san:  "Qe3d2",
			want: NewActionFromIndex(position.E3, position.D2, PieceQueen, Quiet()),
		},
		{
			name: "queen capture",
			fen:  "rnbqkbnr/ppp2ppp/8/3pp3/4P3/5Q2/PPPP1PPP/RNB1KBNR w KQkq - 0 3",
			san:  "Qxf7#",
			want: NewActionFromIndex(position.F3, position.F7, PieceQueen, Capture(PiecePawn)),
		},
		{
			name: "queen through vacated square",
			fen:  "rnbqkbnr/ppp1pppp/8/3p4/4P3/8/PPPP1PPP/RNBQKBNR w KQkq d6 0 2",
			san:  "Qh5",
			want: NewActionFromIndex(position.D1, position.H5, PieceQueen, Quiet()),
		},
		{
			name: "white kingside castling",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1",
			san:  "O-O",
			want: NewActionFromIndex(position.E1, position.G1, PieceKing, Castling(true)),
		},
		{
			name: "black queenside castling with zeros",
			fen:  "r3k2r/8/8/8/8/8/8/R3K2R b KQkq - 0 1",
			san:  "0-0-0",
			want: NewActionFromIndex(position.E8, position.C8, PieceKing, Castling(false)),
		},
		{
			name: "promotion",
			fen:  "4k3/p1p5/8/7p/P7/3PP2P/4K1pP/1R6 b - - 1 26",
			san:  "g1=Q",
			want: NewActionFromIndex(position.G2, position.G1, PiecePawn, Promotion(PieceQueen)),
		},
		{
			name: "promotion capture",
			fen:  "4k3/p7/8/P6p/8/3PP2P/2p1K2P/1R6 b - - 0 31",
			san:  "cxb1=N",
			want: NewActionFromIndex(position.C2, position.B1, PiecePawn, PromotionCapture(PieceKnight, PieceRook)),
		},
		{
			name: "promotion without equals",
			fen:  "8/4P3/8/8/8/8/8/4K2k w - - 0 1",
			san:  "e8R",
			want: NewActionFromIndex(position.E7, position.E8, PiecePawn, Promotion(PieceRook)),
		},
		{
			name:    "empty",
			fen:     DefaultStartingPositionFEN,
			san:     "",
			wantErr: position.ErrWrongParameterNumber,
		},
		{
			name:    "only check mark",
			fen:     DefaultStartingPositionFEN,
			san:     "e+",
			wantErr: position.ErrWrongParameterNumber,
		},
		{
			name:    "piece without destination",
			fen:     DefaultStartingPositionFEN,
			san:     "Nf",
			wantErr: position.ErrWrongParameterNumber,
		},
		{
			name:    "promotion suffix only",
			fen:     DefaultStartingPositionFEN,
			san:     "=Q",
			wantErr: position.ErrWrongParameterNumber,
		},
		{
			name:    "promotion suffix with check mark",
			fen:     DefaultStartingPositionFEN,
			san:     "=Q+",
			wantErr: position.ErrWrongParameterNumber,
		},
		{
			name:    "double push over a piece",
			fen:     "rnbqkbnr/pppppppp/8/8/8/4N3/PPPPPPPP/R1BQKBNR w KQkq - 1 1",
			san:     "e4",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "double push off the starting rank",
			fen:     "4k3/8/8/8/8/4P3/8/4K3 w - - 0 1",
			san:     "e5",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "black double push over a piece",
			fen:     "rnbqkbnr/pppppppp/2n5/8/8/8/PPPPPPPP/RNBQKBNR b KQkq - 0 1",
			san:     "c5",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "unknown piece",
			fen:     DefaultStartingPositionFEN,
			san:     "Xf3",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "bad file",
			fen:     DefaultStartingPositionFEN,
			san:     "Nj3",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "bad rank",
			fen:     DefaultStartingPositionFEN,
			san:     "e9",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "no pawn behind",
			fen:     DefaultStartingPositionFEN,
			san:     "e5",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "ambiguous",
			fen:     "4k3/8/8/8/8/8/4K3/R6R w - - 0 1",
			san:     "Rf1",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "no candidate",
			fen:     DefaultStartingPositionFEN,
			san:     "Bc4",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "capture on empty square",
			fen:     DefaultStartingPositionFEN,
			san:     "Nxf3",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "quiet move onto opponent piece",
			fen:     "4k3/8/8/3p4/8/2N5/8/4K3 w - - 0 1",
			san:     "Nd5",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "move onto own piece",
			fen:     DefaultStartingPositionFEN,
			san:     "Nd2",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "missing promotion piece",
			fen:     "8/4P3/8/8/8/8/8/4K2k w - - 0 1",
			san:     "e8",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "king promotion",
			fen:     "8/4P3/8/8/8/8/8/4K2k w - - 0 1",
			san:     "e8=K",
			wantErr: position.ErrInvalidParameter,
		},
		{
			name:    "piece promotion",
			fen:     DefaultStartingPositionFEN,
			san:     "Nf3=Q",
			wantErr: position.ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			g, err := NewGame(WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			got, err := NewActionFromSAN(tt.san, g)
			if tt.wantErr != nil {
				if !errors.Is(err, ErrInvalidSAN) || !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			if got != tt.want {
				t.Errorf("unexpected action: got=%s want=%s", got, tt.want)
			}
		})
	}
}
