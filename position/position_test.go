package position

import (
	"errors"
	"testing"
)

func TestNewPosFromNotation(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		notation string
		want     Pos
		wantErr  error
	}{
		{
			name:     "ok a8",
			notation: "a8",
			want:     Pos(0),
		},
		{
			name:     "ok h1",
			notation: "h1",
			want:     Pos(63),
		},
		{
			name:     "ok a4",
			notation: "a4",
			want:     Pos(32),
		},
		{
			name:     "ok c5",
			notation: "c5",
			want:     Pos(26),
		},
		{
			name:     "ok c1",
			notation: "c1",
			want:     Pos(58),
		},
		{
			name:     "ok f7",
			notation: "f7",
			want:     Pos(13),
		},
		{
			name:     "bad empty",
			notation: "",
			wantErr:  ErrWrongParameterNumber,
		},
		{
			name:     "bad short",
			notation: "a",
			wantErr:  ErrWrongParameterNumber,
		},
		{
			name:     "bad long",
			notation: "e44",
			wantErr:  ErrWrongParameterNumber,
		},
		{
			name:     "bad file",
			notation: "m4",
			wantErr:  ErrInvalidParameter,
		},
		{
			name:     "bad rank 9",
			notation: "e9",
			wantErr:  ErrInvalidParameter,
		},
		{
			name:     "bad rank 0",
			notation: "e0",
			wantErr:  ErrInvalidParameter,
		},
		{
			name:     "bad uppercase",
			notation: "E4",
			wantErr:  ErrInvalidParameter,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := NewPosFromNotation(tt.notation)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("unexpected result: got=%v want=%v", got, tt.want)
			}
		})
	}
}

func TestIndexToNotation(t *testing.T) {
	t.Parallel()
	tests := map[uint8]string{
		0:  "a8",
		63: "h1",
		32: "a4",
		26: "c5",
		58: "c1",
		48: "a2",
		13: "f7",
	}
	for index, want := range tests {
		got, err := IndexToNotation(index)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != want {
			t.Errorf("unexpected notation: got=%s want=%s", got, want)
		}
	}

	for index := 64; index <= 255; index++ {
		if _, err := IndexToNotation(uint8(index)); !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("unexpected error for %d: got=%v want=%v", index, err, ErrInvalidParameter)
		}
	}
}

func TestNotationRoundTrip(t *testing.T) {
	t.Parallel()
	for index := uint8(0); index < uint8(TotalCells); index++ {
		n, err := IndexToNotation(index)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		got, err := NewPosFromNotation(n)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got != Pos(index) {
			t.Errorf("unexpected round trip: got=%d want=%d", got, index)
		}
		if Pos(index).Notation() != n {
			t.Errorf("unexpected Notation(): got=%s want=%s", Pos(index).Notation(), n)
		}
	}
}

func TestFileRankMapping(t *testing.T) {
	t.Parallel()
	files := "abcdefgh"
	ranks := "87654321"
	for i := uint8(0); i < 8; i++ {
		f, err := FileToNotation(i)
		if err != nil || f != string(files[i]) {
			t.Errorf("unexpected file notation: got=%s,%v want=%c", f, err, files[i])
		}
		r, err := RankToNotation(i)
		if err != nil || r != string(ranks[i]) {
			t.Errorf("unexpected rank notation: got=%s,%v want=%c", r, err, ranks[i])
		}
		if x, err := NotationToFile(files[i]); err != nil || x != Pos(i) {
			t.Errorf("unexpected file: got=%d,%v want=%d", x, err, i)
		}
		if y, err := NotationToRank(ranks[i]); err != nil || y != Pos(i) {
			t.Errorf("unexpected rank: got=%d,%v want=%d", y, err, i)
		}
	}
	for i := 8; i <= 255; i++ {
		if _, err := FileToNotation(uint8(i)); err == nil {
			t.Errorf("error expected for file %d: got=nil", i)
		}
		if _, err := RankToNotation(uint8(i)); err == nil {
			t.Errorf("error expected for rank %d: got=nil", i)
		}
	}
}

func TestNamedSquares(t *testing.T) {
	t.Parallel()
	tests := []struct {
		pos  Pos
		want string
	}{
		{A8, "a8"},
		{H8, "h8"},
		{E1, "e1"},
		{H1, "h1"},
		{NewPos(FileE, Rank4), "e4"},
	}
	for _, tt := range tests {
		if got := tt.pos.Notation(); got != tt.want {
			t.Errorf("unexpected notation: got=%s want=%s", got, tt.want)
		}
	}
	if NoPos.Notation() != "" {
		t.Errorf("unexpected notation for NoPos: got=%q", NoPos.Notation())
	}
}
