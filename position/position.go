package position

import (
	"errors"
	"fmt"
)

const (
	// MaxComponentScalar is the maximum component scalar the position system supports.
	MaxComponentScalar Pos = 8

	// TotalCells is the number of squares on the board.
	TotalCells = MaxComponentScalar * MaxComponentScalar

	// NoPos marks the absence of a square, e.g. when no en passant target is set.
	NoPos Pos = -1
)

var (
	// ErrWrongParameterNumber represents a wrong count of fields or characters.
	ErrWrongParameterNumber = errors.New("wrong parameter number")

	// ErrInvalidParameter represents a value outside of its valid domain.
	ErrInvalidParameter = errors.New("invalid parameter")
)

// Pos is a square index. Index 0 is a8, 7 is h8 and 63 is h1:
//
//	     a  b  c  d  e  f  g  h
//	  +-------------------------+
//	8 |  0  1  2  3  4  5  6  7 | 8
//	7 |  8  9 10 11 12 13 14 15 | 7
//	6 | 16 17 18 19 20 21 22 23 | 6
//	5 | 24 25 26 27 28 29 30 31 | 5
//	4 | 32 33 34 35 36 37 38 39 | 4
//	3 | 40 41 42 43 44 45 46 47 | 3
//	2 | 48 49 50 51 52 53 54 55 | 2
//	1 | 56 57 58 59 60 61 62 63 | 1
//	  +-------------------------+
//	     a  b  c  d  e  f  g  h
type Pos int8

func NewPos(file, rank Pos) Pos {
	return MaxComponentScalar*rank + file
}

func NewPosFromNotation(n string) (Pos, error) {
	if len(n) != 2 {
		return NoPos, fmt.Errorf("%w: square notation %q must have 2 characters", ErrWrongParameterNumber, n)
	}
	file, err := NotationToFile(n[0])
	if err != nil {
		return NoPos, err
	}
	rank, err := NotationToRank(n[1])
	if err != nil {
		return NoPos, err
	}
	return NewPos(file, rank), nil
}

// IndexToNotation returns the algebraic notation of a square index.
func IndexToNotation(index uint8) (string, error) {
	if index >= uint8(TotalCells) {
		return "", fmt.Errorf("%w: index %d too high", ErrInvalidParameter, index)
	}
	p := Pos(index)
	file, err := FileToNotation(uint8(p.X()))
	if err != nil {
		return "", err
	}
	rank, err := RankToNotation(uint8(p.Y()))
	if err != nil {
		return "", err
	}
	return file + rank, nil
}

func (p Pos) String() string {
	return p.Notation()
}

func (p Pos) Notation() string {
	if !p.IsValid() {
		return ""
	}
	n, _ := IndexToNotation(uint8(p))
	return n
}

func (p Pos) IsValid() bool {
	return 0 <= p && p < TotalCells
}

// X returns the file, 0 being the a-file.
func (p Pos) X() Pos {
	return p % MaxComponentScalar
}

// Y returns the rank row, 0 being the 8th rank.
func (p Pos) Y() Pos {
	return p / MaxComponentScalar
}

func (p Pos) Coords() (uint8, uint8) {
	return uint8(p.X()), uint8(p.Y())
}

func FileToNotation(file uint8) (string, error) {
	if file >= uint8(MaxComponentScalar) {
		return "", fmt.Errorf("%w: file %d out of bounds", ErrInvalidParameter, file)
	}
	return string(rune('a' + file)), nil
}

func NotationToFile(x byte) (Pos, error) {
	if x < 'a' || x > 'h' {
		return NoPos, fmt.Errorf("%w: unknown file %q", ErrInvalidParameter, x)
	}
	return Pos(x - 'a'), nil
}

// RankToNotation maps rank row 0 to "8" through row 7 to "1".
func RankToNotation(rank uint8) (string, error) {
	if rank >= uint8(MaxComponentScalar) {
		return "", fmt.Errorf("%w: rank %d out of bounds", ErrInvalidParameter, rank)
	}
	return string(rune('8' - rank)), nil
}

func NotationToRank(y byte) (Pos, error) {
	if y < '1' || y > '8' {
		return NoPos, fmt.Errorf("%w: unknown rank %q", ErrInvalidParameter, y)
	}
	return Pos('8' - y), nil
}
