package board

import (
	"github.com/daystram/chesscore/bitboard"
	"github.com/daystram/chesscore/position"
)

// CanBeAttackedFrom returns the squares of the side to move's pieces of type p that could
// pseudolegally move to dest. Pins and check are ignored.
func CanBeAttackedFrom(dest position.Pos, p Piece, g *Game) bitboard.Bitboard {
	b := g.board
	own := b.SideBitmap(g.turn)
	target := bitboard.Cells[dest]
	empty := ^b.Occupied()

	var from bitboard.Bitboard
	switch p {
	case PiecePawn:
		var behind bitboard.Bitboard
		if g.turn == SideWhite {
			behind = bitboard.ShiftS(target, 1)
		} else {
			behind = bitboard.ShiftN(target, 1)
		}
		from = (bitboard.ShiftE(behind) | bitboard.ShiftW(behind)) & b.Pawns()
	case PieceKnight:
		from = bitboard.KnightMasks[dest] & b.Knights()
	case PieceKing:
		from = bitboard.KingMask(target) & b.Kings()
	case PieceBishop:
		from = bitboard.DiagonalRays(target, empty, own) & b.Bishops()
	case PieceRook:
		from = bitboard.LateralRays(target, empty, own) & b.Rooks()
	case PieceQueen:
		from = (bitboard.DiagonalRays(target, empty, own) | bitboard.LateralRays(target, empty, own)) & b.Queens()
	}
	return from & own
}

func SinglePawnPushes(s Side, pawns, empty bitboard.Bitboard) bitboard.Bitboard {
	if s == SideWhite {
		return bitboard.ShiftN(pawns, 1) & empty
	}
	return bitboard.ShiftS(pawns, 1) & empty
}

// DoublePawnPushes takes the single push destinations and advances those still on the
// starting push rank once more.
func DoublePawnPushes(s Side, pushed, empty bitboard.Bitboard) bitboard.Bitboard {
	if s == SideWhite {
		return bitboard.ShiftN(pushed&bitboard.Ranks[position.Rank3], 1) & empty
	}
	return bitboard.ShiftS(pushed&bitboard.Ranks[position.Rank6], 1) & empty
}

// AllMoves lists quiet pseudolegal moves for s: pawn pushes short of the promotion rank, then
// bishop, rook, queen and knight moves. Pieces in pinned are skipped. King moves, captures,
// en passant, promotions and castling are not generated, and positions in check are rejected.
func AllMoves(s Side, pinned bitboard.Bitboard, inCheck bool, g *Game) ([]Action, error) {
	if inCheck {
		return nil, ErrInCheckUnsupported
	}

	b := g.board
	own := b.SideBitmap(s) &^ pinned
	other := b.SideBitmap(s.Opposite())
	empty := ^b.Occupied()

	var actions []Action
	single := SinglePawnPushes(s, b.Pawns()&own, empty)
	double := DoublePawnPushes(s, single, empty)
	actions = appendPawnPushes(actions, s, single&^bitboard.Ranks[s.Opposite().backRank()], 1)
	actions = appendPawnPushes(actions, s, double, 2)

	c := bitboard.NewCursor(b.Bishops() & own)
	for from, ok := c.Next(); ok; from, ok = c.Next() {
		dest := bitboard.DiagonalRays(bitboard.Cells[from], empty, other) &^ other
		actions = appendQuietActions(actions, from, dest, PieceBishop)
	}
	c = bitboard.NewCursor(b.Rooks() & own)
	for from, ok := c.Next(); ok; from, ok = c.Next() {
		dest := bitboard.LateralRays(bitboard.Cells[from], empty, other) &^ other
		actions = appendQuietActions(actions, from, dest, PieceRook)
	}
	c = bitboard.NewCursor(b.Queens() & own)
	for from, ok := c.Next(); ok; from, ok = c.Next() {
		origin := bitboard.Cells[from]
		dest := (bitboard.DiagonalRays(origin, empty, other) | bitboard.LateralRays(origin, empty, other)) &^ other
		actions = appendQuietActions(actions, from, dest, PieceQueen)
	}
	c = bitboard.NewCursor(b.Knights() & own)
	for from, ok := c.Next(); ok; from, ok = c.Next() {
		actions = appendQuietActions(actions, from, bitboard.KnightMasks[from]&empty, PieceKnight)
	}
	return actions, nil
}

func appendQuietActions(actions []Action, from position.Pos, dest bitboard.Bitboard, p Piece) []Action {
	c := bitboard.NewCursor(dest)
	for to, ok := c.Next(); ok; to, ok = c.Next() {
		actions = append(actions, NewActionFromIndex(from, to, p, Quiet()))
	}
	return actions
}

// appendPawnPushes pairs every destination with the origin the given number of ranks behind it.
func appendPawnPushes(actions []Action, s Side, dest bitboard.Bitboard, ranks position.Pos) []Action {
	c := bitboard.NewCursor(dest)
	for to, ok := c.Next(); ok; to, ok = c.Next() {
		actions = append(actions, NewActionFromIndex(to-ranks*s.forward(), to, PiecePawn, Quiet()))
	}
	return actions
}
