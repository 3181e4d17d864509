package bitboard

// LateralRays returns the squares a rook on origin reaches: every empty square along its file and
// rank up to and including the first square found in capturable.
func LateralRays(origin, empty, capturable Bitboard) Bitboard {
	return fill(origin, empty, capturable, stepVertical) | fill(origin, empty, capturable, stepHorizontal)
}

// DiagonalRays is LateralRays for bishops.
func DiagonalRays(origin, empty, capturable Bitboard) Bitboard {
	return fill(origin, empty, capturable, stepDiagonal) | fill(origin, empty, capturable, stepAntiDiagonal)
}

// fill floods from origin along the line walked by step. The flood only grows through empty squares,
// so it settles after at most Width-1 rounds.
func fill(origin, empty, capturable Bitboard, step func(Bitboard) Bitboard) Bitboard {
	passable := empty | origin
	var mask Bitboard
	for front := origin; front != mask; {
		mask = front
		front = (step(mask) | mask) & passable
	}
	return (mask | step(mask)&capturable) &^ origin
}

func stepVertical(bm Bitboard) Bitboard {
	return ShiftN(bm, 1) | ShiftS(bm, 1)
}

func stepHorizontal(bm Bitboard) Bitboard {
	return ShiftE(bm) | ShiftW(bm)
}

// a1-h8 direction
func stepDiagonal(bm Bitboard) Bitboard {
	return ShiftN(ShiftE(bm), 1) | ShiftS(ShiftW(bm), 1)
}

func stepAntiDiagonal(bm Bitboard) Bitboard {
	return ShiftN(ShiftW(bm), 1) | ShiftS(ShiftE(bm), 1)
}
