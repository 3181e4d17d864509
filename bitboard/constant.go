package bitboard

import (
	"github.com/daystram/chesscore/position"
)

var (
	Files = [Width]Bitboard{
		position.FileA: 0x_01_01_01_01_01_01_01_01,
		position.FileB: 0x_02_02_02_02_02_02_02_02,
		position.FileC: 0x_04_04_04_04_04_04_04_04,
		position.FileD: 0x_08_08_08_08_08_08_08_08,
		position.FileE: 0x_10_10_10_10_10_10_10_10,
		position.FileF: 0x_20_20_20_20_20_20_20_20,
		position.FileG: 0x_40_40_40_40_40_40_40_40,
		position.FileH: 0x_80_80_80_80_80_80_80_80,
	}
	Ranks = [Height]Bitboard{
		position.Rank8: 0x_00_00_00_00_00_00_00_FF,
		position.Rank7: 0x_00_00_00_00_00_00_FF_00,
		position.Rank6: 0x_00_00_00_00_00_FF_00_00,
		position.Rank5: 0x_00_00_00_00_FF_00_00_00,
		position.Rank4: 0x_00_00_00_FF_00_00_00_00,
		position.Rank3: 0x_00_00_FF_00_00_00_00_00,
		position.Rank2: 0x_00_FF_00_00_00_00_00_00,
		position.Rank1: 0x_FF_00_00_00_00_00_00_00,
	}
	Cells       [TotalCells]Bitboard
	KnightMasks [TotalCells]Bitboard
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		Cells[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		cell := Cells[pos]
		twoE, twoW := ShiftE(ShiftE(cell)), ShiftW(ShiftW(cell))
		twoN, twoS := ShiftN(cell, 2), ShiftS(cell, 2)
		mask := Bitboard(0)
		mask |= ShiftN(twoE|twoW, 1)
		mask |= ShiftS(twoE|twoW, 1)
		mask |= ShiftE(twoN | twoS)
		mask |= ShiftW(twoN | twoS)
		KnightMasks[pos] = mask
	}
}
