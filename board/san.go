package board

import (
	"fmt"
	"strings"

	"github.com/daystram/chesscore/bitboard"
	"github.com/daystram/chesscore/position"
)

// NewActionFromSAN resolves a SAN token against g, playing for the side to move.
func NewActionFromSAN(token string, g *Game) (Action, error) {
	a, err := parseSAN(token, g)
	if err != nil {
		return Action{}, fmt.Errorf("%w: %q: %w", ErrInvalidSAN, token, err)
	}
	return a, nil
}

func parseSAN(token string, g *Game) (Action, error) {
	san := strings.TrimRight(token, "+#!?")
	if len(san) < 2 {
		return Action{}, fmt.Errorf("%w: token too short", position.ErrWrongParameterNumber)
	}

	side := g.turn
	switch san {
	case "O-O", "0-0":
		return castlingAction(side, true), nil
	case "O-O-O", "0-0-0":
		return castlingAction(side, false), nil
	}

	promoted := PieceUnknown
	if i := strings.IndexByte(san, '='); i != -1 {
		if i != len(san)-2 {
			return Action{}, fmt.Errorf("%w: malformed promotion suffix", position.ErrInvalidParameter)
		}
		p, err := PieceFromSymbol(san[i+1])
		if err != nil {
			return Action{}, err
		}
		promoted, san = p, san[:i]
	} else if n := len(san); n > 2 && san[n-2] >= '1' && san[n-2] <= '8' && strings.IndexByte("QRBN", san[n-1]) != -1 {
		promoted, _ = PieceFromSymbol(san[n-1])
		san = san[:n-1]
	}
	if promoted == PieceKing {
		return Action{}, fmt.Errorf("%w: cannot promote to King", position.ErrInvalidParameter)
	}
	if len(san) < 2 {
		return Action{}, fmt.Errorf("%w: promotion without destination", position.ErrWrongParameterNumber)
	}

	piece := PiecePawn
	if 'A' <= san[0] && san[0] <= 'Z' {
		p, err := PieceFromSymbol(san[0])
		if err != nil {
			return Action{}, err
		}
		piece, san = p, san[1:]
	}
	if len(san) < 2 {
		return Action{}, fmt.Errorf("%w: missing destination", position.ErrWrongParameterNumber)
	}
	if promoted != PieceUnknown && piece != PiecePawn {
		return Action{}, fmt.Errorf("%w: only pawns promote", position.ErrInvalidParameter)
	}

	to, err := position.NewPosFromNotation(san[len(san)-2:])
	if err != nil {
		return Action{}, err
	}
	san = san[:len(san)-2]
	isCapture := strings.HasSuffix(san, "x")
	san = strings.TrimSuffix(san, "x")

	mask, err := disambiguationMask(san)
	if err != nil {
		return Action{}, err
	}

	b := g.board
	var from position.Pos
	if piece == PiecePawn && !isCapture {
		if san != "" {
			return Action{}, fmt.Errorf("%w: pawn push with disambiguator %q", position.ErrInvalidParameter, san)
		}
		from, err = pawnPushOrigin(b, side, to)
		if err != nil {
			return Action{}, err
		}
	} else {
		candidates := CanBeAttackedFrom(to, piece, g) & mask
		if n := candidates.BitCount(); n != 1 {
			return Action{}, fmt.Errorf("%w: %d candidate %ss reach %s", position.ErrInvalidParameter, n, strings.ToLower(piece.Name()), to)
		}
		from = candidates.LS1B()
	}

	captured := b.PieceAt(to)
	switch {
	case b.SideAt(to) == side:
		return Action{}, fmt.Errorf("%w: %s holds an own piece", position.ErrInvalidParameter, to)
	case isCapture && captured == PieceUnknown:
		if piece != PiecePawn || to != g.enPassant {
			return Action{}, fmt.Errorf("%w: nothing to capture on %s", position.ErrInvalidParameter, to)
		}
		captured = PiecePawn
	case !isCapture && captured != PieceUnknown:
		return Action{}, fmt.Errorf("%w: %s is occupied", position.ErrInvalidParameter, to)
	}

	if piece == PiecePawn && to.Y() == side.Opposite().backRank() && promoted == PieceUnknown {
		return Action{}, fmt.Errorf("%w: missing promotion piece", position.ErrInvalidParameter)
	}

	var t ActionType
	switch {
	case isCapture && promoted != PieceUnknown:
		t = PromotionCapture(promoted, captured)
	case isCapture:
		t = Capture(captured)
	case promoted != PieceUnknown:
		t = Promotion(promoted)
	default:
		t = Quiet()
	}
	return NewActionFromIndex(from, to, piece, t), nil
}

func castlingAction(s Side, kingside bool) Action {
	rank := s.backRank()
	toFile := position.FileC
	if kingside {
		toFile = position.FileG
	}
	return NewActionFromIndex(position.NewPos(position.FileE, rank), position.NewPos(toFile, rank), PieceKing, Castling(kingside))
}

// disambiguationMask returns the origin squares allowed by a file, rank or full square prefix.
func disambiguationMask(d string) (bitboard.Bitboard, error) {
	switch len(d) {
	case 0:
		return ^bitboard.Bitboard(0), nil
	case 1:
		if x, err := position.NotationToFile(d[0]); err == nil {
			return bitboard.Files[x], nil
		}
		y, err := position.NotationToRank(d[0])
		if err != nil {
			return 0, fmt.Errorf("%w: bad disambiguator %q", position.ErrInvalidParameter, d)
		}
		return bitboard.Ranks[y], nil
	case 2:
		pos, err := position.NewPosFromNotation(d)
		if err != nil {
			return 0, err
		}
		return bitboard.Cells[pos], nil
	default:
		return 0, fmt.Errorf("%w: disambiguator %q too long", position.ErrInvalidParameter, d)
	}
}

// pawnPushOrigin finds the own pawn one square behind to, or two squares behind when the square
// between is empty and the pawn still stands on its starting rank.
func pawnPushOrigin(b *Board, s Side, to position.Pos) (position.Pos, error) {
	pawns := b.Bitmap(s, PiecePawn)
	single := to - s.forward()
	if !single.IsValid() {
		return position.NoPos, fmt.Errorf("%w: no pawn can push to %s", position.ErrInvalidParameter, to)
	}
	if pawns.Has(single) {
		return single, nil
	}
	double := single - s.forward()
	if b.Occupied().Has(single) || !double.IsValid() || double.Y() != s.pawnRank() || !pawns.Has(double) {
		return position.NoPos, fmt.Errorf("%w: no pawn can push to %s", position.ErrInvalidParameter, to)
	}
	return double, nil
}
