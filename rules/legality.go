package rules

import (
	"github.com/gobaduk/gobaduk/chain"
	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/stone"
)

// CheckMove evaluates cell against the game's preset illegal-move
// flags, in the fixed order KO, SUICIDE, FILLEYE, SUPERKO.
func (g *Game) CheckMove(cell coord.Cell) error {
	return g.CheckMoveBy(cell, g.preset.Illegal)
}

// CheckMoveBy is CheckMove with an explicit flag set, independent of
// the game's preset. Used by LegalsBy to enumerate moves under rules
// other than the game's own.
func (g *Game) CheckMoveBy(cell coord.Cell, flags IllegalFlags) error {
	if g.board.At(cell) != stone.Empty {
		return ErrPointNotEmpty
	}
	if flags&FlagKo != 0 && g.hasKo && cell == g.koPoint {
		return ErrKo
	}
	if flags&FlagSuicide != 0 && g.isSuicide(cell, g.turn) {
		return ErrSuicide
	}
	if flags&FlagFillEye != 0 && g.isTrueEye(cell, g.turn) {
		return ErrFillEye
	}
	if flags&FlagSuperKo != 0 && g.isSuperKo(cell, g.turn) {
		return ErrSuperKo
	}
	return nil
}

// PseudoLegals returns every empty cell, without applying any of the
// illegal-move checks.
func (g *Game) PseudoLegals() []coord.Cell {
	n := g.board.NumCells()
	out := make([]coord.Cell, 0, n)
	for i := 0; i < n; i++ {
		c := coord.Cell(i)
		if g.board.At(c) == stone.Empty {
			out = append(out, c)
		}
	}
	return out
}

// Legals returns every cell that passes CheckMove under the game's own
// preset.
func (g *Game) Legals() []coord.Cell {
	return g.LegalsBy(g.preset.Illegal)
}

// LegalsBy returns every cell that passes CheckMoveBy under flags.
func (g *Game) LegalsBy(flags IllegalFlags) []coord.Cell {
	var out []coord.Cell
	for _, c := range g.PseudoLegals() {
		if g.CheckMoveBy(c, flags) == nil {
			out = append(out, c)
		}
	}
	return out
}

func containsChainIdx(s []chain.Index, idx chain.Index) bool {
	for _, x := range s {
		if x == idx {
			return true
		}
	}
	return false
}

// isSuicide reports whether playing color on cell would leave its own
// chain with no liberties: every orthogonal neighbor already occupied,
// every same-color neighbor chain's only remaining liberty is cell
// itself, and no opposite-color neighbor chain is in atari (which
// would be captured, freeing a liberty).
func (g *Game) isSuicide(cell coord.Cell, color stone.Color) bool {
	tables := g.board.Tables()
	for _, n := range tables.Orth(cell) {
		if g.board.At(n) == stone.Empty {
			return false
		}
	}

	var sameChains, oppChains []chain.Index
	for _, n := range tables.Orth(cell) {
		idx, _ := g.board.ChainAt(n)
		if g.board.At(n) == color {
			if !containsChainIdx(sameChains, idx) {
				sameChains = append(sameChains, idx)
			}
		} else {
			if !containsChainIdx(oppChains, idx) {
				oppChains = append(oppChains, idx)
			}
		}
	}

	for _, idx := range sameChains {
		if g.board.Chain(idx).Liberties.Popcount() > 1 {
			return false
		}
	}
	for _, idx := range oppChains {
		if g.board.Chain(idx).IsAtari() {
			return false
		}
	}
	return true
}

// isTrueEye reports whether cell is a true eye for color: every
// orthogonal neighbor is color, and the diagonal corners satisfy the
// allied/off-board count rule (with one level of recursion into
// diagonal neighbors that are themselves candidate eyes).
func (g *Game) isTrueEye(cell coord.Cell, color stone.Color) bool {
	tables := g.board.Tables()
	for _, n := range tables.Orth(cell) {
		if g.board.At(n) != color {
			return false
		}
	}

	allies, offBoard := g.cornerCounts(cell, color)
	score := allies + offBoard
	if score == 4 {
		return true
	}
	if score != 3 && score != 2 {
		return false
	}

	for _, d := range tables.Diag(cell) {
		if g.board.At(d) != stone.Empty {
			continue
		}
		allOwned := true
		for _, n := range tables.Orth(d) {
			if g.board.At(n) != color {
				allOwned = false
				break
			}
		}
		if !allOwned {
			continue
		}
		a, o := g.cornerCounts(d, color)
		if a+o >= 2 {
			return true
		}
	}
	return false
}

// cornerCounts returns, for cell, the number of diagonal neighbors
// occupied by color and the number of diagonal directions that fall
// off the board.
func (g *Game) cornerCounts(cell coord.Cell, color stone.Color) (allies, offBoard int) {
	tables := g.board.Tables()
	for _, d := range tables.Diag(cell) {
		if g.board.At(d) == color {
			allies++
		}
	}
	offBoard = tables.OffBoardDiagCount(cell)
	return allies, offBoard
}

// wouldCapture reports whether placing color on cell would put any
// opposite-color neighbor chain at zero liberties.
func (g *Game) wouldCapture(cell coord.Cell, color stone.Color) bool {
	opp := color.Opponent()
	for _, n := range g.board.Tables().Orth(cell) {
		if g.board.At(n) == opp {
			idx, _ := g.board.ChainAt(n)
			if g.board.Chain(idx).IsAtari() {
				return true
			}
		}
	}
	return false
}

// isSuperKo simulates the placement on a cloned board and reports
// whether the resulting position's hash has occurred before in this
// game. A move that captures nothing can never repeat a prior
// position (the move strictly adds a stone), so the simulation is
// skipped unless wouldCapture is true.
func (g *Game) isSuperKo(cell coord.Cell, color stone.Color) bool {
	if !g.wouldCapture(cell, color) {
		return false
	}
	clone := g.board.Clone()
	clone.Place(cell, color)
	_, seen := g.hashHistory[clone.Hash()]
	return seen
}
