// Package board implements the grid representation, the chain index,
// and the incremental Zobrist hash update performed on every stone
// placement (spec components "Board engine" and, by composition,
// "Chain record"/"Chain arena"). It knows nothing about turns, ko,
// superko, or scoring — that's package rules, layered on top.
package board

import (
	"bytes"
	"fmt"

	"go.uber.org/zap"

	"github.com/gobaduk/gobaduk/bitset"
	"github.com/gobaduk/gobaduk/chain"
	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/stone"
	"github.com/gobaduk/gobaduk/zobrist"
)

// Board is the grid, the chain arena, and the next_stone ring, kept
// mutually consistent across every Place call.
type Board struct {
	tables *coord.Tables
	zob    *zobrist.Table
	log    *zap.SugaredLogger

	cells     []stone.Color
	chainOf   []chain.Index
	nextStone []int32

	arena *chain.Arena
	hash  uint64
}

// New returns an empty board of the given size (1..=coord.MaxSize). log
// may be nil, in which case diagnostics are discarded.
func New(size int, log *zap.SugaredLogger) *Board {
	tables := coord.New(size)
	n := tables.NumCells()
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Board{
		tables:    tables,
		zob:       zobrist.New(n),
		log:       log,
		cells:     make([]stone.Color, n),
		chainOf:   make([]chain.Index, n),
		nextStone: make([]int32, n),
		arena:     chain.New(n / 2),
	}
}

// Size returns the board's side length.
func (b *Board) Size() int { return b.tables.Size() }

// NumCells returns size*size.
func (b *Board) NumCells() int { return b.tables.NumCells() }

// Tables exposes the precomputed adjacency for this board's size, for
// use by package rules.
func (b *Board) Tables() *coord.Tables { return b.tables }

// Hash returns the current Zobrist hash (invariant: XOR of Z[cell,
// color] over every non-empty cell).
func (b *Board) Hash() uint64 { return b.hash }

// At returns the color occupying cell.
func (b *Board) At(cell coord.Cell) stone.Color { return b.cells[cell] }

// ChainAt returns the index of the chain occupying cell, if any.
func (b *Board) ChainAt(cell coord.Cell) (chain.Index, bool) {
	if b.cells[cell] == stone.Empty {
		return 0, false
	}
	return b.chainOf[cell], true
}

// Chain returns the record for idx. The returned pointer is read-only
// for callers outside this package; mutating it directly would desync
// chainOf/hash/nextStone.
func (b *Board) Chain(idx chain.Index) *chain.Record { return b.arena.Get(idx) }

// ForEachChain visits every live chain.
func (b *Board) ForEachChain(fn func(idx chain.Index, rec *chain.Record)) {
	b.arena.ForEach(fn)
}

func toChainColor(c stone.Color) chain.Color { return chain.Color(c) }
func toStoneColor(c chain.Color) stone.Color { return stone.Color(c) }

func containsIndex(s []chain.Index, idx chain.Index) bool {
	for _, x := range s {
		if x == idx {
			return true
		}
	}
	return false
}

// Capture records one opposing chain removed by a Place call: the
// chain's (now-freed) index and every cell it occupied.
type Capture struct {
	Chain chain.Index
	Cells []coord.Cell
}

// Place puts a stone of color on cell, which must currently be empty.
// It returns the index of the chain the new stone ends up belonging to
// (freshly created, grown, or the survivor of a merge) and one Capture
// per opposing chain this move captured. Place performs no legality
// checking: callers (package rules) are responsible for rejecting
// occupied cells, suicide, ko, and superko before calling it.
func (b *Board) Place(cell coord.Cell, color stone.Color) (survivor chain.Index, captures []Capture) {
	if b.cells[cell] != stone.Empty {
		panic(fmt.Sprintf("board: Place(%d) on occupied cell", cell))
	}

	var sameChains, oppChains []chain.Index
	var libs bitset.Set
	for _, n := range b.tables.Orth(cell) {
		switch b.cells[n] {
		case stone.Empty:
			libs.Set(int(n))
		case color:
			if idx, _ := b.ChainAt(n); !containsIndex(sameChains, idx) {
				sameChains = append(sameChains, idx)
			}
		default:
			if idx, _ := b.ChainAt(n); !containsIndex(oppChains, idx) {
				oppChains = append(oppChains, idx)
			}
		}
	}

	for _, idx := range sameChains {
		b.arena.Get(idx).Liberties.Clear(int(cell))
	}
	for _, idx := range oppChains {
		b.arena.Get(idx).Liberties.Clear(int(cell))
	}

	k := b.arena.Alloc(chain.Record{
		Color:     toChainColor(color),
		NumStones: 1,
		Origin:    int32(cell),
		Last:      int32(cell),
		Liberties: libs,
	})
	b.nextStone[cell] = int32(cell)
	b.cells[cell] = color
	b.chainOf[cell] = k

	if len(sameChains) > 0 {
		// The smallest chain folds into the largest (tie-break: lowest
		// arena index wins), so the surviving index is reproducible
		// across runs of the same move sequence regardless of which
		// side of the merge the freshly placed stone lands on.
		survivor := k
		for _, idx := range sameChains {
			rec, sRec := b.arena.Get(idx), b.arena.Get(survivor)
			if rec.NumStones > sRec.NumStones || (rec.NumStones == sRec.NumStones && idx < survivor) {
				survivor = idx
			}
		}
		others := make([]chain.Index, 0, len(sameChains))
		for _, idx := range sameChains {
			if idx != survivor {
				others = append(others, idx)
			}
		}
		if survivor != k {
			others = append(others, k)
		}
		b.mergeInto(survivor, others)
		k = survivor
	}

	for _, idx := range oppChains {
		if !b.arena.Get(idx).Liberties.Any() {
			cells := b.captureChain(idx)
			captures = append(captures, Capture{Chain: idx, Cells: cells})
		}
	}

	b.hash ^= b.zob.Key(int(cell), color)

	return k, captures
}

// mergeInto folds every chain in same into k, splicing their
// next_stone rings together and re-pointing chainOf for every absorbed
// stone. Callers choose k as the surviving index before calling this;
// same must not contain k.
func (b *Board) mergeInto(k chain.Index, same []chain.Index) {
	kRec := b.arena.Get(k)
	for _, idx := range same {
		cRec := b.arena.Get(idx)
		origin, last := cRec.Origin, cRec.Last
		numStones := cRec.NumStones
		var libs bitset.Set
		libs.UnionInPlace(&cRec.Liberties)

		b.retarget(origin, k)

		b.nextStone[kRec.Last] = origin
		b.nextStone[last] = kRec.Origin
		kRec.Last = last
		kRec.NumStones += numStones
		kRec.Liberties.UnionInPlace(&libs)

		b.arena.Free(idx)
	}
}

// retarget walks the ring starting at origin (inclusive) and points
// every member cell's chainOf entry at to.
func (b *Board) retarget(origin int32, to chain.Index) {
	cur := origin
	for {
		b.chainOf[cur] = to
		next := b.nextStone[cur]
		if next == origin {
			return
		}
		cur = next
	}
}

// captureChain removes every stone of the chain at idx from the board,
// restoring the liberty this cell gave back to each still-occupied
// neighbor, frees the chain's arena slot, and returns the cells it
// occupied.
func (b *Board) captureChain(idx chain.Index) []coord.Cell {
	rec := b.arena.Get(idx)
	origin := rec.Origin
	color := toStoneColor(rec.Color)
	cells := make([]coord.Cell, 0, rec.NumStones)

	cur := origin
	for {
		next := b.nextStone[cur]
		cells = append(cells, coord.Cell(cur))
		b.cells[cur] = stone.Empty
		b.hash ^= b.zob.Key(int(cur), color)
		for _, n := range b.tables.Orth(coord.Cell(cur)) {
			if b.cells[n] != stone.Empty {
				b.arena.Get(b.chainOf[n]).Liberties.Set(int(cur))
			}
		}
		if next == origin {
			break
		}
		cur = next
	}
	b.arena.Free(idx)
	return cells
}

// Clone returns a deep, independent copy: mutating the copy never
// affects the original and vice versa. Zobrist and adjacency tables are
// immutable and shared.
func (b *Board) Clone() *Board {
	out := &Board{
		tables:    b.tables,
		zob:       b.zob,
		log:       b.log,
		cells:     append([]stone.Color(nil), b.cells...),
		chainOf:   append([]chain.Index(nil), b.chainOf...),
		nextStone: append([]int32(nil), b.nextStone...),
		hash:      b.hash,
	}
	out.arena = b.arena.Clone()
	return out
}

// String renders the board as a grid of '.', 'X' (black), and 'O'
// (white), one row per line, row 0 first.
func (b *Board) String() string {
	var buf bytes.Buffer
	size := b.Size()
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			switch b.cells[b.tables.Index(row, col)] {
			case stone.Empty:
				buf.WriteByte('.')
			case stone.Black:
				buf.WriteByte('X')
			case stone.White:
				buf.WriteByte('O')
			}
		}
		if row < size-1 {
			buf.WriteByte('\n')
		}
	}
	return buf.String()
}
