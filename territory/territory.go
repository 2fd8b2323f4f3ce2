// Package territory attributes empty regions of a board to a color by
// flood fill, the way an end-of-game scorer determines territory. It
// reads a board through a small interface instead of importing package
// board directly, so neither package depends on the other.
package territory

import (
	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/stone"
)

// Source is the read-only view territory needs of a board.
type Source interface {
	Tables() *coord.Tables
	At(cell coord.Cell) stone.Color
}

// Regions is the outcome of flood-filling every empty region of a
// board: how many empty points border only black stones, only white
// stones, or both (neutral, a.k.a. dame).
type Regions struct {
	Black   int
	White   int
	Neutral int
}

// Compute flood-fills every maximal empty region (4-connectivity) and
// attributes it to Black if it borders only black stones, to White if
// it borders only white stones, or counts it as Neutral otherwise
// (including regions that border no stones at all, which can only
// happen on an entirely empty board).
func Compute(b Source) Regions {
	tables := b.Tables()
	n := tables.NumCells()
	visited := make([]bool, n)
	var out Regions

	var stack []coord.Cell
	for start := coord.Cell(0); int(start) < n; start++ {
		if visited[start] || b.At(start) != stone.Empty {
			continue
		}

		seesBlack, seesWhite := false, false
		regionSize := 0
		stack = append(stack[:0], start)
		visited[start] = true
		for len(stack) > 0 {
			cell := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			regionSize++
			for _, n := range tables.Orth(cell) {
				switch b.At(n) {
				case stone.Empty:
					if !visited[n] {
						visited[n] = true
						stack = append(stack, n)
					}
				case stone.Black:
					seesBlack = true
				case stone.White:
					seesWhite = true
				}
			}
		}

		switch {
		case seesBlack && !seesWhite:
			out.Black += regionSize
		case seesWhite && !seesBlack:
			out.White += regionSize
		default:
			out.Neutral += regionSize
		}
	}
	return out
}
