// Package coord derives, once per board size, the flat adjacency tables
// every hot path in board and rules walks instead of recomputing
// (row, col) bounds checks. The layout mirrors the fixed offset/range
// tables a compiled neighbor lookup would produce: every cell's
// neighbors live in a contiguous slice of a single backing array.
package coord

// MaxSize is the largest board side this module supports. Liberty
// bitsets (see package bitset) are sized for MaxSize*MaxSize cells.
const MaxSize = 19

// Cell is a 0-based index into a size*size board, row-major with row 0
// at the top (matching the public (row, col) coordinate convention).
type Cell int32

// None is not a valid Cell; it is a sentinel for "no such cell". No
// function in this package returns it.
const None Cell = -1

// Tables holds the precomputed orthogonal and diagonal adjacency for
// every cell of one board size. It is immutable after New and safe for
// concurrent reads.
type Tables struct {
	size int

	// orth/diag are flattened adjacency: cell c's neighbors occupy
	// orth[c*4 : c*4+orthCount[c]] (resp. diag). Every cell gets a
	// fixed 4-wide slot so indexing never needs the offset table a
	// variable-width packing would require.
	orth      []Cell
	orthCount []uint8
	diag      []Cell
	diagCount []uint8
}

// New derives the adjacency tables for a size x size board. size must
// be between 1 and MaxSize inclusive.
func New(size int) *Tables {
	if size < 1 || size > MaxSize {
		panic("coord: board size out of range")
	}
	n := size * size
	t := &Tables{
		size:      size,
		orth:      make([]Cell, n*4),
		orthCount: make([]uint8, n),
		diag:      make([]Cell, n*4),
		diagCount: make([]uint8, n),
	}
	for row := 0; row < size; row++ {
		for col := 0; col < size; col++ {
			c := t.Index(row, col)
			t.fillOrth(c, row, col)
			t.fillDiag(c, row, col)
		}
	}
	return t
}

func (t *Tables) fillOrth(c Cell, row, col int) {
	n := 0
	add := func(r, cc int) {
		if r >= 0 && r < t.size && cc >= 0 && cc < t.size {
			t.orth[int(c)*4+n] = t.Index(r, cc)
			n++
		}
	}
	add(row-1, col)
	add(row+1, col)
	add(row, col-1)
	add(row, col+1)
	t.orthCount[c] = uint8(n)
}

func (t *Tables) fillDiag(c Cell, row, col int) {
	n := 0
	add := func(r, cc int) {
		if r >= 0 && r < t.size && cc >= 0 && cc < t.size {
			t.diag[int(c)*4+n] = t.Index(r, cc)
			n++
		}
	}
	add(row-1, col-1)
	add(row-1, col+1)
	add(row+1, col-1)
	add(row+1, col+1)
	t.diagCount[c] = uint8(n)
}

// Size returns the board side this table was built for.
func (t *Tables) Size() int { return t.size }

// NumCells returns size*size.
func (t *Tables) NumCells() int { return t.size * t.size }

// Index converts a (row, col) pair into a Cell. Row 0 is the top row.
func (t *Tables) Index(row, col int) Cell { return Cell(row*t.size + col) }

// RowCol converts a Cell back into (row, col).
func (t *Tables) RowCol(c Cell) (row, col int) {
	return int(c) / t.size, int(c) % t.size
}

// Orth returns the (2, 3, or 4) in-bounds orthogonal neighbors of c, as
// a slice into the shared backing array. Callers must not retain it
// across a call that rebuilds the table (tables are immutable, so in
// practice this just means: don't mutate it).
func (t *Tables) Orth(c Cell) []Cell {
	return t.orth[int(c)*4 : int(c)*4+int(t.orthCount[c])]
}

// Diag returns the (1 to 4) in-bounds diagonal neighbors of c.
func (t *Tables) Diag(c Cell) []Cell {
	return t.diag[int(c)*4 : int(c)*4+int(t.diagCount[c])]
}

// OffBoardDiagCount returns how many of the 4 diagonal directions fall
// off the board at c (0 in the interior, 2 on an edge, 3 in a corner).
func (t *Tables) OffBoardDiagCount(c Cell) int {
	return 4 - int(t.diagCount[c])
}

// IsEdge reports whether c has fewer than 4 orthogonal neighbors, i.e.
// lies on the border (including corners) of the board.
func (t *Tables) IsEdge(c Cell) bool {
	return t.orthCount[c] < 4
}
