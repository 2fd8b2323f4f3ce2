// Package zobrist builds the fixed per-(cell, color) hash table used to
// maintain the board's Zobrist hash incrementally. Grounded in the
// fixed-seed xorshift64* generator a chess engine's position-hash table
// uses. Every call to New builds its own table (board.New builds one per
// board); because the seed is fixed, every table holds the same keys for
// the same cells. The point of a Zobrist table is that it's stable
// across runs, so it is seeded deterministically rather than from the
// standard library's global, unseeded source.
package zobrist

import "github.com/gobaduk/gobaduk/stone"

// seed is fixed so that hashes are reproducible across processes and Go
// versions; this matters for tests that compare hashes directly and for
// any caller persisting hashes across runs (e.g. an opening-position
// cache).
const seed uint64 = 0x9E3779B97F4A7C15

// prng is a small xorshift64* generator. It exists purely to fill the
// Zobrist table at a fixed seed; it is not used anywhere else and makes
// no attempt at cryptographic quality.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	if seed == 0 {
		seed = 1
	}
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// Table holds one random 64-bit key per (cell, color) pair. Table is
// immutable after New and safe for concurrent reads.
type Table struct {
	// keys[cell][0] is the key for Black at cell, keys[cell][1] for White.
	// stone.Empty never contributes to the hash.
	keys [][2]uint64
}

// New builds a Zobrist table for a board with numCells points.
func New(numCells int) *Table {
	rng := newPRNG(seed)
	t := &Table{keys: make([][2]uint64, numCells)}
	for i := range t.keys {
		t.keys[i][0] = rng.next()
		t.keys[i][1] = rng.next()
	}
	return t
}

// Key returns the hash contribution of placing color at cell. Calling
// it with stone.Empty panics: empty cells never contribute to the hash.
func (t *Table) Key(cell int, color stone.Color) uint64 {
	switch color {
	case stone.Black:
		return t.keys[cell][0]
	case stone.White:
		return t.keys[cell][1]
	default:
		panic("zobrist: Key called with Empty color")
	}
}
