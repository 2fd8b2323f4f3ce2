// Package chain implements the chain (string) record and the stable-index
// arena that owns them. A Record is a maximal same-color connected
// component of stones: its membership ring lives in the board's shared
// next_stone array (see package board), so Record itself only needs to
// remember where that ring starts and ends.
//
// Arena is the dense-slice-plus-free-list allocator idiom seen across the
// retrieval pack's arena/cache implementations (a growable backing slice,
// an explicit stack of free indices, stable indices between Alloc and Free)
// applied to chain records instead of cache entries.
package chain

import "github.com/gobaduk/gobaduk/bitset"

// Index identifies a Record's slot in an Arena. Indices are stable from
// the moment Alloc returns one until the matching Free.
type Index int32

// Record is one maximal same-color connected component of stones.
type Record struct {
	Color     Color
	NumStones int
	Origin    int32 // first cell of the next_stone ring
	Last      int32 // last cell of the next_stone ring (ring closes origin->...->last->origin)
	Liberties bitset.Set
}

// Color mirrors stone.Color's Black/White values without importing
// package stone, so chain has no dependency on board-level concerns
// beyond "which of the two players owns this chain."
type Color int8

const (
	Black Color = 1
	White Color = 2
)

// IsAtari reports whether the chain has exactly one liberty.
func (r *Record) IsAtari() bool { return r.Liberties.Popcount() == 1 }

// Arena is a stable-index allocator of chain Records, with free-slot
// reuse. The zero value is not usable; construct with New.
type Arena struct {
	slots []slot
	free  []Index // stack of reusable slot indices
}

type slot struct {
	rec  Record
	live bool
}

// New returns an Arena pre-sized for capacity chains. capacity is a
// hint, not a limit: Alloc grows the backing slice as needed.
func New(capacity int) *Arena {
	return &Arena{slots: make([]slot, 0, capacity)}
}

// Alloc stores rec in a free slot (reusing one if available) and
// returns its stable Index.
func (a *Arena) Alloc(rec Record) Index {
	if n := len(a.free); n > 0 {
		idx := a.free[n-1]
		a.free = a.free[:n-1]
		a.slots[idx] = slot{rec: rec, live: true}
		return idx
	}
	a.slots = append(a.slots, slot{rec: rec, live: true})
	return Index(len(a.slots) - 1)
}

// Free releases idx back to the free list. Get(idx) is invalid after
// this call until idx is returned by a later Alloc.
func (a *Arena) Free(idx Index) {
	a.slots[idx] = slot{}
	a.free = append(a.free, idx)
}

// Get returns a pointer to the live record at idx. The pointer is only
// valid until the next Alloc/Free call on this Arena (append may move
// the backing slice).
func (a *Arena) Get(idx Index) *Record {
	return &a.slots[idx].rec
}

// Live reports whether idx currently refers to an allocated record.
func (a *Arena) Live(idx Index) bool {
	return int(idx) >= 0 && int(idx) < len(a.slots) && a.slots[idx].live
}

// ForEach calls fn once for every live record, skipping free slots. fn
// must not call Alloc or Free.
func (a *Arena) ForEach(fn func(idx Index, rec *Record)) {
	for i := range a.slots {
		if a.slots[i].live {
			fn(Index(i), &a.slots[i].rec)
		}
	}
}

// Len returns the number of live chains.
func (a *Arena) Len() int {
	n := 0
	for i := range a.slots {
		if a.slots[i].live {
			n++
		}
	}
	return n
}

// Reset empties the arena back to zero live chains, keeping the
// backing slice's capacity.
func (a *Arena) Reset() {
	a.slots = a.slots[:0]
	a.free = a.free[:0]
}

// Clone returns a deep, independent copy of the arena: every slot and
// the free list are copied, so indices remain valid and stable in the
// copy without aliasing the original's backing arrays.
func (a *Arena) Clone() *Arena {
	out := &Arena{
		slots: append([]slot(nil), a.slots...),
		free:  append([]Index(nil), a.free...),
	}
	return out
}
