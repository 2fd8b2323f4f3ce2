package chain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobaduk/gobaduk/chain"
)

func TestAllocReusesFreedSlots(t *testing.T) {
	a := chain.New(1)
	i1 := a.Alloc(chain.Record{Color: chain.Black, NumStones: 1})
	i2 := a.Alloc(chain.Record{Color: chain.White, NumStones: 1})
	require.NotEqual(t, i1, i2)

	a.Free(i1)
	i3 := a.Alloc(chain.Record{Color: chain.Black, NumStones: 1})
	assert.Equal(t, i1, i3, "freed slot should be reused")
}

func TestLiveTracksAllocAndFree(t *testing.T) {
	a := chain.New(1)
	idx := a.Alloc(chain.Record{Color: chain.Black, NumStones: 1})
	assert.True(t, a.Live(idx))
	a.Free(idx)
	assert.False(t, a.Live(idx))
}

func TestForEachSkipsFreedSlots(t *testing.T) {
	a := chain.New(2)
	i1 := a.Alloc(chain.Record{Color: chain.Black, NumStones: 1})
	a.Alloc(chain.Record{Color: chain.White, NumStones: 2})
	a.Free(i1)

	seen := 0
	a.ForEach(func(idx chain.Index, rec *chain.Record) {
		seen++
		assert.Equal(t, chain.White, rec.Color)
	})
	assert.Equal(t, 1, seen)
	assert.Equal(t, 1, a.Len())
}

func TestIsAtari(t *testing.T) {
	rec := chain.Record{}
	rec.Liberties.Set(5)
	assert.True(t, rec.IsAtari())
	rec.Liberties.Set(6)
	assert.False(t, rec.IsAtari())
}

func TestCloneIsIndependent(t *testing.T) {
	a := chain.New(1)
	idx := a.Alloc(chain.Record{Color: chain.Black, NumStones: 1})

	clone := a.Clone()
	clone.Get(idx).NumStones = 99

	assert.Equal(t, 1, a.Get(idx).NumStones)
	assert.Equal(t, 99, clone.Get(idx).NumStones)
}
