package bitset_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobaduk/gobaduk/bitset"
)

func TestSetClearTest(t *testing.T) {
	var s bitset.Set
	assert.False(t, s.Test(5))
	s.Set(5)
	assert.True(t, s.Test(5))
	s.Clear(5)
	assert.False(t, s.Test(5))
}

func TestPopcountAndAny(t *testing.T) {
	var s bitset.Set
	assert.False(t, s.Any())
	assert.Equal(t, 0, s.Popcount())
	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(360)
	assert.True(t, s.Any())
	assert.Equal(t, 4, s.Popcount())
}

func TestUnionInPlace(t *testing.T) {
	var a, b bitset.Set
	a.Set(1)
	b.Set(2)
	a.UnionInPlace(&b)
	assert.True(t, a.Test(1))
	assert.True(t, a.Test(2))
	assert.Equal(t, 2, a.Popcount())
}

func TestReset(t *testing.T) {
	var s bitset.Set
	s.Set(10)
	s.Set(300)
	s.Reset()
	assert.False(t, s.Any())
}

func TestEachVisitsInAscendingOrder(t *testing.T) {
	var s bitset.Set
	want := []int{3, 64, 65, 200}
	for _, i := range want {
		s.Set(i)
	}
	var got []int
	s.Each(func(i int) { got = append(got, i) })
	assert.Equal(t, want, got)
}
