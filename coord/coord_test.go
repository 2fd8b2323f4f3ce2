package coord_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobaduk/gobaduk/coord"
)

func TestIndexRowColRoundTrip(t *testing.T) {
	tables := coord.New(9)
	for row := 0; row < 9; row++ {
		for col := 0; col < 9; col++ {
			c := tables.Index(row, col)
			gotRow, gotCol := tables.RowCol(c)
			assert.Equal(t, row, gotRow)
			assert.Equal(t, col, gotCol)
		}
	}
}

func TestOrthCornerHasTwoNeighbors(t *testing.T) {
	tables := coord.New(9)
	corner := tables.Index(0, 0)
	assert.Len(t, tables.Orth(corner), 2)
	assert.True(t, tables.IsEdge(corner))
}

func TestOrthCenterHasFourNeighbors(t *testing.T) {
	tables := coord.New(9)
	center := tables.Index(4, 4)
	assert.Len(t, tables.Orth(center), 4)
	assert.False(t, tables.IsEdge(center))
}

func TestOffBoardDiagCount(t *testing.T) {
	tables := coord.New(9)
	corner := tables.Index(0, 0)
	edge := tables.Index(0, 4)
	center := tables.Index(4, 4)
	assert.Equal(t, 3, tables.OffBoardDiagCount(corner))
	assert.Equal(t, 2, tables.OffBoardDiagCount(edge))
	assert.Equal(t, 0, tables.OffBoardDiagCount(center))
}

func TestNewRejectsOutOfRangeSize(t *testing.T) {
	assert.Panics(t, func() { coord.New(0) })
	assert.Panics(t, func() { coord.New(coord.MaxSize + 1) })
}

func TestNumCells(t *testing.T) {
	tables := coord.New(19)
	require.Equal(t, 361, tables.NumCells())
}
