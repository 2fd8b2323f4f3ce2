package territory_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobaduk/gobaduk/board"
	"github.com/gobaduk/gobaduk/stone"
	"github.com/gobaduk/gobaduk/territory"
)

func TestEmptyBoardIsAllNeutral(t *testing.T) {
	b := board.New(5, nil)
	regions := territory.Compute(b)
	assert.Equal(t, 0, regions.Black)
	assert.Equal(t, 0, regions.White)
	assert.Equal(t, 25, regions.Neutral)
}

func TestWallSurroundedOnBothSidesIsAllOneColor(t *testing.T) {
	b := board.New(5, nil)
	tables := b.Tables()
	// A wall of black stones down column 2: both empty regions it splits
	// off border only black, so both count as black territory.
	for row := 0; row < 5; row++ {
		b.Place(tables.Index(row, 2), stone.Black)
	}

	regions := territory.Compute(b)
	assert.Equal(t, 20, regions.Black)
	assert.Equal(t, 0, regions.White)
	assert.Equal(t, 0, regions.Neutral)
}

func TestRegionsOnEitherSideOfOpposingWalls(t *testing.T) {
	b := board.New(5, nil)
	tables := b.Tables()
	for row := 0; row < 5; row++ {
		b.Place(tables.Index(row, 1), stone.Black)
		b.Place(tables.Index(row, 3), stone.White)
	}

	regions := territory.Compute(b)
	assert.Equal(t, 5, regions.Black)   // column 0
	assert.Equal(t, 5, regions.White)   // column 4
	assert.Equal(t, 5, regions.Neutral) // column 2, between the two walls
}

func TestRegionTouchingBothColorsIsNeutral(t *testing.T) {
	b := board.New(3, nil)
	tables := b.Tables()
	b.Place(tables.Index(0, 0), stone.Black)
	b.Place(tables.Index(2, 2), stone.White)

	regions := territory.Compute(b)
	assert.Equal(t, 0, regions.Black)
	assert.Equal(t, 0, regions.White)
	assert.Equal(t, 7, regions.Neutral)
}
