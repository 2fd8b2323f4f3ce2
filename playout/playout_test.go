package playout_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gobaduk/gobaduk/playout"
	"github.com/gobaduk/gobaduk/rules"
)

func TestRunTalliesEverySample(t *testing.T) {
	g := rules.NewGameWithSize(5, rules.Chinese())
	result := playout.Run(g, 20)

	assert.Equal(t, 20, result.Samples)
	assert.Equal(t, result.Samples, result.BlackWins+result.WhiteWins+result.Draws)
}

func TestRunDoesNotMutateStartingGame(t *testing.T) {
	g := rules.NewGameWithSize(5, rules.Chinese())
	playout.Run(g, 8)

	assert.False(t, g.IsOver())
	assert.Equal(t, 0, g.PassCount())
}

func TestWinRateIsWithinBounds(t *testing.T) {
	g := rules.NewGameWithSize(5, rules.Chinese())
	result := playout.Run(g, 12)

	rate := result.WinRate()
	assert.GreaterOrEqual(t, rate, 0.0)
	assert.LessOrEqual(t, rate, 1.0)
}

func TestRunWithZeroSamples(t *testing.T) {
	g := rules.NewGameWithSize(5, rules.Chinese())
	result := playout.Run(g, 0)
	assert.Equal(t, 0, result.Samples)
}
