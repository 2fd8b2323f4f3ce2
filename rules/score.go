package rules

import (
	"github.com/gobaduk/gobaduk/chain"
	"github.com/gobaduk/gobaduk/stone"
	"github.com/gobaduk/gobaduk/territory"
)

// Score returns (black, white) under the game's own preset.
func (g *Game) Score() (black, white float64) {
	return g.ScoreBy(g.preset.Score)
}

// ScoreBy returns (black, white) combining whichever of territory,
// prisoners, stones-on-board, and komi are set in flags. Territory is
// always included; it is the baseline every ruleset scores on.
func (g *Game) ScoreBy(flags ScoreFlags) (black, white float64) {
	regions := territory.Compute(g.board)
	black = float64(regions.Black)
	white = float64(regions.White)

	if flags&ScorePrisoners != 0 {
		black += float64(g.prisoners[stone.Black])
		white += float64(g.prisoners[stone.White])
	}
	if flags&ScoreStones != 0 {
		b, w := g.stoneCounts()
		black += float64(b)
		white += float64(w)
	}
	if flags&ScoreKomi != 0 {
		white += g.preset.Komi
	}
	return black, white
}

func (g *Game) stoneCounts() (black, white int) {
	g.board.ForEachChain(func(_ chain.Index, rec *chain.Record) {
		switch stone.Color(rec.Color) {
		case stone.Black:
			black += rec.NumStones
		case stone.White:
			white += rec.NumStones
		}
	})
	return black, white
}

// Prisoners returns the cumulative stones each color has captured.
func (g *Game) Prisoners() (black, white int) {
	return g.prisoners[stone.Black], g.prisoners[stone.White]
}
