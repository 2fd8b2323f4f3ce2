// Package playout runs independent random games to completion and
// tallies their outcomes, the way a Monte Carlo move generator
// estimates a position's value. It mirrors the retrieval pack's
// clone-per-goroutine concurrency idiom: every worker clones the
// starting position and plays it out on its own copy with its own
// random source, so there is no shared mutable state and nothing to
// lock.
package playout

import (
	"math/rand"
	"runtime"

	"github.com/gobaduk/gobaduk/rules"
	"github.com/gobaduk/gobaduk/stone"
)

// maxMoves caps a single playout so a pathological random sequence
// can't run forever; real games end in a few hundred moves at most.
const maxMoves = 1000

// Result tallies the outcome of a batch of playouts.
type Result struct {
	Samples   int
	BlackWins int
	WhiteWins int
	Draws     int
}

// WinRate returns black's win fraction among the completed samples.
func (r Result) WinRate() float64 {
	if r.Samples == 0 {
		return 0
	}
	return float64(r.BlackWins) / float64(r.Samples)
}

// Run plays n independent random games starting from a clone of g and
// tallies their outcomes, splitting the work across GOMAXPROCS
// goroutines. g itself is never mutated.
func Run(g *rules.Game, n int) Result {
	if n <= 0 {
		return Result{}
	}
	workers := runtime.GOMAXPROCS(0)
	if workers > n {
		workers = n
	}

	results := make(chan Result, workers)
	base, extra := n/workers, n%workers
	for i := 0; i < workers; i++ {
		share := base
		if i < extra {
			share++
		}
		rng := rand.New(rand.NewSource(int64(i) + 1))
		go func(share int, rng *rand.Rand) {
			results <- runShare(g, share, rng)
		}(share, rng)
	}

	var total Result
	for i := 0; i < workers; i++ {
		r := <-results
		total.Samples += r.Samples
		total.BlackWins += r.BlackWins
		total.WhiteWins += r.WhiteWins
		total.Draws += r.Draws
	}
	return total
}

func runShare(g *rules.Game, n int, rng *rand.Rand) Result {
	var r Result
	for i := 0; i < n; i++ {
		r.Samples++
		switch playOne(g, rng) {
		case stone.Black:
			r.BlackWins++
		case stone.White:
			r.WhiteWins++
		default:
			r.Draws++
		}
	}
	return r
}

// playOne clones g and plays uniformly random legal moves until the
// game ends or maxMoves is reached, then reports the winner.
func playOne(g *rules.Game, rng *rand.Rand) stone.Color {
	game := g.Clone()
	for move := 0; move < maxMoves && !game.IsOver(); move++ {
		legal := game.Legals()
		if len(legal) == 0 {
			game.Play(rules.Pass())
			continue
		}
		game.Play(rules.Play(legal[rng.Intn(len(legal))]))
	}
	for !game.IsOver() {
		game.Play(rules.Pass())
	}

	outcome := game.Outcome()
	if outcome.Outcome == rules.WinnerByScore || outcome.Outcome == rules.WinnerByResign {
		return outcome.Winner
	}
	return stone.Empty
}
