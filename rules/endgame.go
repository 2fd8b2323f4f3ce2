package rules

import "github.com/gobaduk/gobaduk/stone"

// Outcome classifies how (or whether) a game has ended.
type Outcome int

const (
	NotFinished Outcome = iota
	WinnerByScore
	WinnerByResign
	Draw
)

// Result is the full verdict returned by Game.Outcome.
type Result struct {
	Outcome Outcome
	Winner  stone.Color // valid for WinnerByScore and WinnerByResign
	Margin  float64     // valid for WinnerByScore: winner's score minus loser's
}
