package rules

import (
	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/stone"
)

// Kind distinguishes the three things a player can do on their turn.
type Kind int

const (
	KindPlay Kind = iota
	KindPass
	KindResign
)

// Move is one of Play(cell), Pass, or Resign(color). Play always
// applies to whichever color currently holds the turn; there is no way
// to play out of turn.
type Move struct {
	Kind     Kind
	Cell     coord.Cell  // valid when Kind == KindPlay
	Resigner stone.Color // valid when Kind == KindResign
}

// Play returns a move that places a stone on cell for the side to move.
func Play(cell coord.Cell) Move { return Move{Kind: KindPlay, Cell: cell} }

// Pass returns a move that passes the turn.
func Pass() Move { return Move{Kind: KindPass} }

// Resign returns a move where color concedes the game.
func Resign(color stone.Color) Move { return Move{Kind: KindResign, Resigner: color} }
