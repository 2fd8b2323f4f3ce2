// Package rules implements the game state machine layered on top of
// package board: turns, passing, ko and superko, prisoners, handicap,
// and end-of-game scoring. Package board only knows how to place a
// stone and track chains; rules is where "is this move legal" and
// "who is winning" live.
package rules

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/gobaduk/gobaduk/board"
	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/stone"
)

// Game is a single match: a board plus turn, ko, pass, prisoner, and
// history state. The zero value is not usable; construct with NewGame
// or NewGameWithSize.
type Game struct {
	board  *board.Board
	preset Preset
	log    *zap.SugaredLogger

	turn      stone.Color
	passCount int
	handicap  int

	koPoint coord.Cell
	hasKo   bool

	prisoners [3]int // indexed by stone.Color; index 0 unused

	hashHistory map[uint64]struct{}

	resigned     bool
	resignWinner stone.Color
}

// NewGame returns a new 19x19 game under preset, black to move.
func NewGame(preset Preset) *Game {
	return NewGameWithSize(coord.MaxSize, preset)
}

// NewGameWithSize returns a new game on a size x size board.
func NewGameWithSize(size int, preset Preset) *Game {
	return NewGameWithLogger(size, preset, nil)
}

// NewGameWithLogger is NewGameWithSize with an explicit diagnostics
// logger; log may be nil.
func NewGameWithLogger(size int, preset Preset, log *zap.SugaredLogger) *Game {
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Game{
		board:       board.New(size, log),
		preset:      preset,
		log:         log,
		turn:        stone.Black,
		hashHistory: make(map[uint64]struct{}),
	}
}

// Board exposes the underlying board for read-only inspection
// (rendering, GTP-style reporting, and the like).
func (g *Game) Board() *board.Board { return g.board }

// Size returns the board's side length.
func (g *Game) Size() int { return g.board.Size() }

// Turn returns the color to move.
func (g *Game) Turn() stone.Color { return g.turn }

// PassCount returns the number of consecutive passes so far.
func (g *Game) PassCount() int { return g.passCount }

// Handicap returns the number of handicap stones placed by PutHandicap.
func (g *Game) Handicap() int { return g.handicap }

// Komi returns the preset's komi value.
func (g *Game) Komi() float64 { return g.preset.Komi }

// KoPoint returns the cell currently forbidden by ko, if any.
func (g *Game) KoPoint() (coord.Cell, bool) { return g.koPoint, g.hasKo }

// IsOver reports whether the game has ended, either by two consecutive
// passes or by resignation.
func (g *Game) IsOver() bool {
	return g.resigned || g.passCount >= 2
}

// TryPlay applies m, returning the first legality error it violates.
// Playing or passing once the game is over returns ErrGamePaused;
// only Resume (or a new game) accepts further moves at that point.
func (g *Game) TryPlay(m Move) error {
	if g.IsOver() {
		return ErrGamePaused
	}
	switch m.Kind {
	case KindPass:
		g.passCount++
		g.turn = g.turn.Opponent()
		g.hasKo = false
		g.log.Debugw("pass", "color", g.turn.Opponent(), "passCount", g.passCount)
		return nil
	case KindResign:
		g.resigned = true
		g.resignWinner = m.Resigner.Opponent()
		g.log.Infow("resignation", "resigner", m.Resigner, "winner", g.resignWinner)
		return nil
	case KindPlay:
		if err := g.CheckMove(m.Cell); err != nil {
			return err
		}
		g.commitPlay(m.Cell)
		return nil
	default:
		panic(fmt.Sprintf("rules: invalid move kind %d", m.Kind))
	}
}

// Play applies m, panicking if it is illegal. Use TryPlay when the
// move's legality isn't already known.
func (g *Game) Play(m Move) {
	if err := g.TryPlay(m); err != nil {
		panic(fmt.Sprintf("rules: illegal move: %v", err))
	}
}

// commitPlay places color's stone on cell (already validated by
// CheckMove), updates prisoners, ko, and history, and advances the
// turn.
func (g *Game) commitPlay(cell coord.Cell) {
	color := g.turn
	g.hashHistory[g.board.Hash()] = struct{}{}

	survivor, captures := g.board.Place(cell, color)

	total := 0
	var singleCell coord.Cell
	for _, c := range captures {
		total += len(c.Cells)
		if len(c.Cells) == 1 {
			singleCell = c.Cells[0]
		}
	}
	g.prisoners[color] += total

	survivorRec := g.board.Chain(survivor)
	if total == 1 && survivorRec.NumStones == 1 && survivorRec.IsAtari() {
		g.koPoint = singleCell
		g.hasKo = true
	} else {
		g.hasKo = false
	}

	if total > 0 {
		g.log.Debugw("capture", "color", color, "cell", cell, "stones", total)
	}

	g.passCount = 0
	g.turn = color.Opponent()
}

// PutHandicap places black stones directly on cells, bypassing turn
// and legality checks, sets white to move, and records the handicap
// count. Handicap placements are not added to hash_history: a
// superko check comparing against a position that was never actually
// played as a move would be meaningless.
func (g *Game) PutHandicap(cells []coord.Cell) {
	for _, c := range cells {
		g.board.Place(c, stone.Black)
	}
	g.turn = stone.White
	g.handicap = len(cells)
}

// Resume clears the pass count, allowing play to continue after two
// consecutive passes. It has no effect on a game ended by resignation.
func (g *Game) Resume() {
	g.passCount = 0
}

// Outcome reports how the game has concluded, or NotFinished if it
// hasn't.
func (g *Game) Outcome() Result {
	if g.resigned {
		return Result{Outcome: WinnerByResign, Winner: g.resignWinner}
	}
	if g.passCount < 2 {
		return Result{Outcome: NotFinished}
	}
	black, white := g.Score()
	switch {
	case black > white:
		return Result{Outcome: WinnerByScore, Winner: stone.Black, Margin: black - white}
	case white > black:
		return Result{Outcome: WinnerByScore, Winner: stone.White, Margin: white - black}
	default:
		return Result{Outcome: Draw}
	}
}

// Clone returns a deep, independent copy of the game.
func (g *Game) Clone() *Game {
	out := *g
	out.board = g.board.Clone()
	out.hashHistory = make(map[uint64]struct{}, len(g.hashHistory))
	for k := range g.hashHistory {
		out.hashHistory[k] = struct{}{}
	}
	return &out
}

// String renders the current board position.
func (g *Game) String() string {
	return g.board.String()
}
