// Package stone defines the color of a single point on a Go board.
package stone

import (
	"fmt"
	"strings"
)

// Color is the contents of one board cell: empty, a black stone, or a
// white stone.
type Color int8

const (
	Empty Color = iota
	Black
	White
)

// Opponent returns the other player's color. Calling it on Empty panics;
// only Black and White are meaningful players.
func (c Color) Opponent() Color {
	switch c {
	case Black:
		return White
	case White:
		return Black
	default:
		panic(fmt.Sprintf("stone: Opponent called on %v", c))
	}
}

func (c Color) String() string {
	switch c {
	case Empty:
		return "Empty"
	case Black:
		return "Black"
	case White:
		return "White"
	default:
		return fmt.Sprintf("Color(%d)", int8(c))
	}
}

// ParseColor parses the case-insensitive GTP-style color names used
// throughout SGF and GTP collaborators ("b", "black", "w", "white").
func ParseColor(s string) (Color, bool) {
	switch strings.ToLower(s) {
	case "b", "black":
		return Black, true
	case "w", "white":
		return White, true
	default:
		return Empty, false
	}
}
