// Command gtp is a minimal Go Text Protocol front end over package
// rules, in the spirit of the GTP engine this module's teacher shipped:
// a line-oriented command/response loop with a handler-map dispatch,
// now wired to the chain-arena engine instead of a scratch board.
//
// For more on the Go Text Protocol, see:
// https://www.lysator.liu.se/~gunnar/gtp/gtp2-spec-draft2/gtp2-spec.html
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/gobaduk/gobaduk/coord"
	"github.com/gobaduk/gobaduk/playout"
	"github.com/gobaduk/gobaduk/rules"
	"github.com/gobaduk/gobaduk/stone"
)

func main() {
	boardSize := flag.Int("size", 19, "board size")
	samples := flag.Int("samples", 500, "random playouts per genmove")
	chinese := flag.Bool("chinese", false, "use Chinese (area) scoring instead of Japanese (territory)")
	flag.Parse()

	preset := rules.Japanese()
	if *chinese {
		preset = rules.Chinese()
	}

	e := newEngine(*boardSize, preset, *samples)
	if err := run(e, os.Stdin, os.Stdout); err != nil && err != io.EOF {
		fmt.Fprintf(os.Stderr, "gtp: %v\n", err)
		os.Exit(1)
	}
}

// engine holds the one game a GTP session plays.
type engine struct {
	game    *rules.Game
	preset  rules.Preset
	samples int
}

func newEngine(size int, preset rules.Preset, samples int) *engine {
	return &engine{game: rules.NewGameWithSize(size, preset), preset: preset, samples: samples}
}

// response is one line (or pair of lines) of GTP output.
type response struct {
	message string
	ok      bool
}

func success(message string) response { return response{message, true} }
func failure(message string) response { return response{message, false} }

func (r response) String() string {
	prefix := "="
	if !r.ok {
		prefix = "?"
	}
	if r.message == "" {
		return prefix + "\n\n"
	}
	return prefix + " " + r.message + "\n\n"
}

type handler func(e *engine, args []string) response

var handlers map[string]handler

func init() {
	handlers = map[string]handler{
		"protocol_version": func(e *engine, args []string) response { return success("2") },
		"name":             func(e *engine, args []string) response { return success("gobaduk") },
		"version":          func(e *engine, args []string) response { return success("1.0") },
		"known_command":    handleKnownCommand,
		"list_commands":    handleListCommands,
		"boardsize":        handleBoardSize,
		"clear_board":      handleClearBoard,
		"komi":             handleKomi,
		"play":             handlePlay,
		"genmove":          handleGenMove,
		"showboard":        handleShowBoard,
		"quit":             func(e *engine, args []string) response { return success("") },
	}
}

// run reads GTP commands from input and writes responses to out until
// a "quit" command is read or input is exhausted.
func run(e *engine, input io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(input)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		command, args := fields[0], fields[1:]

		h, known := handlers[command]
		if !known {
			fmt.Fprint(out, failure("unknown command"))
			continue
		}
		fmt.Fprint(out, h(e, args))
		if command == "quit" {
			return nil
		}
	}
	return scanner.Err()
}

func handleKnownCommand(e *engine, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	_, known := handlers[args[0]]
	return success(strconv.FormatBool(known))
}

func handleListCommands(e *engine, args []string) response {
	names := make([]string, 0, len(handlers))
	for name := range handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return success(strings.Join(names, "\n"))
}

func handleBoardSize(e *engine, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	size, err := strconv.Atoi(args[0])
	if err != nil || size < 1 || size > coord.MaxSize {
		return failure("unacceptable size")
	}
	e.game = rules.NewGameWithSize(size, e.preset)
	return success("")
}

func handleClearBoard(e *engine, args []string) response {
	e.game = rules.NewGameWithSize(e.game.Size(), e.preset)
	return success("")
}

func handleKomi(e *engine, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	komi, err := strconv.ParseFloat(args[0], 64)
	if err != nil {
		return failure("syntax error")
	}
	e.preset.Komi = komi
	return success("")
}

func handlePlay(e *engine, args []string) response {
	if len(args) != 2 {
		return failure("wrong number of arguments")
	}
	color, ok := stone.ParseColor(args[0])
	if !ok {
		return failure("syntax error")
	}
	if color != e.game.Turn() {
		return failure(fmt.Sprintf("it is not %s's turn", color))
	}

	if strings.EqualFold(args[1], "pass") {
		if err := e.game.TryPlay(rules.Pass()); err != nil {
			return failure(err.Error())
		}
		return success("")
	}

	cell, ok := parseVertex(args[1], e.game.Size())
	if !ok {
		return failure("syntax error")
	}
	if err := e.game.TryPlay(rules.Play(cell)); err != nil {
		return failure(err.Error())
	}
	return success("")
}

// handleGenMove picks a move for the color to move by running random
// playouts from each legal candidate and keeping the one with the best
// estimated win rate, mirroring the hits/wins candidate scoring the
// teacher's multi-robot search used, simplified to one pass per move
// instead of incremental tree search.
func handleGenMove(e *engine, args []string) response {
	if len(args) != 1 {
		return failure("wrong number of arguments")
	}
	color, ok := stone.ParseColor(args[0])
	if !ok {
		return failure("syntax error")
	}
	if e.game.IsOver() {
		return failure("game is over")
	}
	if color != e.game.Turn() {
		return failure(fmt.Sprintf("it is not %s's turn", color))
	}

	legal := e.game.Legals()
	if len(legal) == 0 {
		e.game.Play(rules.Pass())
		return success("pass")
	}

	perMove := e.samples / len(legal)
	if perMove < 1 {
		perMove = 1
	}

	best, bestScore := legal[0], -1.0
	for _, cell := range legal {
		trial := e.game.Clone()
		trial.Play(rules.Play(cell))
		rate := playout.Run(trial, perMove).WinRate()
		if color == stone.White {
			rate = 1 - rate
		}
		if rate > bestScore {
			bestScore, best = rate, cell
		}
	}

	e.game.Play(rules.Play(best))
	return success(formatVertex(best, e.game.Size()))
}

func handleShowBoard(e *engine, args []string) response {
	return success("\n" + e.game.String())
}

// vertexLetters skips 'I', matching GTP's column-naming convention.
const vertexLetters = "ABCDEFGHJKLMNOPQRSTUVWXYZ"

// parseVertex converts a GTP vertex like "Q16" into a coord.Cell. GTP
// numbers rows from 1 at the bottom; coord numbers rows from 0 at the
// top, so the row is flipped.
func parseVertex(s string, size int) (coord.Cell, bool) {
	s = strings.ToUpper(s)
	if len(s) < 2 {
		return 0, false
	}
	col := strings.IndexByte(vertexLetters, s[0])
	if col < 0 || col >= size {
		return 0, false
	}
	rowNum, err := strconv.Atoi(s[1:])
	if err != nil || rowNum < 1 || rowNum > size {
		return 0, false
	}
	row := size - rowNum
	return coord.Cell(row*size + col), true
}

func formatVertex(cell coord.Cell, size int) string {
	row, col := int(cell)/size, int(cell)%size
	rowNum := size - row
	return fmt.Sprintf("%c%d", vertexLetters[col], rowNum)
}
