package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobaduk/gobaduk/rules"
)

func checkCommand(t *testing.T, e *engine, command, want string) {
	t.Helper()
	fields := strings.Fields(command)
	h, ok := handlers[fields[0]]
	require.True(t, ok, "no handler for %q", fields[0])
	got := h(e, fields[1:])
	assert.Equal(t, want, got.message)
	assert.True(t, got.ok)
}

func TestSimpleCommands(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	checkCommand(t, e, "protocol_version", "2")
	checkCommand(t, e, "name", "gobaduk")
}

func TestKnownCommand(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["known_command"](e, []string{"play"})
	assert.Equal(t, "true", got.message)
	got = handlers["known_command"](e, []string{"nope"})
	assert.Equal(t, "false", got.message)
}

func TestBoardSize(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["boardsize"](e, []string{"13"})
	require.True(t, got.ok)
	assert.Equal(t, 13, e.game.Size())
}

func TestKomi(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["komi"](e, []string{"7.5"})
	require.True(t, got.ok)
	assert.Equal(t, 7.5, e.preset.Komi)
}

func TestPlayAndVertexRoundTrip(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["play"](e, []string{"b", "C3"})
	require.True(t, got.ok, got.message)

	cell, ok := parseVertex("C3", 9)
	require.True(t, ok)
	assert.Equal(t, "C3", formatVertex(cell, 9))
}

func TestPlayRejectsOutOfTurnColor(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["play"](e, []string{"w", "C3"})
	assert.False(t, got.ok)
}

func TestPlayPass(t *testing.T) {
	e := newEngine(9, rules.Japanese(), 10)
	got := handlers["play"](e, []string{"b", "pass"})
	require.True(t, got.ok)
	assert.Equal(t, 1, e.game.PassCount())
}

func TestGenMovePicksALegalCell(t *testing.T) {
	e := newEngine(5, rules.Japanese(), 8)
	got := handlers["genmove"](e, []string{"b"})
	require.True(t, got.ok, got.message)
	assert.NotEmpty(t, got.message)
}
