package zobrist_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gobaduk/gobaduk/stone"
	"github.com/gobaduk/gobaduk/zobrist"
)

func TestKeysAreDeterministicAcrossTables(t *testing.T) {
	a := zobrist.New(361)
	b := zobrist.New(361)
	assert.Equal(t, a.Key(42, stone.Black), b.Key(42, stone.Black))
	assert.Equal(t, a.Key(42, stone.White), b.Key(42, stone.White))
}

func TestKeysDifferByCellAndColor(t *testing.T) {
	table := zobrist.New(361)
	require.NotEqual(t, table.Key(0, stone.Black), table.Key(0, stone.White))
	require.NotEqual(t, table.Key(0, stone.Black), table.Key(1, stone.Black))
}

func TestKeyPanicsOnEmpty(t *testing.T) {
	table := zobrist.New(361)
	assert.Panics(t, func() { table.Key(0, stone.Empty) })
}
