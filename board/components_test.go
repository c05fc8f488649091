package board_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/board"
)

func TestComponents_CenterIsolated(t *testing.T) {
	g := mustDecode(t, ". . .\n. . .\n. . .\n")

	comps := g.Components()
	require.Len(t, comps, 2)
	assert.Len(t, comps[0], 8)
	assert.Equal(t, board.Pos(0, 0), comps[0][0])
	assert.Equal(t, []board.Position{board.Pos(1, 1)}, comps[1])

	assert.True(t, g.Connected(board.Pos(0, 0), board.Pos(2, 2)))
	assert.False(t, g.Connected(board.Pos(0, 0), board.Pos(1, 1)))
	assert.True(t, g.Connected(board.Pos(1, 1), board.Pos(1, 1)))
}

func TestComponents_ImpassableExcluded(t *testing.T) {
	g := mustDecode(t, ". R .\n. . .\nB . .\n")

	var cells int
	for _, c := range g.Components() {
		assert.NotContains(t, c, board.Pos(1, 0))
		assert.NotContains(t, c, board.Pos(0, 2))
		cells += len(c)
	}
	assert.Equal(t, 7, cells)
	assert.False(t, g.Connected(board.Pos(1, 0), board.Pos(1, 0)))
	assert.False(t, g.Connected(board.Pos(0, 0), board.Pos(5, 5)))
}

func TestComponents_TeleportJoins(t *testing.T) {
	g := mustDecode(t, "T . .\n. T .\n. . .\n")

	assert.Len(t, g.Components(), 1)
	assert.True(t, g.Connected(board.Pos(2, 2), board.Pos(1, 1)))
	assert.True(t, g.Connected(board.Pos(1, 1), board.Pos(0, 2)))
}
