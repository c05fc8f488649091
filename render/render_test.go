package render_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/render"
	"github.com/katalvlaran/knightpath/route"
)

func TestText_Frame(t *testing.T) {
	g, err := board.Load(board.StringProvider(". W .\n. . B\n. . .\n"))
	require.NoError(t, err)

	var buf bytes.Buffer
	r := render.NewText(&buf, g, board.Pos(0, 0), board.Pos(2, 2))
	require.NoError(t, r.Frame(board.Pos(1, 2)))
	assert.Equal(t, ""+
		" S W .\n"+
		" . . B\n"+
		" . K E\n"+
		"\n", buf.String())
}

func TestText_AsStepHook(t *testing.T) {
	g, err := board.FromLayout(board.Uniform(3, 3, board.Open))
	require.NoError(t, err)
	start, end := board.Pos(0, 0), board.Pos(2, 1)
	seq := board.Sequence{end}

	var buf bytes.Buffer
	r := render.NewText(&buf, g, start, end)
	assert.True(t, route.Validate(seq, start, end, g, false, route.WithStepHook(r.Frame)))
	assert.Equal(t, " S . .\n . . K\n . . .\n\n", buf.String())

	buf.Reset()
	require.NoError(t, r.Route(seq))
	assert.Equal(t, ""+
		" K . .\n . . E\n . . .\n\n"+
		" S . .\n . . K\n . . .\n\n", buf.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed") }

func TestText_WriteError(t *testing.T) {
	g, err := board.FromLayout(board.Uniform(2, 2, board.Open))
	require.NoError(t, err)
	r := render.NewText(failingWriter{}, g, board.Pos(0, 0), board.Pos(1, 1))
	assert.Error(t, r.Frame(board.Pos(0, 0)))
	assert.Error(t, r.Route(nil))
}
