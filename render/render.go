// Package render draws knight boards as plain text frames.
//
// Each cell becomes a space followed by its glyph (see board.Graph.Glyph),
// rows end with a newline and every frame is followed by a blank line:
//
//	S . W
//	. . K
//	E . .
package render

import (
	"bufio"
	"io"

	"github.com/katalvlaran/knightpath/board"
)

// Text writes frames of one route to W.
type Text struct {
	W          io.Writer
	G          *board.Graph
	Start, End board.Position
}

// NewText returns a renderer for the route start -> end on g.
func NewText(w io.Writer, g *board.Graph, start, end board.Position) *Text {
	return &Text{W: w, G: g, Start: start, End: end}
}

// Frame draws the board with the knight standing on current.
func (t *Text) Frame(current board.Position) error {
	bw := bufio.NewWriter(t.W)
	for y := 0; y < t.G.Height(); y++ {
		for x := 0; x < t.G.Width(); x++ {
			bw.WriteByte(' ')
			bw.WriteByte(t.G.Glyph(board.Pos(x, y), t.Start, t.End, current))
		}
		bw.WriteByte('\n')
	}
	bw.WriteByte('\n')

	return bw.Flush()
}

// Route draws the start frame followed by one frame per landing in seq.
func (t *Text) Route(seq board.Sequence) error {
	if err := t.Frame(t.Start); err != nil {
		return err
	}
	for _, p := range seq {
		if err := t.Frame(p); err != nil {
			return err
		}
	}

	return nil
}
