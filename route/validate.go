package route

import (
	"github.com/katalvlaran/knightpath/board"
)

// Validate reports whether seq is a legal knight route from start to end on g.
//
// Every step, beginning with start -> seq[0], must satisfy
// board.IsLegalMove with the given teleport exemption, and the final landing
// must be end. An empty sequence is valid only when start == end.
//
// WithStepHook observes each landing before its step is checked, matching the
// frame-per-move display of a console renderer; a hook error rejects the
// sequence. Other options are ignored.
func Validate(seq board.Sequence, start, end board.Position, g *board.Graph, teleport bool, opts ...Option) bool {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if g == nil {
		return false
	}

	last, ok := seq.Last()
	if !ok {
		return start == end && g.InBounds(start)
	}
	if last != end {
		return false
	}

	b := g.Bounds()
	prev := start
	for _, cur := range seq {
		if cfg.OnStep != nil {
			if err := cfg.OnStep(cur); err != nil {
				return false
			}
		}
		if !board.IsLegalMove(prev, cur, b, teleport) {
			return false
		}
		prev = cur
	}

	return true
}
