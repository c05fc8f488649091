package route

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// Reconstruct rebuilds the route from start to end out of a predecessor map.
//
// The walk begins at end and follows prev until it reaches start, prepending
// each position it passes. The result excludes start and includes end; it is
// empty when start == end.
//
// Returns ErrNoPath if end (or any cell on the way back) has no predecessor,
// and ErrReconstructionCycle if start is not reached within limit steps.
// Pass the board's cell count as limit.
// Complexity: O(limit).
func Reconstruct(prev board.Predecessors, start, end board.Position, limit int) (board.Sequence, error) {
	if end == start {
		return board.Sequence{}, nil
	}
	if _, ok := prev[end]; !ok {
		return nil, fmt.Errorf("%w: %s unreached from %s", ErrNoPath, end, start)
	}

	var rev board.Sequence
	for at := end; at != start; {
		if len(rev) >= limit {
			return nil, fmt.Errorf("%w: %d steps from %s without reaching %s", ErrReconstructionCycle, limit, end, start)
		}
		rev = append(rev, at)
		p, ok := prev[at]
		if !ok {
			return nil, fmt.Errorf("%w: chain from %s breaks at %s", ErrNoPath, end, at)
		}
		at = p
	}

	// Reverse into visiting order.
	for i, j := 0, len(rev)-1; i < j; i, j = i+1, j-1 {
		rev[i], rev[j] = rev[j], rev[i]
	}

	return rev, nil
}

// Replay follows seq from start and returns every landing including start.
// The last element is where the knight stands after the final move.
func Replay(seq board.Sequence, start board.Position) []board.Position {
	out := make([]board.Position, 0, len(seq)+1)
	out = append(out, start)

	return append(out, seq...)
}

// Cost sums the landing cost of every position in seq.
func Cost(seq board.Sequence, g *board.Graph) int64 {
	var total int64
	for _, p := range seq {
		c := g.Cost(p)
		if c == board.Impassable {
			return board.Impassable
		}
		total += c
	}

	return total
}
