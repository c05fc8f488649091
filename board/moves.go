package board

// knightOffsets lists the eight (dx, dy) knight jumps in generation order.
var knightOffsets = [8][2]int{
	{+1, +2}, {+1, -2}, {-1, +2}, {-1, -2},
	{+2, +1}, {+2, -1}, {-2, +1}, {-2, -1},
}

// KnightOffsets returns a copy of the eight knight jumps in generation order.
func KnightOffsets() [8][2]int { return knightOffsets }

// CandidateMoves returns the in-bounds positions one knight jump away from p,
// in the fixed order of KnightOffsets. p itself need not be in bounds.
// Complexity: O(1).
func CandidateMoves(p Position, b Bounds) []Position {
	out := make([]Position, 0, len(knightOffsets))
	for _, d := range knightOffsets {
		q := p.Add(d[0], d[1])
		if b.Contains(q) {
			out = append(out, q)
		}
	}

	return out
}

// IsKnightJump reports whether to is exactly one knight jump away from from.
func IsKnightJump(from, to Position) bool {
	dx, dy := abs(to.X-from.X), abs(to.Y-from.Y)

	return (dx == 1 && dy == 2) || (dx == 2 && dy == 1)
}

// IsLegalMove reports whether a knight may step from one position to another.
//
// Both endpoints must lie within b. A knight jump is always legal. When
// teleport is true any other in-bounds step is accepted as well: teleport
// edges do not follow knight geometry, and the validator cannot tell them
// apart from plain jumps without the caller's say-so.
func IsLegalMove(from, to Position, b Bounds, teleport bool) bool {
	if !b.Contains(from) || !b.Contains(to) {
		return false
	}
	if IsKnightJump(from, to) {
		return true
	}

	return teleport
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
