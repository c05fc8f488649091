package board

import (
	"fmt"
	"strings"
)

// IsPathClear reports whether no Barrier lies in the inclusive bounding
// rectangle spanned by from and to.
//
// The scan walks x and y independently toward to, one unit at a time, so it
// covers the whole rectangle rather than the segment between the endpoints.
// A Barrier anywhere in that box blocks the move, including at either
// endpoint. Use IsLineClear for a segment-only check.
// Complexity: O((|dx|+1)×(|dy|+1)).
func IsPathClear(from, to Position, g *Graph) bool {
	sx, sy := step(from.X, to.X), step(from.Y, to.Y)
	for x := from.X; ; x += sx {
		for y := from.Y; ; y += sy {
			if g.Terrain(Position{X: x, Y: y}) == Barrier {
				return false
			}
			if y == to.Y {
				break
			}
		}
		if x == to.X {
			break
		}
	}

	return true
}

// IsLineClear reports whether no Barrier lies on the rasterised segment
// between from and to, endpoints included (Bresenham).
// Complexity: O(max(|dx|,|dy|)).
func IsLineClear(from, to Position, g *Graph) bool {
	dx, dy := abs(to.X-from.X), -abs(to.Y-from.Y)
	sx, sy := step(from.X, to.X), step(from.Y, to.Y)
	e := dx + dy
	x, y := from.X, from.Y
	for {
		if g.Terrain(Position{X: x, Y: y}) == Barrier {
			return false
		}
		if x == to.X && y == to.Y {
			return true
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			x += sx
		}
		if e2 <= dx {
			e += dx
			y += sy
		}
	}
}

func step(from, to int) int {
	switch {
	case to > from:
		return 1
	case to < from:
		return -1
	default:
		return 0
	}
}

// SightMode selects the line-of-sight rule used by weighted searches.
type SightMode int

const (
	// SightRectangle blocks a move when a Barrier lies anywhere in the
	// bounding rectangle of its endpoints (IsPathClear).
	SightRectangle SightMode = iota
	// SightLine blocks a move only when a Barrier lies on the segment (IsLineClear).
	SightLine
	// SightNone disables line-of-sight checks.
	SightNone
)

// Clear applies the mode's rule to the move from -> to.
func (m SightMode) Clear(from, to Position, g *Graph) bool {
	switch m {
	case SightLine:
		return IsLineClear(from, to, g)
	case SightNone:
		return true
	default:
		return IsPathClear(from, to, g)
	}
}

func (m SightMode) String() string {
	switch m {
	case SightRectangle:
		return "rect"
	case SightLine:
		return "line"
	case SightNone:
		return "none"
	default:
		return fmt.Sprintf("sight(%d)", int(m))
	}
}

// ParseSightMode accepts "rect", "line" or "none" (case-insensitive).
// The empty string selects SightRectangle.
func ParseSightMode(s string) (SightMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "rect", "rectangle":
		return SightRectangle, nil
	case "line":
		return SightLine, nil
	case "none", "off":
		return SightNone, nil
	default:
		return 0, fmt.Errorf("board: unknown sight mode %q", s)
	}
}
