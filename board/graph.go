package board

import (
	"fmt"
	"slices"
)

// Graph is an immutable arena of Cells laid out row-major.
// It is safe for concurrent use by any number of readers once built.
type Graph struct {
	width, height int
	cells         []Cell

	// teleport pair; hasTeleport is false on boards without teleporters.
	hasTeleport  bool
	teleportFrom Position // second-discovered teleporter
	teleportTo   Position // first-discovered teleporter

	// component labels passable cells by region; -1 for impassable.
	component []int
	regions   int
}

// Build constructs a Graph of the given size, asking terrainOf for the
// terrain of every in-bounds Position in row-major order.
//
// Each cell receives the cost of its terrain and its in-bounds knight jumps.
// Once every cell exists the teleporter pair, if any, is wired: the second
// Teleporter met in scan order loses its jumps and gets a single move to the
// first one.
//
// Returns ErrEmptyGrid for non-positive dimensions, ErrUnknownTerrainCode for
// an invalid Terrain and ErrTeleporterPairing unless there are 0 or 2
// teleporters.
// Complexity: O(W×H) time and memory.
func Build(width, height int, terrainOf func(Position) Terrain) (*Graph, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyGrid
	}
	g := &Graph{
		width:  width,
		height: height,
		cells:  make([]Cell, width*height),
	}
	b := g.Bounds()

	var teleporters []Position
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			p := Position{X: x, Y: y}
			t := terrainOf(p)
			if !t.Valid() {
				return nil, fmt.Errorf("%w: %s at %s", ErrUnknownTerrainCode, t, p)
			}
			g.cells[g.index(p)] = Cell{
				Pos:     p,
				Terrain: t,
				Cost:    t.Cost(),
				Moves:   CandidateMoves(p, b),
			}
			if t == Teleporter {
				teleporters = append(teleporters, p)
			}
		}
	}

	switch len(teleporters) {
	case 0:
	case 2:
		g.hasTeleport = true
		g.teleportTo, g.teleportFrom = teleporters[0], teleporters[1]
		g.cells[g.index(g.teleportFrom)].Moves = []Position{g.teleportTo}
	default:
		return nil, fmt.Errorf("%w: found %d", ErrTeleporterPairing, len(teleporters))
	}
	g.labelComponents()

	return g, nil
}

// FromLayout builds a Graph from a decoded Layout.
func FromLayout(l Layout) (*Graph, error) {
	if l.Height() == 0 || l.Width() == 0 {
		return nil, ErrEmptyGrid
	}

	return Build(l.Width(), l.Height(), l.At)
}

// Width returns the number of columns.
func (g *Graph) Width() int { return g.width }

// Height returns the number of rows.
func (g *Graph) Height() int { return g.height }

// Bounds returns the board extent.
func (g *Graph) Bounds() Bounds { return Bounds{Width: g.width, Height: g.height} }

// Size returns the number of cells, W×H.
func (g *Graph) Size() int { return len(g.cells) }

// InBounds reports whether p lies on the board.
func (g *Graph) InBounds(p Position) bool { return g.Bounds().Contains(p) }

// Cell returns a copy of the cell at p, or false if p is off the board.
// Its Moves slice is a fresh copy as well.
func (g *Graph) Cell(p Position) (Cell, bool) {
	c := g.cell(p)
	if c == nil {
		return Cell{}, false
	}
	out := *c
	out.Moves = slices.Clone(c.Moves)

	return out, true
}

// Terrain returns the terrain at p; off-board positions report Rock.
func (g *Graph) Terrain(p Position) Terrain {
	if c := g.cell(p); c != nil {
		return c.Terrain
	}

	return Rock
}

// Cost returns the cost of landing on p; off-board positions are Impassable.
func (g *Graph) Cost(p Position) int64 {
	if c := g.cell(p); c != nil {
		return c.Cost
	}

	return Impassable
}

// Moves returns a copy of the outgoing moves of p, or nil if p is off the
// board. Searches iterate with Degree and MoveAt instead.
func (g *Graph) Moves(p Position) []Position {
	if c := g.cell(p); c != nil {
		return slices.Clone(c.Moves)
	}

	return nil
}

// Degree returns the number of outgoing moves of p; 0 off the board.
func (g *Graph) Degree(p Position) int {
	if c := g.cell(p); c != nil {
		return len(c.Moves)
	}

	return 0
}

// MoveAt returns the i-th outgoing move of p in generation order.
// p must be on the board and 0 <= i < Degree(p).
func (g *Graph) MoveAt(p Position, i int) Position {
	return g.cells[g.index(p)].Moves[i]
}

func (g *Graph) cell(p Position) *Cell {
	if !g.InBounds(p) {
		return nil
	}

	return &g.cells[g.index(p)]
}

// Positions returns every board position in row-major order.
func (g *Graph) Positions() []Position {
	out := make([]Position, len(g.cells))
	for i := range g.cells {
		out[i] = g.cells[i].Pos
	}

	return out
}

// Teleport returns the one-way teleport edge from -> to, if the board has one.
func (g *Graph) Teleport() (from, to Position, ok bool) {
	return g.teleportFrom, g.teleportTo, g.hasTeleport
}

// IsTeleportEdge reports whether from -> to is the board's teleport edge.
func (g *Graph) IsTeleportEdge(from, to Position) bool {
	return g.hasTeleport && from == g.teleportFrom && to == g.teleportTo
}

// Index maps p to its row-major slot: y*Width + x. p must be in bounds.
func (g *Graph) Index(p Position) int { return g.index(p) }

// Coordinate converts a row-major index back to a Position.
func (g *Graph) Coordinate(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

func (g *Graph) index(p Position) int { return p.Y*g.width + p.X }
