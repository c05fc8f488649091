package board

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for board operations.
var (
	// ErrEmptyGrid indicates a board with no rows or no columns.
	ErrEmptyGrid = errors.New("board: grid must have at least one row and one column")
	// ErrNonRectangular indicates encoded rows of differing lengths.
	ErrNonRectangular = errors.New("board: all rows must have the same length")
	// ErrUnknownTerrainCode indicates a cell code or Terrain value outside the known set.
	ErrUnknownTerrainCode = errors.New("board: unknown terrain code")
	// ErrTeleporterPairing indicates a teleporter count other than zero or two.
	ErrTeleporterPairing = errors.New("board: teleporters must come in exactly one pair")
	// ErrRowTooLong indicates an encoded row longer than MaxRowBytes.
	ErrRowTooLong = errors.New("board: encoded row too long")
	// ErrOutOfBounds indicates a Position outside the board dimensions.
	ErrOutOfBounds = errors.New("board: position out of bounds")
)

// Impassable is the cost of cells a knight can never land on.
const Impassable int64 = math.MaxInt64

// Position is a (column, row) coordinate on the board.
type Position struct {
	X, Y int
}

// Pos is shorthand for Position{X: x, Y: y}.
func Pos(x, y int) Position { return Position{X: x, Y: y} }

// Compare orders positions column‑major, then by row.
// It returns -1, 0 or +1 like cmp.Compare.
func (p Position) Compare(q Position) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}

	return cmp.Compare(p.Y, q.Y)
}

// Less reports whether p sorts before q.
func (p Position) Less(q Position) bool { return p.Compare(q) < 0 }

// Add returns p shifted by (dx, dy).
func (p Position) Add(dx, dy int) Position { return Position{X: p.X + dx, Y: p.Y + dy} }

// String renders p as "(x,y)".
func (p Position) String() string { return fmt.Sprintf("(%d,%d)", p.X, p.Y) }

// Bounds is the board extent [0,Width) x [0,Height).
type Bounds struct {
	Width, Height int
}

// Contains reports whether p lies inside b.
func (b Bounds) Contains(p Position) bool {
	return p.X >= 0 && p.X < b.Width && p.Y >= 0 && p.Y < b.Height
}

// Terrain is the kind of ground a cell is made of.
type Terrain uint8

const (
	// Open is plain ground, cost 1.
	Open Terrain = iota
	// Water slows the knight, cost 2.
	Water
	// Lava is expensive, cost 5.
	Lava
	// Rock can never be entered.
	Rock
	// Barrier can never be entered and blocks line of sight.
	Barrier
	// Teleporter costs 1; see Graph.Teleport for the pairing rule.
	Teleporter
)

var terrainCodes = [...]byte{
	Open:       '.',
	Water:      'W',
	Lava:       'L',
	Rock:       'R',
	Barrier:    'B',
	Teleporter: 'T',
}

var terrainCosts = [...]int64{
	Open:       1,
	Water:      2,
	Lava:       5,
	Rock:       Impassable,
	Barrier:    Impassable,
	Teleporter: 1,
}

var terrainNames = [...]string{
	Open:       "open",
	Water:      "water",
	Lava:       "lava",
	Rock:       "rock",
	Barrier:    "barrier",
	Teleporter: "teleporter",
}

// Valid reports whether t is one of the known terrain kinds.
func (t Terrain) Valid() bool { return int(t) < len(terrainCodes) }

// Code returns the one-character encoding of t, or '?' if t is invalid.
func (t Terrain) Code() byte {
	if !t.Valid() {
		return '?'
	}

	return terrainCodes[t]
}

// Cost returns the traversal cost of landing on t.
// Invalid values are treated as Impassable.
func (t Terrain) Cost() int64 {
	if !t.Valid() {
		return Impassable
	}

	return terrainCosts[t]
}

// Passable reports whether a knight may land on t.
func (t Terrain) Passable() bool { return t.Cost() != Impassable }

func (t Terrain) String() string {
	if !t.Valid() {
		return fmt.Sprintf("terrain(%d)", uint8(t))
	}

	return terrainNames[t]
}

// ParseTerrain maps a one-character code to its Terrain.
func ParseTerrain(code byte) (Terrain, error) {
	for t, c := range terrainCodes {
		if c == code {
			return Terrain(t), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownTerrainCode, code)
}

// Cell is one square of the board.
// Moves lists the targets reachable in one legal step; it is never mutated
// after the Graph is built.
type Cell struct {
	Pos     Position
	Terrain Terrain
	Cost    int64
	Moves   []Position
}

// Predecessors maps each reached Position to the Position it was reached from.
// The search start has no entry.
type Predecessors map[Position]Position

// Sequence is an ordered list of knight landings, excluding the start and
// including the end.
type Sequence []Position

// Last returns the final Position of s and false if s is empty.
func (s Sequence) Last() (Position, bool) {
	if len(s) == 0 {
		return Position{}, false
	}

	return s[len(s)-1], true
}
