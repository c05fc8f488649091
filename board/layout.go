package board

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Layout is a decoded board: Rows[y][x] holds the terrain at (x, y).
type Layout struct {
	Rows [][]Terrain
}

// Width returns the number of columns, or 0 for an empty layout.
func (l Layout) Width() int {
	if len(l.Rows) == 0 {
		return 0
	}

	return len(l.Rows[0])
}

// Height returns the number of rows.
func (l Layout) Height() int { return len(l.Rows) }

// At returns the terrain at p. p must be in bounds.
func (l Layout) At(p Position) Terrain { return l.Rows[p.Y][p.X] }

// Encode renders l in the text encoding read by Decode.
func (l Layout) Encode() string {
	var sb strings.Builder
	for _, row := range l.Rows {
		for x, t := range row {
			if x > 0 {
				sb.WriteByte(' ')
			}
			sb.WriteByte(t.Code())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Decode reads a board in the text encoding: one row per line, cells
// separated by spaces, one character per cell. Blank lines are skipped.
//
// Each line must be shorter than MaxRowBytes.
//
// Returns ErrEmptyGrid if no rows are found, ErrRowTooLong for an oversized
// line, ErrNonRectangular if rows differ in length and ErrUnknownTerrainCode (with the offending position) for a cell
// that is not one of ". W L R B T".
func Decode(r io.Reader) (Layout, error) {
	var l Layout
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64<<10), MaxRowBytes)
	line := 0
	for sc.Scan() {
		line++
		fields := strings.Fields(sc.Text())
		if len(fields) == 0 {
			continue
		}
		y := len(l.Rows)
		row := make([]Terrain, len(fields))
		for x, f := range fields {
			if len(f) != 1 {
				return Layout{}, fmt.Errorf("%w: %q at %s (line %d)", ErrUnknownTerrainCode, f, Pos(x, y), line)
			}
			t, err := ParseTerrain(f[0])
			if err != nil {
				return Layout{}, fmt.Errorf("%w at %s (line %d)", err, Pos(x, y), line)
			}
			row[x] = t
		}
		if y > 0 && len(row) != len(l.Rows[0]) {
			return Layout{}, fmt.Errorf("%w: line %d has %d cells, want %d", ErrNonRectangular, line, len(row), len(l.Rows[0]))
		}
		l.Rows = append(l.Rows, row)
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			return Layout{}, fmt.Errorf("%w: line %d reaches %d bytes", ErrRowTooLong, line+1, MaxRowBytes)
		}
		return Layout{}, fmt.Errorf("board: read layout: %w", err)
	}
	if len(l.Rows) == 0 {
		return Layout{}, ErrEmptyGrid
	}

	return l, nil
}

// MaxRowBytes bounds a single encoded row.
const MaxRowBytes = 1 << 20

// Provider supplies encoded board data. Callers inject it so graph
// construction does not depend on where the board is stored.
type Provider interface {
	Open() (io.ReadCloser, error)
}

// ProviderFunc adapts a function to the Provider interface.
type ProviderFunc func() (io.ReadCloser, error)

// Open calls f.
func (f ProviderFunc) Open() (io.ReadCloser, error) { return f() }

// FileProvider reads the board from a file on disk.
func FileProvider(path string) Provider {
	return ProviderFunc(func() (io.ReadCloser, error) { return os.Open(path) })
}

// ReaderProvider serves the board from an already open reader.
// The reader is consumed by the first Open.
func ReaderProvider(r io.Reader) Provider {
	return ProviderFunc(func() (io.ReadCloser, error) { return io.NopCloser(r), nil })
}

// StringProvider serves the board from an in-memory encoding.
func StringProvider(s string) Provider {
	return ProviderFunc(func() (io.ReadCloser, error) { return io.NopCloser(strings.NewReader(s)), nil })
}

// Load opens p, decodes the layout and builds its Graph.
func Load(p Provider) (*Graph, error) {
	rc, err := p.Open()
	if err != nil {
		return nil, fmt.Errorf("board: open layout: %w", err)
	}
	defer rc.Close()

	l, err := Decode(rc)
	if err != nil {
		return nil, err
	}

	return FromLayout(l)
}

// Layout returns the terrain of g as a Layout.
func (g *Graph) Layout() Layout {
	rows := make([][]Terrain, g.height)
	for y := range rows {
		rows[y] = make([]Terrain, g.width)
		for x := range rows[y] {
			rows[y][x] = g.cells[g.index(Position{X: x, Y: y})].Terrain
		}
	}

	return Layout{Rows: rows}
}

// Uniform returns a width×height layout filled with t.
func Uniform(width, height int, t Terrain) Layout {
	rows := make([][]Terrain, height)
	for y := range rows {
		rows[y] = make([]Terrain, width)
		for x := range rows[y] {
			rows[y][x] = t
		}
	}

	return Layout{Rows: rows}
}

// Glyph returns the character drawn for p in a frame where the knight stands
// on current: 'K' for current, then 'S' for start, 'E' for end, otherwise the
// terrain code.
func (g *Graph) Glyph(p, start, end, current Position) byte {
	switch p {
	case current:
		return 'K'
	case start:
		return 'S'
	case end:
		return 'E'
	default:
		return g.Terrain(p).Code()
	}
}
