package dfs

import (
	"context"
	"errors"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/knightpath/board"
)

var (
	// ErrGraphNil is returned when a nil *board.Graph is passed to Explore.
	ErrGraphNil = errors.New("dfs: graph is nil")

	// ErrDepthExceeded indicates the stack outgrew the number of cells,
	// which only a malformed graph can cause.
	ErrDepthExceeded = errors.New("dfs: stack depth exceeds cell count")
)

// Option configures optional behavior of Explore.
type Option func(*Options)

// Options holds configurable parameters for a walk.
type Options struct {
	// Ctx allows cancellation; defaults to context.Background().
	Ctx context.Context

	// OnVisit, if non-nil, is invoked when a cell is discovered (pre-order).
	// Returning an error aborts the walk with that error.
	OnVisit func(p board.Position) error

	// MaxDepth, if non-negative, limits the walk to that many moves from the
	// start. Default is -1 (no limit).
	MaxDepth int

	// FilterNeighbor, if non-nil, is called for each move before it is taken.
	// Return false to skip it.
	FilterNeighbor func(from, to board.Position) bool
}

// DefaultOptions returns Options with a background context, no hooks,
// no depth limit and no filter.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
	}
}

// WithContext sets the context checked between expansions.
// A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnVisit installs fn as a pre-order hook.
func WithOnVisit(fn func(p board.Position) error) Option {
	return func(o *Options) { o.OnVisit = fn }
}

// WithMaxDepth limits the walk to limit moves; 0 visits only the start.
func WithMaxDepth(limit int) Option {
	return func(o *Options) { o.MaxDepth = limit }
}

// WithFilterNeighbor installs a move filter.
// Moves for which fn returns false are skipped and counted in SkippedNeighbors.
func WithFilterNeighbor(fn func(from, to board.Position) bool) Option {
	return func(o *Options) { o.FilterNeighbor = fn }
}

// Result captures the outcome of a walk.
type Result struct {
	// Parent maps each discovered cell to the cell that discovered it.
	// The start has no entry.
	Parent board.Predecessors

	// Depth is the number of moves along the discovery chain from the start.
	Depth map[board.Position]int

	// Order lists cells in discovery order, start first.
	Order []board.Position

	// Visited holds every discovered cell, start included.
	Visited mapset.Set[board.Position]

	// SkippedNeighbors counts moves vetoed by FilterNeighbor.
	SkippedNeighbors int
}

// Reached reports whether p was discovered.
func (r *Result) Reached(p board.Position) bool { return r.Visited.Has(p) }
