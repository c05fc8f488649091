package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// Sentinel errors for BFS execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// An invalid Option is recorded and surfaced as ErrOptionViolation when BFS
// is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is queued, with its depth.
	OnEnqueue func(p board.Position, depth int)

	// OnVisit is called when a cell is dequeued. An error aborts the search.
	OnVisit func(p board.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this many jumps.
	MaxDepth int

	// FilterNeighbor can skip a move by returning false.
	FilterNeighbor func(from, to board.Position) bool

	err error
}

// DefaultOptions returns background context, no-op hooks, no depth limit and
// no filtering.
func DefaultOptions() Options {
	return Options{
		Ctx:            context.Background(),
		OnEnqueue:      func(board.Position, int) {},
		OnVisit:        func(board.Position, int) error { return nil },
		FilterNeighbor: func(_, _ board.Position) bool { return true },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p board.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit.
func WithOnVisit(fn func(p board.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search beyond d jumps.
//
//	d > 0:  limit to depth d
//	d == 0: no limit
//	d < 0:  ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilterNeighbor skips moves when fn returns false.
func WithFilterNeighbor(fn func(from, to board.Position) bool) Option {
	return func(o *Options) {
		if fn != nil {
			o.FilterNeighbor = fn
		}
	}
}

// Result holds the outcome of a search.
type Result struct {
	// Order lists cells in visit order, start first.
	Order []board.Position
	// Depth maps each reached cell to its jump count from the start.
	Depth map[board.Position]int
	// Parent maps each reached cell except the start to its predecessor.
	Parent board.Predecessors
}

// PathTo returns the cells from the start to dest inclusive.
func (r *Result) PathTo(dest board.Position) ([]board.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %s", dest)
	}
	path := []board.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}
