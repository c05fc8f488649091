package dfs

import (
	"fmt"

	"github.com/zyedidia/generic/mapset"

	"github.com/katalvlaran/knightpath/board"
)

// frame is one level of the emulated recursion: the cell being expanded and
// the index of the next move to try.
type frame struct {
	at    board.Position
	next  int
	depth int
}

// walker encapsulates state during a walk.
type walker struct {
	graph *board.Graph
	opts  Options
	res   *Result
	stack []frame
}

// Explore performs a depth-first walk of g from start and returns the
// discovery tree. Explore never mutates g, so concurrent walks over one graph
// are safe.
func Explore(g *board.Graph, start board.Position, opts ...Option) (*Result, error) {
	// 1. Validate input
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("dfs: start %s: %w", start, board.ErrOutOfBounds)
	}

	// 2. Apply options
	dopts := DefaultOptions()
	for _, fn := range opts {
		fn(&dopts)
	}

	// 3. Initialize result with capacity hint
	n := g.Size()
	w := &walker{
		graph: g,
		opts:  dopts,
		res: &Result{
			Parent:  make(board.Predecessors, n),
			Depth:   make(map[board.Position]int, n),
			Order:   make([]board.Position, 0, n),
			Visited: mapset.New[board.Position](),
		},
		stack: make([]frame, 0, n),
	}

	if err := w.run(start); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// discover marks p visited, records how it was reached and pushes its frame.
func (w *walker) discover(p board.Position, depth int) error {
	if len(w.stack) >= w.graph.Size() {
		return fmt.Errorf("%w: %d frames at %s", ErrDepthExceeded, len(w.stack), p)
	}
	w.res.Visited.Put(p)
	w.res.Depth[p] = depth
	w.res.Order = append(w.res.Order, p)
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(p); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for %s: %w", p, err)
		}
	}
	w.stack = append(w.stack, frame{at: p, depth: depth})

	return nil
}

// run drives the stack until every reachable cell has been expanded.
func (w *walker) run(start board.Position) error {
	if err := w.discover(start, 0); err != nil {
		return err
	}

	for len(w.stack) > 0 {
		// 1. Cancellation check
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		// 2. Take the next untried move of the top frame, or backtrack
		top := &w.stack[len(w.stack)-1]
		if top.next >= w.graph.Degree(top.at) {
			w.stack = w.stack[:len(w.stack)-1]
			continue
		}
		from, to, depth := top.at, w.graph.MoveAt(top.at, top.next), top.depth+1
		top.next++

		// 3. Skip discovered, impassable, filtered and too-deep targets
		if w.res.Visited.Has(to) || !w.graph.Terrain(to).Passable() {
			continue
		}
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(from, to) {
			w.res.SkippedNeighbors++
			continue
		}
		if w.opts.MaxDepth >= 0 && depth > w.opts.MaxDepth {
			continue
		}

		// 4. Descend; the first discoverer wins
		w.res.Parent[to] = from
		if err := w.discover(to, depth); err != nil {
			return err
		}
	}

	return nil
}
