package bfs

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
)

// queueItem pairs a cell with its depth.
type queueItem struct {
	at    board.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	graph   *board.Graph
	opts    Options
	queue   []queueItem
	visited []bool // slot-indexed
	res     *Result
}

// BFS runs breadth-first search on g from start.
// Returns ErrGraphNil, board.ErrOutOfBounds or ErrOptionViolation for invalid
// input, and any hook or context error raised during the walk together with
// the partial result.
func BFS(g *board.Graph, start board.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("bfs: start %s: %w", start, board.ErrOutOfBounds)
	}

	n := g.Size()
	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make([]bool, n),
		res: &Result{
			Order:  make([]board.Position, 0, n),
			Depth:  make(map[board.Position]int, n),
			Parent: make(board.Predecessors, n),
		},
	}

	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks p visited at depth d and queues it.
func (w *walker) enqueue(p board.Position, d int) {
	w.visited[w.graph.Index(p)] = true
	w.res.Depth[p] = d
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{at: p, depth: d})
}

// loop processes the queue until empty, error, or cancellation.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]
		w.res.Order = append(w.res.Order, item.at)
		if err := w.opts.OnVisit(item.at, item.depth); err != nil {
			return fmt.Errorf("bfs: OnVisit error at %s: %w", item.at, err)
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// enqueueNeighbors queues every unseen, passable, unfiltered move of item.
func (w *walker) enqueueNeighbors(item queueItem) {
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return
	}
	for i, n := 0, w.graph.Degree(item.at); i < n; i++ {
		to := w.graph.MoveAt(item.at, i)
		if w.visited[w.graph.Index(to)] || !w.graph.Terrain(to).Passable() {
			continue
		}
		if !w.opts.FilterNeighbor(item.at, to) {
			continue
		}
		w.res.Parent[to] = item.at
		w.enqueue(to, next)
	}
}
