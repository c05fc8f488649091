package dijkstra

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/knightpath/board"
)

// ShortestPath computes least-cost routes from start to every reachable cell
// of g.
//
// Preconditions and validation (in order):
//  1. g must be non-nil (ErrNilGraph).
//  2. start must lie on the board (board.ErrOutOfBounds).
//
// The search keeps its own distance, predecessor and settled state, indexed
// by row-major cell slot, so g is never mutated and may be shared.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPath(g *board.Graph, start board.Position, opts ...Option) (*Result, error) {
	// 1) Validate inputs
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.InBounds(start) {
		return nil, fmt.Errorf("dijkstra: start %s: %w", start, board.ErrOutOfBounds)
	}

	// 2) Build options
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 3) Prepare per-call state
	n := g.Size()
	r := &runner{
		g:       g,
		options: cfg,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}

	// 4) Run
	r.init(start)
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.result(), nil
}

// runner holds the mutable state for a single ShortestPath execution.
type runner struct {
	g       *board.Graph
	options Options
	dist    []int64 // slot → best known cost; math.MaxInt64 if unreached
	prev    []int   // slot → predecessor slot; -1 if none
	settled []bool  // slot → distance is final
	pq      nodePQ
	count   int
}

// init sets every distance to +∞ and pushes the start at cost 0.
func (r *runner) init(start board.Position) {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
		r.prev[i] = -1
	}
	s := r.g.Index(start)
	r.dist[s] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, &nodeItem{pos: start, slot: s, dist: 0})
}

// process settles cells in order of increasing cost until the heap drains or
// the cheapest entry exceeds MaxDistance.
func (r *runner) process() error {
	for r.pq.Len() > 0 {
		select {
		case <-r.options.Ctx.Done():
			return r.options.Ctx.Err()
		default:
		}

		item := heap.Pop(&r.pq).(*nodeItem)
		// Stale entry from lazy decrease-key.
		if r.settled[item.slot] {
			continue
		}
		if item.dist > r.options.MaxDistance {
			break
		}
		r.settled[item.slot] = true
		r.count++
		r.relax(item.pos, item.slot)
	}

	return nil
}

// relax tries every outgoing move of u and records strict improvements.
func (r *runner) relax(u board.Position, us int) {
	for i, n := 0, r.g.Degree(u); i < n; i++ {
		v := r.g.MoveAt(u, i)
		vs := r.g.Index(v)
		if r.settled[vs] {
			continue
		}

		// Impassable targets are never relaxed.
		w := r.g.Cost(v)
		if w >= r.options.InfThreshold {
			continue
		}

		// The teleport edge is not a geometric move; everything else must
		// pass the sight rule.
		if !r.g.IsTeleportEdge(u, v) && !r.options.Sight.Clear(u, v, r.g) {
			continue
		}

		nd := r.dist[us] + w
		if nd > r.options.MaxDistance || nd >= r.dist[vs] {
			continue
		}
		r.dist[vs] = nd
		r.prev[vs] = us
		heap.Push(&r.pq, &nodeItem{pos: v, slot: vs, dist: nd})
	}
}

// result converts slot-indexed state into position-keyed maps.
func (r *runner) result() *Result {
	res := &Result{
		Dist:    make(map[board.Position]int64),
		Prev:    make(board.Predecessors),
		Settled: r.count,
	}
	for i, d := range r.dist {
		if d == math.MaxInt64 {
			continue
		}
		p := r.g.Coordinate(i)
		res.Dist[p] = d
		if r.prev[i] >= 0 {
			res.Prev[p] = r.g.Coordinate(r.prev[i])
		}
	}

	return res
}

// nodeItem is a heap entry: a cell and its tentative cost.
type nodeItem struct {
	pos  board.Position
	slot int
	dist int64
}

// nodePQ is a min-heap of *nodeItem ordered by dist, then by position so that
// equal-cost cells settle deterministically.
type nodePQ []*nodeItem

func (pq nodePQ) Len() int { return len(pq) }

func (pq nodePQ) Less(i, j int) bool {
	if pq[i].dist != pq[j].dist {
		return pq[i].dist < pq[j].dist
	}

	return pq[i].pos.Less(pq[j].pos)
}

func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

func (pq *nodePQ) Push(x any) { *pq = append(*pq, x.(*nodeItem)) }

func (pq *nodePQ) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*pq = old[:n-1]

	return item
}
