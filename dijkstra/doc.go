// Package dijkstra computes least-cost knight routes over a board.Graph.
//
// Overview:
//
//   - ShortestPath settles cells in non-decreasing order of accumulated cost
//     using a min-heap, so every settled distance is final (label-setting).
//   - Landing on a cell costs that cell's terrain cost; the start is free.
//   - A move is only relaxed when its target passes the configured
//     line-of-sight rule (board.SightRectangle by default). The board's
//     teleport edge is not a geometric move and is exempt from sight checks.
//   - Targets whose cost reaches InfThreshold (board.Impassable by default,
//     i.e. Rock and Barrier) are never relaxed and so never become
//     predecessors.
//
// Options:
//
//   - WithSight(mode):        rectangle (default), true line, or none.
//   - WithMaxDistance(d):     stop once the cheapest open cell costs more than d.
//   - WithInfThreshold(t):    treat targets costing ≥ t as impassable.
//   - WithContext(ctx):       cancellation between settlements.
//
// Complexity:
//
//   - Time:  O((V + E) log V), V = W×H, E ≤ 8V.
//   - Space: O(V + E) with lazy decrease-key.
//
// Errors (sentinel):
//
//   - ErrNilGraph          graph pointer is nil.
//   - board.ErrOutOfBounds start lies off the board.
//   - ErrBadMaxDistance    MaxDistance < 0 (panics in the option constructor).
//   - ErrBadInfThreshold   InfThreshold ≤ 0 (panics in the option constructor).
//
// Example usage:
//
//	res, err := dijkstra.ShortestPath(g, board.Pos(0, 0), dijkstra.WithSight(board.SightLine))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cost, ok := res.Distance(board.Pos(3, 3))
package dijkstra
