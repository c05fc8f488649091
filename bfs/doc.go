// Package bfs finds fewest-jump knight routes with breadth-first search over a
// board.Graph.
//
// What
//
//   - Explore cells in non-decreasing jump count from a start cell.
//   - Returns a Result containing:
//   - Order: visit sequence
//   - Depth: map from cell → jumps from the start
//   - Parent: predecessor map, ready for route reconstruction
//   - Hooks: OnEnqueue (before a cell is queued) and OnVisit (on dequeue;
//     returning an error aborts the search).
//   - Moves can be vetoed with WithFilterNeighbor, e.g. to apply a sight rule.
//   - Honors a MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - Terrain cost is ignored, so the route minimises jumps, not cost.
//     Useful as a baseline against the weighted search and as a quick
//     reachability probe.
//
// Determinism
//
//	Moves are tried in the fixed order of board.KnightOffsets, so visit
//	order and parents are reproducible. Impassable cells are never entered.
//
// Complexity (V = cells, E ≤ 8V moves)
//
//   - Time:   O(V + E)
//   - Memory: O(V)
//
// Errors
//
//   - ErrGraphNil          if the graph pointer is nil.
//   - board.ErrOutOfBounds if start lies off the board.
//   - ErrOptionViolation   for invalid options (negative MaxDepth).
//   - Wrapped OnVisit hook errors and context errors.
package bfs
