// Package dfs implements depth‑first reachability over a board.Graph.
//
// What:
//
//   - Explore walks the knight graph from a start cell, as deep as possible
//     along each move before backtracking, and records for every newly
//     discovered cell the cell that discovered it (Result.Parent).
//   - The walk uses an explicit stack of frames that replays the exact order
//     of a recursive DFS: the first discoverer of a cell wins.
//   - Cost and line of sight are ignored; only impassable cells (Rock,
//     Barrier) are never entered. The result answers "is there any path",
//     not "which path is shortest".
//
// Options:
//
//   - WithContext(ctx)        cancellation between expansions.
//   - WithOnVisit(fn)         pre‑order hook on discovery; error aborts.
//   - WithMaxDepth(limit)     stop descending below limit moves (>=0).
//   - WithFilterNeighbor(fn)  veto individual moves; vetoes are counted.
//
// Complexity:
//
//   - Time:   O(V + E) where V = W×H and E ≤ 8V.
//   - Memory: O(V); the stack never holds more than V frames.
//
// Errors:
//
//   - ErrGraphNil          graph pointer is nil.
//   - board.ErrOutOfBounds start lies off the board.
//   - ErrDepthExceeded     stack grew past the cell count (malformed graph).
//   - context.Canceled     walk canceled via context.
//   - hook errors          propagated from OnVisit.
package dfs
