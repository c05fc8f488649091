// Package board models a rectangular knight board as a graph of cells.
//
// What:
//
//   - Graph is a flat, row‑major arena of Cells addressed by Position.
//
//   - Every Cell carries its Terrain, the traversal Cost derived from it,
//     and the precomputed list of legal outgoing knight Moves.
//
//   - An optional teleporter pair adds a one‑way, geometry‑exempt edge from
//     the second‑discovered Teleporter cell to the first‑discovered one.
//
//   - Line‑of‑sight checks (bounding rectangle or true line) report whether
//     a Barrier sits between two cells.
//
//   - Layouts are decoded from the plain text encoding, one row per line:
//
//     . . W L
//     R B . T
//     T . . .
//
// Why:
//
//   - Graphs are built once and shared read‑only by any number of searches
//     (see packages dfs, dijkstra and route).
//   - Moves are stored as Position values, so cells never point at each other.
//
// Terrain costs:
//
//	Open(.)=1  Water(W)=2  Lava(L)=5  Teleporter(T)=1
//	Rock(R)=Impassable  Barrier(B)=Impassable, blocks sight
//
// Complexity:
//
//   - Build:         O(W×H), Memory O(W×H) (at most 8 moves per cell).
//   - CandidateMoves: O(1).
//   - IsPathClear:   O(|dx|×|dy|) cells scanned.
//   - IsLineClear:   O(max(|dx|,|dy|)).
//
// Errors:
//
//   - ErrEmptyGrid:          width or height is not positive, or input has no rows.
//   - ErrNonRectangular:     encoded rows have differing lengths.
//   - ErrUnknownTerrainCode: an encoded cell or Terrain value is not recognised.
//   - ErrTeleporterPairing:  a board holds a number of teleporters other than 0 or 2.
//   - ErrOutOfBounds:        a supplied Position lies outside the board.
package board
