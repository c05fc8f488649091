// Package route turns search results into knight move sequences and checks
// them.
//
// What:
//
//   - Reconstruct walks a predecessor map back from an end cell to the start
//     and returns the moves in visiting order, guarding against cycles.
//   - Validate re-checks every step of a sequence with board.IsLegalMove and
//     that it finishes on the end cell. It is the acceptance gate: a sequence
//     is only trusted after it passes.
//   - Find is the search entry point: it runs the chosen Strategy, rebuilds
//     the route and validates it.
//
// Strategies:
//
//   - Any:      depth-first reachability (package dfs); some route, not a short one.
//   - Shortest: least-cost search (package dijkstra) honoring terrain and sight.
//   - Fewest:   fewest jumps (package bfs) honoring sight, ignoring cost.
//
// Start and end in different board regions (board.Graph.Connected) are
// reported as ErrNoPath without running a search.
//
// Errors:
//
//   - ErrNoPath               end was not reached; a normal outcome.
//   - ErrReconstructionCycle  the predecessor walk exceeded its step limit.
//   - ErrInvalidSequence      a rebuilt route failed validation.
//   - ErrUnknownStrategy      strategy name or value not recognised.
//   - board.ErrOutOfBounds    start or end lies off the board.
package route
