// Package knightpath finds knight routes across weighted, obstacle-laden
// boards: terrain costs, barriers that block line of sight, and a one-way
// teleporter pair.
//
// What is knightpath?
//
//	A small, dependency-light toolkit that brings together:
//		• Boards: text layouts decoded into an immutable cell arena
//		• Moves: the eight knight jumps, sight rules, teleport edge
//		• Searches: depth-first reachability, fewest jumps, least cost
//		• Routes: reconstruction from predecessor maps and validation
//		• Surfaces: a console renderer, a CLI and a JSON HTTP API
//
// Layout:
//
//	board/     Position, Terrain, Graph arena, layouts, sight, regions
//	dfs/       depth-first exploration (Strategy Any)
//	bfs/       breadth-first fewest-jump search (Strategy Fewest)
//	dijkstra/  least-cost search with sight rules (Strategy Shortest)
//	route/     Find, Reconstruct, Validate
//	render/    text frames, one per move
//	internal/  config and HTTP API
//	cmd/       the knightpath binary
//
// Quick ASCII example (S start, E end, W water, L lava, B barrier):
//
//	S . . .
//	. . W B
//	. L . .
//	. . . E
//
//	go install github.com/katalvlaran/knightpath/cmd/knightpath@latest
package knightpath
