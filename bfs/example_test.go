package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/bfs"
	"github.com/katalvlaran/knightpath/board"
)

// ExampleBFS counts the jumps between opposite corners of a chessboard.
func ExampleBFS() {
	g, _ := board.FromLayout(board.Uniform(8, 8, board.Open))
	res, err := bfs.BFS(g, board.Pos(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println("jumps to (7,7):", res.Depth[board.Pos(7, 7)])
	fmt.Println("cells reached:", len(res.Order))
	// Output:
	// jumps to (7,7): 6
	// cells reached: 64
}
