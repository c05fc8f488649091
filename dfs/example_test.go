package dfs_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/dfs"
)

// ExampleExplore walks a 3×3 board from a corner. The knight can reach every
// square but the center, which no jump lands on.
func ExampleExplore() {
	g, err := board.FromLayout(board.Uniform(3, 3, board.Open))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := dfs.Explore(g, board.Pos(0, 0))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println(res.Order)
	fmt.Println("center reached:", res.Reached(board.Pos(1, 1)))

	// Output:
	// [(0,0) (1,2) (2,0) (0,1) (2,2) (1,0) (0,2) (2,1)]
	// center reached: false
}
