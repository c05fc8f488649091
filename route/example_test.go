package route_test

import (
	"fmt"

	"github.com/katalvlaran/knightpath/board"
	"github.com/katalvlaran/knightpath/route"
)

// ExampleFind routes a knight across a small board with water and lava.
func ExampleFind() {
	g, err := board.Load(board.StringProvider("" +
		". . . .\n" +
		". . W .\n" +
		". L . .\n" +
		". . . .\n"))
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	res, err := route.Find(g, board.Pos(0, 0), board.Pos(3, 3), route.Shortest)
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Println(res.Sequence, "cost", res.Cost)
	// Output: [(2,1) (3,3)] cost 3
}

// ExampleValidate checks the tour (1,2) (3,3) (4,5) (3,3) (1,2).
func ExampleValidate() {
	g, _ := board.FromLayout(board.Uniform(8, 8, board.Open))
	seq := board.Sequence{board.Pos(3, 3), board.Pos(4, 5), board.Pos(3, 3), board.Pos(1, 2)}

	fmt.Println(route.Validate(seq, board.Pos(1, 2), board.Pos(1, 2), g, false))
	fmt.Println(route.Validate(seq, board.Pos(1, 2), board.Pos(5, 4), g, false))
	// Output:
	// true
	// false
}
