package sudoku_test

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/sudoku"
)

// ExampleSolve cracks the bundled 17-given demo grid.
func ExampleSolve() {
	solutions, err := sudoku.Solve(sudoku.Demo)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Print(sudoku.Render(solutions[0]))

	// Output:
	// 987654321
	// 246173985
	// 351928746
	// 128537694
	// 634892157
	// 795461832
	// 519286473
	// 472319568
	// 863745219
}
