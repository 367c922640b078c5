package core_test

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/core"
)

// ExampleSolution_Set demonstrates the three-way Set contract that the
// whole engine is built on: Progress on the first definite write,
// NoChange on a redundant one, Conflict on a contradictory one.
func ExampleSolution_Set() {
	s := core.NewSolution(1)

	fmt.Println(s.Set(0, core.Yes)) // fills in the slot
	fmt.Println(s.Set(0, core.Yes)) // already holds Yes
	fmt.Println(s.Set(0, core.No))  // contradicts the earlier Yes
	fmt.Println(s.Get(0))           // the slot kept its value

	// Output:
	// Progress
	// NoChange
	// Conflict
	// Yes
}

// ExampleSolution_FirstMaybe shows how the search engine picks its next
// branching slot: the lowest still-undetermined index.
func ExampleSolution_FirstMaybe() {
	s := core.NewSolution(3)
	s.Set(0, core.No)

	fmt.Println(s.FirstMaybe())

	s.Set(1, core.Yes)
	s.Set(2, core.Yes)
	fmt.Println(s.FirstMaybe() == core.None)

	// Output:
	// 1
	// true
}
