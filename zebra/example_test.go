package zebra_test

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/zebra"
)

// ExampleNew answers the puzzle's two famous questions.
func ExampleNew() {
	s := zebra.New().Solve()[0]

	// Whoever shares a house with an item owns/drinks it.
	for _, who := range zebra.Nationality.Items() {
		if zebra.HouseOf(s, who) == zebra.HouseOf(s, zebra.Zebra) {
			fmt.Printf("The %s owns the zebra.\n", who)
		}
		if zebra.HouseOf(s, who) == zebra.HouseOf(s, zebra.Water) {
			fmt.Printf("The %s drinks water.\n", who)
		}
	}

	// Output:
	// The Japanese man owns the zebra.
	// The Norwegian drinks water.
}
