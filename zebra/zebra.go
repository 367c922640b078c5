package zebra

import (
	"fmt"

	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/puzzle"
)

// HouseCount is the number of houses in the row, numbered 0 (leftmost)
// through 4 (rightmost).
const HouseCount = 5

// Item is one of the twenty-five facts that must each land in exactly
// one house.
type Item int

// Items, grouped by category. The grouping order matters only for
// rendering; the solver sees flat slot indexes.
const (
	English Item = iota
	Japanese
	Norwegian
	Spaniard
	Ukrainian

	Blue
	Green
	Ivory
	Red
	Yellow

	Dog
	Fox
	Horse
	Snails
	Zebra

	Coffee
	Juice
	Milk
	Tea
	Water

	Chesterfields
	Kools
	LuckyStrike
	OldGold
	Parliaments

	itemCount
)

// Slots is the total slot count of the encoding.
const Slots = HouseCount * int(itemCount)

var itemNames = [itemCount]string{
	"Englishman", "Japanese man", "Norwegian", "Spaniard", "Ukrainian",
	"blue", "green", "ivory", "red", "yellow",
	"dog", "fox", "horse", "snails", "zebra",
	"coffee", "juice", "milk", "tea", "water",
	"Chesterfields", "Kools", "Lucky Strike", "Old Gold", "Parliaments",
}

// String returns the item's display name.
func (i Item) String() string { return itemNames[i] }

// Category groups the items five by five.
type Category int

const (
	Nationality Category = iota
	Color
	Pet
	Beverage
	Cigarette

	categoryCount
)

var categoryNames = [categoryCount]string{
	"nationality", "color", "pet", "beverage", "cigarette brand",
}

// String returns the category's display name.
func (c Category) String() string { return categoryNames[c] }

// Items returns the five items of the category.
func (c Category) Items() [5]Item {
	first := Item(int(c) * 5)

	return [5]Item{first, first + 1, first + 2, first + 3, first + 4}
}

// IndexOf maps a (house, item) pair onto its slot index.
func IndexOf(house int, item Item) int {
	return house*int(itemCount) + int(item)
}

// Row returns the slots of one item across all five houses.
func Row(item Item) []int {
	row := make([]int, 0, HouseCount)
	for house := 0; house < HouseCount; house++ {
		row = append(row, IndexOf(house, item))
	}

	return row
}

// Col returns the slots of one house across all five items of a
// category.
func Col(house int, cat Category) []int {
	col := make([]int, 0, 5)
	for _, item := range cat.Items() {
		col = append(col, IndexOf(house, item))
	}

	return col
}

// Neighbors returns the slots of item in the houses adjacent to house
// (one slot at either end of the row, two in the middle).
func Neighbors(house int, item Item) []int {
	var neighbors []int
	if house > 0 {
		neighbors = append(neighbors, IndexOf(house-1, item))
	}
	if house < HouseCount-1 {
		neighbors = append(neighbors, IndexOf(house+1, item))
	}

	return neighbors
}

// New assembles the complete zebra puzzle: the structural grid plus the
// fifteen classic clues.
func New() *puzzle.Puzzle {
	p := puzzle.New(Slots)

	// Clue 1: five houses, each with exactly one item per category, and
	// each item in exactly one house.
	for cat := Nationality; cat < categoryCount; cat++ {
		for house := 0; house < HouseCount; house++ {
			p.AddConstraint(constraint.ExactlyN(
				fmt.Sprintf("Exactly 1 %s in each house.", cat),
				1, Col(house, cat), core.Yes))
		}
		for _, item := range cat.Items() {
			p.AddConstraint(constraint.ExactlyN(
				fmt.Sprintf("Exactly 1 house has the %s.", item),
				1, Row(item), core.Yes))
		}
	}

	// Clue 2.
	p.AddConstraint(constraint.Identical(
		"The Englishman lives in the red house.",
		Row(English), Row(Red)))

	// Clue 3.
	p.AddConstraint(constraint.Identical(
		"The Spaniard owns the dog.",
		Row(Spaniard), Row(Dog)))

	// Clue 4.
	p.AddConstraint(constraint.Identical(
		"Coffee is drunk in the green house.",
		Row(Coffee), Row(Green)))

	// Clue 5.
	p.AddConstraint(constraint.Identical(
		"The Ukrainian drinks tea.",
		Row(Ukrainian), Row(Tea)))

	// Clue 6: rotating the green row left by one aligns ivory@h with
	// green@h+1 (the wrap-around pair is neutralized by the corollary
	// that green cannot be the first house).
	greens := Row(Green)
	greens = append(greens[1:], greens[0])
	p.AddConstraint(constraint.Identical(
		"The green house is immediately to the right of the ivory house.",
		Row(Ivory), greens))
	p.AddConstraint(constraint.Fixed(
		"The green house can't be first because it's to the right of the ivory.",
		IndexOf(0, Green), core.No))

	// Clue 7.
	p.AddConstraint(constraint.Identical(
		"The Old Gold smoker owns snails.",
		Row(OldGold), Row(Snails)))

	// Clue 8.
	p.AddConstraint(constraint.Identical(
		"Kools are smoked in the yellow house.",
		Row(Kools), Row(Yellow)))

	// Clue 9.
	p.AddConstraint(constraint.Fixed(
		"Milk is drunk in the middle house.",
		IndexOf(2, Milk), core.Yes))

	// Clue 10.
	p.AddConstraint(constraint.Fixed(
		"The Norwegian lives in the first house.",
		IndexOf(0, Norwegian), core.Yes))

	// Clue 11.
	for house := 0; house < HouseCount; house++ {
		p.AddConstraint(constraint.ForcedDisjunction(
			"Chesterfields are smoked in the house next to the house with the fox.",
			IndexOf(house, Chesterfields), Neighbors(house, Fox)))
	}

	// Clue 12.
	for house := 0; house < HouseCount; house++ {
		p.AddConstraint(constraint.ForcedDisjunction(
			"Kools are smoked in the house next to the house where the horse is kept.",
			IndexOf(house, Kools), Neighbors(house, Horse)))
	}

	// Clue 13.
	p.AddConstraint(constraint.Identical(
		"The Lucky Strike smoker drinks orange juice.",
		Row(LuckyStrike), Row(Juice)))

	// Clue 14.
	p.AddConstraint(constraint.Identical(
		"The Japanese man smokes Parliaments.",
		Row(Japanese), Row(Parliaments)))

	// Clue 15.
	for house := 0; house < HouseCount; house++ {
		p.AddConstraint(constraint.ForcedDisjunction(
			"The Norwegian lives next to the blue house.",
			IndexOf(house, Norwegian), Neighbors(house, Blue)))
	}

	return p
}
