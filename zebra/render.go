package zebra

import (
	"strings"

	"github.com/katalvlaran/lvlogic/core"
)

const separator = "+-----+-----+-----+-----+-----+\n"

// Render formats a Solution as the familiar grid: one row per item,
// grouped by category, one column per house. Definite cells show
// " YES " or " no  "; undetermined cells stay blank.
func Render(s *core.Solution) string {
	var b strings.Builder
	for cat := Nationality; cat < categoryCount; cat++ {
		b.WriteString(separator)
		for _, item := range cat.Items() {
			b.WriteByte('|')
			for house := 0; house < HouseCount; house++ {
				switch s.Get(IndexOf(house, item)) {
				case core.Yes:
					b.WriteString(" YES ")
				case core.No:
					b.WriteString(" no  ")
				default:
					b.WriteString("     ")
				}
				b.WriteByte('|')
			}
			b.WriteByte(' ')
			b.WriteString(item.String())
			b.WriteByte('\n')
		}
	}
	b.WriteString(separator)

	return b.String()
}

// HouseOf returns the house holding item in a solved state, or -1 when
// no house definitely holds it.
func HouseOf(s *core.Solution, item Item) int {
	for house := 0; house < HouseCount; house++ {
		if s.Get(IndexOf(house, item)) == core.Yes {
			return house
		}
	}

	return -1
}
