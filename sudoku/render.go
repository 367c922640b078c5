package sudoku

import (
	"strings"

	"github.com/katalvlaran/lvlogic/core"
)

// DigitAt returns the digit placed in cell (row, col) of a solved
// state, or 0 when no digit is definitely placed there.
func DigitAt(s *core.Solution, row, col int) int {
	for val := 1; val <= 9; val++ {
		if s.Get(IndexOf(row, col, val)) == core.Yes {
			return val
		}
	}

	return 0
}

// Render formats a Solution as nine rows of nine digits, with '.' for
// cells that hold no definite digit.
func Render(s *core.Solution) string {
	var b strings.Builder
	for row := 1; row <= 9; row++ {
		for col := 1; col <= 9; col++ {
			if d := DigitAt(s, row, col); d != 0 {
				b.WriteByte(byte('0' + d))
			} else {
				b.WriteByte('.')
			}
		}
		b.WriteByte('\n')
	}

	return b.String()
}
