package sudoku

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/puzzle"
)

// Slots is the total slot count of the encoding.
const Slots = 9 * 9 * 9

// Sentinel errors for grid parsing.
var (
	// ErrGridSize indicates the grid string does not hold exactly 81 cells.
	ErrGridSize = errors.New("sudoku: grid must contain exactly 81 cells")

	// ErrGridRune indicates a grid character that is neither a digit 1-9
	// nor a blank marker ('.', '0' or ' ').
	ErrGridRune = errors.New("sudoku: invalid grid character")
)

// Demo is a known 17-given grid with a unique solution; the solver
// cracks it by propagation alone, without a single guess.
const Demo = "" +
	"........." +
	".....3.85" +
	"..1.2...." +
	"...5.7..." +
	"..4...1.." +
	".9......." +
	"5......73" +
	"..2.1...." +
	"....4...9"

// IndexOf maps (row, col, val), each in 1..9, onto a slot index.
func IndexOf(row, col, val int) int {
	return (row-1)*81 + (col-1)*9 + (val - 1)
}

// rowOf returns the slots placing val across row.
func rowOf(row, val int) []int {
	out := make([]int, 0, 9)
	for col := 1; col <= 9; col++ {
		out = append(out, IndexOf(row, col, val))
	}

	return out
}

// colOf returns the slots placing val down col.
func colOf(col, val int) []int {
	out := make([]int, 0, 9)
	for row := 1; row <= 9; row++ {
		out = append(out, IndexOf(row, col, val))
	}

	return out
}

// cellOf returns the nine value slots of cell (row, col).
func cellOf(row, col int) []int {
	out := make([]int, 0, 9)
	for val := 1; val <= 9; val++ {
		out = append(out, IndexOf(row, col, val))
	}

	return out
}

// boxOf returns the slots placing val inside box (1..9, reading order).
func boxOf(box, val int) []int {
	out := make([]int, 0, 9)
	row0 := 3*((box-1)/3) + 1
	col0 := 3*((box-1)%3) + 1
	for row := row0; row < row0+3; row++ {
		for col := col0; col < col0+3; col++ {
			out = append(out, IndexOf(row, col, val))
		}
	}

	return out
}

// parseGrid extracts 81 cell values (0 for blank) from grid, ignoring
// newlines so both one-line and nine-line layouts parse.
func parseGrid(grid string) ([81]int, error) {
	var cells [81]int
	n := 0
	for _, r := range grid {
		switch {
		case r == '\n' || r == '\r':
			continue
		case r == '.' || r == '0' || r == ' ':
			n++
		case r >= '1' && r <= '9':
			if n < len(cells) {
				cells[n] = int(r - '0')
			}
			n++
		default:
			return cells, fmt.Errorf("%w: %q", ErrGridRune, r)
		}
		if n > len(cells) {
			return cells, ErrGridSize
		}
	}
	if n != len(cells) {
		return cells, ErrGridSize
	}

	return cells, nil
}

// New builds the sudoku puzzle for the given grid: the structural
// exact-cover constraints plus one Fixed constraint per given digit.
func New(grid string) (*puzzle.Puzzle, error) {
	cells, err := parseGrid(grid)
	if err != nil {
		return nil, err
	}

	p := puzzle.New(Slots)

	// Basic sudoku structure.
	for i := 1; i <= 9; i++ {
		for j := 1; j <= 9; j++ {
			p.AddConstraint(
				constraint.ExactlyN("Cell has exactly 1 digit.", 1, cellOf(i, j), core.Yes),
				constraint.ExactlyN("Digit appears exactly once in row.", 1, rowOf(i, j), core.Yes),
				constraint.ExactlyN("Digit appears exactly once in column.", 1, colOf(i, j), core.Yes),
				constraint.ExactlyN("Digit appears exactly once in box.", 1, boxOf(i, j), core.Yes),
			)
		}
	}

	// Givens.
	for i, val := range cells {
		if val == 0 {
			continue
		}
		row, col := i/9+1, i%9+1
		p.AddConstraint(constraint.Fixed(
			fmt.Sprintf("Given: cell (%d,%d) is %d.", row, col, val),
			IndexOf(row, col, val), core.Yes))
	}

	return p, nil
}

// Solve is a convenience wrapper: parse, assemble and solve in one call.
func Solve(grid string, opts ...puzzle.Option) ([]*core.Solution, error) {
	p, err := New(grid)
	if err != nil {
		return nil, err
	}

	return p.Solve(opts...), nil
}
