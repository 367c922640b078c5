// Package sudoku encodes 9×9 sudoku as an exact-cover problem for the
// lvlogic solver.
//
// What:
//
//   - 729 slots: slot (row, col, val) means "cell (row, col) holds val",
//     with rows, columns and values all numbered 1..9.
//   - Structure: every cell holds exactly one value, and every value
//     appears exactly once per row, per column and per 3×3 box —
//     4×81 ExactlyN(1) constraints.
//   - New(grid) parses an 81-character grid ('1'..'9' for givens, '.',
//     '0' or ' ' for blanks; newlines ignored) and adds one Fixed
//     constraint per given.
//   - Render formats a solved Solution back into nine rows of digits.
//
// Errors:
//
//   - ErrGridSize: the grid does not contain exactly 81 cells.
//   - ErrGridRune: the grid contains a character that is neither a
//     digit nor a blank marker.
//
// Grid input is user data, so New reports malformed grids as errors
// rather than panicking.
package sudoku
