// Package lvlogic is a small engine for solving logic puzzles by
// constraint propagation and backtracking search.
//
// 🚀 What is lvlogic?
//
//	A puzzle is modelled as a fixed number of boolean "slots", each holding
//	one value of a three-valued lattice (No / Maybe / Yes), plus a set of
//	named constraints over subsets of those slots. The solver repeatedly
//	applies every constraint until no new deduction is possible, then
//	branches on the first undetermined slot and explores both outcomes,
//	collecting every assignment that satisfies all constraints at once:
//		• Core primitives: Truth lattice, Solution vector, Result outcomes
//		• Constraint catalog: Fixed, Implication, Identical, ExactlyN,
//		  ForcedDisjunction
//		• Search: fixpoint propagation + depth-first branch-and-prune
//		• Tracing: pluggable observers (silent, text, structured logging)
//
// ✨ Why choose lvlogic?
//
//   - Beginner-friendly – encode a puzzle with a handful of constraint calls
//   - Deterministic – same inputs, same solutions, same discovery order
//   - Complete – every consistent total assignment is found, not just one
//   - Extensible – any type with Name() and Evaluate() is a constraint
//
// Everything is organized under small subpackages:
//
//	core/       — Truth, Result and Solution: the data the solver works on
//	constraint/ — the standard rule catalog and the Constraint capability
//	puzzle/     — the search engine: New, AddConstraint, Solve
//	trace/      — ready-made observers for watching the solver think
//	zebra/      — the classic five-houses puzzle, fully encoded
//	sudoku/     — 9×9 sudoku as an exact-cover encoding
//
// Quick taste:
//
//	p := puzzle.New(2)
//	p.AddConstraint(
//		constraint.Fixed("first slot holds", 0, core.Yes),
//		constraint.Implication("0 implies 1", 0, 1),
//	)
//	for _, s := range p.Solve() {
//		fmt.Println(s.Get(0), s.Get(1)) // Yes Yes
//	}
//
// Dive into the zebra and sudoku packages for complete worked encodings,
// or run cmd/zebra with --trace to watch every deduction the solver makes.
//
//	go get github.com/katalvlaran/lvlogic
package lvlogic
