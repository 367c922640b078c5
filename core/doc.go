// Package core defines the three-valued truth lattice and the Solution
// vector every other lvlogic package operates on.
//
// What:
//
//   - Truth: the lattice {No, Maybe, Yes}, with Not() negation.
//   - Result: the universal three-way outcome {Conflict, NoChange, Progress}
//     reported by every mutation and every constraint evaluation.
//   - Solution: a fixed-length vector of Truth values, one per slot,
//     with the single safe mutation primitive Set and read helpers
//     Get, Count, FirstMaybe, plus value-like duplication via Clone.
//
// Why:
//
//   - Maybe means "not yet determined"; No and Yes are terminal. A slot
//     moves Maybe→definite at most once, and an attempt to flip a definite
//     slot to the opposite value is a Conflict, never a silent overwrite.
//     That single invariant is what makes incremental deduction sound.
//
// Complexity:
//
//   - Set, Get: O(1). Count: O(len(indexes)). FirstMaybe, Clone: O(slots).
//
// Preconditions:
//
//   - Slot indexes must lie in [0, Len). Set must never be asked to write
//     Maybe. Violations are programmer errors and panic immediately; they
//     are not recoverable run-time conditions.
package core
