// Package constraint defines the Constraint capability and the standard
// catalog of propagation rules used to encode logic puzzles.
//
// What:
//
//   - Constraint: a named, immutable predicate over a fixed subset of
//     slots, evaluated against a core.Solution. Evaluate may fill in
//     values the current assignments force, and reports Conflict,
//     NoChange or Progress.
//   - Fixed(index, value): one slot holds a given definite value.
//   - Implication(p, q): slot p being Yes forces slot q to Yes; the
//     contrapositive fires too, the converse never does.
//   - Identical(a, b): pairwise, slot a[i] and slot b[i] hold the same
//     value.
//   - ExactlyN(n, indexes, value): exactly n of the slots hold value,
//     so the remaining slots hold the opposite value.
//   - ForcedDisjunction(p, any): slot p being Yes requires at least one
//     slot in any to be Yes.
//
// Why:
//
//   - Rules only ever fire deductions that are provably necessary under
//     the current definite assignments — no guessing happens here. All
//     nondeterminism lives in the search engine's branching step, which
//     keeps every rule sound and the fixpoint loop confluent.
//
// Complexity:
//
//   - Fixed, Implication: O(1) per evaluation.
//   - Identical, ExactlyN, ForcedDisjunction: O(len(indexes)).
//
// Preconditions:
//
//   - Target values must be definite (never Maybe); Identical's lists
//     must have equal length; ExactlyN's count must satisfy
//     0 ≤ n ≤ len(indexes). Constructors panic on violations.
//   - Slot indexes are not range-checked at construction; an
//     out-of-range index panics at evaluation time.
package constraint
