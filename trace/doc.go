// Package trace provides ready-made puzzle.Observer implementations for
// watching a solve run.
//
// What:
//
//   - NewWriter(w): a plain-text tracer that prints one line per event
//     ("Progress: <name>", "Conflict: <name>", "Pruning", "Guessing:
//     index N", "Solution!") — handy for interactive use.
//   - NewLogger(log): a structured tracer on top of logrus. Propagation
//     detail goes to Debug level, solutions to Info, so a default-level
//     logger only reports results while --verbose style setups see every
//     deduction.
//
// Headless callers need neither: puzzle.Solve is silent by default.
package trace
