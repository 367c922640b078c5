package puzzle

import "github.com/katalvlaran/lvlogic/core"

// Observer receives the solver's diagnostic events during one Solve run.
// Implementations must not retain the *core.Solution passed to Solution
// beyond the call; the engine still owns it.
//
// The engine reports Progress and Conflict evaluations only — passes
// that deduce nothing are silent, matching the useful signal-to-noise
// for traces of large puzzles.
type Observer interface {
	// Progress reports a constraint that forced at least one slot.
	Progress(constraint string)

	// Conflict reports the constraint that proved the current candidate
	// inconsistent. A Prune call follows.
	Conflict(constraint string)

	// Prune reports that the current candidate was discarded.
	Prune()

	// Branch reports a split on the given slot index: two copies of the
	// candidate were pushed, one with the slot No, one with it Yes.
	Branch(index int)

	// Solution reports a fully determined, consistent candidate.
	Solution(s *core.Solution)
}

// nop is the default Observer: it swallows every event.
type nop struct{}

func (nop) Progress(string)         {}
func (nop) Conflict(string)         {}
func (nop) Prune()                  {}
func (nop) Branch(int)              {}
func (nop) Solution(*core.Solution) {}

// Option configures optional behavior of a Solve run.
// Use with p.Solve(opts...).
type Option func(*Options)

// Options holds configurable parameters for one Solve run.
type Options struct {
	// Observer receives propagation, prune, branch and solution events.
	// Defaults to a silent sink so headless callers run quietly.
	Observer Observer
}

// DefaultOptions returns an Options struct with the silent observer.
func DefaultOptions() Options {
	return Options{Observer: nop{}}
}

// WithObserver returns an Option that installs o as the diagnostics
// sink. Passing a nil observer has no effect (the silent sink is kept).
func WithObserver(o Observer) Option {
	return func(opts *Options) {
		if o != nil {
			opts.Observer = o
		}
	}
}
