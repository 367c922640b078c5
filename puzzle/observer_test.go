package puzzle_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
	"github.com/katalvlaran/lvlogic/puzzle"
)

// recorder captures every observer event as a flat string sequence.
type recorder struct {
	events []string
}

func (r *recorder) Progress(name string) { r.events = append(r.events, "progress "+name) }
func (r *recorder) Conflict(name string) { r.events = append(r.events, "conflict "+name) }
func (r *recorder) Prune()               { r.events = append(r.events, "prune") }
func (r *recorder) Branch(index int) {
	r.events = append(r.events, fmt.Sprintf("branch %d", index))
}
func (r *recorder) Solution(*core.Solution) { r.events = append(r.events, "solution") }

func TestObserver_ConflictSequence(t *testing.T) {
	p := puzzle.New(1)
	p.AddConstraint(
		constraint.Fixed("a", 0, core.Yes),
		constraint.Fixed("b", 0, core.No),
	)

	rec := &recorder{}
	require.Empty(t, p.Solve(puzzle.WithObserver(rec)))

	// The pass short-circuits at b's conflict, then the candidate is
	// pruned; no further constraints are evaluated.
	assert.Equal(t, []string{"progress a", "conflict b", "prune"}, rec.events)
}

func TestObserver_BranchAndSolutionEvents(t *testing.T) {
	p := puzzle.New(2)
	p.AddConstraint(constraint.Fixed("a", 0, core.Yes))

	rec := &recorder{}
	solutions := p.Solve(puzzle.WithObserver(rec))
	require.Len(t, solutions, 2)

	assert.Equal(t, []string{
		"progress a", // slot 0 forced during the first pass
		"branch 1",   // slot 1 undetermined: split
		"solution",   // Yes branch
		"solution",   // No branch
	}, rec.events)
}

func TestObserver_SilentByDefault(t *testing.T) {
	// No observer installed and a nil observer must both run quietly.
	p := puzzle.New(1)
	p.AddConstraint(constraint.Fixed("a", 0, core.Yes))

	assert.NotPanics(t, func() { p.Solve() })
	assert.NotPanics(t, func() { p.Solve(puzzle.WithObserver(nil)) })
}
