package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
)

func TestExactlyN_TargetReachedClosesRest(t *testing.T) {
	// ExactlyN(2, [0,1,2,3], Yes) with slots 0,1 already Yes must force
	// slots 2,3 to No in a single evaluation.
	s := core.NewSolution(4)
	s.Set(0, core.Yes)
	s.Set(1, core.Yes)

	c := constraint.ExactlyN("two of four", 2, []int{0, 1, 2, 3}, core.Yes)
	assert.Equal(t, core.Progress, c.Evaluate(s))
	assert.Equal(t, core.No, s.Get(2))
	assert.Equal(t, core.No, s.Get(3))

	assert.Equal(t, core.NoChange, c.Evaluate(s))
}

func TestExactlyN_NoForcingWhileUnderdetermined(t *testing.T) {
	// One Yes out of a required two, three slots open: nothing is
	// provable yet.
	s := core.NewSolution(4)
	s.Set(0, core.Yes)

	c := constraint.ExactlyN("two of four", 2, []int{0, 1, 2, 3}, core.Yes)
	assert.Equal(t, core.NoChange, c.Evaluate(s))
	for i := 1; i < 4; i++ {
		assert.Equal(t, core.Maybe, s.Get(i))
	}
}

func TestExactlyN_AllRemainingRequired(t *testing.T) {
	// One Yes, one No, two open, target two: both open slots are needed.
	s := core.NewSolution(4)
	s.Set(0, core.Yes)
	s.Set(1, core.No)

	c := constraint.ExactlyN("two of four", 2, []int{0, 1, 2, 3}, core.Yes)
	assert.Equal(t, core.Progress, c.Evaluate(s))
	assert.Equal(t, core.Yes, s.Get(2))
	assert.Equal(t, core.Yes, s.Get(3))
}

func TestExactlyN_ConflictOnOvershoot(t *testing.T) {
	s := core.NewSolution(3)
	s.Set(0, core.Yes)
	s.Set(1, core.Yes)

	c := constraint.ExactlyN("one of three", 1, []int{0, 1, 2}, core.Yes)
	assert.Equal(t, core.Conflict, c.Evaluate(s))
	assert.Equal(t, core.Maybe, s.Get(2), "conflict must not force anything")
}

func TestExactlyN_ConflictOnShortfall(t *testing.T) {
	// Two slots already No leaves only one candidate for a target of two.
	s := core.NewSolution(3)
	s.Set(0, core.No)
	s.Set(1, core.No)

	c := constraint.ExactlyN("two of three", 2, []int{0, 1, 2}, core.Yes)
	assert.Equal(t, core.Conflict, c.Evaluate(s))
}

func TestExactlyN_CountsTheOppositeValueToo(t *testing.T) {
	// The rule works symmetrically for value=No.
	s := core.NewSolution(3)
	s.Set(0, core.No)

	c := constraint.ExactlyN("one no of three", 1, []int{0, 1, 2}, core.No)
	assert.Equal(t, core.Progress, c.Evaluate(s))
	assert.Equal(t, core.Yes, s.Get(1))
	assert.Equal(t, core.Yes, s.Get(2))
}

func TestExactlyN_FullyDeterminedAndSatisfied(t *testing.T) {
	s := core.NewSolution(2)
	s.Set(0, core.Yes)
	s.Set(1, core.No)

	c := constraint.ExactlyN("one of two", 1, []int{0, 1}, core.Yes)
	assert.Equal(t, core.NoChange, c.Evaluate(s))
}

func TestExactlyN_PreconditionPanics(t *testing.T) {
	assert.Panics(t, func() {
		constraint.ExactlyN("bad", 3, []int{0, 1}, core.Yes)
	}, "count beyond list length")
	assert.Panics(t, func() {
		constraint.ExactlyN("bad", -1, []int{0, 1}, core.Yes)
	}, "negative count")
	assert.Panics(t, func() {
		constraint.ExactlyN("bad", 1, []int{0, 1}, core.Maybe)
	}, "Maybe target value")
}
