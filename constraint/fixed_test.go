package constraint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvlogic/constraint"
	"github.com/katalvlaran/lvlogic/core"
)

func TestFixed_ForcesSlot(t *testing.T) {
	s := core.NewSolution(2)
	c := constraint.Fixed("slot 1 holds", 1, core.Yes)

	assert.Equal(t, "slot 1 holds", c.Name())
	assert.Equal(t, core.Progress, c.Evaluate(s))
	assert.Equal(t, core.Yes, s.Get(1))

	// Untouched slots stay open.
	assert.Equal(t, core.Maybe, s.Get(0))

	// Re-evaluation is idempotent.
	assert.Equal(t, core.NoChange, c.Evaluate(s))
}

func TestFixed_ConflictOnOppositeValue(t *testing.T) {
	s := core.NewSolution(1)
	s.Set(0, core.No)

	c := constraint.Fixed("slot 0 holds", 0, core.Yes)
	assert.Equal(t, core.Conflict, c.Evaluate(s))
	assert.Equal(t, core.No, s.Get(0))
}

func TestFixed_MaybePanics(t *testing.T) {
	assert.Panics(t, func() { constraint.Fixed("bad", 0, core.Maybe) })
}
