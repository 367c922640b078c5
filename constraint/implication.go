package constraint

import "github.com/katalvlaran/lvlogic/core"

// implication encodes "if slot p is Yes then slot q is Yes".
type implication struct {
	name string
	p, q int
}

// Implication returns a constraint encoding p ⇒ q over two slots:
//
//   - p=Yes, q=No    → Conflict
//   - p=Yes, q=Maybe → q forced to Yes
//   - q=No,  p=Maybe → p forced to No (contrapositive)
//
// The converse (q ⇒ p) is intentionally not derived: q may be Yes for
// reasons that have nothing to do with p.
func Implication(name string, p, q int) Constraint {
	return &implication{name: name, p: p, q: q}
}

func (c *implication) Name() string { return c.name }

func (c *implication) Evaluate(s *core.Solution) core.Result {
	switch {
	case s.Get(c.p) == core.Yes && s.Get(c.q) == core.No:
		return core.Conflict
	case s.Get(c.p) == core.Yes && s.Get(c.q) == core.Maybe:
		return s.Set(c.q, core.Yes)
	case s.Get(c.q) == core.No && s.Get(c.p) == core.Maybe:
		return s.Set(c.p, core.No)
	default:
		return core.NoChange
	}
}
