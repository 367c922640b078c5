package core

// Truth is one value of the three-valued lattice held by every slot.
// No and Yes are definite (terminal); Maybe means "not yet determined".
// The numeric encoding makes negation a sign flip and Maybe the zero
// value, so a freshly allocated table is all-Maybe.
type Truth int8

const (
	// No is the definite negative value.
	No Truth = -1

	// Maybe is the undetermined value. It is the zero value of Truth.
	Maybe Truth = 0

	// Yes is the definite positive value.
	Yes Truth = 1
)

// Not returns the logical negation of t: No↔Yes, Maybe stays Maybe.
func (t Truth) Not() Truth { return -t }

// Definite reports whether t is a terminal value (No or Yes).
func (t Truth) Definite() bool { return t != Maybe }

// String returns "No", "Maybe" or "Yes".
func (t Truth) String() string {
	switch t {
	case No:
		return "No"
	case Yes:
		return "Yes"
	default:
		return "Maybe"
	}
}

// Result is the three-way outcome reported by Solution.Set and by every
// constraint evaluation:
//
//   - Conflict: the operation is logically impossible under the current
//     definite assignments; the target state is a dead end.
//   - NoChange: the operation inspected the state but deduced nothing new.
//   - Progress: at least one slot moved from Maybe to a definite value.
type Result int8

const (
	// Conflict marks a detected logical impossibility.
	Conflict Result = -1

	// NoChange marks an evaluation that deduced nothing new.
	NoChange Result = 0

	// Progress marks at least one Maybe→definite transition.
	Progress Result = 1
)

// String returns "Conflict", "NoChange" or "Progress".
func (r Result) String() string {
	switch r {
	case Conflict:
		return "Conflict"
	case Progress:
		return "Progress"
	default:
		return "NoChange"
	}
}
