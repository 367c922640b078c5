package core

// None is the sentinel FirstMaybe returns when every slot is definite.
const None = -1

// Solution is an ordered, fixed-length assignment of Truth values, one
// per slot index in [0, Len). It is value-like: the search engine clones
// it at every branch point and the two copies evolve independently.
//
// Invariant: a slot moves Maybe→definite at most once. Writing the value
// a slot already holds is a no-op; writing the opposite definite value is
// a Conflict and leaves the slot untouched.
type Solution struct {
	table []Truth
}

// NewSolution returns a Solution with the given number of slots, all
// Maybe. Panics if slots is negative.
func NewSolution(slots int) *Solution {
	if slots < 0 {
		panic("core: negative slot count")
	}

	// Maybe is the zero value, so the fresh table needs no fill pass.
	return &Solution{table: make([]Truth, slots)}
}

// Len returns the number of slots.
func (s *Solution) Len() int { return len(s.table) }

// Get returns the current Truth value of the slot at index.
// Panics if index is out of range.
func (s *Solution) Get(index int) Truth { return s.table[index] }

// Set writes a definite value into one slot and reports the outcome:
//
//   - NoChange if the slot already holds value (idempotent re-set);
//   - Conflict if the slot holds the opposite definite value — the slot
//     is left unchanged;
//   - Progress if the slot was Maybe and is now value.
//
// Panics if index is out of range or value is Maybe; both are programmer
// errors, not run-time puzzle conditions.
func (s *Solution) Set(index int, value Truth) Result {
	if index < 0 || index >= len(s.table) {
		panic("core: slot index out of range")
	}
	if value == Maybe {
		panic("core: Set target value must be definite")
	}

	switch s.table[index] {
	case value:
		return NoChange
	case Maybe:
		s.table[index] = value
		return Progress
	default:
		// The slot already holds the opposite definite value.
		return Conflict
	}
}

// Count returns how many of the given slots currently hold value.
// Panics if any index is out of range.
func (s *Solution) Count(indexes []int, value Truth) int {
	var n int
	for _, i := range indexes {
		if s.table[i] == value {
			n++
		}
	}

	return n
}

// FirstMaybe returns the lowest index still holding Maybe, or None when
// the Solution is fully determined.
func (s *Solution) FirstMaybe() int {
	for i, t := range s.table {
		if t == Maybe {
			return i
		}
	}

	return None
}

// Clone returns an independent deep copy of s. The copy shares no
// mutable state with the original.
func (s *Solution) Clone() *Solution {
	dup := make([]Truth, len(s.table))
	copy(dup, s.table)

	return &Solution{table: dup}
}
