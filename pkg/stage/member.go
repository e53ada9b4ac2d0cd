package stage

// Member is one named, value-bearing element of a stage definition. Members
// are created once during resolution and are singletons within their
// definition, so pointer identity is equality. A member carries a symbolic
// name used in code, a raw value suitable for persistence, and an int32 code
// for numeric enum representations.
type Member struct {
	name  string
	value string
	code  int32
	def   *Definition
}

// Name returns the symbolic member name, e.g. "PENDING".
func (m *Member) Name() string { return m.name }

// Value returns the raw value callers persist or transport, e.g. "pending".
func (m *Member) Value() string { return m.value }

// Code returns the 1-based numeric code assigned in declaration order.
// Zero is reserved for unspecified.
func (m *Member) Code() int32 { return m.code }

// String returns the member name.
func (m *Member) String() string { return m.name }

// Definition returns the definition this member belongs to.
func (m *Member) Definition() *Definition { return m.def }

// Follows reports whether this member is a legal transition target when the
// current state is other. It is a pure graph-membership check: neither side
// needs to be present in the ordering.
func (m *Member) Follows(other any) (bool, error) {
	o, err := m.def.Coerce(other)
	if err != nil {
		return false, err
	}
	for _, allowed := range m.def.flows[o] {
		if allowed == m {
			return true, nil
		}
	}
	return false, nil
}

// Precedes reports whether other is a legal transition target when the
// current state is this member. Precedes is the inverse view of the same
// directed edge checked by Follows.
func (m *Member) Precedes(other any) (bool, error) {
	o, err := m.def.Coerce(other)
	if err != nil {
		return false, err
	}
	for _, allowed := range m.def.flows[m] {
		if allowed == o {
			return true, nil
		}
	}
	return false, nil
}

// Ordinal returns the member's zero-based position in the ordering. Members
// excluded from the ordering have no ordinal; requesting one returns
// ErrNotComparable rather than a sentinel index.
func (m *Member) Ordinal() (int, error) {
	idx, ok := m.def.ordinals[m]
	if !ok {
		return 0, newNotComparableError(m)
	}
	return idx, nil
}

// ordinals resolves the receiver's and other's ordinal positions for the
// comparison operators. Both operands must be order-comparable.
func (m *Member) ordinals(other any) (int, int, error) {
	o, err := m.def.Coerce(other)
	if err != nil {
		return 0, 0, err
	}
	self, err := m.Ordinal()
	if err != nil {
		return 0, 0, err
	}
	theirs, err := o.Ordinal()
	if err != nil {
		return 0, 0, err
	}
	return self, theirs, nil
}

// Less reports whether this member is strictly before other in the ordering.
func (m *Member) Less(other any) (bool, error) {
	self, theirs, err := m.ordinals(other)
	if err != nil {
		return false, err
	}
	return self < theirs, nil
}

// LessOrEqual reports whether this member is at or before other in the ordering.
func (m *Member) LessOrEqual(other any) (bool, error) {
	self, theirs, err := m.ordinals(other)
	if err != nil {
		return false, err
	}
	return self <= theirs, nil
}

// Greater reports whether this member is strictly after other in the ordering.
func (m *Member) Greater(other any) (bool, error) {
	self, theirs, err := m.ordinals(other)
	if err != nil {
		return false, err
	}
	return self > theirs, nil
}

// GreaterOrEqual reports whether this member is at or after other in the ordering.
func (m *Member) GreaterOrEqual(other any) (bool, error) {
	self, theirs, err := m.ordinals(other)
	if err != nil {
		return false, err
	}
	return self >= theirs, nil
}

// Between returns the members strictly between this member and other in the
// ordering, in ordering sequence. The result is empty when the two positions
// are adjacent or equal, in either direction. The ordering is linear, not
// circular, so the reversed-operand case reduces to the forward slice with
// the bounds swapped.
func (m *Member) Between(other any) ([]*Member, error) {
	self, theirs, err := m.ordinals(other)
	if err != nil {
		return nil, err
	}
	lo, hi := self, theirs
	if lo > hi {
		lo, hi = hi, lo
	}
	if hi-lo <= 1 {
		return []*Member{}, nil
	}
	return append([]*Member(nil), m.def.ordering[lo+1:hi]...), nil
}

// Previous returns the member immediately before this one in the ordering.
// It returns ErrBoundaryExceeded for the first member; there is no wraparound.
func (m *Member) Previous() (*Member, error) {
	idx, err := m.Ordinal()
	if err != nil {
		return nil, err
	}
	if idx == 0 {
		return nil, newBoundaryExceededError(m, "before")
	}
	return m.def.ordering[idx-1], nil
}

// Next returns the member immediately after this one in the ordering.
// It returns ErrBoundaryExceeded for the last member; there is no wraparound.
func (m *Member) Next() (*Member, error) {
	idx, err := m.Ordinal()
	if err != nil {
		return nil, err
	}
	if idx == len(m.def.ordering)-1 {
		return nil, newBoundaryExceededError(m, "after")
	}
	return m.def.ordering[idx+1], nil
}

// AllPrevious returns every member before this one in the ordering. The
// result is empty for the first member; an error is returned only when the
// receiver itself is not order-comparable.
func (m *Member) AllPrevious() ([]*Member, error) {
	idx, err := m.Ordinal()
	if err != nil {
		return nil, err
	}
	return append([]*Member(nil), m.def.ordering[:idx]...), nil
}

// AllNext returns every member after this one in the ordering. The result is
// empty for the last member; an error is returned only when the receiver
// itself is not order-comparable.
func (m *Member) AllNext() ([]*Member, error) {
	idx, err := m.Ordinal()
	if err != nil {
		return nil, err
	}
	return append([]*Member(nil), m.def.ordering[idx+1:]...), nil
}
