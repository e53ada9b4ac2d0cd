package stage

import "fmt"

// ErrorKind identifies specific types of errors that can occur when resolving
// or querying a stage definition. This enables error handling code to make
// decisions based on the type of error.
type ErrorKind int

const (
	// KindUnresolvableMember indicates a raw identifier matched neither a
	// member name, a member value, nor a member code.
	KindUnresolvableMember ErrorKind = iota

	// KindNotComparable indicates an ordering query against a member that is
	// absent from the definition's ordering.
	KindNotComparable

	// KindBoundaryExceeded indicates a neighbor request past the first or
	// last member of the ordering.
	KindBoundaryExceeded

	// KindInvalidDefinition indicates a malformed declaration that cannot be
	// resolved into a definition.
	KindInvalidDefinition
)

// Error represents domain-specific errors produced by definition resolution
// and member queries. It provides context about the type of error to enable
// appropriate error handling.
type Error struct {
	msg  string
	kind ErrorKind
}

// Error returns the error message. This implements the error interface.
func (e *Error) Error() string { return e.msg }

// Is enables error matching by comparing error kinds so callers can use
// errors.Is against the package sentinels.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.kind == t.kind
}

// Sentinel targets for errors.Is. Errors returned by this package carry
// additional context but always match exactly one of these.
var (
	ErrUnresolvableMember = &Error{msg: "member cannot be resolved", kind: KindUnresolvableMember}
	ErrNotComparable      = &Error{msg: "member is not order-comparable", kind: KindNotComparable}
	ErrBoundaryExceeded   = &Error{msg: "no member beyond ordering boundary", kind: KindBoundaryExceeded}
	ErrInvalidDefinition  = &Error{msg: "invalid stage definition", kind: KindInvalidDefinition}
)

// newUnresolvableMemberError creates an error for identifiers that fail both
// name and value lookup. It includes the attempted identifier to aid debugging.
func newUnresolvableMemberError(defName string, raw any) error {
	return &Error{
		msg:  fmt.Sprintf("stage %s: no member matches %v", defName, raw),
		kind: KindUnresolvableMember,
	}
}

// newNotComparableError creates an error for ordering queries against members
// excluded from the ordering.
func newNotComparableError(m *Member) error {
	return &Error{
		msg:  fmt.Sprintf("stage %s: member %s is not in the ordering", m.def.name, m.name),
		kind: KindNotComparable,
	}
}

// newBoundaryExceededError creates an error for neighbor requests past the
// edges of the ordering. Neighbor accessors never wrap around.
func newBoundaryExceededError(m *Member, direction string) error {
	return &Error{
		msg:  fmt.Sprintf("stage %s: no member %s %s", m.def.name, direction, m.name),
		kind: KindBoundaryExceeded,
	}
}

// newInvalidDefinitionError creates an error for declaration mistakes caught
// at resolution time.
func newInvalidDefinitionError(defName, format string, args ...any) error {
	return &Error{
		msg:  fmt.Sprintf("stage %s: %s", defName, fmt.Sprintf(format, args...)),
		kind: KindInvalidDefinition,
	}
}
