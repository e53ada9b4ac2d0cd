package stage

import (
	"math"
	"strings"
)

// Definition is the resolved, frozen metadata record for one stage type: its
// closed member set, the ordering that makes members order-comparable, and
// the directed transition graph. A Definition is built once (see Builder) and
// never mutated afterward, so it is safe for unlimited concurrent readers.
type Definition struct {
	name    string
	members []*Member

	// Lookup tables for coercion. Name keys are upper-cased.
	byName  map[string]*Member
	byValue map[string]*Member
	byCode  map[int32]*Member

	// ordering preserves the declared sequence exactly, duplicates included.
	// ordinals maps each member to its first occurrence.
	ordering []*Member
	ordinals map[*Member]int

	// flows is the transition adjacency: member -> legal immediate successors.
	flows map[*Member][]*Member
}

// Name returns the stage type name.
func (d *Definition) Name() string { return d.name }

// Members returns all members in declaration order.
func (d *Definition) Members() []*Member {
	return append([]*Member(nil), d.members...)
}

// Ordering returns the declared ordering sequence.
func (d *Definition) Ordering() []*Member {
	return append([]*Member(nil), d.ordering...)
}

// Coerce converts a raw representation into the canonical member it
// identifies. It accepts an already-canonical *Member (returned unchanged),
// a string (case-insensitive name match first, then value match), or an
// int/int32 code. Callers legitimately hold any of these: a symbolic constant
// in code, a persisted raw value, or a numeric enum code.
func (d *Definition) Coerce(raw any) (*Member, error) {
	switch v := raw.(type) {
	case *Member:
		if v == nil || v.def != d {
			return nil, newUnresolvableMemberError(d.name, raw)
		}
		return v, nil
	case string:
		if m, ok := d.byName[strings.ToUpper(v)]; ok {
			return m, nil
		}
		if m, ok := d.byValue[v]; ok {
			return m, nil
		}
		return nil, newUnresolvableMemberError(d.name, raw)
	case int32:
		if m, ok := d.byCode[v]; ok {
			return m, nil
		}
		return nil, newUnresolvableMemberError(d.name, raw)
	case int:
		// Reject values outside int32 before converting: truncation would
		// alias onto a valid code and resolve the wrong member.
		if v < math.MinInt32 || v > math.MaxInt32 {
			return nil, newUnresolvableMemberError(d.name, raw)
		}
		if m, ok := d.byCode[int32(v)]; ok {
			return m, nil
		}
		return nil, newUnresolvableMemberError(d.name, raw)
	default:
		return nil, newUnresolvableMemberError(d.name, raw)
	}
}

// MustMember returns the member with the given name, panicking if it does not
// exist. It is intended for package-level member variables declared right
// after building the definition.
func (d *Definition) MustMember(name string) *Member {
	m, err := d.Coerce(name)
	if err != nil {
		panic(err)
	}
	return m
}

// IsComparable reports whether raw resolves to a member present in the
// ordering. It is a total predicate for use in guard conditions: coercion
// failure and absence from the ordering both yield false, never an error.
func (d *Definition) IsComparable(raw any) bool {
	m, err := d.Coerce(raw)
	if err != nil {
		return false
	}
	_, ok := d.ordinals[m]
	return ok
}

// Successors returns the legal immediate transition targets for raw. Members
// with no declared flow have no successors.
func (d *Definition) Successors(raw any) ([]*Member, error) {
	m, err := d.Coerce(raw)
	if err != nil {
		return nil, err
	}
	return append([]*Member(nil), d.flows[m]...), nil
}
