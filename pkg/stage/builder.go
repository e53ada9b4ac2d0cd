package stage

import "strings"

// flowDecl is one raw flow declaration awaiting resolution.
type flowDecl struct {
	from any
	to   []any
}

// Builder collects a declarative stage specification and resolves it into an
// immutable Definition. Declarations are expressed in raw identifiers (names,
// values, or codes); every identifier is resolved to a canonical member
// during Build, which fails if any identifier cannot be resolved. A Builder
// is single-use: Build freezes its members into the returned definition.
type Builder struct {
	name     string
	members  []*Member
	ordering []any
	explicit bool
	flows    []flowDecl
	built    bool
}

// NewBuilder creates a builder for a stage type with the given name.
func NewBuilder(name string) *Builder {
	return &Builder{name: name}
}

// Member declares a member with its symbolic name and raw value. The member's
// numeric code is assigned from declaration order, starting at 1.
func (b *Builder) Member(name, value string) *Builder {
	b.members = append(b.members, &Member{
		name:  name,
		value: value,
		code:  int32(len(b.members) + 1),
	})
	return b
}

// Ordering declares the explicit ordering sequence. It takes precedence over
// the default declaration-order ordering; calling it with no identifiers
// declares an explicitly empty ordering in which no member is
// order-comparable.
func (b *Builder) Ordering(ids ...any) *Builder {
	b.ordering = ids
	b.explicit = true
	return b
}

// Flow declares the legal immediate successors for from. Repeated
// declarations for the same member accumulate.
func (b *Builder) Flow(from any, to ...any) *Builder {
	b.flows = append(b.flows, flowDecl{from: from, to: to})
	return b
}

// Build resolves the collected declarations into a Definition. Every raw
// identifier in the ordering and flow declarations must resolve to exactly
// one member or Build fails, leaving no partially usable definition behind.
func (b *Builder) Build() (*Definition, error) {
	if b.built {
		return nil, newInvalidDefinitionError(b.name, "builder already used")
	}
	if len(b.members) == 0 {
		return nil, newInvalidDefinitionError(b.name, "at least one member is required")
	}

	d := &Definition{
		name:    b.name,
		members: b.members,
		byName:  make(map[string]*Member, len(b.members)),
		byValue: make(map[string]*Member, len(b.members)),
		byCode:  make(map[int32]*Member, len(b.members)),
	}
	for _, m := range b.members {
		key := strings.ToUpper(m.name)
		if _, exists := d.byName[key]; exists {
			return nil, newInvalidDefinitionError(b.name, "duplicate member name %s", m.name)
		}
		if _, exists := d.byValue[m.value]; exists {
			return nil, newInvalidDefinitionError(b.name, "duplicate member value %s", m.value)
		}
		m.def = d
		d.byName[key] = m
		d.byValue[m.value] = m
		d.byCode[m.code] = m
	}

	// The explicit ordering wins over declaration order. Duplicates are kept
	// as declared; ordinals record the first occurrence.
	if b.explicit {
		d.ordering = make([]*Member, 0, len(b.ordering))
		for _, id := range b.ordering {
			m, err := d.Coerce(id)
			if err != nil {
				return nil, err
			}
			d.ordering = append(d.ordering, m)
		}
	} else {
		d.ordering = append([]*Member(nil), b.members...)
	}
	d.ordinals = make(map[*Member]int, len(d.ordering))
	for i, m := range d.ordering {
		if _, seen := d.ordinals[m]; !seen {
			d.ordinals[m] = i
		}
	}

	// Flow participants need not appear in the ordering: legality of a
	// transition is a graph fact, decoupled from position.
	d.flows = make(map[*Member][]*Member, len(b.flows))
	for _, decl := range b.flows {
		from, err := d.Coerce(decl.from)
		if err != nil {
			return nil, err
		}
		for _, id := range decl.to {
			to, err := d.Coerce(id)
			if err != nil {
				return nil, err
			}
			d.flows[from] = append(d.flows[from], to)
		}
	}

	b.built = true
	return d, nil
}

// MustBuild is like Build but panics on error. It is intended for
// package-level definitions resolved during program startup.
func (b *Builder) MustBuild() *Definition {
	d, err := b.Build()
	if err != nil {
		panic(err)
	}
	return d
}
