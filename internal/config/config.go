// Package config defines the declarative file format for stage type
// declarations and translates validated declarations into resolved
// definitions.
package config

// Config represents the top-level stage declaration document.
type Config struct {
	Stages []StageSpec `yaml:"stages" validate:"required,min=1,dive"`
}

// StageSpec declares one stage type: its members, an optional explicit
// ordering, and the transition flows.
type StageSpec struct {
	// Name is the stage type name, e.g. "TaskStatus".
	Name string `yaml:"name" validate:"required"`

	// Members declares the closed member set in declaration order.
	Members []MemberSpec `yaml:"members" validate:"required,min=1,dive"`

	// Ordering lists member identifiers establishing the comparison order.
	// When omitted the ordering defaults to declaration order; an explicitly
	// empty list makes no member order-comparable.
	Ordering *[]string `yaml:"ordering,omitempty"`

	// Flows maps a member identifier to its legal immediate successors.
	Flows map[string][]string `yaml:"flows,omitempty"`
}

// MemberSpec declares a single member.
type MemberSpec struct {
	Name string `yaml:"name" validate:"required"`

	// Value is the raw value persisted or transported for this member.
	// Defaults to the lower-cased name when omitted.
	Value string `yaml:"value,omitempty"`
}
