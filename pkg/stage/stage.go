// Package stage provides ordered stage types with constrained transitions.
// A stage type is a closed set of named members with an explicit ordering,
// independent of declaration order or raw values, and a directed transition
// graph declaring which members may legally follow which. Definitions are
// resolved once at declaration time and frozen; members expose coercion,
// comparison, range, and transition-predicate operations against the frozen
// structures.
//
// The package validates transitions and computes order relationships; it
// never performs a transition itself. Executing a state change and its side
// effects belongs to the caller.
package stage
