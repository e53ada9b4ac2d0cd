package stage_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahrav/stageflow/pkg/stage"
)

func memberNames(members []*stage.Member) []string {
	names := make([]string, 0, len(members))
	for _, m := range members {
		names = append(names, m.Name())
	}
	return names
}

func TestMember_Between(t *testing.T) {
	t.Parallel()

	def, err := stage.NewBuilder("Pipeline").
		Member("A", "a").
		Member("B", "b").
		Member("C", "c").
		Member("D", "d").
		Member("E", "e").
		Build()
	require.NoError(t, err)

	tests := []struct {
		name     string
		from     string
		to       any
		expected []string
	}{
		{name: "forward span", from: "A", to: "E", expected: []string{"B", "C", "D"}},
		{name: "forward single gap", from: "B", to: "D", expected: []string{"C"}},
		{name: "reversed span matches forward", from: "E", to: "A", expected: []string{"B", "C", "D"}},
		{name: "reversed single gap", from: "D", to: "B", expected: []string{"C"}},
		{name: "adjacent forward", from: "A", to: "B", expected: []string{}},
		{name: "adjacent reversed", from: "B", to: "A", expected: []string{}},
		{name: "same member", from: "C", to: "C", expected: []string{}},
		{name: "coerces raw value argument", from: "A", to: "d", expected: []string{"B", "C"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := def.MustMember(tt.from).Between(tt.to)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, memberNames(got))
		})
	}
}

// Both Between directions must yield the identical result set: the ordering
// is linear, so the reversed case is the forward half-open range with the
// operands swapped, not a wraparound.
func TestMember_BetweenSymmetry(t *testing.T) {
	t.Parallel()

	def, err := stage.NewBuilder("Pipeline").
		Member("A", "a").
		Member("B", "b").
		Member("C", "c").
		Member("D", "d").
		Member("E", "e").
		Build()
	require.NoError(t, err)

	for _, from := range def.Members() {
		for _, to := range def.Members() {
			forward, err := from.Between(to)
			require.NoError(t, err)

			reversed, err := to.Between(from)
			require.NoError(t, err)

			assert.Equal(t, memberNames(forward), memberNames(reversed),
				"Between is not symmetric for %s and %s", from, to)
		}
	}
}

func TestMember_BetweenErrors(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)

	_, err := def.MustMember("PENDING").Between("CLOSED")
	assert.ErrorIs(t, err, stage.ErrNotComparable)

	_, err = def.MustMember("CLOSED").Between("PENDING")
	assert.ErrorIs(t, err, stage.ErrNotComparable)

	_, err = def.MustMember("PENDING").Between("archived")
	assert.ErrorIs(t, err, stage.ErrUnresolvableMember)
}

func TestMember_Neighbors(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)
	pending := def.MustMember("PENDING")
	running := def.MustMember("RUNNING")
	done := def.MustMember("DONE")

	next, err := pending.Next()
	require.NoError(t, err)
	assert.Same(t, running, next)

	prev, err := done.Previous()
	require.NoError(t, err)
	assert.Same(t, running, prev)

	// Boundary requests fail rather than wrap around.
	_, err = pending.Previous()
	assert.ErrorIs(t, err, stage.ErrBoundaryExceeded)

	_, err = done.Next()
	assert.ErrorIs(t, err, stage.ErrBoundaryExceeded)

	// Members outside the ordering have no neighbors at all.
	_, err = def.MustMember("CLOSED").Next()
	assert.ErrorIs(t, err, stage.ErrNotComparable)
}

// previous(next(x)) must return x for any non-boundary member.
func TestMember_NeighborRoundTrip(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)

	ordering := def.Ordering()
	for _, m := range ordering[:len(ordering)-1] {
		next, err := m.Next()
		require.NoError(t, err)

		back, err := next.Previous()
		require.NoError(t, err)
		assert.Same(t, m, back)
	}
}

func TestMember_AllPreviousAllNext(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)

	tests := []struct {
		name         string
		member       string
		expectedPrev []string
		expectedNext []string
	}{
		{name: "first", member: "PENDING", expectedPrev: []string{}, expectedNext: []string{"RUNNING", "DONE"}},
		{name: "middle", member: "RUNNING", expectedPrev: []string{"PENDING"}, expectedNext: []string{"DONE"}},
		{name: "last", member: "DONE", expectedPrev: []string{"PENDING", "RUNNING"}, expectedNext: []string{}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prev, err := def.MustMember(tt.member).AllPrevious()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPrev, memberNames(prev))

			next, err := def.MustMember(tt.member).AllNext()
			require.NoError(t, err)
			assert.Equal(t, tt.expectedNext, memberNames(next))
		})
	}
}

func TestMember_AllPreviousNotComparable(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)

	_, err := def.MustMember("CLOSED").AllPrevious()
	assert.ErrorIs(t, err, stage.ErrNotComparable)

	_, err = def.MustMember("CLOSED").AllNext()
	assert.ErrorIs(t, err, stage.ErrNotComparable)
}

// A duplicated ordering entry is degenerate but legal: ordinal reports the
// first occurrence and range queries slice the declared sequence as-is.
func TestOrdering_DuplicateEntries(t *testing.T) {
	t.Parallel()

	def, err := stage.NewBuilder("Degenerate").
		Member("A", "a").
		Member("B", "b").
		Member("C", "c").
		Ordering("A", "B", "A", "C").
		Build()
	require.NoError(t, err)

	a := def.MustMember("A")
	idx, err := a.Ordinal()
	require.NoError(t, err)
	assert.Equal(t, 0, idx)

	between, err := a.Between("C")
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "A"}, memberNames(between))
}

// ordinal is a bijection onto [0, N) for orderings without duplicates.
func TestOrdering_OrdinalBijection(t *testing.T) {
	t.Parallel()

	def := newTaskLifecycle(t)

	ordering := def.Ordering()
	seen := make(map[int]bool, len(ordering))
	for _, m := range ordering {
		idx, err := m.Ordinal()
		require.NoError(t, err)
		assert.GreaterOrEqual(t, idx, 0)
		assert.Less(t, idx, len(ordering))
		assert.False(t, seen[idx], "ordinal %d assigned twice", idx)
		seen[idx] = true
	}
}
