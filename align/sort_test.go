package align_test

import (
	"testing"

	"github.com/katalvlaran/alignmat/align"
	"github.com/katalvlaran/alignmat/seq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSort_ByExistingKeys verifies sorting by materialized keys: keys
// [c,b,a] sort to [a,b,c] with rows following.
func TestSort_ByExistingKeys(t *testing.T) {
	m, err := align.New(dnaRows(t, "ACG", "AC-", "AC-"), align.WithKeys([]string{"c", "b", "a"}))
	require.NoError(t, err)

	require.NoError(t, m.Sort())

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, keys, "keys ascend")

	rows := m.Rows()
	assert.Equal(t, "AC-", rows[0].String(), "row followed key a")
	assert.Equal(t, "AC-", rows[1].String(), "row followed key b")
	assert.Equal(t, "ACG", rows[2].String(), "row followed key c")
}

// TestSort_Reverse verifies reverse=true yields [c,b,a].
func TestSort_Reverse(t *testing.T) {
	m, err := align.New(dnaRows(t, "ACG", "AC-", "A--"), align.WithKeys([]string{"c", "b", "a"}))
	require.NoError(t, err)

	require.NoError(t, m.Sort(align.Reverse()))

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"c", "b", "a"}, keys, "keys descend")
}

// TestSort_Unkeyed verifies sorting without keys or a rule fails.
func TestSort_Unkeyed(t *testing.T) {
	m, err := align.New(dnaRows(t, "ACG", "AC-"))
	require.NoError(t, err)

	assert.ErrorIs(t, m.Sort(), align.ErrNoKeysSet, "no materialized keys to sort by")
}

// TestSort_ByRule verifies SortBy derives sort keys without overwriting
// the key index, which is permuted in lockstep.
func TestSort_ByRule(t *testing.T) {
	rows := []seq.Row{idRow(t, "ACG", "z"), idRow(t, "AC-", "y"), idRow(t, "A--", "x")}
	m, err := align.New(rows, align.WithKeys([]string{"k1", "k2", "k3"}))
	require.NoError(t, err)

	require.NoError(t, m.Sort(align.SortBy(align.KeyField("id"))))

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k3", "k2", "k1"}, keys, "key index permuted, not overwritten")

	got := m.Rows()
	assert.Equal(t, "A--", got[0].String(), "rows ordered by id x<y<z")
	assert.Equal(t, "AC-", got[1].String(), "rows ordered by id x<y<z")
	assert.Equal(t, "ACG", got[2].String(), "rows ordered by id x<y<z")
}

// TestSort_ByRuleUnkeyed verifies sorting an unkeyed matrix by a fresh
// rule works and keeps it unkeyed.
func TestSort_ByRuleUnkeyed(t *testing.T) {
	m, err := align.New(dnaRows(t, "TTT", "AAA", "CCC"))
	require.NoError(t, err)

	bySeq := align.KeyFunc(func(r seq.Row) (string, error) { return r.String(), nil })
	require.NoError(t, m.Sort(align.SortBy(bySeq)))

	rows := m.Rows()
	assert.Equal(t, "AAA", rows[0].String(), "ascending by characters")
	assert.Equal(t, "CCC", rows[1].String(), "ascending by characters")
	assert.Equal(t, "TTT", rows[2].String(), "ascending by characters")
	assert.False(t, m.HasKeys(), "still unkeyed after rule sort")
}

// TestSort_StableTies verifies ties keep their original relative order in
// an ascending sort.
func TestSort_StableTies(t *testing.T) {
	rows := []seq.Row{idRow(t, "AAA", "first"), idRow(t, "CCC", "second"), idRow(t, "GGG", "third")}
	m, err := align.New(rows, align.WithKeys([]string{"k1", "k2", "k3"}))
	require.NoError(t, err)

	// All sort keys equal: the permutation must be the identity.
	same := align.KeyFunc(func(seq.Row) (string, error) { return "tie", nil })
	require.NoError(t, m.Sort(align.SortBy(same)))

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k1", "k2", "k3"}, keys, "ties preserve original order")
}

// TestSort_ReverseTieOrder pins the documented policy: stable ascending
// sort, then physical reversal, so ties come out in reverse of their
// original relative order under Reverse.
func TestSort_ReverseTieOrder(t *testing.T) {
	rows := []seq.Row{idRow(t, "AAA", "first"), idRow(t, "CCC", "second"), idRow(t, "GGG", "third")}
	m, err := align.New(rows, align.WithKeys([]string{"k1", "k2", "k3"}))
	require.NoError(t, err)

	same := align.KeyFunc(func(seq.Row) (string, error) { return "tie", nil })
	require.NoError(t, m.Sort(align.SortBy(same), align.Reverse()))

	keys, err := m.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"k3", "k2", "k1"}, keys,
		"reverse of a full tie is the reversed original order")
}

// TestSort_RuleResolutionFailureLeavesOrder verifies a failing sort rule
// mutates nothing.
func TestSort_RuleResolutionFailureLeavesOrder(t *testing.T) {
	rows := []seq.Row{idRow(t, "ACG", "b"), dna(t, "AC-")} // second row lacks "id"
	m, err := align.New(rows, align.WithKeys([]string{"k1", "k2"}))
	require.NoError(t, err)

	err = m.Sort(align.SortBy(align.KeyField("id")))
	require.ErrorIs(t, err, align.ErrKeyUnresolved, "rule fails on second row")

	keys, kerr := m.Keys()
	require.NoError(t, kerr)
	assert.Equal(t, []string{"k1", "k2"}, keys, "order unchanged on failure")
}

// TestSort_EmptyAndSingleton verifies degenerate sizes are no-ops.
func TestSort_EmptyAndSingleton(t *testing.T) {
	empty, err := align.New(nil, align.WithKeys([]string{}))
	require.NoError(t, err)
	assert.NoError(t, empty.Sort(), "empty keyed matrix sorts trivially")

	one, err := align.New(dnaRows(t, "ACG"), align.WithKeys([]string{"a"}))
	require.NoError(t, err)
	assert.NoError(t, one.Sort(), "singleton sorts trivially")
	keys, err := one.Keys()
	require.NoError(t, err)
	assert.Equal(t, []string{"a"}, keys, "singleton untouched")
}
