// Package align: functional configuration for construction, reindexing,
// appending, sorting and column iteration. Option constructors panic only
// on nonsensical values (programmer error); mutually-exclusive argument
// combinations are user errors and reported by the consuming operation as
// ErrConflictingKeyArguments.
package align

// Internal panic messages for option constructors (no magic strings).
const (
	panicZeroKeyRule  = "align: WithKeyRule: zero-value rule"
	panicNilKeyFunc   = "align: KeyFunc: nil function"
	panicEmptyKeyName = "align: KeyField: empty field name"
	panicZeroSortRule = "align: SortBy: zero-value rule"
)

// Option configures key handling for New and Reindex.
type Option func(*keyOpts)

// keyOpts is the resolved key configuration. has* flags distinguish
// "not supplied" from zero values so WithKeys(nil) and WithKeys([]) keep
// their distinct meanings.
type keyOpts struct {
	rule    KeyRule
	hasRule bool
	keys    []string
	hasKeys bool
}

// WithKeyRule derives one key per row using rule. Mutually exclusive with
// WithKeys. Panics if rule is the zero value.
func WithKeyRule(rule KeyRule) Option {
	if rule.isZero() {
		panic(panicZeroKeyRule)
	}

	return func(o *keyOpts) {
		o.rule = rule
		o.hasRule = true
	}
}

// WithKeys supplies an explicit key list, one per row in row order.
// Mutually exclusive with WithKeyRule. An empty (even nil) list is valid
// for an empty matrix and yields a keyed empty matrix.
func WithKeys(keys []string) Option {
	return func(o *keyOpts) {
		o.keys = keys
		o.hasKeys = true
	}
}

// gatherKeyOpts applies setters in order (last-writer-wins).
func gatherKeyOpts(user ...Option) keyOpts {
	var o keyOpts
	for _, set := range user {
		set(&o)
	}

	return o
}

// AppendOption configures key handling for Append.
type AppendOption func(*appendOpts)

type appendOpts struct {
	key     string
	hasKey  bool
	rule    KeyRule
	hasRule bool
}

// AppendKey supplies the explicit key for the appended row. Mutually
// exclusive with AppendRule.
func AppendKey(key string) AppendOption {
	return func(o *appendOpts) {
		o.key = key
		o.hasKey = true
	}
}

// AppendRule derives the appended row's key from rule. Mutually exclusive
// with AppendKey. Panics if rule is the zero value.
func AppendRule(rule KeyRule) AppendOption {
	if rule.isZero() {
		panic(panicZeroKeyRule)
	}

	return func(o *appendOpts) {
		o.rule = rule
		o.hasRule = true
	}
}

func gatherAppendOpts(user ...AppendOption) appendOpts {
	var o appendOpts
	for _, set := range user {
		set(&o)
	}

	return o
}

// SortOption configures Sort.
type SortOption func(*sortOpts)

type sortOpts struct {
	rule    KeyRule
	hasRule bool
	reverse bool
}

// SortBy derives per-row sort keys from rule instead of the materialized
// key index. Panics if rule is the zero value.
func SortBy(rule KeyRule) SortOption {
	if rule.isZero() {
		panic(panicZeroSortRule)
	}

	return func(o *sortOpts) {
		o.rule = rule
		o.hasRule = true
	}
}

// Reverse inverts the sort order. The sort stays a stable ascending sort
// followed by a physical reversal, so ties come out in reverse of their
// original relative order (see Sort).
func Reverse() SortOption {
	return func(o *sortOpts) { o.reverse = true }
}

func gatherSortOpts(user ...SortOption) sortOpts {
	var o sortOpts
	for _, set := range user {
		set(&o)
	}

	return o
}

// ColumnOption configures Columns.
type ColumnOption func(*columnOpts)

type columnOpts struct {
	reverse bool
}

// ColumnReverse iterates positions from last to first.
func ColumnReverse() ColumnOption {
	return func(o *columnOpts) { o.reverse = true }
}

func gatherColumnOpts(user ...ColumnOption) columnOpts {
	var o columnOpts
	for _, set := range user {
		set(&o)
	}

	return o
}
