package seq

import (
	"bytes"
	"fmt"
	"reflect"
	"strings"
)

// gapChars is the gap character set shared by every family.
// '-' is the canonical gap, '.' a terminal/trimmed gap.
var gapChars = []byte{'-', '.'}

// Family alphabets, uppercase only. Degenerate IUPAC codes are accepted;
// biological plausibility beyond alphabet membership is out of scope.
const (
	dnaAlphabet     = "ACGT" + "RYSWKMBDHVN" + "-."
	rnaAlphabet     = "ACGU" + "RYSWKMBDHVN" + "-."
	proteinAlphabet = "ACDEFGHIKLMNPQRSTVWY" + "BXZ" + "-."
)

// Option configures row construction.
type Option func(*options)

type options struct {
	meta Metadata
}

// WithMetadata attaches per-row annotations to the new row.
func WithMetadata(md Metadata) Option {
	return func(o *options) { o.meta = md }
}

// content is the storage shared by all families: raw characters plus an
// optional metadata bundle. It provides every family-agnostic Row method;
// Equal, GapSet and Derive are family-specific and implemented per type.
type content struct {
	chars []byte
	meta  Metadata
}

func newContent(chars []byte, md Metadata) content {
	owned := make([]byte, len(chars))
	copy(owned, chars)
	if len(md) == 0 {
		md = nil // normalize: absent and empty metadata compare equal
	}
	return content{chars: owned, meta: md}
}

// Len returns the aligned length.
func (c content) Len() int { return len(c.chars) }

// At returns the character at position i.
func (c content) At(i int) byte { return c.chars[i] }

// String returns the raw character string.
func (c content) String() string { return string(c.chars) }

// Metadata looks up a per-row annotation by name.
func (c content) Metadata(name string) (any, bool) {
	v, ok := c.meta[name]
	return v, ok
}

// GapSet returns a copy of the gap character set.
func (c content) GapSet() []byte {
	out := make([]byte, len(gapChars))
	copy(out, gapChars)
	return out
}

// CountAny returns how many characters of the row belong to set.
func (c content) CountAny(set []byte) int {
	n := 0
	for _, ch := range c.chars {
		if bytes.IndexByte(set, ch) >= 0 {
			n++
		}
	}
	return n
}

// equal compares characters and metadata of two content values.
func (c content) equal(o content) bool {
	return bytes.Equal(c.chars, o.chars) && reflect.DeepEqual(c.meta, o.meta)
}

// validate checks every character of s against alphabet and builds the
// owned content on success.
func validate(family, s string, alphabet string, opts []Option) (content, error) {
	var o options
	for _, set := range opts {
		set(&o)
	}
	for i := 0; i < len(s); i++ {
		if strings.IndexByte(alphabet, s[i]) < 0 {
			return content{}, fmt.Errorf("seq: %s position %d (%q): %w",
				family, i, string(s[i]), ErrInvalidCharacter)
		}
	}
	return newContent([]byte(s), o.meta), nil
}

// DNA is an aligned DNA sequence (IUPAC codes, '-' and '.' gaps).
type DNA struct{ content }

// NewDNA validates s against the DNA alphabet and builds the row.
func NewDNA(s string, opts ...Option) (DNA, error) {
	c, err := validate("DNA", s, dnaAlphabet, opts)
	if err != nil {
		return DNA{}, err
	}
	return DNA{c}, nil
}

// Equal reports whether other is a DNA row with the same characters and
// equal metadata.
func (d DNA) Equal(other Row) bool {
	o, ok := other.(DNA)
	return ok && d.content.equal(o.content)
}

// Derive builds a DNA row from same-family characters without
// re-validation.
func (d DNA) Derive(chars []byte, md Metadata) Row {
	return DNA{newContent(chars, md)}
}

// RNA is an aligned RNA sequence (IUPAC codes, '-' and '.' gaps).
type RNA struct{ content }

// NewRNA validates s against the RNA alphabet and builds the row.
func NewRNA(s string, opts ...Option) (RNA, error) {
	c, err := validate("RNA", s, rnaAlphabet, opts)
	if err != nil {
		return RNA{}, err
	}
	return RNA{c}, nil
}

// Equal reports whether other is an RNA row with the same characters and
// equal metadata.
func (r RNA) Equal(other Row) bool {
	o, ok := other.(RNA)
	return ok && r.content.equal(o.content)
}

// Derive builds an RNA row from same-family characters without
// re-validation.
func (r RNA) Derive(chars []byte, md Metadata) Row {
	return RNA{newContent(chars, md)}
}

// Protein is an aligned protein sequence (IUPAC codes, '-' and '.' gaps).
type Protein struct{ content }

// NewProtein validates s against the protein alphabet and builds the row.
func NewProtein(s string, opts ...Option) (Protein, error) {
	c, err := validate("Protein", s, proteinAlphabet, opts)
	if err != nil {
		return Protein{}, err
	}
	return Protein{c}, nil
}

// Equal reports whether other is a Protein row with the same characters
// and equal metadata.
func (p Protein) Equal(other Row) bool {
	o, ok := other.(Protein)
	return ok && p.content.equal(o.content)
}

// Derive builds a Protein row from same-family characters without
// re-validation.
func (p Protein) Derive(chars []byte, md Metadata) Row {
	return Protein{newContent(chars, md)}
}

// Generic is an aligned sequence over any printable characters. It is the
// family used for consensus of an empty matrix and for callers with
// non-biological alphabets.
type Generic struct{ content }

// NewGeneric accepts any printable ASCII characters.
func NewGeneric(s string, opts ...Option) (Generic, error) {
	var o options
	for _, set := range opts {
		set(&o)
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 0x20 || s[i] > 0x7e {
			return Generic{}, fmt.Errorf("seq: Generic position %d (0x%02x): %w",
				i, s[i], ErrInvalidCharacter)
		}
	}
	return Generic{newContent([]byte(s), o.meta)}, nil
}

// Equal reports whether other is a Generic row with the same characters
// and equal metadata.
func (g Generic) Equal(other Row) bool {
	o, ok := other.(Generic)
	return ok && g.content.equal(o.content)
}

// Derive builds a Generic row from the given characters without
// re-validation.
func (g Generic) Derive(chars []byte, md Metadata) Row {
	return Generic{newContent(chars, md)}
}
