package symbol

import "sort"

// Kind discriminates the variants of a Symbol. Marker kinds are declared
// before Literal so that the derived order sorts every marker ahead of
// every literal code point.
type Kind uint8

const (
	// Whitespace marks a collapsed run of one-or-more whitespace characters.
	Whitespace Kind = iota

	// WordASCII marks an ASCII word-boundary anchor at a phrase edge.
	WordASCII

	// WordLeft marks a Unicode left word boundary (start of a word).
	WordLeft

	// WordRight marks a Unicode right word boundary (end of a word).
	WordRight

	// Substitution marks a reference into the substitution table; the
	// referenced replacement text is spliced in verbatim at render time.
	Substitution

	// Literal is a plain Unicode code point.
	Literal
)

// Symbol is one element of the condensation alphabet. The zero value is
// the whitespace-run marker. Symbols are comparable with == and totally
// ordered by Compare.
type Symbol struct {
	// Kind selects the variant.
	Kind Kind

	// Code is the code point of a Literal; zero for every marker.
	Code rune

	// Ref indexes the substitution table for a Substitution; zero otherwise.
	Ref int
}

// Lit returns the literal symbol for code point r.
func Lit(r rune) Symbol { return Symbol{Kind: Literal, Code: r} }

// Subst returns the substitution-reference symbol for table index ref.
func Subst(ref int) Symbol { return Symbol{Kind: Substitution, Ref: ref} }

// Marker singletons for the structural kinds.
var (
	// Space is the collapsed whitespace-run marker.
	Space = Symbol{Kind: Whitespace}
	// BoundASCII is the ASCII word-boundary marker.
	BoundASCII = Symbol{Kind: WordASCII}
	// BoundLeft is the Unicode left word-boundary marker.
	BoundLeft = Symbol{Kind: WordLeft}
	// BoundRight is the Unicode right word-boundary marker.
	BoundRight = Symbol{Kind: WordRight}
)

// IsMarker reports whether s is any non-literal variant.
func (s Symbol) IsMarker() bool { return s.Kind != Literal }

// Compare orders symbols: first by Kind (all markers precede literals),
// then by substitution reference, then by code point.
// It returns -1, 0 or +1.
func Compare(a, b Symbol) int {
	switch {
	case a.Kind != b.Kind:
		if a.Kind < b.Kind {
			return -1
		}

		return 1
	case a.Ref != b.Ref:
		if a.Ref < b.Ref {
			return -1
		}

		return 1
	case a.Code != b.Code:
		if a.Code < b.Code {
			return -1
		}

		return 1
	default:
		return 0
	}
}

// Phrase is one canonicalized input string rendered as an ordered symbol
// sequence. Symbol order within a Phrase is never permuted.
type Phrase []Symbol

// FromString converts s into a Phrase of literal symbols, one per rune.
func FromString(s string) Phrase {
	p := make(Phrase, 0, len(s))
	for _, r := range s {
		p = append(p, Lit(r))
	}

	return p
}

// ComparePhrases orders phrases lexicographically by Compare, shorter
// prefix first. It returns -1, 0 or +1.
func ComparePhrases(a, b Phrase) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	default:
		return 0
	}
}

// SortUnique sorts ps lexicographically and removes duplicates in place,
// returning the shortened slice. The result is a pure function of the
// input *set*: any permutation of the same phrases yields the same list.
func SortUnique(ps []Phrase) []Phrase {
	sort.Slice(ps, func(i, j int) bool { return ComparePhrases(ps[i], ps[j]) < 0 })
	out := ps[:0]
	for _, p := range ps {
		if len(out) == 0 || ComparePhrases(out[len(out)-1], p) != 0 {
			out = append(out, p)
		}
	}

	return out
}
