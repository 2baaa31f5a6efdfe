package pattern

import (
	"github.com/dfhoughton/listmatcher/condense"
	"github.com/dfhoughton/listmatcher/phrase"
)

// Compile condenses words into a single deterministic pattern.
//
// Pipeline:
//  1. phrase.Canonicalize — dedup, fold, tokenize, mark, sort.
//  2. condense.Condense   — trie factoring into one fragment.
//  3. Assembly            — optional capture group, flag derivation.
//
// A nil opts means DefaultOptions(). The same *set* of words with the
// same options always yields a byte-identical Pattern; an empty set
// (or one containing only empty phrases) yields the unsatisfiable
// sentinel fragment.
//
// Errors come from canonicalization only (boundary mode, substitution
// keys, placeholder pool); condensation itself is total.
func Compile(words []string, opts *Options) (Pattern, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}

	res, err := phrase.Canonicalize(words, phrase.Config{
		CaseInsensitive:     o.CaseInsensitive,
		NormalizeWhitespace: o.NormalizeWhitespace,
		Bound:               o.Bound,
		Substitutions:       o.Substitutions,
	})
	if err != nil {
		return Pattern{}, err
	}

	frag := condense.Condense(res.Phrases, condense.Config{
		CaseInsensitive: o.CaseInsensitive,
		Table:           res.Table,
	})

	expr := frag.Expr
	if o.Capture {
		expr = "(" + expr + ")"
	}

	return Pattern{Expr: expr, Flags: deriveFlags(o, frag.NeedsUnicode)}, nil
}

// deriveFlags assembles the host flag set in dgimsuy order. The u flag
// is forced whenever the fragment rendered non-ASCII literals or
// Unicode boundary assertions.
func deriveFlags(o Options, needsUnicode bool) string {
	var flags []byte
	if o.Indices {
		flags = append(flags, 'd')
	}
	if o.Global {
		flags = append(flags, 'g')
	}
	if o.CaseInsensitive {
		flags = append(flags, 'i')
	}
	if o.MultiLine {
		flags = append(flags, 'm')
	}
	if o.DotAll {
		flags = append(flags, 's')
	}
	if o.Unicode || needsUnicode {
		flags = append(flags, 'u')
	}
	if o.Sticky {
		flags = append(flags, 'y')
	}

	return string(flags)
}
