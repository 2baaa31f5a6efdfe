// Package listmatcher compiles finite lists of literal phrases into a
// single compact, deterministic regular expression — the factored
// alternation a careful human would write by hand, produced mechanically.
//
// 🚀 What is listmatcher?
//
//	A pure-Go phrase-set condenser that brings together:
//		• Canonicalization: dedup, Unicode case folding, whitespace collapsing
//		• Condensation: trie-style prefix/suffix factoring of the phrase set
//		• Character classes: range compression plus \w / \d shorthand folding
//		• Repetition folding: "fooooo" becomes fo{5}, never five literal o's
//		• Boundaries: ASCII \b or Unicode lookaround word anchoring
//		• Substitutions: user tokens spliced in as raw sub-patterns
//
// ✨ Why choose listmatcher?
//
//   - Deterministic – the same *set* of phrases always yields byte-identical
//     pattern text, regardless of input order
//   - Readable output – factored alternations, not a wall of escaped pipes
//   - Pure Go – no cgo, no I/O, no global state
//   - Host-agnostic – emits (pattern, flags) for any regex engine to compile
//
// Under the hood, everything is organized under four subpackages:
//
//	symbol/   — the unified alphabet: literal code points + structural markers
//	phrase/   — preprocessor: canonicalization, tokenization, boundary marks
//	condense/ — the recursive trie-to-pattern compiler and class builder
//	pattern/  — public facade: Compile(), flag derivation, capture wrapping
//
// Quick example:
//
//	p, _ := pattern.Compile([]string{"cat", "cats"}, nil)
//	fmt.Println(p.Expr) // cats?
//
//	go get github.com/dfhoughton/listmatcher/pattern
package listmatcher
