// Package symbol defines the unified alphabet every other listmatcher
// package speaks: literal Unicode code points plus a small family of
// structural markers, all sharing one comparable value type.
//
// 🚀 What is a Symbol?
//
//	A tagged value that is either:
//		• Literal      — one Unicode code point of a phrase
//		• Whitespace   — a collapsed run of whitespace ("one or more \s")
//		• WordASCII    — an ASCII word-boundary anchor (\b)
//		• WordLeft     — a Unicode left word boundary (lookbehind)
//		• WordRight    — a Unicode right word boundary (lookahead)
//		• Substitution — a reference into a user substitution table
//
// Keeping markers and literals in one comparable type lets every
// downstream consumer — sorting, deduplication, trie factoring — treat a
// phrase as a plain ordered sequence. The total order places all markers
// before all literals, so marker-anchored phrases group together during
// condensation exactly like a shared leading character would.
//
// A Phrase is an ordered Symbol sequence derived once from a
// canonicalized input string; it is never permuted afterwards.
package symbol
