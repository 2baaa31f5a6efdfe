// Package phrase canonicalizes raw input strings into the sorted,
// deduplicated symbol sequences the condensation engine consumes.
//
// 🚀 What does canonicalization do?
//
//	Applied in order to every raw phrase:
//		• NFC normalization (golang.org/x/text/unicode/norm)
//		• Unicode case folding when CaseInsensitive (golang.org/x/text/cases)
//		• Substitution tokenization — user keys rewritten to placeholder
//		  runes by an explicit maximal-munch scanner
//		• Whitespace collapsing — trim, then internal runs become one
//		  whitespace-run marker (when NormalizeWhitespace)
//		• Word-boundary markers at word-character phrase edges (Bound)
//		• Empty-phrase drop, lexicographic sort, deduplication
//
// ✨ Guarantees:
//
//   - Set semantics – the same *set* of raw phrases yields the same symbol
//     sequences regardless of presentation order
//   - Maximal munch – where one substitution key is a prefix of another,
//     the longer key wins at every position; this is a property of the
//     scanner itself, never of alternation ordering
//   - Bounded placeholders – placeholder runes come from the Unicode
//     private use area only; exhaustion surfaces ErrPlaceholderExhausted
//     instead of scanning an unbounded range
//
// Complexity: O(total input bytes × substitution keys) time, O(total
// symbols) memory.
package phrase
