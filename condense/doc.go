// Package condense is the heart of listmatcher: the recursive
// trie-to-pattern compiler that turns a canonical phrase set into one
// factored pattern fragment.
//
// 🚀 How condensation works
//
//	Applied recursively to a set of cursors over the phrase arena:
//	 1. Empty set → the unsatisfiable sentinel (?!).
//	 2. Pull the shared prefix, symbol by symbol, from every cursor.
//	 3. Pull the shared suffix the same way (only while every cursor
//	    still has symbols left).
//	 4. Cursors drained by prefix+suffix make the middle optional (?).
//	 5. One-symbol leftovers fold through the character-class builder.
//	 6. Longer leftovers group by leading symbol — a trie branch — and
//	    recurse.
//	 7. Alternatives sort lexicographically, join with |, and take a
//	    non-capturing group only when one is actually needed.
//
// ✨ Guarantees:
//
//   - Deterministic – output is a pure function of the phrase *set*
//   - Total – no error path; any well-formed input condenses
//   - Terminating – every recursion strictly shrinks the remaining
//     symbol count or splits into strictly smaller partitions
//
// Character classes compress consecutive code-point runs to a-z ranges
// (runs of three or more, and only when not longer than the literal
// spelling) and fold the classic bodies to \w and \d. Prefix and suffix
// runs of one literal fold to atom{n} when strictly shorter.
//
// Complexity: O(total symbols × alphabet branching) time, recursion
// depth bounded by the longest phrase.
package condense
