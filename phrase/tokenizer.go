package phrase

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// Placeholder runes are drawn from the Basic Multilingual Plane private
// use area. 6400 slots is the explicit pool bound; exhausting it is a
// configuration error, not a reason to scan further.
const (
	placeholderLo rune = 0xE000
	placeholderHi rune = 0xF8FF
)

// tokenizer rewrites canonicalized phrase text, replacing each
// substitution-key match with its allocated placeholder rune. A nil
// tokenizer is inert.
type tokenizer struct {
	byLen []string        // keys, longest first (ties lexicographic)
	place map[string]rune // key → placeholder rune
	ref   map[rune]int    // placeholder rune → substitution table index
}

// newTokenizer canonicalizes the substitution keys, allocates one unused
// placeholder rune per key, and returns the tokenizer together with the
// replacement table indexed by ref. texts must already be canonicalized;
// their runes (and the keys' own) are excluded from the placeholder pool.
func newTokenizer(subs map[string]string, canon func(string) string, texts []string) (*tokenizer, []string, error) {
	if len(subs) == 0 {
		return nil, nil, nil
	}

	// Canonicalize keys the same way phrases are, so byte-level prefix
	// matching against phrase text is exact.
	folded := make(map[string]string, len(subs)) // canonical key → replacement
	for k, v := range subs {
		if k == "" {
			return nil, nil, ErrEmptyKey
		}
		ck := canon(k)
		if _, dup := folded[ck]; dup {
			return nil, nil, ErrKeyFold
		}
		folded[ck] = v
	}

	// Sorted key order fixes ref assignment: same map, same table.
	keys := make([]string, 0, len(folded))
	for k := range folded {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	used := make(map[rune]bool)
	for _, s := range texts {
		for _, r := range s {
			used[r] = true
		}
	}
	for _, k := range keys {
		for _, r := range k {
			used[r] = true
		}
	}

	t := &tokenizer{
		byLen: make([]string, len(keys)),
		place: make(map[string]rune, len(keys)),
		ref:   make(map[rune]int, len(keys)),
	}
	table := make([]string, len(keys))
	next := placeholderLo
	for i, k := range keys {
		for next <= placeholderHi && used[next] {
			next++
		}
		if next > placeholderHi {
			return nil, nil, ErrPlaceholderExhausted
		}
		t.place[k] = next
		t.ref[next] = i
		table[i] = folded[k]
		next++
	}

	copy(t.byLen, keys)
	sort.Slice(t.byLen, func(i, j int) bool {
		if len(t.byLen[i]) != len(t.byLen[j]) {
			return len(t.byLen[i]) > len(t.byLen[j])
		}

		return t.byLen[i] < t.byLen[j]
	})

	return t, table, nil
}

// rewrite scans s left to right and replaces key matches with their
// placeholder runes. At every position the longest matching key wins
// (maximal munch); the scan never backtracks.
func (t *tokenizer) rewrite(s string) string {
	if t == nil || len(t.byLen) == 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); {
		matched := false
		for _, k := range t.byLen {
			if strings.HasPrefix(s[i:], k) {
				b.WriteRune(t.place[k])
				i += len(k)
				matched = true

				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(s[i:])
			b.WriteString(s[i : i+size])
			i += size
		}
	}

	return b.String()
}

// refOf resolves a placeholder rune to its table index; ok is false for
// ordinary runes (or an inert tokenizer).
func (t *tokenizer) refOf(r rune) (int, bool) {
	if t == nil {
		return 0, false
	}
	ref, ok := t.ref[r]

	return ref, ok
}
