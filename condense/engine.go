package condense

import (
	"sort"
	"strings"

	"github.com/dfhoughton/listmatcher/symbol"
)

// Condense compiles a canonical phrase set into a single pattern
// fragment. phrases must be what the preprocessor emits: sorted,
// deduplicated, empty phrases dropped, substitution refs resolvable in
// cfg.Table. The transformation is total and side-effect free; the same
// set always yields byte-identical text.
//
// An empty phrase list yields the Sentinel fragment.
func Condense(phrases []symbol.Phrase, cfg Config) Fragment {
	e := &engine{arena: phrases, cfg: cfg}
	cs := make([]cursor, len(phrases))
	for i, p := range phrases {
		cs[i] = cursor{pi: i, end: len(p)}
	}

	return Fragment{Expr: e.condense(cs), NeedsUnicode: e.unicode}
}

// engine carries the phrase arena and accumulates the one rendering
// fact that outlives the recursion: whether Unicode output appeared.
type engine struct {
	arena   []symbol.Phrase
	cfg     Config
	unicode bool
}

func (e *engine) first(c cursor) symbol.Symbol { return e.arena[c.pi][c.start] }
func (e *engine) last(c cursor) symbol.Symbol  { return e.arena[c.pi][c.end-1] }

// condense is the recursive trie serializer. Cursors arrive by value
// and never escape this call tree.
func (e *engine) condense(cs []cursor) string {
	if len(cs) == 0 {
		return Sentinel
	}

	// Single branch: the whole remainder is the prefix.
	if len(cs) == 1 {
		c := cs[0]

		return e.renderRun(e.arena[c.pi][c.start:c.end])
	}

	// Shared prefix, symbol by symbol.
	var prefix []symbol.Symbol
	for allLive(cs) && sameFirst(e, cs) {
		prefix = append(prefix, e.first(cs[0]))
		for i := range cs {
			cs[i].start++
		}
	}

	// Shared suffix, from the trailing end. A cursor drained by the
	// prefix has no trailing symbol, so it stops suffix extraction: its
	// phrase must be matchable by the prefix alone.
	var suffix []symbol.Symbol
	for allLive(cs) && sameLast(e, cs) {
		suffix = append(suffix, e.last(cs[0]))
		for i := range cs {
			cs[i].end--
		}
	}
	reverse(suffix)

	// Partition what survives factoring.
	optional := false
	var singles []symbol.Symbol
	groups := make(map[symbol.Symbol][]cursor)
	for _, c := range cs {
		switch {
		case c.len() == 0:
			optional = true
		case c.len() == 1:
			singles = append(singles, e.first(c))
		default:
			k := e.first(c)
			groups[k] = append(groups[k], c)
		}
	}

	// One alternative per trie branch, recursively.
	keys := make([]symbol.Symbol, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return symbol.Compare(keys[i], keys[j]) < 0 })
	alts := make([]string, 0, len(keys)+1)
	for _, k := range keys {
		alts = append(alts, e.condense(groups[k]))
	}

	// Singletons fold through the class builder.
	if len(singles) > 0 {
		alts = append(alts, e.classAlternatives(singles, len(alts) > 0)...)
	}

	// Deterministic output: alternatives sort by rendered text.
	sort.Strings(alts)
	var middle string
	switch {
	case len(alts) == 1:
		middle = alts[0]
	case len(alts) > 1:
		middle = "(?:" + strings.Join(alts, "|") + ")"
	}
	if optional && middle != "" {
		if !soloUnit(middle) {
			middle = "(?:" + middle + ")"
		}
		middle += "?"
	}

	return e.renderRun(prefix) + middle + e.renderRun(suffix)
}

// allLive reports whether every cursor still holds at least one symbol.
func allLive(cs []cursor) bool {
	for _, c := range cs {
		if c.len() == 0 {
			return false
		}
	}

	return true
}

// sameFirst reports whether every cursor leads with the same symbol.
func sameFirst(e *engine, cs []cursor) bool {
	head := e.first(cs[0])
	for _, c := range cs[1:] {
		if e.first(c) != head {
			return false
		}
	}

	return true
}

// sameLast reports whether every cursor trails with the same symbol.
func sameLast(e *engine, cs []cursor) bool {
	tail := e.last(cs[0])
	for _, c := range cs[1:] {
		if e.last(c) != tail {
			return false
		}
	}

	return true
}

func reverse(run []symbol.Symbol) {
	for i, j := 0, len(run)-1; i < j; i, j = i+1, j-1 {
		run[i], run[j] = run[j], run[i]
	}
}
