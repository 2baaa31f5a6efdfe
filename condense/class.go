package condense

import (
	"sort"
	"strings"

	"github.com/dfhoughton/listmatcher/symbol"
)

// classAlternatives folds a set of single symbols into as few
// alternatives as possible: markers render individually, literals
// become a bracket class with range compression and \w / \d shorthand
// folding — unless a flat alternation would be no longer, in which case
// the literals stay separate alternatives. embedded tells the builder
// that other alternatives already exist, so the alternation's grouping
// cost is sunk.
func (e *engine) classAlternatives(syms []symbol.Symbol, embedded bool) []string {
	sort.Slice(syms, func(i, j int) bool { return symbol.Compare(syms[i], syms[j]) < 0 })

	// Markers cannot live inside a bracket class.
	var alts []string
	i := 0
	for ; i < len(syms) && syms[i].IsMarker(); i++ {
		alts = append(alts, e.atom(syms[i], false))
	}
	lits := syms[i:]

	switch len(lits) {
	case 0:
		return alts
	case 1:
		return append(alts, e.atom(lits[0], false))
	}
	embedded = embedded || len(alts) > 0

	body := foldShorthand(e.classBody(lits), e.cfg.CaseInsensitive)
	classText := "[" + body + "]"
	if body == `\w` || body == `\d` {
		classText = body // a lone shorthand needs no brackets
	}

	// Flat alternation comparison (top-level escaping applies there).
	flat := make([]string, len(lits))
	flatLen := len(lits) - 1 // separators
	for j, s := range lits {
		flat[j] = e.atom(s, false)
		flatLen += len(flat[j])
	}
	if !embedded {
		flatLen += len("(?:)")
	}
	if len(classText) >= flatLen {
		return append(alts, flat...)
	}

	return append(alts, classText)
}

// classBody renders sorted literals as bracket-class content, collapsing
// consecutive code-point runs of three or more into first-last ranges
// when the range text is not longer than the literal spelling.
func (e *engine) classBody(lits []symbol.Symbol) string {
	var b strings.Builder
	for i := 0; i < len(lits); {
		j := i
		for j+1 < len(lits) && lits[j+1].Code == lits[j].Code+1 {
			j++
		}
		if j-i+1 >= 3 {
			lo, hi := e.atom(lits[i], true), e.atom(lits[j], true)
			spelled := 0
			for k := i; k <= j; k++ {
				spelled += len(e.atom(lits[k], true))
			}
			if len(lo)+1+len(hi) <= spelled {
				b.WriteString(lo)
				b.WriteByte('-')
				b.WriteString(hi)
				i = j + 1

				continue
			}
		}
		for ; i <= j; i++ {
			b.WriteString(e.atom(lits[i], true))
		}
	}

	return b.String()
}

// foldShorthand applies the fixed textual foldings: the full word body
// (digits, uppercase, underscore, lowercase — in ascending code-point
// order) becomes \w; under case folding a single case run suffices; a
// standalone digit run becomes \d.
func foldShorthand(body string, caseInsensitive bool) string {
	body = strings.Replace(body, `0-9A-Z_a-z`, `\w`, 1)
	if caseInsensitive {
		body = strings.Replace(body, `0-9_a-z`, `\w`, 1)
		body = strings.Replace(body, `0-9A-Z_`, `\w`, 1)
	}
	if body == `0-9` {
		body = `\d`
	}

	return body
}
