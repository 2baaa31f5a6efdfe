package condense

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dfhoughton/listmatcher/symbol"
)

// renderRun renders a prefix or suffix buffer, collapsing maximal runs
// of one identical symbol into atom{n} — but only when the quantified
// form is strictly shorter than spelling the run out. Structural
// markers never fold, and a substitution folds only when its spliced
// replacement is a single quantifiable unit: "ab" quantified is not
// "ab" repeated.
func (e *engine) renderRun(run []symbol.Symbol) string {
	var b strings.Builder
	for i := 0; i < len(run); {
		j := i
		for j+1 < len(run) && run[j+1] == run[i] {
			j++
		}
		n := j - i + 1
		a := e.atom(run[i], false)
		if n > 1 && e.foldable(run[i], a) {
			q := a + "{" + strconv.Itoa(n) + "}"
			if len(a)*n > len(q) {
				b.WriteString(q)
				i = j + 1

				continue
			}
		}
		for ; i <= j; i++ {
			b.WriteString(a)
		}
	}

	return b.String()
}

// foldable reports whether a run of s may take a {n} quantifier.
func (e *engine) foldable(s symbol.Symbol, rendered string) bool {
	switch s.Kind {
	case symbol.Literal:
		return true
	case symbol.Substitution:
		return soloUnit(rendered)
	default:
		return false
	}
}

// soloUnit reports whether s is already a single quantifiable unit — a
// lone rune, a single escape, one bracket class, or one parenthesized
// group — so a trailing ? can attach without another layer of grouping.
func soloUnit(s string) bool {
	if s == "" {
		return false
	}
	r, size := utf8.DecodeRuneInString(s)
	switch r {
	case '\\':
		_, esc := utf8.DecodeRuneInString(s[size:])

		return size+esc == len(s)
	case '[':
		for i := size; i < len(s); {
			r2, sz := utf8.DecodeRuneInString(s[i:])
			switch r2 {
			case '\\':
				_, esc := utf8.DecodeRuneInString(s[i+sz:])
				i += sz + esc
			case ']':
				return i == len(s)-1
			default:
				i += sz
			}
		}

		return false
	case '(':
		depth := 0
		for i := 0; i < len(s); {
			r2, sz := utf8.DecodeRuneInString(s[i:])
			switch r2 {
			case '\\':
				_, esc := utf8.DecodeRuneInString(s[i+sz:])
				i += sz + esc

				continue
			case '(':
				depth++
			case ')':
				depth--
				if depth == 0 {
					return i == len(s)-sz
				}
			}
			i += sz
		}

		return false
	default:
		return size == len(s)
	}
}
