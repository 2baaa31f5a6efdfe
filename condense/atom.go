package condense

import (
	"strings"
	"unicode"

	"github.com/dfhoughton/listmatcher/symbol"
)

// Metacharacters needing a backslash, by context. Bracket classes have
// their own, much smaller, reserved set.
const (
	topMeta   = `\^$.|?*+()[]{}`
	classMeta = `\]^-`
)

// atom renders one symbol as pattern text. inClass selects the bracket
// class escaping rules for literals; markers never render inside a
// class (the class builder peels them off first).
func (e *engine) atom(s symbol.Symbol, inClass bool) string {
	switch s.Kind {
	case symbol.Whitespace:
		return `\s+`
	case symbol.WordASCII:
		return `\b`
	case symbol.WordLeft:
		e.unicode = true

		return `(?<![\p{L}\p{N}_])`
	case symbol.WordRight:
		e.unicode = true

		return `(?![\p{L}\p{N}_])`
	case symbol.Substitution:
		// Spliced verbatim; validity is the caller's business.
		return e.cfg.Table[s.Ref]
	}

	// Named escapes regardless of context.
	switch s.Code {
	case '\t':
		return `\t`
	case '\n':
		return `\n`
	case '\f':
		return `\f`
	case '\r':
		return `\r`
	}

	if s.Code > unicode.MaxASCII {
		e.unicode = true
	}
	meta := topMeta
	if inClass {
		meta = classMeta
	}
	if s.Code <= unicode.MaxASCII && strings.ContainsRune(meta, s.Code) {
		return `\` + string(s.Code)
	}

	return string(s.Code)
}
