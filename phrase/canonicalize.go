package phrase

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/dfhoughton/listmatcher/symbol"
)

// Canonicalize turns raw phrases into the sorted, deduplicated symbol
// sequences the condensation engine consumes, resolving substitutions
// into placeholder symbols along the way.
//
// Pipeline (per phrase):
//  1. NFC normalization, then Unicode case folding when CaseInsensitive.
//  2. Substitution rewriting via the maximal-munch tokenizer.
//  3. Trim + whitespace-run collapsing when NormalizeWhitespace.
//  4. Rune → symbol conversion (placeholders become Substitution refs).
//  5. Boundary markers at word-character edges per Config.Bound.
//
// Then globally: empty phrases dropped, lexicographic sort, dedup.
//
// Errors:
//   - ErrBoundMode               — Config.Bound out of range.
//   - ErrEmptyKey, ErrKeyFold    — malformed substitution key set.
//   - ErrPlaceholderExhausted    — private-use pool fully occupied.
func Canonicalize(raw []string, cfg Config) (Result, error) {
	if cfg.Bound < BoundNone || cfg.Bound > BoundUnicode {
		return Result{}, ErrBoundMode
	}

	folder := cases.Fold()
	canon := func(s string) string {
		s = norm.NFC.String(s)
		if cfg.CaseInsensitive {
			s = folder.String(s)
		}

		return s
	}

	texts := make([]string, 0, len(raw))
	for _, s := range raw {
		texts = append(texts, canon(s))
	}

	tok, table, err := newTokenizer(cfg.Substitutions, canon, texts)
	if err != nil {
		return Result{}, err
	}

	phrases := make([]symbol.Phrase, 0, len(texts))
	for _, s := range texts {
		p := symbolize(tok.rewrite(s), cfg, tok)
		if len(p) == 0 {
			continue // empty phrases contribute nothing
		}
		phrases = append(phrases, anchor(p, cfg.Bound))
	}

	return Result{Phrases: symbol.SortUnique(phrases), Table: table}, nil
}

// symbolize converts rewritten phrase text into symbols, collapsing
// whitespace runs into the whitespace-run marker when requested.
func symbolize(s string, cfg Config, tok *tokenizer) symbol.Phrase {
	if cfg.NormalizeWhitespace {
		s = strings.TrimSpace(s)
	}
	p := make(symbol.Phrase, 0, len(s))
	inRun := false
	for _, r := range s {
		if cfg.NormalizeWhitespace && unicode.IsSpace(r) {
			if !inRun {
				p = append(p, symbol.Space)
				inRun = true
			}

			continue
		}
		inRun = false
		if ref, ok := tok.refOf(r); ok {
			p = append(p, symbol.Subst(ref))

			continue
		}
		p = append(p, symbol.Lit(r))
	}

	return p
}

// anchor prepends/appends word-boundary markers when the phrase starts
// or ends with a word character. Marker-edged phrases (whitespace runs,
// substitutions) are left unanchored: their wordness is unknowable here.
func anchor(p symbol.Phrase, mode Bound) symbol.Phrase {
	if mode == BoundNone || len(p) == 0 {
		return p
	}

	left, right := symbol.BoundASCII, symbol.BoundASCII
	word := asciiWord
	if mode == BoundUnicode {
		left, right = symbol.BoundLeft, symbol.BoundRight
		word = unicodeWord
	}

	first, last := p[0], p[len(p)-1]
	out := make(symbol.Phrase, 0, len(p)+2)
	if first.Kind == symbol.Literal && word(first.Code) {
		out = append(out, left)
	}
	out = append(out, p...)
	if last.Kind == symbol.Literal && word(last.Code) {
		out = append(out, right)
	}

	return out
}

// asciiWord mirrors the host engine's \w.
func asciiWord(r rune) bool {
	return r == '_' ||
		('0' <= r && r <= '9') ||
		('a' <= r && r <= 'z') ||
		('A' <= r && r <= 'Z')
}

// unicodeWord mirrors the lookaround test {letter, number, underscore}.
func unicodeWord(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsNumber(r)
}
