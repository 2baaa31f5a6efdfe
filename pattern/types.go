package pattern

import (
	"regexp"
	"strings"

	"github.com/dfhoughton/listmatcher/phrase"
)

// Options configures compilation end to end.
//
// Fields:
//   - CaseInsensitive     — fold phrases and emit the i flag.
//   - NormalizeWhitespace — trim phrases and collapse whitespace runs
//     to a one-or-more-whitespace match.
//   - Bound               — word-boundary anchoring mode (phrase.Bound*).
//   - Capture             — wrap the fragment in one capturing group.
//   - Substitutions       — literal keys replaced by raw sub-pattern
//     text; longer keys always win over shorter ones (maximal munch).
//   - Global, MultiLine, DotAll, Sticky, Unicode, Indices — passed
//     through to the flag set (g, m, s, y, u, d) for the host engine.
//
// Example:
//
//	opts := DefaultOptions()
//	opts.CaseInsensitive = true
//	opts.Substitutions = map[string]string{"#": `\d`}
//	p, err := Compile(numbers, &opts)
type Options struct {
	CaseInsensitive     bool
	NormalizeWhitespace bool
	Bound               phrase.Bound
	Capture             bool
	Substitutions       map[string]string

	Global    bool
	MultiLine bool
	DotAll    bool
	Sticky    bool
	Unicode   bool
	Indices   bool
}

// DefaultOptions returns the zero configuration: case-sensitive,
// whitespace kept verbatim, unanchored, no capture, no substitutions,
// no host flags.
func DefaultOptions() Options { return Options{} }

// Pattern is the compilation artifact: pattern text plus a flag set,
// meant to be handed unmodified to a host engine's compiler.
type Pattern struct {
	// Expr is the pattern text.
	Expr string

	// Flags is the derived flag set in dgimsuy order.
	Flags string
}

// String renders the pattern in /expr/flags display form.
func (p Pattern) String() string { return "/" + p.Expr + "/" + p.Flags }

// Regexp compiles the pattern through Go's regexp package, translating
// the flags Go understands (i, m, s) into an inline group. Fragments
// using host-only syntax fail here with the host error, unchanged.
func (p Pattern) Regexp() (*regexp.Regexp, error) {
	var inline strings.Builder
	for _, f := range p.Flags {
		if f == 'i' || f == 'm' || f == 's' {
			inline.WriteRune(f)
		}
	}
	expr := p.Expr
	if inline.Len() > 0 {
		expr = "(?" + inline.String() + ")" + expr
	}

	return regexp.Compile(expr)
}
