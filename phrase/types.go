package phrase

import "github.com/dfhoughton/listmatcher/symbol"

// Bound selects the word-boundary anchoring mode.
//
//   - BoundNone    — phrases match anywhere, even mid-word.
//   - BoundASCII   — \b anchors at word-character phrase edges.
//   - BoundUnicode — lookaround anchors using the Unicode
//     letter/number/underscore word test. Requires a host engine with
//     lookbehind support.
type Bound int

const (
	// BoundNone disables boundary anchoring.
	BoundNone Bound = iota

	// BoundASCII anchors with the ASCII word-boundary assertion.
	BoundASCII

	// BoundUnicode anchors with Unicode lookaround assertions.
	BoundUnicode
)

// Config directs canonicalization. The zero value is a usable default:
// case-sensitive, whitespace kept verbatim, no anchoring, no
// substitutions.
type Config struct {
	// CaseInsensitive folds phrases (and substitution keys) with the
	// Unicode case-folding algorithm before anything else happens.
	CaseInsensitive bool

	// NormalizeWhitespace trims each phrase and collapses every internal
	// whitespace run into a single whitespace-run marker.
	NormalizeWhitespace bool

	// Bound selects word-boundary anchoring at phrase edges.
	Bound Bound

	// Substitutions maps literal keys occurring inside phrases to raw
	// replacement pattern text. Replacement text is spliced into the
	// output verbatim and never validated.
	Substitutions map[string]string
}

// Result is the preprocessor's output contract: the engine-ready phrase
// list plus the substitution table referenced by Substitution symbols.
type Result struct {
	// Phrases is sorted lexicographically and deduplicated; empty
	// phrases are dropped.
	Phrases []symbol.Phrase

	// Table holds replacement pattern text, indexed by symbol.Subst ref.
	Table []string
}
