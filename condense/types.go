package condense

// Sentinel is the fixed "matches nothing" fragment emitted for an empty
// phrase set: a lookahead that can never succeed.
const Sentinel = "(?!)"

// Config carries the engine directives that influence rendering. It is
// read-only throughout a compilation pass.
type Config struct {
	// CaseInsensitive widens the character-class shorthand folding: a
	// single-case word body already means \w under an i flag.
	CaseInsensitive bool

	// Table holds substitution replacement text, indexed by the Ref of
	// Substitution symbols. Replacements are spliced in verbatim; the
	// preprocessor guarantees every Ref is in range.
	Table []string
}

// Fragment is the engine's output: pattern text plus the facts the
// assembler needs for flag derivation.
type Fragment struct {
	// Expr is the condensed pattern fragment.
	Expr string

	// NeedsUnicode reports whether any non-ASCII literal or Unicode
	// boundary assertion was rendered, forcing the host u flag.
	NeedsUnicode bool
}

// cursor is a value-type view (phrase index, start, end) into the arena.
// Cursors are owned by one condense call tree and passed by value; the
// start only ever increases and the end only ever decreases.
type cursor struct {
	pi, start, end int
}

func (c cursor) len() int { return c.end - c.start }
