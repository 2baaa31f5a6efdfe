package condense_test

import (
	"testing"

	"github.com/dfhoughton/listmatcher/condense"
	"github.com/dfhoughton/listmatcher/symbol"
	"github.com/stretchr/testify/assert"
)

// fromStrings builds a canonical phrase set out of plain strings.
func fromStrings(words ...string) []symbol.Phrase {
	ps := make([]symbol.Phrase, 0, len(words))
	for _, w := range words {
		ps = append(ps, symbol.FromString(w))
	}

	return symbol.SortUnique(ps)
}

// expr condenses literal words with a zero Config.
func expr(t *testing.T, words ...string) string {
	t.Helper()
	frag := condense.Condense(fromStrings(words...), condense.Config{})

	return frag.Expr
}

// TestCondense_EmptySet yields the unsatisfiable sentinel.
func TestCondense_EmptySet(t *testing.T) {
	frag := condense.Condense(nil, condense.Config{})
	assert.Equal(t, condense.Sentinel, frag.Expr, "no phrases can match nothing")
	assert.False(t, frag.NeedsUnicode)
}

// TestCondense_SingleBranch renders a lone phrase verbatim.
func TestCondense_SingleBranch(t *testing.T) {
	assert.Equal(t, "cat", expr(t, "cat"))
}

// TestCondense_OptionalSuffix factors cat/cats into cats?.
func TestCondense_OptionalSuffix(t *testing.T) {
	assert.Equal(t, "cats?", expr(t, "cat", "cats"))
}

// TestCondense_OptionalGroup groups a multi-symbol optional middle.
func TestCondense_OptionalGroup(t *testing.T) {
	assert.Equal(t, "ab(?:cd)?", expr(t, "ab", "abcd"))
}

// TestCondense_SuffixFactoring pulls a shared suffix out of the branches.
func TestCondense_SuffixFactoring(t *testing.T) {
	assert.Equal(t, "cas?t", expr(t, "cat", "cast"))
	assert.Equal(t, "a?ba", expr(t, "ba", "aba"))
}

// TestCondense_SingletonClass folds one-symbol branches into a class.
func TestCondense_SingletonClass(t *testing.T) {
	assert.Equal(t, "[bc]at", expr(t, "bat", "cat"))
	assert.Equal(t, "[bc]?at", expr(t, "at", "bat", "cat"))
}

// TestCondense_TrieBranching mixes recursion and class folding.
func TestCondense_TrieBranching(t *testing.T) {
	assert.Equal(t, "ca(?:mel|t)", expr(t, "cat", "camel"))
	assert.Equal(t, "(?:ca(?:mel|t)|dog)", expr(t, "cat", "dog", "camel"))
}

// TestCondense_FlatBeatsTwoSymbolClass prefers a|b over [ab] when the
// alternation's grouping cost is already sunk.
func TestCondense_FlatBeatsTwoSymbolClass(t *testing.T) {
	assert.Equal(t, "(?:a|b|cow)", expr(t, "a", "b", "cow"))
}

// TestCondense_Determinism compiles permutations to identical text.
func TestCondense_Determinism(t *testing.T) {
	want := expr(t, "camel", "cat", "dog")
	assert.Equal(t, want, expr(t, "dog", "camel", "cat"))
	assert.Equal(t, want, expr(t, "cat", "dog", "camel"))
}

// TestCondense_RepetitionFolding collapses literal runs when strictly
// shorter, and only then.
func TestCondense_RepetitionFolding(t *testing.T) {
	assert.Equal(t, "fo{5}", expr(t, "fooooo"), "five o's quantify")
	assert.Equal(t, "foooo", expr(t, "foooo"), "o{4} saves nothing over oooo")
	assert.Equal(t, `x\t{3}`, expr(t, "x\t\t\t"), "escaped atoms fold sooner")
}

// TestCondense_Escaping backslash-escapes context metacharacters and
// always uses the named control escapes.
func TestCondense_Escaping(t *testing.T) {
	assert.Equal(t, `a\.b`, expr(t, "a.b"))
	assert.Equal(t, `\(802\)`, expr(t, "(802)"))
	assert.Equal(t, `a\nb`, expr(t, "a\nb"))
	assert.Equal(t, "123-4567", expr(t, "123-4567"), "dash is literal at top level")
}

// TestCondense_MarkerAlternative renders a peeled marker beside a class.
func TestCondense_MarkerAlternative(t *testing.T) {
	a := symbol.Phrase{symbol.Lit('a'), symbol.Space}
	b := symbol.Phrase{symbol.Lit('a'), symbol.Lit('b')}
	frag := condense.Condense(symbol.SortUnique([]symbol.Phrase{a, b}), condense.Config{})
	assert.Equal(t, `a(?:\s+|b)`, frag.Expr)
}

// TestCondense_BoundaryRendering renders the three boundary markers.
func TestCondense_BoundaryRendering(t *testing.T) {
	ascii := symbol.Phrase{symbol.BoundASCII, symbol.Lit('a'), symbol.BoundASCII}
	frag := condense.Condense([]symbol.Phrase{ascii}, condense.Config{})
	assert.Equal(t, `\ba\b`, frag.Expr)
	assert.False(t, frag.NeedsUnicode, `\b does not force the u flag`)

	uni := symbol.Phrase{symbol.BoundLeft, symbol.Lit('a'), symbol.BoundRight}
	frag = condense.Condense([]symbol.Phrase{uni}, condense.Config{})
	assert.Equal(t, `(?<![\p{L}\p{N}_])a(?![\p{L}\p{N}_])`, frag.Expr)
	assert.True(t, frag.NeedsUnicode, "lookaround boundaries force the u flag")
}

// TestCondense_SubstitutionSplice splices replacement text verbatim.
func TestCondense_SubstitutionSplice(t *testing.T) {
	p := symbol.Phrase{symbol.Subst(0), symbol.Lit('-'), symbol.Subst(0)}
	frag := condense.Condense([]symbol.Phrase{p}, condense.Config{Table: []string{`\d`}})
	assert.Equal(t, `\d-\d`, frag.Expr)
}

// TestCondense_SubstitutionFolding quantifies a substitution run only
// when the replacement is a single unit.
func TestCondense_SubstitutionFolding(t *testing.T) {
	p := symbol.Phrase{symbol.Subst(0), symbol.Subst(0), symbol.Subst(0)}

	frag := condense.Condense([]symbol.Phrase{p}, condense.Config{Table: []string{`\d`}})
	assert.Equal(t, `\d{3}`, frag.Expr, "solo-unit replacement folds")

	frag = condense.Condense([]symbol.Phrase{p}, condense.Config{Table: []string{"ab"}})
	assert.Equal(t, "ababab", frag.Expr, "ab{3} would not mean ab three times")
}

// TestCondense_NonASCIIForcesUnicode flags any non-ASCII literal.
func TestCondense_NonASCIIForcesUnicode(t *testing.T) {
	frag := condense.Condense(fromStrings("ü"), condense.Config{})
	assert.Equal(t, "ü", frag.Expr)
	assert.True(t, frag.NeedsUnicode)
}
