package phrase_test

import (
	"strings"
	"testing"

	"github.com/dfhoughton/listmatcher/phrase"
	"github.com/dfhoughton/listmatcher/symbol"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestTokenizer_MaximalMunch is the longest-key-wins property: with keys
// a, aa and aaa, the input "aaaaa" must tokenize as aaa + aa — never as
// five applications of a.
func TestTokenizer_MaximalMunch(t *testing.T) {
	res, err := phrase.Canonicalize([]string{"aaaaa"}, phrase.Config{
		Substitutions: map[string]string{"a": "foo", "aa": "bar", "aaa": "baz"},
	})
	require.NoError(t, err)

	// Sorted keys a < aa < aaa give refs 0, 1, 2.
	assert.Equal(t, []string{"foo", "bar", "baz"}, res.Table)
	require.Len(t, res.Phrases, 1)
	assert.Equal(t, symbol.Phrase{symbol.Subst(2), symbol.Subst(1)}, res.Phrases[0],
		"aaaaa must munch as aaa then aa")
}

// TestTokenizer_MidPhraseKeys checks matching away from phrase edges and
// that unmatched text passes through as literals.
func TestTokenizer_MidPhraseKeys(t *testing.T) {
	res, err := phrase.Canonicalize([]string{"x##y"}, phrase.Config{
		Substitutions: map[string]string{"#": `\d`},
	})
	require.NoError(t, err)

	want := symbol.Phrase{symbol.Lit('x'), symbol.Subst(0), symbol.Subst(0), symbol.Lit('y')}
	require.Len(t, res.Phrases, 1)
	assert.Equal(t, want, res.Phrases[0])
}

// TestTokenizer_EmptyKey rejects the empty substitution key.
func TestTokenizer_EmptyKey(t *testing.T) {
	_, err := phrase.Canonicalize([]string{"cat"}, phrase.Config{
		Substitutions: map[string]string{"": "x"},
	})
	assert.ErrorIs(t, err, phrase.ErrEmptyKey)
}

// TestTokenizer_KeyFoldCollision rejects keys that merge under folding.
func TestTokenizer_KeyFoldCollision(t *testing.T) {
	_, err := phrase.Canonicalize([]string{"cat"}, phrase.Config{
		CaseInsensitive: true,
		Substitutions:   map[string]string{"K": "x", "k": "y"},
	})
	assert.ErrorIs(t, err, phrase.ErrKeyFold)
}

// TestTokenizer_PlaceholderExhausted occupies the entire private use
// area with phrase text, leaving no placeholder for the one key.
func TestTokenizer_PlaceholderExhausted(t *testing.T) {
	var b strings.Builder
	for r := rune(0xE000); r <= 0xF8FF; r++ {
		b.WriteRune(r)
	}

	_, err := phrase.Canonicalize([]string{b.String()}, phrase.Config{
		Substitutions: map[string]string{"#": `\d`},
	})
	assert.ErrorIs(t, err, phrase.ErrPlaceholderExhausted, "a full pool must fail fast")
}
