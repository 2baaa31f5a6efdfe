package condense

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSoloUnit enumerates the fragment shapes a quantifier may attach
// to without another layer of grouping.
func TestSoloUnit(t *testing.T) {
	solo := []string{"a", "ü", `\d`, `\.`, "[abc]", `[\]x]`, "(?:ab|c)", "(a(b))"}
	for _, s := range solo {
		assert.True(t, soloUnit(s), "%q is a single unit", s)
	}

	multi := []string{"", "ab", `\d\d`, "[ab]c", "(?:a)(?:b)", "a|b", `\dx`}
	for _, s := range multi {
		assert.False(t, soloUnit(s), "%q is not a single unit", s)
	}
}
