// Package pattern is the public face of listmatcher: it runs the
// preprocessor and the condensation engine, then assembles the final
// (pattern text, flag set) artifact for a host regex engine.
//
// 🚀 Typical usage:
//
//	opts := pattern.DefaultOptions()
//	opts.Bound = phrase.BoundASCII
//	p, err := pattern.Compile([]string{"cat", "dog", "camel"}, &opts)
//	// p.Expr  == `\b(?:ca(?:mel|t)|dog)\b`
//	// p.Flags == ""
//
// ✨ What assembly adds:
//
//   - Capture – wraps the whole fragment in exactly one capturing group
//   - Flags – derived from Options (d, g, i, m, s, u, y) plus an
//     engine-forced u whenever any non-ASCII literal or Unicode boundary
//     was rendered
//   - Convenience – Pattern.Regexp compiles through Go's regexp for the
//     flag subset Go understands; fragments using host-only syntax
//     (lookaround boundaries, the (?!) sentinel) surface the host
//     engine's own compile error unchanged
//
// The output is meant to be handed unmodified to the host engine; this
// package never executes matching itself.
package pattern
