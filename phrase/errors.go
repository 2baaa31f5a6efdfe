package phrase

import "errors"

var (
	// ErrBoundMode is returned when Config.Bound is not one of the
	// declared boundary modes.
	ErrBoundMode = errors.New("phrase: unknown boundary mode")

	// ErrPlaceholderExhausted is returned when every private-use rune is
	// already occupied and no placeholder can be allocated for a
	// substitution key.
	ErrPlaceholderExhausted = errors.New("phrase: placeholder pool exhausted")

	// ErrEmptyKey is returned when a substitution key is the empty string.
	ErrEmptyKey = errors.New("phrase: empty substitution key")

	// ErrKeyFold is returned when two substitution keys collide after
	// case folding, which would make replacement choice ambiguous.
	ErrKeyFold = errors.New("phrase: substitution keys collide after case folding")
)
