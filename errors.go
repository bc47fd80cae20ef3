package geowords

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds returned by the codec. Callers match them with errors.Is.
var (
	// ErrInvalidPrecision reports a precision or degree length that cannot
	// produce a usable number of decimal places.
	ErrInvalidPrecision = errors.New("invalid precision")

	// ErrVocabularyTooSmall reports a coordinate space whose cube root is
	// below three words.
	ErrVocabularyTooSmall = errors.New("vocabulary too small")

	// ErrInsufficientVocabulary reports a word source that cannot supply the
	// required number of distinct, non-empty words.
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")

	// ErrStaleVocabulary reports a vocabulary built for different parameters
	// than the codec it is being attached to.
	ErrStaleVocabulary = errors.New("stale vocabulary")

	ErrCoordinateOutOfRange = errors.New("coordinate out of range")
	ErrAddressOutOfRange    = errors.New("address out of range")
	ErrWordNotFound         = errors.New("word not found")
)

// WordError describes a word that could not be resolved during decoding.
type WordError struct {
	Word        string   // The offending word as supplied
	Position    int      // 1-based position in the name
	Duplicate   bool     // True when the word repeats an earlier one
	Suggestions []string // Closest vocabulary words, best first
}

func (e *WordError) Error() string {
	var b strings.Builder
	if e.Duplicate {
		fmt.Fprintf(&b, "%v: word %d %q repeats an earlier word", ErrWordNotFound, e.Position, e.Word)
	} else {
		fmt.Fprintf(&b, "%v: word %d %q", ErrWordNotFound, e.Position, e.Word)
	}
	if len(e.Suggestions) > 0 {
		fmt.Fprintf(&b, " (did you mean %s?)", strings.Join(e.Suggestions, ", "))
	}
	return b.String()
}

// Unwrap lets errors.Is(err, ErrWordNotFound) succeed.
func (e *WordError) Unwrap() error { return ErrWordNotFound }
