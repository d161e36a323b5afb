package internalerr

import (
	"errors"
	"fmt"
)

// Sentinel errors for common cases
var (
	ErrNotFound               = errors.New("not found")
	ErrInvalidInput           = errors.New("invalid input")
	ErrInvalidConfig          = errors.New("invalid configuration")
	ErrStoreUnavailable       = errors.New("store unavailable")
	ErrEmptyVocabulary        = errors.New("empty vocabulary")
	ErrInsufficientVocabulary = errors.New("insufficient vocabulary")
)

// InputShapeError reports a malformed raw input row. The whole run is
// rejected before normalization begins.
type InputShapeError struct {
	Row    int
	Query  string
	Count  int64
	Reason string
}

func (e *InputShapeError) Error() string {
	return fmt.Sprintf("input row %d: %s (query=%q count=%d)", e.Row, e.Reason, e.Query, e.Count)
}

func (e *InputShapeError) Is(target error) bool {
	return target == ErrInvalidInput
}

// InsufficientVocabularyError reports a vocabulary smaller than the
// requested topic count. The topic count is never clamped to fit.
type InsufficientVocabularyError struct {
	Vocab int
	K     int
}

func (e *InsufficientVocabularyError) Error() string {
	return fmt.Sprintf("topic model: vocabulary of %d terms cannot support %d topics", e.Vocab, e.K)
}

func (e *InsufficientVocabularyError) Is(target error) bool {
	return target == ErrInsufficientVocabulary
}
