package ingest

import "github.com/kljensen/snowball"

// Stemmer reduces a word to its stem. Implementations must be
// deterministic: the same word always maps to the same stem.
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer stems with the snowball algorithm for a fixed
// language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer creates a stemmer for the given snowball
// language ("english", "spanish", ...).
func NewSnowballStemmer(language string) *SnowballStemmer {
	return &SnowballStemmer{language: language}
}

// Stem returns the snowball stem of word, or the word unchanged when
// the algorithm cannot handle it.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, false)
	if err != nil || stemmed == "" {
		return word
	}
	return stemmed
}

// IdentityStemmer maps every word to itself. Useful for tests and for
// corpora where stemming is undesirable.
type IdentityStemmer struct{}

func (IdentityStemmer) Stem(word string) string { return word }
